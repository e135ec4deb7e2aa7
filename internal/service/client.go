package service

import (
	"errors"
	"fmt"

	"field-dispatch-backend/internal/database/models"
	apperrors "field-dispatch-backend/internal/errors"
	"field-dispatch-backend/internal/repository"
	"field-dispatch-backend/internal/scheduling"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientService handles client CRUD
type ClientService struct {
	db        *gorm.DB
	clients   *repository.ClientRepository
	validator *validator.Validate
	clock     scheduling.Clock
}

// NewClientService creates a new client service
func NewClientService(db *gorm.DB, clients *repository.ClientRepository, validator *validator.Validate, clock scheduling.Clock) *ClientService {
	return &ClientService{db: db, clients: clients, validator: validator, clock: clock}
}

// ClientRequest carries the writable client fields
type ClientRequest struct {
	CompanyName  string        `json:"company_name" validate:"required,max=100"`
	ContactName  string        `json:"contact_name,omitempty" validate:"max=100"`
	ContactEmail string        `json:"contact_email,omitempty" validate:"omitempty,email"`
	Phone        string        `json:"phone,omitempty" validate:"max=30"`
	Address      *AddressInput `json:"address,omitempty"`
}

// ClientListResponse wraps a paginated client listing
type ClientListResponse struct {
	Clients []models.Client `json:"clients"`
	Total   int64           `json:"total"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
}

// Create creates a new client
func (s *ClientService) Create(req *ClientRequest) (*models.Client, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	client := &models.Client{
		CompanyName:  req.CompanyName,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if req.Address != nil {
			address := addressFromInput(req.Address)
			if err := tx.Create(address).Error; err != nil {
				return err
			}
			client.AddressID = &address.ID
		}
		return s.clients.WithTx(tx).Create(client)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(id uuid.UUID) (*models.Client, error) {
	client, err := s.clients.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return client, nil
}

// List returns non-archived clients with pagination
func (s *ClientService) List(limit, offset int) (*ClientListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	clients, total, err := s.clients.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return &ClientListResponse{Clients: clients, Total: total, Limit: limit, Offset: offset}, nil
}

// Update replaces a client's writable fields
func (s *ClientService) Update(id uuid.UUID, req *ClientRequest) (*models.Client, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	client, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	client.CompanyName = req.CompanyName
	client.ContactName = req.ContactName
	client.ContactEmail = req.ContactEmail
	client.Phone = req.Phone

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if req.Address != nil {
			addressID, err := upsertAddress(tx, client.AddressID, req.Address)
			if err != nil {
				return err
			}
			client.AddressID = addressID
		}
		return s.clients.WithTx(tx).Update(client)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}

// Delete archives a client
func (s *ClientService) Delete(id uuid.UUID) error {
	if err := s.clients.Archive(id, s.clock.Now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrClientNotFound
		}
		return fmt.Errorf("failed to archive client: %w", err)
	}
	return nil
}
