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

// OrderService handles order CRUD
type OrderService struct {
	db        *gorm.DB
	orders    *repository.OrderRepository
	clients   *repository.ClientRepository
	validator *validator.Validate
	clock     scheduling.Clock
}

// NewOrderService creates a new order service
func NewOrderService(
	db *gorm.DB,
	orders *repository.OrderRepository,
	clients *repository.ClientRepository,
	validator *validator.Validate,
	clock scheduling.Clock,
) *OrderService {
	return &OrderService{db: db, orders: orders, clients: clients, validator: validator, clock: clock}
}

// OrderRequest carries the writable order fields
type OrderRequest struct {
	Name     string        `json:"name" validate:"required,max=100"`
	ClientID uuid.UUID     `json:"client_id" validate:"required"`
	TypeID   uuid.UUID     `json:"type_id" validate:"required"`
	StatusID uuid.UUID     `json:"status_id" validate:"required"`
	Address  *AddressInput `json:"address,omitempty"`
	Comments string        `json:"comments,omitempty"`
}

// OrderListResponse wraps a paginated order listing
type OrderListResponse struct {
	Orders []models.Order `json:"orders"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// Create creates a new order under a client
func (s *OrderService) Create(req *OrderRequest) (*models.Order, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.clients.GetByID(req.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	order := &models.Order{
		Name:     req.Name,
		ClientID: req.ClientID,
		TypeID:   req.TypeID,
		StatusID: req.StatusID,
		Comments: req.Comments,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		orders := s.orders.WithTx(tx)
		displayID, err := orders.NextDisplayID()
		if err != nil {
			return err
		}
		order.DisplayID = displayID
		if req.Address != nil {
			address := addressFromInput(req.Address)
			if err := tx.Create(address).Error; err != nil {
				return err
			}
			order.AddressID = &address.ID
		}
		return orders.Create(order)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}

// GetByID retrieves an order by ID
func (s *OrderService) GetByID(id uuid.UUID) (*models.Order, error) {
	order, err := s.orders.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// List returns non-archived orders, optionally restricted to one client
func (s *OrderService) List(clientID *uuid.UUID, limit, offset int) (*OrderListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var (
		orders []models.Order
		total  int64
		err    error
	)
	if clientID != nil {
		orders, total, err = s.orders.GetByClientID(*clientID, limit, offset)
	} else {
		orders, total, err = s.orders.GetAll(limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return &OrderListResponse{Orders: orders, Total: total, Limit: limit, Offset: offset}, nil
}

// Update replaces an order's writable fields
func (s *OrderService) Update(id uuid.UUID, req *OrderRequest) (*models.Order, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	order, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	order.Name = req.Name
	order.ClientID = req.ClientID
	order.TypeID = req.TypeID
	order.StatusID = req.StatusID
	order.Comments = req.Comments

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if req.Address != nil {
			addressID, err := upsertAddress(tx, order.AddressID, req.Address)
			if err != nil {
				return err
			}
			order.AddressID = addressID
		}
		return s.orders.WithTx(tx).Update(order)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return order, nil
}

// Delete archives an order. Its missions are untouched; they keep running
// until archived themselves.
func (s *OrderService) Delete(id uuid.UUID) error {
	if err := s.orders.Archive(id, s.clock.Now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrderNotFound
		}
		return fmt.Errorf("failed to archive order: %w", err)
	}
	return nil
}
