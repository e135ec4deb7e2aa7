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

// TaxonomyService handles the four mission/order classification vocabularies
type TaxonomyService struct {
	taxonomy  *repository.TaxonomyRepository
	validator *validator.Validate
	clock     scheduling.Clock
}

// NewTaxonomyService creates a new taxonomy service
func NewTaxonomyService(taxonomy *repository.TaxonomyRepository, validator *validator.Validate, clock scheduling.Clock) *TaxonomyService {
	return &TaxonomyService{taxonomy: taxonomy, validator: validator, clock: clock}
}

// MissionTypeRequest carries the writable mission type fields
type MissionTypeRequest struct {
	Name        string     `json:"name" validate:"required,max=50"`
	Color       string     `json:"color,omitempty" validate:"max=10"`
	Icon        string     `json:"icon,omitempty" validate:"max=50"`
	OrderTypeID *uuid.UUID `json:"order_type_id,omitempty"`
}

// NameRequest carries the single writable field of the simple vocabularies
type NameRequest struct {
	Name  string `json:"name" validate:"required,max=50"`
	Color string `json:"color,omitempty" validate:"max=10"`
}

// CreateMissionType creates a mission type
func (s *TaxonomyService) CreateMissionType(req *MissionTypeRequest) (*models.MissionType, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	t := &models.MissionType{Name: req.Name, Color: req.Color, Icon: req.Icon, OrderTypeID: req.OrderTypeID}
	if err := s.taxonomy.CreateMissionType(t); err != nil {
		return nil, fmt.Errorf("failed to create mission type: %w", err)
	}
	return t, nil
}

// ListMissionTypes returns the non-archived mission types
func (s *TaxonomyService) ListMissionTypes() ([]models.MissionType, error) {
	return s.taxonomy.ListMissionTypes()
}

// UpdateMissionType replaces a mission type's writable fields
func (s *TaxonomyService) UpdateMissionType(id uuid.UUID, req *MissionTypeRequest) (*models.MissionType, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	t, err := s.taxonomy.GetMissionTypeByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMissionTypeNotFound
		}
		return nil, fmt.Errorf("failed to get mission type: %w", err)
	}
	t.Name = req.Name
	t.Color = req.Color
	t.Icon = req.Icon
	t.OrderTypeID = req.OrderTypeID
	if err := s.taxonomy.UpdateMissionType(t); err != nil {
		return nil, fmt.Errorf("failed to update mission type: %w", err)
	}
	return t, nil
}

// DeleteMissionType archives a mission type
func (s *TaxonomyService) DeleteMissionType(id uuid.UUID) error {
	if err := s.taxonomy.ArchiveMissionType(id, s.clock.Now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMissionTypeNotFound
		}
		return fmt.Errorf("failed to archive mission type: %w", err)
	}
	return nil
}

// CreateMissionStatus creates a mission status
func (s *TaxonomyService) CreateMissionStatus(req *NameRequest) (*models.MissionStatus, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	st := &models.MissionStatus{Name: req.Name, Color: req.Color}
	if err := s.taxonomy.CreateMissionStatus(st); err != nil {
		return nil, fmt.Errorf("failed to create mission status: %w", err)
	}
	return st, nil
}

// ListMissionStatuses returns the non-archived mission statuses
func (s *TaxonomyService) ListMissionStatuses() ([]models.MissionStatus, error) {
	return s.taxonomy.ListMissionStatuses()
}

// UpdateMissionStatus replaces a mission status's writable fields
func (s *TaxonomyService) UpdateMissionStatus(id uuid.UUID, req *NameRequest) (*models.MissionStatus, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	st, err := s.taxonomy.GetMissionStatusByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMissionStatusNotFound
		}
		return nil, fmt.Errorf("failed to get mission status: %w", err)
	}
	st.Name = req.Name
	st.Color = req.Color
	if err := s.taxonomy.UpdateMissionStatus(st); err != nil {
		return nil, fmt.Errorf("failed to update mission status: %w", err)
	}
	return st, nil
}

// DeleteMissionStatus archives a mission status
func (s *TaxonomyService) DeleteMissionStatus(id uuid.UUID) error {
	if err := s.taxonomy.ArchiveMissionStatus(id, s.clock.Now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMissionStatusNotFound
		}
		return fmt.Errorf("failed to archive mission status: %w", err)
	}
	return nil
}

// CreateOrderType creates an order type
func (s *TaxonomyService) CreateOrderType(req *NameRequest) (*models.OrderType, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	t := &models.OrderType{Name: req.Name}
	if err := s.taxonomy.CreateOrderType(t); err != nil {
		return nil, fmt.Errorf("failed to create order type: %w", err)
	}
	return t, nil
}

// ListOrderTypes returns the non-archived order types
func (s *TaxonomyService) ListOrderTypes() ([]models.OrderType, error) {
	return s.taxonomy.ListOrderTypes()
}

// UpdateOrderType replaces an order type's name
func (s *TaxonomyService) UpdateOrderType(id uuid.UUID, req *NameRequest) (*models.OrderType, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	t := &models.OrderType{Name: req.Name}
	t.ID = id
	if err := s.taxonomy.UpdateOrderType(t); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderTypeNotFound
		}
		return nil, fmt.Errorf("failed to update order type: %w", err)
	}
	return t, nil
}

// DeleteOrderType archives an order type
func (s *TaxonomyService) DeleteOrderType(id uuid.UUID) error {
	if err := s.taxonomy.ArchiveOrderType(id, s.clock.Now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrderTypeNotFound
		}
		return fmt.Errorf("failed to archive order type: %w", err)
	}
	return nil
}

// CreateOrderStatus creates an order status
func (s *TaxonomyService) CreateOrderStatus(req *NameRequest) (*models.OrderStatus, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	st := &models.OrderStatus{Name: req.Name}
	if err := s.taxonomy.CreateOrderStatus(st); err != nil {
		return nil, fmt.Errorf("failed to create order status: %w", err)
	}
	return st, nil
}

// ListOrderStatuses returns the non-archived order statuses
func (s *TaxonomyService) ListOrderStatuses() ([]models.OrderStatus, error) {
	return s.taxonomy.ListOrderStatuses()
}

// UpdateOrderStatus replaces an order status's name
func (s *TaxonomyService) UpdateOrderStatus(id uuid.UUID, req *NameRequest) (*models.OrderStatus, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	st := &models.OrderStatus{Name: req.Name}
	st.ID = id
	if err := s.taxonomy.UpdateOrderStatus(st); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderStatusNotFound
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return st, nil
}

// DeleteOrderStatus archives an order status
func (s *TaxonomyService) DeleteOrderStatus(id uuid.UUID) error {
	if err := s.taxonomy.ArchiveOrderStatus(id, s.clock.Now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrderStatusNotFound
		}
		return fmt.Errorf("failed to archive order status: %w", err)
	}
	return nil
}
