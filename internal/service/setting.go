package service

import (
	"errors"
	"fmt"

	"field-dispatch-backend/internal/database/models"
	apperrors "field-dispatch-backend/internal/errors"
	"field-dispatch-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SettingService exposes the global key/value flags, among them the
// show_weekends toggle the board queries consult.
type SettingService struct {
	settings  *repository.SettingRepository
	validator *validator.Validate
}

// NewSettingService creates a new setting service
func NewSettingService(settings *repository.SettingRepository, validator *validator.Validate) *SettingService {
	return &SettingService{settings: settings, validator: validator}
}

// SettingRequest carries a setting's new value
type SettingRequest struct {
	Value string `json:"value" validate:"max=200"`
}

// GetByKey retrieves a setting by its key
func (s *SettingService) GetByKey(key string) (*models.Setting, error) {
	setting, err := s.settings.GetByKey(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSettingNotFound
		}
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}
	return setting, nil
}

// List returns all settings
func (s *SettingService) List() ([]models.Setting, error) {
	return s.settings.GetAll()
}

// Set writes a setting, creating it when absent
func (s *SettingService) Set(key string, req *SettingRequest) (*models.Setting, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	setting, err := s.settings.Upsert(key, req.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to save setting: %w", err)
	}
	return setting, nil
}
