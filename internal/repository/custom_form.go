package repository

import (
	"field-dispatch-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomFormRepository handles the placeholder responses the scheduling side
// seeds for the dynamic-form collaborator.
type CustomFormRepository struct {
	db *gorm.DB
}

// NewCustomFormRepository creates a new custom form repository
func NewCustomFormRepository(db *gorm.DB) *CustomFormRepository {
	return &CustomFormRepository{db: db}
}

// WithTx returns a repository scoped to the given transaction.
func (r *CustomFormRepository) WithTx(tx *gorm.DB) *CustomFormRepository {
	return &CustomFormRepository{db: tx}
}

// ListByMissionType returns the active forms attached to a mission type
func (r *CustomFormRepository) ListByMissionType(missionTypeID uuid.UUID) ([]models.CustomForm, error) {
	var forms []models.CustomForm
	err := r.db.Where("mission_type_id = ? AND archived_at IS NULL", missionTypeID).Find(&forms).Error
	return forms, err
}

// ListResponseFormIDs returns the form ids a mission already has responses for
func (r *CustomFormRepository) ListResponseFormIDs(missionID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.CustomFormResponse{}).
		Where("mission_id = ?", missionID).
		Pluck("custom_form_id", &ids).Error
	return ids, err
}

// CreateResponses inserts placeholder responses in bulk
func (r *CustomFormRepository) CreateResponses(responses []models.CustomFormResponse) error {
	if len(responses) == 0 {
		return nil
	}
	return r.db.Create(&responses).Error
}
