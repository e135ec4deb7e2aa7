package repository

import (
	"fmt"
	"time"

	"field-dispatch-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MissionRepository handles database operations for missions
type MissionRepository struct {
	db *gorm.DB
}

// NewMissionRepository creates a new mission repository
func NewMissionRepository(db *gorm.DB) *MissionRepository {
	return &MissionRepository{db: db}
}

// WithTx returns a repository scoped to the given transaction.
func (r *MissionRepository) WithTx(tx *gorm.DB) *MissionRepository {
	return &MissionRepository{db: tx}
}

// Create inserts a new mission
func (r *MissionRepository) Create(mission *models.Mission) error {
	return r.db.Create(mission).Error
}

// GetByID retrieves a mission by ID, archived or not
func (r *MissionRepository) GetByID(id uuid.UUID) (*models.Mission, error) {
	var mission models.Mission
	err := r.db.First(&mission, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &mission, nil
}

// GetWithDetails retrieves a mission with its taxonomy, order chain and
// active assignments (leaders preloaded, ranked).
func (r *MissionRepository) GetWithDetails(id uuid.UUID) (*models.Mission, error) {
	var mission models.Mission
	err := r.db.
		Preload("Type").
		Preload("Status").
		Preload("Address").
		Preload("TeamLeader").
		Preload("Order").
		Preload("Order.Client").
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Where("archived_at IS NULL").Order("assigned_at ASC, order_index ASC")
		}).
		Preload("Assignments.TeamLeader").
		First(&mission, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &mission, nil
}

// ListIntersecting returns the non-archived missions whose [date_from,
// date_to] range intersects the window. A finished status can be excluded by
// passing its id.
func (r *MissionRepository) ListIntersecting(from, to time.Time, excludeStatusID *uuid.UUID) ([]models.Mission, error) {
	query := r.db.
		Preload("Type").
		Preload("Status").
		Preload("Address").
		Preload("Order").
		Preload("Order.Client").
		Where("date_from <= ? AND date_to >= ?", to, from).
		Where("archived_at IS NULL")
	if excludeStatusID != nil {
		query = query.Where("status_id != ?", *excludeStatusID)
	}
	var missions []models.Mission
	err := query.Order("date_from ASC").Find(&missions).Error
	return missions, err
}

// Update persists the mission's current field values
func (r *MissionRepository) Update(mission *models.Mission) error {
	return r.db.Save(mission).Error
}

// Archive soft-deletes a mission
func (r *MissionRepository) Archive(id uuid.UUID, now time.Time) error {
	res := r.db.Model(&models.Mission{}).
		Where("id = ? AND archived_at IS NULL", id).
		Updates(map[string]interface{}{"archived_at": now, "updated_at": now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Unarchive restores a soft-deleted mission. Its assignments stay archived.
func (r *MissionRepository) Unarchive(id uuid.UUID, now time.Time) error {
	res := r.db.Model(&models.Mission{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"archived_at": nil, "updated_at": now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetHidden flips the board-level visibility flag.
func (r *MissionRepository) SetHidden(id uuid.UUID, hidden bool, now time.Time) error {
	res := r.db.Model(&models.Mission{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_hidden": hidden, "updated_at": now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// NextDisplayID produces the next human-readable mission identifier.
func (r *MissionRepository) NextDisplayID() (string, error) {
	var count int64
	if err := r.db.Model(&models.Mission{}).Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("MIS-%06d", count+1), nil
}
