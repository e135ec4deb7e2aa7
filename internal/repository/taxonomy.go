package repository

import (
	"time"

	"field-dispatch-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaxonomyRepository bundles the four classification tables. They share one
// access pattern, so one repository covers them.
type TaxonomyRepository struct {
	db *gorm.DB
}

// NewTaxonomyRepository creates a new taxonomy repository
func NewTaxonomyRepository(db *gorm.DB) *TaxonomyRepository {
	return &TaxonomyRepository{db: db}
}

// Mission types

func (r *TaxonomyRepository) CreateMissionType(t *models.MissionType) error {
	return r.db.Create(t).Error
}

func (r *TaxonomyRepository) GetMissionTypeByID(id uuid.UUID) (*models.MissionType, error) {
	var t models.MissionType
	if err := r.db.Preload("CustomForms").First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaxonomyRepository) ListMissionTypes() ([]models.MissionType, error) {
	var ts []models.MissionType
	err := r.db.Where("archived_at IS NULL").Order("name ASC").Find(&ts).Error
	return ts, err
}

func (r *TaxonomyRepository) UpdateMissionType(t *models.MissionType) error {
	return r.db.Save(t).Error
}

func (r *TaxonomyRepository) ArchiveMissionType(id uuid.UUID, now time.Time) error {
	return archiveRow(r.db, &models.MissionType{}, id, now)
}

// Mission statuses

func (r *TaxonomyRepository) CreateMissionStatus(s *models.MissionStatus) error {
	return r.db.Create(s).Error
}

func (r *TaxonomyRepository) GetMissionStatusByID(id uuid.UUID) (*models.MissionStatus, error) {
	var s models.MissionStatus
	if err := r.db.First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// GetMissionStatusByName resolves a well-known status such as "finished".
func (r *TaxonomyRepository) GetMissionStatusByName(name string) (*models.MissionStatus, error) {
	var s models.MissionStatus
	if err := r.db.First(&s, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *TaxonomyRepository) ListMissionStatuses() ([]models.MissionStatus, error) {
	var ss []models.MissionStatus
	err := r.db.Where("archived_at IS NULL").Order("name ASC").Find(&ss).Error
	return ss, err
}

func (r *TaxonomyRepository) UpdateMissionStatus(s *models.MissionStatus) error {
	return r.db.Save(s).Error
}

func (r *TaxonomyRepository) ArchiveMissionStatus(id uuid.UUID, now time.Time) error {
	return archiveRow(r.db, &models.MissionStatus{}, id, now)
}

// Order types

func (r *TaxonomyRepository) CreateOrderType(t *models.OrderType) error {
	return r.db.Create(t).Error
}

func (r *TaxonomyRepository) ListOrderTypes() ([]models.OrderType, error) {
	var ts []models.OrderType
	err := r.db.Where("archived_at IS NULL").Order("name ASC").Find(&ts).Error
	return ts, err
}

func (r *TaxonomyRepository) UpdateOrderType(t *models.OrderType) error {
	return r.db.Save(t).Error
}

func (r *TaxonomyRepository) ArchiveOrderType(id uuid.UUID, now time.Time) error {
	return archiveRow(r.db, &models.OrderType{}, id, now)
}

// Order statuses

func (r *TaxonomyRepository) CreateOrderStatus(s *models.OrderStatus) error {
	return r.db.Create(s).Error
}

func (r *TaxonomyRepository) ListOrderStatuses() ([]models.OrderStatus, error) {
	var ss []models.OrderStatus
	err := r.db.Where("archived_at IS NULL").Order("name ASC").Find(&ss).Error
	return ss, err
}

func (r *TaxonomyRepository) UpdateOrderStatus(s *models.OrderStatus) error {
	return r.db.Save(s).Error
}

func (r *TaxonomyRepository) ArchiveOrderStatus(id uuid.UUID, now time.Time) error {
	return archiveRow(r.db, &models.OrderStatus{}, id, now)
}

func archiveRow(db *gorm.DB, model interface{}, id uuid.UUID, now time.Time) error {
	res := db.Model(model).
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
