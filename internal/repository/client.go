package repository

import (
	"time"

	"field-dispatch-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientRepository handles database operations for clients
type ClientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// WithTx returns a repository scoped to the given transaction.
func (r *ClientRepository) WithTx(tx *gorm.DB) *ClientRepository {
	return &ClientRepository{db: tx}
}

// Create inserts a new client
func (r *ClientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

// GetByID retrieves a client by ID
func (r *ClientRepository) GetByID(id uuid.UUID) (*models.Client, error) {
	var client models.Client
	err := r.db.Preload("Address").First(&client, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// GetAll returns non-archived clients with pagination
func (r *ClientRepository) GetAll(limit, offset int) ([]models.Client, int64, error) {
	var clients []models.Client
	var total int64

	base := r.db.Model(&models.Client{}).Where("archived_at IS NULL")
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Address").
		Where("archived_at IS NULL").
		Order("company_name ASC").
		Limit(limit).Offset(offset).
		Find(&clients).Error
	return clients, total, err
}

// Update persists the client's current field values
func (r *ClientRepository) Update(client *models.Client) error {
	return r.db.Save(client).Error
}

// Archive soft-deletes a client
func (r *ClientRepository) Archive(id uuid.UUID, now time.Time) error {
	res := r.db.Model(&models.Client{}).
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
