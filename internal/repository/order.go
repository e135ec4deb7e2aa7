package repository

import (
	"fmt"
	"time"

	"field-dispatch-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderRepository handles database operations for orders
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// WithTx returns a repository scoped to the given transaction.
func (r *OrderRepository) WithTx(tx *gorm.DB) *OrderRepository {
	return &OrderRepository{db: tx}
}

// Create inserts a new order
func (r *OrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// GetByID retrieves an order by ID
func (r *OrderRepository) GetByID(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.
		Preload("Client").
		Preload("Type").
		Preload("Status").
		Preload("Address").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetWithAddress retrieves an order and its address; used when a mission is
// created against an order without its own address.
func (r *OrderRepository) GetWithAddress(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Address").First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByClientID returns a client's non-archived orders with pagination
func (r *OrderRepository) GetByClientID(clientID uuid.UUID, limit, offset int) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	base := r.db.Model(&models.Order{}).Where("client_id = ? AND archived_at IS NULL", clientID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Type").Preload("Status").
		Where("client_id = ? AND archived_at IS NULL", clientID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&orders).Error
	return orders, total, err
}

// GetAll returns non-archived orders with pagination
func (r *OrderRepository) GetAll(limit, offset int) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	base := r.db.Model(&models.Order{}).Where("archived_at IS NULL")
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Client").Preload("Type").Preload("Status").
		Where("archived_at IS NULL").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&orders).Error
	return orders, total, err
}

// Update persists the order's current field values
func (r *OrderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

// Archive soft-deletes an order
func (r *OrderRepository) Archive(id uuid.UUID, now time.Time) error {
	res := r.db.Model(&models.Order{}).
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

// NextDisplayID produces the next human-readable order identifier.
func (r *OrderRepository) NextDisplayID() (string, error) {
	var count int64
	if err := r.db.Model(&models.Order{}).Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%06d", count+1), nil
}
