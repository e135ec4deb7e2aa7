package repository

import (
	"field-dispatch-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository is the identity collaborator seen from the scheduling
// engine: it answers role lookups, nothing more.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// WithTx returns a repository scoped to the given transaction.
func (r *UserRepository) WithTx(tx *gorm.DB) *UserRepository {
	return &UserRepository{db: tx}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetActiveTeamLeader resolves id to an active user holding the team leader
// role. Returns gorm.ErrRecordNotFound when the user is missing, inactive or
// wrongly roled.
func (r *UserRepository) GetActiveTeamLeader(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.
		Joins("JOIN user_roles ur ON ur.user_id = users.id").
		Joins("JOIN roles ON roles.id = ur.role_id").
		Where("users.id = ? AND users.is_active = ? AND roles.name = ?", id, true, models.RoleTeamLeader).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListTeamLeaders returns all active team leaders, ordered by last name.
func (r *UserRepository) ListTeamLeaders() ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("JOIN user_roles ur ON ur.user_id = users.id").
		Joins("JOIN roles ON roles.id = ur.role_id").
		Where("users.is_active = ? AND roles.name = ?", true, models.RoleTeamLeader).
		Order("users.last_name ASC").
		Find(&users).Error
	return users, err
}
