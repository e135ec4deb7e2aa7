package models

import (
	"github.com/google/uuid"
)

// User is a minimal identity row. The scheduling engine only consults users
// to answer "is this an active team leader"; account management lives in the
// identity collaborator, not here.
type User struct {
	BaseModel
	Email     string `json:"email" gorm:"size:255;uniqueIndex;not null" validate:"required,email"`
	FirstName string `json:"first_name" gorm:"size:100"`
	LastName  string `json:"last_name" gorm:"size:100"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`

	Roles []Role `json:"roles,omitempty" gorm:"many2many:user_roles;"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// Role is a named capability attached to users.
type Role struct {
	BaseModel
	Name string `json:"name" gorm:"size:50;uniqueIndex;not null" validate:"required"`
}

// TableName returns the table name for Role
func (Role) TableName() string {
	return "roles"
}

// RoleTeamLeader is the role consulted by dispatch operations.
const RoleTeamLeader = "teamleader"

// UserRole is the join row between users and roles.
type UserRole struct {
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey"`
	RoleID uuid.UUID `json:"role_id" gorm:"type:uuid;primaryKey"`
}

// TableName returns the table name for UserRole
func (UserRole) TableName() string {
	return "user_roles"
}
