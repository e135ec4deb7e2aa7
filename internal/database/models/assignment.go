package models

import (
	"time"

	"github.com/google/uuid"
)

// Assignment binds a mission to one calendar day and, optionally, a team
// leader. AssignedAt is the day's UTC midnight and is the bucket key together
// with TeamLeaderID: all active assignments sharing a (team leader, day) pair
// carry a dense OrderIndex of 0..n-1.
type Assignment struct {
	BaseModel
	Archivable
	MissionID    uuid.UUID  `json:"mission_id" gorm:"type:uuid;not null;index" validate:"required"`
	TeamLeaderID *uuid.UUID `json:"team_leader_id,omitempty" gorm:"type:uuid;index:idx_assignments_bucket"`
	AssignedAt   time.Time  `json:"assigned_at" gorm:"not null;index:idx_assignments_bucket" validate:"required"`
	OrderIndex   int16      `json:"order_index" gorm:"not null;default:0"`
	IsHidden     bool       `json:"is_hidden" gorm:"default:false"`

	// Relationships
	Mission    Mission `json:"mission,omitempty" gorm:"foreignKey:MissionID;constraint:OnDelete:CASCADE"`
	TeamLeader *User   `json:"team_leader,omitempty" gorm:"foreignKey:TeamLeaderID"`
}

// TableName returns the table name for Assignment
func (Assignment) TableName() string {
	return "assignments"
}
