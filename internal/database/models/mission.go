package models

import (
	"time"

	"github.com/google/uuid"
)

// Mission represents a time-bounded job at a location. DateFrom and DateTo
// form an inclusive range; DateTo is always normalized to the end of its
// calendar day (UTC) so the last day is fully covered.
type Mission struct {
	BaseModel
	Archivable
	DisplayID        string     `json:"display_id" gorm:"size:20;uniqueIndex;not null"`
	Name             string     `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	TypeID           uuid.UUID  `json:"type_id" gorm:"type:uuid;not null;index" validate:"required"`
	StatusID         uuid.UUID  `json:"status_id" gorm:"type:uuid;not null;index" validate:"required"`
	OrderID          *uuid.UUID `json:"order_id,omitempty" gorm:"type:uuid;index"`
	TeamLeaderID     *uuid.UUID `json:"team_leader_id,omitempty" gorm:"type:uuid;index"`
	AddressID        *uuid.UUID `json:"address_id,omitempty" gorm:"type:uuid"`
	DateFrom         time.Time  `json:"date_from" gorm:"not null;index"`
	DateTo           time.Time  `json:"date_to" gorm:"not null;index"`
	Comments         string     `json:"comments" gorm:"type:text"`
	InternalComments string     `json:"internal_comments" gorm:"type:text"`
	IsHidden         bool       `json:"is_hidden" gorm:"default:false"`

	// Relationships
	Type        MissionType    `json:"type,omitempty" gorm:"foreignKey:TypeID"`
	Status      MissionStatus  `json:"status,omitempty" gorm:"foreignKey:StatusID"`
	Order       *Order         `json:"order,omitempty" gorm:"foreignKey:OrderID"`
	TeamLeader  *User          `json:"team_leader,omitempty" gorm:"foreignKey:TeamLeaderID"`
	Address     *Address       `json:"address,omitempty" gorm:"foreignKey:AddressID"`
	Assignments []Assignment   `json:"assignments,omitempty" gorm:"foreignKey:MissionID"`
}

// TableName returns the table name for Mission
func (Mission) TableName() string {
	return "missions"
}
