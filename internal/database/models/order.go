package models

import (
	"github.com/google/uuid"
)

// Order groups the missions performed for a client.
type Order struct {
	BaseModel
	Archivable
	DisplayID string     `json:"display_id" gorm:"size:20;uniqueIndex;not null"`
	Name      string     `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	ClientID  uuid.UUID  `json:"client_id" gorm:"type:uuid;not null;index" validate:"required"`
	TypeID    uuid.UUID  `json:"type_id" gorm:"type:uuid;not null" validate:"required"`
	StatusID  uuid.UUID  `json:"status_id" gorm:"type:uuid;not null" validate:"required"`
	AddressID *uuid.UUID `json:"address_id,omitempty" gorm:"type:uuid"`
	Comments  string     `json:"comments" gorm:"type:text"`

	Client   Client      `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Type     OrderType   `json:"type,omitempty" gorm:"foreignKey:TypeID"`
	Status   OrderStatus `json:"status,omitempty" gorm:"foreignKey:StatusID"`
	Address  *Address    `json:"address,omitempty" gorm:"foreignKey:AddressID"`
	Missions []Mission   `json:"missions,omitempty" gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for Order
func (Order) TableName() string {
	return "orders"
}
