package models

import (
	"github.com/google/uuid"
)

// Taxonomy rows classify missions and orders. They are referenced by the
// scheduling engine (status drives the "finished" exclusion on the board)
// but are otherwise plain CRUD.

// MissionType classifies a mission and carries its board styling.
type MissionType struct {
	BaseModel
	Archivable
	Name        string     `json:"name" gorm:"size:50;not null" validate:"required,max=50"`
	Color       string     `json:"color" gorm:"size:10"`
	Icon        string     `json:"icon" gorm:"size:50"`
	OrderTypeID *uuid.UUID `json:"order_type_id,omitempty" gorm:"type:uuid"`

	OrderType   *OrderType   `json:"order_type,omitempty" gorm:"foreignKey:OrderTypeID"`
	CustomForms []CustomForm `json:"custom_forms,omitempty" gorm:"foreignKey:MissionTypeID"`
}

// TableName returns the table name for MissionType
func (MissionType) TableName() string {
	return "mission_types"
}

// MissionStatus is a mission lifecycle state.
type MissionStatus struct {
	BaseModel
	Archivable
	Name  string `json:"name" gorm:"size:50;uniqueIndex;not null" validate:"required,max=50"`
	Color string `json:"color" gorm:"size:10"`
}

// TableName returns the table name for MissionStatus
func (MissionStatus) TableName() string {
	return "mission_statuses"
}

// MissionStatusFinished marks missions excluded from the board by default.
const MissionStatusFinished = "finished"

// OrderType classifies an order.
type OrderType struct {
	BaseModel
	Archivable
	Name string `json:"name" gorm:"size:50;not null" validate:"required,max=50"`
}

// TableName returns the table name for OrderType
func (OrderType) TableName() string {
	return "order_types"
}

// OrderStatus is an order lifecycle state.
type OrderStatus struct {
	BaseModel
	Archivable
	Name string `json:"name" gorm:"size:50;not null" validate:"required,max=50"`
}

// TableName returns the table name for OrderStatus
func (OrderStatus) TableName() string {
	return "order_statuses"
}
