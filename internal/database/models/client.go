package models

import (
	"github.com/google/uuid"
)

// Client is a customer placing orders.
type Client struct {
	BaseModel
	Archivable
	CompanyName  string     `json:"company_name" gorm:"size:100;not null" validate:"required,max=100"`
	ContactName  string     `json:"contact_name" gorm:"size:100"`
	ContactEmail string     `json:"contact_email" gorm:"size:255" validate:"omitempty,email"`
	Phone        string     `json:"phone" gorm:"size:30"`
	AddressID    *uuid.UUID `json:"address_id,omitempty" gorm:"type:uuid"`

	Address *Address `json:"address,omitempty" gorm:"foreignKey:AddressID"`
	Orders  []Order  `json:"orders,omitempty" gorm:"foreignKey:ClientID"`
}

// TableName returns the table name for Client
func (Client) TableName() string {
	return "clients"
}
