package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// CustomForm is a dynamic form attached to a mission type. The form engine
// itself is an external collaborator; the scheduling side only seeds empty
// responses when a mission is created or its type changes.
type CustomForm struct {
	BaseModel
	Archivable
	Name          string          `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	MissionTypeID uuid.UUID       `json:"mission_type_id" gorm:"type:uuid;not null;index" validate:"required"`
	Structure     json.RawMessage `json:"structure" gorm:"type:jsonb"`
}

// TableName returns the table name for CustomForm
func (CustomForm) TableName() string {
	return "custom_forms"
}

// CustomFormResponse holds a mission's answers to one custom form.
type CustomFormResponse struct {
	BaseModel
	CustomFormID uuid.UUID       `json:"custom_form_id" gorm:"type:uuid;not null;index" validate:"required"`
	MissionID    uuid.UUID       `json:"mission_id" gorm:"type:uuid;not null;index" validate:"required"`
	Data         json.RawMessage `json:"data" gorm:"type:jsonb"`

	CustomForm CustomForm `json:"custom_form,omitempty" gorm:"foreignKey:CustomFormID"`
}

// TableName returns the table name for CustomFormResponse
func (CustomFormResponse) TableName() string {
	return "custom_form_responses"
}
