package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides common fields for all models with UUID primary keys
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets the UUID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return nil
}

// Archivable adds the soft-delete marker shared by archivable entities.
// Archived rows are history: they are excluded from active queries and
// never mutated again. The timestamp is only ever set, never cleared,
// except for missions which support explicit unarchiving.
type Archivable struct {
	ArchivedAt *time.Time `json:"archived_at,omitempty" gorm:"index"`
}

// IsArchived reports whether the row has been soft-deleted.
func (a *Archivable) IsArchived() bool {
	return a.ArchivedAt != nil
}
