package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel is the common base struct for all domain models.
// Primary keys are UUID strings assigned before insert; an entity's id is
// immutable once created. It replaces gorm.Model to avoid the implicit soft
// delete behavior of DeletedAt — deletes in this service are hard removals.
type BaseModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `json:"CreatedAt"`
	UpdatedAt time.Time `json:"UpdatedAt"`
}

// BeforeCreate assigns a fresh UUID unless the caller supplied one.
func (m *BaseModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
