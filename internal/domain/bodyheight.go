package domain

import (
	"context"
	"time"
)

// BodyHeight is a height measurement for a patient, in centimeters unless a
// different unit is recorded.
type BodyHeight struct {
	BaseModel
	PatientUserID string     `gorm:"size:36;index;not null" json:"PatientUserId"`
	BodyHeight    float64    `gorm:"not null" json:"BodyHeight"`
	Unit          string     `gorm:"size:32" json:"Unit"`
	RecordDate    *time.Time `json:"RecordDate"`
}

// BodyHeightDomainModel is the write-side shape for height measurements.
type BodyHeightDomainModel struct {
	PatientUserID string
	BodyHeight    *float64
	Unit          *string
	RecordDate    *time.Time
}

// BodyHeightSearchFilters narrows a body height search.
type BodyHeightSearchFilters struct {
	BaseSearchFilters
	PatientUserID *string
	MinValue      *float64
	MaxValue      *float64
}

// BodyHeightRepository defines the data access interface for height
// measurements.
type BodyHeightRepository interface {
	Create(ctx context.Context, model BodyHeightDomainModel) (*BodyHeight, error)
	GetByID(ctx context.Context, id string) (*BodyHeight, error)
	Search(ctx context.Context, filters BodyHeightSearchFilters) (*SearchResults[BodyHeight], error)
	Update(ctx context.Context, id string, model BodyHeightDomainModel) (*BodyHeight, error)
	Delete(ctx context.Context, id string) error
}

// BodyHeightService defines the business logic interface for height
// measurements.
type BodyHeightService interface {
	Create(ctx context.Context, model BodyHeightDomainModel) (*BodyHeight, error)
	GetByID(ctx context.Context, id string) (*BodyHeight, error)
	Search(ctx context.Context, filters BodyHeightSearchFilters) (*SearchResults[BodyHeight], error)
	Update(ctx context.Context, id string, model BodyHeightDomainModel) (*BodyHeight, error)
	Delete(ctx context.Context, id string) error
}
