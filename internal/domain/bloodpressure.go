package domain

import (
	"context"
	"time"
)

// BloodPressure is a systolic/diastolic reading for a patient.
type BloodPressure struct {
	BaseModel
	PatientUserID    string     `gorm:"size:36;index;not null" json:"PatientUserId"`
	Systolic         int        `gorm:"not null" json:"Systolic"`
	Diastolic        int        `gorm:"not null" json:"Diastolic"`
	Unit             string     `gorm:"size:32" json:"Unit"`
	RecordDate       *time.Time `json:"RecordDate"`
	RecordedByUserID *string    `gorm:"size:36" json:"RecordedByUserId"`
}

// BloodPressureDomainModel is the write-side shape for blood pressure
// readings. Nil fields mean "unchanged" on update.
type BloodPressureDomainModel struct {
	PatientUserID    string
	Systolic         *int
	Diastolic        *int
	Unit             *string
	RecordDate       *time.Time
	RecordedByUserID *string
}

// BloodPressureSearchFilters narrows a blood pressure search.
type BloodPressureSearchFilters struct {
	BaseSearchFilters
	PatientUserID *string
	MinSystolic   *int
	MaxSystolic   *int
	MinDiastolic  *int
	MaxDiastolic  *int
}

// BloodPressureRepository defines the data access interface for blood
// pressure readings.
type BloodPressureRepository interface {
	Create(ctx context.Context, model BloodPressureDomainModel) (*BloodPressure, error)
	GetByID(ctx context.Context, id string) (*BloodPressure, error)
	Search(ctx context.Context, filters BloodPressureSearchFilters) (*SearchResults[BloodPressure], error)
	Update(ctx context.Context, id string, model BloodPressureDomainModel) (*BloodPressure, error)
	Delete(ctx context.Context, id string) error
}

// BloodPressureService defines the business logic interface for blood
// pressure readings.
type BloodPressureService interface {
	Create(ctx context.Context, model BloodPressureDomainModel) (*BloodPressure, error)
	GetByID(ctx context.Context, id string) (*BloodPressure, error)
	Search(ctx context.Context, filters BloodPressureSearchFilters) (*SearchResults[BloodPressure], error)
	Update(ctx context.Context, id string, model BloodPressureDomainModel) (*BloodPressure, error)
	Delete(ctx context.Context, id string) error
}
