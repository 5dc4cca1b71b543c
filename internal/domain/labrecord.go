package domain

import (
	"context"
	"time"
)

// LabRecord is a single laboratory result for a patient, e.g. a glucose or
// cholesterol reading.
type LabRecord struct {
	BaseModel
	PatientUserID  string     `gorm:"size:36;index;not null" json:"PatientUserId"`
	TypeName       string     `gorm:"size:128" json:"TypeName"`
	DisplayName    string     `gorm:"size:128;not null" json:"DisplayName"`
	PrimaryValue   float64    `json:"PrimaryValue"`
	SecondaryValue *float64   `json:"SecondaryValue"`
	Unit           string     `gorm:"size:32" json:"Unit"`
	ReportDate     *time.Time `json:"ReportDate"`
	RecordedAt     *time.Time `json:"RecordedAt"`
}

// LabRecordDomainModel is the write-side shape for lab records. Nil fields
// mean "unchanged" on update.
type LabRecordDomainModel struct {
	PatientUserID  string
	TypeName       *string
	DisplayName    *string
	PrimaryValue   *float64
	SecondaryValue *float64
	Unit           *string
	ReportDate     *time.Time
	RecordedAt     *time.Time
}

// LabRecordSearchFilters narrows a lab record search. DisplayName matches by
// substring; value and date ranges accept either or both bounds.
type LabRecordSearchFilters struct {
	BaseSearchFilters
	PatientUserID   *string
	TypeName        *string
	DisplayName     *string
	MinPrimaryValue *float64
	MaxPrimaryValue *float64
}

// LabRecordRepository defines the data access interface for lab records.
type LabRecordRepository interface {
	Create(ctx context.Context, model LabRecordDomainModel) (*LabRecord, error)
	GetByID(ctx context.Context, id string) (*LabRecord, error)
	Search(ctx context.Context, filters LabRecordSearchFilters) (*SearchResults[LabRecord], error)
	Update(ctx context.Context, id string, model LabRecordDomainModel) (*LabRecord, error)
	Delete(ctx context.Context, id string) error
}

// LabRecordService defines the business logic interface for lab records.
// Create and Update forward eligible records to the EHR store in the
// background.
type LabRecordService interface {
	Create(ctx context.Context, model LabRecordDomainModel) (*LabRecord, error)
	GetByID(ctx context.Context, id string) (*LabRecord, error)
	Search(ctx context.Context, filters LabRecordSearchFilters) (*SearchResults[LabRecord], error)
	Update(ctx context.Context, id string, model LabRecordDomainModel) (*LabRecord, error)
	Delete(ctx context.Context, id string) error
}
