package domain

import "context"

// Patient is the patient profile attached to a user account. UserID references
// the owning User; the user is created and lifecycle-managed independently.
type Patient struct {
	BaseModel
	UserID            string `gorm:"size:36;uniqueIndex;not null" json:"UserId"`
	EhrID             string `gorm:"size:64" json:"EhrId"`
	NationalHealthID  string `gorm:"size:64" json:"NationalHealthId"`
	InsuranceProvider string `gorm:"size:128" json:"InsuranceProvider"`
	AddressLine       string `gorm:"size:255" json:"AddressLine"`
	City              string `gorm:"size:100" json:"City"`
	Country           string `gorm:"size:100" json:"Country"`
	PostalCode        string `gorm:"size:20" json:"PostalCode"`
}

// PatientAppRegistration records that a patient user has registered one of the
// companion applications. Registrations drive EHR forwarding eligibility.
type PatientAppRegistration struct {
	BaseModel
	PatientUserID string `gorm:"size:36;index;not null" json:"PatientUserId"`
	AppName       string `gorm:"size:128;not null" json:"AppName"`
}

// PatientDomainModel is the write-side shape for creating or updating a
// patient profile. Nil fields mean "unchanged" on update.
type PatientDomainModel struct {
	UserID            string
	EhrID             *string
	NationalHealthID  *string
	InsuranceProvider *string
	AddressLine       *string
	City              *string
	Country           *string
	PostalCode        *string
}

// PatientSearchFilters narrows a patient search.
type PatientSearchFilters struct {
	BaseSearchFilters
	UserID *string
	City   *string
}

// PatientRepository defines the data access interface for patient profiles.
type PatientRepository interface {
	Create(ctx context.Context, model PatientDomainModel) (*Patient, error)
	GetByUserID(ctx context.Context, userID string) (*Patient, error)
	Search(ctx context.Context, filters PatientSearchFilters) (*SearchResults[Patient], error)
	Update(ctx context.Context, userID string, model PatientDomainModel) (*Patient, error)
	Delete(ctx context.Context, userID string) error

	AddAppRegistration(ctx context.Context, patientUserID, appName string) (*PatientAppRegistration, error)
	GetAppRegistrations(ctx context.Context, patientUserID string) ([]PatientAppRegistration, error)
}

// PatientService defines the business logic interface for patient profiles.
type PatientService interface {
	Create(ctx context.Context, model PatientDomainModel) (*Patient, error)
	GetByUserID(ctx context.Context, userID string) (*Patient, error)
	Search(ctx context.Context, filters PatientSearchFilters) (*SearchResults[Patient], error)
	Update(ctx context.Context, userID string, model PatientDomainModel) (*Patient, error)
	Delete(ctx context.Context, userID string) error

	RegisterApp(ctx context.Context, patientUserID, appName string) (*PatientAppRegistration, error)
	AppRegistrations(ctx context.Context, patientUserID string) ([]PatientAppRegistration, error)
}
