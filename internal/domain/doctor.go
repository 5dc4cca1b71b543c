package domain

import "context"

// Doctor is the doctor profile attached to a user account.
type Doctor struct {
	BaseModel
	UserID             string `gorm:"size:36;uniqueIndex;not null" json:"UserId"`
	EhrID              string `gorm:"size:64" json:"EhrId"`
	Specialty          string `gorm:"size:128" json:"Specialty"`
	Qualification      string `gorm:"size:255" json:"Qualification"`
	RegistrationNumber string `gorm:"size:64" json:"RegistrationNumber"`
	About              string `gorm:"size:1024" json:"About"`
}

// DoctorDomainModel is the write-side shape for doctor profiles.
type DoctorDomainModel struct {
	UserID             string
	EhrID              *string
	Specialty          *string
	Qualification      *string
	RegistrationNumber *string
	About              *string
}

// DoctorSearchFilters narrows a doctor search. Specialty matches by substring.
type DoctorSearchFilters struct {
	BaseSearchFilters
	UserID    *string
	Specialty *string
}

// DoctorRepository defines the data access interface for doctor profiles.
type DoctorRepository interface {
	Create(ctx context.Context, model DoctorDomainModel) (*Doctor, error)
	GetByUserID(ctx context.Context, userID string) (*Doctor, error)
	Search(ctx context.Context, filters DoctorSearchFilters) (*SearchResults[Doctor], error)
	Update(ctx context.Context, userID string, model DoctorDomainModel) (*Doctor, error)
	Delete(ctx context.Context, userID string) error
}

// DoctorService defines the business logic interface for doctor profiles.
type DoctorService interface {
	Create(ctx context.Context, model DoctorDomainModel) (*Doctor, error)
	GetByUserID(ctx context.Context, userID string) (*Doctor, error)
	Search(ctx context.Context, filters DoctorSearchFilters) (*SearchResults[Doctor], error)
	Update(ctx context.Context, userID string, model DoctorDomainModel) (*Doctor, error)
	Delete(ctx context.Context, userID string) error
}
