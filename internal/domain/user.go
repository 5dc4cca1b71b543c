package domain

import (
	"context"
	"time"
)

// Role names recognized by the service.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

// User represents a person account in the system. Person details are stored
// inline; patient and doctor profiles reference the user by id.
type User struct {
	BaseModel
	FirstName    string     `gorm:"size:100" json:"FirstName"`
	LastName     string     `gorm:"size:100" json:"LastName"`
	Prefix       string     `gorm:"size:20" json:"Prefix"`
	Phone        string     `gorm:"size:30;index" json:"Phone"`
	Email        string     `gorm:"size:255;uniqueIndex;not null" json:"Email"`
	Gender       string     `gorm:"size:20" json:"Gender"`
	BirthDate    *time.Time `json:"BirthDate"`
	Role         string     `gorm:"size:20;not null;index" json:"Role"`
	PasswordHash string     `gorm:"size:255" json:"-"`
}

// UserRepository defines the data access interface for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	CountByRole(ctx context.Context, role string) (int64, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
}
