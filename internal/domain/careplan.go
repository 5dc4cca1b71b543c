package domain

import (
	"context"
	"time"
)

// Careplan task statuses.
const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
	TaskStatusOverdue   = "overdue"
)

// CareplanDefinition describes a plan offered by a careplan provider.
type CareplanDefinition struct {
	Provider    string `json:"Provider"`
	PlanCode    string `json:"PlanCode"`
	PlanName    string `json:"PlanName"`
	Description string `json:"Description"`
	DurationDays int   `json:"DurationDays"`
}

// CareplanEnrollment records a patient's enrollment into a provider careplan.
type CareplanEnrollment struct {
	BaseModel
	PatientUserID string     `gorm:"size:36;index;not null" json:"PatientUserId"`
	Provider      string     `gorm:"size:128;not null" json:"Provider"`
	PlanCode      string     `gorm:"size:64;not null" json:"PlanCode"`
	PlanName      string     `gorm:"size:255" json:"PlanName"`
	EnrollmentID  string     `gorm:"size:64" json:"EnrollmentId"`
	StartDate     time.Time  `json:"StartDate"`
	EndDate       *time.Time `json:"EndDate"`
}

// CareplanTask is a scheduled activity generated for an enrollment.
type CareplanTask struct {
	BaseModel
	EnrollmentID string    `gorm:"size:36;index;not null" json:"EnrollmentId"`
	Title        string    `gorm:"size:255;not null" json:"Title"`
	Category     string    `gorm:"size:64" json:"Category"`
	Sequence     int       `json:"Sequence"`
	ScheduledAt  time.Time `json:"ScheduledAt"`
	Status       string    `gorm:"size:20;not null" json:"Status"`
}

// EnrollmentDomainModel is the write-side shape for enrollments.
type EnrollmentDomainModel struct {
	PatientUserID string
	Provider      *string
	PlanCode      *string
	PlanName      *string
	StartDate     *time.Time
	EndDate       *time.Time
}

// CareplanWeeklyStatus summarizes task progress for the week containing Day.
type CareplanWeeklyStatus struct {
	EnrollmentID   string    `json:"EnrollmentId"`
	WeekStart      time.Time `json:"WeekStart"`
	WeekEnd        time.Time `json:"WeekEnd"`
	TotalTasks     int       `json:"TotalTasks"`
	CompletedTasks int       `json:"CompletedTasks"`
	PendingTasks   int       `json:"PendingTasks"`
}

// CareplanProvider supplies plan definitions and the task schedule for an
// enrollment. Implementations may call an external careplan platform.
type CareplanProvider interface {
	Name() string
	AvailablePlans(ctx context.Context) ([]CareplanDefinition, error)
	PlanTasks(ctx context.Context, enrollment *CareplanEnrollment) ([]CareplanTask, error)
}

// CareplanRepository defines the data access interface for enrollments and
// generated tasks.
type CareplanRepository interface {
	CreateEnrollment(ctx context.Context, model EnrollmentDomainModel) (*CareplanEnrollment, error)
	GetEnrollmentByID(ctx context.Context, id string) (*CareplanEnrollment, error)
	GetPatientEnrollments(ctx context.Context, patientUserID string) ([]CareplanEnrollment, error)
	DeleteEnrollment(ctx context.Context, id string) error

	CreateTasks(ctx context.Context, tasks []CareplanTask) error
	GetEnrollmentTasks(ctx context.Context, enrollmentID string) ([]CareplanTask, error)
	GetTasksBetween(ctx context.Context, enrollmentID string, from, to time.Time) ([]CareplanTask, error)
	UpdateTaskStatus(ctx context.Context, taskID, status string) (*CareplanTask, error)
}

// CareplanService defines the business logic interface for careplans.
type CareplanService interface {
	AvailableCareplans(ctx context.Context) ([]CareplanDefinition, error)
	Enroll(ctx context.Context, model EnrollmentDomainModel) (*CareplanEnrollment, error)
	GetPatientEnrollments(ctx context.Context, patientUserID string) ([]CareplanEnrollment, error)
	DeleteEnrollment(ctx context.Context, enrollmentID string) error
	FetchTasks(ctx context.Context, enrollmentID string) ([]CareplanTask, error)
	GetWeeklyStatus(ctx context.Context, enrollmentID string, day time.Time) (*CareplanWeeklyStatus, error)
	CompleteTask(ctx context.Context, taskID string) (*CareplanTask, error)
}
