package careplan

import (
	"context"
	"time"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
)

// careplanService implements domain.CareplanService.
type careplanService struct {
	repo     domain.CareplanRepository
	provider domain.CareplanProvider
}

// NewService creates a CareplanService backed by the given provider.
func NewService(repo domain.CareplanRepository, provider domain.CareplanProvider) domain.CareplanService {
	return &careplanService{repo: repo, provider: provider}
}

// AvailableCareplans returns the provider's plan catalogue.
func (s *careplanService) AvailableCareplans(ctx context.Context) ([]domain.CareplanDefinition, error) {
	return s.provider.AvailablePlans(ctx)
}

// Enroll validates the plan, creates the enrollment, and generates its task
// schedule. The end date is derived from the plan duration when not supplied.
func (s *careplanService) Enroll(ctx context.Context, model domain.EnrollmentDomainModel) (*domain.CareplanEnrollment, error) {
	if model.PatientUserID == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "patient user id is required", nil)
	}
	if model.Provider != nil && *model.Provider != s.provider.Name() {
		return nil, domain.NewAppError(domain.CodeValidation, "unknown careplan provider", nil)
	}
	if model.PlanCode == nil || *model.PlanCode == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "plan code is required", nil)
	}

	definition, err := FindDefinition(ctx, s.provider, *model.PlanCode)
	if err != nil {
		return nil, err
	}

	providerName := s.provider.Name()
	model.Provider = &providerName
	if model.PlanName == nil {
		model.PlanName = &definition.PlanName
	}

	start := time.Now().UTC().Truncate(24 * time.Hour)
	if model.StartDate != nil {
		start = *model.StartDate
	}
	model.StartDate = &start
	if model.EndDate == nil && definition.DurationDays > 0 {
		end := start.AddDate(0, 0, definition.DurationDays)
		model.EndDate = &end
	}

	enrollment, err := s.repo.CreateEnrollment(ctx, model)
	if err != nil {
		return nil, err
	}

	tasks, err := s.provider.PlanTasks(ctx, enrollment)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateTasks(ctx, tasks); err != nil {
		return nil, err
	}

	return enrollment, nil
}

// GetPatientEnrollments returns a patient's enrollments.
func (s *careplanService) GetPatientEnrollments(ctx context.Context, patientUserID string) ([]domain.CareplanEnrollment, error) {
	return s.repo.GetPatientEnrollments(ctx, patientUserID)
}

// DeleteEnrollment removes an enrollment and its generated tasks.
func (s *careplanService) DeleteEnrollment(ctx context.Context, enrollmentID string) error {
	return s.repo.DeleteEnrollment(ctx, enrollmentID)
}

// FetchTasks returns the enrollment's task schedule.
func (s *careplanService) FetchTasks(ctx context.Context, enrollmentID string) ([]domain.CareplanTask, error) {
	if _, err := s.repo.GetEnrollmentByID(ctx, enrollmentID); err != nil {
		return nil, err
	}
	return s.repo.GetEnrollmentTasks(ctx, enrollmentID)
}

// GetWeeklyStatus summarizes task progress for the Monday-to-Sunday week
// containing day.
func (s *careplanService) GetWeeklyStatus(ctx context.Context, enrollmentID string, day time.Time) (*domain.CareplanWeeklyStatus, error) {
	if _, err := s.repo.GetEnrollmentByID(ctx, enrollmentID); err != nil {
		return nil, err
	}

	weekStart := startOfWeek(day)
	weekEnd := weekStart.AddDate(0, 0, 7)

	tasks, err := s.repo.GetTasksBetween(ctx, enrollmentID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	status := &domain.CareplanWeeklyStatus{
		EnrollmentID: enrollmentID,
		WeekStart:    weekStart,
		WeekEnd:      weekEnd.AddDate(0, 0, -1),
		TotalTasks:   len(tasks),
	}
	for _, task := range tasks {
		if task.Status == domain.TaskStatusCompleted {
			status.CompletedTasks++
		} else {
			status.PendingTasks++
		}
	}
	return status, nil
}

// CompleteTask marks a task completed.
func (s *careplanService) CompleteTask(ctx context.Context, taskID string) (*domain.CareplanTask, error) {
	return s.repo.UpdateTaskStatus(ctx, taskID, domain.TaskStatusCompleted)
}

// startOfWeek returns midnight UTC of the Monday of the week containing day.
func startOfWeek(day time.Time) time.Time {
	day = day.UTC()
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(midnight.Weekday()) + 6) % 7
	return midnight.AddDate(0, 0, -offset)
}
