package patient

import (
	"context"
	"strings"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
)

// patientService implements domain.PatientService.
type patientService struct {
	repo     domain.PatientRepository
	userRepo domain.UserRepository
}

// NewService creates a PatientService. The user repository verifies that
// profiles are only attached to existing patient accounts.
func NewService(repo domain.PatientRepository, userRepo domain.UserRepository) domain.PatientService {
	return &patientService{repo: repo, userRepo: userRepo}
}

// Create verifies the owning user and stores the profile.
func (s *patientService) Create(ctx context.Context, model domain.PatientDomainModel) (*domain.Patient, error) {
	user, err := s.userRepo.GetByID(ctx, model.UserID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewAppError(domain.CodeValidation, "user does not exist", nil)
		}
		return nil, err
	}
	if user.Role != domain.RolePatient {
		return nil, domain.NewAppError(domain.CodeValidation, "user is not a patient account", nil)
	}

	return s.repo.Create(ctx, model)
}

// GetByUserID retrieves a patient profile.
func (s *patientService) GetByUserID(ctx context.Context, userID string) (*domain.Patient, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// Search returns patient profiles matching the filters.
func (s *patientService) Search(ctx context.Context, filters domain.PatientSearchFilters) (*domain.SearchResults[domain.Patient], error) {
	return s.repo.Search(ctx, filters)
}

// Update applies the provided fields to an existing profile.
func (s *patientService) Update(ctx context.Context, userID string, model domain.PatientDomainModel) (*domain.Patient, error) {
	return s.repo.Update(ctx, userID, model)
}

// Delete removes a patient profile.
func (s *patientService) Delete(ctx context.Context, userID string) error {
	return s.repo.Delete(ctx, userID)
}

// RegisterApp records a companion app registration for an existing patient.
func (s *patientService) RegisterApp(ctx context.Context, patientUserID, appName string) (*domain.PatientAppRegistration, error) {
	appName = strings.TrimSpace(appName)
	if appName == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "app name is required", nil)
	}

	// The profile must exist before registrations can be attached.
	if _, err := s.repo.GetByUserID(ctx, patientUserID); err != nil {
		return nil, err
	}

	return s.repo.AddAppRegistration(ctx, patientUserID, appName)
}

// AppRegistrations returns the patient's companion app registrations.
func (s *patientService) AppRegistrations(ctx context.Context, patientUserID string) ([]domain.PatientAppRegistration, error) {
	if _, err := s.repo.GetByUserID(ctx, patientUserID); err != nil {
		return nil, err
	}
	return s.repo.GetAppRegistrations(ctx, patientUserID)
}
