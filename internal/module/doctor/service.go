package doctor

import (
	"context"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
)

// doctorService implements domain.DoctorService.
type doctorService struct {
	repo     domain.DoctorRepository
	userRepo domain.UserRepository
}

// NewService creates a DoctorService. The user repository verifies that
// profiles are only attached to existing doctor accounts.
func NewService(repo domain.DoctorRepository, userRepo domain.UserRepository) domain.DoctorService {
	return &doctorService{repo: repo, userRepo: userRepo}
}

// Create verifies the owning user and stores the profile.
func (s *doctorService) Create(ctx context.Context, model domain.DoctorDomainModel) (*domain.Doctor, error) {
	user, err := s.userRepo.GetByID(ctx, model.UserID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewAppError(domain.CodeValidation, "user does not exist", nil)
		}
		return nil, err
	}
	if user.Role != domain.RoleDoctor {
		return nil, domain.NewAppError(domain.CodeValidation, "user is not a doctor account", nil)
	}

	return s.repo.Create(ctx, model)
}

// GetByUserID retrieves a doctor profile.
func (s *doctorService) GetByUserID(ctx context.Context, userID string) (*domain.Doctor, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// Search returns doctor profiles matching the filters.
func (s *doctorService) Search(ctx context.Context, filters domain.DoctorSearchFilters) (*domain.SearchResults[domain.Doctor], error) {
	return s.repo.Search(ctx, filters)
}

// Update applies the provided fields to an existing profile.
func (s *doctorService) Update(ctx context.Context, userID string, model domain.DoctorDomainModel) (*domain.Doctor, error) {
	return s.repo.Update(ctx, userID, model)
}

// Delete removes a doctor profile.
func (s *doctorService) Delete(ctx context.Context, userID string) error {
	return s.repo.Delete(ctx, userID)
}
