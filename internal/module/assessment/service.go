package assessment

import (
	"context"
	"strings"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
)

// templateService implements domain.AssessmentTemplateService.
type templateService struct {
	repo domain.AssessmentTemplateRepository
}

// NewService creates an AssessmentTemplateService.
func NewService(repo domain.AssessmentTemplateRepository) domain.AssessmentTemplateService {
	return &templateService{repo: repo}
}

// Create validates and stores a new assessment template.
func (s *templateService) Create(ctx context.Context, model domain.AssessmentTemplateDomainModel) (*domain.AssessmentTemplate, error) {
	if model.Title == nil || strings.TrimSpace(*model.Title) == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "title is required", nil)
	}
	return s.repo.Create(ctx, model)
}

// GetByID retrieves an assessment template.
func (s *templateService) GetByID(ctx context.Context, id string) (*domain.AssessmentTemplate, error) {
	return s.repo.GetByID(ctx, id)
}

// Search returns assessment templates matching the filters.
func (s *templateService) Search(ctx context.Context, filters domain.AssessmentTemplateSearchFilters) (*domain.SearchResults[domain.AssessmentTemplate], error) {
	return s.repo.Search(ctx, filters)
}

// Update applies the provided fields to an existing template. A blank title is
// rejected; absent fields are left unchanged.
func (s *templateService) Update(ctx context.Context, id string, model domain.AssessmentTemplateDomainModel) (*domain.AssessmentTemplate, error) {
	if model.Title != nil && strings.TrimSpace(*model.Title) == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "title cannot be blank", nil)
	}
	return s.repo.Update(ctx, id, model)
}

// Delete removes an assessment template.
func (s *templateService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
