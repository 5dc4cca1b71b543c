package assessment

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/pkg"
)

// Allowed fields for ordering search results.
var allowedOrderFields = []string{"id", "title", "type", "provider", "created_at", "updated_at"}

// templateRepository implements domain.AssessmentTemplateRepository using GORM.
type templateRepository struct {
	db *gorm.DB
}

// NewRepository creates an AssessmentTemplateRepository backed by the given
// database.
func NewRepository(db *gorm.DB) domain.AssessmentTemplateRepository {
	return &templateRepository{db: db}
}

// Create inserts a new assessment template.
func (r *templateRepository) Create(ctx context.Context, model domain.AssessmentTemplateDomainModel) (*domain.AssessmentTemplate, error) {
	var template domain.AssessmentTemplate
	applyModel(&template, model)

	if err := r.db.WithContext(ctx).Create(&template).Error; err != nil {
		return nil, mapError(err)
	}
	return &template, nil
}

// GetByID retrieves an assessment template by id.
func (r *templateRepository) GetByID(ctx context.Context, id string) (*domain.AssessmentTemplate, error) {
	var template domain.AssessmentTemplate
	if err := r.db.WithContext(ctx).First(&template, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return &template, nil
}

// Search returns assessment templates matching the filters, paginated. Title
// matches by substring; type and provider by exact match.
func (r *templateRepository) Search(ctx context.Context, filters domain.AssessmentTemplateSearchFilters) (*domain.SearchResults[domain.AssessmentTemplate], error) {
	base := r.db.WithContext(ctx).Model(&domain.AssessmentTemplate{}).Scopes(
		pkg.Contains("title", filters.Title),
		pkg.Exact("type", filters.Type),
		pkg.Exact("provider", filters.Provider),
		pkg.Range("created_at", filters.CreatedDateFrom, filters.CreatedDateTo),
	)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, mapError(err)
	}

	column, direction := pkg.ResolveOrder(filters.BaseSearchFilters, allowedOrderFields, "created_at")

	var templates []domain.AssessmentTemplate
	if err := base.Scopes(
		pkg.Order(column, direction),
		pkg.Paginate(filters.BaseSearchFilters),
	).Find(&templates).Error; err != nil {
		return nil, mapError(err)
	}

	return pkg.NewSearchResults(templates, total, filters.BaseSearchFilters, column), nil
}

// Update loads the template, applies only the provided fields, and writes the
// changed columns in a single UPDATE.
func (r *templateRepository) Update(ctx context.Context, id string, model domain.AssessmentTemplateDomainModel) (*domain.AssessmentTemplate, error) {
	template, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if model.Title != nil {
		updates["title"] = *model.Title
	}
	if model.Description != nil {
		updates["description"] = *model.Description
	}
	if model.Type != nil {
		updates["type"] = *model.Type
	}
	if model.Provider != nil {
		updates["provider"] = *model.Provider
	}
	if model.ProviderAssessmentCode != nil {
		updates["provider_assessment_code"] = *model.ProviderAssessmentCode
	}
	if model.ScoringApplicable != nil {
		updates["scoring_applicable"] = *model.ScoringApplicable
	}
	if len(updates) == 0 {
		return template, nil
	}

	if err := r.db.WithContext(ctx).Model(template).Updates(updates).Error; err != nil {
		return nil, mapError(err)
	}
	return template, nil
}

// Delete removes an assessment template.
func (r *templateRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.AssessmentTemplate{}, "id = ?", id)
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func applyModel(template *domain.AssessmentTemplate, model domain.AssessmentTemplateDomainModel) {
	if model.Title != nil {
		template.Title = *model.Title
	}
	if model.Description != nil {
		template.Description = *model.Description
	}
	if model.Type != nil {
		template.Type = *model.Type
	}
	if model.Provider != nil {
		template.Provider = *model.Provider
	}
	if model.ProviderAssessmentCode != nil {
		template.ProviderAssessmentCode = *model.ProviderAssessmentCode
	}
	if model.ScoringApplicable != nil {
		template.ScoringApplicable = *model.ScoringApplicable
	}
}

// mapError converts GORM errors to domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return domain.NewAppError(domain.CodeAlreadyExists, "assessment template already exists", err)
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}

func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
