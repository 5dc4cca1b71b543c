package domain

import "context"

// AssessmentTemplate describes a reusable clinical assessment definition,
// optionally sourced from an external careplan provider.
type AssessmentTemplate struct {
	BaseModel
	Title                  string `gorm:"size:255;not null" json:"Title"`
	Description            string `gorm:"size:1024" json:"Description"`
	Type                   string `gorm:"size:64" json:"Type"`
	Provider               string `gorm:"size:128" json:"Provider"`
	ProviderAssessmentCode string `gorm:"size:128" json:"ProviderAssessmentCode"`
	ScoringApplicable      bool   `json:"ScoringApplicable"`
}

// AssessmentTemplateDomainModel is the write-side shape for assessment
// templates.
type AssessmentTemplateDomainModel struct {
	Title                  *string
	Description            *string
	Type                   *string
	Provider               *string
	ProviderAssessmentCode *string
	ScoringApplicable      *bool
}

// AssessmentTemplateSearchFilters narrows an assessment template search.
// Title matches by substring; Provider by exact match.
type AssessmentTemplateSearchFilters struct {
	BaseSearchFilters
	Title    *string
	Type     *string
	Provider *string
}

// AssessmentTemplateRepository defines the data access interface for
// assessment templates.
type AssessmentTemplateRepository interface {
	Create(ctx context.Context, model AssessmentTemplateDomainModel) (*AssessmentTemplate, error)
	GetByID(ctx context.Context, id string) (*AssessmentTemplate, error)
	Search(ctx context.Context, filters AssessmentTemplateSearchFilters) (*SearchResults[AssessmentTemplate], error)
	Update(ctx context.Context, id string, model AssessmentTemplateDomainModel) (*AssessmentTemplate, error)
	Delete(ctx context.Context, id string) error
}

// AssessmentTemplateService defines the business logic interface for
// assessment templates.
type AssessmentTemplateService interface {
	Create(ctx context.Context, model AssessmentTemplateDomainModel) (*AssessmentTemplate, error)
	GetByID(ctx context.Context, id string) (*AssessmentTemplate, error)
	Search(ctx context.Context, filters AssessmentTemplateSearchFilters) (*SearchResults[AssessmentTemplate], error)
	Update(ctx context.Context, id string, model AssessmentTemplateDomainModel) (*AssessmentTemplate, error)
	Delete(ctx context.Context, id string) error
}
