package assessment

// CreateAssessmentTemplateRequest is the input for creating an assessment
// template.
type CreateAssessmentTemplateRequest struct {
	Title                  string  `json:"Title" binding:"required,max=255"`
	Description            *string `json:"Description" binding:"omitempty,max=1024"`
	Type                   *string `json:"Type" binding:"omitempty,max=64"`
	Provider               *string `json:"Provider" binding:"omitempty,max=128"`
	ProviderAssessmentCode *string `json:"ProviderAssessmentCode" binding:"omitempty,max=128"`
	ScoringApplicable      *bool   `json:"ScoringApplicable"`
}

// UpdateAssessmentTemplateRequest is the input for updating an assessment
// template. Absent fields are left unchanged.
type UpdateAssessmentTemplateRequest struct {
	Title                  *string `json:"Title" binding:"omitempty,max=255"`
	Description            *string `json:"Description" binding:"omitempty,max=1024"`
	Type                   *string `json:"Type" binding:"omitempty,max=64"`
	Provider               *string `json:"Provider" binding:"omitempty,max=128"`
	ProviderAssessmentCode *string `json:"ProviderAssessmentCode" binding:"omitempty,max=128"`
	ScoringApplicable      *bool   `json:"ScoringApplicable"`
}
