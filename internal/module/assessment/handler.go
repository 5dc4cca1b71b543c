package assessment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/pkg"
)

// AssessmentTemplateHandler handles REST API requests for assessment
// templates.
type AssessmentTemplateHandler struct {
	svc domain.AssessmentTemplateService
}

// NewHandler creates an AssessmentTemplateHandler with the given service.
func NewHandler(svc domain.AssessmentTemplateService) *AssessmentTemplateHandler {
	return &AssessmentTemplateHandler{svc: svc}
}

// Create handles POST /api/v1/clinical/assessment-templates.
func (h *AssessmentTemplateHandler) Create(c *gin.Context) {
	var req CreateAssessmentTemplateRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	template, err := h.svc.Create(c.Request.Context(), domain.AssessmentTemplateDomainModel{
		Title:                  &req.Title,
		Description:            req.Description,
		Type:                   req.Type,
		Provider:               req.Provider,
		ProviderAssessmentCode: req.ProviderAssessmentCode,
		ScoringApplicable:      req.ScoringApplicable,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusCreated, "Assessment template created successfully!",
		gin.H{"AssessmentTemplate": template})
}

// Get handles GET /api/v1/clinical/assessment-templates/:id.
func (h *AssessmentTemplateHandler) Get(c *gin.Context) {
	id, err := pkg.ParamUUID(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	template, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Assessment template retrieved successfully!",
		gin.H{"AssessmentTemplate": template})
}

// Search handles GET /api/v1/clinical/assessment-templates/search.
func (h *AssessmentTemplateHandler) Search(c *gin.Context) {
	filters := domain.AssessmentTemplateSearchFilters{
		BaseSearchFilters: pkg.ParseBaseFilters(c),
		Title:             pkg.QueryString(c, "title"),
		Type:              pkg.QueryString(c, "type"),
		Provider:          pkg.QueryString(c, "provider"),
	}

	results, err := h.svc.Search(c.Request.Context(), filters)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK,
		pkg.SearchMessage(results.RetrievedCount, "assessment templates"),
		gin.H{"AssessmentTemplates": results})
}

// Update handles PUT /api/v1/clinical/assessment-templates/:id.
func (h *AssessmentTemplateHandler) Update(c *gin.Context) {
	id, err := pkg.ParamUUID(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateAssessmentTemplateRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	template, err := h.svc.Update(c.Request.Context(), id, domain.AssessmentTemplateDomainModel{
		Title:                  req.Title,
		Description:            req.Description,
		Type:                   req.Type,
		Provider:               req.Provider,
		ProviderAssessmentCode: req.ProviderAssessmentCode,
		ScoringApplicable:      req.ScoringApplicable,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Assessment template updated successfully!",
		gin.H{"AssessmentTemplate": template})
}

// Delete handles DELETE /api/v1/clinical/assessment-templates/:id.
func (h *AssessmentTemplateHandler) Delete(c *gin.Context) {
	id, err := pkg.ParamUUID(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Assessment template deleted successfully!", gin.H{"Deleted": true})
}
