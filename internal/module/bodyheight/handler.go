package bodyheight

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/pkg"
)

// BodyHeightHandler handles REST API requests for body height records.
type BodyHeightHandler struct {
	svc domain.BodyHeightService
}

// NewHandler creates a BodyHeightHandler with the given service.
func NewHandler(svc domain.BodyHeightService) *BodyHeightHandler {
	return &BodyHeightHandler{svc: svc}
}

// Create handles POST /api/v1/clinical/body-heights.
func (h *BodyHeightHandler) Create(c *gin.Context) {
	var req CreateBodyHeightRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	record, err := h.svc.Create(c.Request.Context(), domain.BodyHeightDomainModel{
		PatientUserID: req.PatientUserID,
		BodyHeight:    &req.BodyHeight,
		Unit:          &req.Unit,
		RecordDate:    req.RecordDate,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusCreated, "Body height record created successfully!", gin.H{"BodyHeight": record})
}

// Get handles GET /api/v1/clinical/body-heights/:id.
func (h *BodyHeightHandler) Get(c *gin.Context) {
	id, err := pkg.ParamUUID(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	record, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Body height record retrieved successfully!", gin.H{"BodyHeight": record})
}

// Search handles GET /api/v1/clinical/body-heights/search.
func (h *BodyHeightHandler) Search(c *gin.Context) {
	filters := domain.BodyHeightSearchFilters{
		BaseSearchFilters: pkg.ParseBaseFilters(c),
		PatientUserID:     pkg.QueryString(c, "patientUserId"),
		MinValue:          pkg.QueryFloat(c, "minValue"),
		MaxValue:          pkg.QueryFloat(c, "maxValue"),
	}

	results, err := h.svc.Search(c.Request.Context(), filters)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK,
		pkg.SearchMessage(results.RetrievedCount, "body height records"),
		gin.H{"BodyHeightRecords": results})
}

// Update handles PUT /api/v1/clinical/body-heights/:id.
func (h *BodyHeightHandler) Update(c *gin.Context) {
	id, err := pkg.ParamUUID(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateBodyHeightRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	record, err := h.svc.Update(c.Request.Context(), id, domain.BodyHeightDomainModel{
		BodyHeight: req.BodyHeight,
		Unit:       req.Unit,
		RecordDate: req.RecordDate,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Body height record updated successfully!", gin.H{"BodyHeight": record})
}

// Delete handles DELETE /api/v1/clinical/body-heights/:id.
func (h *BodyHeightHandler) Delete(c *gin.Context) {
	id, err := pkg.ParamUUID(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Body height record deleted successfully!", gin.H{"Deleted": true})
}
