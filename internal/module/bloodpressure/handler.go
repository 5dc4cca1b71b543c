package bloodpressure

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/pkg"
)

// BloodPressureHandler handles REST API requests for blood pressure records.
type BloodPressureHandler struct {
	svc domain.BloodPressureService
}

// NewHandler creates a BloodPressureHandler with the given service.
func NewHandler(svc domain.BloodPressureService) *BloodPressureHandler {
	return &BloodPressureHandler{svc: svc}
}

// Create handles POST /api/v1/clinical/blood-pressures.
func (h *BloodPressureHandler) Create(c *gin.Context) {
	var req CreateBloodPressureRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	record, err := h.svc.Create(c.Request.Context(), domain.BloodPressureDomainModel{
		PatientUserID:    req.PatientUserID,
		Systolic:         &req.Systolic,
		Diastolic:        &req.Diastolic,
		Unit:             &req.Unit,
		RecordDate:       req.RecordDate,
		RecordedByUserID: req.RecordedByUserID,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusCreated, "Blood pressure record created successfully!", gin.H{"BloodPressure": record})
}

// Get handles GET /api/v1/clinical/blood-pressures/:id.
func (h *BloodPressureHandler) Get(c *gin.Context) {
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

	pkg.Success(c, http.StatusOK, "Blood pressure record retrieved successfully!", gin.H{"BloodPressure": record})
}

// Search handles GET /api/v1/clinical/blood-pressures/search.
func (h *BloodPressureHandler) Search(c *gin.Context) {
	filters := domain.BloodPressureSearchFilters{
		BaseSearchFilters: pkg.ParseBaseFilters(c),
		PatientUserID:     pkg.QueryString(c, "patientUserId"),
		MinSystolic:       pkg.QueryInt(c, "minSystolic"),
		MaxSystolic:       pkg.QueryInt(c, "maxSystolic"),
		MinDiastolic:      pkg.QueryInt(c, "minDiastolic"),
		MaxDiastolic:      pkg.QueryInt(c, "maxDiastolic"),
	}

	results, err := h.svc.Search(c.Request.Context(), filters)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK,
		pkg.SearchMessage(results.RetrievedCount, "blood pressure records"),
		gin.H{"BloodPressureRecords": results})
}

// Update handles PUT /api/v1/clinical/blood-pressures/:id.
func (h *BloodPressureHandler) Update(c *gin.Context) {
	id, err := pkg.ParamUUID(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateBloodPressureRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	record, err := h.svc.Update(c.Request.Context(), id, domain.BloodPressureDomainModel{
		Systolic:         req.Systolic,
		Diastolic:        req.Diastolic,
		Unit:             req.Unit,
		RecordDate:       req.RecordDate,
		RecordedByUserID: req.RecordedByUserID,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Blood pressure record updated successfully!", gin.H{"BloodPressure": record})
}

// Delete handles DELETE /api/v1/clinical/blood-pressures/:id.
func (h *BloodPressureHandler) Delete(c *gin.Context) {
	id, err := pkg.ParamUUID(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Blood pressure record deleted successfully!", gin.H{"Deleted": true})
}
