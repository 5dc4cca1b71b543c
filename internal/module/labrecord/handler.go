package labrecord

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/pkg"
)

// LabRecordHandler handles REST API requests for lab records.
type LabRecordHandler struct {
	svc domain.LabRecordService
}

// NewHandler creates a LabRecordHandler with the given service.
func NewHandler(svc domain.LabRecordService) *LabRecordHandler {
	return &LabRecordHandler{svc: svc}
}

// Create handles POST /api/v1/clinical/lab-records.
func (h *LabRecordHandler) Create(c *gin.Context) {
	var req CreateLabRecordRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	record, err := h.svc.Create(c.Request.Context(), domain.LabRecordDomainModel{
		PatientUserID:  req.PatientUserID,
		TypeName:       &req.TypeName,
		DisplayName:    &req.DisplayName,
		PrimaryValue:   &req.PrimaryValue,
		SecondaryValue: req.SecondaryValue,
		Unit:           &req.Unit,
		ReportDate:     req.ReportDate,
		RecordedAt:     req.RecordedAt,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusCreated, "Lab record created successfully!", gin.H{"LabRecord": record})
}

// Get handles GET /api/v1/clinical/lab-records/:id.
func (h *LabRecordHandler) Get(c *gin.Context) {
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

	pkg.Success(c, http.StatusOK, "Lab record retrieved successfully!", gin.H{"LabRecord": record})
}

// Search handles GET /api/v1/clinical/lab-records/search.
func (h *LabRecordHandler) Search(c *gin.Context) {
	filters := domain.LabRecordSearchFilters{
		BaseSearchFilters: pkg.ParseBaseFilters(c),
		PatientUserID:     pkg.QueryString(c, "patientUserId"),
		TypeName:          pkg.QueryString(c, "typeName"),
		DisplayName:       pkg.QueryString(c, "displayName"),
		MinPrimaryValue:   pkg.QueryFloat(c, "minPrimaryValue"),
		MaxPrimaryValue:   pkg.QueryFloat(c, "maxPrimaryValue"),
	}

	results, err := h.svc.Search(c.Request.Context(), filters)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK,
		pkg.SearchMessage(results.RetrievedCount, "lab records"),
		gin.H{"LabRecords": results})
}

// Update handles PUT /api/v1/clinical/lab-records/:id.
func (h *LabRecordHandler) Update(c *gin.Context) {
	id, err := pkg.ParamUUID(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateLabRecordRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	record, err := h.svc.Update(c.Request.Context(), id, domain.LabRecordDomainModel{
		TypeName:       req.TypeName,
		DisplayName:    req.DisplayName,
		PrimaryValue:   req.PrimaryValue,
		SecondaryValue: req.SecondaryValue,
		Unit:           req.Unit,
		ReportDate:     req.ReportDate,
		RecordedAt:     req.RecordedAt,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Lab record updated successfully!", gin.H{"LabRecord": record})
}

// Delete handles DELETE /api/v1/clinical/lab-records/:id.
func (h *LabRecordHandler) Delete(c *gin.Context) {
	id, err := pkg.ParamUUID(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Lab record deleted successfully!", gin.H{"Deleted": true})
}
