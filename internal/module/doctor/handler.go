package doctor

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/pkg"
)

// DoctorHandler handles REST API requests for doctor profiles.
type DoctorHandler struct {
	svc domain.DoctorService
}

// NewHandler creates a DoctorHandler with the given service.
func NewHandler(svc domain.DoctorService) *DoctorHandler {
	return &DoctorHandler{svc: svc}
}

// Create handles POST /api/v1/doctors.
func (h *DoctorHandler) Create(c *gin.Context) {
	var req CreateDoctorRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	doctor, err := h.svc.Create(c.Request.Context(), domain.DoctorDomainModel{
		UserID:             req.UserID,
		EhrID:              req.EhrID,
		Specialty:          req.Specialty,
		Qualification:      req.Qualification,
		RegistrationNumber: req.RegistrationNumber,
		About:              req.About,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusCreated, "Doctor created successfully!", gin.H{"Doctor": doctor})
}

// Get handles GET /api/v1/doctors/:userId.
func (h *DoctorHandler) Get(c *gin.Context) {
	userID, err := pkg.ParamUUID(c, "userId")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	doctor, err := h.svc.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Doctor retrieved successfully!", gin.H{"Doctor": doctor})
}

// Search handles GET /api/v1/doctors/search.
func (h *DoctorHandler) Search(c *gin.Context) {
	filters := domain.DoctorSearchFilters{
		BaseSearchFilters: pkg.ParseBaseFilters(c),
		UserID:            pkg.QueryString(c, "userId"),
		Specialty:         pkg.QueryString(c, "specialty"),
	}

	results, err := h.svc.Search(c.Request.Context(), filters)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK,
		pkg.SearchMessage(results.RetrievedCount, "doctors"),
		gin.H{"Doctors": results})
}

// Update handles PUT /api/v1/doctors/:userId.
func (h *DoctorHandler) Update(c *gin.Context) {
	userID, err := pkg.ParamUUID(c, "userId")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateDoctorRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	doctor, err := h.svc.Update(c.Request.Context(), userID, domain.DoctorDomainModel{
		EhrID:              req.EhrID,
		Specialty:          req.Specialty,
		Qualification:      req.Qualification,
		RegistrationNumber: req.RegistrationNumber,
		About:              req.About,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Doctor updated successfully!", gin.H{"Doctor": doctor})
}

// Delete handles DELETE /api/v1/doctors/:userId.
func (h *DoctorHandler) Delete(c *gin.Context) {
	userID, err := pkg.ParamUUID(c, "userId")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Doctor deleted successfully!", gin.H{"Deleted": true})
}
