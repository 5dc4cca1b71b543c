package patient

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/pkg"
)

// PatientHandler handles REST API requests for patient profiles.
type PatientHandler struct {
	svc domain.PatientService
}

// NewHandler creates a PatientHandler with the given service.
func NewHandler(svc domain.PatientService) *PatientHandler {
	return &PatientHandler{svc: svc}
}

// Create handles POST /api/v1/patients.
func (h *PatientHandler) Create(c *gin.Context) {
	var req CreatePatientRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	patient, err := h.svc.Create(c.Request.Context(), domain.PatientDomainModel{
		UserID:            req.UserID,
		EhrID:             req.EhrID,
		NationalHealthID:  req.NationalHealthID,
		InsuranceProvider: req.InsuranceProvider,
		AddressLine:       req.AddressLine,
		City:              req.City,
		Country:           req.Country,
		PostalCode:        req.PostalCode,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusCreated, "Patient created successfully!", gin.H{"Patient": patient})
}

// Get handles GET /api/v1/patients/:userId.
func (h *PatientHandler) Get(c *gin.Context) {
	userID, err := pkg.ParamUUID(c, "userId")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	patient, err := h.svc.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Patient retrieved successfully!", gin.H{"Patient": patient})
}

// Search handles GET /api/v1/patients/search.
func (h *PatientHandler) Search(c *gin.Context) {
	filters := domain.PatientSearchFilters{
		BaseSearchFilters: pkg.ParseBaseFilters(c),
		UserID:            pkg.QueryString(c, "userId"),
		City:              pkg.QueryString(c, "city"),
	}

	results, err := h.svc.Search(c.Request.Context(), filters)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK,
		pkg.SearchMessage(results.RetrievedCount, "patients"),
		gin.H{"Patients": results})
}

// Update handles PUT /api/v1/patients/:userId.
func (h *PatientHandler) Update(c *gin.Context) {
	userID, err := pkg.ParamUUID(c, "userId")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdatePatientRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	patient, err := h.svc.Update(c.Request.Context(), userID, domain.PatientDomainModel{
		EhrID:             req.EhrID,
		NationalHealthID:  req.NationalHealthID,
		InsuranceProvider: req.InsuranceProvider,
		AddressLine:       req.AddressLine,
		City:              req.City,
		Country:           req.Country,
		PostalCode:        req.PostalCode,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Patient updated successfully!", gin.H{"Patient": patient})
}

// Delete handles DELETE /api/v1/patients/:userId.
func (h *PatientHandler) Delete(c *gin.Context) {
	userID, err := pkg.ParamUUID(c, "userId")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Patient deleted successfully!", gin.H{"Deleted": true})
}

// RegisterApp handles POST /api/v1/patients/:userId/app-registrations.
func (h *PatientHandler) RegisterApp(c *gin.Context) {
	userID, err := pkg.ParamUUID(c, "userId")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req RegisterAppRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	reg, err := h.svc.RegisterApp(c.Request.Context(), userID, req.AppName)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusCreated, "App registration created successfully!", gin.H{"AppRegistration": reg})
}

// AppRegistrations handles GET /api/v1/patients/:userId/app-registrations.
func (h *PatientHandler) AppRegistrations(c *gin.Context) {
	userID, err := pkg.ParamUUID(c, "userId")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	regs, err := h.svc.AppRegistrations(c.Request.Context(), userID)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK,
		pkg.SearchMessage(len(regs), "app registrations"),
		gin.H{"AppRegistrations": regs})
}
