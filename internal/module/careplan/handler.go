package careplan

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/pkg"
)

// CareplanHandler handles REST API requests for careplans.
type CareplanHandler struct {
	svc domain.CareplanService
}

// NewHandler creates a CareplanHandler with the given service.
func NewHandler(svc domain.CareplanService) *CareplanHandler {
	return &CareplanHandler{svc: svc}
}

// AvailableCareplans handles GET /api/v1/careplans.
func (h *CareplanHandler) AvailableCareplans(c *gin.Context) {
	plans, err := h.svc.AvailableCareplans(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK,
		pkg.SearchMessage(len(plans), "careplans"),
		gin.H{"Careplans": plans})
}

// Enroll handles POST /api/v1/careplans/enrollments.
func (h *CareplanHandler) Enroll(c *gin.Context) {
	var req EnrollRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	enrollment, err := h.svc.Enroll(c.Request.Context(), domain.EnrollmentDomainModel{
		PatientUserID: req.PatientUserID,
		Provider:      req.Provider,
		PlanCode:      &req.PlanCode,
		PlanName:      req.PlanName,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusCreated, "Careplan enrollment created successfully!",
		gin.H{"Enrollment": enrollment})
}

// PatientEnrollments handles GET /api/v1/careplans/patients/:userId/enrollments.
func (h *CareplanHandler) PatientEnrollments(c *gin.Context) {
	userID, err := pkg.ParamUUID(c, "userId")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	enrollments, err := h.svc.GetPatientEnrollments(c.Request.Context(), userID)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK,
		pkg.SearchMessage(len(enrollments), "careplan enrollments"),
		gin.H{"Enrollments": enrollments})
}

// DeleteEnrollment handles DELETE /api/v1/careplans/enrollments/:id.
func (h *CareplanHandler) DeleteEnrollment(c *gin.Context) {
	enrollmentID, err := pkg.ParamUUID(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteEnrollment(c.Request.Context(), enrollmentID); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Careplan enrollment record deleted successfully!",
		gin.H{"Deleted": true})
}

// Tasks handles GET /api/v1/careplans/enrollments/:id/tasks.
func (h *CareplanHandler) Tasks(c *gin.Context) {
	enrollmentID, err := pkg.ParamUUID(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	tasks, err := h.svc.FetchTasks(c.Request.Context(), enrollmentID)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK,
		pkg.SearchMessage(len(tasks), "careplan tasks"),
		gin.H{"Tasks": tasks})
}

// WeeklyStatus handles GET /api/v1/careplans/enrollments/:id/weekly-status.
// The optional day query parameter selects the week; it defaults to today.
func (h *CareplanHandler) WeeklyStatus(c *gin.Context) {
	enrollmentID, err := pkg.ParamUUID(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	day := time.Now().UTC()
	if parsed := pkg.QueryTime(c, "day"); parsed != nil {
		day = *parsed
	}

	status, err := h.svc.GetWeeklyStatus(c.Request.Context(), enrollmentID, day)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Careplan weekly status retrieved successfully!",
		gin.H{"WeeklyStatus": status})
}

// CompleteTask handles PUT /api/v1/careplans/tasks/:id/complete.
func (h *CareplanHandler) CompleteTask(c *gin.Context) {
	taskID, err := pkg.ParamUUID(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	task, err := h.svc.CompleteTask(c.Request.Context(), taskID)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Careplan task updated successfully!", gin.H{"Task": task})
}
