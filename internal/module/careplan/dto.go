package careplan

import "time"

// EnrollRequest is the input for enrolling a patient into a careplan.
type EnrollRequest struct {
	PatientUserID string     `json:"PatientUserId" binding:"required,uuid"`
	Provider      *string    `json:"Provider" binding:"omitempty,max=128"`
	PlanCode      string     `json:"PlanCode" binding:"required,max=64"`
	PlanName      *string    `json:"PlanName" binding:"omitempty,max=255"`
	StartDate     *time.Time `json:"StartDate"`
	EndDate       *time.Time `json:"EndDate"`
}
