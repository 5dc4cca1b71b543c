package bodyheight

import "time"

// CreateBodyHeightRequest is the input for recording a height measurement.
type CreateBodyHeightRequest struct {
	PatientUserID string     `json:"PatientUserId" binding:"required,uuid"`
	BodyHeight    float64    `json:"BodyHeight" binding:"required,gt=0"`
	Unit          string     `json:"Unit" binding:"omitempty,max=32"`
	RecordDate    *time.Time `json:"RecordDate"`
}

// UpdateBodyHeightRequest is the input for updating a height measurement.
// Absent fields are left unchanged.
type UpdateBodyHeightRequest struct {
	BodyHeight *float64   `json:"BodyHeight" binding:"omitempty,gt=0"`
	Unit       *string    `json:"Unit" binding:"omitempty,max=32"`
	RecordDate *time.Time `json:"RecordDate"`
}
