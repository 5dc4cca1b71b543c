package labrecord

import "time"

// CreateLabRecordRequest is the input for storing a laboratory result.
type CreateLabRecordRequest struct {
	PatientUserID  string     `json:"PatientUserId" binding:"required,uuid"`
	TypeName       string     `json:"TypeName" binding:"omitempty,max=128"`
	DisplayName    string     `json:"DisplayName" binding:"required,max=128"`
	PrimaryValue   float64    `json:"PrimaryValue" binding:"required"`
	SecondaryValue *float64   `json:"SecondaryValue"`
	Unit           string     `json:"Unit" binding:"omitempty,max=32"`
	ReportDate     *time.Time `json:"ReportDate"`
	RecordedAt     *time.Time `json:"RecordedAt"`
}

// UpdateLabRecordRequest is the input for updating a laboratory result.
// Absent fields are left unchanged.
type UpdateLabRecordRequest struct {
	TypeName       *string    `json:"TypeName" binding:"omitempty,max=128"`
	DisplayName    *string    `json:"DisplayName" binding:"omitempty,max=128"`
	PrimaryValue   *float64   `json:"PrimaryValue"`
	SecondaryValue *float64   `json:"SecondaryValue"`
	Unit           *string    `json:"Unit" binding:"omitempty,max=32"`
	ReportDate     *time.Time `json:"ReportDate"`
	RecordedAt     *time.Time `json:"RecordedAt"`
}
