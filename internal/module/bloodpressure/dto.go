package bloodpressure

import "time"

// CreateBloodPressureRequest is the input for recording a reading.
type CreateBloodPressureRequest struct {
	PatientUserID    string     `json:"PatientUserId" binding:"required,uuid"`
	Systolic         int        `json:"Systolic" binding:"required,gt=0"`
	Diastolic        int        `json:"Diastolic" binding:"required,gt=0"`
	Unit             string     `json:"Unit" binding:"omitempty,max=32"`
	RecordDate       *time.Time `json:"RecordDate"`
	RecordedByUserID *string    `json:"RecordedByUserId" binding:"omitempty,uuid"`
}

// UpdateBloodPressureRequest is the input for updating a reading. Absent
// fields are left unchanged.
type UpdateBloodPressureRequest struct {
	Systolic         *int       `json:"Systolic" binding:"omitempty,gt=0"`
	Diastolic        *int       `json:"Diastolic" binding:"omitempty,gt=0"`
	Unit             *string    `json:"Unit" binding:"omitempty,max=32"`
	RecordDate       *time.Time `json:"RecordDate"`
	RecordedByUserID *string    `json:"RecordedByUserId" binding:"omitempty,uuid"`
}
