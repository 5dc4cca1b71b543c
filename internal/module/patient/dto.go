package patient

// CreatePatientRequest is the input for creating a patient profile.
type CreatePatientRequest struct {
	UserID            string  `json:"UserId" binding:"required,uuid"`
	EhrID             *string `json:"EhrId" binding:"omitempty,max=64"`
	NationalHealthID  *string `json:"NationalHealthId" binding:"omitempty,max=64"`
	InsuranceProvider *string `json:"InsuranceProvider" binding:"omitempty,max=128"`
	AddressLine       *string `json:"AddressLine" binding:"omitempty,max=255"`
	City              *string `json:"City" binding:"omitempty,max=100"`
	Country           *string `json:"Country" binding:"omitempty,max=100"`
	PostalCode        *string `json:"PostalCode" binding:"omitempty,max=20"`
}

// UpdatePatientRequest is the input for updating a patient profile. Absent
// fields are left unchanged.
type UpdatePatientRequest struct {
	EhrID             *string `json:"EhrId" binding:"omitempty,max=64"`
	NationalHealthID  *string `json:"NationalHealthId" binding:"omitempty,max=64"`
	InsuranceProvider *string `json:"InsuranceProvider" binding:"omitempty,max=128"`
	AddressLine       *string `json:"AddressLine" binding:"omitempty,max=255"`
	City              *string `json:"City" binding:"omitempty,max=100"`
	Country           *string `json:"Country" binding:"omitempty,max=100"`
	PostalCode        *string `json:"PostalCode" binding:"omitempty,max=20"`
}

// RegisterAppRequest records a companion application registration for a
// patient.
type RegisterAppRequest struct {
	AppName string `json:"AppName" binding:"required,max=128"`
}
