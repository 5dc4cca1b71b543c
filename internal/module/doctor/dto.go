package doctor

// CreateDoctorRequest is the input for creating a doctor profile.
type CreateDoctorRequest struct {
	UserID             string  `json:"UserId" binding:"required,uuid"`
	EhrID              *string `json:"EhrId" binding:"omitempty,max=64"`
	Specialty          *string `json:"Specialty" binding:"omitempty,max=128"`
	Qualification      *string `json:"Qualification" binding:"omitempty,max=255"`
	RegistrationNumber *string `json:"RegistrationNumber" binding:"omitempty,max=64"`
	About              *string `json:"About" binding:"omitempty,max=1024"`
}

// UpdateDoctorRequest is the input for updating a doctor profile. Absent
// fields are left unchanged.
type UpdateDoctorRequest struct {
	EhrID              *string `json:"EhrId" binding:"omitempty,max=64"`
	Specialty          *string `json:"Specialty" binding:"omitempty,max=128"`
	Qualification      *string `json:"Qualification" binding:"omitempty,max=255"`
	RegistrationNumber *string `json:"RegistrationNumber" binding:"omitempty,max=64"`
	About              *string `json:"About" binding:"omitempty,max=1024"`
}
