package dto

type PatientResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Location     string `json:"location"`
	DOB          string `json:"dob"`
	MedicalNotes string `json:"medical_notes"`
}
