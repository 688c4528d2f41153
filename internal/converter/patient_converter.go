package converter

import (
	"physio-appointment-api/internal/delivery/dto"
	"physio-appointment-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to its wire shape
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:           patient.ID,
		Name:         patient.Name,
		Phone:        patient.Phone,
		Email:        patient.Email,
		Location:     patient.Location,
		DOB:          patient.DateOfBirth,
		MedicalNotes: patient.MedicalNotes,
	}
}
