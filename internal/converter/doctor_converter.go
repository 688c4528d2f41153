package converter

import (
	"physio-appointment-api/internal/delivery/dto"
	"physio-appointment-api/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to its wire shape. The password
// hash never crosses this boundary.
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:    doctor.ID,
		Name:  doctor.Name,
		Email: doctor.Email,
	}
}
