package converter

import (
	"time"

	"physio-appointment-api/internal/delivery/dto"
	"physio-appointment-api/internal/domain/entity"
)

// ISODatetime is the output layout for every timestamp on the wire:
// ISO-8601 with seconds and no offset, e.g. 2025-12-03T08:00:00.
const ISODatetime = "2006-01-02T15:04:05"

// AppointmentToResponse converts an Appointment entity to its wire shape.
// The mapping is written out field by field so the contract stays auditable.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:          appointment.ID,
		Name:        appointment.Name,
		Email:       appointment.Email,
		Phone:       appointment.Phone,
		Location:    appointment.Location,
		Datetime:    formatDatetime(appointment.ScheduledAt),
		Message:     appointment.Message,
		DoctorNotes: appointment.DoctorNotes,
		Status:      string(appointment.Status),
		CreatedAt:   formatDatetime(appointment.CreatedAt),
		UpdatedAt:   formatDatetime(appointment.UpdatedAt),
	}
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		responses[i] = *AppointmentToResponse(&appointment)
	}
	return responses
}

func formatDatetime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(ISODatetime)
}
