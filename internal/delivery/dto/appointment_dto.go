package dto

// Request DTOs

// CreateAppointmentRequest is the patient-facing intake payload. Status is
// deliberately absent: new appointments always start as Pending.
type CreateAppointmentRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone" validate:"required"`
	Location string `json:"location" validate:"required"`
	Datetime string `json:"datetime" validate:"required"`
	Message  string `json:"message"`
}

// UpdateAppointmentRequest carries the doctor-facing partial update. Nil
// pointers mean "leave untouched"; an empty datetime string is treated as
// absent.
type UpdateAppointmentRequest struct {
	Status   *string `json:"status" validate:"omitempty,oneof=Pending Confirmed Rescheduled"`
	Datetime *string `json:"datetime"`
	Notes    *string `json:"notes"`
}

// Response DTOs

// AppointmentResponse is the wire shape for a single appointment. The
// scheduled time is exposed under the field name "datetime"; all timestamps
// are ISO-8601 strings without offsets.
type AppointmentResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	Datetime    string `json:"datetime"`
	Message     string `json:"message"`
	DoctorNotes string `json:"doctor_notes"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
