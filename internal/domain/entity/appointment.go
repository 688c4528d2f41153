package entity

import (
	"time"
)

// AppointmentStatus represents the status of an appointment request
type AppointmentStatus string

const (
	AppointmentStatusPending     AppointmentStatus = "Pending"
	AppointmentStatusConfirmed   AppointmentStatus = "Confirmed"
	AppointmentStatusRescheduled AppointmentStatus = "Rescheduled"
)

// Valid reports whether s is one of the known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusRescheduled:
		return true
	}
	return false
}

// Appointment is a patient-submitted booking request. ScheduledAt is a naive
// wall-clock time: it is stored exactly as the caller supplied it, with no
// timezone normalization.
type Appointment struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	Name        string            `gorm:"type:varchar(255);not null" json:"name"`
	Email       string            `gorm:"type:varchar(255)" json:"email"`
	Phone       string            `gorm:"type:varchar(50);not null" json:"phone"`
	Location    string            `gorm:"type:varchar(255);not null" json:"location"`
	ScheduledAt time.Time         `gorm:"not null" json:"scheduled_at"`
	Message     string            `gorm:"type:text" json:"message"`
	DoctorNotes string            `gorm:"type:text" json:"doctor_notes"`
	Status      AppointmentStatus `gorm:"type:varchar(50);not null;default:'Pending'" json:"status"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if the appointment still awaits doctor review
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}
