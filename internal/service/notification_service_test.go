package service

import (
	"testing"
	"time"

	"physio-appointment-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

type capturingMailer struct {
	to      string
	subject string
	body    string
	sent    int
	err     error
}

func (m *capturingMailer) Send(to, subject, body string) error {
	m.to = to
	m.subject = subject
	m.body = body
	m.sent++
	return m.err
}

func sampleAppointment() *entity.Appointment {
	return &entity.Appointment{
		Name:        "Jane Doe",
		Phone:       "555-1234",
		Location:    "Clinic A",
		ScheduledAt: time.Date(2025, 12, 3, 8, 0, 0, 0, time.UTC),
		Status:      entity.AppointmentStatusPending,
	}
}

func TestNotifyNewAppointment(t *testing.T) {
	mailer := &capturingMailer{}
	svc := NewNotificationService(mailer, "doctor@example.com")

	err := svc.NotifyNewAppointment(sampleAppointment())
	assert.NoError(t, err)
	assert.Equal(t, 1, mailer.sent)
	assert.Equal(t, "doctor@example.com", mailer.to)
	assert.Equal(t, "New Physiotherapy Appointment Request", mailer.subject)
	assert.Contains(t, mailer.body, "Name: Jane Doe")
	assert.Contains(t, mailer.body, "When: 2025-12-03T08:00:00")
	assert.Contains(t, mailer.body, "Email: N/A")
	assert.Contains(t, mailer.body, "No additional message.")
}

func TestNotifyNewAppointment_IncludesPatientMessage(t *testing.T) {
	mailer := &capturingMailer{}
	svc := NewNotificationService(mailer, "doctor@example.com")

	appointment := sampleAppointment()
	appointment.Email = "jane@example.com"
	appointment.Message = "prefer morning sessions"

	assert.NoError(t, svc.NotifyNewAppointment(appointment))
	assert.Contains(t, mailer.body, "Email: jane@example.com")
	assert.Contains(t, mailer.body, "prefer morning sessions")
}

func TestNotifyNewAppointment_NoDoctorEmail(t *testing.T) {
	mailer := &capturingMailer{}
	svc := NewNotificationService(mailer, "")

	assert.NoError(t, svc.NotifyNewAppointment(sampleAppointment()))
	assert.Zero(t, mailer.sent)
}

func TestNotifyNewAppointment_TransportError(t *testing.T) {
	mailer := &capturingMailer{err: assert.AnError}
	svc := NewNotificationService(mailer, "doctor@example.com")

	assert.Error(t, svc.NotifyNewAppointment(sampleAppointment()))
}
