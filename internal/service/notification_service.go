package service

import (
	"fmt"

	"physio-appointment-api/internal/converter"
	"physio-appointment-api/internal/domain/entity"
	"physio-appointment-api/internal/infrastructure/mail"
)

// NotificationService emails the doctor about new appointment requests.
type NotificationService interface {
	NotifyNewAppointment(appointment *entity.Appointment) error
}

type notificationService struct {
	mailer      mail.Sender
	doctorEmail string
}

func NewNotificationService(mailer mail.Sender, doctorEmail string) NotificationService {
	return &notificationService{
		mailer:      mailer,
		doctorEmail: doctorEmail,
	}
}

// NotifyNewAppointment sends a plain-text summary of the request to the
// configured doctor address. A missing address disables the notification.
func (s *notificationService) NotifyNewAppointment(appointment *entity.Appointment) error {
	if s.doctorEmail == "" {
		return nil
	}

	email := appointment.Email
	if email == "" {
		email = "N/A"
	}
	message := appointment.Message
	if message == "" {
		message = "No additional message."
	}

	body := fmt.Sprintf(
		"New appointment request:\n\n"+
			"Name: %s\n"+
			"Phone: %s\n"+
			"Email: %s\n"+
			"Location: %s\n"+
			"When: %s\n"+
			"Status: %s\n\n"+
			"Patient message:\n%s\n",
		appointment.Name,
		appointment.Phone,
		email,
		appointment.Location,
		appointment.ScheduledAt.Format(converter.ISODatetime),
		appointment.Status,
		message,
	)

	return s.mailer.Send(s.doctorEmail, "New Physiotherapy Appointment Request", body)
}
