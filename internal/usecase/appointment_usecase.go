package usecase

import (
	"context"
	"errors"
	"time"

	"physio-appointment-api/internal/converter"
	"physio-appointment-api/internal/delivery/dto"
	"physio-appointment-api/internal/domain/entity"
	"physio-appointment-api/internal/domain/repository"
	"physio-appointment-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidDatetime     = errors.New("invalid datetime format")
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrNoFieldsUpdated     = errors.New("no fields updated")
)

// datetimeLayouts are the accepted input shapes for the scheduled time:
// naive ISO-8601 with or without seconds, optionally fractional, plus the
// offset-carrying RFC3339 form and a bare date. Offsets are not normalized;
// the wall-clock value is stored as supplied.
var datetimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02",
}

func parseDatetime(value string) (time.Time, error) {
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDatetime
}

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	List(ctx context.Context) ([]dto.AppointmentResponse, error)
	Get(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	notifier        service.NotificationService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	notifier service.NotificationService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
	}
}

// Create inserts a new Pending appointment and then notifies the doctor by
// email. The notification runs after commit and is best-effort: the row is
// durable whether or not the email goes out.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	scheduledAt, err := parseDatetime(req.Datetime)
	if err != nil {
		return nil, ErrInvalidDatetime
	}

	appointment := &entity.Appointment{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Location:    req.Location,
		ScheduledAt: scheduledAt,
		Message:     req.Message,
		Status:      entity.AppointmentStatusPending,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if err := u.notifier.NotifyNewAppointment(appointment); err != nil {
		u.log.Warnf("Failed to send new-appointment notification: %+v", err)
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) List(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) Get(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

// Update applies the supplied fields only. A request carrying zero
// recognized fields fails before any write, leaving updated_at untouched.
func (u *appointmentUsecase) Update(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	updated := false

	if req.Status != nil {
		status := entity.AppointmentStatus(*req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		appointment.Status = status
		updated = true
	}

	if req.Datetime != nil && *req.Datetime != "" {
		scheduledAt, err := parseDatetime(*req.Datetime)
		if err != nil {
			return nil, ErrInvalidDatetime
		}
		appointment.ScheduledAt = scheduledAt
		updated = true
	}

	if req.Notes != nil {
		appointment.DoctorNotes = *req.Notes
		updated = true
	}

	if !updated {
		return nil, ErrNoFieldsUpdated
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}
