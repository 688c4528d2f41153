package usecase

import (
	"context"
	"testing"
	"time"

	"physio-appointment-api/internal/delivery/dto"
	"physio-appointment-api/internal/domain/entity"
	"physio-appointment-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newAppointmentUsecase(db *gorm.DB, notifier *fakeNotifier) AppointmentUsecase {
	return NewAppointmentUsecase(db, testLogger(), repository.NewAppointmentRepository(), notifier)
}

func validCreateRequest() *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		Name:     "Jane Doe",
		Phone:    "555-1234",
		Location: "Clinic A",
		Datetime: "2025-12-03T08:00",
	}
}

func TestParseDatetime(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "2025-12-03T08:00", want: "2025-12-03T08:00:00"},
		{input: "2025-12-03T08:00:30", want: "2025-12-03T08:00:30"},
		{input: "2025-12-03T08:00:30.500", want: "2025-12-03T08:00:30"},
		{input: "2025-12-03T08:00:30+01:00", want: "2025-12-03T08:00:30"},
		{input: "2025-12-03", want: "2025-12-03T00:00:00"},
		{input: "03/12/2025", wantErr: true},
		{input: "not-a-date", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range tests {
		got, err := parseDatetime(tc.input)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.input)
			continue
		}
		assert.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got.Format("2006-01-02T15:04:05"), "input %q", tc.input)
	}
}

func TestCreateAppointment_StatusAlwaysPending(t *testing.T) {
	db := setupTestDB(t)
	notifier := &fakeNotifier{}
	uc := newAppointmentUsecase(db, notifier)

	resp, err := uc.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)
	assert.Equal(t, "Pending", resp.Status)
	assert.NotZero(t, resp.ID)

	var stored entity.Appointment
	assert.NoError(t, db.First(&stored, resp.ID).Error)
	assert.Equal(t, entity.AppointmentStatusPending, stored.Status)
	assert.True(t, stored.IsPending())
}

func TestCreateAppointment_DatetimeEcho(t *testing.T) {
	db := setupTestDB(t)
	uc := newAppointmentUsecase(db, &fakeNotifier{})

	resp, err := uc.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)
	assert.Equal(t, "2025-12-03T08:00:00", resp.Datetime)
}

func TestCreateAppointment_InvalidDatetime(t *testing.T) {
	db := setupTestDB(t)
	uc := newAppointmentUsecase(db, &fakeNotifier{})

	req := validCreateRequest()
	req.Datetime = "next tuesday"

	_, err := uc.Create(context.Background(), req)
	assert.Equal(t, ErrInvalidDatetime, err)

	var count int64
	db.Model(&entity.Appointment{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateAppointment_NotifiesDoctor(t *testing.T) {
	db := setupTestDB(t)
	notifier := &fakeNotifier{}
	uc := newAppointmentUsecase(db, notifier)

	_, err := uc.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)
	assert.Len(t, notifier.notified, 1)
	assert.Equal(t, "Jane Doe", notifier.notified[0].Name)
}

func TestCreateAppointment_NotificationFailureIsSwallowed(t *testing.T) {
	db := setupTestDB(t)
	notifier := &fakeNotifier{err: assert.AnError}
	uc := newAppointmentUsecase(db, notifier)

	resp, err := uc.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)

	// the row must be durable even though the email failed
	var stored entity.Appointment
	assert.NoError(t, db.First(&stored, resp.ID).Error)
}

func TestListAppointments_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	uc := newAppointmentUsecase(db, &fakeNotifier{})

	for _, name := range []string{"first", "second", "third"} {
		req := validCreateRequest()
		req.Name = name
		_, err := uc.Create(context.Background(), req)
		assert.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	list, err := uc.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Name)
	assert.Equal(t, "first", list[2].Name)
}

func TestGetAppointment_NotFound(t *testing.T) {
	db := setupTestDB(t)
	uc := newAppointmentUsecase(db, &fakeNotifier{})

	_, err := uc.Get(context.Background(), 999)
	assert.Equal(t, ErrAppointmentNotFound, err)
}

func TestUpdateAppointment_Status(t *testing.T) {
	db := setupTestDB(t)
	uc := newAppointmentUsecase(db, &fakeNotifier{})

	created, err := uc.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)

	var before entity.Appointment
	assert.NoError(t, db.First(&before, created.ID).Error)

	time.Sleep(10 * time.Millisecond)

	status := "Confirmed"
	updated, err := uc.Update(context.Background(), created.ID, &dto.UpdateAppointmentRequest{Status: &status})
	assert.NoError(t, err)
	assert.Equal(t, "Confirmed", updated.Status)

	var after entity.Appointment
	assert.NoError(t, db.First(&after, created.ID).Error)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
}

func TestUpdateAppointment_PartialLeavesOtherFields(t *testing.T) {
	db := setupTestDB(t)
	uc := newAppointmentUsecase(db, &fakeNotifier{})

	created, err := uc.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)

	notes := "bring previous X-rays"
	updated, err := uc.Update(context.Background(), created.ID, &dto.UpdateAppointmentRequest{Notes: &notes})
	assert.NoError(t, err)
	assert.Equal(t, "bring previous X-rays", updated.DoctorNotes)
	assert.Equal(t, created.Status, updated.Status)
	assert.Equal(t, created.Datetime, updated.Datetime)
}

func TestUpdateAppointment_NoFields(t *testing.T) {
	db := setupTestDB(t)
	uc := newAppointmentUsecase(db, &fakeNotifier{})

	created, err := uc.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)

	_, err = uc.Update(context.Background(), created.ID, &dto.UpdateAppointmentRequest{})
	assert.Equal(t, ErrNoFieldsUpdated, err)

	// no mutation happened
	after, err := uc.Get(context.Background(), created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.UpdatedAt, after.UpdatedAt)
}

func TestUpdateAppointment_EmptyDatetimeTreatedAsAbsent(t *testing.T) {
	db := setupTestDB(t)
	uc := newAppointmentUsecase(db, &fakeNotifier{})

	created, err := uc.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)

	empty := ""
	_, err = uc.Update(context.Background(), created.ID, &dto.UpdateAppointmentRequest{Datetime: &empty})
	assert.Equal(t, ErrNoFieldsUpdated, err)
}

func TestUpdateAppointment_InvalidDatetime(t *testing.T) {
	db := setupTestDB(t)
	uc := newAppointmentUsecase(db, &fakeNotifier{})

	created, err := uc.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)

	bad := "tomorrow-ish"
	_, err = uc.Update(context.Background(), created.ID, &dto.UpdateAppointmentRequest{Datetime: &bad})
	assert.Equal(t, ErrInvalidDatetime, err)
}

func TestUpdateAppointment_NotFound(t *testing.T) {
	db := setupTestDB(t)
	uc := newAppointmentUsecase(db, &fakeNotifier{})

	status := "Confirmed"
	_, err := uc.Update(context.Background(), 999, &dto.UpdateAppointmentRequest{Status: &status})
	assert.Equal(t, ErrAppointmentNotFound, err)
}

func TestUpdateAppointment_RepeatedPatchIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	uc := newAppointmentUsecase(db, &fakeNotifier{})

	created, err := uc.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)

	status := "Rescheduled"
	datetime := "2025-12-10T09:30"
	req := &dto.UpdateAppointmentRequest{Status: &status, Datetime: &datetime}

	first, err := uc.Update(context.Background(), created.ID, req)
	assert.NoError(t, err)

	var afterFirst entity.Appointment
	assert.NoError(t, db.First(&afterFirst, created.ID).Error)

	time.Sleep(10 * time.Millisecond)

	second, err := uc.Update(context.Background(), created.ID, req)
	assert.NoError(t, err)

	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Datetime, second.Datetime)
	assert.Equal(t, first.DoctorNotes, second.DoctorNotes)

	var afterSecond entity.Appointment
	assert.NoError(t, db.First(&afterSecond, created.ID).Error)
	assert.True(t, afterSecond.UpdatedAt.After(afterFirst.UpdatedAt))
}
