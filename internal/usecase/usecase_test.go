package usecase

import (
	"fmt"
	"io"
	"testing"

	"physio-appointment-api/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(&entity.Doctor{}, &entity.Appointment{}, &entity.Patient{})
	assert.NoError(t, err)

	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeNotifier struct {
	notified []*entity.Appointment
	err      error
}

func (f *fakeNotifier) NotifyNewAppointment(appointment *entity.Appointment) error {
	f.notified = append(f.notified, appointment)
	return f.err
}
