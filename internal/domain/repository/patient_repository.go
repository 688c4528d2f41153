package repository

import (
	"physio-appointment-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	FindByID(db *gorm.DB, id uint) (*entity.Patient, error)
}
