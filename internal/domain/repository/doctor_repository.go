package repository

import (
	"physio-appointment-api/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByEmail(db *gorm.DB, email string) (*entity.Doctor, error)
}
