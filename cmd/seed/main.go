// Command seed provisions the doctor account. The API has no registration
// endpoint, so this is the out-of-band path: run it once against the target
// database with DOCTOR_NAME, DOCTOR_LOGIN_EMAIL and DOCTOR_PASSWORD set.
package main

import (
	"context"

	"physio-appointment-api/config"
	"physio-appointment-api/internal/infrastructure/database"
	"physio-appointment-api/internal/repository"
	"physio-appointment-api/internal/usecase"
	"physio-appointment-api/pkg/jwt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	name := viper.GetString("DOCTOR_NAME")
	email := viper.GetString("DOCTOR_LOGIN_EMAIL")
	password := viper.GetString("DOCTOR_PASSWORD")
	if email == "" || password == "" {
		logrus.Fatal("DOCTOR_LOGIN_EMAIL and DOCTOR_PASSWORD must be set")
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	authUsecase := usecase.NewAuthUsecase(db, logrus.StandardLogger(), repository.NewDoctorRepository(), jwt.NewJWTService(cfg.JWT))

	doctor, err := authUsecase.ProvisionDoctor(context.Background(), name, email, password)
	if err != nil {
		if err == usecase.ErrEmailAlreadyExists {
			logrus.Fatalf("A doctor with email %s already exists", email)
		}
		logrus.Fatalf("Failed to provision doctor: %v", err)
	}

	logrus.Infof("Doctor provisioned: id=%d email=%s", doctor.ID, doctor.Email)
}
