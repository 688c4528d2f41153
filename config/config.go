package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	JWT       JWTConfig
	Mail      MailConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type JWTConfig struct {
	Secret string
}

// MailConfig drives the SMTP transport used for new-appointment
// notifications. DoctorEmail is the destination address; leaving it empty
// disables notifications entirely.
type MailConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	Sender      string
	UseSSL      bool
	DoctorEmail string
}

// RateLimitConfig applies to the unauthenticated endpoints only.
// RPS <= 0 disables limiting.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.SetDefault("MAIL_SERVER", "smtp.gmail.com")
	viper.SetDefault("MAIL_PORT", 587)
	viper.SetDefault("MAIL_USE_SSL", false)
	viper.SetDefault("MAIL_DEFAULT_SENDER", viper.GetString("MAIL_USERNAME"))
	viper.SetDefault("DOCTOR_EMAIL", viper.GetString("MAIL_USERNAME"))
	viper.SetDefault("RATE_LIMIT_RPS", 0)
	viper.SetDefault("RATE_LIMIT_BURST", 10)

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
		},
		Mail: MailConfig{
			Host:        viper.GetString("MAIL_SERVER"),
			Port:        viper.GetInt("MAIL_PORT"),
			Username:    viper.GetString("MAIL_USERNAME"),
			Password:    viper.GetString("MAIL_PASSWORD"),
			Sender:      viper.GetString("MAIL_DEFAULT_SENDER"),
			UseSSL:      viper.GetBool("MAIL_USE_SSL"),
			DoctorEmail: viper.GetString("DOCTOR_EMAIL"),
		},
		RateLimit: RateLimitConfig{
			RPS:   viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst: viper.GetInt("RATE_LIMIT_BURST"),
		},
	}

	return config, nil
}
