package entity

// Doctor is the single clinician account. Rows are provisioned out-of-band
// (see cmd/seed); the API only ever reads them during login.
type Doctor struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"type:varchar(255)" json:"name"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:text;not null" json:"-"`
}

func (Doctor) TableName() string {
	return "doctors"
}
