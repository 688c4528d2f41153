package entity

// Patient is a clinic patient record. The API exposes these read-only;
// rows are maintained by external tooling. Date of birth is kept as the
// free-text value those tools supply.
type Patient struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"type:varchar(255);not null" json:"name"`
	Phone        string `gorm:"type:varchar(50)" json:"phone"`
	Email        string `gorm:"type:varchar(255)" json:"email"`
	Location     string `gorm:"type:varchar(255)" json:"location"`
	DateOfBirth  string `gorm:"type:varchar(100);column:dob" json:"dob"`
	MedicalNotes string `gorm:"type:text" json:"medical_notes"`
}

func (Patient) TableName() string {
	return "patients"
}
