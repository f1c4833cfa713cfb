package models

import "time"

// Signup joins one camper to one activity at an hour-of-day slot. Signups
// are created through their own endpoint and removed only by cascade when
// either parent is deleted.
type Signup struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	Time       int  `gorm:"check:time_check,(time >= 0) AND (time <= 23)" json:"time"`
	CamperID   uint `gorm:"not null" json:"camper_id"`
	ActivityID uint `gorm:"not null" json:"activity_id"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Camper   Camper   `gorm:"foreignKey:CamperID" json:"camper"`
	Activity Activity `gorm:"foreignKey:ActivityID" json:"activity"`
}

func ValidateSignupTime(t int) error {
	if t < 0 || t > 23 {
		return &ValidationError{Reason: "Signup must have a proper time."}
	}
	return nil
}
