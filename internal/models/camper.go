package models

import "time"

type Camper struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	Age       int    `gorm:"check:age_check,(age >= 8) AND (age <= 18)" json:"age"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Signups []Signup `gorm:"constraint:OnDelete:CASCADE" json:"signups,omitempty"`
}

func ValidateCamperName(name string) error {
	if name == "" {
		return &ValidationError{Reason: "Camper must have a name."}
	}
	return nil
}

func ValidateCamperAge(age int) error {
	if age < 8 || age > 18 {
		return &ValidationError{Reason: "Please select an authorized age"}
	}
	return nil
}

// Validate checks every constrained field; used on create so a partially
// invalid camper is never persisted.
func (c *Camper) Validate() error {
	if err := ValidateCamperName(c.Name); err != nil {
		return err
	}
	return ValidateCamperAge(c.Age)
}

// ApplyPatch merges a partial update onto the camper. Only the recognized
// keys "name" and "age" are accepted; each assignment is validated before it
// lands, and unknown keys are rejected rather than silently dropped.
func (c *Camper) ApplyPatch(fields map[string]any) error {
	for key, value := range fields {
		switch key {
		case "name":
			name, ok := value.(string)
			if !ok {
				return &ValidationError{Reason: "name must be a string"}
			}
			if err := ValidateCamperName(name); err != nil {
				return err
			}
			c.Name = name
		case "age":
			age, ok := asInt(value)
			if !ok {
				return &ValidationError{Reason: "age must be an integer"}
			}
			if err := ValidateCamperAge(age); err != nil {
				return err
			}
			c.Age = age
		default:
			return &ValidationError{Reason: "unknown field: " + key}
		}
	}
	return nil
}

// asInt narrows a decoded JSON value to an int. encoding/json decodes all
// numbers into float64, so fractional values are rejected here.
func asInt(value any) (int, bool) {
	f, ok := value.(float64)
	if !ok || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}
