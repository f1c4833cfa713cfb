package models

import "time"

// Activity has no bound on difficulty; only the database column type
// constrains it.
type Activity struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `json:"name"`
	Difficulty int    `json:"difficulty"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Signups []Signup `gorm:"constraint:OnDelete:CASCADE" json:"signups,omitempty"`
}

// ApplyPatch merges a partial update onto the activity, rejecting unknown
// keys.
func (a *Activity) ApplyPatch(fields map[string]any) error {
	for key, value := range fields {
		switch key {
		case "name":
			name, ok := value.(string)
			if !ok {
				return &ValidationError{Reason: "name must be a string"}
			}
			a.Name = name
		case "difficulty":
			difficulty, ok := asInt(value)
			if !ok {
				return &ValidationError{Reason: "difficulty must be an integer"}
			}
			a.Difficulty = difficulty
		default:
			return &ValidationError{Reason: "unknown field: " + key}
		}
	}
	return nil
}
