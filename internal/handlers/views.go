package handlers

import "github.com/sunridge-camp/camp-signup-api/internal/models"

// Allow-listed projections. Each resource exposes a fixed field set; Signup
// nests its full camper and activity views, and only the single-camper detail
// fetch nests signups (one level deep, never further).

type CamperView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

type ActivityView struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Difficulty int    `json:"difficulty"`
}

type SignupView struct {
	ID         uint         `json:"id"`
	Time       int          `json:"time"`
	CamperID   uint         `json:"camper_id"`
	ActivityID uint         `json:"activity_id"`
	Activity   ActivityView `json:"activity"`
	Camper     CamperView   `json:"camper"`
}

type CamperDetailView struct {
	ID      uint         `json:"id"`
	Name    string       `json:"name"`
	Age     int          `json:"age"`
	Signups []SignupView `json:"signups"`
}

func newCamperView(c *models.Camper) CamperView {
	return CamperView{ID: c.ID, Name: c.Name, Age: c.Age}
}

func newActivityView(a *models.Activity) ActivityView {
	return ActivityView{ID: a.ID, Name: a.Name, Difficulty: a.Difficulty}
}

func newSignupView(s *models.Signup) SignupView {
	return SignupView{
		ID:         s.ID,
		Time:       s.Time,
		CamperID:   s.CamperID,
		ActivityID: s.ActivityID,
		Activity:   newActivityView(&s.Activity),
		Camper:     newCamperView(&s.Camper),
	}
}

func newCamperDetailView(c *models.Camper) CamperDetailView {
	signups := make([]SignupView, 0, len(c.Signups))
	for i := range c.Signups {
		signups = append(signups, newSignupView(&c.Signups[i]))
	}
	return CamperDetailView{ID: c.ID, Name: c.Name, Age: c.Age, Signups: signups}
}
