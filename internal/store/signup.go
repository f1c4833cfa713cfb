package store

import (
	"context"
	"errors"

	"github.com/sunridge-camp/camp-signup-api/internal/models"
	"gorm.io/gorm"
)

// CreateSignup validates the time slot, checks both parents exist inside the
// transaction, and returns the new signup with its camper and activity
// loaded. A missing parent is a client error, not an internal one, so it
// surfaces as a ValidationError.
func (s *Store) CreateSignup(ctx context.Context, camperID, activityID uint, time int) (*models.Signup, error) {
	if err := models.ValidateSignupTime(time); err != nil {
		return nil, err
	}

	signup := models.Signup{Time: time, CamperID: camperID, ActivityID: activityID}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Camper{}, camperID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &models.ValidationError{Reason: "Signup must reference an existing camper."}
			}
			return err
		}
		if err := tx.First(&models.Activity{}, activityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &models.ValidationError{Reason: "Signup must reference an existing activity."}
			}
			return err
		}
		if err := tx.Create(&signup).Error; err != nil {
			return err
		}
		return tx.Preload("Camper").Preload("Activity").First(&signup, signup.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &signup, nil
}

// ListSignups returns every signup with parents loaded; used by tests to
// verify cascades.
func (s *Store) ListSignups(ctx context.Context) ([]models.Signup, error) {
	var signups []models.Signup
	if err := s.db.WithContext(ctx).Preload("Camper").Preload("Activity").Find(&signups).Error; err != nil {
		return nil, err
	}
	return signups, nil
}
