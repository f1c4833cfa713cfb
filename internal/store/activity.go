package store

import (
	"context"

	"github.com/sunridge-camp/camp-signup-api/internal/models"
	"gorm.io/gorm"
)

func (s *Store) ListActivities(ctx context.Context) ([]models.Activity, error) {
	var activities []models.Activity
	if err := s.db.WithContext(ctx).Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (s *Store) GetActivity(ctx context.Context, id uint) (*models.Activity, error) {
	var activity models.Activity
	if err := s.db.WithContext(ctx).First(&activity, id).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

func (s *Store) CreateActivity(ctx context.Context, name string, difficulty int) (*models.Activity, error) {
	activity := models.Activity{Name: name, Difficulty: difficulty}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&activity).Error
	})
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (s *Store) UpdateActivity(ctx context.Context, id uint, fields map[string]any) (*models.Activity, error) {
	var activity models.Activity
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&activity, id).Error; err != nil {
			return err
		}
		if err := activity.ApplyPatch(fields); err != nil {
			return err
		}
		return tx.Save(&activity).Error
	})
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// DeleteActivity removes the activity and cascades to its signups in one
// transaction.
func (s *Store) DeleteActivity(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var activity models.Activity
		if err := tx.First(&activity, id).Error; err != nil {
			return err
		}
		if err := tx.Where("activity_id = ?", id).Delete(&models.Signup{}).Error; err != nil {
			return err
		}
		return tx.Delete(&activity).Error
	})
}
