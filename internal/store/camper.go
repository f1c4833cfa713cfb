package store

import (
	"context"

	"github.com/sunridge-camp/camp-signup-api/internal/models"
	"gorm.io/gorm"
)

func (s *Store) ListCampers(ctx context.Context) ([]models.Camper, error) {
	var campers []models.Camper
	if err := s.db.WithContext(ctx).Find(&campers).Error; err != nil {
		return nil, err
	}
	return campers, nil
}

func (s *Store) GetCamper(ctx context.Context, id uint) (*models.Camper, error) {
	var camper models.Camper
	if err := s.db.WithContext(ctx).First(&camper, id).Error; err != nil {
		return nil, err
	}
	return &camper, nil
}

// GetCamperWithSignups loads a camper together with its signups, each signup
// carrying its own camper and activity for the detail projection.
func (s *Store) GetCamperWithSignups(ctx context.Context, id uint) (*models.Camper, error) {
	var camper models.Camper
	err := s.db.WithContext(ctx).
		Preload("Signups.Camper").
		Preload("Signups.Activity").
		First(&camper, id).Error
	if err != nil {
		return nil, err
	}
	return &camper, nil
}

func (s *Store) CreateCamper(ctx context.Context, name string, age int) (*models.Camper, error) {
	camper := models.Camper{Name: name, Age: age}
	if err := camper.Validate(); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&camper).Error
	})
	if err != nil {
		return nil, err
	}
	return &camper, nil
}

// UpdateCamper applies a partial field merge. A failing assignment aborts the
// transaction, so previously persisted state is untouched.
func (s *Store) UpdateCamper(ctx context.Context, id uint, fields map[string]any) (*models.Camper, error) {
	var camper models.Camper
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&camper, id).Error; err != nil {
			return err
		}
		if err := camper.ApplyPatch(fields); err != nil {
			return err
		}
		return tx.Save(&camper).Error
	})
	if err != nil {
		return nil, err
	}
	return &camper, nil
}

// DeleteCamper removes the camper and every signup it owns in one
// transaction. No HTTP endpoint exposes this; it exists for the cascade
// semantics of the data model.
func (s *Store) DeleteCamper(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var camper models.Camper
		if err := tx.First(&camper, id).Error; err != nil {
			return err
		}
		if err := tx.Where("camper_id = ?", id).Delete(&models.Signup{}).Error; err != nil {
			return err
		}
		return tx.Delete(&camper).Error
	})
}
