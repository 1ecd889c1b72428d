package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/favouritesss/1000-Pips-Climber-System/internal/domain"
)

// ListPlans returns every plan in stable id order.
func ListPlans(db *gorm.DB) ([]domain.Plan, error) {
	var plans []domain.Plan
	if err := db.Order("id").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// GetPlan looks up a single plan by id.
func GetPlan(db *gorm.DB, planID uint) (*domain.Plan, error) {
	var plan domain.Plan
	if err := db.First(&plan, planID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}
