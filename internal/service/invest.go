package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/favouritesss/1000-Pips-Climber-System/internal/domain"
	"github.com/favouritesss/1000-Pips-Climber-System/internal/ledger"
)

// Invest opens an investment contract against a plan, funded from the user's
// balance. The debit, the investment row and the transaction row commit or
// roll back as one unit: a reduced balance with no matching records is not a
// reachable state.
func Invest(db *gorm.DB, userID uint, planID uint, amount float64) (*domain.Investment, error) {
	plan, err := GetPlan(db, planID)
	if err != nil {
		return nil, err
	}
	// Validate against the plan's deposit bounds
	if amount < plan.MinDeposit || amount > plan.MaxDeposit {
		return nil, &AmountRangeError{Min: plan.MinDeposit, Max: plan.MaxDeposit}
	}
	var inv domain.Investment
	err = db.Transaction(func(tx *gorm.DB) error {
		// Debit first; ErrInsufficientFunds aborts before anything is written
		if err := ledger.Debit(tx, userID, amount); err != nil {
			return err
		}
		now := time.Now()
		inv = domain.Investment{
			UserID:        userID,
			PlanID:        plan.ID,
			PlanName:      plan.Name,
			ROIPercentage: plan.ROIPercentage,
			Amount:        amount,
			StartDate:     now,
			EndDate:       now.AddDate(0, 0, plan.DurationDays),
			Status:        domain.InvestmentActive,
		}
		if err := tx.Create(&inv).Error; err != nil {
			return err
		}
		t := domain.Transaction{
			Reference:   uuid.NewString(),
			UserID:      userID,
			Type:        domain.TxInvestment,
			Amount:      amount,
			Status:      domain.TxCompleted,
			Description: "Invested in " + plan.Name + " plan",
		}
		return tx.Create(&t).Error
	})
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"plan":    plan.Name,
		"amount":  amount,
	}).Info("Investment opened")
	return &inv, nil
}

// UserInvestments lists the caller's own investment contracts, newest first.
func UserInvestments(db *gorm.DB, userID uint) ([]domain.Investment, error) {
	var investments []domain.Investment
	if err := db.Where("user_id = ?", userID).
		Order("start_date desc").
		Find(&investments).Error; err != nil {
		return nil, err
	}
	return investments, nil
}
