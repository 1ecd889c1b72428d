package service

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/favouritesss/1000-Pips-Climber-System/internal/domain"
	"github.com/favouritesss/1000-Pips-Climber-System/internal/ledger"
)

// FundUser credits a user's balance directly and writes the matching approved
// deposit transaction in the same unit.
func FundUser(db *gorm.DB, userID uint, amount float64) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := ledger.Credit(tx, userID, amount); err != nil {
			return err
		}
		t := domain.Transaction{
			Reference:   uuid.NewString(),
			UserID:      userID,
			Type:        domain.TxDeposit,
			Amount:      amount,
			Status:      domain.TxApproved,
			Description: "Admin Allocation",
		}
		return tx.Create(&t).Error
	})
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"amount":  amount,
	}).Info("Admin funded user")
	return nil
}

// OverrideBalance sets an absolute balance. Every balance mutation is
// transaction-logged, overrides included, so the audit trail stays complete.
func OverrideBalance(db *gorm.DB, userID uint, amount float64) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := ledger.SetBalance(tx, userID, amount); err != nil {
			return err
		}
		t := domain.Transaction{
			Reference:   uuid.NewString(),
			UserID:      userID,
			Type:        domain.TxDeposit,
			Amount:      amount,
			Status:      domain.TxApproved,
			Description: "Admin Set Balance",
		}
		return tx.Create(&t).Error
	})
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"amount":  amount,
	}).Info("Admin override balance")
	return nil
}

// OverrideEarnings sets the earnings figure. Earnings never touch the
// spendable balance, so no transaction row is written.
func OverrideEarnings(db *gorm.DB, userID uint, amount float64) error {
	return ledger.SetEarnings(db, userID, amount)
}

// ListUsers returns every regular account, newest first, for the admin
// console. Password hashes never leave the domain model (json:"-").
func ListUsers(db *gorm.DB) ([]domain.User, error) {
	var users []domain.User
	if err := db.Where("role = ?", domain.RoleUser).
		Order("created_at desc").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// AdminInvestment is an investment row enriched with the owner's username.
type AdminInvestment struct {
	domain.Investment
	Username string `json:"username"`
}

// AllInvestments lists every investment across all users, newest first.
func AllInvestments(db *gorm.DB) ([]AdminInvestment, error) {
	rows := []AdminInvestment{}
	if err := db.Table("investments").
		Select("investments.*, users.username").
		Joins("LEFT JOIN users ON users.id = investments.user_id").
		Order("investments.start_date desc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	TotalUsers        int64   `json:"totalUsers"`
	ActiveInvestments int64   `json:"activeInvestments"`
	TotalDeposits     float64 `json:"totalDeposits"`
	TotalWithdrawals  float64 `json:"totalWithdrawals"`
	Revenue           float64 `json:"revenue"`
}

// GetDashboardStats aggregates platform totals. Revenue is the 5% platform
// share of approved deposits.
func GetDashboardStats(db *gorm.DB) (*DashboardStats, error) {
	var s DashboardStats
	if err := db.Model(&domain.User{}).
		Where("role = ?", domain.RoleUser).
		Count(&s.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Investment{}).
		Where("status = ?", domain.InvestmentActive).
		Count(&s.ActiveInvestments).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Transaction{}).
		Where("type = ? AND status = ?", domain.TxDeposit, domain.TxApproved).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&s.TotalDeposits).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Transaction{}).
		Where("type = ? AND status = ?", domain.TxWithdrawal, domain.TxApproved).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&s.TotalWithdrawals).Error; err != nil {
		return nil, err
	}
	s.Revenue = s.TotalDeposits * 0.05
	return &s, nil
}
