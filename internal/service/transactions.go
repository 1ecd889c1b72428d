package service

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/favouritesss/1000-Pips-Climber-System/internal/domain"
	"github.com/favouritesss/1000-Pips-Climber-System/internal/ledger"
)

// RequestDeposit records a pending deposit. The balance is untouched until an
// admin approves the transaction.
func RequestDeposit(db *gorm.DB, userID uint, amount float64, method string) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, ledger.ErrInvalidAmount
	}
	var count int64
	if err := db.Model(&domain.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ledger.ErrUserNotFound
	}
	t := domain.Transaction{
		Reference:   uuid.NewString(),
		UserID:      userID,
		Type:        domain.TxDeposit,
		Amount:      amount,
		Status:      domain.TxPending,
		Description: "Deposit via " + method,
		Method:      method,
	}
	if err := db.Create(&t).Error; err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"amount":  amount,
		"method":  method,
	}).Info("Deposit requested")
	return &t, nil
}

// RequestWithdrawal reserves the funds up front: the balance is debited at
// request time and returned only if an admin later rejects the withdrawal.
// Deposits behave the other way around; the asymmetry is deliberate.
func RequestWithdrawal(db *gorm.DB, userID uint, amount float64, walletAddress, method string) (*domain.Transaction, error) {
	var t domain.Transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := ledger.Debit(tx, userID, amount); err != nil {
			return err
		}
		t = domain.Transaction{
			Reference:   uuid.NewString(),
			UserID:      userID,
			Type:        domain.TxWithdrawal,
			Amount:      amount,
			Status:      domain.TxPending,
			Description: "Withdrawal to " + method + " - " + walletAddress,
			Method:      method,
			Details:     walletAddress,
		}
		return tx.Create(&t).Error
	})
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"amount":  amount,
		"method":  method,
	}).Info("Withdrawal requested, funds reserved")
	return &t, nil
}

// UserTransactions lists the caller's own transactions, newest first, capped
// at 50 rows.
func UserTransactions(db *gorm.DB, userID uint) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	if err := db.Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(50).
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}
