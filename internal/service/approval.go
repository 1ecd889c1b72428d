package service

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/favouritesss/1000-Pips-Climber-System/internal/domain"
	"github.com/favouritesss/1000-Pips-Climber-System/internal/ledger"
)

// Approve moves a pending transaction to approved and applies its ledger
// effect: approved deposits credit the balance, approved withdrawals have no
// effect (the funds were reserved at request time).
func Approve(db *gorm.DB, txID uint) error {
	return resolve(db, txID, domain.TxApproved)
}

// Reject moves a pending transaction to rejected. Rejected withdrawals refund
// the reservation; rejected deposits have no ledger effect.
func Reject(db *gorm.DB, txID uint) error {
	return resolve(db, txID, domain.TxRejected)
}

// resolve performs the single allowed status transition. The flip is a
// conditional update on status = pending: of two concurrent resolves on the
// same row, exactly one sees RowsAffected == 1 and applies the ledger effect;
// the other gets ErrTxResolved. Status flip and ledger effect share one
// database transaction.
func resolve(db *gorm.DB, txID uint, target string) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		var t domain.Transaction
		if err := tx.First(&t, txID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTxNotFound
			}
			return err
		}
		res := tx.Model(&domain.Transaction{}).
			Where("id = ? AND status = ?", txID, domain.TxPending).
			Update("status", target)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrTxResolved
		}
		switch {
		case target == domain.TxApproved && t.Type == domain.TxDeposit:
			return ledger.Credit(tx, t.UserID, t.Amount)
		case target == domain.TxRejected && t.Type == domain.TxWithdrawal:
			// Refund the reservation made at request time
			return ledger.Credit(tx, t.UserID, t.Amount)
		}
		return nil
	})
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"transaction_id": txID,
		"status":         target,
	}).Info("Transaction resolved")
	return nil
}

// PendingTransactions lists every transaction awaiting review, newest first,
// with the owning user's identity attached.
func PendingTransactions(db *gorm.DB) ([]AdminTransaction, error) {
	return listTransactions(db.Where("transactions.status = ?", domain.TxPending), 0)
}

// AllTransactions lists the most recent 100 transactions across all users.
func AllTransactions(db *gorm.DB) ([]AdminTransaction, error) {
	return listTransactions(db, 100)
}

// AdminTransaction is a transaction row enriched with the owner's identity
// for the admin console.
type AdminTransaction struct {
	domain.Transaction
	Username string `json:"username"`
	Email    string `json:"email"`
}

func listTransactions(db *gorm.DB, limit int) ([]AdminTransaction, error) {
	rows := []AdminTransaction{}
	q := db.Table("transactions").
		Select("transactions.*, users.username, users.email").
		Joins("LEFT JOIN users ON users.id = transactions.user_id").
		Order("transactions.created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
