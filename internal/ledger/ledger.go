// Package ledger owns every mutation of a user's balance. All writes are
// single conditional UPDATE statements so that concurrent calls on the same
// account serialize at the database row and the balance can never go negative.
package ledger

import (
	"errors"

	"gorm.io/gorm"

	"github.com/favouritesss/1000-Pips-Climber-System/internal/domain"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidStatus     = errors.New("invalid status")
)

// Credit adds amount to the user's balance.
func Credit(db *gorm.DB, userID uint, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	res := db.Model(&domain.User{}).
		Where("id = ?", userID).
		Update("balance", gorm.Expr("balance + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Debit subtracts amount from the user's balance. The sufficiency check and
// the write are one conditional UPDATE, not a read followed by a write, so two
// concurrent debits cannot both spend the same funds.
func Debit(db *gorm.DB, userID uint, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	res := db.Model(&domain.User{}).
		Where("id = ? AND balance >= ?", userID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Zero rows means either the user is missing or underfunded
		var count int64
		if err := db.Model(&domain.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrUserNotFound
		}
		return ErrInsufficientFunds
	}
	return nil
}

// SetBalance overwrites the balance with an absolute value (admin override).
func SetBalance(db *gorm.DB, userID uint, amount float64) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	var user domain.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return db.Model(&user).Update("balance", amount).Error
}

// SetEarnings overwrites the earnings figure (admin override). Earnings are
// display-only and never feed back into the spendable balance.
func SetEarnings(db *gorm.DB, userID uint, amount float64) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	var user domain.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return db.Model(&user).Update("earnings", amount).Error
}

// SetStatus activates or deactivates an account.
func SetStatus(db *gorm.DB, userID uint, status string) error {
	if status != domain.StatusActive && status != domain.StatusInactive {
		return ErrInvalidStatus
	}
	var user domain.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return db.Model(&user).Update("status", status).Error
}

// Delete removes a user together with their transactions and investments.
// The cascade runs inside one transaction so no half-deleted account remains.
func Delete(db *gorm.DB, userID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&domain.User{}, userID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrUserNotFound
		}
		if err := tx.Where("user_id = ?", userID).Delete(&domain.Transaction{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&domain.Investment{}).Error
	})
}
