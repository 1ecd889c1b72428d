package service

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/favouritesss/1000-Pips-Climber-System/internal/domain"
	"github.com/favouritesss/1000-Pips-Climber-System/internal/ledger"
)

func TestDepositApprovalFlow(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice", 200)

	tx, err := RequestDeposit(db, user.ID, 50, "BTC")
	require.NoError(t, err)
	assert.Equal(t, domain.TxPending, tx.Status)
	// Requesting a deposit never moves the balance
	assert.Equal(t, 200.0, balanceOf(t, db, user.ID))

	require.NoError(t, Approve(db, tx.ID))
	assert.Equal(t, 250.0, balanceOf(t, db, user.ID))

	var resolved domain.Transaction
	require.NoError(t, db.First(&resolved, tx.ID).Error)
	assert.Equal(t, domain.TxApproved, resolved.Status)

	// A second approve is a conflict and must not credit again
	assert.ErrorIs(t, Approve(db, tx.ID), ErrTxResolved)
	assert.Equal(t, 250.0, balanceOf(t, db, user.ID))
	// Rejecting an approved transaction is equally refused
	assert.ErrorIs(t, Reject(db, tx.ID), ErrTxResolved)
}

func TestDepositRejectHasNoLedgerEffect(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "bob", 100)

	tx, err := RequestDeposit(db, user.ID, 40, "ETH")
	require.NoError(t, err)

	require.NoError(t, Reject(db, tx.ID))
	assert.Equal(t, 100.0, balanceOf(t, db, user.ID))

	var resolved domain.Transaction
	require.NoError(t, db.First(&resolved, tx.ID).Error)
	assert.Equal(t, domain.TxRejected, resolved.Status)
}

func TestWithdrawalReservation(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "carol", 250)

	// The reservation debits immediately
	tx, err := RequestWithdrawal(db, user.ID, 100, "0xabc123", "USDT")
	require.NoError(t, err)
	assert.Equal(t, domain.TxPending, tx.Status)
	assert.Equal(t, 150.0, balanceOf(t, db, user.ID))

	// Rejection refunds the reservation in full
	require.NoError(t, Reject(db, tx.ID))
	assert.Equal(t, 250.0, balanceOf(t, db, user.ID))

	var resolved domain.Transaction
	require.NoError(t, db.First(&resolved, tx.ID).Error)
	assert.Equal(t, domain.TxRejected, resolved.Status)
}

func TestWithdrawalApproveLeavesBalance(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "dave", 250)

	tx, err := RequestWithdrawal(db, user.ID, 100, "0xdef456", "USDT")
	require.NoError(t, err)
	assert.Equal(t, 150.0, balanceOf(t, db, user.ID))

	// Approval pays out the reservation; the balance was already reduced
	require.NoError(t, Approve(db, tx.ID))
	assert.Equal(t, 150.0, balanceOf(t, db, user.ID))
}

func TestWithdrawalInsufficientFunds(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "erin", 50)

	_, err := RequestWithdrawal(db, user.ID, 100, "0x0", "BTC")
	assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)

	// No reservation and no transaction row on failure
	assert.Equal(t, 50.0, balanceOf(t, db, user.ID))
	var count int64
	require.NoError(t, db.Model(&domain.Transaction{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestResolveUnknownTransaction(t *testing.T) {
	db := newTestDB(t)

	assert.ErrorIs(t, Approve(db, 12345), ErrTxNotFound)
	assert.ErrorIs(t, Reject(db, 12345), ErrTxNotFound)
}

func TestConcurrentApproveCreditsOnce(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "frank", 0)

	tx, err := RequestDeposit(db, user.ID, 100, "BTC")
	require.NoError(t, err)

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- Approve(db, tx.ID)
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, conflicted int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrTxResolved):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	// Exactly one approve wins and the credit lands exactly once
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, conflicted)
	assert.Equal(t, 100.0, balanceOf(t, db, user.ID))
}

func TestPendingTransactionsEnriched(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice", 500)
	bob := seedUser(t, db, "bob", 500)

	_, err := RequestDeposit(db, alice.ID, 50, "BTC")
	require.NoError(t, err)
	wtx, err := RequestWithdrawal(db, bob.ID, 60, "0x1", "ETH")
	require.NoError(t, err)

	pending, err := PendingTransactions(db)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	for _, p := range pending {
		assert.Equal(t, domain.TxPending, p.Status)
		assert.NotEmpty(t, p.Username)
		assert.NotEmpty(t, p.Email)
	}

	// Resolving one removes it from the review queue
	require.NoError(t, Approve(db, wtx.ID))
	pending, err = PendingTransactions(db)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "alice", pending[0].Username)

	// The full listing still carries both
	all, err := AllTransactions(db)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
