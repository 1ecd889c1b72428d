package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/favouritesss/1000-Pips-Climber-System/internal/domain"
	"github.com/favouritesss/1000-Pips-Climber-System/internal/ledger"
)

func TestFundUser(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice", 200)

	require.NoError(t, FundUser(db, user.ID, 50))
	assert.Equal(t, 250.0, balanceOf(t, db, user.ID))

	// Funding writes exactly one approved deposit transaction
	var txs []domain.Transaction
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&txs).Error)
	require.Len(t, txs, 1)
	assert.Equal(t, domain.TxDeposit, txs[0].Type)
	assert.Equal(t, domain.TxApproved, txs[0].Status)
	assert.Equal(t, 50.0, txs[0].Amount)
	assert.Equal(t, "Admin Allocation", txs[0].Description)

	assert.ErrorIs(t, FundUser(db, 999, 50), ledger.ErrUserNotFound)
}

func TestOverrideBalanceIsLogged(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "bob", 123)

	require.NoError(t, OverrideBalance(db, user.ID, 1000))
	assert.Equal(t, 1000.0, balanceOf(t, db, user.ID))

	// Overrides are logged too, the audit trail has no gaps
	var txs []domain.Transaction
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&txs).Error)
	require.Len(t, txs, 1)
	assert.Equal(t, "Admin Set Balance", txs[0].Description)
	assert.Equal(t, domain.TxApproved, txs[0].Status)
}

func TestOverrideEarningsWritesNoTransaction(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "carol", 100)

	require.NoError(t, OverrideEarnings(db, user.ID, 77))

	var u domain.User
	require.NoError(t, db.First(&u, user.ID).Error)
	assert.Equal(t, 77.0, u.Earnings)
	assert.Equal(t, 100.0, u.Balance)

	var count int64
	require.NoError(t, db.Model(&domain.Transaction{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListUsersExcludesAdmins(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "alice", 0)
	admin := &domain.User{Username: "admin", Email: "admin@example.com", Password: "x", Role: domain.RoleAdmin, Status: domain.StatusActive}
	require.NoError(t, db.Create(admin).Error)

	users, err := ListUsers(db)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Username)
}

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	plan := seedStarterPlan(t, db)
	alice := seedUser(t, db, "alice", 0)
	bob := seedUser(t, db, "bob", 0)

	// Two approved deposits (200 total), one pending deposit that must not count
	require.NoError(t, FundUser(db, alice.ID, 120))
	require.NoError(t, FundUser(db, bob.ID, 80))
	_, err := RequestDeposit(db, alice.ID, 999, "BTC")
	require.NoError(t, err)

	// One approved withdrawal of 30
	wtx, err := RequestWithdrawal(db, bob.ID, 30, "0x1", "ETH")
	require.NoError(t, err)
	require.NoError(t, Approve(db, wtx.ID))

	// One active investment
	_, err = Invest(db, alice.ID, plan.ID, 100)
	require.NoError(t, err)

	stats, err := GetDashboardStats(db)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalUsers)
	assert.EqualValues(t, 1, stats.ActiveInvestments)
	assert.Equal(t, 200.0, stats.TotalDeposits)
	assert.Equal(t, 30.0, stats.TotalWithdrawals)
	// Revenue is the 5% platform share of approved deposits
	assert.InDelta(t, 10.0, stats.Revenue, 1e-9)
}

func TestAllInvestmentsEnriched(t *testing.T) {
	db := newTestDB(t)
	plan := seedStarterPlan(t, db)
	alice := seedUser(t, db, "alice", 1000)

	_, err := Invest(db, alice.ID, plan.ID, 500)
	require.NoError(t, err)

	all, err := AllInvestments(db)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "alice", all[0].Username)
	assert.Equal(t, 500.0, all[0].Amount)
}
