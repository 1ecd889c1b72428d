package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/favouritesss/1000-Pips-Climber-System/internal/domain"
)

// newTestDB opens an in-memory sqlite database pinned to a single connection
// so the shared store survives for the whole test and concurrent transactions
// serialize cleanly.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Plan{}, &domain.Investment{}, &domain.Transaction{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string, balance float64) *domain.User {
	t.Helper()
	user := &domain.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "irrelevant",
		Balance:  balance,
		Role:     domain.RoleUser,
		Status:   domain.StatusActive,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// seedStarterPlan inserts the Starter plan (100-1000, 10% over 7 days)
func seedStarterPlan(t *testing.T, db *gorm.DB) *domain.Plan {
	t.Helper()
	plan := &domain.Plan{Name: "Starter", MinDeposit: 100, MaxDeposit: 1000, ROIPercentage: 10, DurationDays: 7}
	require.NoError(t, db.Create(plan).Error)
	return plan
}

func balanceOf(t *testing.T, db *gorm.DB, userID uint) float64 {
	t.Helper()
	var user domain.User
	require.NoError(t, db.First(&user, userID).Error)
	return user.Balance
}
