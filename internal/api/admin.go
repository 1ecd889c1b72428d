package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Time durations

	"github.com/favouritesss/1000-Pips-Climber-System/internal/ledger"  // Balance mutations
	"github.com/favouritesss/1000-Pips-Climber-System/internal/service" // Business operations
	"github.com/favouritesss/1000-Pips-Climber-System/internal/utils"   // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// statsCacheKey caches the dashboard aggregates; invalidated whenever an
// admin mutation changes the totals.
const statsCacheKey = "admin:stats"

// invalidateStats drops the cached dashboard after a mutating admin action
func invalidateStats(rdb *redis.Client) {
	_ = utils.DeleteCache(context.Background(), rdb, statsCacheKey)
}

// ListUsersHandler returns all regular accounts for the admin console
func ListUsersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := service.ListUsers(db)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, users) // Password hashes are json:"-"
	}
}

// Request struct for a status change
type UserStatusRequest struct {
	ID     uint   `json:"id" binding:"required"`     // Target user
	Status string `json:"status" binding:"required"` // active or inactive
}

// UpdateUserStatusHandler activates or deactivates an account
func UpdateUserStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UserStatusRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if err := ledger.SetStatus(db, req.ID, req.Status); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User status updated"})
	}
}

// Request struct for funding and overrides
type FundRequest struct {
	UserID uint    `json:"userId" binding:"required"`      // Target user
	Amount float64 `json:"amount" binding:"required,gt=0"` // Amount
}

// FundUserHandler credits a user's balance and logs an approved deposit
func FundUserHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req FundRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
			return
		}
		if err := service.FundUser(db, req.UserID, req.Amount); err != nil {
			fail(c, err)
			return
		}
		invalidateStats(rdb) // Totals changed
		c.JSON(http.StatusOK, gin.H{"message": "User funded successfully"})
	}
}

// Request struct for absolute overrides (zero is a valid target value)
type OverrideRequest struct {
	UserID uint     `json:"userId" binding:"required"` // Target user
	Amount *float64 `json:"amount" binding:"required"` // Absolute value to set
}

// OverrideBalanceHandler sets an absolute balance and logs the override
func OverrideBalanceHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req OverrideRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
			return
		}
		if err := service.OverrideBalance(db, req.UserID, *req.Amount); err != nil {
			fail(c, err)
			return
		}
		invalidateStats(rdb) // Totals changed
		c.JSON(http.StatusOK, gin.H{"message": "Balance updated"})
	}
}

// OverrideEarningsHandler sets the earnings figure (no ledger effect)
func OverrideEarningsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req OverrideRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
			return
		}
		if err := service.OverrideEarnings(db, req.UserID, *req.Amount); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Earnings updated"})
	}
}

// Request struct identifying a user or transaction by id
type IDRequest struct {
	ID uint `json:"id" binding:"required"` // Target id
}

// DeleteUserHandler removes a user and cascades to their records
func DeleteUserHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req IDRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if err := ledger.Delete(db, req.ID); err != nil {
			fail(c, err)
			return
		}
		invalidateStats(rdb) // Totals changed
		c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
	}
}

// PendingTransactionsHandler lists every transaction awaiting review
func PendingTransactionsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		txs, err := service.PendingTransactions(db)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, txs)
	}
}

// AllTransactionsHandler lists the most recent transactions across all users
func AllTransactionsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		txs, err := service.AllTransactions(db)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, txs)
	}
}

// ApproveTransactionHandler resolves a pending transaction as approved.
// A second approve on the same id returns 409.
func ApproveTransactionHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req IDRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if err := service.Approve(db, req.ID); err != nil {
			fail(c, err)
			return
		}
		invalidateStats(rdb) // Totals changed
		c.JSON(http.StatusOK, gin.H{"message": "Transaction approved"})
	}
}

// RejectTransactionHandler resolves a pending transaction as rejected,
// refunding a reserved withdrawal
func RejectTransactionHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req IDRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if err := service.Reject(db, req.ID); err != nil {
			fail(c, err)
			return
		}
		invalidateStats(rdb) // Totals changed
		c.JSON(http.StatusOK, gin.H{"message": "Transaction rejected"})
	}
}

// AllInvestmentsHandler lists every investment across all users
func AllInvestmentsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		investments, err := service.AllInvestments(db)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, investments)
	}
}

// StatsHandler returns the dashboard aggregates, cached for 60 seconds
func StatsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		var stats service.DashboardStats
		// Try the cache first
		found, err := utils.GetCache(ctx, rdb, statsCacheKey, &stats)
		if err == nil && found {
			c.JSON(http.StatusOK, stats) // Return cached stats
			return
		}
		fresh, err := service.GetDashboardStats(db)
		if err != nil {
			fail(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, statsCacheKey, fresh, 60*time.Second) // Cache the stats
		c.JSON(http.StatusOK, fresh)                                      // Return the stats
	}
}
