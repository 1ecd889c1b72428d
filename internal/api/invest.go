package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Time durations

	"github.com/favouritesss/1000-Pips-Climber-System/internal/domain"  // Importing domain models
	"github.com/favouritesss/1000-Pips-Climber-System/internal/service" // Business operations
	"github.com/favouritesss/1000-Pips-Climber-System/internal/utils"   // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// plansCacheKey caches the plan catalog; plans are immutable at runtime so a
// short TTL is purely a safety valve.
const plansCacheKey = "plans:all"

// PlansHandler returns the investment plan catalog
func PlansHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		var plans []domain.Plan
		// Try the cache first
		found, err := utils.GetCache(ctx, rdb, plansCacheKey, &plans)
		if err == nil && found {
			c.JSON(http.StatusOK, plans) // Return cached catalog
			return
		}
		// Fall through to the database
		plans, err = service.ListPlans(db)
		if err != nil {
			fail(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, plansCacheKey, plans, 5*time.Minute) // Cache the catalog
		c.JSON(http.StatusOK, plans)                                     // Return the catalog
	}
}

// Request struct for opening an investment
type InvestRequest struct {
	PlanID uint    `json:"plan_id" binding:"required"`     // Target plan
	Amount float64 `json:"amount" binding:"required,gt=0"` // Investment amount
}

// InvestHandler opens an investment contract funded from the user's balance
func InvestHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req InvestRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Debit, investment row and transaction row commit as one unit
		inv, err := service.Invest(db, userID.(uint), req.PlanID, req.Amount)
		if err != nil {
			fail(c, err)
			return
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Investment successful", "investment": inv})
	}
}

// InvestmentsHandler lists the authenticated user's own investments
func InvestmentsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		investments, err := service.UserInvestments(db, userID.(uint))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, investments) // Return own investments only
	}
}

// TransactionsHandler lists the authenticated user's own transactions
func TransactionsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		txs, err := service.UserTransactions(db, userID.(uint))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, txs) // Return own transactions only
	}
}

// Request struct for a deposit
type DepositRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"` // Deposit amount
	Method string  `json:"method" binding:"required"`      // Payment method
}

// DepositHandler records a pending deposit; the balance moves on approval
func DepositHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req DepositRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		tx, err := service.RequestDeposit(db, userID.(uint), req.Amount, req.Method)
		if err != nil {
			fail(c, err)
			return
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Deposit request submitted. Please complete payment.", "transaction": tx})
	}
}

// Request struct for a withdrawal
type WithdrawRequest struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`    // Withdrawal amount
	WalletAddress string  `json:"wallet_address" binding:"required"` // Destination wallet
	Method        string  `json:"method" binding:"required"`         // Payout method
}

// WithdrawHandler reserves the funds immediately and records a pending
// withdrawal; the reservation is refunded only if an admin rejects it
func WithdrawHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req WithdrawRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		tx, err := service.RequestWithdrawal(db, userID.(uint), req.Amount, req.WalletAddress, req.Method)
		if err != nil {
			fail(c, err)
			return
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Withdrawal request submitted.", "transaction": tx})
	}
}
