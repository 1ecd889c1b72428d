package api

import (
	"net/http" // HTTP status codes

	"github.com/favouritesss/1000-Pips-Climber-System/internal/middleware" // Auth middleware

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// SetupRoutes registers the full HTTP surface on the given engine
func SetupRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, jwtSecret string) {
	// Service banner
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "1000 Pips Climber API v2.0"})
	})

	// Auth routes
	auth := r.Group("/auth")
	auth.POST("/register", RegisterHandler(db))          // Registration endpoint
	auth.POST("/login", LoginHandler(db, jwtSecret))     // Login endpoint
	auth.POST("/logout", LogoutHandler())                // Logout endpoint (clears cookie)
	auth.GET("/profile", middleware.JWTAuthMiddleware(jwtSecret), ProfileHandler(db)) // Own profile

	// Investment routes; the plan catalog is public, everything else needs a token
	invest := r.Group("/invest")
	invest.GET("/plans", PlansHandler(db, rdb)) // Public plan catalog
	authed := invest.Group("")
	authed.Use(middleware.JWTAuthMiddleware(jwtSecret)) // Protect with JWT middleware
	authed.POST("/invest", InvestHandler(db))           // Open an investment
	authed.GET("/investments", InvestmentsHandler(db))  // Own investments
	authed.GET("/transactions", TransactionsHandler(db)) // Own transactions
	authed.POST("/deposit", DepositHandler(db))         // Request a deposit
	authed.POST("/withdraw", WithdrawHandler(db))       // Request a withdrawal

	// Admin routes (protected, admin only)
	admin := r.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(jwtSecret), middleware.AdminOnlyMiddleware(db))
	admin.GET("/users", ListUsersHandler(db))                            // List users
	admin.POST("/users/status", UpdateUserStatusHandler(db))             // Activate/deactivate
	admin.POST("/users/fund", FundUserHandler(db, rdb))                  // Credit a balance
	admin.POST("/users/override-balance", OverrideBalanceHandler(db, rdb)) // Absolute balance override
	admin.POST("/users/override-earnings", OverrideEarningsHandler(db))  // Earnings override
	admin.POST("/users/delete", DeleteUserHandler(db, rdb))              // Delete with cascade
	admin.GET("/transactions/pending", PendingTransactionsHandler(db))   // Review queue
	admin.GET("/transactions/all", AllTransactionsHandler(db))           // Recent transactions
	admin.POST("/transactions/approve", ApproveTransactionHandler(db, rdb)) // Approve pending
	admin.POST("/transactions/reject", RejectTransactionHandler(db, rdb))   // Reject pending
	admin.GET("/investments/all", AllInvestmentsHandler(db))             // All investments
	admin.GET("/stats", StatsHandler(db, rdb))                           // Dashboard stats
}
