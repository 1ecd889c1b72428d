package api

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"github.com/favouritesss/1000-Pips-Climber-System/internal/domain" // Importing domain models
	"github.com/favouritesss/1000-Pips-Climber-System/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// Request struct for registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`       // Username must be provided
	Email    string `json:"email" binding:"required,email"`    // Valid email must be provided
	Password string `json:"password" binding:"required,min=8"` // Password of at least 8 characters
	Name     string `json:"name"`                              // Optional full name
	Phone    string `json:"phone"`                             // Optional phone
	Country  string `json:"country"`                           // Optional country
}

// Request struct for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// RegisterHandler creates a new user account with a zero balance
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Reject duplicate username or email up front
		var existing domain.User
		if err := db.Where("username = ? OR email = ?", req.Username, strings.ToLower(req.Email)).
			First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		}
		// Hash the password and create the user
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			// If hashing fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		// Create user with lowercase email to ensure uniqueness
		user := domain.User{
			Username: req.Username,
			Email:    strings.ToLower(req.Email),
			Password: string(hash),
			Fullname: req.Name,
			Phone:    req.Phone,
			Country:  req.Country,
			Role:     domain.RoleUser,
			Status:   domain.StatusActive,
		}
		// Attempt to create the user in the database
		if err := db.Create(&user).Error; err != nil {
			// Unique index may still fire on a racing duplicate
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		}
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
	}
}

// LoginHandler authenticates a user and returns a JWT token. The token is
// also set as an httpOnly cookie for browser clients.
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var user domain.User // Fetch user from database
		if err := db.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error; err != nil {
			// If user not found, return bad request with a generic message
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
			return
		}
		// Deactivated accounts cannot log in
		if user.Status != domain.StatusActive {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is inactive"})
			return
		}
		// Generate JWT token carrying id and role
		token, err := utils.GenerateJWT(user.ID, user.Role, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Set the token as an httpOnly cookie (24h, matching the token expiry)
		c.SetCookie("token", token, 24*60*60, "/", "", false, true)
		// Return the token and the user (password is never serialized)
		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}

// LogoutHandler clears the token cookie
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie("token", "", -1, "/", "", false, true) // Expire the cookie
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

// ProfileHandler returns the authenticated user's own record
func ProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var user domain.User // Fetch user from database
		if err := db.First(&user, userID).Error; err != nil {
			// If user not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user) // Password field is json:"-"
	}
}
