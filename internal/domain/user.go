package domain

import "time"

// Role values
const (
	RoleUser  = "user"  // Regular account
	RoleAdmin = "admin" // Admin console access
)

// Account status values
const (
	StatusActive   = "active"   // Can log in and transact
	StatusInactive = "inactive" // Login refused
)

// User Model (balance lives on the user row; only the ledger package mutates it)
type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`               // Primary key
	Username      string    `gorm:"unique;not null" json:"username"`    // Unique username
	Email         string    `gorm:"unique;not null" json:"email"`       // Unique email, used for login
	Password      string    `gorm:"not null" json:"-"`                  // Bcrypt hash, never serialized
	Fullname      string    `json:"fullname"`                           // Display name
	Phone         string    `json:"phone"`                              // Contact phone
	Country       string    `json:"country"`                            // Country of residence
	Balance       float64   `gorm:"not null;default:0" json:"balance"`  // Spendable balance, never negative
	Earnings      float64   `gorm:"not null;default:0" json:"earnings"` // Accumulated earnings
	ReferralBonus float64   `gorm:"not null;default:0" json:"referral_bonus"`
	Role          string    `gorm:"default:user" json:"role"`     // user or admin
	Status        string    `gorm:"default:active" json:"status"` // active or inactive
	CreatedAt     time.Time `json:"created_at"`                   // Registration time
}
