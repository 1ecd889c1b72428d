package domain

import "time"

// Transaction types
const (
	TxDeposit    = "deposit"    // Adds balance when approved
	TxWithdrawal = "withdrawal" // Reserved at request time, refunded on rejection
	TxInvestment = "investment" // Balance moved into an investment contract
	TxBonus      = "bonus"      // Referral or promotional credit
	TxROI        = "roi"        // Matured investment payout
)

// Transaction status lifecycle: pending -> approved | rejected (terminal),
// or completed for transactions that never await approval.
const (
	TxPending   = "pending"
	TxApproved  = "approved"
	TxRejected  = "rejected"
	TxCompleted = "completed"
)

// Transaction Model (append-only except for the single status flip done by the
// approval workflow)
type Transaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`                 // Primary key
	Reference   string    `gorm:"size:36;uniqueIndex" json:"reference"` // Opaque UUID reference
	UserID      uint      `gorm:"not null;index" json:"user_id"`        // Owning user
	Type        string    `gorm:"not null" json:"type"`                 // One of the Tx* type constants
	Amount      float64   `gorm:"not null" json:"amount"`               // Positive; sign is implied by type
	Status      string    `gorm:"default:pending;index" json:"status"`  // Lifecycle status
	Description string    `json:"description"`                          // Free-text summary
	Method      string    `json:"method"`                               // Payment method
	Details     string    `json:"details"`                              // Wallet address or extra info
	CreatedAt   time.Time `json:"created_at"`                           // Request time
}
