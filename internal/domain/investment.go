package domain

import "time"

// Investment status values
const (
	InvestmentActive    = "active"    // Running contract
	InvestmentCompleted = "completed" // Matured
)

// Investment Model
type Investment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`           // Primary key
	UserID        uint      `gorm:"not null;index" json:"user_id"`  // Owning user
	PlanID        uint      `gorm:"not null;index" json:"plan_id"`  // Plan the contract was opened against
	PlanName      string    `json:"plan_name"`                      // Plan snapshot at purchase time
	ROIPercentage float64   `json:"roi_percentage"`                 // Plan snapshot at purchase time
	Amount        float64   `gorm:"not null" json:"amount"`         // Fixed at creation
	ROIAccrued    float64   `gorm:"not null;default:0" json:"roi_accrued"`
	StartDate     time.Time `json:"start_date"`                     // Contract start
	EndDate       time.Time `json:"end_date"`                       // StartDate + plan duration
	Status        string    `gorm:"default:active;index" json:"status"`
}
