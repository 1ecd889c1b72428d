package domain

// Plan Model (seeded by cmd/migrate, immutable at runtime)
type Plan struct {
	ID            uint    `gorm:"primaryKey" json:"id"`     // Primary key
	Name          string  `gorm:"not null" json:"name"`     // Plan name (Starter, Silver, ...)
	MinDeposit    float64 `json:"min_deposit"`              // Smallest accepted investment
	MaxDeposit    float64 `json:"max_deposit"`              // Largest accepted investment
	ROIPercentage float64 `json:"roi_percentage"`           // Return over the full duration
	DurationDays  int     `json:"duration_days"`            // Contract length in days
}
