package db

import (
	"errors"

	"github.com/favouritesss/1000-Pips-Climber-System/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Migrate performs automatic migration for the database schema
func Migrate(dsn string) *gorm.DB {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{}) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	err = db.AutoMigrate(&domain.User{}, &domain.Plan{}, &domain.Investment{}, &domain.Transaction{})
	if err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	logrus.Info("Migration completed.") // Log successful migration
	return db
}

// SeedPlans inserts the four standard plans when the catalog is empty.
// Plans are immutable at runtime, so this is the only write path.
func SeedPlans(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Plan{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // Catalog already seeded
	}
	plans := []domain.Plan{
		{Name: "Starter", MinDeposit: 100, MaxDeposit: 1000, ROIPercentage: 10, DurationDays: 7},
		{Name: "Silver", MinDeposit: 1001, MaxDeposit: 5000, ROIPercentage: 20, DurationDays: 14},
		{Name: "Gold", MinDeposit: 5001, MaxDeposit: 20000, ROIPercentage: 35, DurationDays: 30},
		{Name: "Diamond", MinDeposit: 20001, MaxDeposit: 100000, ROIPercentage: 50, DurationDays: 60},
	}
	if err := db.Create(&plans).Error; err != nil {
		return err
	}
	logrus.Infof("Seeded %d investment plans", len(plans))
	return nil
}

// SeedAdmin creates the admin account if no admin exists yet
func SeedAdmin(db *gorm.DB, email, password string) error {
	var admin domain.User
	err := db.Where("role = ?", domain.RoleAdmin).First(&admin).Error
	if err == nil {
		return nil // Admin already present
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin = domain.User{
		Username: "admin",
		Email:    email,
		Password: string(hash),
		Fullname: "Administrator",
		Role:     domain.RoleAdmin,
		Status:   domain.StatusActive,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logrus.Infof("Seeded admin account %s", email)
	return nil
}
