package main

import (
	"github.com/favouritesss/1000-Pips-Climber-System/internal/config" // Custom import path (Config)
	"github.com/favouritesss/1000-Pips-Climber-System/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main entry point for migration and seeding
func main() {
	cfg := config.LoadConfig() // Load configuration

	conn := db.Migrate(cfg.DSN()) // Run schema migration

	// Seed the plan catalog
	if err := db.SeedPlans(conn); err != nil {
		logrus.Fatalf("plan seeding failed: %v", err)
	}
	// Seed the admin account
	if err := db.SeedAdmin(conn, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logrus.Fatalf("admin seeding failed: %v", err)
	}
}
