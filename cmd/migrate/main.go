package main

import (
	"metronest/internal/config" // Custom import path (Config)
	"metronest/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	db.Migrate(cfg.DSN()) // Run schema migration against MySQL
}
