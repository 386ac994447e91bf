package main

import (
	"fmt"
	"log"

	"github.com/fittrack/fittrack/internal/config"
	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate
	if err := db.AutoMigrate(&domain.SleepRecord{}, &domain.CalorieRecord{}, &domain.WorkoutRecord{}); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("\nSample user IDs for testing:")
	fmt.Println("  100001")
	fmt.Println("  100002")
	fmt.Println("  100003")
}
