package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/pkg/week"
	"gorm.io/gorm"
)

const seededDays = 10

var sampleUserIDs = []int64{100001, 100002, 100003}

var sampleActivities = []string{"Бег", "Штанга", "Йога", "Плавание", "Велосипед"}

// Run seeds the database with sample records for a few users. Safe to call
// multiple times; each run clears the previous seed rows first.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.SleepRecord{}, &domain.CalorieRecord{}, &domain.WorkoutRecord{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	for _, userID := range sampleUserIDs {
		if err := db.Where("user_id = ?", userID).Delete(&domain.SleepRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear sleep records for %d: %w", userID, err)
		}
		if err := db.Where("user_id = ?", userID).Delete(&domain.CalorieRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear calorie records for %d: %w", userID, err)
		}
		if err := db.Where("user_id = ?", userID).Delete(&domain.WorkoutRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear workout records for %d: %w", userID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, userID := range sampleUserIDs {
		if err := seedRecordsForUser(db, userID, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedRecordsForUser(db *gorm.DB, userID int64, rng *rand.Rand) error {
	now := time.Now()
	for i := 0; i < seededDays; i++ {
		date := now.AddDate(0, 0, -i).Format(week.DateLayout)

		sleep := domain.SleepRecord{
			UserID: userID,
			Date:   date,
			Hours:  6 + rng.Float64()*3,
		}
		if err := db.Create(&sleep).Error; err != nil {
			return fmt.Errorf("failed to create sleep record: %w", err)
		}

		calories := domain.CalorieRecord{
			UserID: userID,
			Date:   date,
			Amount: 1600 + rng.Intn(900),
		}
		if err := db.Create(&calories).Error; err != nil {
			return fmt.Errorf("failed to create calorie record: %w", err)
		}

		// Workouts on roughly every other day, occasionally two in one day
		if rng.Float32() < 0.5 {
			continue
		}
		sessions := 1
		if rng.Float32() < 0.2 {
			sessions = 2
		}
		for s := 0; s < sessions; s++ {
			workout := domain.WorkoutRecord{
				UserID:        userID,
				Date:          date,
				DurationHours: 0.5 + rng.Float64()*1.5,
				ActivityType:  sampleActivities[rng.Intn(len(sampleActivities))],
			}
			if err := db.Create(&workout).Error; err != nil {
				return fmt.Errorf("failed to create workout record: %w", err)
			}
		}
	}
	return nil
}
