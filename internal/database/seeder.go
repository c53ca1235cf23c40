package database

import (
	"log"

	"devicehub-backend/config"
	"devicehub-backend/internal/model"
	"devicehub-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAll provisions the superuser plus a demo account with sample data.
// Safe to run repeatedly.
func SeedAll(db *gorm.DB) error {
	if err := seedSuperuser(db); err != nil {
		return err
	}
	if err := seedDemoData(db); err != nil {
		return err
	}
	log.Println("Seeding complete")
	return nil
}

func seedSuperuser(db *gorm.DB) error {
	email := model.NormalizeEmail(config.GetEnv("ADMIN_EMAIL", "admin@example.com"))
	password := config.GetEnv("ADMIN_PASSWORD", "admin123")

	userRepo := repository.NewUserRepository(db)
	admin, err := userRepo.FindByEmail(email)
	if err != nil {
		if _, err := userRepo.CreateSuperuser(email, password); err != nil {
			return err
		}
		log.Printf("Superuser created: %s", email)
		return nil
	}

	// The account already exists, possibly demoted or with a stale password.
	// Re-sync the stored hash and flags with the configured values.
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	updates := map[string]interface{}{
		"password":     string(hashed),
		"is_active":    true,
		"is_staff":     true,
		"is_superuser": true,
	}
	if err := db.Model(admin).Updates(updates).Error; err != nil {
		return err
	}
	log.Printf("Superuser ready: %s", email)
	return nil
}

func seedDemoData(db *gorm.DB) error {
	userRepo := repository.NewUserRepository(db)

	demo, err := userRepo.FindByEmail("demo@example.com")
	if err != nil {
		demo, err = userRepo.CreateUser("demo@example.com", "Demo User", "demo1234")
		if err != nil {
			return err
		}
	}

	tagRepo := repository.NewTagRepository(db)
	tag, err := tagRepo.GetOrCreate(demo.ID, "rooftop")
	if err != nil {
		return err
	}

	sensorRepo := repository.NewSensorRepository(db)
	sensor, err := sensorRepo.GetOrCreate(demo.ID, "temperature")
	if err != nil {
		return err
	}

	device := model.Device{
		UserID:      demo.ID,
		Title:       "Air handling unit",
		TimeMinutes: 15,
		Value:       21.50,
		Description: "Monitors intake air on the north wing",
	}
	if err := db.Where(model.Device{UserID: demo.ID, Title: device.Title}).FirstOrCreate(&device).Error; err != nil {
		return err
	}
	deviceRepo := repository.NewDeviceRepository(db)
	if err := deviceRepo.ReplaceTags(&device, []model.Tag{*tag}); err != nil {
		return err
	}
	if err := deviceRepo.ReplaceSensors(&device, []model.Sensor{*sensor}); err != nil {
		return err
	}

	log.Printf("Demo user ready: %s", demo.Email)
	return nil
}
