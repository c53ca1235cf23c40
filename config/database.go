package config

import (
	"log"

	"devicehub-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	// Format: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local
	dsn := GetEnv("DB_DSN", "root:@tcp(127.0.0.1:3306)/devicehub?charset=utf8mb4&parseTime=True&loc=Local")

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// Auto migration: creates/updates tables from the model structs,
	// including the device_tags and device_sensors join tables.
	if err := db.AutoMigrate(&model.User{}, &model.Tag{}, &model.Sensor{}, &model.Device{}); err != nil {
		log.Fatal("Auto migration failed: ", err)
	}

	DB = db
}
