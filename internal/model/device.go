package model

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Device struct {
	gorm.Model
	UserID      uint     `json:"user_id" gorm:"not null;index"`
	Title       string   `json:"title" gorm:"not null"`
	TimeMinutes int      `json:"time_minutes"`
	Value       float64  `json:"value" gorm:"type:decimal(5,2)"`
	Link        string   `json:"link"`
	Description string   `json:"description"`
	Image       string   `json:"image"` // stored path under the upload dir, empty when none
	Tags        []Tag    `json:"tags" gorm:"many2many:device_tags;"`
	Sensors     []Sensor `json:"sensors" gorm:"many2many:device_sensors;"`
}

type Tag struct {
	gorm.Model
	UserID  uint     `json:"-" gorm:"not null;index"`
	Name    string   `json:"name" gorm:"not null"`
	Devices []Device `json:"-" gorm:"many2many:device_tags;"`
}

type Sensor struct {
	gorm.Model
	UserID  uint     `json:"-" gorm:"not null;index"`
	Name    string   `json:"name" gorm:"not null"`
	Devices []Device `json:"-" gorm:"many2many:device_sensors;"`
}

// DeviceImageFilePath generates the storage path for an uploaded device
// image. Only the extension of the original filename is kept, lowercased;
// the name itself is replaced with a fresh UUID, e.g.
// "uploads/device/9f1c0f0a-....jpg".
func DeviceImageFilePath(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("uploads/device/%s%s", uuid.New().String(), ext)
}
