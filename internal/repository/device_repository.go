package repository

import (
	"devicehub-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DeviceRepository interface {
	GetAllByUser(userID uint, tagIDs, sensorIDs []uint) ([]model.Device, error)
	FindByIDAndUser(id, userID uint) (*model.Device, error)
	CreateWithAttrs(device *model.Device, tagNames, sensorNames []string) error
	SaveWithAttrs(device *model.Device, tagNames, sensorNames []string) error
	Save(device *model.Device) error
	Delete(device *model.Device) error
	ReplaceTags(device *model.Device, tags []model.Tag) error
	ReplaceSensors(device *model.Device, sensors []model.Sensor) error
}

type deviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) DeviceRepository {
	return &deviceRepository{db}
}

// GetAllByUser returns the user's devices newest-first. Non-empty tagIDs or
// sensorIDs restrict the result to devices attached to any of those IDs; the
// joins can yield one row per match, hence the DISTINCT.
func (r *deviceRepository) GetAllByUser(userID uint, tagIDs, sensorIDs []uint) ([]model.Device, error) {
	var devices []model.Device
	query := r.db.Preload("Tags").Preload("Sensors")

	if len(tagIDs) > 0 {
		query = query.
			Joins("JOIN device_tags ON device_tags.device_id = devices.id").
			Where("device_tags.tag_id IN ?", tagIDs)
	}
	if len(sensorIDs) > 0 {
		query = query.
			Joins("JOIN device_sensors ON device_sensors.device_id = devices.id").
			Where("device_sensors.sensor_id IN ?", sensorIDs)
	}

	err := query.Where("devices.user_id = ?", userID).
		Distinct("devices.*").
		Order("devices.id DESC").
		Find(&devices).Error
	return devices, err
}

// FindByIDAndUser scopes the lookup to the owner, so rows belonging to other
// users come back as record-not-found rather than forbidden.
func (r *deviceRepository) FindByIDAndUser(id, userID uint) (*model.Device, error) {
	var device model.Device
	err := r.db.Preload("Tags").Preload("Sensors").
		Where("id = ? AND user_id = ?", id, userID).
		First(&device).Error
	if err != nil {
		return nil, err
	}
	return &device, nil
}

// CreateWithAttrs stores the device and resolves its tag and sensor names in
// a single transaction, so a failed association write also rolls back the
// device row. Names resolve per-user through get-or-create.
func (r *deviceRepository) CreateWithAttrs(device *model.Device, tagNames, sensorNames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(device).Error; err != nil {
			return err
		}
		return reconcileAttrs(tx, device, tagNames, sensorNames)
	})
}

// SaveWithAttrs persists the device's fields and reconciles both relation
// sets in a single transaction. A nil name slice leaves that relation
// untouched; an empty one clears it.
func (r *deviceRepository) SaveWithAttrs(device *model.Device, tagNames, sensorNames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(device).Error; err != nil {
			return err
		}
		return reconcileAttrs(tx, device, tagNames, sensorNames)
	})
}

func (r *deviceRepository) Save(device *model.Device) error {
	return r.db.Omit(clause.Associations).Save(device).Error
}

// Delete hard-deletes the device after detaching its tag and sensor
// associations, all in one transaction. The attribute rows themselves are
// kept.
func (r *deviceRepository) Delete(device *model.Device) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(device).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Model(device).Association("Sensors").Clear(); err != nil {
			return err
		}
		return tx.Unscoped().Delete(device).Error
	})
}

// ReplaceTags swaps the device's tag set for the given one; an empty slice
// clears every association.
func (r *deviceRepository) ReplaceTags(device *model.Device, tags []model.Tag) error {
	assoc := r.db.Model(device).Association("Tags")
	if len(tags) == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(tags)
}

// ReplaceSensors swaps the device's sensor set for the given one; an empty
// slice clears every association.
func (r *deviceRepository) ReplaceSensors(device *model.Device, sensors []model.Sensor) error {
	assoc := r.db.Model(device).Association("Sensors")
	if len(sensors) == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(sensors)
}

// reconcileAttrs resolves attribute names through the owner-scoped
// get-or-create and swaps the device's relation sets on the given
// transaction. Nil slices are left untouched.
func reconcileAttrs(tx *gorm.DB, device *model.Device, tagNames, sensorNames []string) error {
	txRepo := &deviceRepository{tx}
	if tagNames != nil {
		tagRepo := NewTagRepository(tx)
		tags := make([]model.Tag, 0, len(tagNames))
		for _, name := range tagNames {
			tag, err := tagRepo.GetOrCreate(device.UserID, name)
			if err != nil {
				return err
			}
			tags = append(tags, *tag)
		}
		if err := txRepo.ReplaceTags(device, tags); err != nil {
			return err
		}
	}
	if sensorNames != nil {
		sensorRepo := NewSensorRepository(tx)
		sensors := make([]model.Sensor, 0, len(sensorNames))
		for _, name := range sensorNames {
			sensor, err := sensorRepo.GetOrCreate(device.UserID, name)
			if err != nil {
				return err
			}
			sensors = append(sensors, *sensor)
		}
		if err := txRepo.ReplaceSensors(device, sensors); err != nil {
			return err
		}
	}
	return nil
}
