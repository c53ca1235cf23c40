package repository

import (
	"devicehub-backend/internal/model"

	"gorm.io/gorm"
)

type SensorRepository interface {
	GetAllByUser(userID uint, assignedOnly bool) ([]model.Sensor, error)
	FindByIDAndUser(id, userID uint) (*model.Sensor, error)
	Update(sensor *model.Sensor) error
	Delete(sensor *model.Sensor) error
	GetOrCreate(userID uint, name string) (*model.Sensor, error)
}

type sensorRepository struct {
	db *gorm.DB
}

func NewSensorRepository(db *gorm.DB) SensorRepository {
	return &sensorRepository{db}
}

// GetAllByUser lists the user's sensors ordered by name descending. With
// assignedOnly set, only sensors attached to at least one device survive the
// join, DISTINCT-ed so each sensor appears once.
func (r *sensorRepository) GetAllByUser(userID uint, assignedOnly bool) ([]model.Sensor, error) {
	var sensors []model.Sensor
	query := r.db.Model(&model.Sensor{})
	if assignedOnly {
		query = query.Joins("JOIN device_sensors ON device_sensors.sensor_id = sensors.id")
	}

	err := query.Where("sensors.user_id = ?", userID).
		Distinct("sensors.*").
		Order("sensors.name DESC").
		Find(&sensors).Error
	return sensors, err
}

func (r *sensorRepository) FindByIDAndUser(id, userID uint) (*model.Sensor, error) {
	var sensor model.Sensor
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&sensor).Error
	if err != nil {
		return nil, err
	}
	return &sensor, nil
}

func (r *sensorRepository) Update(sensor *model.Sensor) error {
	return r.db.Save(sensor).Error
}

// Delete hard-deletes the sensor together with its device associations in
// one transaction.
func (r *sensorRepository) Delete(sensor *model.Sensor) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(sensor).Association("Devices").Clear(); err != nil {
			return err
		}
		return tx.Unscoped().Delete(sensor).Error
	})
}

// GetOrCreate returns the user's sensor with the given name, creating it on
// first use so repeated names are reused instead of duplicated.
func (r *sensorRepository) GetOrCreate(userID uint, name string) (*model.Sensor, error) {
	var sensor model.Sensor
	err := r.db.Where(model.Sensor{UserID: userID, Name: name}).FirstOrCreate(&sensor).Error
	if err != nil {
		return nil, err
	}
	return &sensor, nil
}
