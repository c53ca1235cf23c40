package repository

import (
	"devicehub-backend/internal/model"

	"gorm.io/gorm"
)

type TagRepository interface {
	GetAllByUser(userID uint, assignedOnly bool) ([]model.Tag, error)
	FindByIDAndUser(id, userID uint) (*model.Tag, error)
	Update(tag *model.Tag) error
	Delete(tag *model.Tag) error
	GetOrCreate(userID uint, name string) (*model.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db}
}

// GetAllByUser lists the user's tags ordered by name descending. With
// assignedOnly set, the join keeps only tags attached to at least one device;
// a tag on several devices matches several join rows, hence the DISTINCT.
func (r *tagRepository) GetAllByUser(userID uint, assignedOnly bool) ([]model.Tag, error) {
	var tags []model.Tag
	query := r.db.Model(&model.Tag{})
	if assignedOnly {
		query = query.Joins("JOIN device_tags ON device_tags.tag_id = tags.id")
	}

	err := query.Where("tags.user_id = ?", userID).
		Distinct("tags.*").
		Order("tags.name DESC").
		Find(&tags).Error
	return tags, err
}

func (r *tagRepository) FindByIDAndUser(id, userID uint) (*model.Tag, error) {
	var tag model.Tag
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) Update(tag *model.Tag) error {
	return r.db.Save(tag).Error
}

// Delete hard-deletes the tag together with its device associations in one
// transaction.
func (r *tagRepository) Delete(tag *model.Tag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(tag).Association("Devices").Clear(); err != nil {
			return err
		}
		return tx.Unscoped().Delete(tag).Error
	})
}

// GetOrCreate returns the user's tag with the given name, creating it on
// first use so repeated names are reused instead of duplicated.
func (r *tagRepository) GetOrCreate(userID uint, name string) (*model.Tag, error) {
	var tag model.Tag
	err := r.db.Where(model.Tag{UserID: userID, Name: name}).FirstOrCreate(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}
