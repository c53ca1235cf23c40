package repository

import (
	"testing"

	"devicehub-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTagGetOrCreateReusesExisting(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepository(db)
	user := createTestUser(t, db, "owner@example.com")

	first, err := repo.GetOrCreate(user.ID, "garage")
	require.NoError(t, err)
	second, err := repo.GetOrCreate(user.ID, "garage")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&model.Tag{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestTagGetOrCreateScopedPerUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepository(db)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	aliceTag, err := repo.GetOrCreate(alice.ID, "shared-name")
	require.NoError(t, err)
	bobTag, err := repo.GetOrCreate(bob.ID, "shared-name")
	require.NoError(t, err)

	assert.NotEqual(t, aliceTag.ID, bobTag.ID)
}

func TestTagGetAllByUserOrdersByNameDesc(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepository(db)
	user := createTestUser(t, db, "owner@example.com")

	_, err := repo.GetOrCreate(user.ID, "alpha")
	require.NoError(t, err)
	_, err = repo.GetOrCreate(user.ID, "zulu")
	require.NoError(t, err)
	_, err = repo.GetOrCreate(user.ID, "mike")
	require.NoError(t, err)

	tags, err := repo.GetAllByUser(user.ID, false)
	require.NoError(t, err)
	require.Len(t, tags, 3)
	assert.Equal(t, "zulu", tags[0].Name)
	assert.Equal(t, "mike", tags[1].Name)
	assert.Equal(t, "alpha", tags[2].Name)
}

func TestTagGetAllByUserExcludesOtherUsers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepository(db)
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")

	_, err := repo.GetOrCreate(owner.ID, "mine")
	require.NoError(t, err)
	_, err = repo.GetOrCreate(other.ID, "theirs")
	require.NoError(t, err)

	tags, err := repo.GetAllByUser(owner.ID, false)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "mine", tags[0].Name)
}

func TestTagGetAllByUserAssignedOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepository(db)
	deviceRepo := NewDeviceRepository(db)
	user := createTestUser(t, db, "owner@example.com")

	assigned, err := repo.GetOrCreate(user.ID, "assigned")
	require.NoError(t, err)
	_, err = repo.GetOrCreate(user.ID, "idle")
	require.NoError(t, err)

	device := createTestDevice(t, deviceRepo, user.ID, "Holder")
	require.NoError(t, deviceRepo.ReplaceTags(device, []model.Tag{*assigned}))

	tags, err := repo.GetAllByUser(user.ID, true)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "assigned", tags[0].Name)
}

func TestTagGetAllByUserAssignedOnlyDeduplicates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepository(db)
	deviceRepo := NewDeviceRepository(db)
	user := createTestUser(t, db, "owner@example.com")

	tag, err := repo.GetOrCreate(user.ID, "everywhere")
	require.NoError(t, err)

	one := createTestDevice(t, deviceRepo, user.ID, "One")
	two := createTestDevice(t, deviceRepo, user.ID, "Two")
	require.NoError(t, deviceRepo.ReplaceTags(one, []model.Tag{*tag}))
	require.NoError(t, deviceRepo.ReplaceTags(two, []model.Tag{*tag}))

	tags, err := repo.GetAllByUser(user.ID, true)
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}

func TestTagDeleteHardDeletesAndDetaches(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepository(db)
	deviceRepo := NewDeviceRepository(db)
	user := createTestUser(t, db, "owner@example.com")

	tag, err := repo.GetOrCreate(user.ID, "doomed")
	require.NoError(t, err)
	device := createTestDevice(t, deviceRepo, user.ID, "Holder")
	require.NoError(t, deviceRepo.ReplaceTags(device, []model.Tag{*tag}))

	require.NoError(t, repo.Delete(tag))

	_, err = repo.FindByIDAndUser(tag.ID, user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	require.NoError(t, db.Unscoped().Model(&model.Tag{}).Where("id = ?", tag.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	got, err := deviceRepo.FindByIDAndUser(device.ID, user.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Tags)
}

func TestTagFindByIDAndUserCrossUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepository(db)
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")

	tag, err := repo.GetOrCreate(owner.ID, "private")
	require.NoError(t, err)

	_, err = repo.FindByIDAndUser(tag.ID, other.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTagUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepository(db)
	user := createTestUser(t, db, "owner@example.com")

	tag, err := repo.GetOrCreate(user.ID, "before")
	require.NoError(t, err)

	tag.Name = "after"
	require.NoError(t, repo.Update(tag))

	stored, err := repo.FindByIDAndUser(tag.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", stored.Name)
}
