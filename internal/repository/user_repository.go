package repository

import (
	"devicehub-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(email, name, password string) (*model.User, error)
	CreateSuperuser(email, password string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindByID(id uint) (*model.User, error)
	Update(user *model.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

// CreateUser stores a new user with a bcrypt-hashed password and the email
// domain normalized to lowercase. An empty email is rejected.
func (r *userRepository) CreateUser(email, name, password string) (*model.User, error) {
	email = model.NormalizeEmail(email)
	if email == "" {
		return nil, model.ErrEmailRequired
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Email:    email,
		Name:     name,
		Password: string(hashed),
		IsActive: true,
	}
	if err := r.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateSuperuser creates a user with the staff and superuser flags forced on.
func (r *userRepository) CreateSuperuser(email, password string) (*model.User, error) {
	user, err := r.CreateUser(email, "", password)
	if err != nil {
		return nil, err
	}

	user.IsStaff = true
	user.IsSuperuser = true
	if err := r.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}
