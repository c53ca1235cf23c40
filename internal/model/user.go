package model

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var ErrEmailRequired = errors.New("email is required")

type User struct {
	gorm.Model
	Email       string `json:"email" gorm:"uniqueIndex;not null"`
	Password    string `json:"-"` // bcrypt hash
	Name        string `json:"name"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	IsStaff     bool   `json:"is_staff" gorm:"default:false"`
	IsSuperuser bool   `json:"is_superuser" gorm:"default:false"`
}

// NormalizeEmail lowercases only the domain part of an address, so
// "Test2@Example.COM" becomes "Test2@example.com". The local part is
// case-sensitive per RFC 5321 and is left untouched.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}
