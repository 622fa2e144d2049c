package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is an account that can authenticate against the API.
type User struct {
	DefaultModel
	Email        string `json:"email" gorm:"uniqueIndex" example:"jane@example.com"` // Email address used to log in
	PasswordHash string `json:"-"`                                                   // bcrypt hash, never serialized
}

// SetPassword hashes the clear text password and stores the hash on the user.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the clear text password matches the stored hash.
func (u User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// AfterCreate sets up the resources every new user needs.
func (u *User) AfterCreate(tx *gorm.DB) error {
	return tx.Create(&Profile{UserID: u.ID}).Error
}
