package models

import (
	"gorm.io/gorm"
)

// PasswordEntry is a vault item. Fields are stored as given; the vault
// has no cryptographic design of its own.
type PasswordEntry struct {
	gorm.Model

	UserID   uint   `gorm:"not null;index" json:"user_id"`
	Title    string `gorm:"not null" json:"title"`
	Username string `gorm:"not null" json:"username"`
	Password string `gorm:"not null" json:"password"`
	URL      string `json:"url"`
	Category string `gorm:"default:'login'" json:"category"` // login, meeting, website, other
	Notes    string `gorm:"type:text" json:"notes"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
