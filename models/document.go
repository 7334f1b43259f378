package models

import (
	"gorm.io/gorm"
)

// Document holds file metadata only; no bytes are stored. URL points at
// a placeholder until real storage is attached.
type Document struct {
	gorm.Model

	UserID uint   `gorm:"not null;index" json:"user_id"`
	Name   string `gorm:"not null" json:"name"`
	Type   string `gorm:"not null" json:"type"`           // pdf, doc, image, ...
	Size   string `gorm:"not null" json:"size"`           // display label, e.g. "2.4 MB"
	URL    string `gorm:"not null" json:"url"`
	Folder string `gorm:"default:'General'" json:"folder"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
