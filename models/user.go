package models

import (
	"gorm.io/gorm"
)

// User represents an account in the system. A user doubles as a team:
// the managed member list (TeamMember rows keyed by owner_id) is the
// team, and the team's identity is the owning user's id.
type User struct {
	gorm.Model

	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         Role   `gorm:"type:varchar(20);default:'team_member';not null" json:"role"`

	// Account status
	IsActive bool `gorm:"default:true" json:"is_active"`

	// Relations
	Memberships []TeamMember    `gorm:"foreignKey:OwnerID" json:"-"`
	Tasks       []Task          `gorm:"foreignKey:CreatorID" json:"-"`
	Documents   []Document      `gorm:"foreignKey:UserID" json:"-"`
	Passwords   []PasswordEntry `gorm:"foreignKey:UserID" json:"-"`
}

// TeamMember is one edge of a head's managed list: owner manages member.
// A user owns at most one list but may appear as a member of any number
// of other owners' lists.
type TeamMember struct {
	gorm.Model
	OwnerID  uint `gorm:"not null;index;uniqueIndex:idx_owner_member" json:"owner_id"`
	MemberID uint `gorm:"not null;index;uniqueIndex:idx_owner_member" json:"member_id"`

	// Relations
	Owner  User `gorm:"foreignKey:OwnerID" json:"-"`
	Member User `gorm:"foreignKey:MemberID" json:"-"`
}
