package models

import (
	"gorm.io/gorm"
)

// ActivityFeedLimit caps every activity read to the newest entries.
const ActivityFeedLimit = 20

// Activity is an append-only log entry on a team's feed, keyed by the
// owning head's user id. Entries are never updated.
type Activity struct {
	gorm.Model

	TeamOwnerID uint   `gorm:"not null;index" json:"team_owner_id"`
	Text        string `gorm:"not null" json:"text"`

	// Relations
	TeamOwner User `gorm:"foreignKey:TeamOwnerID" json:"-"`
}
