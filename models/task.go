package models

import (
	"bytes"
	"encoding/json"

	"gorm.io/gorm"
)

// Task statuses. No transition graph is enforced: any permitted mutation
// may set any status in any order, including Done back to To Do.
const (
	TaskStatusToDo       = "To Do"
	TaskStatusInProgress = "In Progress"
	TaskStatusDone       = "Done"
)

// Task priorities.
const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

// Task is a kanban card. TeamID is the owning head's user id and is nil
// for legacy tasks that predate teams; those stay visible to their
// creator only.
type Task struct {
	gorm.Model

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Status      string `gorm:"default:'To Do'" json:"status"`
	Priority    string `gorm:"default:'medium'" json:"priority"`
	Tag         string `gorm:"default:'General'" json:"tag"`

	CreatorID    uint  `gorm:"not null;index" json:"creator_id"`
	TeamID       *uint `gorm:"index" json:"team_id,omitempty"`
	AssignedToID *uint `gorm:"index" json:"assigned_to_id,omitempty"`

	// Relations
	Creator    User  `gorm:"foreignKey:CreatorID" json:"-"`
	AssignedTo *User `gorm:"foreignKey:AssignedToID" json:"assigned_to,omitempty"`
}

// OptionalID distinguishes an absent field from an explicit null, which a
// plain *uint cannot: null means "unassign", absence means "leave as is".
type OptionalID struct {
	Set   bool
	Value *uint
}

func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// TaskUpdate carries a partial update: nil fields were absent from the
// request and must leave the stored value untouched.
type TaskUpdate struct {
	Title        *string    `json:"title" validate:"omitempty,min=1"`
	Description  *string    `json:"description"`
	Status       *string    `json:"status" validate:"omitempty,oneof='To Do' 'In Progress' 'Done'"`
	Priority     *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	Tag          *string    `json:"tag"`
	AssignedToID OptionalID `json:"assigned_to_id"`
}

// Changes returns the column map for the fields present in the update.
// An empty map means there is nothing to persist.
func (u *TaskUpdate) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if u.Title != nil {
		changes["title"] = *u.Title
	}
	if u.Description != nil {
		changes["description"] = *u.Description
	}
	if u.Status != nil {
		changes["status"] = *u.Status
	}
	if u.Priority != nil {
		changes["priority"] = *u.Priority
	}
	if u.Tag != nil {
		changes["tag"] = *u.Tag
	}
	if u.AssignedToID.Set {
		// A nil value persists as NULL, clearing the assignee
		changes["assigned_to_id"] = u.AssignedToID.Value
	}
	return changes
}
