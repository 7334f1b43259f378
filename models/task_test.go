package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestTaskUpdate_Changes_Empty(t *testing.T) {
	var upd TaskUpdate
	assert.Empty(t, upd.Changes())
}

func TestTaskUpdate_Changes_OnlyPresentFields(t *testing.T) {
	upd := TaskUpdate{
		Status: strPtr(TaskStatusDone),
		Tag:    strPtr("Design"),
	}

	changes := upd.Changes()
	assert.Equal(t, map[string]interface{}{
		"status": TaskStatusDone,
		"tag":    "Design",
	}, changes)
}

func TestTaskUpdate_Changes_AllFields(t *testing.T) {
	assignee := uint(4)
	upd := TaskUpdate{
		Title:        strPtr("New title"),
		Description:  strPtr(""),
		Status:       strPtr(TaskStatusToDo),
		Priority:     strPtr(TaskPriorityHigh),
		Tag:          strPtr("General"),
		AssignedToID: OptionalID{Set: true, Value: &assignee},
	}

	changes := upd.Changes()
	assert.Len(t, changes, 6)
	// An explicit empty string clears the field; absence leaves it alone
	assert.Equal(t, "", changes["description"])
	assert.Equal(t, &assignee, changes["assigned_to_id"])
}

func TestTaskUpdate_AssigneeAbsentNullValue(t *testing.T) {
	tests := []struct {
		name string
		body string
		want func(t *testing.T, changes map[string]interface{})
	}{
		{
			name: "absent leaves assignee untouched",
			body: `{"status":"Done"}`,
			want: func(t *testing.T, changes map[string]interface{}) {
				_, present := changes["assigned_to_id"]
				assert.False(t, present)
			},
		},
		{
			name: "explicit null unassigns",
			body: `{"assigned_to_id":null}`,
			want: func(t *testing.T, changes map[string]interface{}) {
				val, present := changes["assigned_to_id"]
				require.True(t, present)
				assert.Equal(t, (*uint)(nil), val)
			},
		},
		{
			name: "id reassigns",
			body: `{"assigned_to_id":7}`,
			want: func(t *testing.T, changes map[string]interface{}) {
				val, present := changes["assigned_to_id"]
				require.True(t, present)
				require.IsType(t, (*uint)(nil), val)
				assert.Equal(t, uint(7), *val.(*uint))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var upd TaskUpdate
			require.NoError(t, json.Unmarshal([]byte(tt.body), &upd))
			tt.want(t, upd.Changes())
		})
	}
}

func TestTaskUpdate_Changes_StatusBackwards(t *testing.T) {
	// Done back to To Do is legal; kanban drag-and-drop relies on it
	upd := TaskUpdate{Status: strPtr(TaskStatusToDo)}
	assert.Equal(t, TaskStatusToDo, upd.Changes()["status"])
}
