package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierOf(t *testing.T) {
	tests := []struct {
		role Role
		want Tier
	}{
		{RoleTeamMember, TierMember},
		{RoleTeamHead, TierHead},
		{RoleAdmin, TierHead},
		{RoleMaster, TierMaster},
		{Role(""), TierMember},
		{Role("intern"), TierMember},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TierOf(tt.role), "role %q", tt.role)
	}
}

func TestHeadPredicates(t *testing.T) {
	assert.True(t, IsHeadOrAdmin(RoleTeamHead))
	assert.True(t, IsHeadOrAdmin(RoleAdmin))
	assert.False(t, IsHeadOrAdmin(RoleTeamMember))
	assert.False(t, IsHeadOrAdmin(RoleMaster))

	assert.True(t, IsMaster(RoleMaster))
	assert.False(t, IsMaster(RoleAdmin))
	assert.False(t, IsMaster(RoleTeamHead))
	assert.False(t, IsMaster(RoleTeamMember))
}

func TestCanCreateTask(t *testing.T) {
	assert.True(t, CanCreateTask(RoleTeamHead))
	assert.True(t, CanCreateTask(RoleAdmin))
	assert.False(t, CanCreateTask(RoleTeamMember))
	assert.False(t, CanCreateTask(RoleMaster))
}

func userWith(id uint, role Role) *User {
	u := &User{Role: role}
	u.ID = id
	return u
}

func taskWith(creatorID uint, assigneeID *uint) *Task {
	return &Task{CreatorID: creatorID, AssignedToID: assigneeID}
}

func TestCanMutateTask_Creator(t *testing.T) {
	// The creator may mutate regardless of role
	for _, role := range []Role{RoleTeamMember, RoleTeamHead, RoleAdmin, RoleMaster} {
		user := userWith(7, role)
		assert.True(t, CanMutateTask(user, taskWith(7, nil)), "role %q", role)
	}
}

func TestCanMutateTask_Head(t *testing.T) {
	task := taskWith(1, nil)
	assert.True(t, CanMutateTask(userWith(2, RoleTeamHead), task))
	assert.True(t, CanMutateTask(userWith(2, RoleAdmin), task))
	assert.False(t, CanMutateTask(userWith(2, RoleTeamMember), task))
}

func TestCanMutateTask_Assignee(t *testing.T) {
	assignee := uint(9)
	task := taskWith(1, &assignee)

	// The assigned member may mutate but not delete
	member := userWith(9, RoleTeamMember)
	assert.True(t, CanMutateTask(member, task))
	assert.False(t, CanDeleteTask(member, task))

	// A different member may do neither
	other := userWith(10, RoleTeamMember)
	assert.False(t, CanMutateTask(other, task))
	assert.False(t, CanDeleteTask(other, task))
}

func TestCanDeleteTask(t *testing.T) {
	task := taskWith(3, nil)
	assert.True(t, CanDeleteTask(userWith(3, RoleTeamMember), task))
	assert.True(t, CanDeleteTask(userWith(4, RoleAdmin), task))
	assert.True(t, CanDeleteTask(userWith(4, RoleTeamHead), task))
	assert.False(t, CanDeleteTask(userWith(4, RoleTeamMember), task))
}

func TestCanManageTeamMembers(t *testing.T) {
	assert.True(t, CanManageTeamMembers(RoleTeamHead))
	assert.True(t, CanManageTeamMembers(RoleAdmin))
	assert.False(t, CanManageTeamMembers(RoleTeamMember))
	assert.False(t, CanManageTeamMembers(RoleMaster))
}

func TestPredicates_NilInputs(t *testing.T) {
	assert.False(t, CanMutateTask(nil, &Task{}))
	assert.False(t, CanMutateTask(&User{}, nil))
	assert.False(t, CanDeleteTask(nil, nil))
}

// The two-member team scenario: head creates, assignee B may update,
// bystander C may not.
func TestTeamScenario(t *testing.T) {
	head := userWith(1, RoleTeamHead)
	b := userWith(2, RoleTeamMember)
	c := userWith(3, RoleTeamMember)

	assigneeID := b.ID
	task := &Task{CreatorID: head.ID, TeamID: &head.ID, AssignedToID: &assigneeID}

	assert.True(t, CanMutateTask(b, task))
	assert.False(t, CanMutateTask(c, task))
	assert.True(t, CanMutateTask(head, task))
	assert.True(t, CanDeleteTask(head, task))
	assert.False(t, CanDeleteTask(b, task))
}
