package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedUser(id uint, name, email string, role Role) User {
	u := User{Name: name, Email: email, Role: role}
	u.ID = id
	return u
}

func TestBuildTeamViews_PlainMemberNoTeams(t *testing.T) {
	self := TeamRoster{Head: namedUser(5, "Solo", "solo@aurora.com", RoleTeamMember)}
	views := BuildTeamViews(self, nil)
	assert.Empty(t, views)
}

func TestBuildTeamViews_HeadWithoutMembersStillOwnsView(t *testing.T) {
	self := TeamRoster{Head: namedUser(1, "Head", "head@aurora.com", RoleTeamHead)}
	views := BuildTeamViews(self, nil)

	require.Len(t, views, 1)
	assert.True(t, views[0].IsOwner)
	assert.Equal(t, uint(1), views[0].TeamID)
	assert.Empty(t, views[0].Members)
}

func TestBuildTeamViews_MemberWithManagedListOwnsView(t *testing.T) {
	// A plain member who somehow manages people still gets the owned view
	self := TeamRoster{
		Head:    namedUser(1, "Lead", "lead@aurora.com", RoleTeamMember),
		Members: []User{namedUser(2, "Bob", "bob@aurora.com", RoleTeamMember)},
	}
	views := BuildTeamViews(self, nil)

	require.Len(t, views, 1)
	assert.True(t, views[0].IsOwner)
	require.Len(t, views[0].Members, 1)
	assert.Equal(t, uint(2), views[0].Members[0].ID)
}

func TestBuildTeamViews_DanglingMembersFiltered(t *testing.T) {
	self := TeamRoster{
		Head: namedUser(1, "Head", "head@aurora.com", RoleAdmin),
		Members: []User{
			namedUser(2, "Bob", "bob@aurora.com", RoleTeamMember),
			{}, // deleted user loaded as zero value
			namedUser(3, "Eve", "eve@aurora.com", RoleTeamMember),
		},
	}
	views := BuildTeamViews(self, nil)

	require.Len(t, views, 1)
	require.Len(t, views[0].Members, 2)
	assert.Equal(t, uint(2), views[0].Members[0].ID)
	assert.Equal(t, uint(3), views[0].Members[1].ID)
}

func TestBuildTeamViews_OwnedFirstThenParticipating(t *testing.T) {
	self := TeamRoster{
		Head:    namedUser(1, "Head", "head@aurora.com", RoleTeamHead),
		Members: []User{namedUser(4, "Dana", "dana@aurora.com", RoleTeamMember)},
	}
	participating := []TeamRoster{
		{Head: namedUser(2, "Alice", "alice@aurora.com", RoleTeamHead),
			Members: []User{namedUser(1, "Head", "head@aurora.com", RoleTeamHead)}},
		{Head: namedUser(3, "", "carol@aurora.com", RoleAdmin)},
	}

	views := BuildTeamViews(self, participating)

	require.Len(t, views, 3)
	assert.True(t, views[0].IsOwner)
	assert.Equal(t, uint(1), views[0].TeamID)
	assert.False(t, views[1].IsOwner)
	assert.Equal(t, uint(2), views[1].TeamID)
	assert.Equal(t, "Alice's Team", views[1].Name)
	// Name falls back to email when the head has none
	assert.Equal(t, "carol@aurora.com's Team", views[2].Name)
}

func TestBuildTeamViews_ParticipantOnly(t *testing.T) {
	self := TeamRoster{Head: namedUser(9, "Member", "m@aurora.com", RoleTeamMember)}
	participating := []TeamRoster{
		{Head: namedUser(2, "Alice", "alice@aurora.com", RoleTeamHead),
			Members: []User{namedUser(9, "Member", "m@aurora.com", RoleTeamMember)}},
	}

	views := BuildTeamViews(self, participating)

	require.Len(t, views, 1)
	assert.False(t, views[0].IsOwner)
	assert.Equal(t, uint(2), views[0].TeamID)
}

func TestVisibleTeamIDs(t *testing.T) {
	assert.Equal(t, []uint{7}, VisibleTeamIDs(7, nil))
	assert.Equal(t, []uint{7, 2, 3}, VisibleTeamIDs(7, []uint{2, 3}))
	// The requester's own id is never duplicated
	assert.Equal(t, []uint{7, 2}, VisibleTeamIDs(7, []uint{2, 7}))
}
