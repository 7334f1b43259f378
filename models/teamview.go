package models

import (
	"fmt"
	"time"
)

// Teams are not stored. A team is derived per request from two lookups:
// the requester's own managed list, and every other user whose managed
// list contains the requester. Everything in this file is pure so the
// derivation can be tested without storage.

// MemberView is the subset of a user exposed on a roster.
type MemberView struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// TeamView describes one head's roster from the requester's perspective.
type TeamView struct {
	TeamID      uint         `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Members     []MemberView `json:"members"`
	IsOwner     bool         `json:"is_owner"`
}

// TeamRoster pairs a head with the users on their managed list, as
// loaded from storage.
type TeamRoster struct {
	Head    User
	Members []User
}

func displayName(u *User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// memberViews maps roster users to views, dropping dangling references
// (rows whose user no longer resolves load as zero values).
func memberViews(members []User) []MemberView {
	views := make([]MemberView, 0, len(members))
	for _, m := range members {
		if m.ID == 0 {
			continue
		}
		views = append(views, MemberView{
			ID:    m.ID,
			Name:  m.Name,
			Email: m.Email,
			Role:  m.Role,
		})
	}
	return views
}

// BuildTeamViews derives the team list for a requester: the owned view
// first (emitted when the requester is head-tier or already manages at
// least one member), then participating views in the order given. The
// caller supplies participating rosters in a stable store order. An
// empty result is legitimate; placeholder views are a UI concern.
func BuildTeamViews(self TeamRoster, participating []TeamRoster) []TeamView {
	views := make([]TeamView, 0, len(participating)+1)

	if IsHeadOrAdmin(self.Head.Role) || len(self.Members) > 0 {
		views = append(views, TeamView{
			TeamID:      self.Head.ID,
			Name:        "My Team",
			Description: "Team managed by you",
			Members:     memberViews(self.Members),
			IsOwner:     true,
		})
	}

	for _, roster := range participating {
		head := roster.Head
		views = append(views, TeamView{
			TeamID:      head.ID,
			Name:        fmt.Sprintf("%s's Team", displayName(&head)),
			Description: fmt.Sprintf("Managed by %s", displayName(&head)),
			Members:     memberViews(roster.Members),
			IsOwner:     false,
		})
	}

	return views
}

// VisibleTeamIDs is the id set that scopes task visibility: the
// requester's own team id plus every head whose list the requester is
// on. The requester's id is never duplicated.
func VisibleTeamIDs(requesterID uint, participatingHeadIDs []uint) []uint {
	ids := make([]uint, 0, len(participatingHeadIDs)+1)
	ids = append(ids, requesterID)
	for _, headID := range participatingHeadIDs {
		if headID == requesterID {
			continue
		}
		ids = append(ids, headID)
	}
	return ids
}

// AdminSummary is one row of the master dashboard.
type AdminSummary struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	MemberCount   int64     `json:"member_count"`
	ActivityCount int64     `json:"activity_count"`
	JoinedAt      time.Time `json:"joined_at"`
}
