package models

// Role is the closed set of account roles. The historical data carries
// both "team_head" and "admin" for the same tier; both classify as
// TierHead and are treated identically everywhere.
type Role string

const (
	RoleTeamMember Role = "team_member"
	RoleTeamHead   Role = "team_head"
	RoleAdmin      Role = "admin"
	RoleMaster     Role = "master"
)

// Tier collapses the overlapping role strings into the three levels the
// permission checks actually distinguish.
type Tier int

const (
	TierMember Tier = iota
	TierHead
	TierMaster
)

// TierOf classifies a role. Unknown role strings fall back to the member
// tier, the least privileged.
func TierOf(role Role) Tier {
	switch role {
	case RoleTeamHead, RoleAdmin:
		return TierHead
	case RoleMaster:
		return TierMaster
	default:
		return TierMember
	}
}

// IsHeadOrAdmin reports whether the role is in the head tier.
func IsHeadOrAdmin(role Role) bool {
	return TierOf(role) == TierHead
}

// IsMaster reports whether the role is the oversight tier. A master is
// never simultaneously evaluated as head or member for team operations.
func IsMaster(role Role) bool {
	return TierOf(role) == TierMaster
}

// CanCreateTask restricts task creation to the head tier.
func CanCreateTask(role Role) bool {
	return IsHeadOrAdmin(role)
}

// CanManageTeamMembers restricts member add/remove to the head tier.
func CanManageTeamMembers(role Role) bool {
	return IsHeadOrAdmin(role)
}

// CanMutateTask reports whether the user may update the task. The
// assignee branch intentionally grants mutation of any field, not just
// status; kanban drag-and-drop relies on it.
func CanMutateTask(user *User, task *Task) bool {
	if user == nil || task == nil {
		return false
	}
	if user.ID == task.CreatorID {
		return true
	}
	if IsHeadOrAdmin(user.Role) {
		return true
	}
	return task.AssignedToID != nil && *task.AssignedToID == user.ID
}

// CanDeleteTask reports whether the user may delete the task. Being the
// assignee alone is not enough.
func CanDeleteTask(user *User, task *Task) bool {
	if user == nil || task == nil {
		return false
	}
	return user.ID == task.CreatorID || IsHeadOrAdmin(user.Role)
}
