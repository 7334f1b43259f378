package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDemoData loads a demo head with a three-person team and a handful
// of kanban cards. Safe to call repeatedly: existing emails are reused.
func SeedDemoData(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	demoUsers := []User{
		{Name: "Admin User", Email: "admin@aurora.com", Role: RoleTeamHead, PasswordHash: string(hash), IsActive: true},
		{Name: "John Doe", Email: "john@aurora.com", Role: RoleTeamMember, PasswordHash: string(hash), IsActive: true},
		{Name: "Jane Smith", Email: "jane@aurora.com", Role: RoleTeamMember, PasswordHash: string(hash), IsActive: true},
		{Name: "Mike Johnson", Email: "mike@aurora.com", Role: RoleTeamMember, PasswordHash: string(hash), IsActive: true},
		{Name: "Master User", Email: "master@aurora.com", Role: RoleMaster, PasswordHash: string(hash), IsActive: true},
	}

	for i := range demoUsers {
		if err := db.Where("email = ?", demoUsers[i].Email).FirstOrCreate(&demoUsers[i]).Error; err != nil {
			return err
		}
	}

	head := demoUsers[0]
	for _, member := range demoUsers[1:4] {
		edge := TeamMember{OwnerID: head.ID, MemberID: member.ID}
		if err := db.Where("owner_id = ? AND member_id = ?", head.ID, member.ID).
			FirstOrCreate(&edge).Error; err != nil {
			return err
		}
	}

	var taskCount int64
	if err := db.Model(&Task{}).Where("creator_id = ?", head.ID).Count(&taskCount).Error; err != nil {
		return err
	}
	if taskCount > 0 {
		return nil
	}

	johnID := demoUsers[1].ID
	demoTasks := []Task{
		{Title: "Design System Update", Description: "Review and update the color palette and typography.", Status: TaskStatusToDo, Priority: TaskPriorityHigh, Tag: "Design", CreatorID: head.ID, TeamID: &head.ID},
		{Title: "API Integration", Description: "Connect frontend with the new task APIs.", Status: TaskStatusInProgress, Priority: TaskPriorityHigh, Tag: "Development", CreatorID: head.ID, TeamID: &head.ID, AssignedToID: &johnID},
		{Title: "Write Documentation", Description: "Document the new authentication flow.", Status: TaskStatusDone, Priority: TaskPriorityMedium, Tag: "Docs", CreatorID: head.ID, TeamID: &head.ID},
		{Title: "Team Meeting", Description: "Weekly sync with the engineering team.", Status: TaskStatusToDo, Priority: TaskPriorityMedium, Tag: "General", CreatorID: head.ID, TeamID: &head.ID},
	}
	if err := db.Create(&demoTasks).Error; err != nil {
		return err
	}

	return db.Create(&Activity{TeamOwnerID: head.ID, Text: "Team workspace created"}).Error
}
