package controller

import (
	"fmt"
	"log"

	"github.com/badoux/checkmail"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aurora/models"
	"aurora/utils"
)

type TeamController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewTeamController(db *gorm.DB, logger *log.Logger) *TeamController {
	return &TeamController{
		DB:     db,
		Logger: logger,
	}
}

type AddMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// rosterFor loads the managed list of one head, in the order members
// were added. Dangling edges simply produce no row.
func (tc *TeamController) rosterFor(ownerID uint) ([]models.User, error) {
	var members []models.User
	err := tc.DB.
		Joins("JOIN team_members ON team_members.member_id = users.id").
		Where("team_members.owner_id = ? AND team_members.deleted_at IS NULL", ownerID).
		Order("team_members.id ASC").
		Find(&members).Error
	return members, err
}

// GetTeam returns the caller's team views: the owned team first, then
// every team the caller participates in, in head-id order.
func (tc *TeamController) GetTeam(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	ownMembers, err := tc.rosterFor(user.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch team", err)
	}

	var headIDs []uint
	if err := tc.DB.Model(&models.TeamMember{}).
		Where("member_id = ?", user.ID).
		Order("owner_id ASC").
		Pluck("owner_id", &headIDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch teams", err)
	}

	participating := make([]models.TeamRoster, 0, len(headIDs))
	for _, headID := range headIDs {
		var head models.User
		if err := tc.DB.First(&head, headID).Error; err != nil {
			// Head no longer resolves; skip the dangling team
			continue
		}
		members, err := tc.rosterFor(headID)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch team", err)
		}
		participating = append(participating, models.TeamRoster{Head: head, Members: members})
	}

	views := models.BuildTeamViews(models.TeamRoster{Head: *user, Members: ownMembers}, participating)
	return c.JSON(utils.SuccessResponse(views))
}

// AddMember adds a registered user, looked up by email, to the caller's
// managed list.
func (tc *TeamController) AddMember(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var input AddMemberRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}
	if err := checkmail.ValidateFormat(input.Email); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid email address", err)
	}

	var userToAdd models.User
	if err := tc.DB.Where("email = ?", input.Email).First(&userToAdd).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found with that email", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to look up user", err)
	}

	if userToAdd.ID == user.ID {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "You cannot add yourself to your team", nil)
	}

	var existing int64
	if err := tc.DB.Model(&models.TeamMember{}).
		Where("owner_id = ? AND member_id = ?", user.ID, userToAdd.ID).
		Count(&existing).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to check membership", err)
	}
	if existing > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "User already in team", nil)
	}

	edge := models.TeamMember{OwnerID: user.ID, MemberID: userToAdd.ID}
	if err := tc.DB.Create(&edge).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to add member", err)
	}

	tc.recordActivity(user.ID, fmt.Sprintf("%s added %s to the team", user.Name, userToAdd.Name))

	// Best effort: the membership is saved whether or not mail goes out
	if err := utils.SendTeamInviteEmail(userToAdd.Email, userToAdd.Name, user.Name); err != nil {
		tc.Logger.Printf("Failed to send invite email to %s: %v", userToAdd.Email, err)
	}

	members, err := tc.rosterFor(user.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch team", err)
	}

	views := models.BuildTeamViews(models.TeamRoster{Head: *user, Members: members}, nil)
	return c.JSON(utils.SuccessResponse(views[0].Members))
}

// RemoveMember drops a member id from the caller's managed list.
// Removing an id that is not on the list is a no-op.
func (tc *TeamController) RemoveMember(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	memberID := c.Params("id")

	result := tc.DB.Unscoped().
		Where("owner_id = ? AND member_id = ?", user.ID, memberID).
		Delete(&models.TeamMember{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to remove member", result.Error)
	}

	if result.RowsAffected > 0 {
		tc.recordActivity(user.ID, fmt.Sprintf("%s removed a member from the team", user.Name))
	}

	return c.JSON(fiber.Map{"id": memberID})
}

// GetTeamActivity returns the newest activity entries for one team,
// visible to the owner and their members only.
func (tc *TeamController) GetTeamActivity(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	teamID := c.Params("teamId")

	var teamOwner models.User
	if err := tc.DB.First(&teamOwner, "id = ?", teamID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Team not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch team", err)
	}

	isOwner := teamOwner.ID == user.ID
	if !isOwner {
		var membership int64
		if err := tc.DB.Model(&models.TeamMember{}).
			Where("owner_id = ? AND member_id = ?", teamOwner.ID, user.ID).
			Count(&membership).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to check membership", err)
		}
		if membership == 0 {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "Not authorized to view this team's activity", nil)
		}
	}

	var activities []models.Activity
	if err := tc.DB.Where("team_owner_id = ?", teamOwner.ID).
		Order("created_at DESC, id DESC").
		Limit(models.ActivityFeedLimit).
		Find(&activities).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch activity", err)
	}

	return c.JSON(utils.SuccessResponse(activities))
}

func (tc *TeamController) recordActivity(teamOwnerID uint, text string) {
	activity := models.Activity{TeamOwnerID: teamOwnerID, Text: text}
	if err := tc.DB.Create(&activity).Error; err != nil {
		tc.Logger.Printf("Failed to record activity: %v", err)
	}
}
