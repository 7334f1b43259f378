package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"aurora/models"
	"aurora/utils"
)

type MasterController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewMasterController(db *gorm.DB, logger *log.Logger) *MasterController {
	return &MasterController{
		DB:     db,
		Logger: logger,
	}
}

// GetAdmins lists every head-tier user with their team rollups. The
// master gate runs in middleware before this handler.
func (mc *MasterController) GetAdmins(c *fiber.Ctx) error {
	caller := c.Locals("user").(*models.User)

	var heads []models.User
	if err := mc.DB.Where("role IN ?", []models.Role{models.RoleAdmin, models.RoleTeamHead}).
		Order("id ASC").
		Find(&heads).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch admins", err)
	}

	summaries := make([]models.AdminSummary, 0, len(heads))
	for _, head := range heads {
		var memberCount int64
		if err := mc.DB.Model(&models.TeamMember{}).
			Where("owner_id = ?", head.ID).
			Count(&memberCount).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to count members", err)
		}

		var activityCount int64
		if err := mc.DB.Model(&models.Activity{}).
			Where("team_owner_id = ?", head.ID).
			Count(&activityCount).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to count activity", err)
		}

		summaries = append(summaries, models.AdminSummary{
			ID:            head.ID,
			Name:          head.Name,
			Email:         head.Email,
			MemberCount:   memberCount,
			ActivityCount: activityCount,
			JoinedAt:      head.CreatedAt,
		})
	}

	logrus.WithFields(logrus.Fields{
		"master_id": caller.ID,
		"heads":     len(summaries),
	}).Info("master dashboard list served")

	return c.JSON(utils.SuccessResponse(summaries))
}

// GetTeamDetails is the drill-down for one head: profile, roster, and
// the newest activity entries.
func (mc *MasterController) GetTeamDetails(c *fiber.Ctx) error {
	adminID := c.Params("adminId")

	var head models.User
	if err := mc.DB.First(&head, "id = ?", adminID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Admin not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch admin", err)
	}

	var members []models.User
	if err := mc.DB.
		Joins("JOIN team_members ON team_members.member_id = users.id").
		Where("team_members.owner_id = ? AND team_members.deleted_at IS NULL", head.ID).
		Order("team_members.id ASC").
		Find(&members).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch members", err)
	}

	var activities []models.Activity
	if err := mc.DB.Where("team_owner_id = ?", head.ID).
		Order("created_at DESC, id DESC").
		Limit(models.ActivityFeedLimit).
		Find(&activities).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch activity", err)
	}

	return c.JSON(utils.SuccessResponse(fiber.Map{
		"admin": fiber.Map{
			"id":    head.ID,
			"name":  head.Name,
			"email": head.Email,
			"role":  head.Role,
		},
		"members":    members,
		"activities": activities,
	}))
}
