package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aurora/config"
	"aurora/models"
	"aurora/utils"
)

type PasswordEntryRequest struct {
	Title    string `json:"title" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	URL      string `json:"url"`
	Category string `json:"category" validate:"omitempty,oneof=login meeting website other"`
	Notes    string `json:"notes"`
}

func GetPasswords(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var entries []models.PasswordEntry
	if err := config.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch passwords", err)
	}

	return c.JSON(utils.SuccessResponse(entries))
}

func CreatePassword(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var input PasswordEntryRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	entry := models.PasswordEntry{
		UserID:   user.ID,
		Title:    input.Title,
		Username: input.Username,
		Password: input.Password,
		URL:      input.URL,
		Category: input.Category,
		Notes:    input.Notes,
	}
	if entry.Category == "" {
		entry.Category = "login"
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create password entry", err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(entry))
}

func UpdatePassword(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	entryID := c.Params("id")

	var entry models.PasswordEntry
	if err := config.DB.First(&entry, "id = ?", entryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Password entry not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch password entry", err)
	}

	if entry.UserID != user.ID {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Not authorized to update this entry", nil)
	}

	var input PasswordEntryRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	entry.Title = input.Title
	entry.Username = input.Username
	entry.Password = input.Password
	entry.URL = input.URL
	entry.Notes = input.Notes
	if input.Category != "" {
		entry.Category = input.Category
	}

	if err := config.DB.Save(&entry).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update password entry", err)
	}

	return c.JSON(utils.SuccessResponse(entry))
}

func DeletePassword(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	entryID := c.Params("id")

	var entry models.PasswordEntry
	if err := config.DB.First(&entry, "id = ?", entryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Password entry not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch password entry", err)
	}

	if entry.UserID != user.ID {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Not authorized to delete this entry", nil)
	}

	if err := config.DB.Unscoped().Delete(&entry).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete password entry", err)
	}

	return c.JSON(fiber.Map{"id": entry.ID})
}
