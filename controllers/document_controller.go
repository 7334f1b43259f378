package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aurora/config"
	"aurora/models"
	"aurora/utils"
)

// Documents carry metadata only; no file bytes move through this API.
// The URL is a placeholder until real storage is attached.
const documentPlaceholderURL = "https://example.com/mock-file.pdf"

type UploadDocumentRequest struct {
	Name   string `json:"name" validate:"required"`
	Type   string `json:"type" validate:"required"`
	Size   string `json:"size" validate:"required"`
	Folder string `json:"folder"`
}

func GetDocuments(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var documents []models.Document
	if err := config.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&documents).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch documents", err)
	}

	return c.JSON(utils.SuccessResponse(documents))
}

func UploadDocument(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var input UploadDocumentRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	document := models.Document{
		UserID: user.ID,
		Name:   input.Name,
		Type:   input.Type,
		Size:   input.Size,
		URL:    documentPlaceholderURL,
		Folder: input.Folder,
	}
	if document.Folder == "" {
		document.Folder = "General"
	}

	if err := config.DB.Create(&document).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create document", err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(document))
}

func DeleteDocument(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	documentID := c.Params("id")

	var document models.Document
	if err := config.DB.First(&document, "id = ?", documentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Document not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch document", err)
	}

	if document.UserID != user.ID {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Not authorized to delete this document", nil)
	}

	if err := config.DB.Unscoped().Delete(&document).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete document", err)
	}

	return c.JSON(fiber.Map{"id": document.ID})
}
