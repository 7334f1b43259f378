package utils

import (
	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse creates a standardized error response. Internal faults
// (5xx) are reported to Sentry and their details kept out of the body.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	response := fiber.Map{
		"success": false,
		"error":   message,
	}
	if status >= fiber.StatusInternalServerError {
		if err != nil {
			sentry.CaptureException(err)
		}
	} else if err != nil {
		response["details"] = err.Error()
	}
	return c.Status(status).JSON(response)
}

// SuccessResponse creates a standardized success response
func SuccessResponse(data interface{}) fiber.Map {
	return fiber.Map{
		"success": true,
		"data":    data,
	}
}
