package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// formatTimestamp renders a timestamp for display in lists
func formatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// formatDate renders a date-only timestamp for display
func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// isValidID reports whether the given route parameter is a well-formed
// public identifier
func isValidID(id string) bool {
	return uuid.Validate(id) == nil
}

func jsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
