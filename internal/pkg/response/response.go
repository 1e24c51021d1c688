// Package response shapes every payload that leaves the process. Successes
// wrap the resource in a named field ({"user": ...}, {"skills": [...],
// "total": n}); failures are a bare {"message": "..."}.
package response

import "github.com/gofiber/fiber/v3"

func Success(c fiber.Ctx, status int, data fiber.Map) error {
	return c.Status(normalizeStatus(status)).JSON(data)
}

func Message(c fiber.Ctx, status int, message string) error {
	return c.Status(normalizeStatus(status)).JSON(fiber.Map{"message": message})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}
