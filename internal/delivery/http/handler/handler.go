// Package handler binds the HTTP surface to the usecases. Every response
// body goes through pkg/response; every failure is an AppError the error
// middleware turns into {"message": "..."}.
package handler

import (
	"errors"
	"strconv"

	"upfreelance/internal/delivery/http/middleware"
	"upfreelance/internal/validation"

	"github.com/gofiber/fiber/v3"
)

func parseIDParam(c fiber.Ctx, name, invalidMessage string) (int, error) {
	id, err := strconv.Atoi(c.Params(name))
	if err != nil || id < 1 {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, invalidMessage, err)
	}
	return id, nil
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

// validationError converts a schema failure into a 400 carrying the full
// per-field breakdown in the message; anything else bubbles up as 500.
func validationError(err error) error {
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		return middleware.NewAppError(fiber.StatusBadRequest, vErr.Error(), err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, "Internal server error", err)
}
