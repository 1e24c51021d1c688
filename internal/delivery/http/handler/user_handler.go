package handler

import (
	"errors"

	"upfreelance/internal/delivery/http/dto"
	"upfreelance/internal/delivery/http/middleware"
	"upfreelance/internal/domain/user"
	"upfreelance/internal/pkg/response"
	"upfreelance/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc usecase.UserUsecase
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/users/:id", h.Get)
	r.Put("/users/:id", h.Update)
}

// RegisterMe mounts the authenticated current-user route behind the given
// auth middleware.
func (h *UserHandler) RegisterMe(r fiber.Router, authMW fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("/me", h.Me, authMW)
}

func (h *UserHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id", "Invalid user ID")
	if err != nil {
		return err
	}

	usr, err := h.uc.GetUser(c.Context(), id)
	if err != nil {
		return mapUserError(err)
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{"user": dto.NewUserResponse(usr)})
}

func (h *UserHandler) Update(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id", "Invalid user ID")
	if err != nil {
		return err
	}

	var p user.Patch
	if err := c.Bind().Body(&p); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	usr, err := h.uc.UpdateUser(c.Context(), id, p)
	if err != nil {
		return mapUserError(err)
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{"user": dto.NewUserResponse(usr)})
}

func (h *UserHandler) Me(c fiber.Ctx) error {
	id, ok := c.Locals(middleware.CtxUserIDKey).(int)
	if !ok || id < 1 {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	usr, err := h.uc.GetUser(c.Context(), id)
	if err != nil {
		return mapUserError(err)
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{"user": dto.NewUserResponse(usr)})
}

func mapUserError(err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", err)
	case errors.Is(err, user.ErrUsernameTaken):
		return middleware.NewAppError(fiber.StatusBadRequest, "Username already exists", err)
	case errors.Is(err, user.ErrEmailTaken):
		return middleware.NewAppError(fiber.StatusBadRequest, "Email already exists", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "No fields to update", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "Internal server error", err)
	}
}
