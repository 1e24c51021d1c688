package handler

import (
	"errors"

	"upfreelance/internal/delivery/http/middleware"
	"upfreelance/internal/domain/skill"
	"upfreelance/internal/domain/user"
	"upfreelance/internal/pkg/response"
	"upfreelance/internal/usecase"
	"upfreelance/internal/validation"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc     usecase.SkillUsecase
	schema *validation.Registry
}

type createSkillRequest struct {
	Name string `json:"name"`
}

type addUserSkillRequest struct {
	SkillID int `json:"skillId"`
}

func NewSkillHandler(uc usecase.SkillUsecase, schema *validation.Registry) *SkillHandler {
	return &SkillHandler{uc: uc, schema: schema}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/skills", h.Create)
	r.Get("/skills", h.List)
	r.Delete("/skills/:id", h.Delete)

	r.Post("/users/:id/skills", h.AddUserSkill)
	r.Get("/users/:id/skills", h.ListUserSkills)
	r.Delete("/users/:id/skills/:skillId", h.RemoveUserSkill)
}

func (h *SkillHandler) Create(c fiber.Ctx) error {
	if err := h.schema.Validate(c.Context(), validation.KindSkill, c.Body()); err != nil {
		return validationError(err)
	}

	var req createSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	created, err := h.uc.CreateSkill(c.Context(), req.Name)
	if err != nil {
		return mapSkillError(err)
	}

	return response.Success(c, fiber.StatusCreated, fiber.Map{"skill": created})
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	page := parseQueryInt(c, "page", 1)
	limit := parseQueryInt(c, "limit", 10)

	skills, total, err := h.uc.ListSkills(c.Context(), page, limit)
	if err != nil {
		return mapSkillError(err)
	}

	if skills == nil {
		skills = []skill.Skill{}
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"skills": skills, "total": total})
}

func (h *SkillHandler) Delete(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id", "Invalid skill ID")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteSkill(c.Context(), id); err != nil {
		return mapSkillError(err)
	}

	return response.Message(c, fiber.StatusOK, "Skill deleted")
}

func (h *SkillHandler) AddUserSkill(c fiber.Ctx) error {
	userID, err := parseIDParam(c, "id", "Invalid user ID")
	if err != nil {
		return err
	}

	var req addUserSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}
	if req.SkillID < 1 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Skill ID is required", nil)
	}

	if err := h.uc.AddUserSkill(c.Context(), userID, req.SkillID); err != nil {
		return mapSkillError(err)
	}

	return response.Message(c, fiber.StatusCreated, "Skill added to user")
}

func (h *SkillHandler) ListUserSkills(c fiber.Ctx) error {
	userID, err := parseIDParam(c, "id", "Invalid user ID")
	if err != nil {
		return err
	}

	skills, err := h.uc.ListUserSkills(c.Context(), userID)
	if err != nil {
		return mapSkillError(err)
	}

	if skills == nil {
		skills = []skill.Skill{}
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"skills": skills})
}

func (h *SkillHandler) RemoveUserSkill(c fiber.Ctx) error {
	userID, err := parseIDParam(c, "id", "Invalid user ID")
	if err != nil {
		return err
	}
	skillID, err := parseIDParam(c, "skillId", "Invalid skill ID")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveUserSkill(c.Context(), userID, skillID); err != nil {
		return mapSkillError(err)
	}

	return response.Message(c, fiber.StatusOK, "Skill removed from user")
}

func mapSkillError(err error) error {
	switch {
	case errors.Is(err, skill.ErrNameTaken):
		return middleware.NewAppError(fiber.StatusBadRequest, "Skill already exists", err)
	case errors.Is(err, skill.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", err)
	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Skill name is required", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "Internal server error", err)
	}
}
