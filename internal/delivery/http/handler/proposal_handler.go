package handler

import (
	"errors"

	"upfreelance/internal/delivery/http/middleware"
	"upfreelance/internal/domain/job"
	"upfreelance/internal/domain/proposal"
	"upfreelance/internal/domain/user"
	"upfreelance/internal/pkg/response"
	"upfreelance/internal/usecase"
	"upfreelance/internal/validation"

	"github.com/gofiber/fiber/v3"
)

type ProposalHandler struct {
	uc     usecase.ProposalUsecase
	schema *validation.Registry
}

type generateProposalRequest struct {
	JobTitle         string `json:"jobTitle"`
	JobDescription   string `json:"jobDescription"`
	UserID           int    `json:"userId"`
	IncludePortfolio bool   `json:"includePortfolio"`
}

func NewProposalHandler(uc usecase.ProposalUsecase, schema *validation.Registry) *ProposalHandler {
	return &ProposalHandler{uc: uc, schema: schema}
}

func (h *ProposalHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/proposals", h.Create)
	r.Get("/users/:id/proposals", h.ListUserProposals)
	r.Delete("/proposals/:id", h.Delete)
	r.Post("/generate-proposal", h.Generate)
}

func (h *ProposalHandler) Create(c fiber.Ctx) error {
	if err := h.schema.Validate(c.Context(), validation.KindProposal, c.Body()); err != nil {
		return validationError(err)
	}

	var in proposal.Insert
	if err := c.Bind().Body(&in); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	created, err := h.uc.CreateProposal(c.Context(), in)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Content is required", err)
		}
		return mapProposalError(err)
	}

	return response.Success(c, fiber.StatusCreated, fiber.Map{"proposal": created})
}

func (h *ProposalHandler) ListUserProposals(c fiber.Ctx) error {
	userID, err := parseIDParam(c, "id", "Invalid user ID")
	if err != nil {
		return err
	}

	proposals, err := h.uc.ListUserProposals(c.Context(), userID)
	if err != nil {
		return mapProposalError(err)
	}

	if proposals == nil {
		proposals = []proposal.Proposal{}
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"proposals": proposals})
}

func (h *ProposalHandler) Delete(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id", "Invalid proposal ID")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProposal(c.Context(), id); err != nil {
		return mapProposalError(err)
	}

	return response.Message(c, fiber.StatusOK, "Proposal deleted")
}

func (h *ProposalHandler) Generate(c fiber.Ctx) error {
	var req generateProposalRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}
	if req.JobDescription == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Job description is required", nil)
	}

	text, err := h.uc.GenerateProposal(c.Context(), usecase.GenerateInput{
		JobTitle:         req.JobTitle,
		JobDescription:   req.JobDescription,
		UserID:           req.UserID,
		IncludePortfolio: req.IncludePortfolio,
	})
	if err != nil {
		return mapProposalError(err)
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{
		"proposal": text,
		"message":  "Proposal generated successfully",
	})
}

func mapProposalError(err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", err)
	case errors.Is(err, job.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", err)
	case errors.Is(err, proposal.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Proposal not found", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Job description is required", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "Internal server error", err)
	}
}
