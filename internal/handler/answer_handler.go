package handler

import (
	"drh-client/internal/domain"
	"drh-client/internal/dto"
	"drh-client/internal/logger"
	"drh-client/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AnswerHandler assembles answer tables for several entries and serves
// stored runs.
type AnswerHandler struct {
	answers service.AnswerService
}

func NewAnswerHandler(answers service.AnswerService) *AnswerHandler {
	return &AnswerHandler{answers: answers}
}

// PostAnswers handles POST /api/answers. Entries that fail are listed in
// the failures field; the request itself still succeeds.
func (h *AnswerHandler) PostAnswers(c *fiber.Ctx) error {
	var req dto.AnswersRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be a JSON object with entry_ids")
	}

	table, err := h.answers.AnswersForEntries(c.UserContext(), req.EntryIDs)
	if err != nil {
		return err
	}
	if len(table.Failures) > 0 {
		logger.Get().Warn("Answer table assembled with failures",
			zap.Int("requested", len(req.EntryIDs)),
			zap.Int("failures", len(table.Failures)),
		)
	}

	if req.Store {
		if _, err := h.answers.Store(c.UserContext(), req.EntryIDs, table); err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(table)
	}
	return c.JSON(table)
}

// GetRunAnswers handles GET /api/runs/:id/answers
func (h *AnswerHandler) GetRunAnswers(c *fiber.Ctx) error {
	run, rows, err := h.answers.GetRun(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.RunAnswersResponse{Run: run, Rows: rows})
}
