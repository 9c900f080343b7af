package handler

import (
	"drh-client/internal/domain"
	"drh-client/internal/dto"
	"drh-client/internal/middleware"
	"drh-client/internal/service"

	"github.com/gofiber/fiber/v2"
)

// EntryHandler serves entry metadata and flattened answers.
type EntryHandler struct {
	catalog service.CatalogService
	answers service.AnswerService
}

func NewEntryHandler(catalog service.CatalogService, answers service.AnswerService) *EntryHandler {
	return &EntryHandler{
		catalog: catalog,
		answers: answers,
	}
}

// ListEntries handles GET /api/entries
func (h *EntryHandler) ListEntries(c *fiber.Ctx) error {
	params, _ := c.Locals(middleware.LocalListParams).(domain.ListParams)
	page, err := h.catalog.Entries(c.UserContext(), params)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// GetEntry handles GET /api/entries/:id
func (h *EntryHandler) GetEntry(c *fiber.Ctx) error {
	id := c.Locals(middleware.LocalEntryID).(int64)
	detail, err := h.catalog.Entry(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(detail)
}

// GetEntryAnswers handles GET /api/entries/:id/answers
func (h *EntryHandler) GetEntryAnswers(c *fiber.Ctx) error {
	id := c.Locals(middleware.LocalEntryID).(int64)
	rows, err := h.answers.AnswersForEntry(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.EntryAnswersResponse{EntryID: id, Rows: rows})
}
