package handler

import (
	"strconv"

	"drh-client/internal/domain"
	"drh-client/internal/middleware"
	"drh-client/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves tags, regions, question relations and
// entries-by-question.
type CatalogHandler struct {
	catalog   service.CatalogService
	relations service.RelationService
	questions service.QuestionService
}

func NewCatalogHandler(catalog service.CatalogService, relations service.RelationService, questions service.QuestionService) *CatalogHandler {
	return &CatalogHandler{
		catalog:   catalog,
		relations: relations,
		questions: questions,
	}
}

// ListTags handles GET /api/tags?kind=entry|region
func (h *CatalogHandler) ListTags(c *fiber.Ctx) error {
	params, _ := c.Locals(middleware.LocalListParams).(domain.ListParams)
	page, err := h.catalog.Tags(c.UserContext(), service.TagKind(c.Query("kind")), params)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// ListRegions handles GET /api/regions
func (h *CatalogHandler) ListRegions(c *fiber.Ctx) error {
	params, _ := c.Locals(middleware.LocalListParams).(domain.ListParams)
	page, err := h.catalog.Regions(c.UserContext(), params)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// GetQuestionRelations handles GET /api/question-relations. simplify
// defaults to true and returns one canonical id per question; false returns
// the raw pairs.
func (h *CatalogHandler) GetQuestionRelations(c *fiber.Ctx) error {
	simplify := true
	if raw := c.Query("simplify"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return domain.ValidationErrors{domain.NewInvalidFormatError("simplify", raw)}
		}
		simplify = parsed
	}

	if !simplify {
		rels, err := h.relations.Relations(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(rels)
	}
	related, err := h.relations.RelatedQuestions(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(related)
}

// EntriesByQuestion handles GET /api/entries-by-question?question_name=
func (h *CatalogHandler) EntriesByQuestion(c *fiber.Ctx) error {
	rows, err := h.questions.EntriesByQuestion(c.UserContext(), c.Query("question_name"))
	if err != nil {
		return err
	}
	return c.JSON(rows)
}
