package handler

import (
	"drh-client/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups everything RegisterRoutes mounts.
type Handlers struct {
	Entry   *EntryHandler
	Answer  *AnswerHandler
	Catalog *CatalogHandler
	Health  *HealthHandler
}

// RegisterRoutes mounts the HTTP API on app.
func RegisterRoutes(app *fiber.App, h Handlers) {
	vm := middleware.NewValidationMiddleware()

	app.Get("/health", h.Health.Health)

	api := app.Group("/api")
	api.Get("/entries", vm.ValidateListParams(), h.Entry.ListEntries)
	api.Get("/entries/:id", vm.ValidateEntryID(), h.Entry.GetEntry)
	api.Get("/entries/:id/answers", vm.ValidateEntryID(), h.Entry.GetEntryAnswers)
	api.Post("/answers", h.Answer.PostAnswers)
	api.Get("/runs/:id/answers", h.Answer.GetRunAnswers)

	api.Get("/tags", vm.ValidateListParams(), h.Catalog.ListTags)
	api.Get("/regions", vm.ValidateListParams(), h.Catalog.ListRegions)
	api.Get("/question-relations", h.Catalog.GetQuestionRelations)
	api.Get("/entries-by-question", h.Catalog.EntriesByQuestion)
}
