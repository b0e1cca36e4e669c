package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shahparacha/timeprint-gpt/internal/handlers"
)

// Deps bundles everything the v1 routes need. Handlers are built in main so
// that route registration stays free of wiring concerns.
type Deps struct {
	Auth fiber.Handler

	Chat            *handlers.ChatHandler
	Projects        *handlers.ProjectHandler
	Subcontractors  *handlers.SubcontractorHandler
	Workers         *handlers.WorkerHandler
	Identifications *handlers.IdentificationHandler
	Blueprints      *handlers.BlueprintHandler
	Reports         *handlers.ReportHandler
	Documents       *handlers.DocumentHandler
}

func RegisterRoutes(r fiber.Router, deps Deps) {
	registerHealth(r)

	// Everything below requires a valid bearer token.
	authed := r.Group("", deps.Auth)

	registerChat(authed, deps)
	registerProjects(authed, deps)
	registerSubcontractors(authed, deps)
	registerWorkers(authed, deps)
	registerBlueprints(authed, deps)
	registerReports(authed, deps)
	registerDocuments(authed, deps)
}

func registerHealth(r fiber.Router) {
	r.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "ok",
		})
	})
}
