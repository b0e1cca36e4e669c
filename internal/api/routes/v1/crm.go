package v1

import (
	"github.com/gofiber/fiber/v2"
)

func registerProjects(r fiber.Router, deps Deps) {
	r.Post("/projects", deps.Projects.CreateProject)
	r.Get("/projects", deps.Projects.GetAllProjects)
	r.Get("/projects/:projectId", deps.Projects.GetProject)
	r.Put("/projects/:projectId", deps.Projects.UpdateProject)
	r.Delete("/projects/:projectId", deps.Projects.DeleteProject)
}

func registerSubcontractors(r fiber.Router, deps Deps) {
	r.Post("/subcontractors", deps.Subcontractors.CreateSubcontractor)
	r.Get("/subcontractors", deps.Subcontractors.GetAllSubcontractors)
	r.Get("/subcontractors/:subcontractorId", deps.Subcontractors.GetSubcontractor)
	r.Put("/subcontractors/:subcontractorId", deps.Subcontractors.UpdateSubcontractor)
	r.Delete("/subcontractors/:subcontractorId", deps.Subcontractors.DeleteSubcontractor)
}

func registerWorkers(r fiber.Router, deps Deps) {
	r.Post("/workers", deps.Workers.CreateWorker)
	r.Get("/workers", deps.Workers.GetAllWorkers)
	r.Get("/workers/:workerId", deps.Workers.GetWorker)
	r.Put("/workers/:workerId", deps.Workers.UpdateWorker)
	r.Delete("/workers/:workerId", deps.Workers.DeleteWorker)

	// identification documents hang off a worker
	r.Post("/identifications", deps.Identifications.CreateIdentification)
	r.Get("/workers/:workerId/identifications", deps.Identifications.GetIdentificationsByWorker)
	r.Get("/identifications/:identificationId", deps.Identifications.GetIdentification)
	r.Put("/identifications/:identificationId", deps.Identifications.UpdateIdentification)
	r.Delete("/identifications/:identificationId", deps.Identifications.DeleteIdentification)
}

func registerBlueprints(r fiber.Router, deps Deps) {
	r.Post("/blueprints", deps.Blueprints.CreateBlueprint)
	r.Get("/blueprints", deps.Blueprints.GetAllBlueprints)
	r.Get("/blueprints/:blueprintId", deps.Blueprints.GetBlueprint)
	r.Put("/blueprints/:blueprintId", deps.Blueprints.UpdateBlueprint)
	r.Delete("/blueprints/:blueprintId", deps.Blueprints.DeleteBlueprint)
}

func registerReports(r fiber.Router, deps Deps) {
	r.Post("/reports", deps.Reports.CreateReport)
	r.Get("/reports", deps.Reports.GetAllReports)
	r.Get("/reports/:reportId", deps.Reports.GetReport)
	r.Delete("/reports/:reportId", deps.Reports.DeleteReport)
}

func registerDocuments(r fiber.Router, deps Deps) {
	r.Post("/documents", deps.Documents.IndexDocument)
	r.Delete("/documents/:documentId", deps.Documents.RemoveDocument)
}
