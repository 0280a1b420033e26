package handler

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campusdocs/docs"
	"campusdocs/internal/service"
	"campusdocs/internal/storage"
)

// Deps are the collaborators the routes need. Nil services leave their routes unregistered.
type Deps struct {
	DB            *sql.DB
	Render        service.RenderService
	Documents     service.DocumentService
	Events        service.EventService
	Store         storage.Storage
	Gatherer      prometheus.Gatherer
	PublicBaseURL string
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers only decode, delegate and encode; rules live in the services.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	if d.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	if d.Render != nil {
		app.Post("/certificate", CreateCertificate(d.Render))
		app.Post("/certificate/bulk", CreateBulkCertificates(d.Render))
		app.Post("/id-cards", CreateIDCards(d.Render))
		app.Post("/invitation", CreateInvitation(d.Render, d.PublicBaseURL))
	}

	if d.Store != nil {
		app.Get("/"+storage.CertificatesDir+"/:file", ServeFile(d.Store, storage.CertificatesDir))
		app.Get("/"+storage.IDCardsDir+"/:file", ServeFile(d.Store, storage.IDCardsDir))
		app.Get("/"+storage.InvitationsDir+"/:file", ServeFile(d.Store, storage.InvitationsDir))
	}

	if d.Documents != nil {
		app.Get("/documents", ListDocuments(d.Documents))
		app.Get("/documents/:id", GetDocument(d.Documents))
		app.Delete("/documents/:id", DeleteDocument(d.Documents))
	}

	if d.Events != nil {
		app.Post("/events", CreateEvent(d.Events))
		app.Get("/events", ListEvents(d.Events))
	}
}
