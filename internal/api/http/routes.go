package httpapi

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"

	"kindle-weather/internal/render"
	"kindle-weather/internal/weather"
)

// Handler serves the dashboard and health endpoints.
type Handler struct {
	svc          *weather.Service
	clock        weather.Clock
	locationName string
	zone         *time.Location
	templatePath string
	staticDir    string
}

// NewHandler wires the request handlers. templatePath is read per
// request so a template edit shows up without a restart.
func NewHandler(svc *weather.Service, clock weather.Clock, locationName string, zone *time.Location, templatePath, staticDir string) *Handler {
	return &Handler{
		svc:          svc,
		clock:        clock,
		locationName: locationName,
		zone:         zone,
		templatePath: templatePath,
		staticDir:    staticDir,
	}
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Get("/", h.dashboard)
	app.Get("/health", h.health)
	app.Get("/kindle.css", h.stylesheet)
}

func (h *Handler) dashboard(c *fiber.Ctx) error {
	dash, err := h.svc.Dashboard(c.UserContext())
	if err != nil {
		log.Printf("dashboard request failed: %v", err)
		return h.errorPage(c, err)
	}

	templateText, err := os.ReadFile(h.templatePath)
	if err != nil {
		log.Printf("failed to read template %s: %v", h.templatePath, err)
		return h.errorPage(c, err)
	}

	ctx := render.BuildContext(dash, h.locationName, h.zone)
	if err := ctx.Validate(); err != nil {
		log.Printf("render context invalid: %v", err)
		return h.errorPage(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(fiber.StatusOK).SendString(render.Render(string(templateText), ctx))
}

func (h *Handler) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": h.clock.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) stylesheet(c *fiber.Ctx) error {
	return c.SendFile(filepath.Join(h.staticDir, "kindle.css"))
}

const errorPageHTML = `<html>
    <head>
        <title>Weather Dashboard - Error</title>
        <link rel="stylesheet" href="/kindle.css">
    </head>
    <body>
        <div class="container">
            <h1>Weather Dashboard</h1>
            <p class="error">Unable to load weather data. Please try again later.</p>
            <p class="error-details">%s</p>
        </div>
    </body>
</html>`

func (h *Handler) errorPage(c *fiber.Ctx, err error) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(fiber.StatusInternalServerError).SendString(fmt.Sprintf(errorPageHTML, err.Error()))
}
