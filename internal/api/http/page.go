package httpapi

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/lvmeteo/heatwave-dashboard/internal/climate"
)

//go:embed page.gohtml
var pageFS embed.FS

var pageTmpl = template.Must(template.ParseFS(pageFS, "page.gohtml"))

type pageData struct {
	Title           string
	HasHeatwaveDays bool
}

// renderPage serves the dashboard shell. The chart itself is fetched by the
// page script from the figure endpoint on every control change.
func renderPage(c *fiber.Ctx, ds *climate.Dataset) error {
	var buf bytes.Buffer
	data := pageData{
		Title:           "Latvija — ekstremālo karstuma rādītāji",
		HasHeatwaveDays: ds.HasHeatwaveDays,
	}
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render page")
	}

	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
