package httpapi

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lvmeteo/heatwave-dashboard/internal/chart"
	"github.com/lvmeteo/heatwave-dashboard/internal/climate"
	"github.com/lvmeteo/heatwave-dashboard/internal/observability"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, store *climate.Store, metrics *observability.Metrics) {
	app.Get("/", func(c *fiber.Ctx) error {
		return renderPage(c, store.Snapshot())
	})

	app.Get("/healthz", func(c *fiber.Ctx) error {
		ds := store.Snapshot()
		return c.JSON(fiber.Map{
			"status":            "ok",
			"service":           "heatwave-dashboard",
			"snapshot_id":       ds.ID,
			"loaded_at":         ds.LoadedAt,
			"hwi_rows":          len(ds.HWI),
			"heatwave_day_rows": len(ds.HeatwaveDays),
			"has_heatwave_days": ds.HasHeatwaveDays,
		})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	v1 := app.Group("/api/v1")

	v1.Get("/figure", func(c *fiber.Ctx) error {
		req, err := parseFigureQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		ds := store.Snapshot()
		if req.Tab == chart.TabHeatwaveDays && !ds.HasHeatwaveDays {
			return fiber.NewError(fiber.StatusNotFound, "heatwave-days dataset not available")
		}

		start := time.Now()
		fig := chart.Compose(ds, req)
		metrics.ComposeDuration.Observe(time.Since(start).Seconds())
		metrics.FigureRequests.WithLabelValues(string(req.Tab)).Inc()
		metrics.FigureTraces.Observe(float64(len(fig.Data)))

		return c.JSON(fig)
	})

	v1.Get("/meta", func(c *fiber.Ctx) error {
		ds := store.Snapshot()
		return c.JSON(fiber.Map{
			"tabs": []fiber.Map{
				{"id": string(chart.TabHWI), "label": "HWI (gads)", "enabled": true},
				{"id": string(chart.TabHeatwaveDays), "label": "Karstuma viļņu dienas (gads)", "enabled": ds.HasHeatwaveDays},
			},
			"views":     []string{string(chart.ViewScenario), string(chart.ViewWarning)},
			"levels":    climate.LevelOrder,
			"sources":   climate.SourceOrder,
			"scenarios": climate.ScenarioOrder,
			"snapshot": fiber.Map{
				"id":        ds.ID,
				"loaded_at": ds.LoadedAt,
			},
		})
	})
}

// figureQuery holds the query parameters of the figure endpoint.
type figureQuery struct {
	Tab      string `validate:"required,oneof=hwi hw_days"`
	View     string `validate:"required,oneof=scenario warning"`
	Category string `validate:"omitempty,max=64"`
}

// parseFigureQuery binds the query with defaults matching the initial UI
// state: HWI tab, scenario view, yellow level, all scenarios selected.
func parseFigureQuery(c *fiber.Ctx) (chart.Request, error) {
	q := figureQuery{
		Tab:  c.Query("tab", string(chart.TabHWI)),
		View: c.Query("view", string(chart.ViewScenario)),
	}

	q.Category = c.Query("category")
	if q.Category == "" {
		if q.View == string(chart.ViewWarning) {
			q.Category = string(climate.SourceObservations)
		} else {
			q.Category = string(climate.LevelYellow)
		}
	}

	if err := validate.Struct(q); err != nil {
		return chart.Request{}, err
	}

	req := chart.Request{
		Tab:      chart.Tab(q.Tab),
		View:     chart.HWIView(q.View),
		Category: q.Category,
	}

	// An absent scenarios parameter means the default full selection; a
	// present-but-empty one means the user cleared the checklist.
	if c.Context().QueryArgs().Has("scenarios") {
		for _, s := range strings.Split(c.Query("scenarios"), ",") {
			if s = strings.TrimSpace(s); s != "" {
				req.Scenarios = append(req.Scenarios, climate.Scenario(s))
			}
		}
	} else {
		req.Scenarios = append(req.Scenarios, climate.ScenarioOrder...)
	}

	return req, nil
}
