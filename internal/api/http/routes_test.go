package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/lvmeteo/heatwave-dashboard/internal/chart"
	"github.com/lvmeteo/heatwave-dashboard/internal/climate"
	"github.com/lvmeteo/heatwave-dashboard/internal/observability"
)

func fixtureDataset(withDays bool) *climate.Dataset {
	hwi := []climate.HWIRecord{
		{Year: 2000, Source: climate.SourceObservations, Level: climate.LevelYellow, HWI: 1.0},
		{Year: 2001, Source: climate.SourceObservations, Level: climate.LevelYellow, HWI: 1.2},
		{Year: 2002, Source: climate.SourceObservations, Level: climate.LevelOrange, HWI: 2.0},
		{Year: 2003, Source: climate.SourceSSP126, Level: climate.LevelYellow, HWI: 1.4},
	}
	var days []climate.HeatwaveDaysRecord
	if withDays {
		days = []climate.HeatwaveDaysRecord{
			{Year: 2000, Scenario: climate.ScenarioObs, Days: 3},
			{Year: 2001, Scenario: climate.ScenarioObs, Days: 4},
			{Year: 2015, Scenario: climate.ScenarioSSP245, Days: 9},
		}
	}
	return climate.NewDataset(hwi, days, withDays)
}

func newTestApp(withDays bool) *fiber.App {
	app := fiber.New()
	store := climate.NewStore(fixtureDataset(withDays))
	RegisterRoutes(app, store, observability.NewMetricsForTesting())
	return app
}

func decodeFigure(t *testing.T, resp *http.Response) chart.Figure {
	t.Helper()
	var fig chart.Figure
	if err := json.NewDecoder(resp.Body).Decode(&fig); err != nil {
		t.Fatalf("failed to decode figure: %v", err)
	}
	return fig
}

// TestFigureDefaults verifies that a bare figure request falls back to the
// initial UI state: HWI tab, scenario view, yellow level.
func TestFigureDefaults(t *testing.T) {
	app := newTestApp(true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/figure", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	fig := decodeFigure(t, resp)

	var names []string
	for _, tr := range fig.Data {
		if tr.ShowLegend {
			names = append(names, tr.Name)
		}
	}
	if len(names) != 2 || names[0] != "observations" || names[1] != "ssp126" {
		t.Fatalf("expected [observations ssp126] series, got %v", names)
	}
	if fig.Layout.Title.Text != "HWI — Yellow" {
		t.Fatalf("unexpected title %q", fig.Layout.Title.Text)
	}
}

func TestFigureRejectsUnknownTab(t *testing.T) {
	app := newTestApp(true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/figure?tab=bogus", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestFigureRejectsUnknownView(t *testing.T) {
	app := newTestApp(true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/figure?tab=hwi&view=sideways", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

// TestFigureUnknownCategoryIsEmptyNotError checks the composer contract at
// the HTTP boundary: a category absent from the data draws nothing but is
// not an error.
func TestFigureUnknownCategoryIsEmptyNotError(t *testing.T) {
	app := newTestApp(true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/figure?tab=hwi&view=scenario&category=purple", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	fig := decodeFigure(t, resp)
	if len(fig.Data) != 0 {
		t.Fatalf("expected empty figure, got %d traces", len(fig.Data))
	}
}

func TestFigureDaysTabUnavailable(t *testing.T) {
	app := newTestApp(false)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/figure?tab=hw_days", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}

func TestFigureDaysScenarioSubset(t *testing.T) {
	app := newTestApp(true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/figure?tab=hw_days&scenarios=ssp245", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	fig := decodeFigure(t, resp)
	if len(fig.Data) != 1 {
		t.Fatalf("expected exactly one trace, got %d", len(fig.Data))
	}
	if fig.Data[0].Name != "ssp245" {
		t.Fatalf("expected ssp245 series, got %q", fig.Data[0].Name)
	}
}

// TestFigureDaysEmptySelection distinguishes an explicitly cleared checklist
// (scenarios present but empty, nothing drawn) from an absent parameter
// (full default selection).
func TestFigureDaysEmptySelection(t *testing.T) {
	app := newTestApp(true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/figure?tab=hw_days&scenarios=", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fig := decodeFigure(t, resp)
	if len(fig.Data) != 0 {
		t.Fatalf("expected empty figure for cleared checklist, got %d traces", len(fig.Data))
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/figure?tab=hw_days", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fig = decodeFigure(t, resp)
	if len(fig.Data) == 0 {
		t.Fatal("expected default full selection to draw series")
	}
}

func TestMetaMarksDaysTabDisabled(t *testing.T) {
	app := newTestApp(false)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/meta", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var meta struct {
		Tabs []struct {
			ID      string `json:"id"`
			Enabled bool   `json:"enabled"`
		} `json:"tabs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		t.Fatalf("failed to decode meta: %v", err)
	}

	if len(meta.Tabs) != 2 {
		t.Fatalf("expected 2 tabs, got %d", len(meta.Tabs))
	}
	for _, tab := range meta.Tabs {
		switch tab.ID {
		case "hwi":
			if !tab.Enabled {
				t.Fatal("hwi tab should always be enabled")
			}
		case "hw_days":
			if tab.Enabled {
				t.Fatal("hw_days tab should be disabled without data")
			}
		}
	}
}

func TestHealthz(t *testing.T) {
	app := newTestApp(true)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
}

func TestDashboardPageRenders(t *testing.T) {
	app := newTestApp(false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", ct)
	}
}
