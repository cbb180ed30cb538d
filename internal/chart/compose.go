package chart

import (
	"fmt"
	"strings"

	"github.com/lvmeteo/heatwave-dashboard/internal/climate"
)

// Tab selects which of the two presentations to compose.
type Tab string

const (
	TabHWI          Tab = "hwi"
	TabHeatwaveDays Tab = "hw_days"
)

// HWIView selects how the HWI tab slices the table.
type HWIView string

const (
	// ViewScenario fixes a warning level and draws one series per source.
	ViewScenario HWIView = "scenario"
	// ViewWarning fixes a source and draws one series per warning level.
	ViewWarning HWIView = "warning"
)

// Request is one fully-resolved user selection. Defaults are the caller's
// concern; Compose treats every field as authoritative.
type Request struct {
	Tab  Tab
	View HWIView

	// Category is a warning level in ViewScenario and a source name in
	// ViewWarning. A value not present in the data yields zero series.
	Category string

	// Scenarios is the heatwave-days checklist selection; may be empty.
	Scenarios []climate.Scenario
}

// Fixed palettes. The heatwave-days palette parallels the HWI one with the
// abbreviated "obs" key.
var (
	sourceColors = map[climate.Source]string{
		climate.SourceObservations: "black",
		climate.SourceHistorical:   "gray",
		climate.SourceSSP126:       "navy",
		climate.SourceSSP245:       "orange",
		climate.SourceSSP370:       "red",
	}
	levelColors = map[climate.WarningLevel]string{
		climate.LevelYellow: "gold",
		climate.LevelOrange: "darkorange",
		climate.LevelRed:    "firebrick",
	}
	scenarioColors = map[climate.Scenario]string{
		climate.ScenarioObs:        "black",
		climate.ScenarioHistorical: "gray",
		climate.ScenarioSSP126:     "navy",
		climate.ScenarioSSP245:     "orange",
		climate.ScenarioSSP370:     "red",
	}
)

// Connector stroke widths, matching the two views of the original charts.
const (
	hwiConnectorWidth  = 1.4
	daysConnectorWidth = 1.3
)

// Compose builds the figure for the given selection. It never fails: a
// selection matching nothing produces a figure with layout but no traces.
// The caller must not request TabHeatwaveDays against a snapshot without
// that table; the HTTP layer guards that upstream.
func Compose(ds *climate.Dataset, req Request) Figure {
	if req.Tab == TabHeatwaveDays {
		return composeHeatwaveDays(ds, req.Scenarios)
	}
	if req.View == ViewWarning {
		return composeHWIWarning(ds, climate.Source(req.Category))
	}
	return composeHWIScenario(ds, climate.WarningLevel(req.Category))
}

// composeHWIScenario draws one series per source at the given warning level,
// bridging each projected series back to the observed and historical series
// with connector segments.
func composeHWIScenario(ds *climate.Dataset, lvl climate.WarningLevel) Figure {
	fig := Figure{
		Data:   []Trace{},
		Layout: baseLayout(fmt.Sprintf("HWI — %s", capitalize(string(lvl))), "Gads", "HWI"),
	}

	series := make(map[climate.Source][]climate.HWIRecord, len(climate.SourceOrder))
	for _, src := range climate.SourceOrder {
		series[src] = ds.HWISeries(src, lvl)
	}

	for _, src := range []climate.Source{climate.SourceObservations, climate.SourceHistorical} {
		if recs := series[src]; len(recs) > 0 {
			fig.Data = append(fig.Data, hwiSeriesTrace(src, recs))
		}
	}

	for _, ssp := range climate.SSPSources {
		recs := series[ssp]
		if len(recs) == 0 {
			continue
		}
		fig.Data = append(fig.Data, hwiSeriesTrace(ssp, recs))

		// A connector only exists when both of its endpoints do.
		for _, base := range []climate.Source{climate.SourceObservations, climate.SourceHistorical} {
			baseRecs := series[base]
			if len(baseRecs) == 0 {
				continue
			}
			last := baseRecs[len(baseRecs)-1]
			first := recs[0]
			fig.Data = append(fig.Data, connectorTrace(
				last.Year, last.HWI, first.Year, first.HWI,
				sourceColors[ssp], hwiConnectorWidth,
				connectorGroup(string(ssp), string(base)),
			))
		}
	}

	return fig
}

// composeHWIWarning draws one series per warning level for the given source.
// No connectors: warning levels are severity buckets, not a time-continuous
// provenance split, so there is no historical/projected seam to bridge.
func composeHWIWarning(ds *climate.Dataset, src climate.Source) Figure {
	fig := Figure{
		Data:   []Trace{},
		Layout: baseLayout(fmt.Sprintf("HWI — scenārijs: %s", string(src)), "Gads", "HWI"),
	}

	for _, lvl := range climate.LevelOrder {
		recs := ds.HWISeries(src, lvl)
		if len(recs) == 0 {
			continue
		}
		xs, ys := hwiPoints(recs)
		fig.Data = append(fig.Data, seriesTrace(string(lvl), levelColors[lvl], xs, ys))
	}

	return fig
}

// composeHeatwaveDays draws one series per selected scenario, with
// connectors from the historical and observed series into each selected
// projection. A connector requires its base scenario to be selected as well
// as present in the data.
func composeHeatwaveDays(ds *climate.Dataset, selected []climate.Scenario) Figure {
	fig := Figure{
		Data:   []Trace{},
		Layout: baseLayout("Karstuma viļņu dienas", "Gads", "Dienas"),
	}

	chosen := make(map[climate.Scenario]bool, len(selected))
	for _, s := range selected {
		chosen[s] = true
	}

	series := make(map[climate.Scenario][]climate.HeatwaveDaysRecord, len(climate.ScenarioOrder))
	for _, scen := range climate.ScenarioOrder {
		if !chosen[scen] {
			continue
		}
		recs := ds.DaysSeries(scen)
		if len(recs) == 0 {
			continue
		}
		series[scen] = recs
		xs, ys := daysPoints(recs)
		fig.Data = append(fig.Data, seriesTrace(string(scen), scenarioColors[scen], xs, ys))
	}

	for _, ssp := range climate.SSPScenarios {
		recs := series[ssp]
		if len(recs) == 0 {
			continue
		}
		for _, base := range []climate.Scenario{climate.ScenarioHistorical, climate.ScenarioObs} {
			baseRecs := series[base]
			if len(baseRecs) == 0 {
				continue
			}
			last := baseRecs[len(baseRecs)-1]
			first := recs[0]
			fig.Data = append(fig.Data, connectorTrace(
				last.Year, last.Days, first.Year, first.Days,
				scenarioColors[ssp], daysConnectorWidth,
				connectorGroup(string(ssp), string(base)),
			))
		}
	}

	return fig
}

func hwiSeriesTrace(src climate.Source, recs []climate.HWIRecord) Trace {
	xs, ys := hwiPoints(recs)
	return seriesTrace(string(src), sourceColors[src], xs, ys)
}

func hwiPoints(recs []climate.HWIRecord) ([]int, []float64) {
	xs := make([]int, len(recs))
	ys := make([]float64, len(recs))
	for i, r := range recs {
		xs[i] = r.Year
		ys[i] = r.HWI
	}
	return xs, ys
}

func daysPoints(recs []climate.HeatwaveDaysRecord) ([]int, []float64) {
	xs := make([]int, len(recs))
	ys := make([]float64, len(recs))
	for i, r := range recs {
		xs[i] = r.Year
		ys[i] = r.Days
	}
	return xs, ys
}

func seriesTrace(name, color string, xs []int, ys []float64) Trace {
	return Trace{
		Type:        "scatter",
		X:           xs,
		Y:           ys,
		Mode:        "lines+markers",
		Name:        name,
		Line:        &Line{Color: color},
		Marker:      &Marker{Color: color},
		LegendGroup: name,
		ShowLegend:  true,
	}
}

func connectorTrace(x0 int, y0 float64, x1 int, y1 float64, color string, width float64, group string) Trace {
	return Trace{
		Type:        "scatter",
		X:           []int{x0, x1},
		Y:           []float64{y0, y1},
		Mode:        "lines",
		Line:        &Line{Color: color, Width: width},
		LegendGroup: group,
		ShowLegend:  false,
		HoverInfo:   "skip",
	}
}

// connectorGroup binds a connector to both of its endpoint series so that
// hiding either one also hides the connector.
func connectorGroup(ssp, base string) string {
	return ssp + "__" + base
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
