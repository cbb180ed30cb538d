package climate

// Source identifies the provenance of an HWI record: the observed station
// record, the historical model reconstruction, or one of the SSP emission
// pathways.
type Source string

const (
	SourceObservations Source = "observations"
	SourceHistorical   Source = "historical"
	SourceSSP126       Source = "ssp126"
	SourceSSP245       Source = "ssp245"
	SourceSSP370       Source = "ssp370"
)

// SourceOrder is the fixed drawing order for HWI series.
var SourceOrder = []Source{
	SourceObservations,
	SourceHistorical,
	SourceSSP126,
	SourceSSP245,
	SourceSSP370,
}

// SSPSources are the projected pathways, in drawing order.
var SSPSources = []Source{SourceSSP126, SourceSSP245, SourceSSP370}

// Scenario identifies the provenance of a heatwave-days record. The
// heatwave-days table abbreviates the observed record as "obs" where the HWI
// table spells out "observations".
type Scenario string

const (
	ScenarioObs        Scenario = "obs"
	ScenarioHistorical Scenario = "historical"
	ScenarioSSP126     Scenario = "ssp126"
	ScenarioSSP245     Scenario = "ssp245"
	ScenarioSSP370     Scenario = "ssp370"
)

// ScenarioOrder is the fixed drawing order for heatwave-days series.
var ScenarioOrder = []Scenario{
	ScenarioObs,
	ScenarioHistorical,
	ScenarioSSP126,
	ScenarioSSP245,
	ScenarioSSP370,
}

// SSPScenarios are the projected pathways of the heatwave-days table.
var SSPScenarios = []Scenario{ScenarioSSP126, ScenarioSSP245, ScenarioSSP370}

// WarningLevel is the categorical severity bucket of a heat event.
type WarningLevel string

const (
	LevelYellow WarningLevel = "yellow"
	LevelOrange WarningLevel = "orange"
	LevelRed    WarningLevel = "red"
)

// LevelOrder is the fixed drawing order for warning-level series.
var LevelOrder = []WarningLevel{LevelYellow, LevelOrange, LevelRed}

// HWIRecord is one yearly Heat Wave Index reading for a source and warning
// level.
type HWIRecord struct {
	Year   int          `json:"year"`
	Source Source       `json:"source"`
	Level  WarningLevel `json:"warning_level"`
	HWI    float64      `json:"hwi"`
}

// HeatwaveDaysRecord is one yearly heatwave-day count for a scenario.
type HeatwaveDaysRecord struct {
	Year     int      `json:"year"`
	Scenario Scenario `json:"scenario"`
	Days     float64  `json:"heatwave_days"`
}

func knownSource(s Source) bool {
	for _, src := range SourceOrder {
		if s == src {
			return true
		}
	}
	return false
}

func knownScenario(s Scenario) bool {
	for _, scen := range ScenarioOrder {
		if s == scen {
			return true
		}
	}
	return false
}

func knownLevel(l WarningLevel) bool {
	for _, lvl := range LevelOrder {
		if l == lvl {
			return true
		}
	}
	return false
}
