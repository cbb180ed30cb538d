package climate

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Dataset is an immutable snapshot of both loaded tables. Once constructed it
// is never mutated; concurrent readers share the same snapshot. Both tables
// are sorted by ascending year so that first/last lookups are deterministic.
type Dataset struct {
	ID       uuid.UUID
	LoadedAt time.Time

	HWI []HWIRecord

	// HeatwaveDays is empty and HasHeatwaveDays false when the optional
	// heatwave-days file was absent or unreadable at load.
	HeatwaveDays    []HeatwaveDaysRecord
	HasHeatwaveDays bool
}

// NewDataset builds a snapshot from already-parsed records. Rows are sorted
// by year; the caller's slices are kept, not copied.
func NewDataset(hwi []HWIRecord, days []HeatwaveDaysRecord, hasDays bool) *Dataset {
	sort.SliceStable(hwi, func(i, j int) bool { return hwi[i].Year < hwi[j].Year })
	sort.SliceStable(days, func(i, j int) bool { return days[i].Year < days[j].Year })

	return &Dataset{
		ID:              uuid.New(),
		LoadedAt:        time.Now().UTC(),
		HWI:             hwi,
		HeatwaveDays:    days,
		HasHeatwaveDays: hasDays,
	}
}

// HWISeries returns the points for one source at one warning level, ordered
// by ascending year.
func (d *Dataset) HWISeries(src Source, lvl WarningLevel) []HWIRecord {
	var out []HWIRecord
	for _, r := range d.HWI {
		if r.Source == src && r.Level == lvl {
			out = append(out, r)
		}
	}
	return out
}

// DaysSeries returns the heatwave-day points for one scenario, ordered by
// ascending year.
func (d *Dataset) DaysSeries(scen Scenario) []HeatwaveDaysRecord {
	var out []HeatwaveDaysRecord
	for _, r := range d.HeatwaveDays {
		if r.Scenario == scen {
			out = append(out, r)
		}
	}
	return out
}
