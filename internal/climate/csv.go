package climate

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// Accepted layouts for the HWI "time" column. The upstream NetCDF export
// writes plain dates; older exports carried a midnight timestamp.
var timeLayouts = []string{"2006-01-02", "2006-01-02 15:04:05", time.RFC3339}

// LoadDataset reads both CSV tables and builds an immutable snapshot.
//
// The HWI table is required; any open or header error is returned. The
// heatwave-days table is optional: if it cannot be opened or its header is
// unusable, the snapshot is built without it and HasHeatwaveDays is false.
// In both tables, rows with a missing or NaN value column are dropped, as
// are rows with unknown source/scenario/level labels (logged at warn).
func LoadDataset(logger *slog.Logger, hwiPath, daysPath string) (*Dataset, error) {
	hwi, err := loadHWI(logger, hwiPath)
	if err != nil {
		return nil, fmt.Errorf("load hwi table: %w", err)
	}

	days, err := loadHeatwaveDays(logger, daysPath)
	hasDays := err == nil
	if err != nil {
		logger.Warn("heatwave-days table unavailable; tab will be disabled",
			"path", daysPath, "error", err)
		days = nil
	}

	ds := NewDataset(hwi, days, hasDays)
	logger.Info("dataset loaded",
		"snapshot_id", ds.ID,
		"hwi_rows", len(ds.HWI),
		"heatwave_day_rows", len(ds.HeatwaveDays),
		"has_heatwave_days", ds.HasHeatwaveDays)
	return ds, nil
}

func loadHWI(logger *slog.Logger, path string) ([]HWIRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := columnIndex(header, "time", "source", "warning_level", "hwi")
	if err != nil {
		return nil, err
	}

	var records []HWIRecord
	line := 1
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			logger.Warn("skipping malformed hwi row", "line", line, "error", err)
			continue
		}

		value, ok := parseValue(row[cols["hwi"]])
		if !ok {
			continue // missing hwi, dropped by design
		}

		year, err := parseYear(row[cols["time"]])
		if err != nil {
			logger.Warn("skipping hwi row with bad time", "line", line, "value", row[cols["time"]])
			continue
		}

		src := Source(strings.TrimSpace(row[cols["source"]]))
		lvl := WarningLevel(strings.TrimSpace(row[cols["warning_level"]]))
		if !knownSource(src) {
			logger.Warn("skipping hwi row with unknown source", "line", line, "source", string(src))
			continue
		}
		if !knownLevel(lvl) {
			logger.Warn("skipping hwi row with unknown warning level", "line", line, "warning_level", string(lvl))
			continue
		}

		records = append(records, HWIRecord{Year: year, Source: src, Level: lvl, HWI: value})
	}

	return records, nil
}

func loadHeatwaveDays(logger *slog.Logger, path string) ([]HeatwaveDaysRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := columnIndex(header, "year", "scenario", "heatwave_days")
	if err != nil {
		return nil, err
	}

	var records []HeatwaveDaysRecord
	line := 1
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			logger.Warn("skipping malformed heatwave-days row", "line", line, "error", err)
			continue
		}

		value, ok := parseValue(row[cols["heatwave_days"]])
		if !ok {
			continue
		}

		// Year arrives as an integer or a float like "2000.0"; coerce.
		yearRaw, ok := parseValue(row[cols["year"]])
		if !ok {
			logger.Warn("skipping heatwave-days row with bad year", "line", line, "value", row[cols["year"]])
			continue
		}

		scen := Scenario(strings.TrimSpace(row[cols["scenario"]]))
		if !knownScenario(scen) {
			logger.Warn("skipping heatwave-days row with unknown scenario", "line", line, "scenario", string(scen))
			continue
		}

		records = append(records, HeatwaveDaysRecord{Year: int(yearRaw), Scenario: scen, Days: value})
	}

	return records, nil
}

// columnIndex maps required column names to their positions in the header.
func columnIndex(header []string, names ...string) (map[string]int, error) {
	idx := make(map[string]int, len(names))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}

	out := make(map[string]int, len(names))
	for _, name := range names {
		i, ok := idx[name]
		if !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
		out[name] = i
	}
	return out, nil
}

// parseValue parses a float cell, reporting ok=false for empty, "NA"/"NaN",
// or unparseable cells so callers can drop the row.
func parseValue(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "na") || strings.EqualFold(s, "nan") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func parseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Year(), nil
		}
	}
	// Some exports hold a bare year.
	if y, err := strconv.Atoi(s); err == nil {
		return y, nil
	}
	return 0, fmt.Errorf("unrecognized time value %q", s)
}
