// Package chart composes declarative figure descriptions from dataset
// snapshots. A Figure serializes into the {data, layout} shape the Plotly
// frontend consumes directly, so the composer stays independent of any
// rendering concern beyond trace order, color, and legend grouping.
package chart

// Figure is an ordered list of drawable traces plus layout metadata.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is a single drawable element: either a named data series
// (lines+markers, legend entry) or an anonymous connector segment
// (lines only, no legend entry, hover skipped).
type Trace struct {
	Type        string    `json:"type"`
	X           []int     `json:"x"`
	Y           []float64 `json:"y"`
	Mode        string    `json:"mode"`
	Name        string    `json:"name,omitempty"`
	Line        *Line     `json:"line,omitempty"`
	Marker      *Marker   `json:"marker,omitempty"`
	LegendGroup string    `json:"legendgroup,omitempty"`
	ShowLegend  bool      `json:"showlegend"`
	HoverInfo   string    `json:"hoverinfo,omitempty"`
}

// Line styles the stroke of a trace.
type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
}

// Marker styles the point markers of a trace.
type Marker struct {
	Color string `json:"color,omitempty"`
}

// Layout carries the chart title, axes, and frame styling.
type Layout struct {
	Title      Title  `json:"title"`
	XAxis      Axis   `json:"xaxis"`
	YAxis      Axis   `json:"yaxis"`
	HoverMode  string `json:"hovermode"`
	PlotBG     string `json:"plot_bgcolor"`
	PaperBG    string `json:"paper_bgcolor"`
	Margin     Margin `json:"margin"`
	Height     int    `json:"height"`
	Legend     Legend `json:"legend"`
	ShowLegend bool   `json:"showlegend"`
}

// Title wraps a text label the way Plotly nests it.
type Title struct {
	Text string `json:"text"`
}

// Axis describes one chart axis.
type Axis struct {
	Title     Title  `json:"title"`
	ShowGrid  bool   `json:"showgrid"`
	GridColor string `json:"gridcolor"`
}

// Margin is the plot margin in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// Legend configures legend behavior. GroupClick "toggleitem" keeps legend
// entries individually toggleable while connectors, which share a legend
// group with their endpoint series but show no entry of their own, follow
// the visibility of that group.
type Legend struct {
	Title      Title  `json:"title"`
	GroupClick string `json:"groupclick"`
}

// baseLayout applies the frame styling shared by every view: white
// background, light gridlines, unified hover, and the fixed chart height.
func baseLayout(title, xTitle, yTitle string) Layout {
	return Layout{
		Title:      Title{Text: title},
		XAxis:      Axis{Title: Title{Text: xTitle}, ShowGrid: true, GridColor: "lightgray"},
		YAxis:      Axis{Title: Title{Text: yTitle}, ShowGrid: true, GridColor: "lightgray"},
		HoverMode:  "x unified",
		PlotBG:     "white",
		PaperBG:    "white",
		Margin:     Margin{L: 40, R: 40, T: 60, B: 40},
		Height:     620,
		Legend:     Legend{GroupClick: "toggleitem"},
		ShowLegend: true,
	}
}
