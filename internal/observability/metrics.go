package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instruments for the dashboard service.
type Metrics struct {
	FigureRequests  *prometheus.CounterVec // labels: tab
	ComposeDuration prometheus.Histogram
	FigureTraces    prometheus.Histogram
	DatasetRows     *prometheus.GaugeVec   // labels: table={hwi,heatwave_days}
	DatasetReloads  *prometheus.CounterVec // labels: outcome={success,error}
}

// NewMetrics creates and registers all instruments with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.FigureRequests,
		m.ComposeDuration,
		m.FigureTraces,
		m.DatasetRows,
		m.DatasetReloads,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics across tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		FigureRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heatwave_dashboard",
			Name:      "figure_requests_total",
			Help:      "Figure compositions served, by tab.",
		}, []string{"tab"}),
		ComposeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "heatwave_dashboard",
			Name:      "figure_compose_duration_seconds",
			Help:      "Time spent composing a figure.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		FigureTraces: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "heatwave_dashboard",
			Name:      "figure_traces",
			Help:      "Number of traces (series plus connectors) per composed figure.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 11, 15},
		}),
		DatasetRows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "heatwave_dashboard",
			Name:      "dataset_rows",
			Help:      "Rows in the current dataset snapshot, by table.",
		}, []string{"table"}),
		DatasetReloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heatwave_dashboard",
			Name:      "dataset_reloads_total",
			Help:      "Dataset reload attempts, by outcome.",
		}, []string{"outcome"}),
	}
}

// ObserveDataset records the row counts of a freshly published snapshot.
func (m *Metrics) ObserveDataset(hwiRows, heatwaveDayRows int) {
	m.DatasetRows.WithLabelValues("hwi").Set(float64(hwiRows))
	m.DatasetRows.WithLabelValues("heatwave_days").Set(float64(heatwaveDayRows))
}
