// Package observability provides Prometheus metrics for the calculators and scenario store.
package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "revenue_lab"

// Metrics holds all Prometheus metrics for the application.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// Calculator metrics
	MetricsComputed *prometheus.CounterVec

	// Scenario store metrics
	ScenariosSaved    prometheus.Counter
	SavesRejected     prometheus.Counter
	ScenariosDeleted  prometheus.Counter
	LoadFailures      *prometheus.CounterVec
	SavedScenarios    prometheus.Gauge
	ScenarioWriteErrs prometheus.Counter

	// Reporting metrics
	ReportsGenerated *prometheus.CounterVec

	// Storage metrics
	KVOpDuration *prometheus.HistogramVec
	KVOpErrors   *prometheus.CounterVec
}

// NewMetrics creates a Metrics instance registered on its own registry.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		MetricsComputed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "calculator",
			Name:      "computations_total",
			Help:      "Total number of calculator evaluations by calculator",
		}, []string{"calculator"}),

		ScenariosSaved: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scenarios",
			Name:      "saved_total",
			Help:      "Total number of scenarios saved",
		}),
		SavesRejected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scenarios",
			Name:      "saves_rejected_total",
			Help:      "Total number of saves ignored because the name was blank",
		}),
		ScenariosDeleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scenarios",
			Name:      "deleted_total",
			Help:      "Total number of scenarios deleted",
		}),
		LoadFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scenarios",
			Name:      "load_failures_total",
			Help:      "Total number of persisted collections that could not be loaded, by reason",
		}, []string{"reason"}),
		SavedScenarios: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scenarios",
			Name:      "saved",
			Help:      "Current number of saved scenarios",
		}),
		ScenarioWriteErrs: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scenarios",
			Name:      "write_errors_total",
			Help:      "Total number of failed writes of the scenario collection",
		}),

		ReportsGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reporting",
			Name:      "reports_generated_total",
			Help:      "Total number of reports generated by format",
		}, []string{"format"}),

		KVOpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "kv_operation_duration_seconds",
			Help:      "Key-value backend operation duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"backend", "operation"}),
		KVOpErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "kv_operation_errors_total",
			Help:      "Total number of key-value backend errors",
		}, []string{"backend", "operation"}),
	}
}

// WriteTextfile writes the current metric values in text exposition format to path,
// for pickup by the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

// RecordComputation increments the evaluation counter for a calculator.
func (m *Metrics) RecordComputation(calculator string) {
	if m == nil {
		return
	}
	m.MetricsComputed.WithLabelValues(calculator).Inc()
}

// RecordSave records a successful save and the resulting collection size.
func (m *Metrics) RecordSave(total int) {
	if m == nil {
		return
	}
	m.ScenariosSaved.Inc()
	m.SavedScenarios.Set(float64(total))
}

// RecordSaveRejected records a save ignored for a blank name.
func (m *Metrics) RecordSaveRejected() {
	if m == nil {
		return
	}
	m.SavesRejected.Inc()
}

// RecordDelete records a deletion and the resulting collection size.
func (m *Metrics) RecordDelete(total int) {
	if m == nil {
		return
	}
	m.ScenariosDeleted.Inc()
	m.SavedScenarios.Set(float64(total))
}

// RecordLoad records the size of a freshly loaded collection.
func (m *Metrics) RecordLoad(total int) {
	if m == nil {
		return
	}
	m.SavedScenarios.Set(float64(total))
}

// RecordLoadFailure records a collection that fell back to empty.
func (m *Metrics) RecordLoadFailure(reason string) {
	if m == nil {
		return
	}
	m.LoadFailures.WithLabelValues(reason).Inc()
}

// RecordWriteError records a failed collection write.
func (m *Metrics) RecordWriteError() {
	if m == nil {
		return
	}
	m.ScenarioWriteErrs.Inc()
}

// RecordReport records a generated report.
func (m *Metrics) RecordReport(format string) {
	if m == nil {
		return
	}
	m.ReportsGenerated.WithLabelValues(format).Inc()
}

// RecordKVOp records key-value backend operation metrics.
func (m *Metrics) RecordKVOp(backend, operation string, seconds float64, err error) {
	if m == nil {
		return
	}
	m.KVOpDuration.WithLabelValues(backend, operation).Observe(seconds)
	if err != nil {
		m.KVOpErrors.WithLabelValues(backend, operation).Inc()
	}
}
