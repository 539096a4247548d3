package service

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-light-client/models"
)

// MetricsSubsystem is a subsystem shared by all metrics exposed by this package.
const MetricsSubsystem = "sync"

// Metrics contains metrics exposed by this package.
type Metrics struct {
	SyncedBlockHeight     metrics.Gauge
	SyncSteps             metrics.Counter
	SyncFailures          metrics.Counter
	CommittedNotes        metrics.Counter
	ConsumedNotes         metrics.Counter
	DiscardedTransactions metrics.Counter
	MismatchedAccounts    metrics.Counter
}

// PrometheusMetrics returns Metrics registered with the default Prometheus
// registry. Optionally, labels can be provided along with their values
// ("foo", "fooValue").
func PrometheusMetrics(namespace string, labelsAndValues ...string) *Metrics {
	labels := []string{}
	for i := 0; i < len(labelsAndValues); i += 2 {
		labels = append(labels, labelsAndValues[i])
	}
	return &Metrics{
		SyncedBlockHeight: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "synced_block_height",
			Help:      "The highest block the client state is synced to.",
		}, labels).With(labelsAndValues...),
		SyncSteps: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "steps",
			Help:      "The number of applied sync steps.",
		}, labels).With(labelsAndValues...),
		SyncFailures: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "failures",
			Help:      "The number of sync runs that ended with an error.",
		}, labels).With(labelsAndValues...),
		CommittedNotes: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "committed_notes",
			Help:      "The number of notes seen committed, new public notes included.",
		}, labels).With(labelsAndValues...),
		ConsumedNotes: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "consumed_notes",
			Help:      "The number of notes seen consumed.",
		}, labels).With(labelsAndValues...),
		DiscardedTransactions: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "discarded_transactions",
			Help:      "The number of local transactions discarded by the chain.",
		}, labels).With(labelsAndValues...),
		MismatchedAccounts: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "mismatched_accounts",
			Help:      "The number of private account hashes matching no local state.",
		}, labels).With(labelsAndValues...),
	}
}

// NopMetrics returns no-op Metrics.
func NopMetrics() *Metrics {
	return &Metrics{
		SyncedBlockHeight:     discard.NewGauge(),
		SyncSteps:             discard.NewCounter(),
		SyncFailures:          discard.NewCounter(),
		CommittedNotes:        discard.NewCounter(),
		ConsumedNotes:         discard.NewCounter(),
		DiscardedTransactions: discard.NewCounter(),
		MismatchedAccounts:    discard.NewCounter(),
	}
}

func (m *Metrics) observe(summary models.SyncSummary) {
	m.CommittedNotes.Add(float64(len(summary.CommittedNotes) + len(summary.NewPublicNotes)))
	m.ConsumedNotes.Add(float64(len(summary.ConsumedNotes)))
	m.DiscardedTransactions.Add(float64(len(summary.DiscardedTransactions)))
	m.MismatchedAccounts.Add(float64(len(summary.MismatchedAccounts)))
}
