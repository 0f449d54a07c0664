// Package metrics exposes Prometheus collectors for transcriptions, preview
// handles and sessions.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cn7"

// Metrics groups the collectors. Each instance owns its registry so tests
// can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	transcriptionsTotal   *prometheus.CounterVec
	transcriptionDuration *prometheus.HistogramVec
	mediaBytes            *prometheus.HistogramVec
	previewHandles        prometheus.Gauge
	sessionsActive        prometheus.Gauge
	rejectedFiles         prometheus.Counter
}

// New creates and registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transcriptionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transcriptions_total",
				Help:      "Total number of transcription requests by outcome",
			},
			[]string{"provider", "outcome"}, // outcome: success or a failure kind
		),
		transcriptionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "transcription_duration_seconds",
				Help:      "Duration of remote transcription calls in seconds",
				Buckets:   []float64{1, 2.5, 5, 10, 30, 60, 120, 300, 600},
			},
			[]string{"provider"},
		),
		mediaBytes: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "media_bytes",
				Help:      "Size of media files submitted for transcription",
				Buckets:   prometheus.ExponentialBuckets(64*1024, 4, 8),
			},
			[]string{"kind"},
		),
		previewHandles: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "preview_handles_live",
				Help:      "Number of preview handles not yet released",
			},
		),
		sessionsActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "sessions_active",
				Help:      "Number of open sessions",
			},
		),
		rejectedFiles: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rejected_files_total",
				Help:      "Files rejected because of their declared media type",
			},
		),
	}

	m.registry.MustRegister(
		m.transcriptionsTotal,
		m.transcriptionDuration,
		m.mediaBytes,
		m.previewHandles,
		m.sessionsActive,
		m.rejectedFiles,
	)
	return m
}

// ObserveTranscription records one finished call. outcome is "success" or a
// failure kind.
func (m *Metrics) ObserveTranscription(provider, kind, outcome string, seconds float64, size int64) {
	if m == nil {
		return
	}
	m.transcriptionsTotal.WithLabelValues(provider, outcome).Inc()
	m.transcriptionDuration.WithLabelValues(provider).Observe(seconds)
	m.mediaBytes.WithLabelValues(kind).Observe(float64(size))
}

func (m *Metrics) PreviewAcquired() {
	if m != nil {
		m.previewHandles.Inc()
	}
}

func (m *Metrics) PreviewReleased() {
	if m != nil {
		m.previewHandles.Dec()
	}
}

func (m *Metrics) SessionOpened() {
	if m != nil {
		m.sessionsActive.Inc()
	}
}

func (m *Metrics) SessionClosed() {
	if m != nil {
		m.sessionsActive.Dec()
	}
}

func (m *Metrics) FileRejected() {
	if m != nil {
		m.rejectedFiles.Inc()
	}
}

// Registry returns the registry backing this instance.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
