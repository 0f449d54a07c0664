package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_PreviewGauge(t *testing.T) {
	m := New()

	m.PreviewAcquired()
	m.PreviewAcquired()
	m.PreviewReleased()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.previewHandles))
}

func TestMetrics_ObserveTranscription(t *testing.T) {
	m := New()

	m.ObserveTranscription("gemini", "audio", "success", 1.5, 2048)
	m.ObserveTranscription("gemini", "video", "remote_failure", 0.5, 4096)
	m.ObserveTranscription("gemini", "audio", "success", 2.5, 1024)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.transcriptionsTotal.WithLabelValues("gemini", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transcriptionsTotal.WithLabelValues("gemini", "remote_failure")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.PreviewAcquired()
		m.PreviewReleased()
		m.SessionOpened()
		m.SessionClosed()
		m.FileRejected()
		m.ObserveTranscription("gemini", "audio", "success", 1, 1)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.FileRejected()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cn7_rejected_files_total 1")
}
