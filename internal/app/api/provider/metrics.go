package provider

import (
	"context"
	"time"

	"cn7-transcriptor/internal/app/api"
	"cn7-transcriptor/internal/app/errors"
	"cn7-transcriptor/internal/app/metrics"
	"cn7-transcriptor/internal/app/model"
)

const outcomeSuccess = "success"

// Instrumented records metrics around a Transcriber. It never retries and
// returns exactly what the wrapped backend returned.
type Instrumented struct {
	next    api.Transcriber
	metrics *metrics.Metrics
}

// NewInstrumented wraps next.
func NewInstrumented(next api.Transcriber, m *metrics.Metrics) *Instrumented {
	return &Instrumented{next: next, metrics: m}
}

// Name implements api.Transcriber.
func (i *Instrumented) Name() string {
	return i.next.Name()
}

// Transcribe implements api.Transcriber.
func (i *Instrumented) Transcribe(ctx context.Context, file *model.MediaFile) (string, error) {
	start := time.Now()
	text, err := i.next.Transcribe(ctx, file)

	outcome := outcomeSuccess
	if err != nil {
		outcome = string(errors.KindOf(err))
		if outcome == "" {
			outcome = "error"
		}
	}

	if file != nil {
		i.metrics.ObserveTranscription(i.next.Name(), string(file.Kind()), outcome, time.Since(start).Seconds(), file.Size())
	}
	return text, err
}
