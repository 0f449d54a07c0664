package testutil

import (
	"context"

	"cn7-transcriptor/internal/app/model"
	"github.com/stretchr/testify/mock"
)

// MockTranscriber is a testify mock of api.Transcriber.
type MockTranscriber struct {
	mock.Mock

	// NameValue is returned by Name; defaults to "mock".
	NameValue string

	// Gate, when non-nil, holds every call until it is closed or receives.
	Gate chan struct{}
	// Started receives once per call before waiting on Gate.
	Started chan struct{}
}

// NewMockTranscriber creates a MockTranscriber with buffered signalling.
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{
		NameValue: "mock",
		Started:   make(chan struct{}, 16),
	}
}

// Name implements api.Transcriber.
func (m *MockTranscriber) Name() string {
	if m.NameValue == "" {
		return "mock"
	}
	return m.NameValue
}

// Transcribe implements api.Transcriber.
func (m *MockTranscriber) Transcribe(ctx context.Context, file *model.MediaFile) (string, error) {
	if m.Started != nil {
		select {
		case m.Started <- struct{}{}:
		default:
		}
	}
	if m.Gate != nil {
		select {
		case <-m.Gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}
