package api

import (
	"context"

	"cn7-transcriptor/internal/app/model"
)

// Transcriber turns one media file into formatted transcript text.
//
// On success the text is non-empty. Failures are *errors.Failure values of
// kind EmptyResponse, RemoteFailure or UnknownFailure. Implementations do
// not retry and keep nothing between calls; callers serialize submissions.
type Transcriber interface {
	Transcribe(ctx context.Context, file *model.MediaFile) (string, error)

	// Name identifies the backend in logs and metrics.
	Name() string
}
