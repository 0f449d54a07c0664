package converter

import (
	"context"
	"path/filepath"

	"cn7-transcriptor/internal/app/api"
	"cn7-transcriptor/internal/app/errors"
	"cn7-transcriptor/internal/app/export"
	"cn7-transcriptor/internal/app/media"
	"cn7-transcriptor/internal/app/model"
	"cn7-transcriptor/internal/app/preview"
	"cn7-transcriptor/internal/app/session"
	"cn7-transcriptor/internal/app/util/files"
	"go.uber.org/zap"
)

// Options controls one conversion.
type Options struct {
	// MIMEType overrides the type derived from the file extension.
	MIMEType string
	// Output is a file or directory for the transcript; see export.ResolvePath.
	Output string
	// SkipWrite leaves the transcript unwritten; it is still returned.
	SkipWrite bool
	// MaxBytes caps the input size; <= 0 means no cap.
	MaxBytes int64
}

// Result is what a conversion produced.
type Result struct {
	Text       string
	OutputPath string
	File       model.FileInfo
}

// Converter transcribes a single local file through a session, the same way
// the HTTP API does.
type Converter struct {
	transcriber api.Transcriber
	previews    *preview.Manager
	progress    ProgressConfig
	logger      *zap.Logger
}

func NewConverter(transcriber api.Transcriber, previews *preview.Manager, progress ProgressConfig, logger *zap.Logger) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{
		transcriber: transcriber,
		previews:    previews,
		progress:    progress,
		logger:      logger,
	}
}

// Do reads inputPath, validates its declared type, transcribes it and writes
// the transcript. A transcription failure is returned as its *errors.Failure.
func (c *Converter) Do(ctx context.Context, inputPath string, opts Options) (*Result, error) {
	mimeType := opts.MIMEType
	if mimeType == "" {
		mimeType = media.MIMETypeFromFilename(inputPath)
	}
	if _, err := media.Validate(mimeType); err != nil {
		return nil, err
	}

	data, err := files.ReadLimited(inputPath, opts.MaxBytes)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileReadFailed.Error())
	}

	s := session.New(c.transcriber, c.previews, c.logger)
	defer s.Close()

	snap, err := s.SelectFile(filepath.Base(inputPath), mimeType, data)
	if err != nil {
		return nil, err
	}

	spinner := StartSpinner(c.progress, "Transcrevendo "+snap.File.Name)
	snap, err = s.StartTranscription(ctx)
	spinner.Stop(err == nil && snap.Phase == model.PhaseSucceeded)
	if err != nil {
		return nil, err
	}

	if snap.Phase != model.PhaseSucceeded {
		return nil, &errors.Failure{Kind: errors.Kind(snap.FailureKind), Message: snap.Error}
	}

	result := &Result{Text: snap.Text, File: *snap.File}
	if opts.SkipWrite {
		return result, nil
	}

	path, err := export.WriteTranscript(opts.Output, snap.Text)
	if err != nil {
		return nil, err
	}
	result.OutputPath = path
	c.logger.Info("transcript written", zap.String("path", path))
	return result, nil
}
