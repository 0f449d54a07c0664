package model

// Phase is the transcription lifecycle of a session.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseLoading   Phase = "loading"
	PhaseSucceeded Phase = "succeeded"
	PhaseFailed    Phase = "failed"
)

// Lifecycle carries the phase plus the payload of the terminal phases:
// Text is set only when Succeeded, Error and FailureKind only when Failed.
type Lifecycle struct {
	Phase       Phase  `json:"phase"`
	Text        string `json:"text,omitempty"`
	Error       string `json:"error,omitempty"`
	FailureKind string `json:"failure_kind,omitempty"`
}

func Idle() Lifecycle    { return Lifecycle{Phase: PhaseIdle} }
func Loading() Lifecycle { return Lifecycle{Phase: PhaseLoading} }

func Succeeded(text string) Lifecycle {
	return Lifecycle{Phase: PhaseSucceeded, Text: text}
}

func Failed(kind, message string) Lifecycle {
	return Lifecycle{Phase: PhaseFailed, Error: message, FailureKind: kind}
}

// IsLoading reports whether a transcription is in flight.
func (l Lifecycle) IsLoading() bool { return l.Phase == PhaseLoading }

// Snapshot is a read-only view of a session for the presentation layer.
type Snapshot struct {
	File          *FileInfo `json:"file,omitempty"`
	PreviewHandle string    `json:"preview_handle,omitempty"`
	Lifecycle
}
