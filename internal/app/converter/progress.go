package converter

import (
	"io"
	"os"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

// Spinner shows elapsed time while the remote call is in flight. The call
// reports no progress of its own, so there is nothing to count.
type Spinner struct {
	container *mpb.Progress
	bar       *mpb.Bar
	enabled   bool
}

func StartSpinner(config ProgressConfig, description string) *Spinner {
	if !config.Enabled {
		return &Spinner{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
	)
	bar := container.AddSpinner(0,
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Elapsed(decor.ET_STYLE_GO), "✓"),
		),
	)

	return &Spinner{
		container: container,
		bar:       bar,
		enabled:   true,
	}
}

// Stop ends the spinner, marking it complete when ok is true.
func (s *Spinner) Stop(ok bool) {
	if !s.enabled || s.bar == nil {
		return
	}
	if ok {
		s.bar.SetTotal(s.bar.Current(), true)
	} else {
		s.bar.Abort(false)
	}
	s.container.Wait()
}

func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}

	return IsTTY(os.Stderr)
}
