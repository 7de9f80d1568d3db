package batch

import (
	"io"
	"os"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// ProgressConfig controls the progress display of a batch
type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

// ProgressBar counts finished files. A disabled bar ignores all calls.
type ProgressBar struct {
	container *mpb.Progress
	bar       *mpb.Bar
}

// NewProgressBar starts a bar of total items labelled description.
func NewProgressBar(config ProgressConfig, total int, description string) *ProgressBar {
	if !config.Enabled || total <= 0 {
		return &ProgressBar{}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
	)

	bar := container.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.NewPercentage("%.1f", decor.WCSyncSpace),
			decor.OnComplete(
				decor.Elapsed(decor.ET_STYLE_GO, decor.WCSyncWidth), " ✓ ",
			),
		),
	)

	return &ProgressBar{container: container, bar: bar}
}

// Increment marks one more file as finished
func (pb *ProgressBar) Increment() {
	if pb.bar != nil {
		pb.bar.Increment()
	}
}

// Wait blocks until the bar has rendered its final state. Abort is
// used when not every file was counted, so Wait never hangs.
func (pb *ProgressBar) Wait() {
	if pb.container == nil {
		return
	}
	if !pb.bar.Completed() {
		pb.bar.Abort(false)
	}
	pb.container.Wait()
}

// IsTTY reports whether writer is an interactive terminal
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// ShouldShowProgress reports whether a progress bar is useful on stderr.
func ShouldShowProgress(forced bool) bool {
	return forced || IsTTY(os.Stderr)
}
