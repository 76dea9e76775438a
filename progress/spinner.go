package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/vgrab-cli/vgrab/color"
	"github.com/vgrab-cli/vgrab/style"
	"github.com/vgrab-cli/vgrab/util"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

var spinnerStyle = style.Fg(color.Purple)

// Spinner is the indeterminate reporter for transfers without a declared
// content length. It renders a heartbeat frame plus the running byte count.
type Spinner struct {
	current    int64
	frame      int
	lastRender time.Time
}

// NewSpinner creates an indeterminate reporter.
func NewSpinner() *Spinner {
	return &Spinner{}
}

func (s *Spinner) Progress(delta int64) {
	s.current += delta
	if time.Since(s.lastRender) < renderInterval {
		return
	}
	s.lastRender = time.Now()

	s.frame = (s.frame + 1) % len(spinnerFrames)
	fmt.Fprintf(os.Stdout, "\r%s %s",
		spinnerStyle(spinnerFrames[s.frame]),
		util.FormatBytes(uint64(s.current)),
	)
}

func (s *Spinner) Finish() {
	fmt.Fprintf(os.Stdout, "\r%s downloaded\n", util.FormatBytes(uint64(s.current)))
}
