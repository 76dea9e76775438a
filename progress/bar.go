package progress

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/vgrab-cli/vgrab/color"
	"github.com/vgrab-cli/vgrab/style"
	"github.com/vgrab-cli/vgrab/util"
)

// renderInterval throttles terminal redraws so chunk-sized updates don't
// saturate stdout.
const renderInterval = 100 * time.Millisecond

var (
	filledStyle = style.Fg(color.Green)
	emptyStyle  = style.Faint
	countStyle  = style.Fg(color.Cyan)
)

// Bar is the determinate reporter rendering a proportional progress bar.
type Bar struct {
	total      int64
	current    int64
	lastRender time.Time
}

// NewBar creates a determinate reporter for a known total byte count.
func NewBar(total int64) *Bar {
	return &Bar{total: total}
}

func (b *Bar) Progress(delta int64) {
	b.current += delta
	if time.Since(b.lastRender) < renderInterval {
		return
	}
	b.lastRender = time.Now()
	b.render()
}

func (b *Bar) Finish() {
	b.current = b.total
	b.render()
	fmt.Fprintln(os.Stdout)
}

func (b *Bar) render() {
	width := barWidth()

	ratio := float64(b.current) / float64(b.total)
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))

	fmt.Fprintf(os.Stdout, "\r[%s%s] %3.0f%% %s",
		filledStyle(strings.Repeat("█", filled)),
		emptyStyle(strings.Repeat("░", width-filled)),
		ratio*100,
		countStyle(fmt.Sprintf("%s / %s", util.FormatBytes(uint64(b.current)), util.FormatBytes(uint64(b.total)))),
	)
}

// barWidth sizes the bar to the terminal, leaving room for the counters.
func barWidth() int {
	width, _, err := util.TerminalSize()
	if err != nil || width <= 0 {
		return 30
	}
	return util.Max(10, util.Min(50, width-40))
}
