package cli

import (
	"fmt"
	"io"
)

// terminalProgress prints one status line per completed day.
type terminalProgress struct {
	w     io.Writer
	total int
	done  int
}

func newTerminalProgress(w io.Writer) *terminalProgress {
	return &terminalProgress{w: w}
}

func (p *terminalProgress) Start(total int) {
	p.total = total
	p.done = 0
}

func (p *terminalProgress) Step(label string) {
	p.done++
	fmt.Fprintf(p.w, "day %d/%d  %s\n", p.done, p.total, label)
}

func (p *terminalProgress) Done() {
	fmt.Fprintf(p.w, "done (%d days)\n", p.total)
}
