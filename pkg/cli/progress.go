package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// ProgressReporter reports progress for multi-file operations.
type ProgressReporter interface {
	Start(total int)
	Advance(label string)
	Finish()
}

// SimpleProgress is a single-line text progress reporter.
type SimpleProgress struct {
	mu      sync.Mutex
	total   int
	current int
	writer  io.Writer
}

// NewProgressReporter creates a progress reporter writing to w.
// A nil w defaults to os.Stderr so progress does not mix with results.
func NewProgressReporter(w io.Writer) ProgressReporter {
	if w == nil {
		w = os.Stderr
	}
	return &SimpleProgress{writer: w}
}

// Start sets the total number of items and renders the initial bar.
func (p *SimpleProgress) Start(total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.total = total
	p.current = 0
	p.render("")
}

// Advance marks one more item as done, annotated with its label.
func (p *SimpleProgress) Advance(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current++
	p.render(label)
}

// Finish completes the bar and moves to the next line.
func (p *SimpleProgress) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = p.total
	p.render("")
	fmt.Fprintln(p.writer)
}

func (p *SimpleProgress) render(label string) {
	if p.total == 0 {
		return
	}

	percent := float64(p.current) / float64(p.total) * 100
	barWidth := 30
	filled := int(float64(barWidth) * percent / 100)

	bar := strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled)

	fmt.Fprintf(p.writer, "\r[%s] %d/%d %s", bar, p.current, p.total, label)
}
