package main

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/pidgen/internal/batch"
)

// progressMonitor prints a fixed-width row of dots as batch items complete
type progressMonitor struct {
	mu          sync.Mutex
	w           io.Writer
	clock       quartz.Clock
	total       int
	completed   int
	attempts    int
	dotsPrinted int
	startTime   time.Time
}

const progressDots = 40

func newProgressMonitor(w io.Writer, clock quartz.Clock, total int) *progressMonitor {
	fmt.Fprintf(w, "Synthesizing %d: ", total)
	return &progressMonitor{
		w:         w,
		clock:     clock,
		total:     total,
		startTime: clock.Now(),
	}
}

// OnItem is passed as batch.Options.OnItem
func (m *progressMonitor) OnItem(item batch.Item) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.completed++
	m.attempts += item.Attempts

	target := m.completed * progressDots / m.total
	for ; m.dotsPrinted < target; m.dotsPrinted++ {
		fmt.Fprint(m.w, ".")
	}

	if m.completed == m.total {
		elapsed := m.clock.Since(m.startTime)
		rate := 0.0
		if s := elapsed.Seconds(); s > 0 {
			rate = float64(m.attempts) / s
		}
		fmt.Fprintf(m.w, " ✓ %d PIDs in %.1fs (%.0f attempts/sec)\n", m.total, elapsed.Seconds(), rate)
	}
}

// Abort ends the progress line when the batch stops early
func (m *progressMonitor) Abort() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.completed < m.total {
		fmt.Fprintf(m.w, " ✗ stopped after %d/%d\n", m.completed, m.total)
	}
}
