package cmd

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/khanhnv2901/scorecheck/internal/checker"
)

type progressPrinter struct {
	out      io.Writer
	total    int
	name     string
	mu       sync.Mutex
	passed   int
	failed   int
	errored  int
	duration time.Duration
	updates  chan struct{}
	done     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
}

func newProgressPrinter(out io.Writer, total int, name string) *progressPrinter {
	if total <= 0 {
		total = 1
	}
	return &progressPrinter{
		out:     out,
		total:   total,
		name:    name,
		updates: make(chan struct{}, 1),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

func (p *progressPrinter) Start() {
	go p.loop()
}

// Observe records one completed check. It matches checker.ResultFunc.
func (p *progressPrinter) Observe(res checker.BatchResult) {
	p.mu.Lock()
	switch res.Status() {
	case "pass":
		p.passed++
	case "fail":
		p.failed++
	default:
		p.errored++
	}
	p.duration += res.Duration
	p.mu.Unlock()

	select {
	case p.updates <- struct{}{}:
	default:
	}
}

// Stop halts the refresh loop and prints the final line.
func (p *progressPrinter) Stop() {
	p.stopOnce.Do(func() {
		close(p.done)
		<-p.stopped
		fmt.Fprintf(p.out, "\r%s\r", strings.Repeat(" ", 80))
		p.print()
		fmt.Fprintln(p.out)
	})
}

func (p *progressPrinter) loop() {
	defer close(p.stopped)
	ticker := time.NewTicker(300 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-p.updates:
			p.print()
		case <-ticker.C:
			p.print()
		case <-p.done:
			return
		}
	}
}

func (p *progressPrinter) print() {
	p.mu.Lock()
	passed, failed, errored := p.passed, p.failed, p.errored
	dur := p.duration
	p.mu.Unlock()

	completed := passed + failed + errored
	total := p.total
	if completed > total {
		total = completed
	}

	percent := (float64(completed) / float64(total)) * 100
	avg := 0.0
	if completed > 0 {
		avg = dur.Seconds() / float64(completed)
	}

	fmt.Fprintf(p.out, "\r[%s] Progress: %d/%d (%.1f%%) Pass:%d Fail:%d Error:%d Avg:%.2fs",
		p.name, completed, total, percent, passed, failed, errored, avg)
}
