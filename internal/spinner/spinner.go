// Package spinner renders a small animated progress indicator while a
// remote call is in flight.
package spinner

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const frameInterval = 80 * time.Millisecond

// Spinner animates a message on a single terminal line until stopped.
type Spinner struct {
	w        io.Writer
	message  string
	done     chan struct{}
	finished chan struct{}
	stopOnce sync.Once
}

// Start begins animating message on w and returns the running spinner.
func Start(w io.Writer, message string) *Spinner {
	s := &Spinner{
		w:        w,
		message:  message,
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *Spinner) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	i := 0
	for {
		select {
		case <-s.done:
			fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.message)+2)) //nolint:errcheck
			close(s.finished)
			return
		case <-ticker.C:
			fmt.Fprintf(s.w, "\r%s %s", frames[i%len(frames)], s.message) //nolint:errcheck
			i++
		}
	}
}

// Stop halts the animation and clears the line. Safe to call more
// than once; it blocks until the line is cleared.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
	<-s.finished
}
