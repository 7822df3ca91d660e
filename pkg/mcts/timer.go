package mcts

import (
	"time"
)

type searchTimer struct {
	start    time.Time
	duration time.Duration
}

func newSearchTimer() searchTimer {
	return searchTimer{time.Now(), -1}
}

// Check if this timer has ended
func (t *searchTimer) isEnd() bool {
	return t.duration > 0 && time.Since(t.start) >= t.duration
}

// Elapsed time since the timer started, in milliseconds, never zero
func (t *searchTimer) deltatime() int {
	return max(int(time.Since(t.start).Milliseconds()), 1)
}

// In milliseconds, negative disables the deadline
func (t *searchTimer) movetime(movetime int) {
	if movetime < 0 {
		t.duration = -1
	} else {
		t.duration = time.Duration(movetime) * time.Millisecond
	}
}
