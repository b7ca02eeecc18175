// timecontrol.go specifies the TimeControl external collaborator, per
// spec section 6. Position never calls into it; it is exposed purely so
// callers share one vocabulary for clock bookkeeping.

package shogo

import "time"

// TimeControl tracks one player's clock: remaining main time, byoyomi
// (the per-move grace period after main time is exhausted), and a
// per-move increment (Fischer-style). It is independent of Position and
// is never consulted from inside move generation or make/unmake.
type TimeControl struct {
	Main     time.Duration
	Byoyomi  time.Duration
	Increment time.Duration

	remaining time.Duration
	inByoyomi bool
}

// NewTimeControl returns a TimeControl with its remaining main time set
// to main.
func NewTimeControl(main, byoyomi, increment time.Duration) *TimeControl {
	return &TimeControl{Main: main, Byoyomi: byoyomi, Increment: increment, remaining: main}
}

// Consume deducts elapsed time from the clock, entering byoyomi once main
// time is exhausted.
func (tc *TimeControl) Consume(elapsed time.Duration) {
	if tc.inByoyomi {
		tc.remaining -= elapsed
		return
	}
	tc.remaining -= elapsed
	if tc.remaining <= 0 {
		tc.inByoyomi = true
		tc.remaining = tc.Byoyomi
	}
}

// IncrementAfterMove adds the per-move increment once a move completes,
// unless the clock is already running on byoyomi (byoyomi resets instead
// of accumulating, matching standard shogi clock rules).
func (tc *TimeControl) IncrementAfterMove() {
	if tc.inByoyomi {
		tc.remaining = tc.Byoyomi
		return
	}
	tc.remaining += tc.Increment
}

// IsFlagFallen reports whether the player has run out of time.
func (tc *TimeControl) IsFlagFallen() bool {
	return tc.remaining <= 0
}

// Remaining returns the time left on the clock (main time, or byoyomi
// once entered).
func (tc *TimeControl) Remaining() time.Duration { return tc.remaining }

// InByoyomi reports whether the clock has exhausted main time.
func (tc *TimeControl) InByoyomi() bool { return tc.inByoyomi }
