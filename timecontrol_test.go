package shogo

import (
	"testing"
	"time"
)

func TestTimeControlConsumeWithinMainTime(t *testing.T) {
	tc := NewTimeControl(10*time.Second, 5*time.Second, 0)
	tc.Consume(3 * time.Second)
	if tc.InByoyomi() {
		t.Fatalf("should still be within main time")
	}
	if tc.Remaining() != 7*time.Second {
		t.Fatalf("expected 7s remaining, got %v", tc.Remaining())
	}
}

func TestTimeControlEntersByoyomi(t *testing.T) {
	tc := NewTimeControl(5*time.Second, 10*time.Second, 0)
	tc.Consume(6 * time.Second)
	if !tc.InByoyomi() {
		t.Fatalf("should have entered byoyomi once main time ran out")
	}
	if tc.Remaining() != 10*time.Second {
		t.Fatalf("byoyomi should reset remaining to the full byoyomi period, got %v", tc.Remaining())
	}
}

func TestTimeControlIncrementAfterMove(t *testing.T) {
	tc := NewTimeControl(10*time.Second, 5*time.Second, 2*time.Second)
	tc.Consume(3 * time.Second)
	tc.IncrementAfterMove()
	if tc.Remaining() != 9*time.Second {
		t.Fatalf("expected 9s after a 3s consume and a 2s increment, got %v", tc.Remaining())
	}
}

func TestTimeControlByoyomiResetsInsteadOfAccumulating(t *testing.T) {
	tc := NewTimeControl(1*time.Second, 5*time.Second, 2*time.Second)
	tc.Consume(2 * time.Second) // exhausts main time, enters byoyomi
	tc.Consume(1 * time.Second) // spends 1s of the 5s byoyomi
	tc.IncrementAfterMove()
	if tc.Remaining() != 5*time.Second {
		t.Fatalf("byoyomi should reset to the full period on each move, got %v", tc.Remaining())
	}
}

func TestTimeControlIsFlagFallen(t *testing.T) {
	tc := NewTimeControl(1*time.Second, 0, 0)
	if tc.IsFlagFallen() {
		t.Fatalf("should not have flag-fallen immediately")
	}
	tc.Consume(2 * time.Second)
	if !tc.IsFlagFallen() {
		t.Fatalf("should have flag-fallen once both main time and a zero byoyomi are exhausted")
	}
}
