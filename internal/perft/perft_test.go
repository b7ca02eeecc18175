package perft

import (
	"testing"

	"github.com/shogo-dev/shogo"
)

const startingSFEN = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"

func newStartingPosition(t *testing.T) *shogo.Position {
	t.Helper()
	shogo.InitAttackTables()
	shogo.InitZobristKeys()
	p := shogo.NewPosition()
	if err := p.SetSFEN(startingSFEN); err != nil {
		t.Fatalf("SetSFEN: %v", err)
	}
	return p
}

func TestCountDepthZeroIsOne(t *testing.T) {
	p := newStartingPosition(t)
	if got := Count(p, 0); got != 1 {
		t.Fatalf("Count at depth 0 should be 1, got %d", got)
	}
}

func TestCountDepthOneMatchesLegalMoveCount(t *testing.T) {
	p := newStartingPosition(t)
	if got := Count(p, 1); got != 30 {
		t.Fatalf("expected 30 legal moves for Black from the starting position, got %d", got)
	}
}

func TestCountRestoresPositionAfterWalk(t *testing.T) {
	p := newStartingPosition(t)
	before := p.ToSFEN()
	Count(p, 2)
	if got := p.ToSFEN(); got != before {
		t.Fatalf("Count should leave the position exactly as it found it: got %q, want %q", got, before)
	}
}

func TestDivideSumsToCount(t *testing.T) {
	p := newStartingPosition(t)
	perMove := Divide(p, 2)

	total := 0
	for _, n := range perMove {
		total += n
	}
	if want := Count(p, 2); total != want {
		t.Fatalf("Divide totals should match Count: got %d, want %d", total, want)
	}
	if len(perMove) != 30 {
		t.Fatalf("Divide should report one entry per root move, got %d entries", len(perMove))
	}
}
