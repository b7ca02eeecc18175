// Package perft implements the recursive move-count harness used to
// validate move generation, per spec section 2 item 10: not part of the
// public API, used only for testing and the cmd/shogoperft CLI.
package perft

import "github.com/shogo-dev/shogo"

// Count walks the move generation tree of strictly legal moves to depth
// and returns the number of leaf nodes reached.
//
// See https://www.chessprogramming.org/Perft_Results (the concept is
// identical for shogi; only the published reference tables differ).
func Count(p *shogo.Position, depth int) int {
	if depth == 0 {
		return 1
	}
	moves := p.GenerateLegalMoves()
	if depth == 1 {
		return len(moves)
	}

	nodes := 0
	for _, m := range moves {
		if err := p.MakeMove(m); err != nil {
			panic("perft: generated move rejected by MakeMove: " + err.Error())
		}
		nodes += Count(p, depth-1)
		if err := p.UnmakeMove(); err != nil {
			panic("perft: UnmakeMove failed: " + err.Error())
		}
	}
	return nodes
}

// Divide runs Count one ply at a time for each root move, returning the
// per-move node count keyed by SFEN move notation. Use this to find the
// exact branch in the movegen tree that disagrees with a reference count.
func Divide(p *shogo.Position, depth int) map[string]int {
	out := make(map[string]int)
	for _, m := range p.GenerateLegalMoves() {
		if err := p.MakeMove(m); err != nil {
			panic("perft: generated move rejected by MakeMove: " + err.Error())
		}
		out[m.String()] = Count(p, depth-1)
		if err := p.UnmakeMove(); err != nil {
			panic("perft: UnmakeMove failed: " + err.Error())
		}
	}
	return out
}
