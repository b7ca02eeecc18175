// position.go defines Board and Position, the core game-state types, and
// their low-level mutation primitives. Legal move generation lives in
// movegen.go, execute/undo in makemove.go, termination detection in
// termination.go, and SFEN parsing/emission in sfen.go.

package shogo

// Board keeps two representations of the piece placement in lockstep: the
// mailbox pieceAt (Square -> Piece) used for O(1) point queries, and a set
// of bitboards by dense Piece index plus per-color occupancy, used by move
// generation. Every mutation updates both.
type Board struct {
	pieceAt   [81]Piece
	bitboards [numPieces]Bitboard
	colorOcc  [2]Bitboard
	occupancy Bitboard
}

// NewBoard returns an empty board.
func NewBoard() Board {
	var b Board
	for i := range b.pieceAt {
		b.pieceAt[i] = PieceNone
	}
	return b
}

// PieceAt returns the piece standing on sq, or PieceNone.
func (b *Board) PieceAt(sq Square) Piece {
	return b.pieceAt[sq]
}

// place puts piece p on sq, updating both representations. sq must
// currently be empty.
func (b *Board) place(p Piece, sq Square) {
	b.pieceAt[sq] = p
	b.bitboards[p] = b.bitboards[p].Set(sq)
	c := p.Color()
	b.colorOcc[c] = b.colorOcc[c].Set(sq)
	b.occupancy = b.occupancy.Set(sq)
}

// remove takes the piece off sq, updating both representations. sq must
// currently hold p.
func (b *Board) remove(p Piece, sq Square) {
	b.pieceAt[sq] = PieceNone
	b.bitboards[p] = b.bitboards[p].Clear(sq)
	c := p.Color()
	b.colorOcc[c] = b.colorOcc[c].Clear(sq)
	b.occupancy = b.occupancy.Clear(sq)
}

// PieceBB returns the bitboard of every piece of type pt and color c.
func (b *Board) PieceBB(pt PieceType, c Color) Bitboard {
	return b.bitboards[NewPiece(pt, c)]
}

// ColorBB returns the occupancy of every piece of color c.
func (b *Board) ColorBB(c Color) Bitboard {
	return b.colorOcc[c]
}

// Occupancy returns every occupied square.
func (b *Board) Occupancy() Bitboard {
	return b.occupancy
}

// King returns the square of color c's king, if present.
func (b *Board) King(c Color) (Square, bool) {
	return b.PieceBB(King, c).FirstSquare()
}

// MoveRecord captures enough state to reverse exactly one played move.
// History is append-on-do, pop-on-undo.
type MoveRecord struct {
	IsDrop bool

	// Board move fields.
	From     Square
	To       Square
	Moved    PieceType // pre-promotion type
	MovedCol Color
	Captured Piece // PieceNone if no capture
	Promote  bool

	// Drop fields.
	DropPiece PieceType
	DropTo    Square

	// Snapshot fields, restored verbatim by UnmakeMove rather than
	// recomputed, so undo is exact even across repeated positions.
	PrevHash        uint64
	PrevCheckStreak [2]int
}

// Position is the main engine state: board, hands, side to move, ply
// counter, and move history.
type Position struct {
	Board   Board
	Hands   [2]Hand
	Side    Color
	Ply     int
	history []MoveRecord

	hashKey     uint64
	repetitions map[uint64]int
	checkStreak [2]int

	// rootSFEN captures board/side/hand/ply as they were at construction
	// or the last SetSFEN, before any of moveHistory was applied. ToSFEN
	// reports the live, current state; ToSFENWithMoves reconstructs the
	// root-plus-moves form real USI tooling exchanges (see sfen.go).
	rootSFEN    string
	moveHistory []string
}

// NewPosition returns an empty position at ply 1 with Black to move. Most
// callers will instead use SetSFEN to load a real position.
func NewPosition() *Position {
	p := &Position{
		Board:       NewBoard(),
		Side:        Black,
		Ply:         1,
		repetitions: make(map[uint64]int, 1),
	}
	p.hashKey = p.computeHashKey()
	p.repetitions[p.hashKey] = 1
	p.rootSFEN = p.currentSFEN()
	return p
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color { return p.Side }

// PlyCount returns the half-move counter (starts at 1 for the first move).
func (p *Position) PlyCount() int { return p.Ply }

// PieceAt returns the piece standing on sq, or PieceNone.
func (p *Position) PieceAt(sq Square) Piece { return p.Board.PieceAt(sq) }

// Hand returns the captured-piece hand for color c.
func (p *Position) Hand(c Color) Hand { return p.Hands[c] }

// FindKing returns the square of color c's king, if present on the board.
func (p *Position) FindKing(c Color) (Square, bool) { return p.Board.King(c) }

// PlayerBB returns every square occupied by color c.
func (p *Position) PlayerBB(c Color) Bitboard { return p.Board.ColorBB(c) }
