// makemove.go implements execute/undo, per spec section 4.5. MakeMove
// validates against the generated legal set (diagnosing a specific
// MoveError reason when possible) and is all-or-nothing; UnmakeMove
// reverses the last played move exactly.

package shogo

// MakeMove validates and applies m. On rejection the position is left
// completely unmodified.
func (p *Position) MakeMove(m Move) error {
	if !p.isLegal(m) {
		return p.diagnoseIllegalMove(m)
	}

	mover := p.Side
	prevHash := p.hashKey
	prevStreak := p.checkStreak

	var record MoveRecord
	if m.IsDrop {
		piece := NewPiece(m.Piece, mover)
		p.Board.place(piece, m.To)
		p.Hands[mover].Remove(m.Piece)
		record = MoveRecord{IsDrop: true, DropPiece: m.Piece, DropTo: m.To}
	} else {
		moved := p.Board.PieceAt(m.From)
		captured := p.Board.PieceAt(m.To)
		p.Board.remove(moved, m.From)
		if captured != PieceNone {
			p.Board.remove(captured, m.To)
			p.Hands[mover].Add(captured.Type())
		}
		finalType := moved.Type()
		if m.Promote {
			finalType = finalType.Promote()
		}
		p.Board.place(NewPiece(finalType, mover), m.To)
		record = MoveRecord{
			From: m.From, To: m.To,
			Moved: moved.Type(), MovedCol: mover,
			Captured: captured, Promote: m.Promote,
		}
	}

	p.Side = mover.Flip()
	p.Ply++
	p.hashKey = p.computeHashKey()
	p.repetitions[p.hashKey]++

	gaveCheck := p.InCheck(p.Side)
	p.recordCheckStreak(mover, gaveCheck)

	record.PrevHash = prevHash
	record.PrevCheckStreak = prevStreak
	p.history = append(p.history, record)
	p.moveHistory = append(p.moveHistory, m.String())

	return nil
}

// UnmakeMove reverses the last move played. Fails with ErrEmptyHistory if
// no move has been played.
func (p *Position) UnmakeMove() error {
	if len(p.history) == 0 {
		return ErrEmptyHistory
	}
	last := len(p.history) - 1
	record := p.history[last]
	p.history = p.history[:last]
	p.moveHistory = p.moveHistory[:last]

	if n := p.repetitions[p.hashKey]; n <= 1 {
		delete(p.repetitions, p.hashKey)
	} else {
		p.repetitions[p.hashKey] = n - 1
	}

	p.Side = p.Side.Flip()
	p.Ply--
	mover := p.Side

	if record.IsDrop {
		piece := NewPiece(record.DropPiece, mover)
		p.Board.remove(piece, record.DropTo)
		p.Hands[mover].Add(record.DropPiece)
	} else {
		finalType := record.Moved
		if record.Promote {
			finalType = finalType.Promote()
		}
		p.Board.remove(NewPiece(finalType, mover), record.To)
		p.Board.place(NewPiece(record.Moved, mover), record.From)
		if record.Captured != PieceNone {
			p.Board.place(record.Captured, record.To)
			p.Hands[mover].Remove(record.Captured.Type())
		}
	}

	p.hashKey = record.PrevHash
	p.checkStreak = record.PrevCheckStreak

	return nil
}

// isLegal reports whether m is a member of the currently generated legal
// move set.
func (p *Position) isLegal(m Move) bool {
	for _, lm := range p.GenerateLegalMoves() {
		if lm == m {
			return true
		}
	}
	return false
}

// diagnoseIllegalMove inspects a move rejected by isLegal and returns the
// most specific MoveError reason it can determine structurally; anything
// it cannot pin down (e.g. a board move that would leave the mover's own
// king in check) falls back to ErrNotLegal.
func (p *Position) diagnoseIllegalMove(m Move) error {
	mover := p.Side

	if m.IsDrop {
		if p.Hands[mover].Count(m.Piece) == 0 {
			return newMoveError(MoveEmptyHand, m)
		}
		if occupant := p.Board.PieceAt(m.To); occupant != PieceNone {
			if occupant.Color() == mover {
				return newMoveError(MoveDestinationBlockedByOwn, m)
			}
			return newMoveError(MoveNotLegal, m)
		}
		if !dropDestinationValid(m.Piece, mover, m.To) {
			return newMoveError(MoveNonMovableLocation, m)
		}
		if m.Piece == Pawn && p.hasUnpromotedPawnOnFile(mover, m.To.File()) {
			return newMoveError(MoveNifu, m)
		}
		if kingSq, ok := p.Board.King(mover.Flip()); ok && pawnAttacks[mover][m.To].Has(kingSq) {
			if p.wouldBeUchifuzume(mover, m.To) {
				return newMoveError(MoveUchifuzume, m)
			}
		}
		return newMoveError(MoveNotLegal, m)
	}

	moved := p.Board.PieceAt(m.From)
	if moved == PieceNone || moved.Color() != mover {
		return newMoveError(MoveInconsistent, m)
	}
	if p.Board.PieceAt(m.To) != PieceNone && p.Board.PieceAt(m.To).Color() == mover {
		return newMoveError(MoveDestinationBlockedByOwn, m)
	}
	emitPlain, emitPromote := promotionChoice(moved.Type(), mover, m.From, m.To)
	if m.Promote && !emitPromote {
		return newMoveError(MovePromotionNotAllowed, m)
	}
	if !m.Promote && !emitPlain {
		return newMoveError(MoveIllegalPromotion, m)
	}
	return newMoveError(MoveNotLegal, m)
}
