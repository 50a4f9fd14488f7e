// Package engine validates and executes moves for the infinite-rank chess
// variant. All rule state lives on the board; every operation either
// commits completely or leaves the board untouched.
package engine

import (
	"github.com/armadachess/armada/internal/chess"
	"github.com/armadachess/armada/internal/errors"
)

// Outcome is the result of a move attempt.
type Outcome int

const (
	// Rejected means the move was illegal; the board is unchanged.
	Rejected Outcome = iota
	// Completed means the move was committed and the turn flipped; the
	// presentation layer should flip perspective.
	Completed
	// PromotionPending means the move was committed but landed a pawn on
	// its promotion rank; only SelectPromotion is legal until a choice is
	// made. The turn does not flip until then.
	PromotionPending
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case Completed:
		return "Completed"
	case PromotionPending:
		return "PromotionPending"
	}
	return "Rejected"
}

// movePlan is a fully validated move, ready to commit.
type movePlan struct {
	from   chess.Coord
	to     chess.Coord // targeted square (capture victim or castling rook)
	dest   chess.Coord // where the mover actually lands
	compTo chess.Coord // companion landing, valid when tmpl.CompanionDest != nil
	mover  chess.Piece
	target chess.Piece
	tmpl   chess.Template
}

// AttemptMove validates the move from -> to for the side to move and, if
// legal, commits it. On rejection the board is left exactly as it was and
// the error explains why.
func AttemptMove(b *chess.Board, from, to chess.Coord) (Outcome, error) {
	plan, err := validateMove(b, from, to)
	if err != nil {
		return Rejected, err
	}
	return commit(b, plan), nil
}

// validateMove runs the full legality check without mutating the board.
func validateMove(b *chess.Board, from, to chess.Coord) (*movePlan, error) {
	if b.Mode == chess.ModeAwaitingPromotion {
		return nil, reject(from, to, errors.ErrAwaitingPromotion, "")
	}

	mover, ok := b.Get(from)
	if !ok {
		return nil, reject(from, to, errors.ErrOutOfRange, "origin file")
	}
	if mover.IsEmpty() {
		return nil, reject(from, to, errors.ErrIllegalMove, "no piece at origin")
	}
	if !b.Stored(from) {
		return nil, reject(from, to, errors.ErrIllegalMove, "wall pieces cannot move")
	}
	if mover.Team != b.Turn {
		return nil, reject(from, to, errors.ErrNotYourTurn, "")
	}

	dRank, ok := chess.SubChecked(to.Rank, from.Rank)
	if !ok {
		return nil, reject(from, to, errors.ErrRankOverflow, "")
	}
	dFile := to.File - from.File

	// First template in catalog order whose offset predicate matches.
	var tmpl chess.Template
	found := false
	for _, t := range mover.Moves().Templates {
		if t.Matches(dRank, dFile) {
			tmpl = t
			found = true
			break
		}
	}
	if !found {
		return nil, reject(from, to, errors.ErrIllegalMove, "no such move for this piece")
	}

	if tmpl.RequiresOpportunity && (!b.HasOpportunity || b.Opportunity != to) {
		return nil, reject(from, to, errors.ErrIllegalMove, "no opportunity at target")
	}

	target, ok := b.Get(to)
	if !ok {
		return nil, reject(from, to, errors.ErrOutOfRange, "destination file")
	}
	switch {
	case target.IsEmpty():
		if !tmpl.CanMove {
			return nil, reject(from, to, errors.ErrIllegalMove, "target must be occupied")
		}
	case target.Team == mover.Team:
		if !tmpl.TargetAlly {
			return nil, reject(from, to, errors.ErrIllegalMove, "cannot take an ally")
		}
	default:
		if !tmpl.CanCapture {
			return nil, reject(from, to, errors.ErrIllegalMove, "move cannot capture")
		}
	}
	if !target.IsEmpty() {
		if tmpl.TargetKind != chess.NoPiece && target.Kind != tmpl.TargetKind {
			return nil, reject(from, to, errors.ErrIllegalMove, "wrong target piece kind")
		}
		if tmpl.TargetUnmoved && target.NumMoves > 0 {
			return nil, reject(from, to, errors.ErrIllegalMove, "target has already moved")
		}
	}

	dest := to
	if tmpl.ForcedDest != nil {
		dest, ok = offsetCoord(from, *tmpl.ForcedDest)
		if !ok {
			return nil, reject(from, to, errors.ErrRankOverflow, "")
		}
		landing, lok := b.Get(dest)
		if !lok || !landing.IsEmpty() {
			return nil, reject(from, to, errors.ErrIllegalMove, "forced destination not free")
		}
	}

	var compTo chess.Coord
	if tmpl.CompanionDest != nil {
		compTo, ok = offsetCoord(from, *tmpl.CompanionDest)
		if !ok {
			return nil, reject(from, to, errors.ErrRankOverflow, "")
		}
	}

	// Repeating moves pass through every intermediate square.
	if tmpl.Repeating {
		steps := tmpl.Steps(dRank, dFile)
		sq := from
		for i := 1; i < steps; i++ {
			sq = chess.Coord{Rank: sq.Rank + int(tmpl.Offset.Rank), File: sq.File + int(tmpl.Offset.File)}
			p, pok := b.Get(sq)
			if !pok {
				return nil, reject(from, to, errors.ErrIllegalMove, "path leaves the board")
			}
			if !p.IsEmpty() {
				return nil, reject(from, to, errors.ErrIllegalMove, "path is blocked")
			}
		}
	}

	plan := &movePlan{
		from:   from,
		to:     to,
		dest:   dest,
		compTo: compTo,
		mover:  mover,
		target: target,
		tmpl:   tmpl,
	}

	// The mover's own king must not be in check afterwards. Evaluated on a
	// hypothetical view of the board; nothing is mutated.
	kingSq := b.Kings[mover.Team]
	if mover.Kind == chess.King {
		kingSq = dest
	}
	if kingAttacked(mover.Team, kingSq, viewAfter(b, plan)) {
		return nil, reject(from, to, errors.ErrIllegalMove, "own king would be in check")
	}

	if tmpl.BannedInCheck && kingAttacked(mover.Team, b.Kings[mover.Team], b.Get) {
		return nil, reject(from, to, errors.ErrIllegalMove, "not allowed while in check")
	}

	return plan, nil
}

// commit applies a validated move: capture removal, companion motion, the
// mover to its real destination with a move-counter bump, king tracking,
// the opportunity square, and the turn or promotion transition.
func commit(b *chess.Board, p *movePlan) Outcome {
	b.Expand(p.from.Rank)
	b.Expand(p.to.Rank)
	b.Expand(p.dest.Rank)
	if p.tmpl.CompanionDest != nil {
		b.Expand(p.compTo.Rank)
	}

	moved := p.mover.Moved()

	*b.Cell(p.from) = chess.Piece{}
	if p.tmpl.CompanionDest != nil {
		companion := *b.Cell(p.to)
		*b.Cell(p.to) = chess.Piece{}
		*b.Cell(p.compTo) = companion.Moved()
	} else if p.dest != p.to {
		// Forced-capture removal away from the landing square.
		*b.Cell(p.to) = chess.Piece{}
	}
	*b.Cell(p.dest) = moved

	if moved.Kind == chess.King {
		b.Kings[moved.Team] = p.dest
	}

	// The opportunity square goes void every move unless re-armed.
	if p.tmpl.ProvokesOpportunity {
		b.Opportunity = p.dest
		b.HasOpportunity = true
	} else {
		b.Opportunity = chess.Coord{}
		b.HasOpportunity = false
	}

	if moved.Kind == chess.Pawn && p.dest.Rank == moved.Team.PromotionRank() {
		b.Mode = chess.ModeAwaitingPromotion
		b.Pending = p.dest
		return PromotionPending
	}

	b.Turn = b.Turn.Opposite()
	return Completed
}

// offsetCoord displaces a coordinate by a template offset with overflow
// checking on the rank axis.
func offsetCoord(c chess.Coord, o chess.Offset) (chess.Coord, bool) {
	rank, ok := chess.SubChecked(c.Rank, -int(o.Rank))
	if !ok {
		return chess.Coord{}, false
	}
	return chess.Coord{Rank: rank, File: c.File + int(o.File)}, true
}

// reject builds a rejection error carrying the move in display notation.
func reject(from, to chess.Coord, reason error, detail string) error {
	return &errors.MoveError{
		Err:    reason,
		From:   chess.FormatCoord(from),
		To:     chess.FormatCoord(to),
		Detail: detail,
	}
}
