package engine

import (
	"github.com/armadachess/armada/internal/chess"
)

// Move is an origin/destination pair.
type Move struct {
	From chess.Coord
	To   chess.Coord
}

// CandidateMoves returns the geometric move candidates for the side to
// move, before legality filtering. Only stored ranks can hold movable
// pieces, so enumeration is finite; rays stop at the first occupied square
// (wall squares included), keeping that square as a capture candidate.
func CandidateMoves(b *chess.Board) []Move {
	var out []Move
	first := b.FirstRank()
	for i := range b.Ranks {
		for f := 0; f < chess.NumFiles; f++ {
			p := b.Ranks[i][f]
			if p.IsEmpty() || p.Team != b.Turn {
				continue
			}
			from := chess.Coord{Rank: first + i, File: f}
			for _, t := range p.Moves().Templates {
				out = appendCandidates(out, b, from, t)
			}
		}
	}
	return out
}

func appendCandidates(out []Move, b *chess.Board, from chess.Coord, t chess.Template) []Move {
	dRank, dFile := int(t.Offset.Rank), int(t.Offset.File)
	if !t.Repeating {
		to := chess.Coord{Rank: from.Rank + dRank, File: from.File + dFile}
		if to.FileInRange() {
			out = append(out, Move{From: from, To: to})
		}
		return out
	}
	sq := from
	for {
		sq = chess.Coord{Rank: sq.Rank + dRank, File: sq.File + dFile}
		if !sq.FileInRange() {
			return out
		}
		out = append(out, Move{From: from, To: sq})
		p, _ := b.Get(sq)
		if !p.IsEmpty() {
			return out
		}
	}
}

// LegalMoves returns every move the side to move could commit right now.
func LegalMoves(b *chess.Board) []Move {
	var out []Move
	for _, m := range CandidateMoves(b) {
		if _, err := validateMove(b, m.From, m.To); err == nil {
			out = append(out, m)
		}
	}
	return out
}

// HasLegalMove reports whether the side to move has at least one legal
// move.
func HasLegalMove(b *chess.Board) bool {
	for _, m := range CandidateMoves(b) {
		if _, err := validateMove(b, m.From, m.To); err == nil {
			return true
		}
	}
	return false
}

// IsCheckmate reports whether the side to move is in check with no legal
// move.
func IsCheckmate(b *chess.Board) bool {
	return IsInCheck(b, b.Turn) && !HasLegalMove(b)
}

// IsStalemate reports whether the side to move has no legal move but is
// not in check.
func IsStalemate(b *chess.Board) bool {
	return !IsInCheck(b, b.Turn) && !HasLegalMove(b)
}
