package engine

import (
	"github.com/armadachess/armada/internal/chess"
)

// lookup resolves a square to its occupant; false only when the file is
// off the board. Board.Get satisfies it directly, and viewAfter builds one
// that overlays a hypothetical move without touching storage.
type lookup func(chess.Coord) (chess.Piece, bool)

// IsInCheck reports whether the given team's king is attacked on the board
// as it stands.
func IsInCheck(b *chess.Board, team chess.Team) bool {
	return kingAttacked(team, b.Kings[team], b.Get)
}

// kingAttacked walks every capture-capable move template of every catalog
// backward from the king's square. The king is attacked exactly when some
// walk's first occupied square holds an enemy piece whose own catalog is
// the one being walked: such a piece could make the mirrored move onto the
// king. Opportunity captures never target a king, so templates gated on an
// opportunity are skipped.
//
// Every walk terminates: beyond stored ranks all squares read as occupied
// wall pieces.
func kingAttacked(team chess.Team, king chess.Coord, at lookup) bool {
	for _, cat := range chess.Catalogs() {
		for _, t := range cat.Templates {
			if !t.CanCapture || t.RequiresOpportunity {
				continue
			}
			if attackAlong(team, king, cat.ID, t, at) {
				return true
			}
		}
	}
	return false
}

func attackAlong(team chess.Team, king chess.Coord, id chess.CatalogID, t chess.Template, at lookup) bool {
	dRank, dFile := int(t.Offset.Rank), int(t.Offset.File)
	sq := king
	for {
		rank, ok := chess.SubChecked(sq.Rank, dRank)
		if !ok {
			return false
		}
		sq = chess.Coord{Rank: rank, File: sq.File - dFile}
		p, ok := at(sq)
		if !ok {
			return false
		}
		if !p.IsEmpty() {
			return p.Team != team && p.Moves().ID == id
		}
		if !t.Repeating {
			return false
		}
	}
}

// viewAfter overlays a validated but uncommitted move on the board: the
// mover at its landing square, its origin and any captured square vacated,
// and the companion relocated. Everything else falls through to the board.
func viewAfter(b *chess.Board, p *movePlan) lookup {
	moved := p.mover.Moved()
	hasCompanion := p.tmpl.CompanionDest != nil
	companion := p.target.Moved()
	return func(c chess.Coord) (chess.Piece, bool) {
		switch {
		case c == p.dest:
			return moved, true
		case hasCompanion && c == p.compTo:
			return companion, true
		case c == p.from:
			return chess.Piece{}, true
		case c == p.to:
			// Captured, or vacated by the companion; the dest case above
			// wins when the mover lands here.
			return chess.Piece{}, true
		}
		return b.Get(c)
	}
}
