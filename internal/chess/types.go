// Package chess provides the core types for the infinite-rank chess
// variant: pieces, coordinates, the move catalog, and the board with its
// unbounded rank axis.
package chess

import "math"

// Board dimensions. Files are fixed; ranks are unbounded, and
// NumTraditionalRanks only describes the starting arrangement (and the
// promotion ranks, which stay anchored to it).
const (
	NumFiles            = 8
	NumTraditionalRanks = 8
)

// Team represents the colour of a piece or player.
type Team int

const (
	Black Team = iota
	White
)

// String returns the string representation of a team.
func (t Team) String() string {
	if t == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposing team.
func (t Team) Opposite() Team {
	if t == White {
		return Black
	}
	return White
}

// PromotionRank returns the logical rank on which this team's pawns
// promote. Promotion ranks stay anchored to the traditional arrangement
// no matter how far the board has grown.
func (t Team) PromotionRank() int {
	if t == White {
		return NumTraditionalRanks - 1
	}
	return 0
}

// PieceKind identifies a kind of chess piece. The zero value means an
// empty square.
type PieceKind int

const (
	NoPiece PieceKind = iota
	Pawn
	Bishop
	Knight
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Bishop", "Knight", "Rook", "Queen", "King"}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind
// (uppercase), or a space for an empty square.
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'B', 'N', 'R', 'Q', 'K'}
	if int(k) >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// PromotionOptions lists the kinds this piece kind may promote to, in
// selection-index order. Only pawns promote.
func (k PieceKind) PromotionOptions() []PieceKind {
	if k != Pawn {
		return nil
	}
	return []PieceKind{Queen, Rook, Bishop, Knight}
}

// Piece is a board occupant. Pieces are value types owned by their cell;
// the zero value is an empty square.
type Piece struct {
	Kind     PieceKind
	Team     Team
	NumMoves uint16
}

// NewPiece returns an unmoved piece of the given kind and team.
func NewPiece(kind PieceKind, team Team) Piece {
	return Piece{Kind: kind, Team: team}
}

// IsEmpty reports whether this is an empty square rather than a piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoPiece
}

// Moved returns the piece after making one move. The move counter
// saturates rather than wrapping.
func (p Piece) Moved() Piece {
	if p.NumMoves < math.MaxUint16 {
		p.NumMoves++
	}
	return p
}

// Coord addresses a board square. File is always in [0, NumFiles); Rank
// is unbounded in both directions.
type Coord struct {
	Rank int
	File int
}

// FileInRange reports whether the coordinate's file is on the board.
func (c Coord) FileInRange() bool {
	return c.File >= 0 && c.File < NumFiles
}

// AddSat returns a+b with saturation at the integer bounds. Coordinate
// arithmetic clamps rather than wrapping so that pathological ranks
// degrade to rejected moves instead of undefined behaviour.
func AddSat(a, b int) int {
	sum := a + b
	if b > 0 && sum < a {
		return math.MaxInt
	}
	if b < 0 && sum > a {
		return math.MinInt
	}
	return sum
}

// SubChecked returns a-b and reports whether the subtraction stayed in
// range.
func SubChecked(a, b int) (int, bool) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, false
	}
	return diff, true
}
