package chess

// Rank is one row of the board: a fixed array of piece slots.
type Rank [NumFiles]Piece

// SelectionMode gates which operations are legal on a board.
type SelectionMode int

const (
	// ModeIdle is the normal move mode.
	ModeIdle SelectionMode = iota
	// ModeAwaitingPromotion blocks ordinary moves until a promotion choice
	// is made for the piece at Board.Pending.
	ModeAwaitingPromotion
)

// Board holds all rule state for one game. The rank sequence grows in both
// directions; RanksBehindWhite maps logical rank 0 to its storage index.
// Storage only ever grows.
type Board struct {
	Ranks            []Rank
	RanksBehindWhite int

	// Turn is the side to move.
	Turn Team

	// Kings tracks each team's king coordinate, indexed by Team. Updated
	// whenever a king's cell is written; never recomputed by scanning.
	Kings [2]Coord

	// Opportunity is the square armed by the immediately preceding
	// double-step, valid only when HasOpportunity is set. It goes void on
	// the very next move unless that move re-arms it.
	Opportunity    Coord
	HasOpportunity bool

	// Mode and Pending implement the promotion gate.
	Mode    SelectionMode
	Pending Coord
}

// Wall ranks: reads beyond stored history resolve to an immovable rank of
// queens belonging to the side whose home faces that edge, so lookups deep
// in rule logic never need a missing-rank case.
var (
	wallRankWhite = queenRank(White)
	wallRankBlack = queenRank(Black)
)

func queenRank(team Team) Rank {
	var r Rank
	for f := range r {
		r[f] = NewPiece(Queen, team)
	}
	return r
}

// NewBoard sets up the traditional arrangement centred at logical ranks
// 0..7: white back rank at 0, pawns at 1, black pawns at 6, back rank at
// 7, empty ranks between. White moves first.
func NewBoard() *Board {
	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

	var whiteBack, whitePawns, blackBack, blackPawns Rank
	for f := 0; f < NumFiles; f++ {
		whiteBack[f] = NewPiece(backRank[f], White)
		whitePawns[f] = NewPiece(Pawn, White)
		blackPawns[f] = NewPiece(Pawn, Black)
		blackBack[f] = NewPiece(backRank[f], Black)
	}

	ranks := make([]Rank, 0, NumTraditionalRanks)
	ranks = append(ranks, whiteBack, whitePawns)
	for i := 0; i < NumTraditionalRanks-4; i++ {
		ranks = append(ranks, Rank{})
	}
	ranks = append(ranks, blackPawns, blackBack)

	b := &Board{
		Ranks: ranks,
		Turn:  White,
	}
	b.Kings[White] = Coord{Rank: 0, File: 4}
	b.Kings[Black] = Coord{Rank: NumTraditionalRanks - 1, File: 4}
	return b
}

// FirstRank returns the lowest logical rank backed by real storage.
func (b *Board) FirstRank() int {
	return -b.RanksBehindWhite
}

// LastRank returns the highest logical rank backed by real storage.
func (b *Board) LastRank() int {
	return AddSat(b.FirstRank(), len(b.Ranks)-1)
}

// indexOfRank translates a logical rank to a storage index, saturating at
// the integer bounds.
func (b *Board) indexOfRank(rank int) int {
	return AddSat(rank, b.RanksBehindWhite)
}

// Stored reports whether the coordinate is backed by real storage (and has
// an in-range file). Squares outside stored ranks read as wall pieces,
// which are immovable.
func (b *Board) Stored(c Coord) bool {
	if !c.FileInRange() {
		return false
	}
	idx := b.indexOfRank(c.Rank)
	return idx >= 0 && idx < len(b.Ranks)
}

// Get returns the occupant of a square. The second result is false only
// when the file is out of range; ranks beyond stored history resolve to
// synthetic wall queens without mutating storage.
func (b *Board) Get(c Coord) (Piece, bool) {
	if !c.FileInRange() {
		return Piece{}, false
	}
	idx := b.indexOfRank(c.Rank)
	switch {
	case idx < 0:
		return wallRankWhite[c.File], true
	case idx >= len(b.Ranks):
		return wallRankBlack[c.File], true
	}
	return b.Ranks[idx][c.File], true
}

// Expand grows real storage until rank is backed by it. New rows are
// seeded empty and growth covers exactly the requested span; prepending
// adjusts the offset so existing logical ranks keep their coordinates.
func (b *Board) Expand(rank int) {
	if first := b.FirstRank(); rank < first {
		n, ok := SubChecked(first, rank)
		if !ok {
			return
		}
		grown := make([]Rank, n, n+len(b.Ranks))
		b.Ranks = append(grown, b.Ranks...)
		b.RanksBehindWhite = AddSat(b.RanksBehindWhite, n)
	} else if last := b.LastRank(); rank > last {
		n, ok := SubChecked(rank, last)
		if !ok {
			return
		}
		for i := 0; i < n; i++ {
			b.Ranks = append(b.Ranks, Rank{})
		}
	}
}

// Cell returns a mutable pointer to the square's slot, growing storage as
// needed. Returns nil when the file is out of range. The pointer is
// invalidated by any later call that grows storage.
func (b *Board) Cell(c Coord) *Piece {
	if !c.FileInRange() {
		return nil
	}
	b.Expand(c.Rank)
	return &b.Ranks[b.indexOfRank(c.Rank)][c.File]
}

// PendingPromotion returns the coordinate awaiting a promotion choice.
func (b *Board) PendingPromotion() (Coord, bool) {
	if b.Mode != ModeAwaitingPromotion {
		return Coord{}, false
	}
	return b.Pending, true
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	nb := *b
	nb.Ranks = make([]Rank, len(b.Ranks))
	copy(nb.Ranks, b.Ranks)
	return &nb
}
