package chess

// CatalogID identifies one move catalog. Check detection asks whether the
// piece found at the far end of a walked ray would itself attack along the
// very catalog being walked, so catalog identity must be explicit rather
// than inferred from offsets (a pawn's opportunity capture and a rook's
// lateral ray share an offset but are not the same move).
type CatalogID int

const (
	CatalogNone CatalogID = iota
	CatalogPawnBlack
	CatalogPawnBlackNew
	CatalogPawnWhite
	CatalogPawnWhiteNew
	CatalogBishop
	CatalogKnight
	CatalogRook
	CatalogQueen
	CatalogKing
	CatalogKingNew
)

// Offset is a (rank, file) displacement from a piece's square.
type Offset struct {
	Rank int8
	File int8
}

// Template describes one candidate geometric move together with its gating
// conditions and side effects. Castling and the opportunity capture are
// encoded entirely through the optional fields; a single validation
// routine evaluates every template the same way.
type Template struct {
	Offset    Offset
	Repeating bool

	CanCapture bool // target square may hold an enemy piece
	CanMove    bool // target square may be empty

	TargetAlly    bool      // target square may hold an ally (castling's rook)
	TargetKind    PieceKind // required kind of the targeted piece; NoPiece means any
	TargetUnmoved bool      // targeted piece must have zero prior moves

	RequiresOpportunity bool // target must equal the armed opportunity square
	ProvokesOpportunity bool // arms the opportunity square at the landing square

	BannedInCheck bool // illegal while the mover's king is in check

	// ForcedDest, when set, is where the mover actually lands (as an offset
	// from its origin), distinct from the targeted square: the castling
	// king's two-file hop, or the opportunity capture's diagonal landing.
	// The forced destination must be empty.
	ForcedDest *Offset

	// CompanionDest, when set, relocates the piece on the targeted square
	// to this offset from the origin (the castling rook). Without it, a
	// targeted piece is captured.
	CompanionDest *Offset
}

// Matches reports whether displacing by (dRank, dFile) is an instance of
// this template: an exact match for single-step templates, or a positive
// integer multiple of the unit offset, the same multiple on both axes, for
// repeating rays.
func (t Template) Matches(dRank, dFile int) bool {
	unitRank, unitFile := int(t.Offset.Rank), int(t.Offset.File)
	if !t.Repeating {
		return dRank == unitRank && dFile == unitFile
	}
	for _, axis := range [2][2]int{{dRank, unitRank}, {dFile, unitFile}} {
		d, unit := axis[0], axis[1]
		if unit == 0 {
			if d != 0 {
				return false
			}
			continue
		}
		if d%unit != 0 || sign(d) != sign(unit) {
			return false
		}
	}
	if unitRank != 0 && unitFile != 0 && dRank/unitRank != dFile/unitFile {
		return false
	}
	return true
}

// Steps returns how many unit offsets make up the displacement. Only
// meaningful when Matches holds.
func (t Template) Steps(dRank, dFile int) int {
	if !t.Repeating {
		return 1
	}
	if t.Offset.Rank != 0 {
		return dRank / int(t.Offset.Rank)
	}
	if t.Offset.File != 0 {
		return dFile / int(t.Offset.File)
	}
	return 0
}

// Catalog is an immutable, identity-tagged template list. Lookup for a
// given (kind, team, moved) input always yields the identical catalog.
type Catalog struct {
	ID        CatalogID
	Templates []Template
}

// Moves returns the move catalog for this piece's kind, team and moved
// state. Empty squares get an empty catalog.
func (p Piece) Moves() Catalog {
	switch p.Kind {
	case Pawn:
		if p.Team == Black {
			if p.NumMoves == 0 {
				return pawnBlackNewCatalog
			}
			return pawnBlackCatalog
		}
		if p.NumMoves == 0 {
			return pawnWhiteNewCatalog
		}
		return pawnWhiteCatalog
	case Bishop:
		return bishopCatalog
	case Knight:
		return knightCatalog
	case Rook:
		return rookCatalog
	case Queen:
		return queenCatalog
	case King:
		if p.NumMoves == 0 {
			return kingNewCatalog
		}
		return kingCatalog
	}
	return Catalog{}
}

// Catalogs returns every move catalog in a stable order. Check detection
// walks all of them.
func Catalogs() []Catalog {
	return allCatalogs
}

// Black templates are canonical; white templates are derived by negating
// the rank component of every offset, so the two teams' move sets are
// geometrically symmetric by construction.

var pawnMovesBlack = []Template{
	{Offset: Offset{-1, -1}, CanCapture: true},
	{Offset: Offset{-1, 0}, CanMove: true},
	{Offset: Offset{-1, 1}, CanCapture: true},
	{Offset: Offset{0, -1}, CanCapture: true, TargetKind: Pawn, RequiresOpportunity: true,
		ForcedDest: &Offset{-1, -1}},
	{Offset: Offset{0, 1}, CanCapture: true, TargetKind: Pawn, RequiresOpportunity: true,
		ForcedDest: &Offset{-1, 1}},
}

var pawnMovesBlackNew = []Template{
	{Offset: Offset{-1, -1}, CanCapture: true},
	{Offset: Offset{-1, 0}, CanMove: true},
	{Offset: Offset{-1, 1}, CanCapture: true},
	{Offset: Offset{-2, 0}, CanMove: true, ProvokesOpportunity: true},
	{Offset: Offset{0, -1}, CanCapture: true, TargetKind: Pawn, RequiresOpportunity: true,
		ForcedDest: &Offset{-1, -1}},
	{Offset: Offset{0, 1}, CanCapture: true, TargetKind: Pawn, RequiresOpportunity: true,
		ForcedDest: &Offset{-1, 1}},
}

var pawnMovesWhite = invertTemplates(pawnMovesBlack)

var pawnMovesWhiteNew = invertTemplates(pawnMovesBlackNew)

var bishopMoves = []Template{
	{Offset: Offset{1, 1}, Repeating: true, CanCapture: true, CanMove: true},
	{Offset: Offset{1, -1}, Repeating: true, CanCapture: true, CanMove: true},
	{Offset: Offset{-1, 1}, Repeating: true, CanCapture: true, CanMove: true},
	{Offset: Offset{-1, -1}, Repeating: true, CanCapture: true, CanMove: true},
}

var knightMoves = []Template{
	{Offset: Offset{1, 2}, CanCapture: true, CanMove: true},
	{Offset: Offset{2, 1}, CanCapture: true, CanMove: true},
	{Offset: Offset{1, -2}, CanCapture: true, CanMove: true},
	{Offset: Offset{2, -1}, CanCapture: true, CanMove: true},
	{Offset: Offset{-1, 2}, CanCapture: true, CanMove: true},
	{Offset: Offset{-2, 1}, CanCapture: true, CanMove: true},
	{Offset: Offset{-1, -2}, CanCapture: true, CanMove: true},
	{Offset: Offset{-2, -1}, CanCapture: true, CanMove: true},
}

var rookMoves = []Template{
	{Offset: Offset{1, 0}, Repeating: true, CanCapture: true, CanMove: true},
	{Offset: Offset{0, 1}, Repeating: true, CanCapture: true, CanMove: true},
	{Offset: Offset{-1, 0}, Repeating: true, CanCapture: true, CanMove: true},
	{Offset: Offset{0, -1}, Repeating: true, CanCapture: true, CanMove: true},
}

var queenMoves = []Template{
	{Offset: Offset{1, 0}, Repeating: true, CanCapture: true, CanMove: true},
	{Offset: Offset{1, 1}, Repeating: true, CanCapture: true, CanMove: true},
	{Offset: Offset{0, 1}, Repeating: true, CanCapture: true, CanMove: true},
	{Offset: Offset{-1, 1}, Repeating: true, CanCapture: true, CanMove: true},
	{Offset: Offset{-1, 0}, Repeating: true, CanCapture: true, CanMove: true},
	{Offset: Offset{-1, -1}, Repeating: true, CanCapture: true, CanMove: true},
	{Offset: Offset{0, -1}, Repeating: true, CanCapture: true, CanMove: true},
	{Offset: Offset{1, -1}, Repeating: true, CanCapture: true, CanMove: true},
}

var kingMoves = []Template{
	{Offset: Offset{1, 0}, CanCapture: true, CanMove: true},
	{Offset: Offset{1, 1}, CanCapture: true, CanMove: true},
	{Offset: Offset{0, 1}, CanCapture: true, CanMove: true},
	{Offset: Offset{-1, 1}, CanCapture: true, CanMove: true},
	{Offset: Offset{-1, 0}, CanCapture: true, CanMove: true},
	{Offset: Offset{-1, -1}, CanCapture: true, CanMove: true},
	{Offset: Offset{0, -1}, CanCapture: true, CanMove: true},
	{Offset: Offset{1, -1}, CanCapture: true, CanMove: true},
}

// kingMovesNew adds the two castle rays: repeating laterally until the
// unmoved allied rook, king forced two files over, rook brought to the
// king's inner side. Castling is the one move banned while in check.
var kingMovesNew = append(append([]Template{}, kingMoves...),
	Template{Offset: Offset{0, 1}, Repeating: true, TargetAlly: true, TargetKind: Rook,
		TargetUnmoved: true, BannedInCheck: true,
		ForcedDest: &Offset{0, 2}, CompanionDest: &Offset{0, 1}},
	Template{Offset: Offset{0, -1}, Repeating: true, TargetAlly: true, TargetKind: Rook,
		TargetUnmoved: true, BannedInCheck: true,
		ForcedDest: &Offset{0, -2}, CompanionDest: &Offset{0, -1}},
)

var (
	pawnBlackCatalog    = Catalog{CatalogPawnBlack, pawnMovesBlack}
	pawnBlackNewCatalog = Catalog{CatalogPawnBlackNew, pawnMovesBlackNew}
	pawnWhiteCatalog    = Catalog{CatalogPawnWhite, pawnMovesWhite}
	pawnWhiteNewCatalog = Catalog{CatalogPawnWhiteNew, pawnMovesWhiteNew}
	bishopCatalog       = Catalog{CatalogBishop, bishopMoves}
	knightCatalog       = Catalog{CatalogKnight, knightMoves}
	rookCatalog         = Catalog{CatalogRook, rookMoves}
	queenCatalog        = Catalog{CatalogQueen, queenMoves}
	kingCatalog         = Catalog{CatalogKing, kingMoves}
	kingNewCatalog      = Catalog{CatalogKingNew, kingMovesNew}
)

var allCatalogs = []Catalog{
	pawnBlackCatalog,
	pawnBlackNewCatalog,
	pawnWhiteCatalog,
	pawnWhiteNewCatalog,
	bishopCatalog,
	knightCatalog,
	rookCatalog,
	queenCatalog,
	kingCatalog,
	kingNewCatalog,
}

// invertTemplates mirrors a canonical black template list for white by
// negating every rank component, including those of forced and companion
// destinations.
func invertTemplates(in []Template) []Template {
	out := make([]Template, len(in))
	for i, t := range in {
		t.Offset.Rank = -t.Offset.Rank
		if t.ForcedDest != nil {
			fd := *t.ForcedDest
			fd.Rank = -fd.Rank
			t.ForcedDest = &fd
		}
		if t.CompanionDest != nil {
			cd := *t.CompanionDest
			cd.Rank = -cd.Rank
			t.CompanionDest = &cd
		}
		out[i] = t
	}
	return out
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
