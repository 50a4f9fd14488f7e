package chess

import (
	"testing"

	"github.com/armadachess/armada/internal/testutil"
)

func TestTemplateMatches(t *testing.T) {
	rookUp := Template{Offset: Offset{1, 0}, Repeating: true}
	bishopNE := Template{Offset: Offset{1, 1}, Repeating: true}
	knightJump := Template{Offset: Offset{1, 2}}

	tests := []struct {
		name         string
		tmpl         Template
		dRank, dFile int
		want         bool
	}{
		{"rook one step", rookUp, 1, 0, true},
		{"rook many steps", rookUp, 5, 0, true},
		{"rook wrong sign", rookUp, -5, 0, false},
		{"rook sideways drift", rookUp, 5, 1, false},
		{"rook zero", rookUp, 0, 0, false},
		{"bishop diagonal", bishopNE, 3, 3, true},
		{"bishop wrong file sign", bishopNE, 3, -3, false},
		{"bishop off diagonal", bishopNE, 2, 3, false},
		{"knight exact", knightJump, 1, 2, true},
		{"knight no scaling", knightJump, 2, 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, tt.tmpl.Matches(tt.dRank, tt.dFile), tt.want)
		})
	}
}

func TestTemplateSteps(t *testing.T) {
	bishopNE := Template{Offset: Offset{1, 1}, Repeating: true}
	rookLeft := Template{Offset: Offset{0, -1}, Repeating: true}

	testutil.AssertEqual(t, bishopNE.Steps(3, 3), 3)
	testutil.AssertEqual(t, rookLeft.Steps(0, -4), 4)
	testutil.AssertEqual(t, Template{Offset: Offset{1, 2}}.Steps(1, 2), 1)
}

func TestMovesCatalogSelection(t *testing.T) {
	tests := []struct {
		name  string
		piece Piece
		want  CatalogID
	}{
		{"unmoved black pawn", NewPiece(Pawn, Black), CatalogPawnBlackNew},
		{"moved black pawn", NewPiece(Pawn, Black).Moved(), CatalogPawnBlack},
		{"unmoved white pawn", NewPiece(Pawn, White), CatalogPawnWhiteNew},
		{"moved white pawn", NewPiece(Pawn, White).Moved(), CatalogPawnWhite},
		{"unmoved king", NewPiece(King, White), CatalogKingNew},
		{"moved king", NewPiece(King, White).Moved(), CatalogKing},
		{"queen", NewPiece(Queen, Black), CatalogQueen},
		{"empty square", Piece{}, CatalogNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, tt.piece.Moves().ID, tt.want)
		})
	}
}

// White pawn templates are the black ones mirrored across the rank axis,
// forced destinations included.
func TestWhitePawnTemplatesMirrored(t *testing.T) {
	black := NewPiece(Pawn, Black).Moves().Templates
	white := NewPiece(Pawn, White).Moves().Templates
	testutil.AssertEqual(t, len(white), len(black))

	for i := range black {
		testutil.AssertEqual(t, white[i].Offset.Rank, -black[i].Offset.Rank, "template %d rank", i)
		testutil.AssertEqual(t, white[i].Offset.File, black[i].Offset.File, "template %d file", i)
		if black[i].ForcedDest != nil {
			testutil.AssertEqual(t, white[i].ForcedDest.Rank, -black[i].ForcedDest.Rank, "template %d forced dest", i)
		}
	}
}

func TestUnmovedWhitePawnDoubleStep(t *testing.T) {
	found := false
	for _, tmpl := range NewPiece(Pawn, White).Moves().Templates {
		if tmpl.Offset == (Offset{2, 0}) {
			found = true
			testutil.AssertTrue(t, tmpl.ProvokesOpportunity)
			testutil.AssertTrue(t, tmpl.CanMove)
			testutil.AssertFalse(t, tmpl.CanCapture)
		}
	}
	testutil.AssertTrue(t, found, "double step template missing")
}

func TestCatalogsCoverEveryID(t *testing.T) {
	seen := map[CatalogID]bool{}
	for _, cat := range Catalogs() {
		seen[cat.ID] = true
	}
	testutil.AssertEqual(t, len(seen), 10)
}
