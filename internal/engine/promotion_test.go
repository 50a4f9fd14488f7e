package engine

import (
	"testing"

	"github.com/armadachess/armada/internal/chess"
	"github.com/armadachess/armada/internal/errors"
	"github.com/armadachess/armada/internal/testutil"
)

// promotionBoard sets up a white pawn one step short of its promotion
// rank. Both kings sit behind a pawn of their own so the wall queens past
// the stored ranks have no open line to them.
func promotionBoard() *chess.Board {
	b := bareBoard(chess.White)
	put(b, chess.Coord{Rank: 6, File: 0}, chess.NewPiece(chess.Pawn, chess.White).Moved())
	put(b, chess.Coord{Rank: 0, File: 4}, chess.NewPiece(chess.King, chess.White))
	put(b, chess.Coord{Rank: 1, File: 4}, chess.NewPiece(chess.Pawn, chess.White))
	put(b, chess.Coord{Rank: 7, File: 7}, chess.NewPiece(chess.King, chess.Black))
	put(b, chess.Coord{Rank: 6, File: 7}, chess.NewPiece(chess.Pawn, chess.Black))
	return b
}

func TestPromotionFlow(t *testing.T) {
	b := promotionBoard()

	outcome := mustMove(t, b, "a7 a8")
	testutil.AssertEqual(t, outcome, PromotionPending)
	testutil.AssertEqual(t, b.Mode, chess.ModeAwaitingPromotion)
	testutil.AssertEqual(t, b.Turn, chess.White, "the turn holds until the choice is made")

	at, ok := b.PendingPromotion()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, at, chess.Coord{Rank: 7, File: 0})
	testutil.AssertEqual(t, PromotionChoices(b),
		[]chess.PieceKind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight})

	// Ordinary moves are locked out while the choice is pending.
	err := mustReject(t, b, "e1 e2")
	testutil.AssertTrue(t, errors.Is(err, errors.ErrAwaitingPromotion))

	testutil.AssertNoError(t, SelectPromotion(b, 0))
	queen, _ := b.Get(chess.Coord{Rank: 7, File: 0})
	testutil.AssertEqual(t, queen.Kind, chess.Queen)
	testutil.AssertEqual(t, queen.Team, chess.White)
	testutil.AssertEqual(t, queen.NumMoves, uint16(2), "promotion keeps the move count")
	testutil.AssertEqual(t, b.Mode, chess.ModeIdle)
	testutil.AssertEqual(t, b.Turn, chess.Black)
}

func TestPromotionBadChoice(t *testing.T) {
	b := promotionBoard()
	mustMove(t, b, "a7 a8")

	testutil.AssertTrue(t, errors.Is(SelectPromotion(b, -1), errors.ErrBadPromotion))
	testutil.AssertTrue(t, errors.Is(SelectPromotion(b, 4), errors.ErrBadPromotion))
	testutil.AssertEqual(t, b.Mode, chess.ModeAwaitingPromotion, "a bad choice leaves the gate closed")
}

func TestPromotionWithoutPending(t *testing.T) {
	b := chess.NewBoard()
	testutil.AssertTrue(t, errors.Is(SelectPromotion(b, 0), errors.ErrNoPromotionPending))
	testutil.AssertEqual(t, len(PromotionChoices(b)), 0)
}

func TestBlackPromotesOnRankOne(t *testing.T) {
	b := bareBoard(chess.Black)
	put(b, chess.Coord{Rank: 1, File: 3}, chess.NewPiece(chess.Pawn, chess.Black).Moved())
	put(b, chess.Coord{Rank: 7, File: 7}, chess.NewPiece(chess.King, chess.Black))
	put(b, chess.Coord{Rank: 6, File: 7}, chess.NewPiece(chess.Pawn, chess.Black))
	put(b, chess.Coord{Rank: 0, File: 0}, chess.NewPiece(chess.King, chess.White))
	put(b, chess.Coord{Rank: 1, File: 0}, chess.NewPiece(chess.Pawn, chess.White))

	outcome := mustMove(t, b, "d2 d1")
	testutil.AssertEqual(t, outcome, PromotionPending)

	testutil.AssertNoError(t, SelectPromotion(b, 3))
	knight, _ := b.Get(chess.Coord{Rank: 0, File: 3})
	testutil.AssertEqual(t, knight.Kind, chess.Knight)
	testutil.AssertEqual(t, knight.Team, chess.Black)
	testutil.AssertEqual(t, b.Turn, chess.White)
}
