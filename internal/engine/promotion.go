package engine

import (
	"github.com/armadachess/armada/internal/chess"
	"github.com/armadachess/armada/internal/errors"
)

// PromotionChoices returns the kinds the pending pawn may become, in
// display order. Empty when no promotion is pending.
func PromotionChoices(b *chess.Board) []chess.PieceKind {
	at, ok := b.PendingPromotion()
	if !ok {
		return nil
	}
	p, _ := b.Get(at)
	return p.Kind.PromotionOptions()
}

// SelectPromotion resolves a pending promotion by index into
// PromotionChoices and flips the turn. The piece keeps its move count.
func SelectPromotion(b *chess.Board, choice int) error {
	at, ok := b.PendingPromotion()
	if !ok {
		return errors.ErrNoPromotionPending
	}
	cell := b.Cell(at)
	options := cell.Kind.PromotionOptions()
	if choice < 0 || choice >= len(options) {
		return errors.Wrapf(errors.ErrBadPromotion, "choice %d of %d", choice, len(options))
	}
	cell.Kind = options[choice]
	b.Mode = chess.ModeIdle
	b.Pending = chess.Coord{}
	b.Turn = b.Turn.Opposite()
	return nil
}
