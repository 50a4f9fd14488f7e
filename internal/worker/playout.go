package worker

import (
	"math/rand"

	"github.com/armadachess/armada/internal/chess"
	"github.com/armadachess/armada/internal/engine"
)

// RunPlayout plays uniformly random legal moves from the opening position
// until checkmate, stalemate or the ply cap. Promotions are resolved
// randomly too. Deterministic for a given seed.
func RunPlayout(p Playout) PlayoutResult {
	rng := rand.New(rand.NewSource(p.Seed))
	b := chess.NewBoard()
	res := PlayoutResult{Index: p.Index, Seed: p.Seed, Outcome: "unfinished"}

	for ply := 0; ply < p.MaxPlies; ply++ {
		moves := engine.LegalMoves(b)
		if len(moves) == 0 {
			if engine.IsInCheck(b, b.Turn) {
				res.Outcome = "checkmate"
				res.Winner = b.Turn.Opposite().String()
			} else {
				res.Outcome = "stalemate"
			}
			break
		}
		m := moves[rng.Intn(len(moves))]
		outcome, err := engine.AttemptMove(b, m.From, m.To)
		if err != nil {
			res.Err = err
			return res
		}
		if outcome == engine.PromotionPending {
			if err := engine.SelectPromotion(b, rng.Intn(len(engine.PromotionChoices(b)))); err != nil {
				res.Err = err
				return res
			}
			res.Promotions++
		}
		res.Plies++
	}
	res.RankGrowth = len(b.Ranks) - chess.NumTraditionalRanks
	return res
}
