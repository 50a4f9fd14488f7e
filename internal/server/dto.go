package server

import (
	"strings"
	"unicode"

	"github.com/armadachess/armada/internal/chess"
	"github.com/armadachess/armada/internal/engine"
)

// newGameResponse is returned by /api/new_game.
type newGameResponse struct {
	GameID string    `json:"game_id"`
	State  gameState `json:"state"`
}

// moveRequest is the body of /api/move.
type moveRequest struct {
	GameID string `json:"game_id"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// promoteRequest is the body of /api/promote.
type promoteRequest struct {
	GameID string `json:"game_id"`
	Choice int    `json:"choice"`
}

// moveResponse is returned by /api/move and /api/promote.
type moveResponse struct {
	Outcome string    `json:"outcome"`
	State   gameState `json:"state"`
}

// gameState is a bounded snapshot of a board. Boards grow without limit;
// the rank window is capped and callers page through it with the window
// query parameters.
type gameState struct {
	Turn string `json:"turn"`
	Mode string `json:"mode"`

	// Ranks holds one row per stored rank inside the window, lowest rank
	// first. Uppercase letters are white pieces, lowercase black, '.' is
	// empty.
	Ranks       []string `json:"ranks"`
	WindowFirst int      `json:"window_first_rank"`
	FirstRank   int      `json:"first_rank"`
	LastRank    int      `json:"last_rank"`

	Opportunity string   `json:"opportunity,omitempty"`
	Pending     string   `json:"pending_promotion,omitempty"`
	Choices     []string `json:"promotion_choices,omitempty"`

	InCheck   bool `json:"in_check"`
	Checkmate bool `json:"checkmate"`
	Stalemate bool `json:"stalemate"`
}

// errorResponse is the uniform error body.
type errorResponse struct {
	Error string `json:"error"`
}

// snapshotState renders a board into a gameState with at most windowMax
// ranks. When the stored span exceeds the window, the window is anchored
// at fromRank (clamped into the stored span).
func snapshotState(b *chess.Board, fromRank, windowMax int) gameState {
	first, last := b.FirstRank(), b.LastRank()
	if fromRank < first {
		fromRank = first
	}
	if fromRank > last {
		fromRank = last
	}
	end := chess.AddSat(fromRank, windowMax-1)
	if end > last {
		end = last
	}

	st := gameState{
		Turn:        b.Turn.String(),
		Mode:        "idle",
		WindowFirst: fromRank,
		FirstRank:   first,
		LastRank:    last,
	}
	for r := fromRank; r <= end; r++ {
		st.Ranks = append(st.Ranks, renderRank(b, r))
	}
	if b.HasOpportunity {
		st.Opportunity = chess.FormatCoord(b.Opportunity)
	}
	if at, ok := b.PendingPromotion(); ok {
		st.Mode = "awaiting_promotion"
		st.Pending = chess.FormatCoord(at)
		for _, k := range engine.PromotionChoices(b) {
			st.Choices = append(st.Choices, k.String())
		}
	} else {
		st.InCheck = engine.IsInCheck(b, b.Turn)
		if !engine.HasLegalMove(b) {
			st.Checkmate = st.InCheck
			st.Stalemate = !st.InCheck
		}
	}
	return st
}

func renderRank(b *chess.Board, rank int) string {
	var sb strings.Builder
	for f := 0; f < chess.NumFiles; f++ {
		p, _ := b.Get(chess.Coord{Rank: rank, File: f})
		if p.IsEmpty() {
			sb.WriteByte('.')
			continue
		}
		letter := rune(p.Kind.Letter())
		if p.Team == chess.Black {
			letter = unicode.ToLower(letter)
		}
		sb.WriteRune(letter)
	}
	return sb.String()
}
