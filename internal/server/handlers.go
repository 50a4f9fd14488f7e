package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/armadachess/armada/internal/chess"
	"github.com/armadachess/armada/internal/engine"
	"github.com/armadachess/armada/internal/errors"
)

// Handler serves the JSON game API.
type Handler struct {
	mgr       *Manager
	windowMax int
	logger    *log.Logger
}

// NewHandler builds a handler around a manager. windowMax caps how many
// ranks a state response may carry.
func NewHandler(mgr *Manager, windowMax int, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{mgr: mgr, windowMax: windowMax, logger: logger}
}

// Router returns the API mux.
func (h *Handler) Router() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/new_game", h.handleNewGame)
	mux.HandleFunc("/api/move", h.handleMove)
	mux.HandleFunc("/api/promote", h.handlePromote)
	mux.HandleFunc("/api/state", h.handleState)
	return mux
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, errors.Wrap(errors.ErrInvalidConfig, "POST required"))
		return
	}
	id := h.mgr.Create()
	var resp newGameResponse
	resp.GameID = id
	_ = h.mgr.WithGame(id, func(b *chess.Board) error {
		resp.State = snapshotState(b, b.FirstRank(), h.windowMax)
		return nil
	})
	h.logger.Printf("new game %s (%d live)", id, h.mgr.Len())
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleMove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, errors.Wrap(errors.ErrInvalidConfig, "POST required"))
		return
	}
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, errors.Wrap(errors.ErrBadNotation, err.Error()))
		return
	}
	from, err := chess.ParseCoord(req.From)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	to, err := chess.ParseCoord(req.To)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	var resp moveResponse
	err = h.mgr.WithGame(req.GameID, func(b *chess.Board) error {
		outcome, err := engine.AttemptMove(b, from, to)
		if err != nil {
			return err
		}
		resp.Outcome = outcome.String()
		resp.State = snapshotState(b, b.FirstRank(), h.windowMax)
		return nil
	})
	if err != nil {
		h.writeError(w, statusFor(err), err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePromote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, errors.Wrap(errors.ErrInvalidConfig, "POST required"))
		return
	}
	var req promoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, errors.Wrap(errors.ErrBadNotation, err.Error()))
		return
	}

	var resp moveResponse
	err := h.mgr.WithGame(req.GameID, func(b *chess.Board) error {
		if err := engine.SelectPromotion(b, req.Choice); err != nil {
			return err
		}
		resp.Outcome = engine.Completed.String()
		resp.State = snapshotState(b, b.FirstRank(), h.windowMax)
		return nil
	})
	if err != nil {
		h.writeError(w, statusFor(err), err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, errors.Wrap(errors.ErrInvalidConfig, "GET required"))
		return
	}
	id := r.URL.Query().Get("game_id")
	fromRank := 0
	hasFrom := false
	if s := r.URL.Query().Get("from_rank"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, errors.Wrapf(errors.ErrBadNotation, "from_rank %q", s))
			return
		}
		fromRank, hasFrom = n, true
	}

	var st gameState
	err := h.mgr.WithGame(id, func(b *chess.Board) error {
		if !hasFrom {
			fromRank = b.FirstRank()
		}
		st = snapshotState(b, fromRank, h.windowMax)
		return nil
	})
	if err != nil {
		h.writeError(w, statusFor(err), err)
		return
	}
	h.writeJSON(w, http.StatusOK, st)
}

// statusFor maps engine rejections to HTTP statuses. Every rule rejection
// is a client error; only unknown games get their own code.
func statusFor(err error) int {
	if errors.Is(err, errors.ErrGameNotFound) {
		return http.StatusNotFound
	}
	return http.StatusUnprocessableEntity
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Printf("encoding response: %v", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}
