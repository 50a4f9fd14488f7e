// Package server exposes games over a small JSON HTTP API. Each game is an
// independent board addressed by a UUID; all rule decisions stay in the
// engine package.
package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/armadachess/armada/internal/chess"
	"github.com/armadachess/armada/internal/errors"
)

// Manager owns all live game sessions.
type Manager struct {
	mu    sync.Mutex
	games map[string]*session
}

// session serializes access to one board. Engine operations are
// single-board affairs; concurrent requests for the same game take turns.
type session struct {
	mu    sync.Mutex
	board *chess.Board
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{games: make(map[string]*session)}
}

// Create starts a new game and returns its id.
func (m *Manager) Create() string {
	id := uuid.NewString()
	m.mu.Lock()
	m.games[id] = &session{board: chess.NewBoard()}
	m.mu.Unlock()
	return id
}

// WithGame runs fn with exclusive access to the identified game's board.
func (m *Manager) WithGame(id string, fn func(*chess.Board) error) error {
	m.mu.Lock()
	s, ok := m.games[id]
	m.mu.Unlock()
	if !ok {
		return errors.Wrapf(errors.ErrGameNotFound, "id %s", id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.board)
}

// Delete removes a game. Unknown ids are ignored.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.games, id)
	m.mu.Unlock()
}

// Len returns the number of live games.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.games)
}
