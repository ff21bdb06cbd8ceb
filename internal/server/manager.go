package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/fallback"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// Session is one in-memory game. Its state is replaced, never mutated, so a
// snapshot taken under the lock stays valid after the lock is released.
type Session struct {
	ID string

	mu      sync.Mutex
	state   *chess.GameState
	history []string // Canonical notation of each played move
}

// GameManager owns the live sessions.
type GameManager struct {
	games    map[string]*Session
	maxGames int
	selector *fallback.Selector
	workers  int
	mu       sync.RWMutex
}

// NewGameManager creates an empty manager. maxGames of 0 means unlimited.
func NewGameManager(selector *fallback.Selector, maxGames, workers int) *GameManager {
	return &GameManager{
		games:    make(map[string]*Session),
		maxGames: maxGames,
		selector: selector,
		workers:  workers,
	}
}

// CreateGame starts a session from fen, or from the initial position when
// fen is empty.
func (gm *GameManager) CreateGame(fen string) (*Session, error) {
	state := chess.NewGame()
	if fen != "" {
		decoded, err := engine.DecodePosition(fen)
		if err != nil {
			return nil, err
		}
		state = decoded
	}

	gm.mu.Lock()
	defer gm.mu.Unlock()
	if gm.maxGames > 0 && len(gm.games) >= gm.maxGames {
		return nil, errors.Wrapf(errors.ErrSessionLimit, "%d games open", gm.maxGames)
	}

	session := &Session{ID: uuid.New().String(), state: state}
	gm.games[session.ID] = session
	return session, nil
}

// GetGame returns the session with the given id.
func (gm *GameManager) GetGame(gameID string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, exists := gm.games[gameID]
	if !exists {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "game %s", gameID)
	}
	return session, nil
}

// DeleteGame drops a session.
func (gm *GameManager) DeleteGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; !exists {
		return errors.Wrapf(errors.ErrGameNotFound, "game %s", gameID)
	}
	delete(gm.games, gameID)
	return nil
}

// Count returns the number of live sessions.
func (gm *GameManager) Count() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}

// MakeMove plays strict notation in a session.
func (gm *GameManager) MakeMove(gameID, text string) (Snapshot, string, error) {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return Snapshot{}, "", err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	m, err := notation.ParseState(text, session.state)
	if err != nil {
		return Snapshot{}, "", err
	}
	played := notation.RenderMove(session.state, m)
	if err := session.play(m, played); err != nil {
		return Snapshot{}, "", err
	}
	return newSnapshot(session.ID, session.state, session.history), played, nil
}

// Suggest plays the first legal candidate, or a substitute chosen by tier.
// Only ErrNoLegalMoves and ErrGameNotFound are returned.
func (gm *GameManager) Suggest(gameID string, candidates []string, tier fallback.Tier) (Snapshot, fallback.Resolution, error) {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return Snapshot{}, fallback.Resolution{}, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	var res fallback.Resolution
	if len(candidates) == 1 {
		res, err = gm.selector.ResolveWithTier(candidates[0], session.state, tier)
	} else {
		res, err = gm.selector.ResolveFirst(candidates, session.state, tier, gm.workers)
	}
	if err != nil {
		return Snapshot{}, res, err
	}
	if err := session.play(res.Move, res.Text); err != nil {
		return Snapshot{}, res, err
	}
	return newSnapshot(session.ID, session.state, session.history), res, nil
}

// Undo takes back the last move of a session.
func (gm *GameManager) Undo(gameID string) (Snapshot, error) {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return Snapshot{}, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if session.state.Ply() == 0 {
		return Snapshot{}, errors.Wrap(errors.ErrIllegalMove, "nothing to undo")
	}
	prev, err := engine.Replay(session.state, session.state.Ply()-1)
	if err != nil {
		return Snapshot{}, err
	}
	session.state = prev
	session.history = session.history[:len(session.history)-1]
	return newSnapshot(session.ID, session.state, session.history), nil
}

// Snapshot returns the current snapshot of a session.
func (gm *GameManager) Snapshot(gameID string) (Snapshot, error) {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return Snapshot{}, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	return newSnapshot(session.ID, session.state, session.history), nil
}

// play executes a resolved move. Callers hold s.mu.
func (s *Session) play(m chess.Move, text string) error {
	next, _, err := engine.Play(s.state, m.From, m.To, m.Promotion())
	if err != nil {
		return err
	}
	s.state = next
	s.history = append(s.history[:len(s.history):len(s.history)], text)
	return nil
}
