package game

import (
	"math/rand"

	"github.com/notpritamm/emergent-wordle/logger"
)

// SessionSnapshot is the reconnect payload: the caller's own board plus
// presence of everyone else's, and the round's target so the client can
// rebuild its keyboard.
type SessionSnapshot struct {
	Active  bool                        `json:"active"`
	Word    string                      `json:"word"`
	Player  *PlayerGameState            `json:"player,omitempty"`
	Players map[string]*PlayerGameState `json:"players"`
}

func newPlayerState(wordLen int) *PlayerGameState {
	board := make([][]Cell, MaxAttempts)
	for i := range board {
		row := make([]Cell, wordLen)
		for j := range row {
			row[j] = Cell{Status: StatusEmpty}
		}
		board[i] = row
	}
	return &PlayerGameState{Board: board}
}

func cloneState(ps *PlayerGameState) *PlayerGameState {
	if ps == nil {
		return nil
	}
	cp := *ps
	cp.Board = make([][]Cell, len(ps.Board))
	for i, row := range ps.Board {
		cp.Board[i] = append([]Cell(nil), row...)
	}
	return &cp
}

// StartGame begins a round. One word drawn from the pool becomes the shared
// target for every opted-in player; head-to-head comparability is the point,
// so all boards in a round chase the same word.
func (reg *Registry) StartGame(roomID, username string, opts StartOptions) error {
	room, err := reg.lookup(roomID)
	if err != nil {
		return err
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if !room.isHost(username) {
		return ErrNotHost
	}
	if len(room.words) == 0 {
		return ErrEmptyWordPool
	}
	if room.session != nil && room.session.Active {
		return ErrGameInProgress
	}

	pool := make([]string, len(room.words))
	for i, e := range room.words {
		pool[i] = e.Word
	}
	rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	words := pool
	if n := opts.AutoSelectWordCount; n > 0 && n < len(pool) {
		words = pool[:n]
	}
	target := words[0]

	session := &Session{
		Active:  true,
		Words:   words,
		Target:  target,
		Players: make(map[string]*PlayerGameState, len(room.members)),
	}
	for _, member := range room.members {
		if member == room.host && !opts.OwnerPlaying {
			continue
		}
		session.Players[member] = newPlayerState(len(target))
	}
	if len(session.Players) == 0 {
		return ErrNoPlayers
	}
	room.session = session

	logger.Infof("room %s: game started with %d players, %d-letter target", roomID, len(session.Players), len(target))
	reg.events.Broadcast(roomID, GameStartEvent{Type: "game_start", Word: target})
	return nil
}

// SubmitGuess scores one attempt for the player and advances their board.
// Precondition violations are protocol misuse, not bad input, hence the
// state-category errors.
func (reg *Registry) SubmitGuess(roomID, username, guess string) ([]Cell, error) {
	room, err := reg.lookup(roomID)
	if err != nil {
		return nil, err
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	session := room.session
	if session == nil || !session.Active {
		return nil, ErrNoActiveGame
	}
	ps, ok := session.Players[username]
	if !ok {
		return nil, ErrNotInGame
	}
	if ps.Completed || ps.CurrentAttempt >= MaxAttempts {
		return nil, ErrPlayerFinished
	}

	guess = normalizeWord(guess)
	if len(guess) != len(session.Target) || !isAlphaWord(guess) {
		return nil, ErrBadGuess
	}

	row := Score(guess, session.Target)
	ps.Board[ps.CurrentAttempt] = row
	ps.CurrentAttempt++

	if guess == session.Target {
		ps.Completed = true
		ps.Won = true
	} else if ps.CurrentAttempt >= MaxAttempts {
		ps.Completed = true
	}

	reg.events.Broadcast(roomID, newGameUpdate(username, ps))

	if ps.Completed {
		reg.finishPlayer(room, username, ps)
	}

	return append([]Cell(nil), row...), nil
}

// finishPlayer records the outcome and settles the session. Caller holds
// room.mu.
func (reg *Registry) finishPlayer(room *Room, username string, ps *PlayerGameState) {
	if reg.results != nil {
		reg.results.RecordResult(username, room.id, ps.Won, ps.CurrentAttempt)
	}
	reg.settleSession(room)
}

// settleSession retires the round once no incomplete boards remain. Caller
// holds room.mu.
func (reg *Registry) settleSession(room *Room) {
	for _, other := range room.session.Players {
		if !other.Completed {
			return
		}
	}
	room.session.Active = false
	reg.events.Broadcast(room.id, GameStateEvent{Type: "game_state", Active: false, Word: room.session.Target})
	logger.Infof("room %s: round over, target was %s", room.id, room.session.Target)
}

// dropParticipant discards a departed member's board so the remaining
// players never wait on someone who is gone; with their board removed the
// round can settle. Caller holds room.mu.
func (reg *Registry) dropParticipant(room *Room, username string) {
	session := room.session
	if session == nil || !session.Active {
		return
	}
	if _, ok := session.Players[username]; !ok {
		return
	}
	delete(session.Players, username)
	reg.settleSession(room)
}

// ResumeState rebuilds a reconnecting player's board. Nil when the session
// is inactive or the player never participated, so clients don't render a
// stale game. Read-only and idempotent.
func (reg *Registry) ResumeState(roomID, username string) (*PlayerGameState, error) {
	room, err := reg.lookup(roomID)
	if err != nil {
		return nil, err
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	session := room.session
	if session == nil || !session.Active {
		return nil, nil
	}
	return cloneState(session.Players[username]), nil
}

// SessionState is the full snapshot behind GET /api/game/state: the
// caller's board plus copies of everyone's boards for mini-board rendering.
func (reg *Registry) SessionState(roomID, username string) (SessionSnapshot, error) {
	room, err := reg.lookup(roomID)
	if err != nil {
		return SessionSnapshot{}, err
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	snap := SessionSnapshot{Players: map[string]*PlayerGameState{}}
	session := room.session
	if session == nil || !session.Active {
		return snap, nil
	}

	snap.Active = true
	snap.Word = session.Target
	snap.Player = cloneState(session.Players[username])
	for member, ps := range session.Players {
		snap.Players[member] = cloneState(ps)
	}
	return snap, nil
}

// ApplySnapshot accepts a client-reported progress snapshot (the original
// frontend scores locally and posts its board). It refreshes the stored
// state for reconnect/spectators and rebroadcasts, but it can never
// un-complete a player, and outcomes it introduces are recorded exactly
// once.
func (reg *Registry) ApplySnapshot(roomID, username string, board [][]Cell, currentAttempt int, gameOver, won bool) error {
	room, err := reg.lookup(roomID)
	if err != nil {
		return err
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	session := room.session
	if session == nil || !session.Active {
		return ErrNoActiveGame
	}
	ps, ok := session.Players[username]
	if !ok {
		return ErrNotInGame
	}
	if ps.Completed {
		return ErrPlayerFinished
	}
	if currentAttempt < 0 || currentAttempt > MaxAttempts || len(board) != MaxAttempts {
		return ErrBadGuess
	}

	ps.Board = board
	ps.CurrentAttempt = currentAttempt
	ps.Completed = gameOver
	ps.Won = won

	reg.events.Broadcast(roomID, newGameUpdate(username, ps))

	if ps.Completed {
		reg.finishPlayer(room, username, ps)
	}
	return nil
}
