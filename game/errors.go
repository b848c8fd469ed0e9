package game

import (
	"fmt"

	"github.com/notpritamm/emergent-wordle/domain"
)

var (
	ErrRoomNotFound     = fmt.Errorf("room-not-found: %w", domain.ErrNotFound)
	ErrWrongPassword    = fmt.Errorf("wrong-password: %w", domain.ErrAuth)
	ErrNotHost          = fmt.Errorf("host-only: %w", domain.ErrAuth)
	ErrNotMember        = fmt.Errorf("not-a-member: %w", domain.ErrAuth)
	ErrEmptyRoomName    = fmt.Errorf("room-name-required: %w", domain.ErrValidation)
	ErrPasswordRequired = fmt.Errorf("private-room-needs-password: %w", domain.ErrValidation)
	ErrWordLength       = fmt.Errorf("word-must-be-3-to-8-letters: %w", domain.ErrValidation)
	ErrWordNotAlpha     = fmt.Errorf("word-must-be-letters-only: %w", domain.ErrValidation)
	ErrDuplicateWord    = fmt.Errorf("word-already-in-pool: %w", domain.ErrConflict)
	ErrEmptyWordPool    = fmt.Errorf("room-has-no-words: %w", domain.ErrValidation)
	ErrNoPlayers        = fmt.Errorf("no-players-for-game: %w", domain.ErrValidation)
	ErrGameInProgress   = fmt.Errorf("game-already-active: %w", domain.ErrConflict)
	ErrNoActiveGame     = fmt.Errorf("no-active-game: %w", domain.ErrState)
	ErrNotInGame        = fmt.Errorf("player-not-in-game: %w", domain.ErrState)
	ErrPlayerFinished   = fmt.Errorf("player-already-finished: %w", domain.ErrState)
	ErrBadGuess         = fmt.Errorf("guess-does-not-fit-board: %w", domain.ErrState)
)
