package game

import (
	"sync"
	"time"
)

const (
	MinWordLength = 3
	MaxWordLength = 8
	MaxAttempts   = 6
)

// Status is the evaluation result for a single letter cell.
type Status string

const (
	StatusEmpty   Status = "empty"
	StatusCorrect Status = "correct"
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

// Cell is one letter slot on a player's board.
type Cell struct {
	Letter string `json:"letter"`
	Status Status `json:"status"`
}

// PlayerGameState is one player's board within a session. Scored rows are
// immutable; only the row at CurrentAttempt may still change.
type PlayerGameState struct {
	Board          [][]Cell `json:"boardData"`
	CurrentAttempt int      `json:"currentAttempt"`
	Completed      bool     `json:"gameOver"`
	Won            bool     `json:"won"`
}

// Session is the single active game of a room. Every opted-in member holds
// exactly one PlayerGameState while Active is true.
type Session struct {
	Active  bool
	Words   []string
	Target  string
	Players map[string]*PlayerGameState
}

// WordEntry is one candidate target word in a room's pool, upper-cased.
type WordEntry struct {
	Word    string    `json:"word"`
	AddedBy string    `json:"addedBy"`
	AddedAt time.Time `json:"addedAt"`
}

// Room is the authoritative record for one named room. All mutations happen
// while holding mu, which is the room's serialization token: operations on
// different rooms never contend.
type Room struct {
	mu sync.Mutex

	id           string
	name         string
	description  string
	private      bool
	closed       bool // set under mu before the registry drops the room
	passwordHash string
	host         string
	members      []string // join order, members[0] joined earliest
	words        []WordEntry
	messages     []ChatMessage
	session      *Session
	createdAt    time.Time
}

// RoomSummary is the list-view projection of a room.
type RoomSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsPrivate   bool      `json:"isPrivate"`
	Host        string    `json:"host"`
	MemberCount int       `json:"memberCount"`
	WordCount   int       `json:"wordCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RoomDetail is the full projection returned on join and room fetch.
type RoomDetail struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	IsPrivate   bool          `json:"isPrivate"`
	Host        string        `json:"host"`
	Members     []string      `json:"members"`
	Words       []WordEntry   `json:"words"`
	Messages    []ChatMessage `json:"messages"`
	GameState   GameStateView `json:"gameState"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// GameStateView exposes session presence without leaking boards.
type GameStateView struct {
	Active       bool            `json:"active"`
	PlayerStates map[string]bool `json:"playerStates"`
}

// StartOptions control word selection and host participation for a round.
type StartOptions struct {
	AutoSelectWordCount int  `json:"autoSelectWordCount"`
	OwnerPlaying        bool `json:"ownerPlaying"`
}
