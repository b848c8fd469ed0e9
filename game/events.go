package game

import "time"

// Wire shapes pushed over the per-room websocket. Plain chat carries no
// type field; everything else is tagged so clients can switch on it.

type ChatMessage struct {
	Type      string    `json:"type,omitempty"` // "" for chat, "system" for notices
	Content   string    `json:"content"`
	Sender    string    `json:"sender,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type GameStartEvent struct {
	Type string `json:"type"` // "game_start"
	Word string `json:"word"`
}

type GameStateEvent struct {
	Type   string `json:"type"` // "game_state"
	Active bool   `json:"active"`
	Word   string `json:"word"`
}

type GameUpdateEvent struct {
	Type           string   `json:"type"` // "game_update"
	Player         string   `json:"player"`
	BoardData      [][]Cell `json:"boardData"`
	CurrentAttempt int      `json:"currentAttempt"`
	GameOver       bool     `json:"gameOver"`
	Won            bool     `json:"won"`
}

func newSystemMessage(content string) ChatMessage {
	return ChatMessage{Type: "system", Content: content, Timestamp: time.Now()}
}

func newChatMessage(sender, content string) ChatMessage {
	return ChatMessage{Content: content, Sender: sender, Timestamp: time.Now()}
}

func newGameUpdate(username string, ps *PlayerGameState) GameUpdateEvent {
	return GameUpdateEvent{
		Type:           "game_update",
		Player:         username,
		BoardData:      ps.Board,
		CurrentAttempt: ps.CurrentAttempt,
		GameOver:       ps.Completed,
		Won:            ps.Won,
	}
}

// Broadcaster is the fan-out surface the registry drives. The hub
// implements it; tests substitute a recorder.
type Broadcaster interface {
	Broadcast(roomID string, event any)
	DisconnectUser(roomID, username string)
}

// ResultRecorder receives completed-game outcomes. Implemented by the
// leaderboard service.
type ResultRecorder interface {
	RecordResult(username, roomID string, won bool, attempts int)
}
