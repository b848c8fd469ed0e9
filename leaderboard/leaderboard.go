package leaderboard

import (
	"cmp"
	"slices"
	"sync"
)

// Entry is the aggregated record for one username, either globally or
// within a single room. Entries are derived from game outcomes only; they
// are never edited directly.
type Entry struct {
	Username      string `json:"username"`
	GamesPlayed   int    `json:"gamesPlayed"`
	GamesWon      int    `json:"won"`
	WordsSolved   int    `json:"wordsSolved"`
	CurrentStreak int    `json:"currentStreak"`
	MaxStreak     int    `json:"maxStreak"`
}

// Service aggregates completed-game outcomes in memory.
type Service struct {
	mu     sync.Mutex
	global map[string]*Entry
	rooms  map[string]map[string]*Entry
}

func NewService() *Service {
	return &Service{
		global: make(map[string]*Entry),
		rooms:  make(map[string]map[string]*Entry),
	}
}

// RecordResult folds one finished game into the global table and, when the
// game was played inside a room, that room's table. Streaks reset on loss
// and the running maximum is kept.
func (s *Service) RecordResult(username, roomID string, won bool, attempts int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.apply(s.global, username, won)
	if roomID != "" {
		room, ok := s.rooms[roomID]
		if !ok {
			room = make(map[string]*Entry)
			s.rooms[roomID] = room
		}
		s.apply(room, username, won)
	}
}

func (s *Service) apply(table map[string]*Entry, username string, won bool) {
	e, ok := table[username]
	if !ok {
		e = &Entry{Username: username}
		table[username] = e
	}
	e.GamesPlayed++
	if won {
		e.GamesWon++
		e.WordsSolved++
		e.CurrentStreak++
		e.MaxStreak = max(e.MaxStreak, e.CurrentStreak)
	} else {
		e.CurrentStreak = 0
	}
}

// GetGlobal returns every player ordered by words solved descending, ties
// broken by username for stable output.
func (s *Service) GetGlobal() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return rank(s.global)
}

// GetRoom returns the standings for one room; unknown rooms are empty.
func (s *Service) GetRoom(roomID string) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return rank(s.rooms[roomID])
}

func rank(table map[string]*Entry) []Entry {
	out := make([]Entry, 0, len(table))
	for _, e := range table {
		out = append(out, *e)
	}
	slices.SortFunc(out, func(a, b Entry) int {
		if c := cmp.Compare(b.WordsSolved, a.WordsSolved); c != 0 {
			return c
		}
		return cmp.Compare(a.Username, b.Username)
	})
	return out
}
