package user

import (
	"sync"
	"time"
)

type User struct {
	Username  string    `json:"username"`
	FirstSeen time.Time `json:"firstSeen"`
	LastLogin time.Time `json:"lastLogin"`
}

// Store is the in-memory user registry behind POST /api/users/login. There
// are no credentials; a login either creates the record or touches it.
type Store struct {
	mu    sync.Mutex
	users map[string]*User
}

func NewStore() *Store {
	return &Store{users: make(map[string]*User)}
}

// Login registers or touches a username. Idempotent; reports whether the
// user was newly created.
func (s *Store) Login(username string) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	u, ok := s.users[username]
	if !ok {
		u = &User{Username: username, FirstSeen: now}
		s.users[username] = u
	}
	u.LastLogin = now
	return *u, !ok
}

// Exists reports whether the username ever logged in.
func (s *Store) Exists(username string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.users[username]
	return ok
}
