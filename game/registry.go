package game

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/google/uuid"

	"github.com/notpritamm/emergent-wordle/logger"
)

// Registry owns every Room record. The registry lock only guards the map;
// room state is guarded by each room's own mutex so unrelated rooms never
// serialize against each other.
type Registry struct {
	mu      sync.RWMutex
	rooms   map[string]*Room
	events  Broadcaster
	results ResultRecorder
}

func NewRegistry(events Broadcaster, results ResultRecorder) *Registry {
	return &Registry{
		rooms:   make(map[string]*Room),
		events:  events,
		results: results,
	}
}

func (reg *Registry) lookup(roomID string) (*Room, error) {
	reg.mu.RLock()
	room, ok := reg.rooms[roomID]
	reg.mu.RUnlock()
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// CreateRoom registers a new room and auto-joins the host.
func (reg *Registry) CreateRoom(name, description string, private bool, password, host string) (string, error) {
	if name == "" {
		return "", ErrEmptyRoomName
	}
	if private && password == "" {
		return "", ErrPasswordRequired
	}

	room := &Room{
		id:          uuid.NewString(),
		name:        name,
		description: description,
		private:     private,
		host:        host,
		members:     []string{host},
		createdAt:   time.Now(),
	}

	if private {
		hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
		if err != nil {
			return "", fmt.Errorf("hashing room password: %w", err)
		}
		room.passwordHash = hash
	}

	reg.mu.Lock()
	reg.rooms[room.id] = room
	reg.mu.Unlock()

	logger.Infof("room %s created by %s (private=%v)", room.id, host, private)
	return room.id, nil
}

// JoinRoom adds username to the room after the password gate. Re-joining an
// existing member is a no-op on membership; a wrong password never mutates
// anything.
func (reg *Registry) JoinRoom(roomID, username, password string) (RoomDetail, error) {
	room, err := reg.lookup(roomID)
	if err != nil {
		return RoomDetail{}, err
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	// A looked-up pointer can outlive the room's registry entry; a closed
	// room must not accept members it can never serve.
	if room.closed {
		return RoomDetail{}, ErrRoomNotFound
	}

	if room.private && !room.isMember(username) {
		match, err := argon2id.ComparePasswordAndHash(password, room.passwordHash)
		if err != nil || !match {
			return RoomDetail{}, ErrWrongPassword
		}
	}

	if !room.isMember(username) {
		room.members = append(room.members, username)
		notice := newSystemMessage(username + " joined the room")
		room.appendMessage(notice)
		reg.events.Broadcast(roomID, notice)
	}

	return room.detail(), nil
}

// LeaveRoom removes the member; the earliest-joined remaining member
// inherits the host role, and an emptied room is deleted outright.
func (reg *Registry) LeaveRoom(roomID, username string) error {
	room, err := reg.lookup(roomID)
	if err != nil {
		return err
	}

	room.mu.Lock()
	if !room.isMember(username) {
		room.mu.Unlock()
		return nil
	}

	stillPopulated := room.removeMember(username)
	if stillPopulated {
		reg.dropParticipant(room, username)
		notice := newSystemMessage(username + " left the room")
		room.appendMessage(notice)
		reg.events.Broadcast(roomID, notice)
	} else {
		room.closed = true
	}
	room.mu.Unlock()

	if !stillPopulated {
		reg.mu.Lock()
		delete(reg.rooms, roomID)
		reg.mu.Unlock()
		logger.Infof("room %s emptied and deleted", roomID)
	}
	return nil
}

// RemoveMember is the host's kick. The victim loses membership and their
// live connection for this room is forcibly closed.
func (reg *Registry) RemoveMember(roomID, host, target string) error {
	room, err := reg.lookup(roomID)
	if err != nil {
		return err
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if !room.isHost(host) {
		return ErrNotHost
	}
	if !room.isMember(target) || target == host {
		return nil
	}

	room.removeMember(target)
	reg.dropParticipant(room, target)
	notice := newSystemMessage(target + " was removed from the room")
	room.appendMessage(notice)
	reg.events.Broadcast(roomID, notice)
	reg.events.DisconnectUser(roomID, target)
	return nil
}

// AddWord appends a normalized word to the pool. Host only.
func (reg *Registry) AddWord(roomID, username, word string) error {
	room, err := reg.lookup(roomID)
	if err != nil {
		return err
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if !room.isHost(username) {
		return ErrNotHost
	}

	word = normalizeWord(word)
	if len(word) < MinWordLength || len(word) > MaxWordLength {
		return ErrWordLength
	}
	if !isAlphaWord(word) {
		return ErrWordNotAlpha
	}
	if room.wordIndex(word) >= 0 {
		return ErrDuplicateWord
	}

	room.words = append(room.words, WordEntry{Word: word, AddedBy: username, AddedAt: time.Now()})
	return nil
}

// RemoveWord deletes a word from the pool; absent words are a no-op.
func (reg *Registry) RemoveWord(roomID, username, word string) error {
	room, err := reg.lookup(roomID)
	if err != nil {
		return err
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if !room.isHost(username) {
		return ErrNotHost
	}
	if idx := room.wordIndex(normalizeWord(word)); idx >= 0 {
		room.words = slices.Delete(room.words, idx, idx+1)
	}
	return nil
}

// RoomDetail returns the full projection for one room.
func (reg *Registry) RoomDetail(roomID string) (RoomDetail, error) {
	room, err := reg.lookup(roomID)
	if err != nil {
		return RoomDetail{}, err
	}
	room.mu.Lock()
	defer room.mu.Unlock()
	return room.detail(), nil
}

// ListFilter narrows and orders the room list. Private filters on room
// privacy when set; SortBy accepts created_at, name or members.
type ListFilter struct {
	Private   *bool
	SortBy    string
	SortOrder string
}

// ListRooms returns summaries ordered per filter, newest rooms first by
// default.
func (reg *Registry) ListRooms(filter ListFilter) []RoomSummary {
	reg.mu.RLock()
	rooms := make([]*Room, 0, len(reg.rooms))
	for _, room := range reg.rooms {
		rooms = append(rooms, room)
	}
	reg.mu.RUnlock()

	summaries := make([]RoomSummary, 0, len(rooms))
	for _, room := range rooms {
		room.mu.Lock()
		s := room.summary()
		room.mu.Unlock()
		if filter.Private != nil && s.IsPrivate != *filter.Private {
			continue
		}
		summaries = append(summaries, s)
	}

	less := func(a, b RoomSummary) int {
		switch filter.SortBy {
		case "name":
			return cmp.Compare(a.Name, b.Name)
		case "members":
			return cmp.Compare(a.MemberCount, b.MemberCount)
		default:
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	}

	// created_at defaults to descending (newest rooms first); named sort
	// fields default to ascending.
	order := filter.SortOrder
	if order == "" {
		if filter.SortBy == "" || filter.SortBy == "created_at" {
			order = "desc"
		} else {
			order = "asc"
		}
	}

	slices.SortStableFunc(summaries, less)
	if order != "asc" {
		slices.Reverse(summaries)
	}
	return summaries
}

// PostChat stores a chat message in room history and fans it out to every
// connection, the sender included.
func (reg *Registry) PostChat(roomID, sender, content string) error {
	room, err := reg.lookup(roomID)
	if err != nil {
		return err
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if !room.isMember(sender) {
		return ErrNotMember
	}

	msg := newChatMessage(sender, content)
	room.appendMessage(msg)
	reg.events.Broadcast(roomID, msg)
	return nil
}
