package game

import "sync"

// eventRecorder captures everything the registry fans out, in order.
type eventRecorder struct {
	mu          sync.Mutex
	events      []recordedEvent
	disconnects []string
}

type recordedEvent struct {
	roomID string
	event  any
}

func newEventRecorder() *eventRecorder {
	return &eventRecorder{}
}

func (r *eventRecorder) Broadcast(roomID string, event any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{roomID: roomID, event: event})
}

func (r *eventRecorder) DisconnectUser(roomID, username string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.disconnects = append(r.disconnects, roomID+"/"+username)
}

func (r *eventRecorder) eventsOfType(match func(any) bool) []recordedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []recordedEvent
	for _, e := range r.events {
		if match(e.event) {
			out = append(out, e)
		}
	}
	return out
}

func (r *eventRecorder) gameUpdates() []GameUpdateEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []GameUpdateEvent
	for _, e := range r.events {
		if upd, ok := e.event.(GameUpdateEvent); ok {
			out = append(out, upd)
		}
	}
	return out
}

// resultRecorder captures leaderboard increments.
type resultRecorder struct {
	mu      sync.Mutex
	results []recordedResult
}

type recordedResult struct {
	username string
	roomID   string
	won      bool
	attempts int
}

func newResultRecorder() *resultRecorder {
	return &resultRecorder{}
}

func (r *resultRecorder) RecordResult(username, roomID string, won bool, attempts int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, recordedResult{username, roomID, won, attempts})
}

func (r *resultRecorder) forUser(username string) []recordedResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []recordedResult
	for _, res := range r.results {
		if res.username == username {
			out = append(out, res)
		}
	}
	return out
}
