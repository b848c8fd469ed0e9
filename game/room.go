package game

import "slices"

// Bounded chat history replayed to clients on room fetch. Older messages
// fall off; live clients already received them.
const maxStoredMessages = 500

// Helpers below assume the caller holds r.mu.

func (r *Room) isMember(username string) bool {
	return slices.Contains(r.members, username)
}

func (r *Room) isHost(username string) bool {
	return r.host == username
}

func (r *Room) wordIndex(word string) int {
	return slices.IndexFunc(r.words, func(e WordEntry) bool { return e.Word == word })
}

// removeMember drops the username and, when the departing member hosted the
// room, promotes the earliest-joined remaining member. Reports whether the
// room still has members.
func (r *Room) removeMember(username string) bool {
	idx := slices.Index(r.members, username)
	if idx >= 0 {
		r.members = slices.Delete(r.members, idx, idx+1)
	}
	if len(r.members) == 0 {
		return false
	}
	if r.host == username {
		r.host = r.members[0]
	}
	return true
}

func (r *Room) appendMessage(msg ChatMessage) {
	r.messages = append(r.messages, msg)
	if len(r.messages) > maxStoredMessages {
		r.messages = r.messages[len(r.messages)-maxStoredMessages:]
	}
}

func (r *Room) summary() RoomSummary {
	return RoomSummary{
		ID:          r.id,
		Name:        r.name,
		Description: r.description,
		IsPrivate:   r.private,
		Host:        r.host,
		MemberCount: len(r.members),
		WordCount:   len(r.words),
		CreatedAt:   r.createdAt,
	}
}

func (r *Room) detail() RoomDetail {
	detail := RoomDetail{
		ID:          r.id,
		Name:        r.name,
		Description: r.description,
		IsPrivate:   r.private,
		Host:        r.host,
		Members:     slices.Clone(r.members),
		Words:       slices.Clone(r.words),
		Messages:    slices.Clone(r.messages),
		CreatedAt:   r.createdAt,
		GameState:   GameStateView{PlayerStates: map[string]bool{}},
	}
	if r.session != nil {
		detail.GameState.Active = r.session.Active
		for username := range r.session.Players {
			detail.GameState.PlayerStates[username] = true
		}
	}
	return detail
}
