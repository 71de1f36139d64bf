package services

import (
	"sync"
	"time"
)

// conversationSession is one user's bounded transcript.
type conversationSession struct {
	turns      []ChatMessage
	lastActive time.Time
}

// ConversationStore keeps an independently capped chat history per user.
// A session is created on the user's first message and evicted after
// sitting idle longer than ttl.
type ConversationStore struct {
	mu       sync.Mutex
	limit    int
	ttl      time.Duration
	sessions map[uint]*conversationSession
}

func NewConversationStore(limit int, ttl time.Duration) *ConversationStore {
	if limit <= 0 {
		limit = 10
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &ConversationStore{
		limit:    limit,
		ttl:      ttl,
		sessions: make(map[uint]*conversationSession),
	}
}

// AppendUser records a user turn. When the transcript is at or past the
// cap, the oldest turns are dropped first so the history sits one slot
// below the cap before the new turn goes in.
func (s *ConversationStore) AppendUser(userID uint, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictIdle()

	sess := s.sessions[userID]
	if sess == nil {
		sess = &conversationSession{}
		s.sessions[userID] = sess
	}
	if len(sess.turns) >= s.limit {
		kept := sess.turns[len(sess.turns)-s.limit+1:]
		sess.turns = append([]ChatMessage(nil), kept...)
	}
	sess.turns = append(sess.turns, ChatMessage{Role: "user", Content: content})
	sess.lastActive = time.Now()
}

// AppendAssistant records the reply. This may leave the transcript one
// past the cap until the next user turn trims it again.
func (s *ConversationStore) AppendAssistant(userID uint, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessions[userID]
	if sess == nil {
		sess = &conversationSession{}
		s.sessions[userID] = sess
	}
	sess.turns = append(sess.turns, ChatMessage{Role: "assistant", Content: content})
	sess.lastActive = time.Now()
}

// History returns a copy of the user's transcript in stored order.
func (s *ConversationStore) History(userID uint) []ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessions[userID]
	if sess == nil {
		return nil
	}
	return append([]ChatMessage(nil), sess.turns...)
}

// Clear drops the user's session entirely.
func (s *ConversationStore) Clear(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// evictIdle removes sessions idle past the ttl. Callers must hold mu.
func (s *ConversationStore) evictIdle() {
	cutoff := time.Now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.lastActive.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
