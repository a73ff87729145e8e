// ABOUTME: Admin editor sessions: uuid-keyed, TTL-expired, capacity-limited storage of EditorMode.
// ABOUTME: Deleting a post clears any session whose mode still points at the deleted id.
package web

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/brightpath-web/sitewright/content"
)

// Session is one admin editing session. The mode is the explicit editing
// context: idle, editing an existing post, or composing a new draft.
type Session struct {
	ID         string
	Mode       content.EditorMode
	CreatedAt  time.Time
	LastAccess time.Time
}

// SessionStore is a thread-safe in-memory session store with TTL cleanup and
// capacity limits.
type SessionStore struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	maxSessions int
	ttl         time.Duration
}

// NewSessionStore creates a new session store.
func NewSessionStore(maxSessions int, ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions:    make(map[string]*Session),
		maxSessions: maxSessions,
		ttl:         ttl,
	}
}

// Create creates a new idle session, evicting the oldest when at capacity.
func (s *SessionStore) Create() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sessions) >= s.maxSessions {
		var oldestID string
		var oldestTime time.Time
		for id, sess := range s.sessions {
			if oldestTime.IsZero() || sess.LastAccess.Before(oldestTime) {
				oldestID = id
				oldestTime = sess.LastAccess
			}
		}
		delete(s.sessions, oldestID)
	}

	now := time.Now()
	sess := &Session{
		ID:         uuid.New().String(),
		Mode:       content.Idle{},
		CreatedAt:  now,
		LastAccess: now,
	}
	s.sessions[sess.ID] = sess
	return sess
}

// Get retrieves a session by ID and updates its LastAccess time.
func (s *SessionStore) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	sess.LastAccess = time.Now()
	return sess, true
}

// SetMode replaces a session's editing mode. No-op when the session is gone.
func (s *SessionStore) SetMode(id string, mode content.EditorMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		sess.Mode = mode
		sess.LastAccess = time.Now()
	}
}

// ClearPostSelection resets to idle every session whose mode targets the
// given post id. Called after a post is deleted.
func (s *SessionStore) ClearPostSelection(postID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sess := range s.sessions {
		if m, ok := sess.Mode.(content.EditingExisting); ok && m.PostID == postID {
			sess.Mode = content.Idle{}
		}
	}
}

// Cleanup removes sessions older than TTL.
func (s *SessionStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.LastAccess.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

// StartCleanup starts a background cleanup goroutine and returns a stop function.
func (s *SessionStore) StartCleanup(interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				s.Cleanup()
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() {
		close(done)
	}
}

// modeJSON is the wire format for an EditorMode.
type modeJSON struct {
	Mode   string                 `json:"mode"`
	PostID string                 `json:"postId,omitempty"`
	Draft  *content.BlogPostDraft `json:"draft,omitempty"`
}

// MarshalMode serializes an EditorMode with a "mode" discriminator.
func MarshalMode(mode content.EditorMode) ([]byte, error) {
	j := modeJSON{Mode: mode.ModeName()}
	switch m := mode.(type) {
	case content.Idle:
	case content.EditingExisting:
		j.PostID = m.PostID
	case content.ComposingNew:
		draft := m.Draft
		j.Draft = &draft
	default:
		return nil, fmt.Errorf("unknown editor mode: %T", mode)
	}
	return json.Marshal(j)
}

// UnmarshalMode deserializes an EditorMode from its wire format.
func UnmarshalMode(data []byte) (content.EditorMode, error) {
	var j modeJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("unmarshal mode: %w", err)
	}

	switch j.Mode {
	case "idle":
		return content.Idle{}, nil
	case "editing":
		if j.PostID == "" {
			return nil, fmt.Errorf("editing mode requires postId")
		}
		return content.EditingExisting{PostID: j.PostID}, nil
	case "composing":
		draft := content.NewDraft()
		if j.Draft != nil {
			draft = *j.Draft
		}
		return content.ComposingNew{Draft: draft}, nil
	default:
		return nil, fmt.Errorf("unknown editor mode: %q", j.Mode)
	}
}
