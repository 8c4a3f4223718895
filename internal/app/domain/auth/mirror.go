package auth

import (
	"fmt"
	"sync"

	"github.com/gin-contrib/sessions"
)

// UserKey is the key the serialized session is stored under.
const UserKey = "user"

// Mirror is durable storage for one serialized session. Load returns nil
// data and no error when nothing is stored.
type Mirror interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Remove() error
}

// MemoryMirror keeps the serialized session in process memory.
type MemoryMirror struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryMirror() *MemoryMirror {
	return &MemoryMirror{}
}

func (m *MemoryMirror) Load() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, nil
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, nil
}

func (m *MemoryMirror) Save(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	return nil
}

func (m *MemoryMirror) Remove() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	return nil
}

// SessionMirror stores the serialized session in a gin-contrib/sessions
// session, normally backed by a signed cookie.
type SessionMirror struct {
	session sessions.Session
}

func NewSessionMirror(session sessions.Session) *SessionMirror {
	return &SessionMirror{session: session}
}

func (m *SessionMirror) Load() ([]byte, error) {
	switch v := m.session.Get(UserKey).(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return nil, fmt.Errorf("unexpected session value type %T", v)
	}
}

func (m *SessionMirror) Save(data []byte) error {
	m.session.Set(UserKey, string(data))
	if err := m.session.Save(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (m *SessionMirror) Remove() error {
	m.session.Delete(UserKey)
	if err := m.session.Save(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
