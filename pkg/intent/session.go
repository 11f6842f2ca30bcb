package intent

import (
	"sync"
	"time"
)

// session guarda o estado da conversa de uma sessão. mu serializa os turnos
// da sessão, incluindo o despacho de uma ação confirmada.
type session struct {
	mu       sync.Mutex
	state    ConversationState
	lastSeen time.Time
}

// SessionStore mantém as sessões em memória. O estado não sobrevive a reinícios.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	now      func() time.Time
}

// NewSessionStore cria um armazenamento de sessões vazio
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*session),
		now:      time.Now,
	}
}

// acquire retorna a sessão, criando-a se necessário, já com o lock do turno
func (s *SessionStore) acquire(sessionID string) *session {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &session{}
		s.sessions[sessionID] = sess
	}
	sess.lastSeen = s.now()
	s.mu.Unlock()

	sess.mu.Lock()
	return sess
}

// Snapshot retorna uma cópia do estado da sessão
func (s *SessionStore) Snapshot(sessionID string) ConversationState {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if !ok {
		return EmptyState()
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.state
}

// Len retorna o número de sessões em memória
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Prune remove sessões ociosas há mais de maxIdle. Sessões com turno em
// andamento são mantidas.
func (s *SessionStore) Prune(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	removed := 0
	for id, sess := range s.sessions {
		if !sess.lastSeen.Before(cutoff) {
			continue
		}
		if !sess.mu.TryLock() {
			continue
		}
		delete(s.sessions, id)
		sess.mu.Unlock()
		removed++
	}
	return removed
}
