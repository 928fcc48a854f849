// Package session владеет состоянием сессии покупателя: одна корзина и один
// выбор расписания на сессию. Сессия явно создаётся, когда покупатель начинает
// оформление, и удаляется после завершения заказа.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StorefrontService/internal/cart"
	"github.com/m04kA/SMC-StorefrontService/internal/schedule"
)

// ErrSessionNotFound возвращается, когда сессия с указанным id не существует
var ErrSessionNotFound = errors.New("session.store: session not found")

// Session активное состояние оформления заказа одного покупателя
// Cart и Selection не синхронизированы по отдельности - весь доступ идет через Do
type Session struct {
	ID        string
	Cart      *cart.Ledger
	Selection *schedule.Selection
	CreatedAt time.Time

	mu sync.Mutex
}

// Do выполняет fn с эксклюзивным доступом к состоянию сессии
// Каждая мутация - атомарная реакция на одно действие покупателя
func (s *Session) Do(fn func(*Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s)
}

// Store in-memory реестр активных сессий покупателей
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore создает пустое хранилище сессий
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create создает новую сессию с пустой корзиной и пустым выбором расписания
func (s *Store) Create() *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		Cart:      cart.NewLedger(),
		Selection: schedule.NewSelection(),
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// Get возвращает сессию по id
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Delete удаляет сессию. Неизвестный id - no-op
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
