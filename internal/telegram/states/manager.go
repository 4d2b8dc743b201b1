package states

import (
	"fmt"
	"sync"
	"time"

	"smm-bot/internal/telegram/flows"
)

type session struct {
	state     State
	data      any
	touchedAt time.Time
}

// Manager управляет состояниями пользователей в памяти. Состояние и его данные
// всегда меняются вместе.
type Manager struct {
	mu       sync.RWMutex
	sessions map[int64]*session
	now      func() time.Time
}

// NewManager создает новый менеджер состояний
func NewManager() *Manager {
	return NewManagerWithClock(time.Now)
}

func NewManagerWithClock(now func() time.Time) *Manager {
	return &Manager{
		sessions: make(map[int64]*session),
		now:      now,
	}
}

// GetState получает текущее состояние пользователя
func (m *Manager) GetState(chatID int64) State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, exists := m.sessions[chatID]
	if !exists {
		return StateNone
	}
	return s.state
}

// SetState заменяет состояние и данные пользователя
func (m *Manager) SetState(chatID int64, state State, data any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[chatID] = &session{
		state:     state,
		data:      data,
		touchedAt: m.now(),
	}
}

// Clear очищает состояние пользователя
func (m *Manager) Clear(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, chatID)
}

// Take атомарно забирает данные и очищает сессию, если пользователь находится
// в состоянии state. Повторный вызов вернет false.
func (m *Manager) Take(chatID int64, state State) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, exists := m.sessions[chatID]
	if !exists || s.state != state {
		return nil, false
	}

	delete(m.sessions, chatID)
	return s.data, true
}

// Sweep удаляет сессии, не менявшиеся дольше idle. Возвращает число удаленных.
func (m *Manager) Sweep(idle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	deadline := m.now().Add(-idle)
	removed := 0
	for chatID, s := range m.sessions {
		if s.touchedAt.Before(deadline) {
			delete(m.sessions, chatID)
			removed++
		}
	}
	return removed
}

// Len возвращает число активных сессий
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}

func (m *Manager) GetCategorySelectionData(chatID int64) (*flows.CategorySelectionData, error) {
	return getData[flows.CategorySelectionData](m, chatID)
}

func (m *Manager) GetServiceSelectionData(chatID int64) (*flows.ServiceSelectionData, error) {
	return getData[flows.ServiceSelectionData](m, chatID)
}

func (m *Manager) GetLinkInputData(chatID int64) (*flows.LinkInputData, error) {
	return getData[flows.LinkInputData](m, chatID)
}

func (m *Manager) GetQuantityInputData(chatID int64) (*flows.QuantityInputData, error) {
	return getData[flows.QuantityInputData](m, chatID)
}

func getData[T any](m *Manager, chatID int64) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, exists := m.sessions[chatID]
	if !exists || s.data == nil {
		return nil, fmt.Errorf("no data for chat %d", chatID)
	}

	data, ok := s.data.(*T)
	if !ok {
		return nil, fmt.Errorf("invalid data type %T for chat %d", s.data, chatID)
	}

	return data, nil
}
