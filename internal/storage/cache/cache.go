package cache

import (
	"sync"

	"github.com/DanRulev/wordweaver/internal/service"
)

// Factory builds the controller for a chat user seen for the first time.
type Factory func(userID int64) *service.Controller

// Cache holds one live session controller per chat user.
type Cache struct {
	mu         sync.Mutex
	sessions   map[int64]*service.Controller
	newSession Factory
}

func NewCache(newSession Factory) *Cache {
	return &Cache{
		sessions:   make(map[int64]*service.Controller),
		newSession: newSession,
	}
}

// Session returns the user's controller, creating it on first use. created reports whether
// it was just made.
func (w *Cache) Session(userID int64) (ctrl *service.Controller, created bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if ctrl, ok := w.sessions[userID]; ok {
		return ctrl, false
	}
	ctrl = w.newSession(userID)
	w.sessions[userID] = ctrl
	return ctrl, true
}

func (w *Cache) GetSession(userID int64) (*service.Controller, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	ctrl, exists := w.sessions[userID]
	return ctrl, exists
}

func (w *Cache) DeleteSession(userID int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.sessions, userID)
}

func (w *Cache) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.sessions)
}
