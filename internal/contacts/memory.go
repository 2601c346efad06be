package contacts

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is the development backend for contacts.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	items  []Contact
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1}
}

func (m *MemoryRepo) Create(_ context.Context, in NewContact, now time.Time) (Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ct := Contact{
		ID:        m.nextID,
		Name:      in.Name,
		Email:     in.Email,
		Company:   in.Company,
		Service:   in.Service,
		Message:   in.Message,
		CreatedAt: now,
	}
	m.nextID++
	m.items = append(m.items, ct)
	return ct, nil
}

func (m *MemoryRepo) List(_ context.Context) ([]Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// items are appended chronologically; reverse for newest first.
	out := make([]Contact, 0, len(m.items))
	for i := len(m.items) - 1; i >= 0; i-- {
		out = append(out, m.items[i])
	}
	return out, nil
}
