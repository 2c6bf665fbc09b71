package colleges

import (
	"context"
	"sync"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/campusbridge/campusbridge/internal/guard"
	"github.com/campusbridge/campusbridge/internal/models"
)

// MemoryRepository is an in-memory Repository for unit tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*models.College
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[string]*models.College)}
}

func (m *MemoryRepository) Get(ctx context.Context, id string) (*models.College, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.store[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, guard.ErrNotFound
}

func (m *MemoryRepository) Create(ctx context.Context, c *models.College) (*models.College, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID == "" {
		c.ID = ksuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	cp := *c
	m.store[c.ID] = &cp
	return c, nil
}

func (m *MemoryRepository) SetSubscription(ctx context.Context, id string, sub models.Subscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.store[id]
	if !ok {
		return guard.ErrNotFound
	}
	c.Subscription = sub
	c.UpdatedAt = time.Now().UTC()
	return nil
}
