package jobs

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/campusbridge/campusbridge/internal/guard"
)

// MemoryRepository is an in-memory Repository used in unit tests and when no
// MongoDB is configured.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*Job
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[string]*Job)}
}

func (m *MemoryRepository) Create(ctx context.Context, j *Job) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if j.ID == "" {
		j.ID = ksuid.New().String()
	}
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now
	cp := *j
	m.store[j.ID] = &cp
	return j.ID, nil
}

func (m *MemoryRepository) Get(ctx context.Context, id string) (*Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if j, ok := m.store[id]; ok {
		cp := *j
		return &cp, nil
	}
	return nil, guard.ErrNotFound
}

func (m *MemoryRepository) ListByCollege(ctx context.Context, collegeID string) ([]Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Job{}
	for _, j := range m.store {
		if j.CollegeID == collegeID {
			out = append(out, *j)
		}
	}
	// newest first, mirroring the Mongo listing sort
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.After(out[b].CreatedAt) })
	return out, nil
}

func (m *MemoryRepository) SetLogoKey(ctx context.Context, id, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.store[id]
	if !ok {
		return guard.ErrNotFound
	}
	j.LogoKey = key
	j.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *MemoryRepository) IncrementApplications(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.store[id]
	if !ok {
		return guard.ErrNotFound
	}
	j.TotalApplications++
	return nil
}

func (m *MemoryRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return guard.ErrNotFound
	}
	delete(m.store, id)
	return nil
}
