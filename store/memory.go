package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/antony0531/real-estate-tracker-sub002/domain"
)

// MemoryStore keeps everything in maps. It backs tests and the demo; the
// sqlite and postgres stores are the real deployments.
type MemoryStore struct {
	mu       sync.Mutex
	projects map[int64]domain.Project
	rooms    map[int64]domain.Room
	expenses map[int64]domain.Expense
	nextID   int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		projects: make(map[int64]domain.Project),
		rooms:    make(map[int64]domain.Room),
		expenses: make(map[int64]domain.Expense),
		nextID:   1,
	}
}

func (m *MemoryStore) ListProjects(_ context.Context) ([]domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Project, 0, len(m.projects))
	for _, p := range m.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStore) GetProject(_ context.Context, id int64) (domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.projects[id]
	if !ok {
		return domain.Project{}, ErrNotFound
	}
	return p, nil
}

func (m *MemoryStore) CreateProject(_ context.Context, p *domain.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p.ID = m.nextID
	m.nextID++
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.StatusPlanning
	}
	m.projects[p.ID] = *p
	return nil
}

func (m *MemoryStore) UpdateProjectStatus(_ context.Context, id int64, status domain.ProjectStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.projects[id]
	if !ok {
		return ErrNotFound
	}
	p.Status = status
	p.UpdatedAt = time.Now()
	m.projects[id] = p
	return nil
}

func (m *MemoryStore) DeleteProject(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.projects[id]; !ok {
		return ErrNotFound
	}
	delete(m.projects, id)

	// Cascade, matching the relational schemas.
	for rid, r := range m.rooms {
		if r.ProjectID == id {
			delete(m.rooms, rid)
		}
	}
	for eid, e := range m.expenses {
		if e.ProjectID == id {
			delete(m.expenses, eid)
		}
	}
	return nil
}

func (m *MemoryStore) ListRooms(_ context.Context, projectID int64) ([]domain.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Room
	for _, r := range m.rooms {
		if r.ProjectID == projectID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStore) AddRoom(_ context.Context, r *domain.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.projects[r.ProjectID]; !ok {
		return ErrNotFound
	}
	r.ID = m.nextID
	m.nextID++
	r.CreatedAt = time.Now()
	m.rooms[r.ID] = *r
	return nil
}

func (m *MemoryStore) ListExpenses(_ context.Context, projectID int64) ([]domain.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Expense
	for _, e := range m.expenses {
		if e.ProjectID == projectID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStore) AddExpense(_ context.Context, e *domain.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.projects[e.ProjectID]; !ok {
		return ErrNotFound
	}
	e.ID = m.nextID
	m.nextID++
	e.CreatedAt = time.Now()
	m.expenses[e.ID] = *e
	return nil
}

func (m *MemoryStore) ExpenseTotals(_ context.Context) (map[int64]ExpenseTotals, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	totals := make(map[int64]ExpenseTotals)
	for _, e := range m.expenses {
		t := totals[e.ProjectID]
		t.Spent += e.Cost
		t.LaborHours += e.LaborHours
		switch e.Category {
		case domain.Material:
			t.MaterialCosts += e.Cost
		case domain.Labor:
			t.LaborCosts += e.Cost
		}
		totals[e.ProjectID] = t
	}
	return totals, nil
}

func (m *MemoryStore) Close() error { return nil }
