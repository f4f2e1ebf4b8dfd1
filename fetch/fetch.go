/*
Package fetch is the data-fetch layer between callers and the backing
store. Reads go cache first, then the optional remote tier, then the
store; concurrent misses for the same key are collapsed into one store
query. Writes go to the store and then invalidate exactly the cache
entries they made stale.
*/
package fetch

import (
	"context"
	"encoding/json"

	cache "github.com/antony0531/real-estate-tracker-sub002"
	"github.com/antony0531/real-estate-tracker-sub002/api"
	"github.com/antony0531/real-estate-tracker-sub002/domain"
	"github.com/antony0531/real-estate-tracker-sub002/remote"
	"github.com/antony0531/real-estate-tracker-sub002/store"
	"golang.org/x/sync/singleflight"
)

// Service coordinates the cache, the optional remote tier, and the
// backing store.
type Service struct {
	store store.TrackerStore
	cache api.Cache
	tier  remote.Tier

	// sf collapses concurrent loads of the same key so a herd of misses
	// produces a single store query.
	sf singleflight.Group
}

// Option configures a Service.
type Option func(*Service)

// WithTier enables second-level lookups against a remote tier on cache
// misses. The tier holds JSON snapshots pushed by the cache mirror.
func WithTier(t remote.Tier) Option {
	return func(s *Service) { s.tier = t }
}

// New creates a Service over the given store and cache.
func New(st store.TrackerStore, c api.Cache, opts ...Option) *Service {
	s := &Service{store: st, cache: c}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// tierGet decodes a snapshot from the remote tier. Any tier failure is an
// ordinary miss.
func tierGet[T any](ctx context.Context, s *Service, key string) (T, bool) {
	var v T
	if s.tier == nil {
		return v, false
	}
	b, err := s.tier.Get(ctx, key)
	if err != nil {
		return v, false
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return v, false
	}
	return v, true
}

// Projects returns all projects, serving from cache when possible.
func (s *Service) Projects(ctx context.Context) ([]domain.Project, error) {
	if ps, ok := s.cache.GetProjects(); ok {
		return ps, nil
	}

	v, err, _ := s.sf.Do(cache.KeyProjects, func() (any, error) {
		if ps, ok := tierGet[[]domain.Project](ctx, s, cache.KeyProjects); ok {
			s.cache.SetProjects(ps)
			return ps, nil
		}
		ps, err := s.store.ListProjects(ctx)
		if err != nil {
			return nil, err
		}
		s.cache.SetProjects(ps)
		return ps, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Project), nil
}

// ExpensesFor returns one project's expenses, serving from cache when
// possible.
func (s *Service) ExpensesFor(ctx context.Context, projectID int64) ([]domain.Expense, error) {
	if xs, ok := s.cache.GetExpenses(projectID); ok {
		return xs, nil
	}

	key := cache.ExpensesKey(projectID)
	v, err, _ := s.sf.Do(key, func() (any, error) {
		if xs, ok := tierGet[[]domain.Expense](ctx, s, key); ok {
			s.cache.SetExpenses(projectID, xs)
			return xs, nil
		}
		xs, err := s.store.ListExpenses(ctx, projectID)
		if err != nil {
			return nil, err
		}
		s.cache.SetExpenses(projectID, xs)
		return xs, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Expense), nil
}

// RoomsFor returns one project's rooms, serving from cache when possible.
func (s *Service) RoomsFor(ctx context.Context, projectID int64) ([]domain.Room, error) {
	if rs, ok := s.cache.GetRooms(projectID); ok {
		return rs, nil
	}

	key := cache.RoomsKey(projectID)
	v, err, _ := s.sf.Do(key, func() (any, error) {
		if rs, ok := tierGet[[]domain.Room](ctx, s, key); ok {
			s.cache.SetRooms(projectID, rs)
			return rs, nil
		}
		rs, err := s.store.ListRooms(ctx, projectID)
		if err != nil {
			return nil, err
		}
		s.cache.SetRooms(projectID, rs)
		return rs, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Room), nil
}

// DashboardStats returns the portfolio aggregate, recomputing it from the
// store on a cache miss.
func (s *Service) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	if st, ok := s.cache.GetDashboardStats(); ok {
		return st, nil
	}

	v, err, _ := s.sf.Do(cache.KeyDashboardStats, func() (any, error) {
		if st, ok := tierGet[domain.DashboardStats](ctx, s, cache.KeyDashboardStats); ok {
			s.cache.SetDashboardStats(st)
			return st, nil
		}
		st, err := s.computeDashboardStats(ctx)
		if err != nil {
			return nil, err
		}
		s.cache.SetDashboardStats(st)
		return st, nil
	})
	if err != nil {
		return domain.DashboardStats{}, err
	}
	return v.(domain.DashboardStats), nil
}

func (s *Service) computeDashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	totals, err := s.store.ExpenseTotals(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	var stats domain.DashboardStats
	stats.TotalProjects = len(projects)
	for _, p := range projects {
		if p.Status == domain.StatusInProgress {
			stats.ActiveProjects++
		}
		t := totals[p.ID]
		stats.TotalBudget += p.TotalBudget
		stats.TotalSpent += t.Spent
		stats.MaterialCosts += t.MaterialCosts
		stats.LaborCosts += t.LaborCosts
		stats.TotalLaborHours += t.LaborHours
		if t.Spent > p.TotalBudget {
			stats.OverBudgetCount++
		}
	}
	stats.RemainingBudget = stats.TotalBudget - stats.TotalSpent
	if stats.TotalBudget > 0 {
		stats.BudgetUsedPct = stats.TotalSpent / stats.TotalBudget * 100
	}
	return stats, nil
}

// CreateProject persists a new project and drops the collection and
// dashboard entries it made stale.
func (s *Service) CreateProject(ctx context.Context, p *domain.Project) error {
	if err := s.store.CreateProject(ctx, p); err != nil {
		return err
	}
	s.cache.InvalidateProjects()
	s.cache.InvalidateDashboardStats()
	return nil
}

// UpdateProjectStatus changes a project's lifecycle state.
func (s *Service) UpdateProjectStatus(ctx context.Context, id int64, status domain.ProjectStatus) error {
	if err := s.store.UpdateProjectStatus(ctx, id, status); err != nil {
		return err
	}
	s.cache.InvalidateProjects()
	s.cache.InvalidateDashboardStats()
	return nil
}

// DeleteProject removes a project and every cache entry scoped to it.
func (s *Service) DeleteProject(ctx context.Context, id int64) error {
	if err := s.store.DeleteProject(ctx, id); err != nil {
		return err
	}
	s.cache.InvalidateProjects()
	s.cache.InvalidateDashboardStats()
	s.cache.InvalidateExpensesFor(id)
	s.cache.InvalidateRoomsFor(id)
	return nil
}

// AddRoom persists a room and drops that project's room list.
func (s *Service) AddRoom(ctx context.Context, r *domain.Room) error {
	if err := s.store.AddRoom(ctx, r); err != nil {
		return err
	}
	s.cache.InvalidateRoomsFor(r.ProjectID)
	return nil
}

// AddExpense persists an expense and drops that project's expense list
// plus the dashboard aggregate, both of which now disagree with the store.
func (s *Service) AddExpense(ctx context.Context, e *domain.Expense) error {
	if err := s.store.AddExpense(ctx, e); err != nil {
		return err
	}
	s.cache.InvalidateExpensesFor(e.ProjectID)
	s.cache.InvalidateDashboardStats()
	return nil
}

// Warm loads every project and its expenses and primes the cache in one
// batch. Meant for process start, before traffic arrives.
func (s *Service) Warm(ctx context.Context) error {
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return err
	}
	expenses := make(map[int64][]domain.Expense, len(projects))
	for _, p := range projects {
		xs, err := s.store.ListExpenses(ctx, p.ID)
		if err != nil {
			return err
		}
		expenses[p.ID] = xs
	}
	s.cache.Prime(projects, expenses)
	return nil
}
