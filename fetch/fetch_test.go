package fetch_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	cache "github.com/antony0531/real-estate-tracker-sub002"
	"github.com/antony0531/real-estate-tracker-sub002/domain"
	"github.com/antony0531/real-estate-tracker-sub002/engine"
	"github.com/antony0531/real-estate-tracker-sub002/expiration"
	"github.com/antony0531/real-estate-tracker-sub002/fetch"
	"github.com/antony0531/real-estate-tracker-sub002/remote"
	"github.com/antony0531/real-estate-tracker-sub002/store"
	"github.com/stretchr/testify/require"
)

// countingStore wraps the memory store and counts (optionally gates) the
// read queries so tests can see exactly how often the backing store is hit.
type countingStore struct {
	store.TrackerStore

	mu           sync.Mutex
	listProjects int
	listExpenses int
	gate         chan struct{} // when non-nil, ListProjects waits on it
}

func newCountingStore() *countingStore {
	return &countingStore{TrackerStore: store.NewMemoryStore()}
}

func (s *countingStore) ListProjects(ctx context.Context) ([]domain.Project, error) {
	s.mu.Lock()
	s.listProjects++
	gate := s.gate
	s.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return s.TrackerStore.ListProjects(ctx)
}

func (s *countingStore) ListExpenses(ctx context.Context, projectID int64) ([]domain.Expense, error) {
	s.mu.Lock()
	s.listExpenses++
	s.mu.Unlock()
	return s.TrackerStore.ListExpenses(ctx, projectID)
}

func (s *countingStore) projectQueries() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listProjects
}

func (s *countingStore) expenseQueries() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listExpenses
}

func newTestCache() *cache.Cache {
	return cache.New(engine.NewEngine(expiration.ExpireAfterWrite{}, nil, nil, engine.TTLs{}))
}

func seedProject(t *testing.T, st store.TrackerStore, name string, budget float64, status domain.ProjectStatus) domain.Project {
	t.Helper()
	p := &domain.Project{
		Name:          name,
		TotalBudget:   budget,
		PropertyType:  domain.SingleFamily,
		PropertyClass: domain.SFClassC,
		Status:        status,
	}
	require.NoError(t, st.CreateProject(context.Background(), p))
	return *p
}

func TestProjectsReadThrough(t *testing.T) {
	ctx := context.Background()
	st := newCountingStore()
	seedProject(t, st, "one", 100000, domain.StatusInProgress)
	seedProject(t, st, "two", 200000, domain.StatusPlanning)

	svc := fetch.New(st, newTestCache())

	ps, err := svc.Projects(ctx)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	require.Equal(t, 1, st.projectQueries())

	// Second read is served from cache.
	ps, err = svc.Projects(ctx)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	require.Equal(t, 1, st.projectQueries())
}

func TestSingleflightCollapsesConcurrentMisses(t *testing.T) {
	ctx := context.Background()
	st := newCountingStore()
	seedProject(t, st, "one", 100000, domain.StatusInProgress)

	gate := make(chan struct{})
	st.gate = gate

	svc := fetch.New(st, newTestCache())

	const callers = 10
	var wg sync.WaitGroup
	results := make([]int, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ps, err := svc.Projects(ctx)
			if err == nil {
				results[i] = len(ps)
			}
		}(i)
	}

	// Let every caller reach the miss path, then release the store.
	time.Sleep(50 * time.Millisecond)
	close(gate)
	wg.Wait()

	for i, n := range results {
		require.Equalf(t, 1, n, "caller %d got wrong project count", i)
	}
	require.Equal(t, 1, st.projectQueries(), "concurrent misses should collapse into one store query")
}

func TestAddExpenseInvalidatesStaleEntries(t *testing.T) {
	ctx := context.Background()
	st := newCountingStore()
	p := seedProject(t, st, "one", 100000, domain.StatusInProgress)

	room := &domain.Room{ProjectID: p.ID, Name: "Kitchen", FloorNumber: 1}
	require.NoError(t, st.AddRoom(ctx, room))

	c := newTestCache()
	svc := fetch.New(st, c)

	xs, err := svc.ExpensesFor(ctx, p.ID)
	require.NoError(t, err)
	require.Empty(t, xs)

	stats, err := svc.DashboardStats(ctx)
	require.NoError(t, err)
	require.Zero(t, stats.TotalSpent)

	err = svc.AddExpense(ctx, &domain.Expense{
		ProjectID:       p.ID,
		RoomID:          room.ID,
		Category:        domain.Labor,
		Cost:            2500,
		LaborHours:      16,
		ConditionRating: 4,
	})
	require.NoError(t, err)

	// Both derived entries were invalidated, so reads see the new expense.
	xs, err = svc.ExpensesFor(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, xs, 1)
	require.Equal(t, 2, st.expenseQueries(), "expenses should be refetched after invalidation")

	stats, err = svc.DashboardStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 2500.0, stats.TotalSpent)
	require.Equal(t, 2500.0, stats.LaborCosts)
	require.Equal(t, 16.0, stats.TotalLaborHours)
}

func TestDashboardStatsAggregation(t *testing.T) {
	ctx := context.Background()
	st := newCountingStore()
	p1 := seedProject(t, st, "active", 100000, domain.StatusInProgress)
	p2 := seedProject(t, st, "planned", 50000, domain.StatusPlanning)

	r1 := &domain.Room{ProjectID: p1.ID, Name: "Kitchen", FloorNumber: 1}
	require.NoError(t, st.AddRoom(ctx, r1))
	r2 := &domain.Room{ProjectID: p2.ID, Name: "Basement", FloorNumber: 0}
	require.NoError(t, st.AddRoom(ctx, r2))

	require.NoError(t, st.AddExpense(ctx, &domain.Expense{
		ProjectID: p1.ID, RoomID: r1.ID, Category: domain.Material, Cost: 30000, ConditionRating: 3,
	}))
	require.NoError(t, st.AddExpense(ctx, &domain.Expense{
		ProjectID: p2.ID, RoomID: r2.ID, Category: domain.Labor, Cost: 60000, LaborHours: 400, ConditionRating: 2,
	}))

	svc := fetch.New(st, newTestCache())

	stats, err := svc.DashboardStats(ctx)
	require.NoError(t, err)

	require.Equal(t, 2, stats.TotalProjects)
	require.Equal(t, 1, stats.ActiveProjects)
	require.Equal(t, 150000.0, stats.TotalBudget)
	require.Equal(t, 90000.0, stats.TotalSpent)
	require.Equal(t, 60000.0, stats.RemainingBudget)
	require.Equal(t, 60.0, stats.BudgetUsedPct)
	require.Equal(t, 30000.0, stats.MaterialCosts)
	require.Equal(t, 60000.0, stats.LaborCosts)
	require.Equal(t, 1, stats.OverBudgetCount, "project two spent 60k of a 50k budget")
}

func TestWarmPrimesCache(t *testing.T) {
	ctx := context.Background()
	st := newCountingStore()
	p := seedProject(t, st, "one", 100000, domain.StatusInProgress)

	room := &domain.Room{ProjectID: p.ID, Name: "Garage", FloorNumber: 1}
	require.NoError(t, st.AddRoom(ctx, room))
	require.NoError(t, st.AddExpense(ctx, &domain.Expense{
		ProjectID: p.ID, RoomID: room.ID, Category: domain.Material, Cost: 100, ConditionRating: 3,
	}))

	svc := fetch.New(st, newTestCache())
	require.NoError(t, svc.Warm(ctx))

	warmProjects := st.projectQueries()
	warmExpenses := st.expenseQueries()

	ps, err := svc.Projects(ctx)
	require.NoError(t, err)
	require.Len(t, ps, 1)

	xs, err := svc.ExpensesFor(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, xs, 1)

	require.Equal(t, warmProjects, st.projectQueries(), "warm should satisfy project reads")
	require.Equal(t, warmExpenses, st.expenseQueries(), "warm should satisfy expense reads")
}

func TestRemoteTierServesCacheMiss(t *testing.T) {
	ctx := context.Background()
	st := newCountingStore() // deliberately empty

	snapshot := []domain.Project{{ID: 42, Name: "from-tier", Status: domain.StatusCompleted}}
	b, err := json.Marshal(snapshot)
	require.NoError(t, err)

	tier := remote.NewMemoryTier()
	require.NoError(t, tier.Set(ctx, cache.KeyProjects, b, time.Minute))

	svc := fetch.New(st, newTestCache(), fetch.WithTier(tier))

	ps, err := svc.Projects(ctx)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	require.Equal(t, "from-tier", ps[0].Name)
	require.Equal(t, 0, st.projectQueries(), "tier hit should not reach the backing store")
}

func TestDeleteProjectDropsScopedEntries(t *testing.T) {
	ctx := context.Background()
	st := newCountingStore()
	p := seedProject(t, st, "doomed", 100000, domain.StatusInProgress)

	c := newTestCache()
	svc := fetch.New(st, c)

	_, err := svc.Projects(ctx)
	require.NoError(t, err)
	_, err = svc.ExpensesFor(ctx, p.ID)
	require.NoError(t, err)
	_, err = svc.RoomsFor(ctx, p.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProject(ctx, p.ID))

	_, ok := c.GetProjects()
	require.False(t, ok, "projects entry should be invalidated")
	_, ok = c.GetExpenses(p.ID)
	require.False(t, ok, "expenses entry should be invalidated")
	_, ok = c.GetRooms(p.ID)
	require.False(t, ok, "rooms entry should be invalidated")
}
