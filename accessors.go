package cache

import (
	"github.com/antony0531/real-estate-tracker-sub002/domain"
	"github.com/antony0531/real-estate-tracker-sub002/types"
)

// This file holds the category-scoped views over the generic store: fixed
// key construction and fixed TTL per category, typed at compile time so no
// call site casts a retrieved value.

// getAs retrieves key as T. A value of the wrong dynamic type counts as a
// miss; that can only happen if a caller bypassed the typed setters.
func getAs[T any](c *Cache, key string) (T, bool) {
	var zero T
	v, ok := c.Get(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// SetProjects caches the full project collection (10 minute TTL).
func (c *Cache) SetProjects(projects []domain.Project) {
	c.Set(KeyProjects, projects, c.engine.TTLs().Projects)
}

// GetProjects returns the cached project collection, if live.
func (c *Cache) GetProjects() ([]domain.Project, bool) {
	return getAs[[]domain.Project](c, KeyProjects)
}

// InvalidateProjects drops the cached project collection.
func (c *Cache) InvalidateProjects() {
	c.Delete(KeyProjects)
}

// SetDashboardStats caches the dashboard aggregate (2 minute TTL).
func (c *Cache) SetDashboardStats(stats domain.DashboardStats) {
	c.Set(KeyDashboardStats, stats, c.engine.TTLs().Dashboard)
}

// GetDashboardStats returns the cached dashboard aggregate, if live.
func (c *Cache) GetDashboardStats() (domain.DashboardStats, bool) {
	return getAs[domain.DashboardStats](c, KeyDashboardStats)
}

// InvalidateDashboardStats drops the cached dashboard aggregate.
func (c *Cache) InvalidateDashboardStats() {
	c.Delete(KeyDashboardStats)
}

// SetExpenses caches one project's expense list (3 minute TTL).
func (c *Cache) SetExpenses(projectID int64, expenses []domain.Expense) {
	c.Set(ExpensesKey(projectID), expenses, c.engine.TTLs().Expenses)
}

// GetExpenses returns one project's cached expense list, if live.
func (c *Cache) GetExpenses(projectID int64) ([]domain.Expense, bool) {
	return getAs[[]domain.Expense](c, ExpensesKey(projectID))
}

// InvalidateExpensesFor drops one project's cached expense list.
func (c *Cache) InvalidateExpensesFor(projectID int64) {
	c.Delete(ExpensesKey(projectID))
}

// InvalidateExpenses sweeps every expenses entry regardless of project,
// leaving all other categories untouched.
func (c *Cache) InvalidateExpenses() {
	c.InvalidateCategory(CategoryExpenses)
}

// SetRooms caches one project's room list. Rooms carry no category TTL of
// their own; the engine default applies.
func (c *Cache) SetRooms(projectID int64, rooms []domain.Room) {
	c.Set(RoomsKey(projectID), rooms, 0)
}

// GetRooms returns one project's cached room list, if live.
func (c *Cache) GetRooms(projectID int64) ([]domain.Room, bool) {
	return getAs[[]domain.Room](c, RoomsKey(projectID))
}

// InvalidateRoomsFor drops one project's cached room list.
func (c *Cache) InvalidateRoomsFor(projectID int64) {
	c.Delete(RoomsKey(projectID))
}

// InvalidateRooms sweeps every rooms entry regardless of project.
func (c *Cache) InvalidateRooms() {
	c.InvalidateCategory(CategoryRooms)
}

/*
Prime populates the projects entry and every per-project expenses entry in
one call, under a single lock acquisition. The keys are disjoint and sets
are last-write-wins, so the observable result is identical to calling
SetProjects and SetExpenses sequentially; batching just makes warm-up one
critical section instead of many.
*/
func (c *Cache) Prime(projects []domain.Project, expensesByProject map[int64][]domain.Expense) {
	ttls := c.engine.TTLs()

	ents := make([]types.Entry, 0, len(expensesByProject)+1)
	ents = append(ents, types.Entry{Key: KeyProjects, Value: projects, TTL: ttls.Projects})
	for id, expenses := range expensesByProject {
		ents = append(ents, types.Entry{Key: ExpensesKey(id), Value: expenses, TTL: ttls.Expenses})
	}
	for i := range ents {
		c.engine.OnWrite(&ents[i])
	}

	c.mu.Lock()
	for _, ent := range ents {
		c.entries[ent.Key] = ent
	}
	c.mu.Unlock()
}
