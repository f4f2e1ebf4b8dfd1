// Package api declares the public contract of the tracker cache. The fetch
// layer and any other collaborator depend on this interface, not on the
// concrete engine, so tests can substitute their own implementation.
package api

import (
	"github.com/antony0531/real-estate-tracker-sub002/domain"
	"github.com/antony0531/real-estate-tracker-sub002/types"
)

/*
Cache is the category-scoped view of the tracker's in-process cache.

Behavior guaranteed by every implementation:

  - Reads return (value, true) only for entries that exist and are live;
    absence is a bool, never an error.
  - Sets overwrite unconditionally and reset the entry's TTL baseline.
  - InvalidateExpenses and InvalidateRooms remove every entry of their
    category across all projects, not a single key.
  - No method blocks on I/O or returns an error; every operation is total.
*/
type Cache interface {

	// Projects: the full project collection under one key.
	GetProjects() ([]domain.Project, bool)
	SetProjects([]domain.Project)
	InvalidateProjects()

	// Dashboard stats: one aggregate entry with a short TTL.
	GetDashboardStats() (domain.DashboardStats, bool)
	SetDashboardStats(domain.DashboardStats)
	InvalidateDashboardStats()

	// Expenses: one entry per project.
	GetExpenses(projectID int64) ([]domain.Expense, bool)
	SetExpenses(projectID int64, expenses []domain.Expense)
	InvalidateExpensesFor(projectID int64)
	InvalidateExpenses()

	// Rooms: one entry per project, engine-default TTL.
	GetRooms(projectID int64) ([]domain.Room, bool)
	SetRooms(projectID int64, rooms []domain.Room)
	InvalidateRoomsFor(projectID int64)
	InvalidateRooms()

	// Prime populates projects plus per-project expenses in one call.
	Prime(projects []domain.Project, expensesByProject map[int64][]domain.Expense)

	// Clear removes all entries.
	Clear()

	// Stats reports resident entries for observability; it never evicts.
	Stats() types.Stats
}
