// Package store persists tracker data. The cache sits in front of a
// TrackerStore; the fetch layer queries the store only on cache misses and
// writes through it on mutations.
package store

import (
	"context"
	"errors"

	"github.com/antony0531/real-estate-tracker-sub002/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("store: not found")

// ExpenseTotals is the per-project spending rollup used to build dashboard
// stats without loading every expense row.
type ExpenseTotals struct {
	Spent         float64
	MaterialCosts float64
	LaborCosts    float64
	LaborHours    float64
}

// TrackerStore is the contract between the tracker and its backing store.
// Create methods assign the record's ID and CreatedAt in place.
type TrackerStore interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, id int64) (domain.Project, error)
	CreateProject(ctx context.Context, p *domain.Project) error
	UpdateProjectStatus(ctx context.Context, id int64, status domain.ProjectStatus) error
	DeleteProject(ctx context.Context, id int64) error

	ListRooms(ctx context.Context, projectID int64) ([]domain.Room, error)
	AddRoom(ctx context.Context, r *domain.Room) error

	ListExpenses(ctx context.Context, projectID int64) ([]domain.Expense, error)
	AddExpense(ctx context.Context, e *domain.Expense) error

	// ExpenseTotals returns the spending rollup keyed by project ID.
	// Projects with no expenses are absent from the map.
	ExpenseTotals(ctx context.Context) (map[int64]ExpenseTotals, error)

	Close() error
}
