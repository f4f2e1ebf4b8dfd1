package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/antony0531/real-estate-tracker-sub002/domain"
	_ "modernc.org/sqlite"
)

// SQLiteStore persists tracker data in a local SQLite file. This is the
// default backend; the tracker has always been a single-machine tool.
type SQLiteStore struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS projects (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	total_budget REAL NOT NULL,
	property_type TEXT NOT NULL,
	property_class TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'planning',
	num_floors INTEGER NOT NULL DEFAULT 1,
	total_sqft REAL NOT NULL DEFAULT 0,
	address TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS rooms (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	project_id INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	floor_number INTEGER NOT NULL,
	length_ft REAL NOT NULL DEFAULT 0,
	width_ft REAL NOT NULL DEFAULT 0,
	height_ft REAL NOT NULL DEFAULT 8,
	initial_condition INTEGER NOT NULL DEFAULT 3,
	notes TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS expenses (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	project_id INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
	room_id INTEGER NOT NULL REFERENCES rooms(id) ON DELETE CASCADE,
	date INTEGER NOT NULL,
	category TEXT NOT NULL,
	cost REAL NOT NULL,
	labor_hours REAL NOT NULL DEFAULT 0,
	condition_rating INTEGER NOT NULL,
	notes TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_rooms_project ON rooms(project_id);
CREATE INDEX IF NOT EXISTS idx_expenses_project ON expenses(project_id);
`

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// OpenSQLite opens (or creates) the tracker database at path and applies
// the schema.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := ensureForeignKeysEnabled(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func ensureForeignKeysEnabled(db *sql.DB) error {
	var enabled int
	if err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled); err != nil {
		return fmt.Errorf("check sqlite foreign key pragma: %w", err)
	}
	if enabled != 1 {
		return fmt.Errorf("sqlite foreign keys are disabled")
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ListProjects(ctx context.Context) ([]domain.Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, total_budget, property_type, property_class,
		       status, num_floors, total_sqft, address, created_at, updated_at
		FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var out []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) GetProject(ctx context.Context, id int64) (domain.Project, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, total_budget, property_type, property_class,
		       status, num_floors, total_sqft, address, created_at, updated_at
		FROM projects WHERE id = ?`, id)

	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Project{}, ErrNotFound
	}
	return p, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(r rowScanner) (domain.Project, error) {
	var p domain.Project
	var created, updated int64
	err := r.Scan(&p.ID, &p.Name, &p.Description, &p.TotalBudget,
		&p.PropertyType, &p.PropertyClass, &p.Status, &p.NumFloors,
		&p.TotalSqft, &p.Address, &created, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Project{}, err
		}
		return domain.Project{}, fmt.Errorf("scan project: %w", err)
	}
	p.CreatedAt = fromMillis(created)
	p.UpdatedAt = fromMillis(updated)
	return p, nil
}

func (s *SQLiteStore) CreateProject(ctx context.Context, p *domain.Project) error {
	now := time.Now()
	if p.Status == "" {
		p.Status = domain.StatusPlanning
	}
	if p.NumFloors == 0 {
		p.NumFloors = 1
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (name, description, total_budget, property_type,
			property_class, status, num_floors, total_sqft, address,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Description, p.TotalBudget, p.PropertyType, p.PropertyClass,
		p.Status, p.NumFloors, p.TotalSqft, p.Address, toMillis(now), toMillis(now))
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("project id: %w", err)
	}
	p.ID = id
	p.CreatedAt = now.UTC()
	p.UpdatedAt = now.UTC()
	return nil
}

func (s *SQLiteStore) UpdateProjectStatus(ctx context.Context, id int64, status domain.ProjectStatus) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE projects SET status = ?, updated_at = ? WHERE id = ?`,
		status, toMillis(time.Now()), id)
	if err != nil {
		return fmt.Errorf("update project status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) DeleteProject(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) ListRooms(ctx context.Context, projectID int64) ([]domain.Room, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, project_id, name, floor_number, length_ft, width_ft,
		       height_ft, initial_condition, notes, created_at
		FROM rooms WHERE project_id = ? ORDER BY id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var out []domain.Room
	for rows.Next() {
		var r domain.Room
		var created int64
		if err := rows.Scan(&r.ID, &r.ProjectID, &r.Name, &r.FloorNumber,
			&r.LengthFt, &r.WidthFt, &r.HeightFt, &r.InitialCondition,
			&r.Notes, &created); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		r.CreatedAt = fromMillis(created)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) AddRoom(ctx context.Context, r *domain.Room) error {
	now := time.Now()
	if r.HeightFt == 0 {
		r.HeightFt = 8
	}
	if r.InitialCondition == 0 {
		r.InitialCondition = 3
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO rooms (project_id, name, floor_number, length_ft, width_ft,
			height_ft, initial_condition, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ProjectID, r.Name, r.FloorNumber, r.LengthFt, r.WidthFt,
		r.HeightFt, r.InitialCondition, r.Notes, toMillis(now))
	if err != nil {
		return fmt.Errorf("insert room: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("room id: %w", err)
	}
	r.ID = id
	r.CreatedAt = now.UTC()
	return nil
}

func (s *SQLiteStore) ListExpenses(ctx context.Context, projectID int64) ([]domain.Expense, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, project_id, room_id, date, category, cost, labor_hours,
		       condition_rating, notes, created_at
		FROM expenses WHERE project_id = ? ORDER BY id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var out []domain.Expense
	for rows.Next() {
		var e domain.Expense
		var date, created int64
		if err := rows.Scan(&e.ID, &e.ProjectID, &e.RoomID, &date, &e.Category,
			&e.Cost, &e.LaborHours, &e.ConditionRating, &e.Notes, &created); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.Date = fromMillis(date)
		e.CreatedAt = fromMillis(created)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) AddExpense(ctx context.Context, e *domain.Expense) error {
	now := time.Now()
	if e.Date.IsZero() {
		e.Date = now
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (project_id, room_id, date, category, cost,
			labor_hours, condition_rating, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ProjectID, e.RoomID, toMillis(e.Date), e.Category, e.Cost,
		e.LaborHours, e.ConditionRating, e.Notes, toMillis(now))
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("expense id: %w", err)
	}
	e.ID = id
	e.CreatedAt = now.UTC()
	return nil
}

func (s *SQLiteStore) ExpenseTotals(ctx context.Context) (map[int64]ExpenseTotals, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT project_id,
		       SUM(cost),
		       SUM(CASE WHEN category = 'material' THEN cost ELSE 0 END),
		       SUM(CASE WHEN category = 'labor' THEN cost ELSE 0 END),
		       SUM(labor_hours)
		FROM expenses GROUP BY project_id`)
	if err != nil {
		return nil, fmt.Errorf("expense totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[int64]ExpenseTotals)
	for rows.Next() {
		var id int64
		var t ExpenseTotals
		if err := rows.Scan(&id, &t.Spent, &t.MaterialCosts, &t.LaborCosts, &t.LaborHours); err != nil {
			return nil, fmt.Errorf("scan totals: %w", err)
		}
		totals[id] = t
	}
	return totals, rows.Err()
}
