package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/antony0531/real-estate-tracker-sub002/domain"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PostgresStore persists tracker data in Postgres via GORM. Used when the
// tracker is deployed behind a shared database instead of a local file.
type PostgresStore struct {
	db *gorm.DB
}

// Row types carry the GORM mapping so the domain structs stay free of
// persistence tags.

type projectRow struct {
	ID            int64 `gorm:"primaryKey"`
	Name          string
	Description   string
	TotalBudget   float64
	PropertyType  string
	PropertyClass string
	Status        string
	NumFloors     int
	TotalSqft     float64
	Address       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (projectRow) TableName() string { return "projects" }

type roomRow struct {
	ID               int64 `gorm:"primaryKey"`
	ProjectID        int64 `gorm:"index"`
	Name             string
	FloorNumber      int
	LengthFt         float64
	WidthFt          float64
	HeightFt         float64
	InitialCondition int
	Notes            string
	CreatedAt        time.Time
}

func (roomRow) TableName() string { return "rooms" }

type expenseRow struct {
	ID              int64 `gorm:"primaryKey"`
	ProjectID       int64 `gorm:"index"`
	RoomID          int64
	Date            time.Time
	Category        string
	Cost            float64
	LaborHours      float64
	ConditionRating int
	Notes           string
	CreatedAt       time.Time
}

func (expenseRow) TableName() string { return "expenses" }

// OpenPostgres connects to Postgres and migrates the tracker tables.
func OpenPostgres(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err := db.AutoMigrate(&projectRow{}, &roomRow{}, &expenseRow{}); err != nil {
		return nil, fmt.Errorf("migrate tracker tables: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func projectFromRow(r projectRow) domain.Project {
	return domain.Project{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		TotalBudget:   r.TotalBudget,
		PropertyType:  domain.PropertyType(r.PropertyType),
		PropertyClass: domain.PropertyClass(r.PropertyClass),
		Status:        domain.ProjectStatus(r.Status),
		NumFloors:     r.NumFloors,
		TotalSqft:     r.TotalSqft,
		Address:       r.Address,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (s *PostgresStore) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var rows []projectRow
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	out := make([]domain.Project, 0, len(rows))
	for _, r := range rows {
		out = append(out, projectFromRow(r))
	}
	return out, nil
}

func (s *PostgresStore) GetProject(ctx context.Context, id int64) (domain.Project, error) {
	var row projectRow
	err := s.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Project{}, ErrNotFound
	}
	if err != nil {
		return domain.Project{}, fmt.Errorf("get project: %w", err)
	}
	return projectFromRow(row), nil
}

func (s *PostgresStore) CreateProject(ctx context.Context, p *domain.Project) error {
	if p.Status == "" {
		p.Status = domain.StatusPlanning
	}
	if p.NumFloors == 0 {
		p.NumFloors = 1
	}
	row := projectRow{
		Name:          p.Name,
		Description:   p.Description,
		TotalBudget:   p.TotalBudget,
		PropertyType:  string(p.PropertyType),
		PropertyClass: string(p.PropertyClass),
		Status:        string(p.Status),
		NumFloors:     p.NumFloors,
		TotalSqft:     p.TotalSqft,
		Address:       p.Address,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	p.ID = row.ID
	p.CreatedAt = row.CreatedAt
	p.UpdatedAt = row.UpdatedAt
	return nil
}

func (s *PostgresStore) UpdateProjectStatus(ctx context.Context, id int64, status domain.ProjectStatus) error {
	res := s.db.WithContext(ctx).Model(&projectRow{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return fmt.Errorf("update project status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) DeleteProject(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&projectRow{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete project: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Where("project_id = ?", id).Delete(&roomRow{}).Error; err != nil {
			return fmt.Errorf("delete rooms: %w", err)
		}
		if err := tx.Where("project_id = ?", id).Delete(&expenseRow{}).Error; err != nil {
			return fmt.Errorf("delete expenses: %w", err)
		}
		return nil
	})
}

func (s *PostgresStore) ListRooms(ctx context.Context, projectID int64) ([]domain.Room, error) {
	var rows []roomRow
	if err := s.db.WithContext(ctx).Where("project_id = ?", projectID).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	out := make([]domain.Room, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Room{
			ID:               r.ID,
			ProjectID:        r.ProjectID,
			Name:             r.Name,
			FloorNumber:      r.FloorNumber,
			LengthFt:         r.LengthFt,
			WidthFt:          r.WidthFt,
			HeightFt:         r.HeightFt,
			InitialCondition: r.InitialCondition,
			Notes:            r.Notes,
			CreatedAt:        r.CreatedAt,
		})
	}
	return out, nil
}

func (s *PostgresStore) AddRoom(ctx context.Context, r *domain.Room) error {
	if r.HeightFt == 0 {
		r.HeightFt = 8
	}
	if r.InitialCondition == 0 {
		r.InitialCondition = 3
	}
	row := roomRow{
		ProjectID:        r.ProjectID,
		Name:             r.Name,
		FloorNumber:      r.FloorNumber,
		LengthFt:         r.LengthFt,
		WidthFt:          r.WidthFt,
		HeightFt:         r.HeightFt,
		InitialCondition: r.InitialCondition,
		Notes:            r.Notes,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert room: %w", err)
	}
	r.ID = row.ID
	r.CreatedAt = row.CreatedAt
	return nil
}

func (s *PostgresStore) ListExpenses(ctx context.Context, projectID int64) ([]domain.Expense, error) {
	var rows []expenseRow
	if err := s.db.WithContext(ctx).Where("project_id = ?", projectID).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	out := make([]domain.Expense, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Expense{
			ID:              r.ID,
			ProjectID:       r.ProjectID,
			RoomID:          r.RoomID,
			Date:            r.Date,
			Category:        domain.ExpenseCategory(r.Category),
			Cost:            r.Cost,
			LaborHours:      r.LaborHours,
			ConditionRating: r.ConditionRating,
			Notes:           r.Notes,
			CreatedAt:       r.CreatedAt,
		})
	}
	return out, nil
}

func (s *PostgresStore) AddExpense(ctx context.Context, e *domain.Expense) error {
	if e.Date.IsZero() {
		e.Date = time.Now()
	}
	row := expenseRow{
		ProjectID:       e.ProjectID,
		RoomID:          e.RoomID,
		Date:            e.Date,
		Category:        string(e.Category),
		Cost:            e.Cost,
		LaborHours:      e.LaborHours,
		ConditionRating: e.ConditionRating,
		Notes:           e.Notes,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	e.ID = row.ID
	e.CreatedAt = row.CreatedAt
	return nil
}

func (s *PostgresStore) ExpenseTotals(ctx context.Context) (map[int64]ExpenseTotals, error) {
	var rows []struct {
		ProjectID     int64
		Spent         float64
		MaterialCosts float64
		LaborCosts    float64
		LaborHours    float64
	}
	err := s.db.WithContext(ctx).Model(&expenseRow{}).
		Select(`project_id,
			SUM(cost) AS spent,
			SUM(CASE WHEN category = 'material' THEN cost ELSE 0 END) AS material_costs,
			SUM(CASE WHEN category = 'labor' THEN cost ELSE 0 END) AS labor_costs,
			SUM(labor_hours) AS labor_hours`).
		Group("project_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("expense totals: %w", err)
	}

	totals := make(map[int64]ExpenseTotals, len(rows))
	for _, r := range rows {
		totals[r.ProjectID] = ExpenseTotals{
			Spent:         r.Spent,
			MaterialCosts: r.MaterialCosts,
			LaborCosts:    r.LaborCosts,
			LaborHours:    r.LaborHours,
		}
	}
	return totals, nil
}
