package domain

import "time"

// ExpenseCategory splits spending into material and labor.
type ExpenseCategory string

const (
	Material ExpenseCategory = "material"
	Labor    ExpenseCategory = "labor"
)

// Expense is one recorded cost against a project's room.
type Expense struct {
	ID              int64           `json:"id"`
	ProjectID       int64           `json:"project_id"`
	RoomID          int64           `json:"room_id"`
	Date            time.Time       `json:"date"`
	Category        ExpenseCategory `json:"category"`
	Cost            float64         `json:"cost"`
	LaborHours      float64         `json:"labor_hours"`
	ConditionRating int             `json:"condition_rating"` // 1-5 scale
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
