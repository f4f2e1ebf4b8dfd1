package domain

// DashboardStats is the portfolio-wide aggregate shown on the dashboard.
// It is derived data: the fetch layer recomputes it from projects and
// expense totals, and the cache holds it under a short TTL.
type DashboardStats struct {
	TotalProjects   int     `json:"total_projects"`
	ActiveProjects  int     `json:"active_projects"`
	TotalBudget     float64 `json:"total_budget"`
	TotalSpent      float64 `json:"total_spent"`
	RemainingBudget float64 `json:"remaining_budget"`
	BudgetUsedPct   float64 `json:"budget_used_pct"`
	MaterialCosts   float64 `json:"material_costs"`
	LaborCosts      float64 `json:"labor_costs"`
	TotalLaborHours float64 `json:"total_labor_hours"`
	OverBudgetCount int     `json:"over_budget_count"`
}
