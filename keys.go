package cache

import (
	"strconv"
	"strings"
)

// Cache keys are either a bare category ("projects") or
// "<category>:<scope qualifier>" ("expenses:project:42"). Prefix sweeps
// match on "<category>:", so qualifiers never contain a bare category name.
const (
	CategoryProjects  = "projects"
	CategoryDashboard = "dashboard"
	CategoryExpenses  = "expenses"
	CategoryRooms     = "rooms"
)

// Fixed keys for the unscoped categories.
const (
	KeyProjects       = CategoryProjects
	KeyDashboardStats = CategoryDashboard + ":stats"
)

// ExpensesKey is the cache key for one project's expense list.
func ExpensesKey(projectID int64) string {
	return CategoryExpenses + ":project:" + strconv.FormatInt(projectID, 10)
}

// RoomsKey is the cache key for one project's room list.
func RoomsKey(projectID int64) string {
	return CategoryRooms + ":project:" + strconv.FormatInt(projectID, 10)
}

func joinKey(category string, qualifier []string) string {
	return category + ":" + strings.Join(qualifier, ":")
}
