// Package domain holds the tracker's core types: renovation projects,
// their rooms, their expenses, and the aggregate dashboard view.
package domain

import "time"

// PropertyType classifies what kind of property a project renovates.
type PropertyType string

const (
	SingleFamily PropertyType = "single_family"
	Multifamily  PropertyType = "multifamily"
)

// PropertyClass is the price band of the property.
type PropertyClass string

const (
	// Single family classes
	SFClassA PropertyClass = "sf_class_a" // $2.5-4M ultra-luxury
	SFClassB PropertyClass = "sf_class_b" // $1-2M luxury
	SFClassC PropertyClass = "sf_class_c" // $700K-999K
	SFClassD PropertyClass = "sf_class_d" // <$550K

	// Multifamily classes
	MFClassA PropertyClass = "mf_class_a" // $1-1.5M
	MFClassB PropertyClass = "mf_class_b" // $750K-900K
	MFClassC PropertyClass = "mf_class_c" // $500K-749K
)

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	StatusPlanning   ProjectStatus = "planning"
	StatusInProgress ProjectStatus = "in_progress"
	StatusCompleted  ProjectStatus = "completed"
	StatusOnHold     ProjectStatus = "on_hold"
)

// Project is one property flip being tracked.
type Project struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description,omitempty"`
	TotalBudget   float64       `json:"total_budget"`
	PropertyType  PropertyType  `json:"property_type"`
	PropertyClass PropertyClass `json:"property_class"`
	Status        ProjectStatus `json:"status"`
	NumFloors     int           `json:"num_floors"`
	TotalSqft     float64       `json:"total_sqft,omitempty"`
	Address       string        `json:"address,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
