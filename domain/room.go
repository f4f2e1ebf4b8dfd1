package domain

import "time"

// Room is one room within a project, sized for cost-per-square-foot math.
type Room struct {
	ID               int64     `json:"id"`
	ProjectID        int64     `json:"project_id"`
	Name             string    `json:"name"`
	FloorNumber      int       `json:"floor_number"`
	LengthFt         float64   `json:"length_ft,omitempty"`
	WidthFt          float64   `json:"width_ft,omitempty"`
	HeightFt         float64   `json:"height_ft,omitempty"`
	InitialCondition int       `json:"initial_condition"` // 1-5 scale
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// SquareFootage is LengthFt * WidthFt, or 0 when either dimension is unknown.
func (r Room) SquareFootage() float64 {
	if r.LengthFt <= 0 || r.WidthFt <= 0 {
		return 0
	}
	return r.LengthFt * r.WidthFt
}

// StandardRooms are the predefined room names offered for quick selection.
var StandardRooms = []string{
	"Living Room",
	"Kitchen",
	"Dining Room",
	"Bathroom 1",
	"Bathroom 2",
	"Bathroom 3",
	"Bedroom 1",
	"Bedroom 2",
	"Bedroom 3",
	"Bedroom 4",
	"Master Bedroom",
	"Basement",
	"Attic",
	"Backyard",
	"Garage",
	"Laundry Room",
	"Office/Study",
	"Family Room",
}
