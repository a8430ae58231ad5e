package production

// CreateLineRequest carries the fields for a new production line. Materials
// default to an empty sequence when omitted.
type CreateLineRequest struct {
	Name             string     `json:"name" validate:"required"`
	Product          string     `json:"product" validate:"required"`
	Materials        []Material `json:"materials"`
	OutputRate       *int       `json:"output_rate" validate:"required,gte=0"`
	OutputUnit       string     `json:"output_unit" validate:"required"`
	Status           string     `json:"status" validate:"required"`
	Efficiency       *float64   `json:"efficiency" validate:"required,gte=0,lte=100"`
	TodayProduced    *int       `json:"today_produced" validate:"required,gte=0"`
	TargetProduction *int       `json:"target_production" validate:"required,gte=0"`
}

// UpdateLineRequest replaces every mutable field of a line. Materials are
// kept as stored when the update omits them, matching full-field replacement
// of the scalar fields only.
type UpdateLineRequest struct {
	Name             string   `json:"name" validate:"required"`
	Product          string   `json:"product" validate:"required"`
	OutputRate       *int     `json:"output_rate" validate:"required,gte=0"`
	OutputUnit       string   `json:"output_unit" validate:"required"`
	Status           string   `json:"status" validate:"required"`
	Efficiency       *float64 `json:"efficiency" validate:"required,gte=0,lte=100"`
	TodayProduced    *int     `json:"today_produced" validate:"required,gte=0"`
	TargetProduction *int     `json:"target_production" validate:"required,gte=0"`
}
