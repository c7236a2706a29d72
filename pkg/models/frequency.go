package models

import "fmt"

// Status is the allocation priority of a frequency record
type Status string

const (
	StatusPrimary   Status = "primary"
	StatusSecondary Status = "secondary"
)

// ParseStatus validates a raw status value
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPrimary, StatusSecondary:
		return Status(s), nil
	}
	return "", fmt.Errorf("invalid status %q: expected primary or secondary", s)
}

// Edge selects which bound of a record (or slider) is meant
type Edge string

const (
	EdgeLower Edge = "lower"
	EdgeUpper Edge = "upper"
)

// Axis selects the slider tab: lower bounds, upper bounds, or both
type Axis string

const (
	AxisLower Axis = "lower"
	AxisUpper Axis = "upper"
	AxisBoth  Axis = "both"
)

// Orientation selects the style sheet used for allocation blocks
type Orientation string

const (
	OrientationHorizontal Orientation = "horizontal"
	OrientationVertical   Orientation = "vertical"
)

// FrequencyRecord is a single row of the allocation table
type FrequencyRecord struct {
	Term            string  `json:"term" doc:"Designated use of the allocation"`
	LowerFrequency  float64 `json:"lower_frequency" doc:"Lower bound in Hz"`
	HigherFrequency float64 `json:"higher_frequency" doc:"Upper bound in Hz"`
	Status          Status  `json:"status" enum:"primary,secondary" doc:"Allocation status"`
	ShortComment    string  `json:"short_comment,omitempty" doc:"Free-text comment"`
}

// AllocationRow is a FrequencyRecord without its comment, used for table dumps
type AllocationRow struct {
	Term            string  `json:"term" doc:"Designated use of the allocation"`
	LowerFrequency  float64 `json:"lower_frequency" doc:"Lower bound in Hz"`
	HigherFrequency float64 `json:"higher_frequency" doc:"Upper bound in Hz"`
	Status          Status  `json:"status" enum:"primary,secondary" doc:"Allocation status"`
}

// Row drops the comment column
func (r FrequencyRecord) Row() AllocationRow {
	return AllocationRow{
		Term:            r.Term,
		LowerFrequency:  r.LowerFrequency,
		HigherFrequency: r.HigherFrequency,
		Status:          r.Status,
	}
}

// Bound is a resolved frequency edge and its display label
type Bound struct {
	Hz    float64 `json:"hz" doc:"Frequency in Hz"`
	Label string  `json:"label" doc:"Human-readable frequency"`
}
