package explorer

import (
	"github.com/RMahshie/freqplan/internal/bounds"
	"github.com/RMahshie/freqplan/internal/render"
	"github.com/RMahshie/freqplan/pkg/models"
)

// AllTerms is the term filter value that matches every term
const AllTerms = "All"

// Messages shown for empty and non-empty lookups
const (
	MessageNoData = "No data!"
	MessageFree   = "This frequency is free"
)

// Options lists the values every control can take
type Options struct {
	Terms       []string            `json:"terms" doc:"Distinct terms in table order"`
	Statuses    []models.Status     `json:"statuses" doc:"Distinct statuses in table order"`
	Bands       []bounds.Band       `json:"bands" doc:"Band designations"`
	Languages   []bounds.Language   `json:"languages" doc:"Translation targets"`
	Units       []bounds.Unit       `json:"units" doc:"Lookup units"`
	SliderStops []bounds.SliderStop `json:"slider_stops" doc:"Slider breakpoints"`
	RecordCount int                 `json:"record_count" doc:"Rows in the allocation table"`
}

// SliderResult is one slider tab
type SliderResult struct {
	Selection bounds.RangeSelection  `json:"selection" doc:"Resolved slider range"`
	Axis      models.Axis            `json:"axis" enum:"lower,upper,both" doc:"Which bound was filtered"`
	Headline  string                 `json:"headline" doc:"Human-readable summary"`
	Count     int                    `json:"count" doc:"Matching rows"`
	Rows      []models.AllocationRow `json:"rows" doc:"Matching rows without comments"`
	Scatter   render.Chart           `json:"scatter" doc:"Scatter chart"`
	Bar       *render.Chart          `json:"bar,omitempty" doc:"Bar chart (lower and upper tabs only)"`
}

// BandQuery is the band search form
type BandQuery struct {
	Band        string
	Term        string
	Language    string
	Status      models.Status
	Orientation models.Orientation
}

// BlockView is one allocation tile before rendering
type BlockView struct {
	Term           string  `json:"term" doc:"Original term"`
	TranslatedTerm string  `json:"translated_term" doc:"Term in the requested language"`
	Fallback       bool    `json:"fallback" doc:"True when translation failed and the original is shown"`
	Color          string  `json:"color" doc:"Palette colour"`
	Lower          float64 `json:"lower_frequency" doc:"Lower bound in Hz"`
	Upper          float64 `json:"higher_frequency" doc:"Upper bound in Hz"`
}

// BandResult is the outcome of a band search
type BandResult struct {
	Band         string      `json:"band" doc:"Band searched"`
	LowerHz      float64     `json:"lower_hz" doc:"Band lower bound"`
	UpperHz      float64     `json:"upper_hz" doc:"Band upper bound"`
	Language     string      `json:"language" doc:"Two-letter translation target"`
	Empty        bool        `json:"empty" doc:"True when no row matched"`
	Message      string      `json:"message,omitempty" doc:"Shown when no row matched"`
	Count        int         `json:"count" doc:"Matching rows"`
	Blocks       []BlockView `json:"blocks" doc:"One tile per row"`
	Untranslated int         `json:"untranslated" doc:"Tiles that fell back to the original term"`
	HTML         string      `json:"html,omitempty" doc:"Rendered tiles with style sheet"`
}

// LookupResult is the outcome of an exact-match lookup
type LookupResult struct {
	Hz      float64                `json:"hz" doc:"Looked-up frequency in Hz"`
	Edge    models.Edge            `json:"edge" enum:"lower,upper" doc:"Bound compared"`
	Free    bool                   `json:"free" doc:"True when no allocation uses this frequency"`
	Count   int                    `json:"count" doc:"Matching rows"`
	Message string                 `json:"message" doc:"Human-readable outcome"`
	Rows    []models.AllocationRow `json:"rows" doc:"Matching rows without comments"`
}

// GroupResult is a group-by view
type GroupResult struct {
	Key     string                 `json:"key" doc:"Term or status grouped on"`
	Empty   bool                   `json:"empty" doc:"True when no row matched"`
	Count   int                    `json:"count" doc:"Matching rows"`
	Rows    []models.AllocationRow `json:"rows" doc:"Matching rows without comments"`
	Scatter render.Chart           `json:"scatter" doc:"Scatter chart"`
}
