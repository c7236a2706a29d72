package bounds

import (
	"errors"
	"fmt"

	"github.com/RMahshie/freqplan/pkg/models"
)

var (
	ErrUnknownPosition = errors.New("unknown slider position")
	ErrUnknownBand     = errors.New("unknown band")
	ErrUnknownLanguage = errors.New("unknown language")
	ErrUnknownUnit     = errors.New("unknown frequency unit")
	ErrUnknownEdge     = errors.New("unknown edge")
	ErrInvertedRange   = errors.New("slider start is past slider end")
)

// RangeSelection is a resolved slider range
type RangeSelection struct {
	Start  int          `json:"start" doc:"Start position"`
	End    int          `json:"end" doc:"End position"`
	Lower  models.Bound `json:"lower" doc:"Resolved lower bound"`
	Upper  models.Bound `json:"upper" doc:"Resolved upper bound"`
	Single bool         `json:"single" doc:"True when a single slider segment is selected"`
}

// SliderBound maps a slider position to the lower or upper edge of its segment
func (t *Tables) SliderBound(position int, edge models.Edge) (models.Bound, error) {
	i, ok := t.stopIndex[position]
	if !ok {
		return models.Bound{}, fmt.Errorf("%w: %d", ErrUnknownPosition, position)
	}
	switch edge {
	case models.EdgeLower:
		return t.stops[i].Lower, nil
	case models.EdgeUpper:
		return t.stops[i].Upper, nil
	}
	return models.Bound{}, fmt.Errorf("%w: %q", ErrUnknownEdge, edge)
}

// SliderRange resolves both slider handles
func (t *Tables) SliderRange(start, end int) (RangeSelection, error) {
	if start > end {
		return RangeSelection{}, fmt.Errorf("%w: %d > %d", ErrInvertedRange, start, end)
	}
	lower, err := t.SliderBound(start, models.EdgeLower)
	if err != nil {
		return RangeSelection{}, err
	}
	upper, err := t.SliderBound(end, models.EdgeUpper)
	if err != nil {
		return RangeSelection{}, err
	}
	return RangeSelection{
		Start:  start,
		End:    end,
		Lower:  lower,
		Upper:  upper,
		Single: start == end,
	}, nil
}

// BandBounds returns the lower and upper Hz of a named band
func (t *Tables) BandBounds(label string) (float64, float64, error) {
	i, ok := t.bandIndex[label]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownBand, label)
	}
	return t.bands[i].Lower, t.bands[i].Upper, nil
}

// LanguageCode returns the two-letter code for a language display name
func (t *Tables) LanguageCode(name string) (string, error) {
	i, ok := t.languageIndex[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
	}
	return t.languages[i].Code, nil
}

// UnitMultiplier returns the Hz multiplier of a unit label
func (t *Tables) UnitMultiplier(unit string) (float64, error) {
	i, ok := t.unitIndex[unit]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
	return t.units[i].Multiplier, nil
}

// IsLookupMiss reports whether err came from one of the table lookups
func IsLookupMiss(err error) bool {
	return errors.Is(err, ErrUnknownPosition) ||
		errors.Is(err, ErrUnknownBand) ||
		errors.Is(err, ErrUnknownLanguage) ||
		errors.Is(err, ErrUnknownUnit) ||
		errors.Is(err, ErrUnknownEdge) ||
		errors.Is(err, ErrInvertedRange)
}
