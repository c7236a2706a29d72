package explorer

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/RMahshie/freqplan/internal/bounds"
	"github.com/RMahshie/freqplan/internal/filter"
	"github.com/RMahshie/freqplan/internal/render"
	"github.com/RMahshie/freqplan/internal/translate"
	"github.com/RMahshie/freqplan/pkg/models"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidAxis        = errors.New("invalid axis")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidEdge        = errors.New("invalid edge")
	ErrInvalidNumber      = errors.New("frequency must be a finite, non-negative number")
	ErrInvalidStatus      = errors.New("invalid status")
)

// IsInvalidInput reports whether err was caused by a bad selection rather
// than a server fault
func IsInvalidInput(err error) bool {
	return bounds.IsLookupMiss(err) ||
		errors.Is(err, ErrInvalidAxis) ||
		errors.Is(err, ErrInvalidOrientation) ||
		errors.Is(err, ErrInvalidEdge) ||
		errors.Is(err, ErrInvalidNumber) ||
		errors.Is(err, ErrInvalidStatus)
}

// Translator translates a batch of term labels
type Translator interface {
	TranslateAll(ctx context.Context, texts []string, lang string) []translate.Result
}

// Explorer answers the dashboard views
type Explorer interface {
	Options() Options
	SliderView(start, end int, axis models.Axis) (*SliderResult, error)
	BandSearch(ctx context.Context, q BandQuery) (*BandResult, error)
	Lookup(number float64, unit string, edge models.Edge) (*LookupResult, error)
	GroupByTerm(term string) (*GroupResult, error)
	GroupByStatus(status string) (*GroupResult, error)
}

type service struct {
	table      *filter.Table
	tables     *bounds.Tables
	translator Translator
	styles     render.Styles
}

// NewService creates an Explorer over a loaded table
func NewService(table *filter.Table, tables *bounds.Tables, translator Translator, styles render.Styles) Explorer {
	if tables == nil {
		tables = bounds.Default()
	}
	if styles == nil {
		styles = render.DefaultStyles()
	}
	return &service{
		table:      table,
		tables:     tables,
		translator: translator,
		styles:     styles,
	}
}

func (s *service) Options() Options {
	return Options{
		Terms:       filter.Terms(s.table),
		Statuses:    filter.Statuses(s.table),
		Bands:       s.tables.Bands(),
		Languages:   s.tables.Languages(),
		Units:       s.tables.Units(),
		SliderStops: s.tables.SliderStops(),
		RecordCount: s.table.Len(),
	}
}

func (s *service) SliderView(start, end int, axis models.Axis) (*SliderResult, error) {
	sel, err := s.tables.SliderRange(start, end)
	if err != nil {
		return nil, err
	}

	result := &SliderResult{Selection: sel, Axis: axis}
	var rows []models.FrequencyRecord

	switch axis {
	case models.AxisLower:
		rows = filter.Apply(s.table, filter.LowerIn(sel.Lower.Hz, sel.Upper.Hz))
		result.Headline = headline(sel, "You have selected the lower frequency records")
		result.Scatter = render.Scatter(rows, frequencyScatter(render.FieldLowerFrequency))
		bar := render.Bar(rows, "Lower frequency by term", render.FieldLowerFrequency)
		result.Bar = &bar
	case models.AxisUpper:
		rows = filter.Apply(s.table, filter.UpperIn(sel.Lower.Hz, sel.Upper.Hz))
		result.Headline = headline(sel, "You have selected the upper frequency records")
		result.Scatter = render.Scatter(rows, frequencyScatter(render.FieldHigherFrequency))
		bar := render.Bar(rows, "Upper frequency by term", render.FieldHigherFrequency)
		result.Bar = &bar
	case models.AxisBoth:
		rows = filter.Apply(s.table, filter.Within(sel.Lower.Hz, sel.Upper.Hz))
		if sel.Single {
			result.Headline = "You have selected the frequency records in " + segmentLabel(sel)
		} else {
			result.Headline = headline(sel, "You have selected the records")
		}
		result.Scatter = render.Scatter(rows, render.ScatterOptions{
			X:       render.FieldLowerFrequency,
			Y:       render.FieldHigherFrequency,
			Color:   render.FieldTerm,
			Hover:   render.FieldTerm,
			LogX:    true,
			SizeMax: 1400,
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAxis, axis)
	}

	result.Rows = render.Rows(rows)
	result.Count = len(rows)
	return result, nil
}

func frequencyScatter(f render.Field) render.ScatterOptions {
	return render.ScatterOptions{
		X:       f,
		Y:       render.FieldTerm,
		Size:    f,
		Color:   render.FieldTerm,
		Hover:   render.FieldTerm,
		LogX:    true,
		SizeMax: 60,
	}
}

func headline(sel bounds.RangeSelection, prefix string) string {
	if sel.Single {
		return prefix + " in " + segmentLabel(sel)
	}
	return prefix + " from " + sel.Lower.Label + " to " + sel.Upper.Label
}

func segmentLabel(sel bounds.RangeSelection) string {
	return sel.Lower.Label + " - " + sel.Upper.Label
}

func (s *service) BandSearch(ctx context.Context, q BandQuery) (*BandResult, error) {
	lower, upper, err := s.tables.BandBounds(q.Band)
	if err != nil {
		return nil, err
	}
	lang, err := s.tables.LanguageCode(q.Language)
	if err != nil {
		return nil, err
	}
	status, err := models.ParseStatus(string(q.Status))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}
	orientation := q.Orientation
	if orientation == "" {
		orientation = models.OrientationHorizontal
	}
	if orientation != models.OrientationHorizontal && orientation != models.OrientationVertical {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOrientation, q.Orientation)
	}

	preds := []filter.Predicate{filter.Within(lower, upper), filter.StatusIs(status)}
	if q.Term != "" && q.Term != AllTerms {
		preds = append(preds, filter.TermIs(q.Term))
	}
	rows := filter.Apply(s.table, preds...)

	result := &BandResult{
		Band:     q.Band,
		LowerHz:  lower,
		UpperHz:  upper,
		Language: lang,
		Count:    len(rows),
		Blocks:   []BlockView{},
	}
	if len(rows) == 0 {
		result.Empty = true
		result.Message = MessageNoData
		return result, nil
	}

	terms := make([]string, len(rows))
	for i, r := range rows {
		terms[i] = r.Term
	}
	translated := s.translate(ctx, terms, lang)

	blocks := make([]render.Block, len(rows))
	for i, r := range rows {
		tr := translated[i]
		view := BlockView{
			Term:           r.Term,
			TranslatedTerm: tr.Text,
			Fallback:       tr.Fallback,
			Color:          s.tables.Color(i),
			Lower:          r.LowerFrequency,
			Upper:          r.HigherFrequency,
		}
		if tr.Fallback {
			result.Untranslated++
		}
		result.Blocks = append(result.Blocks, view)
		blocks[i] = render.Block{Color: view.Color, Term: view.TranslatedTerm, Lower: view.Lower, Upper: view.Upper}
	}

	html, err := render.Blocks(s.styles.For(orientation), blocks)
	if err != nil {
		return nil, fmt.Errorf("failed to render blocks: %w", err)
	}
	result.HTML = string(html)

	log.Debug().
		Str("band", q.Band).
		Str("language", lang).
		Int("rows", len(rows)).
		Int("untranslated", result.Untranslated).
		Msg("Band search rendered")

	return result, nil
}

func (s *service) translate(ctx context.Context, terms []string, lang string) []translate.Result {
	if s.translator == nil {
		out := make([]translate.Result, len(terms))
		for i, t := range terms {
			out[i] = translate.Result{Source: t, Text: t, Language: lang}
		}
		return out
	}
	return s.translator.TranslateAll(ctx, terms, lang)
}

func (s *service) Lookup(number float64, unit string, edge models.Edge) (*LookupResult, error) {
	if math.IsNaN(number) || math.IsInf(number, 0) || number < 0 {
		return nil, ErrInvalidNumber
	}
	mult, err := s.tables.UnitMultiplier(unit)
	if err != nil {
		return nil, err
	}
	if edge != models.EdgeLower && edge != models.EdgeUpper {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEdge, edge)
	}

	hz := number * mult
	rows := filter.Apply(s.table, filter.EdgeEquals(edge, hz))

	result := &LookupResult{
		Hz:    hz,
		Edge:  edge,
		Count: len(rows),
		Rows:  render.Rows(rows),
	}
	if len(rows) == 0 {
		result.Free = true
		result.Message = MessageFree
	} else {
		result.Message = fmt.Sprintf("There are %d rows in this frequency", len(rows))
	}
	return result, nil
}

func (s *service) GroupByTerm(term string) (*GroupResult, error) {
	rows := filter.Apply(s.table, filter.TermIs(term))
	return &GroupResult{
		Key:   term,
		Empty: len(rows) == 0,
		Count: len(rows),
		Rows:  render.Rows(rows),
		Scatter: render.Scatter(rows, render.ScatterOptions{
			X:       render.FieldLowerFrequency,
			Y:       render.FieldStatus,
			Size:    render.FieldLowerFrequency,
			Color:   render.FieldLowerFrequency,
			Hover:   render.FieldStatus,
			LogX:    true,
			SizeMax: 60,
		}),
	}, nil
}

func (s *service) GroupByStatus(status string) (*GroupResult, error) {
	st, err := models.ParseStatus(status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}
	rows := filter.Apply(s.table, filter.StatusIs(st))
	return &GroupResult{
		Key:   status,
		Empty: len(rows) == 0,
		Count: len(rows),
		Rows:  render.Rows(rows),
		Scatter: render.Scatter(rows, render.ScatterOptions{
			X:       render.FieldLowerFrequency,
			Y:       render.FieldTerm,
			Size:    render.FieldLowerFrequency,
			Color:   render.FieldTerm,
			Hover:   render.FieldHigherFrequency,
			LogX:    true,
			SizeMax: 60,
		}),
	}, nil
}
