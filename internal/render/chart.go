package render

import (
	"strconv"

	"github.com/RMahshie/freqplan/pkg/models"
)

// Field names a record column that a chart channel can read
type Field string

const (
	FieldNone            Field = ""
	FieldTerm            Field = "term"
	FieldStatus          Field = "status"
	FieldLowerFrequency  Field = "lower_frequency"
	FieldHigherFrequency Field = "higher_frequency"
)

// ChartKind is the mark type of a chart
type ChartKind string

const (
	KindScatter ChartKind = "scatter"
	KindBar     ChartKind = "bar"
)

// Chart is a render-ready chart description. Clients map it onto their
// plotting library; the server never draws.
type Chart struct {
	Kind    ChartKind `json:"kind" enum:"scatter,bar" doc:"Mark type"`
	Title   string    `json:"title,omitempty" doc:"Chart title"`
	X       Field     `json:"x" doc:"Column on the x axis"`
	Y       Field     `json:"y" doc:"Column on the y axis"`
	Size    Field     `json:"size,omitempty" doc:"Column driving marker size"`
	Color   Field     `json:"color,omitempty" doc:"Column driving marker colour"`
	Hover   Field     `json:"hover,omitempty" doc:"Column shown on hover"`
	LogX    bool      `json:"log_x" doc:"Log-scaled x axis"`
	SizeMax int       `json:"size_max,omitempty" doc:"Largest marker size in pixels"`
	Points  []Point   `json:"points" doc:"One point per row, in row order"`
}

// Point is one mark. X, Y and Color hold a number or a string depending on
// the column they come from.
type Point struct {
	X     any     `json:"x"`
	Y     any     `json:"y"`
	Size  float64 `json:"size,omitempty"`
	Color any     `json:"color,omitempty"`
	Hover string  `json:"hover,omitempty"`
}

// ScatterOptions picks the columns of a scatter chart
type ScatterOptions struct {
	Title   string
	X       Field
	Y       Field
	Size    Field
	Color   Field
	Hover   Field
	LogX    bool
	SizeMax int
}

// Scatter builds a scatter chart with one point per row
func Scatter(rows []models.FrequencyRecord, opts ScatterOptions) Chart {
	chart := Chart{
		Kind:    KindScatter,
		Title:   opts.Title,
		X:       opts.X,
		Y:       opts.Y,
		Size:    opts.Size,
		Color:   opts.Color,
		Hover:   opts.Hover,
		LogX:    opts.LogX,
		SizeMax: opts.SizeMax,
		Points:  make([]Point, 0, len(rows)),
	}
	for _, r := range rows {
		p := Point{
			X:     value(r, opts.X),
			Y:     value(r, opts.Y),
			Color: value(r, opts.Color),
			Hover: label(r, opts.Hover),
		}
		if size, ok := value(r, opts.Size).(float64); ok {
			p.Size = size
		}
		chart.Points = append(chart.Points, p)
	}
	return chart
}

// Bar builds a bar chart of term against one frequency column
func Bar(rows []models.FrequencyRecord, title string, y Field) Chart {
	chart := Chart{
		Kind:   KindBar,
		Title:  title,
		X:      FieldTerm,
		Y:      y,
		Points: make([]Point, 0, len(rows)),
	}
	for _, r := range rows {
		chart.Points = append(chart.Points, Point{X: r.Term, Y: value(r, y)})
	}
	return chart
}

func value(r models.FrequencyRecord, f Field) any {
	switch f {
	case FieldTerm:
		return r.Term
	case FieldStatus:
		return string(r.Status)
	case FieldLowerFrequency:
		return r.LowerFrequency
	case FieldHigherFrequency:
		return r.HigherFrequency
	}
	return nil
}

func label(r models.FrequencyRecord, f Field) string {
	switch v := value(r, f).(type) {
	case string:
		return v
	case float64:
		return FormatHz(v)
	}
	return ""
}

// FormatHz prints a frequency without exponent or trailing zeros
func FormatHz(hz float64) string {
	return strconv.FormatFloat(hz, 'f', -1, 64)
}
