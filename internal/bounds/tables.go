package bounds

import (
	"sync"

	"github.com/RMahshie/freqplan/pkg/models"
)

// SliderStop is one breakpoint on the 0-110 slider. Lower and Upper are the
// edges of the spectrum segment the stop selects.
type SliderStop struct {
	Position int          `json:"position" doc:"Slider position (0-110, step 10)"`
	Lower    models.Bound `json:"lower" doc:"Segment start"`
	Upper    models.Bound `json:"upper" doc:"Segment end"`
}

// Band is a named contiguous range of the spectrum
type Band struct {
	Label string  `json:"label" doc:"Band designation"`
	Lower float64 `json:"lower_hz" doc:"Lower bound in Hz"`
	Upper float64 `json:"upper_hz" doc:"Upper bound in Hz"`
}

// Language maps a display name to a two-letter code
type Language struct {
	Name string `json:"name" doc:"Display name"`
	Code string `json:"code" doc:"ISO 639-1 code"`
}

// Unit is a frequency unit accepted by exact-match lookups
type Unit struct {
	Name       string  `json:"name" doc:"Unit label"`
	Multiplier float64 `json:"multiplier" doc:"Hz per unit"`
}

const (
	// AllBands selects the whole table
	AllBands = "All"

	SliderMin  = 0
	SliderMax  = 110
	SliderStep = 10
)

// Tables holds the hand-authored lookup tables. A Tables value is never
// modified after construction.
type Tables struct {
	stops     []SliderStop
	bands     []Band
	languages []Language
	units     []Unit
	palette   []string

	stopIndex     map[int]int
	bandIndex     map[string]int
	languageIndex map[string]int
	unitIndex     map[string]int
}

var defaultTables = sync.OnceValue(func() *Tables {
	return New(defaultStops(), defaultBands(), defaultLanguages(), defaultUnits(), defaultPalette())
})

// Default returns the process-wide tables, built on first use
func Default() *Tables {
	return defaultTables()
}

// New builds a Tables value from the given rows. Slices are copied.
func New(stops []SliderStop, bands []Band, languages []Language, units []Unit, palette []string) *Tables {
	t := &Tables{
		stops:         append([]SliderStop(nil), stops...),
		bands:         append([]Band(nil), bands...),
		languages:     append([]Language(nil), languages...),
		units:         append([]Unit(nil), units...),
		palette:       append([]string(nil), palette...),
		stopIndex:     make(map[int]int, len(stops)),
		bandIndex:     make(map[string]int, len(bands)),
		languageIndex: make(map[string]int, len(languages)),
		unitIndex:     make(map[string]int, len(units)),
	}
	for i, s := range t.stops {
		t.stopIndex[s.Position] = i
	}
	for i, b := range t.bands {
		t.bandIndex[b.Label] = i
	}
	for i, l := range t.languages {
		t.languageIndex[l.Name] = i
	}
	for i, u := range t.units {
		t.unitIndex[u.Name] = i
	}
	return t
}

// SliderStops lists the slider breakpoints in position order
func (t *Tables) SliderStops() []SliderStop {
	return append([]SliderStop(nil), t.stops...)
}

// Bands lists the bands in display order
func (t *Tables) Bands() []Band {
	return append([]Band(nil), t.bands...)
}

// Languages lists the languages in display order
func (t *Tables) Languages() []Language {
	return append([]Language(nil), t.languages...)
}

// Units lists the lookup units
func (t *Tables) Units() []Unit {
	return append([]Unit(nil), t.units...)
}

// Color returns the palette colour for a row position. Positions past the
// end of the palette wrap around.
func (t *Tables) Color(i int) string {
	if len(t.palette) == 0 {
		return ""
	}
	if i < 0 {
		i = -i
	}
	return t.palette[i%len(t.palette)]
}

func bound(hz float64, label string) models.Bound {
	return models.Bound{Hz: hz, Label: label}
}

// The segments follow the ITU decades, then split the top of the table
// (300 GHz - 3000 GHz) into three slices.
func defaultStops() []SliderStop {
	edges := []models.Bound{
		bound(0, "0 Hz"),
		bound(3e3, "3 KHz"),
		bound(30e3, "30 KHz"),
		bound(300e3, "300 KHz"),
		bound(3e6, "3 MHz"),
		bound(30e6, "30 MHz"),
		bound(300e6, "300 MHz"),
		bound(3e9, "3 GHz"),
		bound(30e9, "30 GHz"),
		bound(300e9, "300 GHz"),
		bound(1000e9, "1000 GHz"),
		bound(2000e9, "2000 GHz"),
		bound(3000e9, "3000 GHz"),
	}
	stops := make([]SliderStop, 0, len(edges)-1)
	for i := 0; i+1 < len(edges); i++ {
		stops = append(stops, SliderStop{
			Position: i * SliderStep,
			Lower:    edges[i],
			Upper:    edges[i+1],
		})
	}
	return stops
}

func defaultBands() []Band {
	return []Band{
		{Label: AllBands, Lower: 0, Upper: 3000e9},
		{Label: "ELF", Lower: 3, Upper: 30},
		{Label: "SLF", Lower: 30, Upper: 300},
		{Label: "ULF", Lower: 300, Upper: 3e3},
		{Label: "VLF", Lower: 3e3, Upper: 30e3},
		{Label: "LF", Lower: 30e3, Upper: 300e3},
		{Label: "MF", Lower: 300e3, Upper: 3e6},
		{Label: "HF", Lower: 3e6, Upper: 30e6},
		{Label: "VHF", Lower: 30e6, Upper: 300e6},
		{Label: "UHF", Lower: 300e6, Upper: 3e9},
		{Label: "SHF", Lower: 3e9, Upper: 30e9},
		{Label: "EHF", Lower: 30e9, Upper: 300e9},
		{Label: "THF", Lower: 300e9, Upper: 3000e9},
	}
}

func defaultLanguages() []Language {
	return []Language{
		{Name: "English", Code: "en"},
		{Name: "Albanian", Code: "sq"},
		{Name: "Serbian", Code: "sr"},
		{Name: "Bosnian", Code: "bs"},
		{Name: "Croatian", Code: "hr"},
		{Name: "Macedonian", Code: "mk"},
		{Name: "Turkish", Code: "tr"},
		{Name: "German", Code: "de"},
		{Name: "French", Code: "fr"},
		{Name: "Italian", Code: "it"},
		{Name: "Spanish", Code: "es"},
		{Name: "Greek", Code: "el"},
	}
}

func defaultUnits() []Unit {
	return []Unit{
		{Name: "KHz", Multiplier: 1e3},
		{Name: "MHz", Multiplier: 1e6},
		{Name: "GHz", Multiplier: 1e9},
	}
}

func defaultPalette() []string {
	return []string{
		"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
		"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
		"#14B8A6", "#EAB308", "#DC2626", "#7C3AED", "#0EA5E9",
		"#DB2777", "#65A30D", "#EA580C", "#2563EB", "#059669",
	}
}
