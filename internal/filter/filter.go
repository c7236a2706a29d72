package filter

import (
	"math"

	"github.com/RMahshie/freqplan/pkg/models"
)

// Table is a read-only allocation table. The zero value is an empty table.
type Table struct {
	records []models.FrequencyRecord
}

// NewTable copies records into a new table
func NewTable(records []models.FrequencyRecord) *Table {
	return &Table{records: append([]models.FrequencyRecord(nil), records...)}
}

// Len returns the number of rows
func (t *Table) Len() int { return len(t.records) }

// At returns row i
func (t *Table) At(i int) models.FrequencyRecord { return t.records[i] }

// Records returns a copy of all rows in table order
func (t *Table) Records() []models.FrequencyRecord {
	return append([]models.FrequencyRecord(nil), t.records...)
}

// Predicate reports whether a record belongs to a subset
type Predicate func(models.FrequencyRecord) bool

// Apply returns the rows matching every predicate, in table order. With no
// predicates every row matches. The table is not modified.
func Apply(t *Table, preds ...Predicate) []models.FrequencyRecord {
	out := make([]models.FrequencyRecord, 0)
	for _, rec := range t.records {
		if matchAll(rec, preds) {
			out = append(out, rec)
		}
	}
	return out
}

func matchAll(rec models.FrequencyRecord, preds []Predicate) bool {
	for _, p := range preds {
		if !p(rec) {
			return false
		}
	}
	return true
}

// All matches every record
func All() Predicate {
	return func(models.FrequencyRecord) bool { return true }
}

// LowerIn matches LowerFrequency in [a, b]
func LowerIn(a, b float64) Predicate {
	return func(r models.FrequencyRecord) bool {
		return r.LowerFrequency >= a && r.LowerFrequency <= b
	}
}

// UpperIn matches HigherFrequency in [a, b]
func UpperIn(a, b float64) Predicate {
	return func(r models.FrequencyRecord) bool {
		return r.HigherFrequency >= a && r.HigherFrequency <= b
	}
}

// Within matches records that lie entirely inside [a, b]
func Within(a, b float64) Predicate {
	return func(r models.FrequencyRecord) bool {
		return r.LowerFrequency >= a && r.HigherFrequency <= b
	}
}

// TermIs matches an exact term
func TermIs(term string) Predicate {
	return func(r models.FrequencyRecord) bool { return r.Term == term }
}

// StatusIs matches an exact status
func StatusIs(status models.Status) Predicate {
	return func(r models.FrequencyRecord) bool { return r.Status == status }
}

// EdgeEquals matches records whose lower or upper bound equals hz
func EdgeEquals(edge models.Edge, hz float64) Predicate {
	return func(r models.FrequencyRecord) bool {
		if edge == models.EdgeUpper {
			return sameHz(r.HigherFrequency, hz)
		}
		return sameHz(r.LowerFrequency, hz)
	}
}

// sameHz compares frequencies with a relative tolerance of one part in 1e12,
// which absorbs rounding from unit scaling (8.3 * 1e3) and nothing else.
func sameHz(a, b float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= scale*1e-12
}

// Distinct returns the distinct values of key in first-appearance order
func Distinct[T comparable](t *Table, key func(models.FrequencyRecord) T) []T {
	seen := make(map[T]bool)
	var out []T
	for _, rec := range t.records {
		k := key(rec)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

// Terms lists distinct terms in table order
func Terms(t *Table) []string {
	return Distinct(t, func(r models.FrequencyRecord) string { return r.Term })
}

// Statuses lists distinct statuses in table order
func Statuses(t *Table) []models.Status {
	return Distinct(t, func(r models.FrequencyRecord) models.Status { return r.Status })
}
