package filter

import (
	"testing"

	"github.com/RMahshie/freqplan/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(term string, lower, upper float64, status models.Status) models.FrequencyRecord {
	return models.FrequencyRecord{Term: term, LowerFrequency: lower, HigherFrequency: upper, Status: status}
}

func sampleTable() *Table {
	return NewTable([]models.FrequencyRecord{
		rec("Radionavigation", 9000, 14000, models.StatusPrimary),
		rec("Broadcasting", 148500, 283500, models.StatusPrimary),
		rec("Fixed", 283500, 315000, models.StatusSecondary),
		rec("Broadcasting", 526500, 1606500, models.StatusPrimary),
		rec("Mobile", 8300, 1e9, models.StatusSecondary),
		rec("Amateur", 2e9, 3e9, models.StatusSecondary),
	})
}

func TestApply_AlwaysTrueReturnsTable(t *testing.T) {
	table := sampleTable()
	assert.Equal(t, table.Records(), Apply(table))
	assert.Equal(t, table.Records(), Apply(table, All()))
}

func TestApply_DoesNotMutate(t *testing.T) {
	table := sampleTable()
	before := table.Records()

	out := Apply(table, TermIs("Broadcasting"))
	require.Len(t, out, 2)
	out[0].Term = "changed"

	assert.Equal(t, before, table.Records())
}

func TestApply_RangePredicatesHoldExactly(t *testing.T) {
	table := sampleTable()
	tests := []struct {
		name  string
		pred  Predicate
		holds func(models.FrequencyRecord) bool
		want  int
	}{
		{
			name:  "lower in range",
			pred:  LowerIn(9000, 300000),
			holds: func(r models.FrequencyRecord) bool { return r.LowerFrequency >= 9000 && r.LowerFrequency <= 300000 },
			want:  3,
		},
		{
			name:  "upper in range",
			pred:  UpperIn(14000, 315000),
			holds: func(r models.FrequencyRecord) bool { return r.HigherFrequency >= 14000 && r.HigherFrequency <= 315000 },
			want:  3,
		},
		{
			name:  "within",
			pred:  Within(9000, 2e6),
			holds: func(r models.FrequencyRecord) bool { return r.LowerFrequency >= 9000 && r.HigherFrequency <= 2e6 },
			want:  4,
		},
		{
			name:  "nothing",
			pred:  Within(5e9, 6e9),
			holds: func(models.FrequencyRecord) bool { return false },
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Apply(table, tt.pred)
			assert.Len(t, out, tt.want)
			for _, r := range out {
				assert.True(t, tt.holds(r), "%+v", r)
			}
			var expected []models.FrequencyRecord
			for _, r := range table.Records() {
				if tt.holds(r) {
					expected = append(expected, r)
				}
			}
			assert.ElementsMatch(t, expected, out)
		})
	}
}

func TestApply_GroupByTermKeepsOrder(t *testing.T) {
	table := NewTable([]models.FrequencyRecord{
		rec("Broadcasting", 1, 2, models.StatusPrimary),
		rec("Fixed", 3, 4, models.StatusPrimary),
		rec("Broadcasting", 5, 6, models.StatusSecondary),
	})

	out := Apply(table, TermIs("Broadcasting"))
	require.Len(t, out, 2)
	assert.Equal(t, 1.0, out[0].LowerFrequency)
	assert.Equal(t, 5.0, out[1].LowerFrequency)
}

func TestApply_Conjunction(t *testing.T) {
	out := Apply(sampleTable(), Within(0, 3e9), StatusIs(models.StatusSecondary), TermIs("Fixed"))
	require.Len(t, out, 1)
	assert.Equal(t, "Fixed", out[0].Term)
}

func TestEdgeEquals(t *testing.T) {
	table := sampleTable()

	out := Apply(table, EdgeEquals(models.EdgeLower, 9*1e3))
	require.Len(t, out, 1)
	assert.Equal(t, "Radionavigation", out[0].Term)

	out = Apply(table, EdgeEquals(models.EdgeUpper, 1*1e9))
	require.Len(t, out, 1)
	assert.Equal(t, "Mobile", out[0].Term)

	out = Apply(table, EdgeEquals(models.EdgeLower, 8.3*1e3))
	require.Len(t, out, 1)
	assert.Equal(t, 8300.0, out[0].LowerFrequency)

	assert.Empty(t, Apply(table, EdgeEquals(models.EdgeLower, 9001)))
	assert.Empty(t, Apply(table, EdgeEquals(models.EdgeUpper, 9000)))
}

func TestDistinct(t *testing.T) {
	table := sampleTable()
	assert.Equal(t, []string{"Radionavigation", "Broadcasting", "Fixed", "Mobile", "Amateur"}, Terms(table))
	assert.Equal(t, []models.Status{models.StatusPrimary, models.StatusSecondary}, Statuses(table))
	assert.Nil(t, Terms(&Table{}))
}

func TestTable_ZeroValue(t *testing.T) {
	var table Table
	assert.Equal(t, 0, table.Len())
	assert.Empty(t, Apply(&table, All()))
}
