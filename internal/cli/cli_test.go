package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/RMahshie/freqplan/internal/bounds"
	"github.com/RMahshie/freqplan/internal/explorer"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `_term,_lowerFrequency,_higherFrequency,_status,_shortComments
Radionavigation,9000,14000,primary,
Broadcasting,148500,283500,primary,LW
Fixed,283500,315000,secondary,
Broadcasting,526500,1606500,primary,MW
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "plan.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--dataset", path, "--cache", "memory"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestBandsCommand(t *testing.T) {
	out, err := run(t, "bands")
	require.NoError(t, err)
	assert.Contains(t, out, "VLF")
	assert.Contains(t, out, "30000")

	out, err = run(t, "bands", "--json")
	require.NoError(t, err)
	var bands []bounds.Band
	require.NoError(t, json.Unmarshal([]byte(out), &bands))
	assert.Equal(t, bounds.Default().Bands(), bands)
}

func TestLanguagesCommand(t *testing.T) {
	out, err := run(t, "languages")
	require.NoError(t, err)
	assert.Contains(t, out, "Albanian")
	assert.Contains(t, out, "sq")
}

func TestSliderCommand(t *testing.T) {
	out, err := run(t, "slider", "--start", "10", "--end", "20", "--axis", "lower")
	require.NoError(t, err)
	assert.Contains(t, out, "You have selected the lower frequency records from 3 KHz to 300 KHz")
	assert.Contains(t, out, "3 records")
	assert.Contains(t, out, "Radionavigation")

	_, err = run(t, "slider", "--start", "30", "--end", "10")
	assert.ErrorIs(t, err, bounds.ErrInvertedRange)
}

func TestSearchCommand(t *testing.T) {
	out, err := run(t, "search", "--band", "LF", "--term", "Broadcasting")
	require.NoError(t, err)
	assert.Contains(t, out, "LF: 1 allocations")
	assert.Contains(t, out, "148500")

	out, err = run(t, "search", "--band", "SHF")
	require.NoError(t, err)
	assert.Contains(t, out, explorer.MessageNoData)

	out, err = run(t, "search", "--band", "LF", "--html", "--orientation", "vertical")
	require.NoError(t, err)
	assert.Contains(t, out, "<h3>Broadcasting</h3>")

	_, err = run(t, "search", "--band", "XLF")
	assert.ErrorIs(t, err, bounds.ErrUnknownBand)
}

func TestLookupCommand(t *testing.T) {
	out, err := run(t, "lookup", "9", "--unit", "KHz")
	require.NoError(t, err)
	assert.Contains(t, out, "There are 1 rows in this frequency")
	assert.Contains(t, out, "Radionavigation")

	out, err = run(t, "lookup", "10")
	require.NoError(t, err)
	assert.Contains(t, out, explorer.MessageFree)

	out, err = run(t, "lookup", "283.5", "--edge", "upper", "--json")
	require.NoError(t, err)
	var res explorer.LookupResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 1, res.Count)

	_, err = run(t, "lookup", "abc")
	assert.ErrorIs(t, err, explorer.ErrInvalidNumber)
}

func TestGroupCommands(t *testing.T) {
	out, err := run(t, "group", "term", "Broadcasting")
	require.NoError(t, err)
	assert.Contains(t, out, "Broadcasting: 2 records")
	assert.Contains(t, out, "526500")

	out, err = run(t, "group", "status", "secondary")
	require.NoError(t, err)
	assert.Contains(t, out, "secondary: 1 records")

	_, err = run(t, "group", "status", "tertiary")
	assert.ErrorIs(t, err, explorer.ErrInvalidStatus)
}

func TestMissingDataset(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--dataset", filepath.Join(t.TempDir(), "missing.csv"), "slider"})
	assert.Error(t, root.Execute())
}
