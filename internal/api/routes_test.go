package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/RMahshie/freqplan/internal/api/handlers"
	"github.com/RMahshie/freqplan/internal/bounds"
	"github.com/RMahshie/freqplan/internal/explorer"
	"github.com/RMahshie/freqplan/internal/filter"
	"github.com/RMahshie/freqplan/internal/render"
	"github.com/RMahshie/freqplan/pkg/models"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T) humatest.TestAPI {
	t.Helper()
	table := filter.NewTable([]models.FrequencyRecord{
		{Term: "Radionavigation", LowerFrequency: 9000, HigherFrequency: 14000, Status: models.StatusPrimary},
		{Term: "Broadcasting", LowerFrequency: 148500, HigherFrequency: 283500, Status: models.StatusPrimary},
		{Term: "Fixed", LowerFrequency: 283500, HigherFrequency: 315000, Status: models.StatusSecondary},
		{Term: "Broadcasting", LowerFrequency: 526500, HigherFrequency: 1606500, Status: models.StatusPrimary},
	})
	exp := explorer.NewService(table, bounds.Default(), nil, render.DefaultStyles())

	_, api := humatest.New(t)
	RegisterRoutes(api, exp, nil)
	return api
}

func TestRoutes_Options(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Get("/api/options")
	require.Equal(t, http.StatusOK, resp.Code)

	var body explorer.Options
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, []string{"Radionavigation", "Broadcasting", "Fixed"}, body.Terms)
	assert.Equal(t, 4, body.RecordCount)
}

func TestRoutes_Slider(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Get("/api/slider?start=10&end=20&axis=lower")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "from 3 KHz to 300 KHz")

	resp = api.Get("/api/slider?start=20&end=10")
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = api.Get("/api/slider?start=5&end=10")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestRoutes_BandBlocks(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Get("/api/bands/LF/blocks?term=Broadcasting")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, resp.Body.String(), "<h3>Broadcasting</h3>")
	assert.Contains(t, resp.Body.String(), "148500 Hz - 283500 Hz")

	resp = api.Get("/api/bands/SHF/allocations")
	require.Equal(t, http.StatusOK, resp.Code)
	var body explorer.BandResult
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Empty)
	assert.Equal(t, explorer.MessageNoData, body.Message)

	resp = api.Get("/api/bands/XLF/allocations")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestRoutes_Lookup(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Get("/api/lookup?number=9&unit=KHz&edge=lower")
	require.Equal(t, http.StatusOK, resp.Code)
	var body explorer.LookupResult
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	assert.False(t, body.Free)

	resp = api.Get("/api/lookup?number=10&unit=KHz")
	require.Equal(t, http.StatusOK, resp.Code)
	body = explorer.LookupResult{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Free)
	assert.Equal(t, explorer.MessageFree, body.Message)

	resp = api.Get("/api/lookup?number=abc&unit=KHz")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestRoutes_Groups(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Get("/api/terms/Broadcasting/allocations")
	require.Equal(t, http.StatusOK, resp.Code)
	var body explorer.GroupResult
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Rows, 2)
	assert.Equal(t, 148500.0, body.Rows[0].LowerFrequency)
	assert.Equal(t, 526500.0, body.Rows[1].LowerFrequency)

	resp = api.Get("/api/statuses/secondary/allocations")
	require.Equal(t, http.StatusOK, resp.Code)
	body = explorer.GroupResult{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
}

func TestRoutes_DatasetURLOnlyWithStore(t *testing.T) {
	api := newTestAPI(t)
	resp := api.Get("/api/dataset/url")
	assert.Equal(t, http.StatusNotFound, resp.Code)

	_, withStore := humatest.New(t)
	RegisterRoutes(withStore, explorer.NewService(filter.NewTable(nil), nil, nil, nil), handlers.NewDatasetHandler(nil, "", 0))
	resp = withStore.Get("/api/dataset/url")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
