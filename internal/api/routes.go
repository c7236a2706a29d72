package api

import (
	"net/http"

	"github.com/RMahshie/freqplan/internal/api/handlers"
	"github.com/RMahshie/freqplan/internal/explorer"
	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes sets up all API routes. The dataset route is only served
// when datasets is non-nil.
func RegisterRoutes(api huma.API, exp explorer.Explorer, datasets *handlers.DatasetHandler) {
	// Initialize handlers
	dashboard := handlers.NewDashboardHandler(exp)

	huma.Register(api, huma.Operation{
		OperationID: "getOptions",
		Method:      http.MethodGet,
		Path:        "/api/options",
		Summary:     "List control values",
		Description: "Returns terms, statuses, bands, languages, units and slider breakpoints",
		Tags:        []string{"Dashboard"},
	}, dashboard.GetOptions)

	huma.Register(api, huma.Operation{
		OperationID: "getSlider",
		Method:      http.MethodGet,
		Path:        "/api/slider",
		Summary:     "Slider view",
		Description: "Returns the records whose lower bound, upper bound, or both fall inside the selected slider range",
		Tags:        []string{"Dashboard"},
	}, dashboard.GetSlider)

	huma.Register(api, huma.Operation{
		OperationID: "getBandAllocations",
		Method:      http.MethodGet,
		Path:        "/api/bands/{band}/allocations",
		Summary:     "Search a band",
		Description: "Returns the allocations inside a band with translated term labels and palette colours",
		Tags:        []string{"Bands"},
	}, dashboard.GetBandAllocations)

	huma.Register(api, huma.Operation{
		OperationID: "getBandBlocks",
		Method:      http.MethodGet,
		Path:        "/api/bands/{band}/blocks",
		Summary:     "Render a band",
		Description: "Returns the allocations inside a band as styled HTML blocks",
		Tags:        []string{"Bands"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "Rendered blocks",
				Content: map[string]*huma.MediaType{
					"text/html": {},
				},
			},
		},
	}, dashboard.GetBandBlocks)

	huma.Register(api, huma.Operation{
		OperationID: "lookupFrequency",
		Method:      http.MethodGet,
		Path:        "/api/lookup",
		Summary:     "Exact-match lookup",
		Description: "Reports the records whose lower or upper bound equals the given frequency, or that it is free",
		Tags:        []string{"Dashboard"},
	}, dashboard.GetLookup)

	huma.Register(api, huma.Operation{
		OperationID: "getTermAllocations",
		Method:      http.MethodGet,
		Path:        "/api/terms/{term}/allocations",
		Summary:     "Group by term",
		Description: "Returns every record with the given term",
		Tags:        []string{"Groups"},
	}, dashboard.GetTermAllocations)

	huma.Register(api, huma.Operation{
		OperationID: "getStatusAllocations",
		Method:      http.MethodGet,
		Path:        "/api/statuses/{status}/allocations",
		Summary:     "Group by status",
		Description: "Returns every record with the given status",
		Tags:        []string{"Groups"},
	}, dashboard.GetStatusAllocations)

	if datasets == nil {
		return
	}

	huma.Register(api, huma.Operation{
		OperationID: "getDatasetURL",
		Method:      http.MethodGet,
		Path:        "/api/dataset/url",
		Summary:     "Download the allocation table",
		Description: "Returns a pre-signed URL for the allocation table held in object storage",
		Tags:        []string{"Dataset"},
	}, datasets.GetDatasetURL)
}
