package handlers

import (
	"context"
	"time"

	"github.com/RMahshie/freqplan/internal/explorer"
	"github.com/RMahshie/freqplan/internal/storage"
	"github.com/RMahshie/freqplan/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"
)

// DashboardHandler serves the dashboard views
type DashboardHandler struct {
	explorer explorer.Explorer
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(exp explorer.Explorer) *DashboardHandler {
	return &DashboardHandler{explorer: exp}
}

// toHTTPError maps bad selections to 400 and everything else to 500
func toHTTPError(msg string, err error) error {
	if explorer.IsInvalidInput(err) {
		return huma.Error400BadRequest(err.Error(), err)
	}
	log.Error().Err(err).Msg(msg)
	return huma.Error500InternalServerError(msg, err)
}

// GetOptions returns the dropdown and slider values
func (h *DashboardHandler) GetOptions(ctx context.Context, _ *struct{}) (*OptionsResponse, error) {
	return &OptionsResponse{Body: h.explorer.Options()}, nil
}

// GetSlider returns the records selected by a slider range
func (h *DashboardHandler) GetSlider(ctx context.Context, req *SliderRequest) (*SliderResponse, error) {
	result, err := h.explorer.SliderView(req.Start, req.End, models.Axis(req.Axis))
	if err != nil {
		return nil, toHTTPError("Failed to build slider view", err)
	}
	return &SliderResponse{Body: result}, nil
}

// GetBandAllocations runs a band search and returns the blocks as JSON
func (h *DashboardHandler) GetBandAllocations(ctx context.Context, req *BandRequest) (*BandResponse, error) {
	result, err := h.search(ctx, req)
	if err != nil {
		return nil, err
	}
	return &BandResponse{Body: result}, nil
}

// GetBandBlocks runs a band search and returns the rendered markup
func (h *DashboardHandler) GetBandBlocks(ctx context.Context, req *BandRequest) (*BlocksResponse, error) {
	result, err := h.search(ctx, req)
	if err != nil {
		return nil, err
	}
	body := result.HTML
	if result.Empty {
		body = "<p>" + result.Message + "</p>"
	}
	return &BlocksResponse{
		ContentType: "text/html; charset=utf-8",
		Body:        []byte(body),
	}, nil
}

func (h *DashboardHandler) search(ctx context.Context, req *BandRequest) (*explorer.BandResult, error) {
	result, err := h.explorer.BandSearch(ctx, explorer.BandQuery{
		Band:        req.Band,
		Term:        req.Term,
		Language:    req.Language,
		Status:      models.Status(req.Status),
		Orientation: models.Orientation(req.Orientation),
	})
	if err != nil {
		return nil, toHTTPError("Failed to search band", err)
	}
	if result.Untranslated > 0 {
		log.Warn().Str("band", req.Band).Str("language", result.Language).Int("untranslated", result.Untranslated).Msg("Some terms were not translated")
	}
	return result, nil
}

// GetLookup checks whether a frequency is used as a lower or upper bound
func (h *DashboardHandler) GetLookup(ctx context.Context, req *LookupRequest) (*LookupResponse, error) {
	result, err := h.explorer.Lookup(req.Number, req.Unit, models.Edge(req.Edge))
	if err != nil {
		return nil, toHTTPError("Failed to look up frequency", err)
	}
	return &LookupResponse{Body: result}, nil
}

// GetTermAllocations groups the table on one term
func (h *DashboardHandler) GetTermAllocations(ctx context.Context, req *TermRequest) (*GroupResponse, error) {
	result, err := h.explorer.GroupByTerm(req.Term)
	if err != nil {
		return nil, toHTTPError("Failed to group by term", err)
	}
	return &GroupResponse{Body: result}, nil
}

// GetStatusAllocations groups the table on one status
func (h *DashboardHandler) GetStatusAllocations(ctx context.Context, req *StatusRequest) (*GroupResponse, error) {
	result, err := h.explorer.GroupByStatus(req.Status)
	if err != nil {
		return nil, toHTTPError("Failed to group by status", err)
	}
	return &GroupResponse{Body: result}, nil
}

// DatasetHandler hands out links to the allocation table in the object store
type DatasetHandler struct {
	store  storage.ObjectStore
	key    string
	expiry time.Duration
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(store storage.ObjectStore, key string, expiry time.Duration) *DatasetHandler {
	if expiry == 0 {
		expiry = storage.DefaultURLExpiry
	}
	return &DatasetHandler{store: store, key: key, expiry: expiry}
}

// GetDatasetURL returns a pre-signed download URL for the allocation table
func (h *DatasetHandler) GetDatasetURL(ctx context.Context, _ *struct{}) (*DatasetURLResponse, error) {
	if h.store == nil || h.key == "" {
		return nil, huma.Error404NotFound("Dataset is not served from object storage")
	}

	url, err := h.store.GenerateDownloadURL(ctx, h.key)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate download URL", err)
	}
	log.Info().Str("key", h.key).Msg("Dataset download URL generated")

	resp := &DatasetURLResponse{}
	resp.Body.Key = h.key
	resp.Body.DownloadURL = url
	resp.Body.ExpiresIn = int(h.expiry.Seconds())
	return resp, nil
}
