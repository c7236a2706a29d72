package handlers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/RMahshie/freqplan/internal/bounds"
	"github.com/RMahshie/freqplan/internal/explorer"
	"github.com/RMahshie/freqplan/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockExplorer implements explorer.Explorer for testing
type MockExplorer struct {
	mock.Mock
}

func (m *MockExplorer) Options() explorer.Options {
	args := m.Called()
	return args.Get(0).(explorer.Options)
}

func (m *MockExplorer) SliderView(start, end int, axis models.Axis) (*explorer.SliderResult, error) {
	args := m.Called(start, end, axis)
	return args.Get(0).(*explorer.SliderResult), args.Error(1)
}

func (m *MockExplorer) BandSearch(ctx context.Context, q explorer.BandQuery) (*explorer.BandResult, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(*explorer.BandResult), args.Error(1)
}

func (m *MockExplorer) Lookup(number float64, unit string, edge models.Edge) (*explorer.LookupResult, error) {
	args := m.Called(number, unit, edge)
	return args.Get(0).(*explorer.LookupResult), args.Error(1)
}

func (m *MockExplorer) GroupByTerm(term string) (*explorer.GroupResult, error) {
	args := m.Called(term)
	return args.Get(0).(*explorer.GroupResult), args.Error(1)
}

func (m *MockExplorer) GroupByStatus(status string) (*explorer.GroupResult, error) {
	args := m.Called(status)
	return args.Get(0).(*explorer.GroupResult), args.Error(1)
}

// MockObjectStore implements storage.ObjectStore for testing
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) DownloadFile(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockObjectStore) GenerateDownloadURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestGetSlider(t *testing.T) {
	tests := []struct {
		name      string
		req       SliderRequest
		mockSetup func(*MockExplorer)
		wantCode  int
	}{
		{
			name: "valid range",
			req:  SliderRequest{Start: 10, End: 20, Axis: "lower"},
			mockSetup: func(m *MockExplorer) {
				m.On("SliderView", 10, 20, models.AxisLower).Return(&explorer.SliderResult{Count: 3}, nil)
			},
			wantCode: 200,
		},
		{
			name: "inverted range",
			req:  SliderRequest{Start: 30, End: 10, Axis: "both"},
			mockSetup: func(m *MockExplorer) {
				m.On("SliderView", 30, 10, models.AxisBoth).Return((*explorer.SliderResult)(nil), bounds.ErrInvertedRange)
			},
			wantCode: 400,
		},
		{
			name: "unexpected failure",
			req:  SliderRequest{Start: 0, End: 10, Axis: "upper"},
			mockSetup: func(m *MockExplorer) {
				m.On("SliderView", 0, 10, models.AxisUpper).Return((*explorer.SliderResult)(nil), assert.AnError)
			},
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockExp := &MockExplorer{}
			tt.mockSetup(mockExp)

			handler := NewDashboardHandler(mockExp)
			resp, err := handler.GetSlider(context.Background(), &tt.req)

			if tt.wantCode == 200 {
				require.NoError(t, err)
				assert.Equal(t, 3, resp.Body.Count)
			} else {
				assert.Equal(t, tt.wantCode, statusOf(t, err))
			}
			mockExp.AssertExpectations(t)
		})
	}
}

func TestGetBandBlocks(t *testing.T) {
	query := explorer.BandQuery{
		Band:        "LF",
		Term:        "All",
		Language:    "English",
		Status:      models.StatusPrimary,
		Orientation: models.OrientationHorizontal,
	}
	req := &BandRequest{Band: "LF", Term: "All", Language: "English", Status: "primary", Orientation: "horizontal"}

	t.Run("rendered markup", func(t *testing.T) {
		mockExp := &MockExplorer{}
		mockExp.On("BandSearch", mock.Anything, query).Return(&explorer.BandResult{
			Count: 1,
			HTML:  "<style></style><div class='containerSlider'></div>",
		}, nil)

		resp, err := NewDashboardHandler(mockExp).GetBandBlocks(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "text/html; charset=utf-8", resp.ContentType)
		assert.Contains(t, string(resp.Body), "containerSlider")
		mockExp.AssertExpectations(t)
	})

	t.Run("no data", func(t *testing.T) {
		mockExp := &MockExplorer{}
		mockExp.On("BandSearch", mock.Anything, query).Return(&explorer.BandResult{
			Empty:   true,
			Message: explorer.MessageNoData,
		}, nil)

		resp, err := NewDashboardHandler(mockExp).GetBandBlocks(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "<p>No data!</p>", string(resp.Body))
	})

	t.Run("unknown language", func(t *testing.T) {
		mockExp := &MockExplorer{}
		mockExp.On("BandSearch", mock.Anything, mock.Anything).Return((*explorer.BandResult)(nil),
			fmt.Errorf("%w: %q", bounds.ErrUnknownLanguage, "Klingon"))

		_, err := NewDashboardHandler(mockExp).GetBandBlocks(context.Background(), &BandRequest{Band: "LF", Language: "Klingon", Status: "primary"})
		assert.Equal(t, 400, statusOf(t, err))
	})
}

func TestGetLookup(t *testing.T) {
	mockExp := &MockExplorer{}
	mockExp.On("Lookup", 9.0, "KHz", models.EdgeLower).Return(&explorer.LookupResult{Hz: 9000, Count: 1}, nil)
	mockExp.On("Lookup", 1.0, "THz", models.EdgeLower).Return((*explorer.LookupResult)(nil), bounds.ErrUnknownUnit)

	handler := NewDashboardHandler(mockExp)

	resp, err := handler.GetLookup(context.Background(), &LookupRequest{Number: 9, Unit: "KHz", Edge: "lower"})
	require.NoError(t, err)
	assert.Equal(t, 9000.0, resp.Body.Hz)

	_, err = handler.GetLookup(context.Background(), &LookupRequest{Number: 1, Unit: "THz", Edge: "lower"})
	assert.Equal(t, 400, statusOf(t, err))

	mockExp.AssertExpectations(t)
}

func TestGetGroups(t *testing.T) {
	mockExp := &MockExplorer{}
	mockExp.On("GroupByTerm", "Broadcasting").Return(&explorer.GroupResult{Key: "Broadcasting", Count: 2}, nil)
	mockExp.On("GroupByStatus", "tertiary").Return((*explorer.GroupResult)(nil), explorer.ErrInvalidStatus)

	handler := NewDashboardHandler(mockExp)

	resp, err := handler.GetTermAllocations(context.Background(), &TermRequest{Term: "Broadcasting"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Body.Count)

	_, err = handler.GetStatusAllocations(context.Background(), &StatusRequest{Status: "tertiary"})
	assert.Equal(t, 400, statusOf(t, err))
}

func TestGetDatasetURL(t *testing.T) {
	t.Run("presigned", func(t *testing.T) {
		mockStore := &MockObjectStore{}
		mockStore.On("GenerateDownloadURL", mock.Anything, "datasets/plan.csv").Return("https://example.com/plan.csv?sig", nil)

		handler := NewDatasetHandler(mockStore, "datasets/plan.csv", 15*time.Minute)
		resp, err := handler.GetDatasetURL(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/plan.csv?sig", resp.Body.DownloadURL)
		assert.Equal(t, 900, resp.Body.ExpiresIn)
		mockStore.AssertExpectations(t)
	})

	t.Run("default expiry", func(t *testing.T) {
		mockStore := &MockObjectStore{}
		mockStore.On("GenerateDownloadURL", mock.Anything, "plan.csv").Return("https://example.com/plan.csv", nil)

		resp, err := NewDatasetHandler(mockStore, "plan.csv", 0).GetDatasetURL(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, 86400, resp.Body.ExpiresIn)
	})

	t.Run("store failure", func(t *testing.T) {
		mockStore := &MockObjectStore{}
		mockStore.On("GenerateDownloadURL", mock.Anything, "plan.csv").Return("", assert.AnError)

		_, err := NewDatasetHandler(mockStore, "plan.csv", 0).GetDatasetURL(context.Background(), nil)
		assert.Equal(t, 500, statusOf(t, err))
	})

	t.Run("no store", func(t *testing.T) {
		_, err := NewDatasetHandler(nil, "", 0).GetDatasetURL(context.Background(), nil)
		assert.Equal(t, 404, statusOf(t, err))
	})
}
