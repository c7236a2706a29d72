package handlers

import (
	"github.com/RMahshie/freqplan/internal/explorer"
)

// OptionsResponse lists the values every dashboard control can take
type OptionsResponse struct {
	Body explorer.Options
}

// SliderRequest selects a slider range and axis
type SliderRequest struct {
	Start int    `query:"start" default:"0" minimum:"0" maximum:"110" multipleOf:"10" doc:"Start slider position"`
	End   int    `query:"end" default:"110" minimum:"0" maximum:"110" multipleOf:"10" doc:"End slider position"`
	Axis  string `query:"axis" default:"both" enum:"lower,upper,both" doc:"Bound to filter on"`
}

// SliderResponse is one slider tab
type SliderResponse struct {
	Body *explorer.SliderResult
}

// BandRequest is the band search form
type BandRequest struct {
	Band        string `path:"band" doc:"Band designation, or All"`
	Term        string `query:"term" default:"All" doc:"Term to keep, or All"`
	Language    string `query:"language" default:"English" doc:"Display name of the translation target"`
	Status      string `query:"status" default:"primary" enum:"primary,secondary" doc:"Allocation status"`
	Orientation string `query:"orientation" default:"horizontal" enum:"horizontal,vertical" doc:"Block layout"`
}

// BandResponse is the outcome of a band search
type BandResponse struct {
	Body *explorer.BandResult
}

// BlocksResponse is the rendered block markup of a band search
type BlocksResponse struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// LookupRequest is an exact-match frequency lookup
type LookupRequest struct {
	Number float64 `query:"number" required:"true" minimum:"0" doc:"Frequency value in the given unit"`
	Unit   string  `query:"unit" default:"KHz" doc:"Frequency unit"`
	Edge   string  `query:"edge" default:"lower" enum:"lower,upper" doc:"Bound to compare against"`
}

// LookupResponse is the outcome of an exact-match lookup
type LookupResponse struct {
	Body *explorer.LookupResult
}

// TermRequest selects a term to group on
type TermRequest struct {
	Term string `path:"term" doc:"Term to group on"`
}

// StatusRequest selects a status to group on
type StatusRequest struct {
	Status string `path:"status" enum:"primary,secondary" doc:"Status to group on"`
}

// GroupResponse is a group-by view
type GroupResponse struct {
	Body *explorer.GroupResult
}

// DatasetURLResponse carries a pre-signed link to the allocation table
type DatasetURLResponse struct {
	Body struct {
		Key         string `json:"key" doc:"Object key of the allocation table"`
		DownloadURL string `json:"download_url" doc:"Pre-signed download URL"`
		ExpiresIn   int    `json:"expires_in" doc:"URL expiration time in seconds"`
	}
}
