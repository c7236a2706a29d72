package render

import (
	"context"
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/RMahshie/freqplan/pkg/models"
)

//go:embed styles/*.css
var embedded embed.FS

// Downloader fetches an object by key
type Downloader interface {
	DownloadFile(ctx context.Context, key string) ([]byte, error)
}

// Styles maps an orientation to its style sheet. Built once, read only.
type Styles map[models.Orientation]string

// StyleSource says where style sheets come from. Empty fields are skipped;
// the embedded sheets are always the last resort.
type StyleSource struct {
	Store  Downloader
	Prefix string
	Dir    string
}

var orientations = []models.Orientation{models.OrientationHorizontal, models.OrientationVertical}

// LoadStyles reads the horizontal and vertical style sheets
func LoadStyles(ctx context.Context, src StyleSource) (Styles, error) {
	styles := make(Styles, len(orientations))
	for _, o := range orientations {
		name := string(o) + ".css"
		css, err := src.read(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", name, err)
		}
		styles[o] = css
	}
	return styles, nil
}

func (s StyleSource) read(ctx context.Context, name string) (string, error) {
	if s.Store != nil && s.Prefix != "" {
		data, err := s.Store.DownloadFile(ctx, path.Join(s.Prefix, name))
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if s.Dir != "" {
		data, err := os.ReadFile(filepath.Join(s.Dir, name))
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := embedded.ReadFile("styles/" + name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// For returns the sheet for o, falling back to horizontal
func (s Styles) For(o models.Orientation) string {
	if css, ok := s[o]; ok {
		return css
	}
	return s[models.OrientationHorizontal]
}

// DefaultStyles returns the embedded sheets
func DefaultStyles() Styles {
	styles, err := LoadStyles(context.Background(), StyleSource{})
	if err != nil {
		panic(err)
	}
	return styles
}
