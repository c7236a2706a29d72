package app

import (
	"context"
	"fmt"

	"github.com/RMahshie/freqplan/internal/bounds"
	"github.com/RMahshie/freqplan/internal/config"
	"github.com/RMahshie/freqplan/internal/dataset"
	"github.com/RMahshie/freqplan/internal/explorer"
	"github.com/RMahshie/freqplan/internal/filter"
	"github.com/RMahshie/freqplan/internal/render"
	"github.com/RMahshie/freqplan/internal/repository"
	"github.com/RMahshie/freqplan/internal/repository/memory"
	"github.com/RMahshie/freqplan/internal/repository/postgres"
	"github.com/RMahshie/freqplan/internal/repository/sqlite"
	"github.com/RMahshie/freqplan/internal/storage"
	"github.com/RMahshie/freqplan/internal/translate"
	"github.com/rs/zerolog/log"
)

const (
	CacheMemory   = "memory"
	CachePostgres = "postgres"
	CacheSQLite   = "sqlite"
)

// App is everything a front end needs to serve the dashboard
type App struct {
	Explorer explorer.Explorer
	Store    storage.ObjectStore
	// DatasetKey is set when the table was read from the object store
	DatasetKey string

	cache repository.TranslationRepository
}

// Close releases the translation cache
func (a *App) Close() error {
	if a.cache == nil {
		return nil
	}
	return a.cache.Close()
}

// New loads the table and builds the explorer. A missing input file is
// returned as dataset.ErrMissingInputFile.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{}

	if cfg.Storage.Enabled() {
		store, err := storage.NewObjectStore(storage.S3Config{
			Driver:    cfg.Storage.Driver,
			Bucket:    cfg.Storage.Bucket,
			Endpoint:  cfg.Storage.Endpoint,
			Region:    cfg.Storage.Region,
			AccessKey: cfg.Storage.AccessKeyID,
			SecretKey: cfg.Storage.SecretAccessKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create object store: %w", err)
		}
		a.Store = store
	}

	table, err := loadTable(ctx, cfg, a)
	if err != nil {
		return nil, err
	}

	styles, err := loadStyles(ctx, cfg, a.Store)
	if err != nil {
		return nil, err
	}

	cache, err := OpenCache(ctx, cfg.Cache)
	if err != nil {
		return nil, err
	}
	a.cache = cache

	var backend translate.Translator = translate.Identity{}
	if cfg.Translate.URL != "" {
		backend = translate.NewLibreTranslate(cfg.Translate.URL, cfg.Translate.APIKey)
	}
	translator := translate.NewService(backend, cache, translate.Options{
		Timeout:     cfg.Translate.Timeout,
		Concurrency: cfg.Translate.Concurrency,
	})

	a.Explorer = explorer.NewService(table, bounds.Default(), translator, styles)
	return a, nil
}

func loadTable(ctx context.Context, cfg *config.Config, a *App) (*filter.Table, error) {
	var (
		result *dataset.Result
		err    error
		source string
	)
	if a.Store != nil && cfg.Dataset.S3Key != "" {
		source = cfg.Dataset.S3Key
		result, err = dataset.LoadObject(ctx, a.Store, cfg.Dataset.S3Key)
		a.DatasetKey = cfg.Dataset.S3Key
	} else {
		source = cfg.Dataset.Path
		result, err = dataset.LoadFile(cfg.Dataset.Path)
	}
	if err != nil {
		return nil, err
	}

	for _, rowErr := range result.RowErrors {
		log.Warn().Err(rowErr).Str("source", source).Msg("Skipping invalid row")
	}
	if err := result.Err(cfg.Dataset.Strict); err != nil {
		return nil, err
	}

	log.Info().
		Str("source", source).
		Int("records", len(result.Records)).
		Int("skipped", len(result.RowErrors)).
		Msg("Allocation table loaded")

	return filter.NewTable(result.Records), nil
}

func loadStyles(ctx context.Context, cfg *config.Config, store storage.ObjectStore) (render.Styles, error) {
	src := render.StyleSource{Dir: cfg.Dataset.StyleDir}
	if store != nil && cfg.Dataset.StyleKey != "" {
		src.Store = store
		src.Prefix = cfg.Dataset.StyleKey
	}
	styles, err := render.LoadStyles(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("failed to load style sheets: %w", err)
	}
	return styles, nil
}

// OpenCache opens the translation cache selected by cfg.Driver
func OpenCache(ctx context.Context, cfg config.CacheConfig) (repository.TranslationRepository, error) {
	switch cfg.Driver {
	case "", CacheMemory:
		return memory.NewTranslationRepository(), nil
	case CachePostgres:
		repo, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres cache: %w", err)
		}
		return repo, nil
	case CacheSQLite:
		repo, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite cache: %w", err)
		}
		return repo, nil
	}
	return nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
}
