package translate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RMahshie/freqplan/internal/repository"
	"github.com/RMahshie/freqplan/pkg/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultTimeout     = 5 * time.Second
	DefaultConcurrency = 4
)

// Result is the translation of one input text. When Fallback is set, Text
// holds the original and Err says why.
type Result struct {
	Source   string
	Text     string
	Language string
	Fallback bool
	Cached   bool
	Err      error
}

// Options tunes a Service
type Options struct {
	// Timeout bounds each backend call
	Timeout time.Duration
	// Concurrency bounds parallel backend calls
	Concurrency int
}

// Service translates batches of term labels through a cache
type Service struct {
	backend     Translator
	cache       repository.TranslationRepository
	timeout     time.Duration
	concurrency int
}

// NewService builds a Service. cache may be nil.
func NewService(backend Translator, cache repository.TranslationRepository, opts Options) *Service {
	if backend == nil {
		backend = Identity{}
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	return &Service{
		backend:     backend,
		cache:       cache,
		timeout:     opts.Timeout,
		concurrency: opts.Concurrency,
	}
}

// TranslateAll translates texts into lang and returns one Result per input,
// in input order. Duplicate texts are translated once. It never fails: a text
// that cannot be translated comes back unchanged with Fallback set.
func (s *Service) TranslateAll(ctx context.Context, texts []string, lang string) []Result {
	if lang == "" {
		out := make([]Result, len(texts))
		for i, t := range texts {
			out[i] = Result{Source: t, Text: t}
		}
		return out
	}

	index := make(map[string]int)
	var unique []string
	for _, t := range texts {
		if _, ok := index[t]; !ok {
			index[t] = len(unique)
			unique = append(unique, t)
		}
	}

	results := make([]Result, len(unique))
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, text := range unique {
		i, text := i, text
		g.Go(func() error {
			results[i] = s.translateOne(ctx, text, lang)
			return nil
		})
	}
	_ = g.Wait()

	out := make([]Result, len(texts))
	for i, t := range texts {
		out[i] = results[index[t]]
	}
	return out
}

func (s *Service) translateOne(ctx context.Context, text, lang string) Result {
	hash := models.HashSource(text)

	if s.cache != nil {
		cached, err := s.cache.GetTranslation(ctx, hash, lang)
		if err == nil {
			return Result{Source: text, Text: cached.Text, Language: lang, Cached: true}
		}
		if !errors.Is(err, repository.ErrNotFound) {
			log.Warn().Err(err).Str("language", lang).Msg("Translation cache lookup failed")
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	translated, err := s.backend.Translate(callCtx, text, lang)
	if err != nil {
		log.Warn().Err(err).Str("text", text).Str("language", lang).Msg("Translation failed, using original term")
		return Result{
			Source:   text,
			Text:     text,
			Language: lang,
			Fallback: true,
			Err:      fmt.Errorf("%w: %v", ErrTranslationUnavailable, err),
		}
	}

	if s.cache != nil {
		err := s.cache.SaveTranslation(ctx, &models.Translation{
			SourceHash: hash,
			Source:     text,
			Language:   lang,
			Text:       translated,
		})
		if err != nil {
			log.Warn().Err(err).Str("language", lang).Msg("Failed to cache translation")
		}
	}

	return Result{Source: text, Text: translated, Language: lang}
}
