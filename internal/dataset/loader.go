package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/RMahshie/freqplan/pkg/models"
)

// Column names of the allocation CSV
const (
	ColumnTerm            = "_term"
	ColumnLowerFrequency  = "_lowerFrequency"
	ColumnHigherFrequency = "_higherFrequency"
	ColumnStatus          = "_status"
	ColumnShortComments   = "_shortComments"
)

var requiredColumns = []string{
	ColumnTerm,
	ColumnLowerFrequency,
	ColumnHigherFrequency,
	ColumnStatus,
	ColumnShortComments,
}

var (
	ErrMissingInputFile = errors.New("dataset input file not found")
	ErrMissingColumn    = errors.New("dataset is missing a required column")
	ErrEmptyDataset     = errors.New("dataset contains no valid rows")
)

// RowError describes a rejected CSV row. Line counts the header as line 1.
type RowError struct {
	Line   int
	Column string
	Err    error
}

func (e RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d, column %s: %v", e.Line, e.Column, e.Err)
}

func (e RowError) Unwrap() error { return e.Err }

// Result is the outcome of parsing a dataset
type Result struct {
	Records   []models.FrequencyRecord
	RowErrors []RowError
}

// Err reports the parse outcome as a single error. In strict mode any row
// error fails the load; otherwise only an empty table does.
func (r *Result) Err(strict bool) error {
	if strict && len(r.RowErrors) > 0 {
		errs := make([]error, 0, len(r.RowErrors))
		for _, re := range r.RowErrors {
			errs = append(errs, re)
		}
		return fmt.Errorf("dataset has %d invalid rows: %w", len(r.RowErrors), errors.Join(errs...))
	}
	if len(r.Records) == 0 {
		return ErrEmptyDataset
	}
	return nil
}

// Downloader fetches an object by key
type Downloader interface {
	DownloadFile(ctx context.Context, key string) ([]byte, error)
}

// LoadFile reads and validates the CSV at path
func LoadFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInputFile, path)
		}
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// LoadObject reads and validates the CSV stored under key
func LoadObject(ctx context.Context, store Downloader, key string) (*Result, error) {
	data, err := store.DownloadFile(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingInputFile, key, err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse reads the allocation CSV. Header problems are returned as an error;
// row problems are collected and the row is skipped.
func Parse(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: file is empty", ErrMissingColumn)
		}
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		index[h] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	result := &Result{}
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.RowErrors = append(result.RowErrors, RowError{Line: line, Err: err})
			continue
		}

		rec, rowErr := parseRow(row, index)
		if rowErr != nil {
			rowErr.Line = line
			result.RowErrors = append(result.RowErrors, *rowErr)
			continue
		}
		result.Records = append(result.Records, rec)
	}

	return result, nil
}

func parseRow(row []string, index map[string]int) (models.FrequencyRecord, *RowError) {
	field := func(col string) string {
		i := index[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	term := field(ColumnTerm)
	if term == "" {
		return models.FrequencyRecord{}, &RowError{Column: ColumnTerm, Err: errors.New("term is empty")}
	}

	lower, err := parseHz(field(ColumnLowerFrequency))
	if err != nil {
		return models.FrequencyRecord{}, &RowError{Column: ColumnLowerFrequency, Err: err}
	}
	higher, err := parseHz(field(ColumnHigherFrequency))
	if err != nil {
		return models.FrequencyRecord{}, &RowError{Column: ColumnHigherFrequency, Err: err}
	}
	if lower > higher {
		return models.FrequencyRecord{}, &RowError{
			Column: ColumnLowerFrequency,
			Err:    fmt.Errorf("lower frequency %g exceeds higher frequency %g", lower, higher),
		}
	}

	status, err := models.ParseStatus(strings.ToLower(field(ColumnStatus)))
	if err != nil {
		return models.FrequencyRecord{}, &RowError{Column: ColumnStatus, Err: err}
	}

	return models.FrequencyRecord{
		Term:            term,
		LowerFrequency:  lower,
		HigherFrequency: higher,
		Status:          status,
		ShortComment:    field(ColumnShortComments),
	}, nil
}

func parseHz(s string) (float64, error) {
	if s == "" {
		return 0, errors.New("frequency is empty")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("frequency %q is not numeric", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("frequency %q is out of range", s)
	}
	return v, nil
}
