package reports

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/de-tools/bug-trends/pkg/models/domain"
	"github.com/de-tools/bug-trends/pkg/store/csvline"
)

const (
	DefaultPath = "data/winehq_bug_report_data.csv"

	creationDateField = 1
	maxLineSize       = 1024 * 1024
)

var ErrSourceUnavailable = errors.New("bug report source unavailable")

// Loader reads bug reports from a tabular source whose first line is a header.
// Load returns whatever it managed to read even when it also returns an error.
type Loader interface {
	Load(ctx context.Context) (*domain.LoadResult, error)
}

type fileLoader struct {
	path string
}

// NewFileLoader returns a Loader reading the file at path
func NewFileLoader(path string) (Loader, error) {
	if path == "" {
		return nil, fmt.Errorf("report file path is empty")
	}
	return &fileLoader{path: path}, nil
}

func (l *fileLoader) Load(ctx context.Context) (*domain.LoadResult, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return &domain.LoadResult{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer f.Close()

	zerolog.Ctx(ctx).Debug().Str("path", l.path).Msg("reading bug reports")
	return readReports(ctx, f)
}

type readerLoader struct {
	r io.Reader
}

// NewReaderLoader returns a Loader over an already opened stream
func NewReaderLoader(r io.Reader) (Loader, error) {
	if r == nil {
		return nil, fmt.Errorf("reader is nil")
	}
	return &readerLoader{r: r}, nil
}

func (l *readerLoader) Load(ctx context.Context) (*domain.LoadResult, error) {
	return readReports(ctx, l.r)
}

// RowResult is the outcome of parsing one data row
type RowResult struct {
	Report domain.BugReport
	Err    *domain.RowError
}

// ParseRow extracts the creation date from a data row. ok is false for rows
// with fewer than two fields, which are dropped without a diagnostic.
func ParseRow(line int, text string) (result RowResult, ok bool) {
	fields := csvline.Split(text)
	if len(fields) <= creationDateField {
		return RowResult{}, false
	}

	value := strings.TrimSpace(fields[creationDateField])
	report, err := domain.NewBugReport(value)
	if err != nil {
		return RowResult{Err: &domain.RowError{Line: line, Value: value, Err: err}}, true
	}
	return RowResult{Report: report}, true
}

func readReports(ctx context.Context, r io.Reader) (*domain.LoadResult, error) {
	logger := zerolog.Ctx(ctx)
	result := &domain.LoadResult{Reports: make([]domain.BugReport, 0)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		if line == 1 {
			continue
		}

		row, ok := ParseRow(line, scanner.Text())
		if !ok {
			continue
		}
		if row.Err != nil {
			logger.Warn().Int("line", line).Str("date", row.Err.Value).Msg("failed to parse creation date")
			result.Errors = append(result.Errors, *row.Err)
			continue
		}
		result.Reports = append(result.Reports, row.Report)
	}

	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("%w: read after line %d: %w", ErrSourceUnavailable, line, err)
	}

	logger.Debug().
		Int("reports", len(result.Reports)).
		Int("skipped", len(result.Errors)).
		Msg("bug reports loaded")
	return result, nil
}
