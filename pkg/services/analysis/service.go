package analysis

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/de-tools/bug-trends/pkg/models/domain"
	"github.com/de-tools/bug-trends/pkg/services/trend"
	"github.com/de-tools/bug-trends/pkg/store/reports"
)

type Request struct {
	Granularity domain.Granularity
	Range       trend.RangeSpec
}

// Service runs the load, bucket and accumulate pipeline
type Service struct {
	loader   reports.Loader
	registry trend.Registry
}

func NewService(loader reports.Loader, registry trend.Registry) (*Service, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is nil")
	}
	if registry == nil {
		return nil, fmt.Errorf("registry is nil")
	}
	return &Service{loader: loader, registry: registry}, nil
}

// Run never fails because of bad input data. An unreadable source is logged
// and the trend is computed over whatever was loaded, possibly nothing.
// Only an invalid request is returned as an error.
func (s *Service) Run(ctx context.Context, req Request) (*domain.Analysis, error) {
	logger := zerolog.Ctx(ctx).With().Str("granularity", string(req.Granularity)).Logger()

	bucketer, err := s.registry.Create(req.Granularity, req.Range)
	if err != nil {
		return nil, fmt.Errorf("failed to create bucketer: %w", err)
	}

	loaded, loadErr := s.loader.Load(ctx)
	if loadErr != nil {
		// TODO: decide whether an unreadable source should fail the run instead
		logger.Error().Err(loadErr).Msg("failed to read bug reports, continuing with partial data")
	}
	if loaded == nil {
		loaded = &domain.LoadResult{}
	}

	t, err := bucketer.Bucket(loaded.Reports)
	if err != nil {
		return nil, fmt.Errorf("failed to bucket reports: %w", err)
	}

	logger.Debug().
		Int("loaded", len(loaded.Reports)).
		Int("skipped", len(loaded.Errors)).
		Int("in_range", t.Total).
		Msg("trend computed")

	return &domain.Analysis{
		Trend:     t,
		Loaded:    len(loaded.Reports),
		Skipped:   len(loaded.Errors),
		SourceErr: loadErr,
	}, nil
}
