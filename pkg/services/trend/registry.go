package trend

import (
	"errors"
	"fmt"
	"sort"

	"github.com/de-tools/bug-trends/pkg/models/domain"
)

var ErrInvalidRange = errors.New("invalid bucket range")

// RangeSpec is the raw, unparsed range a caller asks for. Start is a yyyy-MM
// month for monthly trends and a yyyy-MM-dd date for weekly ones.
type RangeSpec struct {
	Start string
	Count int
}

// Bucketer turns loaded reports into a cumulative trend
type Bucketer interface {
	Bucket(reports []domain.BugReport) (*domain.Trend, error)
}

// BucketerFactory builds a Bucketer from a raw range
type BucketerFactory func(spec RangeSpec) (Bucketer, error)

// Registry manages bucketer factories keyed by granularity
type Registry interface {
	// Register adds a new granularity
	Register(g domain.Granularity, factory BucketerFactory) error
	// Create instantiates a bucketer for the granularity over spec
	Create(g domain.Granularity, spec RangeSpec) (Bucketer, error)
	// ListGranularities returns the registered granularities in name order
	ListGranularities() []domain.Granularity
}

type registry struct {
	factories map[domain.Granularity]BucketerFactory
}

// NewRegistry creates an empty registry
func NewRegistry() Registry {
	return &registry{
		factories: make(map[domain.Granularity]BucketerFactory),
	}
}

// DefaultRegistry returns a registry with the monthly and weekly bucketers
func DefaultRegistry() Registry {
	r := NewRegistry()
	_ = r.Register(domain.GranularityMonthly, MonthlyFactory)
	_ = r.Register(domain.GranularityWeekly, WeeklyFactory)
	return r
}

func (r *registry) Register(g domain.Granularity, factory BucketerFactory) error {
	if g == "" {
		return fmt.Errorf("granularity name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}
	if _, exists := r.factories[g]; exists {
		return fmt.Errorf("granularity %q is already registered", g)
	}

	r.factories[g] = factory
	return nil
}

func (r *registry) Create(g domain.Granularity, spec RangeSpec) (Bucketer, error) {
	factory, exists := r.factories[g]
	if !exists {
		return nil, fmt.Errorf("granularity %q is not registered", g)
	}
	return factory(spec)
}

func (r *registry) ListGranularities() []domain.Granularity {
	out := make([]domain.Granularity, 0, len(r.factories))
	for g := range r.factories {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

type monthlyBucketer struct {
	r domain.MonthRange
}

func MonthlyFactory(spec RangeSpec) (Bucketer, error) {
	start, err := domain.ParseYearMonth(spec.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRange, err)
	}
	if spec.Count < 1 {
		return nil, fmt.Errorf("%w: month count must be at least 1, got %d", ErrInvalidRange, spec.Count)
	}
	return &monthlyBucketer{r: domain.MonthRange{Start: start, Count: spec.Count}}, nil
}

func (b *monthlyBucketer) Bucket(reports []domain.BugReport) (*domain.Trend, error) {
	return Monthly(reports, b.r)
}

type weeklyBucketer struct {
	r domain.WeekRange
}

func WeeklyFactory(spec RangeSpec) (Bucketer, error) {
	start, err := domain.ParseDate(spec.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date %q: %w", ErrInvalidRange, spec.Start, err)
	}
	if spec.Count < 1 {
		return nil, fmt.Errorf("%w: week count must be at least 1, got %d", ErrInvalidRange, spec.Count)
	}
	return &weeklyBucketer{r: domain.WeekRange{Start: start, Count: spec.Count}}, nil
}

func (b *weeklyBucketer) Bucket(reports []domain.BugReport) (*domain.Trend, error) {
	return Weekly(reports, b.r)
}
