package trend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/bug-trends/pkg/models/domain"
)

func TestDefaultRegistry_ListsBothGranularities(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t,
		[]domain.Granularity{domain.GranularityMonthly, domain.GranularityWeekly},
		r.ListGranularities(),
	)
}

func TestRegistry_Register_Validation(t *testing.T) {
	r := NewRegistry()

	assert.Error(t, r.Register("", MonthlyFactory))
	assert.Error(t, r.Register(domain.GranularityMonthly, nil))
	require.NoError(t, r.Register(domain.GranularityMonthly, MonthlyFactory))
	assert.Error(t, r.Register(domain.GranularityMonthly, MonthlyFactory))
}

func TestRegistry_Create_Unknown(t *testing.T) {
	_, err := DefaultRegistry().Create("daily", RangeSpec{Start: "2015-01-01", Count: 1})
	assert.Error(t, err)
}

func TestRegistry_Create_Monthly(t *testing.T) {
	b, err := DefaultRegistry().Create(domain.GranularityMonthly, RangeSpec{Start: "2015-01", Count: 3})
	require.NoError(t, err)

	tr, err := b.Bucket(bugs(t, "2015-01-10", "2015-01-20", "2015-03-05"))

	require.NoError(t, err)
	assert.Equal(t, "{{1,2}, {2,2}, {3,3}}", FormatCumulative(tr.Cumulative))
}

func TestRegistry_Create_Weekly(t *testing.T) {
	b, err := DefaultRegistry().Create(domain.GranularityWeekly, RangeSpec{Start: "2003-10-01", Count: 2})
	require.NoError(t, err)

	tr, err := b.Bucket(bugs(t, "2003-10-01", "2003-10-07", "2003-10-08"))

	require.NoError(t, err)
	assert.Equal(t, "{{1,2}, {2,3}}", FormatCumulative(tr.Cumulative))
}

func TestFactories_RejectBadSpecs(t *testing.T) {
	tests := []struct {
		name    string
		factory BucketerFactory
		spec    RangeSpec
	}{
		{name: "monthly bad month", factory: MonthlyFactory, spec: RangeSpec{Start: "2015-13", Count: 1}},
		{name: "monthly full date", factory: MonthlyFactory, spec: RangeSpec{Start: "2015-01-01", Count: 1}},
		{name: "monthly zero count", factory: MonthlyFactory, spec: RangeSpec{Start: "2015-01", Count: 0}},
		{name: "weekly bad date", factory: WeeklyFactory, spec: RangeSpec{Start: "2003-02-30", Count: 1}},
		{name: "weekly month only", factory: WeeklyFactory, spec: RangeSpec{Start: "2003-10", Count: 1}},
		{name: "weekly zero count", factory: WeeklyFactory, spec: RangeSpec{Start: "2003-10-01", Count: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.factory(tt.spec)
			assert.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}
