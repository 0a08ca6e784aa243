package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrMalformedDate = errors.New("malformed creation date")

// BugReport is a validated defect report. Only its creation date matters.
type BugReport struct {
	createdAt time.Time
}

// NewBugReport builds a report from a strict yyyy-MM-dd creation date.
// Impossible calendar dates such as 2015-13-01 or 2015-02-30 are rejected.
func NewBugReport(creationDate string) (BugReport, error) {
	t, err := ParseDate(creationDate)
	if err != nil {
		return BugReport{}, fmt.Errorf("%w: %q", ErrMalformedDate, creationDate)
	}
	return BugReport{createdAt: t}, nil
}

func (b BugReport) CreatedAt() time.Time {
	return b.createdAt
}

// RowError describes an input row that was dropped because its date did not parse
type RowError struct {
	Line  int
	Value string
	Err   error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// LoadResult is everything a loader extracted from its source
type LoadResult struct {
	Reports []BugReport
	Errors  []RowError
}
