package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectionLevel is one of the four growth scenarios a risk
// level is projected under
type ProjectionLevel string

const (
	ProjectionLevel_VeryPoor ProjectionLevel = "very poor"
	ProjectionLevel_Poor     ProjectionLevel = "poor"
	ProjectionLevel_Expected ProjectionLevel = "expected"
	ProjectionLevel_Good     ProjectionLevel = "good"
)

// ordered worst to best, which is also the order the chart stacks them
var AllProjectionLevels = []ProjectionLevel{
	ProjectionLevel_VeryPoor,
	ProjectionLevel_Poor,
	ProjectionLevel_Expected,
	ProjectionLevel_Good,
}

func (p ProjectionLevel) String() string {
	return string(p)
}

func NewProjectionLevel(s string) (ProjectionLevel, error) {
	for _, p := range AllProjectionLevels {
		if string(p) == s {
			return p, nil
		}
	}
	return "", NewError(ErrValidation, "unknown projection level %q, must be one of %v", s, AllProjectionLevels)
}

// RiskBandRate is the yearly interest rate (in percent) assumed for
// a single projection level
type RiskBandRate struct {
	ProjectionLevel ProjectionLevel
	InterestRate    decimal.Decimal
}

type AccountParameters struct {
	InitialContribution decimal.Decimal
	MonthlyContribution decimal.Decimal
	// years until the target date
	Horizon int
}

type SeriesPoint struct {
	Timestamp time.Time
	Value     decimal.Decimal
}

type ProjectionSeriesSet struct {
	VeryPoor          []SeriesPoint
	Poor              []SeriesPoint
	Expected          []SeriesPoint
	Good              []SeriesPoint
	ContributionsOnly []SeriesPoint
}

func NewEmptyProjectionSeriesSet() *ProjectionSeriesSet {
	return &ProjectionSeriesSet{
		VeryPoor:          []SeriesPoint{},
		Poor:              []SeriesPoint{},
		Expected:          []SeriesPoint{},
		Good:              []SeriesPoint{},
		ContributionsOnly: []SeriesPoint{},
	}
}

func (s ProjectionSeriesSet) IsEmpty() bool {
	return len(s.VeryPoor) == 0 &&
		len(s.Poor) == 0 &&
		len(s.Expected) == 0 &&
		len(s.Good) == 0 &&
		len(s.ContributionsOnly) == 0
}

// Band returns the series computed for the given projection level
func (s ProjectionSeriesSet) Band(level ProjectionLevel) []SeriesPoint {
	switch level {
	case ProjectionLevel_VeryPoor:
		return s.VeryPoor
	case ProjectionLevel_Poor:
		return s.Poor
	case ProjectionLevel_Expected:
		return s.Expected
	case ProjectionLevel_Good:
		return s.Good
	}
	return nil
}

func (s *ProjectionSeriesSet) SetBand(level ProjectionLevel, points []SeriesPoint) {
	switch level {
	case ProjectionLevel_VeryPoor:
		s.VeryPoor = points
	case ProjectionLevel_Poor:
		s.Poor = points
	case ProjectionLevel_Expected:
		s.Expected = points
	case ProjectionLevel_Good:
		s.Good = points
	}
}

// ChartData is everything the client needs to draw the projection
// chart for one account
type ChartData struct {
	HasData      bool
	StartDate    time.Time
	EndDate      time.Time
	TargetDate   time.Time
	TargetAmount decimal.Decimal
	// the larger of the target and the last "good" value, so the
	// target line is always visible
	YAxisMax decimal.Decimal
	Series   ProjectionSeriesSet
}
