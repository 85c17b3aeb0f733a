package calculator

import (
	"errors"
	"fmt"
	"time"

	"riskprojection/internal/domain"
	"riskprojection/internal/util"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingRate       = errors.New("missing interest rate")
	ErrInvalidParameters = errors.New("invalid account parameters")
)

// horizons shorter than this are stepped quarterly so short
// projections still draw a curve instead of two or three points
const QuarterlyHorizonCutoff = 4

type Granularity string

const (
	Granularity_Yearly    Granularity = "YEARLY"
	Granularity_Quarterly Granularity = "QUARTERLY"
)

func GranularityForHorizon(horizon int) Granularity {
	if horizon < QuarterlyHorizonCutoff {
		return Granularity_Quarterly
	}
	return Granularity_Yearly
}

var hundred = decimal.NewFromInt(100)

// schedule describes how a horizon is split into steps. both modes
// run one extra year past the horizon so the chart has a lead-out
// after the target date
type schedule struct {
	numPoints      int
	monthsPerStep  int
	periodsPerYear int64
}

func scheduleForHorizon(horizon int) schedule {
	if GranularityForHorizon(horizon) == Granularity_Quarterly {
		return schedule{
			numPoints:      (horizon+1)*4 + 1,
			monthsPerStep:  3,
			periodsPerYear: 4,
		}
	}
	return schedule{
		numPoints:      horizon + 2,
		monthsPerStep:  12,
		periodsPerYear: 1,
	}
}

func (s schedule) timestampAt(start time.Time, step int) time.Time {
	return util.AddMonths(start, step*s.monthsPerStep)
}

// NumPoints returns how many points every series for the horizon has
func NumPoints(horizon int) int {
	return scheduleForHorizon(horizon).numPoints
}

func ValidateAccountParameters(params domain.AccountParameters) error {
	if params.InitialContribution.IsNegative() {
		return fmt.Errorf("%w: initial contribution must be >= 0, got %s", ErrInvalidParameters, params.InitialContribution)
	}
	if params.MonthlyContribution.IsNegative() {
		return fmt.Errorf("%w: monthly contribution must be >= 0, got %s", ErrInvalidParameters, params.MonthlyContribution)
	}
	if params.Horizon <= 0 {
		return fmt.Errorf("%w: horizon must be > 0, got %d", ErrInvalidParameters, params.Horizon)
	}
	return nil
}

// ComputeAllSeries projects the account under every projection level
// plus the contributions-only baseline. an empty rate set is not an
// error, it returns an empty set so the caller can hide the chart
func ComputeAllSeries(start time.Time, params domain.AccountParameters, rates []domain.RiskBandRate) (*domain.ProjectionSeriesSet, error) {
	if len(rates) == 0 {
		return domain.NewEmptyProjectionSeriesSet(), nil
	}
	if err := ValidateAccountParameters(params); err != nil {
		return nil, err
	}

	rateTable := NewRateTable(rates)
	out := &domain.ProjectionSeriesSet{}
	for _, level := range domain.AllProjectionLevels {
		points, err := computeBandSeries(level, start, params, rateTable)
		if err != nil {
			return nil, err
		}
		out.SetBand(level, points)
	}
	out.ContributionsOnly = projectSeries(start, params, decimal.Zero)

	return out, nil
}

// ComputeBandSeries projects the account for a single projection level.
// if the level appears more than once in rates, the last entry is used
func ComputeBandSeries(level domain.ProjectionLevel, start time.Time, params domain.AccountParameters, rates []domain.RiskBandRate) ([]domain.SeriesPoint, error) {
	if err := ValidateAccountParameters(params); err != nil {
		return nil, err
	}
	return computeBandSeries(level, start, params, NewRateTable(rates))
}

// ComputeContributionsSeries is the "no growth" baseline: the same
// cadence as the band series but only deposits are added
func ComputeContributionsSeries(start time.Time, params domain.AccountParameters) ([]domain.SeriesPoint, error) {
	if err := ValidateAccountParameters(params); err != nil {
		return nil, err
	}
	return projectSeries(start, params, decimal.Zero), nil
}

func computeBandSeries(level domain.ProjectionLevel, start time.Time, params domain.AccountParameters, rateTable RateTable) ([]domain.SeriesPoint, error) {
	rate, err := rateTable.Rate(level)
	if err != nil {
		return nil, err
	}
	return projectSeries(start, params, rate), nil
}

func projectSeries(start time.Time, params domain.AccountParameters, annualRate decimal.Decimal) []domain.SeriesPoint {
	s := scheduleForHorizon(params.Horizon)
	periodRate := annualRate.Div(decimal.NewFromInt(s.periodsPerYear))
	contribution := params.MonthlyContribution.Mul(decimal.NewFromInt(int64(s.monthsPerStep)))

	points := make([]domain.SeriesPoint, 0, s.numPoints)
	amount := params.InitialContribution
	for i := 0; i < s.numPoints; i++ {
		points = append(points, domain.SeriesPoint{
			Timestamp: s.timestampAt(start, i),
			Value:     amount,
		})
		amount = nextAmount(amount, contribution, periodRate)
	}

	return points
}

// nextAmount deposits one period of contributions, then applies one
// period of interest. rounding happens every step, so rounding error
// carries forward into later periods
func nextAmount(amount, contribution, periodRatePercent decimal.Decimal) decimal.Decimal {
	deposited := amount.Add(contribution)
	interest := deposited.Mul(periodRatePercent).Div(hundred)
	return deposited.Add(interest).Round(0)
}
