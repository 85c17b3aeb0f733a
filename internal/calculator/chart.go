package calculator

import (
	"time"

	"riskprojection/internal/domain"
	"riskprojection/internal/util"

	"github.com/shopspring/decimal"
)

// NewChartData runs the projection and adds what the chart needs
// around it: the target marker, the lead-out window after the target
// date and a y axis tall enough to show both the target and the best
// case
func NewChartData(start time.Time, params domain.AccountParameters, targetAmount decimal.Decimal, rates []domain.RiskBandRate) (*domain.ChartData, error) {
	series, err := ComputeAllSeries(start, params, rates)
	if err != nil {
		return nil, err
	}

	out := &domain.ChartData{
		HasData:      !series.IsEmpty(),
		StartDate:    start,
		EndDate:      util.AddMonths(start, 12*(params.Horizon+1)),
		TargetDate:   util.AddMonths(start, 12*params.Horizon),
		TargetAmount: targetAmount,
		YAxisMax:     targetAmount,
		Series:       *series,
	}

	if len(series.Good) > 0 {
		lastGood := series.Good[len(series.Good)-1].Value
		out.YAxisMax = decimal.Max(targetAmount, lastGood)
	}

	return out, nil
}
