package api

import (
	"fmt"

	"riskprojection/internal/calculator"
	"riskprojection/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const maxHorizon = 100

type projectionRequest struct {
	RiskLevelID         string          `json:"riskLevelID"`
	InitialContribution decimal.Decimal `json:"initialContribution"`
	MonthlyContribution decimal.Decimal `json:"monthlyContribution"`
	Horizon             int             `json:"horizon"`
	TargetAmount        decimal.Decimal `json:"targetAmount"`
}

// chartPoint is [epoch millis, value], the pair shape the chart consumes
type chartPoint [2]float64

type projectionSeriesResponse struct {
	VeryPoor      []chartPoint `json:"vPoor"`
	Poor          []chartPoint `json:"poor"`
	Expected      []chartPoint `json:"expected"`
	Good          []chartPoint `json:"good"`
	Contributions []chartPoint `json:"contributions"`
}

type projectionResponse struct {
	HasData      bool                     `json:"hasData"`
	Granularity  string                   `json:"granularity"`
	StartDate    int64                    `json:"startDate"`
	EndDate      int64                    `json:"endDate"`
	TargetDate   int64                    `json:"targetDate"`
	TargetAmount float64                  `json:"targetAmount"`
	YAxisMax     float64                  `json:"yAxisMax"`
	Series       projectionSeriesResponse `json:"series"`
}

func seriesToResponse(points []domain.SeriesPoint) []chartPoint {
	out := make([]chartPoint, 0, len(points))
	for _, p := range points {
		out = append(out, chartPoint{
			float64(p.Timestamp.UnixMilli()),
			p.Value.InexactFloat64(),
		})
	}
	return out
}

func chartDataToResponse(chart domain.ChartData, horizon int) projectionResponse {
	return projectionResponse{
		HasData:      chart.HasData,
		Granularity:  string(calculator.GranularityForHorizon(horizon)),
		StartDate:    chart.StartDate.UnixMilli(),
		EndDate:      chart.EndDate.UnixMilli(),
		TargetDate:   chart.TargetDate.UnixMilli(),
		TargetAmount: chart.TargetAmount.InexactFloat64(),
		YAxisMax:     chart.YAxisMax.InexactFloat64(),
		Series: projectionSeriesResponse{
			VeryPoor:      seriesToResponse(chart.Series.VeryPoor),
			Poor:          seriesToResponse(chart.Series.Poor),
			Expected:      seriesToResponse(chart.Series.Expected),
			Good:          seriesToResponse(chart.Series.Good),
			Contributions: seriesToResponse(chart.Series.ContributionsOnly),
		},
	}
}

func (r projectionRequest) validate() (uuid.UUID, *domain.AccountParameters, error) {
	riskLevelID, err := uuid.Parse(r.RiskLevelID)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("invalid riskLevelID %q", r.RiskLevelID)
	}
	if r.Horizon > maxHorizon {
		return uuid.Nil, nil, fmt.Errorf("horizon must be <= %d, got %d", maxHorizon, r.Horizon)
	}
	if r.TargetAmount.IsNegative() {
		return uuid.Nil, nil, fmt.Errorf("target amount must be >= 0, got %s", r.TargetAmount)
	}

	params := domain.AccountParameters{
		InitialContribution: r.InitialContribution,
		MonthlyContribution: r.MonthlyContribution,
		Horizon:             r.Horizon,
	}
	if err := calculator.ValidateAccountParameters(params); err != nil {
		return uuid.Nil, nil, err
	}

	return riskLevelID, &params, nil
}

func (m ApiHandler) projection(c *gin.Context) {
	var requestBody projectionRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	riskLevelID, params, err := requestBody.validate()
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	chart, err := m.ProjectionService.GetChartData(c.Request.Context(), riskLevelID, *params, requestBody.TargetAmount)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, chartDataToResponse(*chart, params.Horizon))
}
