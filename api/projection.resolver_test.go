package api

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"riskprojection/internal/calculator"
	"riskprojection/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func flatRates(rate int64) []domain.RiskBandRate {
	out := []domain.RiskBandRate{}
	for _, level := range domain.AllProjectionLevels {
		out = append(out, domain.RiskBandRate{
			ProjectionLevel: level,
			InterestRate:    decimal.NewFromInt(rate),
		})
	}
	return out
}

func Test_projection(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	riskLevelID := uuid.New()

	t.Run("happy path", func(t *testing.T) {
		h := newTestHandler(t)
		h.projectionService.EXPECT().
			GetChartData(gomock.Any(), riskLevelID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, id uuid.UUID, params domain.AccountParameters, target decimal.Decimal) (*domain.ChartData, error) {
				require.True(t, params.InitialContribution.Equal(decimal.NewFromInt(1000)))
				require.True(t, params.MonthlyContribution.IsZero())
				require.Equal(t, 4, params.Horizon)
				require.True(t, target.Equal(decimal.NewFromInt(1500)))
				return calculator.NewChartData(start, params, target, flatRates(10))
			})

		w := doRequest(t, h.handler, "POST", "/projection", map[string]interface{}{
			"riskLevelID":         riskLevelID.String(),
			"initialContribution": 1000,
			"monthlyContribution": 0,
			"horizon":             4,
			"targetAmount":        "1500",
		}, nil)
		require.Equal(t, 200, w.Code)

		response := projectionResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

		require.True(t, response.HasData)
		require.Equal(t, "YEARLY", response.Granularity)
		require.Equal(t, start.UnixMilli(), response.StartDate)
		require.Equal(t, start.AddDate(5, 0, 0).UnixMilli(), response.EndDate)
		require.Equal(t, start.AddDate(4, 0, 0).UnixMilli(), response.TargetDate)
		require.Equal(t, 1500.0, response.TargetAmount)
		require.Equal(t, 1610.0, response.YAxisMax)

		require.Len(t, response.Series.Good, 6)
		require.Equal(t, chartPoint{float64(start.UnixMilli()), 1000}, response.Series.Good[0])
		require.Equal(t, chartPoint{float64(start.AddDate(1, 0, 0).UnixMilli()), 1100}, response.Series.Good[1])
		require.Equal(t, response.Series.Good, response.Series.VeryPoor)
		require.Len(t, response.Series.Contributions, 6)
		require.Equal(t, 1000.0, response.Series.Contributions[5][1])
	})

	t.Run("no rates hides the chart", func(t *testing.T) {
		h := newTestHandler(t)
		h.projectionService.EXPECT().
			GetChartData(gomock.Any(), riskLevelID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, id uuid.UUID, params domain.AccountParameters, target decimal.Decimal) (*domain.ChartData, error) {
				return calculator.NewChartData(start, params, target, nil)
			})

		w := doRequest(t, h.handler, "POST", "/projection", map[string]interface{}{
			"riskLevelID":         riskLevelID.String(),
			"initialContribution": 1000,
			"horizon":             2,
		}, nil)
		require.Equal(t, 200, w.Code)

		response := projectionResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.False(t, response.HasData)
		require.Equal(t, "QUARTERLY", response.Granularity)
		require.Empty(t, response.Series.Good)
		require.Empty(t, response.Series.Contributions)
	})

	t.Run("invalid horizon", func(t *testing.T) {
		h := newTestHandler(t)
		w := doRequest(t, h.handler, "POST", "/projection", map[string]interface{}{
			"riskLevelID": riskLevelID.String(),
			"horizon":     0,
		}, nil)
		require.Equal(t, 400, w.Code)
		require.Contains(t, decodeError(t, w), "horizon must be > 0")
	})

	t.Run("horizon too large", func(t *testing.T) {
		h := newTestHandler(t)
		w := doRequest(t, h.handler, "POST", "/projection", map[string]interface{}{
			"riskLevelID": riskLevelID.String(),
			"horizon":     maxHorizon + 1,
		}, nil)
		require.Equal(t, 400, w.Code)
	})

	t.Run("negative contribution", func(t *testing.T) {
		h := newTestHandler(t)
		w := doRequest(t, h.handler, "POST", "/projection", map[string]interface{}{
			"riskLevelID":         riskLevelID.String(),
			"initialContribution": -5,
			"horizon":             10,
		}, nil)
		require.Equal(t, 400, w.Code)
		require.Contains(t, decodeError(t, w), "initial contribution")
	})

	t.Run("unknown risk level", func(t *testing.T) {
		h := newTestHandler(t)
		h.projectionService.EXPECT().
			GetChartData(gomock.Any(), riskLevelID, gomock.Any(), gomock.Any()).
			Return(nil, domain.NewError(domain.ErrNotFound, "risk level %s not found", riskLevelID.String()))

		w := doRequest(t, h.handler, "POST", "/projection", map[string]interface{}{
			"riskLevelID": riskLevelID.String(),
			"horizon":     10,
		}, nil)
		require.Equal(t, 404, w.Code)
	})

	t.Run("missing rate", func(t *testing.T) {
		h := newTestHandler(t)
		h.projectionService.EXPECT().
			GetChartData(gomock.Any(), riskLevelID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, id uuid.UUID, params domain.AccountParameters, target decimal.Decimal) (*domain.ChartData, error) {
				return calculator.NewChartData(start, params, target, flatRates(5)[:3])
			})

		w := doRequest(t, h.handler, "POST", "/projection", map[string]interface{}{
			"riskLevelID": riskLevelID.String(),
			"horizon":     10,
		}, nil)
		require.Equal(t, 500, w.Code)
		require.Contains(t, decodeError(t, w), "missing interest rate")
	})
}
