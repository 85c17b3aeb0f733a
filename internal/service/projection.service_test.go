package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"riskprojection/internal/calculator"
	"riskprojection/internal/db/models/postgres/public/model"
	"riskprojection/internal/domain"
	mock_repository "riskprojection/internal/repository/mocks"
	mock_service "riskprojection/internal/service/mocks"
	"riskprojection/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func allRates() []domain.RiskBandRate {
	return []domain.RiskBandRate{
		{ProjectionLevel: domain.ProjectionLevel_VeryPoor, InterestRate: decimal.NewFromInt(-1)},
		{ProjectionLevel: domain.ProjectionLevel_Poor, InterestRate: decimal.NewFromInt(2)},
		{ProjectionLevel: domain.ProjectionLevel_Expected, InterestRate: decimal.NewFromInt(5)},
		{ProjectionLevel: domain.ProjectionLevel_Good, InterestRate: decimal.NewFromInt(10)},
	}
}

func Test_projectionServiceHandler_GetChartData(t *testing.T) {
	today := util.NewDate(2026, 10, 18)
	params := domain.AccountParameters{
		InitialContribution: decimal.NewFromInt(1000),
		MonthlyContribution: decimal.Zero,
		Horizon:             4,
	}

	newHandler := func(ctrl *gomock.Controller) (projectionServiceHandler, *mock_repository.MockRiskLevelRepository, *mock_service.MockRiskDataService) {
		riskLevelRepository := mock_repository.NewMockRiskLevelRepository(ctrl)
		riskDataService := mock_service.NewMockRiskDataService(ctrl)
		return projectionServiceHandler{
			RiskLevelRepository: riskLevelRepository,
			RiskDataService:     riskDataService,
			Today:               func() time.Time { return today },
		}, riskLevelRepository, riskDataService
	}

	t.Run("happy path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, riskLevelRepository, riskDataService := newHandler(ctrl)

		riskLevelID := uuid.New()
		riskLevelRepository.EXPECT().
			Get(gomock.Any(), riskLevelID).
			Return(&model.RiskLevel{RiskLevelID: riskLevelID, Name: "aggressive"}, nil)
		riskDataService.EXPECT().
			GetRates(gomock.Any(), riskLevelID).
			Return(allRates(), nil)

		chart, err := handler.GetChartData(context.Background(), riskLevelID, params, decimal.NewFromInt(1500))
		require.NoError(t, err)

		require.True(t, chart.HasData)
		require.Equal(t, today, chart.StartDate)
		require.Equal(t, util.NewDate(2030, 10, 18), chart.TargetDate)
		require.Len(t, chart.Series.Good, 6)
		require.Equal(t, "1610", chart.YAxisMax.String())
	})

	t.Run("no rates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, riskLevelRepository, riskDataService := newHandler(ctrl)

		riskLevelRepository.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(&model.RiskLevel{}, nil)
		riskDataService.EXPECT().
			GetRates(gomock.Any(), gomock.Any()).
			Return([]domain.RiskBandRate{}, nil)

		chart, err := handler.GetChartData(context.Background(), uuid.New(), params, decimal.NewFromInt(1500))
		require.NoError(t, err)
		require.False(t, chart.HasData)
	})

	t.Run("missing band", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, riskLevelRepository, riskDataService := newHandler(ctrl)

		riskLevelRepository.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(&model.RiskLevel{}, nil)
		riskDataService.EXPECT().
			GetRates(gomock.Any(), gomock.Any()).
			Return(allRates()[1:], nil)

		_, err := handler.GetChartData(context.Background(), uuid.New(), params, decimal.NewFromInt(1500))
		require.ErrorIs(t, err, calculator.ErrMissingRate)
	})

	t.Run("unknown risk level", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, riskLevelRepository, _ := newHandler(ctrl)

		riskLevelRepository.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(nil, nil)

		_, err := handler.GetChartData(context.Background(), uuid.New(), params, decimal.NewFromInt(1500))
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("rate lookup fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, riskLevelRepository, riskDataService := newHandler(ctrl)

		riskLevelRepository.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(&model.RiskLevel{}, nil)
		riskDataService.EXPECT().
			GetRates(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db down"))

		_, err := handler.GetChartData(context.Background(), uuid.New(), params, decimal.NewFromInt(1500))
		require.EqualError(t, err, "db down")
	})
}
