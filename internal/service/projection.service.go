package service

import (
	"context"
	"time"

	"riskprojection/internal/calculator"
	"riskprojection/internal/domain"
	"riskprojection/internal/logger"
	"riskprojection/internal/repository"
	"riskprojection/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProjectionService interface {
	GetChartData(ctx context.Context, riskLevelID uuid.UUID, params domain.AccountParameters, targetAmount decimal.Decimal) (*domain.ChartData, error)
}

type projectionServiceHandler struct {
	RiskLevelRepository repository.RiskLevelRepository
	RiskDataService     RiskDataService
	Today               func() time.Time
}

func NewProjectionService(
	riskLevelRepository repository.RiskLevelRepository,
	riskDataService RiskDataService,
) ProjectionService {
	return projectionServiceHandler{
		RiskLevelRepository: riskLevelRepository,
		RiskDataService:     riskDataService,
		Today:               util.Today,
	}
}

func (h projectionServiceHandler) GetChartData(ctx context.Context, riskLevelID uuid.UUID, params domain.AccountParameters, targetAmount decimal.Decimal) (*domain.ChartData, error) {
	log := logger.FromContext(ctx)

	riskLevel, err := h.RiskLevelRepository.Get(nil, riskLevelID)
	if err != nil {
		return nil, err
	}
	if riskLevel == nil {
		return nil, domain.NewError(domain.ErrNotFound, "risk level %s not found", riskLevelID.String())
	}

	rates, err := h.RiskDataService.GetRates(ctx, riskLevelID)
	if err != nil {
		return nil, err
	}
	if duplicates := calculator.NewRateTable(rates).Duplicates(); len(duplicates) > 0 {
		log.Warnw("duplicate projection rates, using the last one",
			"riskLevel", riskLevel.Name,
			"projectionLevels", duplicates,
		)
	}

	chart, err := calculator.NewChartData(h.Today(), params, targetAmount, rates)
	if err != nil {
		return nil, err
	}

	log.Infow("computed projection",
		"riskLevel", riskLevel.Name,
		"horizon", params.Horizon,
		"granularity", calculator.GranularityForHorizon(params.Horizon),
		"hasData", chart.HasData,
	)

	return chart, nil
}
