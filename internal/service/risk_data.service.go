package service

import (
	"context"

	"riskprojection/internal/domain"
	"riskprojection/internal/logger"
	"riskprojection/internal/repository"

	"github.com/google/uuid"
)

// RiskDataService is what the projection page reads for a risk level:
// the description to show and the rate for each projection level
type RiskDataService interface {
	GetContent(riskLevelID uuid.UUID) (string, error)
	GetRates(ctx context.Context, riskLevelID uuid.UUID) ([]domain.RiskBandRate, error)
}

type riskDataServiceHandler struct {
	ProjectionContentRepository repository.ProjectionContentRepository
	ProjectionRateRepository    repository.ProjectionRateRepository
}

func NewRiskDataService(
	projectionContentRepository repository.ProjectionContentRepository,
	projectionRateRepository repository.ProjectionRateRepository,
) RiskDataService {
	return riskDataServiceHandler{
		ProjectionContentRepository: projectionContentRepository,
		ProjectionRateRepository:    projectionRateRepository,
	}
}

// GetContent returns an empty description when none was written for
// the risk level
func (h riskDataServiceHandler) GetContent(riskLevelID uuid.UUID) (string, error) {
	content, err := h.ProjectionContentRepository.GetByRiskLevel(nil, riskLevelID)
	if err != nil {
		return "", err
	}
	if content == nil {
		return "", nil
	}
	return content.Description, nil
}

// GetRates skips rows whose projection level is not one of the known
// levels, logging them on the request's logger
func (h riskDataServiceHandler) GetRates(ctx context.Context, riskLevelID uuid.UUID) ([]domain.RiskBandRate, error) {
	log := logger.FromContext(ctx)

	rows, err := h.ProjectionRateRepository.ListByRiskLevel(nil, riskLevelID)
	if err != nil {
		return nil, err
	}

	out := []domain.RiskBandRate{}
	for _, row := range rows {
		level, err := domain.NewProjectionLevel(row.ProjectionLevel)
		if err != nil {
			log.Warnw("skipping projection rate",
				"projectionRateID", row.ProjectionRateID.String(),
				"error", err.Error(),
			)
			continue
		}
		out = append(out, domain.RiskBandRate{
			ProjectionLevel: level,
			InterestRate:    row.InterestRate,
		})
	}

	return out, nil
}
