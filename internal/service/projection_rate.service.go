package service

import (
	"database/sql"
	"fmt"

	"riskprojection/internal/db/models/postgres/public/model"
	"riskprojection/internal/domain"
	"riskprojection/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// anything at or below this wipes out the whole balance every period
var minInterestRate = decimal.NewFromInt(-100)

type ProjectionRateService interface {
	Create(tx *sql.Tx, in model.ProjectionRate) (*model.ProjectionRate, error)
	ListByRiskLevel(riskLevelID uuid.UUID) ([]model.ProjectionRate, error)
	Update(tx *sql.Tx, in model.ProjectionRate) (*model.ProjectionRate, error)
	Delete(tx *sql.Tx, projectionRateID uuid.UUID) error
}

type projectionRateServiceHandler struct {
	ProjectionRateRepository repository.ProjectionRateRepository
	RiskLevelRepository      repository.RiskLevelRepository
}

func NewProjectionRateService(
	projectionRateRepository repository.ProjectionRateRepository,
	riskLevelRepository repository.RiskLevelRepository,
) ProjectionRateService {
	return projectionRateServiceHandler{
		ProjectionRateRepository: projectionRateRepository,
		RiskLevelRepository:      riskLevelRepository,
	}
}

func (h projectionRateServiceHandler) Create(tx *sql.Tx, in model.ProjectionRate) (*model.ProjectionRate, error) {
	err := h.validate(tx, in)
	if err != nil {
		return nil, err
	}

	return h.ProjectionRateRepository.Add(tx, model.ProjectionRate{
		RiskLevelID:     in.RiskLevelID,
		ProjectionLevel: in.ProjectionLevel,
		InterestRate:    in.InterestRate,
	})
}

func (h projectionRateServiceHandler) ListByRiskLevel(riskLevelID uuid.UUID) ([]model.ProjectionRate, error) {
	return h.ProjectionRateRepository.ListByRiskLevel(nil, riskLevelID)
}

func (h projectionRateServiceHandler) Update(tx *sql.Tx, in model.ProjectionRate) (*model.ProjectionRate, error) {
	existing, err := h.ProjectionRateRepository.Get(tx, in.ProjectionRateID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewError(domain.ErrNotFound, "projection rate %s not found", in.ProjectionRateID.String())
	}

	if existing.RiskLevelID != in.RiskLevelID || existing.ProjectionLevel != in.ProjectionLevel {
		err = h.validate(tx, in)
	} else {
		err = validateInterestRate(in.InterestRate)
	}
	if err != nil {
		return nil, err
	}

	existing.RiskLevelID = in.RiskLevelID
	existing.ProjectionLevel = in.ProjectionLevel
	existing.InterestRate = in.InterestRate

	out, err := h.ProjectionRateRepository.Update(tx, *existing)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, domain.NewError(domain.ErrNotFound, "projection rate %s not found", in.ProjectionRateID.String())
	}

	return out, nil
}

func (h projectionRateServiceHandler) Delete(tx *sql.Tx, projectionRateID uuid.UUID) error {
	existing, err := h.ProjectionRateRepository.Get(tx, projectionRateID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.NewError(domain.ErrNotFound, "projection rate %s not found", projectionRateID.String())
	}

	return h.ProjectionRateRepository.Delete(tx, projectionRateID)
}

// validate checks the level name, the rate and that the risk level
// doesn't already have a rate for this level
func (h projectionRateServiceHandler) validate(tx *sql.Tx, in model.ProjectionRate) error {
	if _, err := domain.NewProjectionLevel(in.ProjectionLevel); err != nil {
		return err
	}
	if err := validateInterestRate(in.InterestRate); err != nil {
		return err
	}

	riskLevel, err := h.RiskLevelRepository.Get(tx, in.RiskLevelID)
	if err != nil {
		return fmt.Errorf("failed to validate risk level: %w", err)
	}
	if riskLevel == nil {
		return domain.NewError(domain.ErrValidation, "risk level %s does not exist", in.RiskLevelID.String())
	}

	existing, err := h.ProjectionRateRepository.GetByRiskLevelAndProjectionLevel(tx, in.RiskLevelID, in.ProjectionLevel)
	if err != nil {
		return fmt.Errorf("failed to check for existing projection rate: %w", err)
	}
	if existing != nil {
		return domain.NewError(domain.ErrDuplicate, "%s rate already exists for this risk level", in.ProjectionLevel)
	}

	return nil
}

func validateInterestRate(rate decimal.Decimal) error {
	if rate.LessThanOrEqual(minInterestRate) {
		return domain.NewError(domain.ErrValidation, "interest rate must be greater than %s, got %s", minInterestRate, rate)
	}
	return nil
}
