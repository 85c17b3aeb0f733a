package service

import (
	"database/sql"
	"fmt"

	"riskprojection/internal/db/models/postgres/public/model"
	"riskprojection/internal/domain"
	"riskprojection/internal/repository"

	"github.com/google/uuid"
)

// ProjectionContentService manages the description shown for each
// risk level. a risk level can only have one description
type ProjectionContentService interface {
	Create(tx *sql.Tx, in model.ProjectionContent) (*model.ProjectionContent, error)
	Get(projectionContentID uuid.UUID) (*model.ProjectionContent, error)
	Update(tx *sql.Tx, in model.ProjectionContent) (*model.ProjectionContent, error)
	Delete(tx *sql.Tx, projectionContentID uuid.UUID) error
	List() ([]domain.ProjectionContentDetails, error)
}

type projectionContentServiceHandler struct {
	ProjectionContentRepository repository.ProjectionContentRepository
	RiskLevelRepository         repository.RiskLevelRepository
}

func NewProjectionContentService(
	projectionContentRepository repository.ProjectionContentRepository,
	riskLevelRepository repository.RiskLevelRepository,
) ProjectionContentService {
	return projectionContentServiceHandler{
		ProjectionContentRepository: projectionContentRepository,
		RiskLevelRepository:         riskLevelRepository,
	}
}

func (h projectionContentServiceHandler) Create(tx *sql.Tx, in model.ProjectionContent) (*model.ProjectionContent, error) {
	err := h.validateUniqueBeforeSave(tx, in.RiskLevelID)
	if err != nil {
		return nil, err
	}

	out, err := h.ProjectionContentRepository.Add(tx, model.ProjectionContent{
		RiskLevelID: in.RiskLevelID,
		Description: in.Description,
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (h projectionContentServiceHandler) Get(projectionContentID uuid.UUID) (*model.ProjectionContent, error) {
	out, err := h.ProjectionContentRepository.Get(nil, projectionContentID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, domain.NewError(domain.ErrNotFound, "projection content %s not found", projectionContentID.String())
	}

	return out, nil
}

// Update only repeats the uniqueness check when the content is moved
// to a different risk level
func (h projectionContentServiceHandler) Update(tx *sql.Tx, in model.ProjectionContent) (*model.ProjectionContent, error) {
	existing, err := h.ProjectionContentRepository.Get(tx, in.ProjectionContentID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewError(domain.ErrNotFound, "projection content %s not found", in.ProjectionContentID.String())
	}

	if existing.RiskLevelID != in.RiskLevelID {
		err = h.validateUniqueBeforeSave(tx, in.RiskLevelID)
		if err != nil {
			return nil, err
		}
	}

	existing.RiskLevelID = in.RiskLevelID
	existing.Description = in.Description

	out, err := h.ProjectionContentRepository.Update(tx, *existing)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, domain.NewError(domain.ErrNotFound, "projection content %s not found", in.ProjectionContentID.String())
	}

	return out, nil
}

func (h projectionContentServiceHandler) Delete(tx *sql.Tx, projectionContentID uuid.UUID) error {
	existing, err := h.ProjectionContentRepository.Get(tx, projectionContentID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.NewError(domain.ErrNotFound, "projection content %s not found", projectionContentID.String())
	}

	return h.ProjectionContentRepository.Delete(tx, projectionContentID)
}

func (h projectionContentServiceHandler) List() ([]domain.ProjectionContentDetails, error) {
	return h.ProjectionContentRepository.List()
}

func (h projectionContentServiceHandler) validateUniqueBeforeSave(tx *sql.Tx, riskLevelID uuid.UUID) error {
	riskLevel, err := h.RiskLevelRepository.Get(tx, riskLevelID)
	if err != nil {
		return fmt.Errorf("failed to validate risk level: %w", err)
	}
	if riskLevel == nil {
		return domain.NewError(domain.ErrValidation, "risk level %s does not exist", riskLevelID.String())
	}

	existing, err := h.ProjectionContentRepository.GetByRiskLevel(tx, riskLevelID)
	if err != nil {
		return fmt.Errorf("failed to check for existing projection content: %w", err)
	}
	if existing != nil {
		return domain.NewError(domain.ErrDuplicate, "Value already exist for this risk level")
	}

	return nil
}
