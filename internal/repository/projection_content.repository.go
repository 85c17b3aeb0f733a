package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"riskprojection/internal/db/models/postgres/public/model"
	"riskprojection/internal/db/models/postgres/public/table"
	"riskprojection/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// ProjectionContentRepository stores the description shown next to the
// projection chart. there is at most one row per risk level
type ProjectionContentRepository interface {
	Add(tx *sql.Tx, m model.ProjectionContent) (*model.ProjectionContent, error)
	Get(tx *sql.Tx, projectionContentID uuid.UUID) (*model.ProjectionContent, error)
	GetByRiskLevel(tx *sql.Tx, riskLevelID uuid.UUID) (*model.ProjectionContent, error)
	Update(tx *sql.Tx, m model.ProjectionContent) (*model.ProjectionContent, error)
	Delete(tx *sql.Tx, projectionContentID uuid.UUID) error
	List() ([]domain.ProjectionContentDetails, error)
}

type projectionContentRepositoryHandler struct {
	Db *sql.DB
}

func NewProjectionContentRepository(db *sql.DB) ProjectionContentRepository {
	return projectionContentRepositoryHandler{Db: db}
}

func (h projectionContentRepositoryHandler) Add(tx *sql.Tx, m model.ProjectionContent) (*model.ProjectionContent, error) {
	now := time.Now().UTC()
	m.CreatedAt = now
	m.ModifiedAt = now

	t := table.ProjectionContent
	query := t.INSERT(t.MutableColumns).
		MODEL(m).
		RETURNING(t.AllColumns)

	out := model.ProjectionContent{}
	err := query.Query(pickDb(h.Db, tx), &out)
	if isUniqueViolation(err) {
		return nil, domain.NewError(domain.ErrDuplicate, "Value already exist for this risk level")
	} else if err != nil {
		return nil, fmt.Errorf("failed to insert projection content: %w", err)
	}

	return &out, nil
}

func (h projectionContentRepositoryHandler) Get(tx *sql.Tx, projectionContentID uuid.UUID) (*model.ProjectionContent, error) {
	t := table.ProjectionContent
	query := t.SELECT(t.AllColumns).
		WHERE(t.ProjectionContentID.EQ(postgres.UUID(projectionContentID)))

	out := model.ProjectionContent{}
	err := query.Query(pickDb(h.Db, tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get projection content %s: %w", projectionContentID.String(), err)
	}

	return &out, nil
}

func (h projectionContentRepositoryHandler) GetByRiskLevel(tx *sql.Tx, riskLevelID uuid.UUID) (*model.ProjectionContent, error) {
	t := table.ProjectionContent
	query := t.SELECT(t.AllColumns).
		WHERE(t.RiskLevelID.EQ(postgres.UUID(riskLevelID))).
		LIMIT(1)

	out := model.ProjectionContent{}
	err := query.Query(pickDb(h.Db, tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get projection content for risk level %s: %w", riskLevelID.String(), err)
	}

	return &out, nil
}

func (h projectionContentRepositoryHandler) Update(tx *sql.Tx, m model.ProjectionContent) (*model.ProjectionContent, error) {
	m.ModifiedAt = time.Now().UTC()

	t := table.ProjectionContent
	query := t.UPDATE(
		t.RiskLevelID,
		t.Description,
		t.ModifiedAt,
	).
		MODEL(m).
		WHERE(t.ProjectionContentID.EQ(postgres.UUID(m.ProjectionContentID))).
		RETURNING(t.AllColumns)

	out := model.ProjectionContent{}
	err := query.Query(pickDb(h.Db, tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if isUniqueViolation(err) {
		return nil, domain.NewError(domain.ErrDuplicate, "Value already exist for this risk level")
	} else if err != nil {
		return nil, fmt.Errorf("failed to update projection content %s: %w", m.ProjectionContentID.String(), err)
	}

	return &out, nil
}

func (h projectionContentRepositoryHandler) Delete(tx *sql.Tx, projectionContentID uuid.UUID) error {
	t := table.ProjectionContent
	query := t.DELETE().
		WHERE(t.ProjectionContentID.EQ(postgres.UUID(projectionContentID)))

	_, err := query.Exec(pickDb(h.Db, tx))
	if err != nil {
		return fmt.Errorf("failed to delete projection content %s: %w", projectionContentID.String(), err)
	}

	return nil
}

func (h projectionContentRepositoryHandler) List() ([]domain.ProjectionContentDetails, error) {
	query := postgres.SELECT(
		table.ProjectionContent.AllColumns,
		table.RiskLevel.AllColumns,
	).FROM(
		table.ProjectionContent.INNER_JOIN(
			table.RiskLevel,
			table.RiskLevel.RiskLevelID.EQ(table.ProjectionContent.RiskLevelID),
		),
	).ORDER_BY(
		table.RiskLevel.Name.ASC(),
	)

	result := []struct {
		model.ProjectionContent
		RiskLevel model.RiskLevel
	}{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return []domain.ProjectionContentDetails{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list projection content: %w", err)
	}

	out := []domain.ProjectionContentDetails{}
	for _, r := range result {
		out = append(out, domain.ProjectionContentDetails{
			ProjectionContentID: r.ProjectionContentID,
			RiskLevelID:         r.RiskLevelID,
			RiskLevelName:       r.RiskLevel.Name,
			Description:         r.Description,
			CreatedAt:           r.CreatedAt,
			ModifiedAt:          r.ModifiedAt,
		})
	}

	return out, nil
}
