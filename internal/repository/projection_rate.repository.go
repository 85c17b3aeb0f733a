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

// ProjectionRateRepository stores the interest rate assumed for each
// projection level of a risk level
type ProjectionRateRepository interface {
	Add(tx *sql.Tx, m model.ProjectionRate) (*model.ProjectionRate, error)
	Get(tx *sql.Tx, projectionRateID uuid.UUID) (*model.ProjectionRate, error)
	GetByRiskLevelAndProjectionLevel(tx *sql.Tx, riskLevelID uuid.UUID, projectionLevel string) (*model.ProjectionRate, error)
	ListByRiskLevel(tx *sql.Tx, riskLevelID uuid.UUID) ([]model.ProjectionRate, error)
	Update(tx *sql.Tx, m model.ProjectionRate) (*model.ProjectionRate, error)
	Delete(tx *sql.Tx, projectionRateID uuid.UUID) error
}

type projectionRateRepositoryHandler struct {
	Db *sql.DB
}

func NewProjectionRateRepository(db *sql.DB) ProjectionRateRepository {
	return projectionRateRepositoryHandler{Db: db}
}

func (h projectionRateRepositoryHandler) Add(tx *sql.Tx, m model.ProjectionRate) (*model.ProjectionRate, error) {
	now := time.Now().UTC()
	m.CreatedAt = now
	m.ModifiedAt = now

	t := table.ProjectionRate
	query := t.INSERT(t.MutableColumns).
		MODEL(m).
		RETURNING(t.AllColumns)

	out := model.ProjectionRate{}
	err := query.Query(pickDb(h.Db, tx), &out)
	if isUniqueViolation(err) {
		return nil, domain.NewError(domain.ErrDuplicate, "%s rate already exists for this risk level", m.ProjectionLevel)
	} else if err != nil {
		return nil, fmt.Errorf("failed to insert projection rate: %w", err)
	}

	return &out, nil
}

func (h projectionRateRepositoryHandler) Get(tx *sql.Tx, projectionRateID uuid.UUID) (*model.ProjectionRate, error) {
	t := table.ProjectionRate
	query := t.SELECT(t.AllColumns).
		WHERE(t.ProjectionRateID.EQ(postgres.UUID(projectionRateID)))

	out := model.ProjectionRate{}
	err := query.Query(pickDb(h.Db, tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get projection rate %s: %w", projectionRateID.String(), err)
	}

	return &out, nil
}

func (h projectionRateRepositoryHandler) GetByRiskLevelAndProjectionLevel(tx *sql.Tx, riskLevelID uuid.UUID, projectionLevel string) (*model.ProjectionRate, error) {
	t := table.ProjectionRate
	query := t.SELECT(t.AllColumns).
		WHERE(
			postgres.AND(
				t.RiskLevelID.EQ(postgres.UUID(riskLevelID)),
				t.ProjectionLevel.EQ(postgres.String(projectionLevel)),
			),
		).
		LIMIT(1)

	out := model.ProjectionRate{}
	err := query.Query(pickDb(h.Db, tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get %s projection rate for risk level %s: %w", projectionLevel, riskLevelID.String(), err)
	}

	return &out, nil
}

func (h projectionRateRepositoryHandler) ListByRiskLevel(tx *sql.Tx, riskLevelID uuid.UUID) ([]model.ProjectionRate, error) {
	t := table.ProjectionRate
	query := t.SELECT(t.AllColumns).
		WHERE(t.RiskLevelID.EQ(postgres.UUID(riskLevelID))).
		ORDER_BY(t.CreatedAt.ASC())

	out := []model.ProjectionRate{}
	err := query.Query(pickDb(h.Db, tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return []model.ProjectionRate{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list projection rates for risk level %s: %w", riskLevelID.String(), err)
	}

	return out, nil
}

func (h projectionRateRepositoryHandler) Update(tx *sql.Tx, m model.ProjectionRate) (*model.ProjectionRate, error) {
	m.ModifiedAt = time.Now().UTC()

	t := table.ProjectionRate
	query := t.UPDATE(
		t.RiskLevelID,
		t.ProjectionLevel,
		t.InterestRate,
		t.ModifiedAt,
	).
		MODEL(m).
		WHERE(t.ProjectionRateID.EQ(postgres.UUID(m.ProjectionRateID))).
		RETURNING(t.AllColumns)

	out := model.ProjectionRate{}
	err := query.Query(pickDb(h.Db, tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if isUniqueViolation(err) {
		return nil, domain.NewError(domain.ErrDuplicate, "%s rate already exists for this risk level", m.ProjectionLevel)
	} else if err != nil {
		return nil, fmt.Errorf("failed to update projection rate %s: %w", m.ProjectionRateID.String(), err)
	}

	return &out, nil
}

func (h projectionRateRepositoryHandler) Delete(tx *sql.Tx, projectionRateID uuid.UUID) error {
	t := table.ProjectionRate
	query := t.DELETE().
		WHERE(t.ProjectionRateID.EQ(postgres.UUID(projectionRateID)))

	_, err := query.Exec(pickDb(h.Db, tx))
	if err != nil {
		return fmt.Errorf("failed to delete projection rate %s: %w", projectionRateID.String(), err)
	}

	return nil
}
