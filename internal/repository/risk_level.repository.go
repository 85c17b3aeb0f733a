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

type RiskLevelRepository interface {
	Add(tx *sql.Tx, m model.RiskLevel) (*model.RiskLevel, error)
	Get(tx *sql.Tx, riskLevelID uuid.UUID) (*model.RiskLevel, error)
	List() ([]model.RiskLevel, error)
}

type riskLevelRepositoryHandler struct {
	Db *sql.DB
}

func NewRiskLevelRepository(db *sql.DB) RiskLevelRepository {
	return riskLevelRepositoryHandler{Db: db}
}

func (h riskLevelRepositoryHandler) Add(tx *sql.Tx, m model.RiskLevel) (*model.RiskLevel, error) {
	m.CreatedAt = time.Now().UTC()

	query := table.RiskLevel.
		INSERT(table.RiskLevel.MutableColumns).
		MODEL(m).
		RETURNING(table.RiskLevel.AllColumns)

	out := model.RiskLevel{}
	err := query.Query(pickDb(h.Db, tx), &out)
	if isUniqueViolation(err) {
		return nil, domain.NewError(domain.ErrDuplicate, "risk level %q already exists", m.Name)
	} else if err != nil {
		return nil, fmt.Errorf("failed to insert risk level: %w", err)
	}

	return &out, nil
}

func (h riskLevelRepositoryHandler) Get(tx *sql.Tx, riskLevelID uuid.UUID) (*model.RiskLevel, error) {
	query := table.RiskLevel.
		SELECT(table.RiskLevel.AllColumns).
		WHERE(table.RiskLevel.RiskLevelID.EQ(postgres.UUID(riskLevelID)))

	out := model.RiskLevel{}
	err := query.Query(pickDb(h.Db, tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get risk level %s: %w", riskLevelID.String(), err)
	}

	return &out, nil
}

func (h riskLevelRepositoryHandler) List() ([]model.RiskLevel, error) {
	query := table.RiskLevel.
		SELECT(table.RiskLevel.AllColumns).
		ORDER_BY(table.RiskLevel.Name.ASC())

	out := []model.RiskLevel{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return []model.RiskLevel{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list risk levels: %w", err)
	}

	return out, nil
}
