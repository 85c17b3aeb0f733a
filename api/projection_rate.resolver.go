package api

import (
	"database/sql"
	"fmt"
	"time"

	"riskprojection/internal/db/models/postgres/public/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type projectionRateRequest struct {
	RiskLevelID     string          `json:"riskLevelID"`
	ProjectionLevel string          `json:"projectionLevel"`
	InterestRate    decimal.Decimal `json:"interestRate"`
}

type projectionRateResponse struct {
	ProjectionRateID string    `json:"projectionRateID"`
	RiskLevelID      string    `json:"riskLevelID"`
	ProjectionLevel  string    `json:"projectionLevel"`
	InterestRate     float64   `json:"interestRate"`
	CreatedAt        time.Time `json:"createdAt"`
	ModifiedAt       time.Time `json:"modifiedAt"`
}

func projectionRateToResponse(m model.ProjectionRate) projectionRateResponse {
	return projectionRateResponse{
		ProjectionRateID: m.ProjectionRateID.String(),
		RiskLevelID:      m.RiskLevelID.String(),
		ProjectionLevel:  m.ProjectionLevel,
		InterestRate:     m.InterestRate.InexactFloat64(),
		CreatedAt:        m.CreatedAt,
		ModifiedAt:       m.ModifiedAt,
	}
}

func (r projectionRateRequest) toModel() (*model.ProjectionRate, error) {
	riskLevelID, err := uuid.Parse(r.RiskLevelID)
	if err != nil {
		return nil, fmt.Errorf("invalid riskLevelID %q", r.RiskLevelID)
	}
	return &model.ProjectionRate{
		RiskLevelID:     riskLevelID,
		ProjectionLevel: r.ProjectionLevel,
		InterestRate:    r.InterestRate,
	}, nil
}

func (m ApiHandler) createProjectionRate(c *gin.Context) {
	var requestBody projectionRateRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	in, err := requestBody.toModel()
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	var out *model.ProjectionRate
	err = m.runInTx(func(tx *sql.Tx) error {
		out, err = m.ProjectionRateService.Create(tx, *in)
		return err
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, projectionRateToResponse(*out))
}

func (m ApiHandler) listProjectionRates(c *gin.Context) {
	riskLevelID, err := uuid.Parse(c.Query("riskLevelID"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid riskLevelID %q", c.Query("riskLevelID")), c, 400)
		return
	}

	rates, err := m.ProjectionRateService.ListByRiskLevel(riskLevelID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := make([]projectionRateResponse, 0, len(rates))
	for _, r := range rates {
		out = append(out, projectionRateToResponse(r))
	}

	c.JSON(200, out)
}

func (m ApiHandler) updateProjectionRate(c *gin.Context) {
	projectionRateID, ok := parseIDParam(c)
	if !ok {
		return
	}
	var requestBody projectionRateRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	in, err := requestBody.toModel()
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	in.ProjectionRateID = projectionRateID

	var out *model.ProjectionRate
	err = m.runInTx(func(tx *sql.Tx) error {
		out, err = m.ProjectionRateService.Update(tx, *in)
		return err
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, projectionRateToResponse(*out))
}

func (m ApiHandler) deleteProjectionRate(c *gin.Context) {
	projectionRateID, ok := parseIDParam(c)
	if !ok {
		return
	}

	err := m.runInTx(func(tx *sql.Tx) error {
		return m.ProjectionRateService.Delete(tx, projectionRateID)
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"message": "Projection rate deleted successfully"})
}
