package api

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"riskprojection/internal/db/models/postgres/public/model"

	"github.com/gin-gonic/gin"
)

type addRiskLevelRequest struct {
	Name string `json:"name"`
}

type riskLevelResponse struct {
	RiskLevelID string    `json:"riskLevelID"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"createdAt"`
}

func riskLevelToResponse(m model.RiskLevel) riskLevelResponse {
	return riskLevelResponse{
		RiskLevelID: m.RiskLevelID.String(),
		Name:        m.Name,
		CreatedAt:   m.CreatedAt,
	}
}

func (m ApiHandler) addRiskLevel(c *gin.Context) {
	var requestBody addRiskLevelRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	name := strings.TrimSpace(requestBody.Name)
	if name == "" {
		returnErrorJsonCode(fmt.Errorf("name is required"), c, 400)
		return
	}

	var out *model.RiskLevel
	err := m.runInTx(func(tx *sql.Tx) error {
		var err error
		out, err = m.RiskLevelRepository.Add(tx, model.RiskLevel{Name: name})
		return err
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, riskLevelToResponse(*out))
}

func (m ApiHandler) listRiskLevels(c *gin.Context) {
	levels, err := m.RiskLevelRepository.List()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := make([]riskLevelResponse, 0, len(levels))
	for _, l := range levels {
		out = append(out, riskLevelToResponse(l))
	}

	c.JSON(200, out)
}
