package api

import (
	"github.com/gin-gonic/gin"
)

type riskLevelContentResponse struct {
	RiskLevelID string `json:"riskLevelID"`
	Description string `json:"description"`
}

type riskBandRateResponse struct {
	ProjectionLevel string  `json:"projectionLevel"`
	InterestRate    float64 `json:"interestRate"`
}

func (m ApiHandler) getRiskLevelContent(c *gin.Context) {
	riskLevelID, ok := parseIDParam(c)
	if !ok {
		return
	}

	description, err := m.RiskDataService.GetContent(riskLevelID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, riskLevelContentResponse{
		RiskLevelID: riskLevelID.String(),
		Description: description,
	})
}

func (m ApiHandler) getRiskLevelProjectionRates(c *gin.Context) {
	riskLevelID, ok := parseIDParam(c)
	if !ok {
		return
	}

	rates, err := m.RiskDataService.GetRates(c.Request.Context(), riskLevelID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := make([]riskBandRateResponse, 0, len(rates))
	for _, r := range rates {
		out = append(out, riskBandRateResponse{
			ProjectionLevel: r.ProjectionLevel.String(),
			InterestRate:    r.InterestRate.InexactFloat64(),
		})
	}

	c.JSON(200, out)
}
