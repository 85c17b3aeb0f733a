package api

import (
	"database/sql"
	"fmt"
	"time"

	"riskprojection/internal/db/models/postgres/public/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type projectionContentRequest struct {
	RiskLevelID string `json:"riskLevelID"`
	Description string `json:"description"`
}

type projectionContentResponse struct {
	ProjectionContentID string    `json:"projectionContentID"`
	RiskLevelID         string    `json:"riskLevelID"`
	RiskLevelName       string    `json:"riskLevelName,omitempty"`
	Description         string    `json:"description"`
	CreatedAt           time.Time `json:"createdAt"`
	ModifiedAt          time.Time `json:"modifiedAt"`
}

type projectionContentMessageResponse struct {
	Message string                     `json:"message"`
	Data    *projectionContentResponse `json:"data,omitempty"`
}

func projectionContentToResponse(m model.ProjectionContent) *projectionContentResponse {
	return &projectionContentResponse{
		ProjectionContentID: m.ProjectionContentID.String(),
		RiskLevelID:         m.RiskLevelID.String(),
		Description:         m.Description,
		CreatedAt:           m.CreatedAt,
		ModifiedAt:          m.ModifiedAt,
	}
}

func (r projectionContentRequest) toModel() (*model.ProjectionContent, error) {
	riskLevelID, err := uuid.Parse(r.RiskLevelID)
	if err != nil {
		return nil, fmt.Errorf("invalid riskLevelID %q", r.RiskLevelID)
	}
	return &model.ProjectionContent{
		RiskLevelID: riskLevelID,
		Description: r.Description,
	}, nil
}

func (m ApiHandler) createProjectionContent(c *gin.Context) {
	var requestBody projectionContentRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	in, err := requestBody.toModel()
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	var out *model.ProjectionContent
	err = m.runInTx(func(tx *sql.Tx) error {
		out, err = m.ProjectionContentService.Create(tx, *in)
		return err
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, projectionContentMessageResponse{
		Message: "New projection content created successfully",
		Data:    projectionContentToResponse(*out),
	})
}

func (m ApiHandler) getProjectionContent(c *gin.Context) {
	projectionContentID, ok := parseIDParam(c)
	if !ok {
		return
	}

	out, err := m.ProjectionContentService.Get(projectionContentID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, projectionContentToResponse(*out))
}

func (m ApiHandler) listProjectionContent(c *gin.Context) {
	details, err := m.ProjectionContentService.List()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := make([]projectionContentResponse, 0, len(details))
	for _, d := range details {
		out = append(out, projectionContentResponse{
			ProjectionContentID: d.ProjectionContentID.String(),
			RiskLevelID:         d.RiskLevelID.String(),
			RiskLevelName:       d.RiskLevelName,
			Description:         d.Description,
			CreatedAt:           d.CreatedAt,
			ModifiedAt:          d.ModifiedAt,
		})
	}

	c.JSON(200, out)
}

func (m ApiHandler) updateProjectionContent(c *gin.Context) {
	projectionContentID, ok := parseIDParam(c)
	if !ok {
		return
	}
	var requestBody projectionContentRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	in, err := requestBody.toModel()
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	in.ProjectionContentID = projectionContentID

	var out *model.ProjectionContent
	err = m.runInTx(func(tx *sql.Tx) error {
		out, err = m.ProjectionContentService.Update(tx, *in)
		return err
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, projectionContentMessageResponse{
		Message: "Projection content updated successfully",
		Data:    projectionContentToResponse(*out),
	})
}

func (m ApiHandler) deleteProjectionContent(c *gin.Context) {
	projectionContentID, ok := parseIDParam(c)
	if !ok {
		return
	}

	err := m.runInTx(func(tx *sql.Tx) error {
		return m.ProjectionContentService.Delete(tx, projectionContentID)
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, projectionContentMessageResponse{
		Message: "Projection content deleted successfully",
	})
}
