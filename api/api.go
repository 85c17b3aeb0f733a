package api

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"riskprojection/internal/calculator"
	"riskprojection/internal/db/models/postgres/public/model"
	"riskprojection/internal/domain"
	"riskprojection/internal/logger"
	"riskprojection/internal/repository"
	"riskprojection/internal/service"
	"riskprojection/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db                       *sql.DB
	Logger                   *zap.SugaredLogger
	JwtSecret                string
	ApiRequestRepository     repository.ApiRequestRepository
	RiskLevelRepository      repository.RiskLevelRepository
	ProjectionContentService service.ProjectionContentService
	ProjectionRateService    service.ProjectionRateService
	RiskDataService          service.RiskDataService
	ProjectionService        service.ProjectionService
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.loggerMiddleware)
	if m.ApiRequestRepository != nil && m.Db != nil {
		router.Use(m.logRequestMiddleware)
	}

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to risk projections"})
	})

	router.GET("/riskLevel", m.listRiskLevels)
	router.GET("/riskLevel/:id/content", m.getRiskLevelContent)
	router.GET("/riskLevel/:id/projectionRates", m.getRiskLevelProjectionRates)
	router.GET("/projectionContent", m.listProjectionContent)
	router.GET("/projectionContent/:id", m.getProjectionContent)
	router.GET("/projectionRate", m.listProjectionRates)
	router.POST("/projection", m.projection)

	admin := router.Group("/", m.adminAuthMiddleware)
	admin.POST("/riskLevel", m.addRiskLevel)
	admin.POST("/projectionContent", m.createProjectionContent)
	admin.PUT("/projectionContent/:id", m.updateProjectionContent)
	admin.DELETE("/projectionContent/:id", m.deleteProjectionContent)
	admin.POST("/projectionRate", m.createProjectionRate)
	admin.PUT("/projectionRate/:id", m.updateProjectionRate)
	admin.DELETE("/projectionRate/:id", m.deleteProjectionRate)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

// errorStatus picks the response code from the sentinel the error wraps
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return 404
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, calculator.ErrInvalidParameters):
		return 400
	}
	return 500
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, errorStatus(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	log := logger.FromContext(c.Request.Context())
	if code >= 500 {
		log.Errorw("request failed", "route", c.FullPath(), "error", err.Error())
	} else {
		log.Infow("request rejected", "route", c.FullPath(), "status", code, "error", err.Error())
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid id %q", c.Param("id")), c, 400)
		return uuid.Nil, false
	}
	return id, true
}

// runInTx commits when fn succeeds and rolls back otherwise
func (m ApiHandler) runInTx(fn func(tx *sql.Tx) error) error {
	tx, err := m.Db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	err = fn(tx)
	if err != nil {
		return err
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (m ApiHandler) loggerMiddleware(ctx *gin.Context) {
	base := m.Logger
	if base == nil {
		base = zap.S()
	}
	log := base.With(
		"requestID", uuid.New().String(),
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
	)
	ctx.Request = ctx.Request.WithContext(logger.NewContext(ctx.Request.Context(), log))

	start := time.Now()
	ctx.Next()

	log.Infow("handled request",
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	log := logger.FromContext(ctx.Request.Context())

	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		log.Warnw("failed to get raw data", "error", err.Error())
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		IPAddress:   util.StringPointer(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: util.StringPointer(string(body)),
		StartTs:     start,
	})
	if err != nil {
		log.Warnw("failed to record api request", "error", err.Error())
	}

	ctx.Next()

	if req != nil {
		req.DurationMs = util.Int64Pointer(time.Since(start).Milliseconds())
		req.StatusCode = util.Int32Pointer(int32(ctx.Writer.Status()))
		req.ResponseBody = util.StringPointer(w.body.String())

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			log.Warnw("failed to update api request", "error", err.Error())
		}
	}
}
