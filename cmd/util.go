package cmd

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log"

	"riskprojection/api"
	"riskprojection/internal"
	"riskprojection/internal/repository"
	"riskprojection/internal/service"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

// InitializeDependencies loads secrets and wires the api handler. the
// returned port comes from the secrets file
func InitializeDependencies() (*api.ApiHandler, int, error) {
	// a local .env is optional, deployments set the variables directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, 0, fmt.Errorf("failed to load .env: %w", err)
	}

	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to connect to db: %w", err)
	}

	return NewApiHandler(dbConn, secrets.Jwt), secrets.Port, nil
}

func NewApiHandler(dbConn *sql.DB, jwtSecret string) *api.ApiHandler {
	riskLevelRepository := repository.NewRiskLevelRepository(dbConn)
	projectionContentRepository := repository.NewProjectionContentRepository(dbConn)
	projectionRateRepository := repository.NewProjectionRateRepository(dbConn)

	riskDataService := service.NewRiskDataService(
		projectionContentRepository,
		projectionRateRepository,
	)

	return &api.ApiHandler{
		Db:                   dbConn,
		Logger:               zap.S(),
		JwtSecret:            jwtSecret,
		ApiRequestRepository: repository.ApiRequestRepositoryHandler{},
		RiskLevelRepository:  riskLevelRepository,
		ProjectionContentService: service.NewProjectionContentService(
			projectionContentRepository,
			riskLevelRepository,
		),
		ProjectionRateService: service.NewProjectionRateService(
			projectionRateRepository,
			riskLevelRepository,
		),
		RiskDataService: riskDataService,
		ProjectionService: service.NewProjectionService(
			riskLevelRepository,
			riskDataService,
		),
	}
}
