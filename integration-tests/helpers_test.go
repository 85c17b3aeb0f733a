package integration_tests

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"riskprojection/api"
	"riskprojection/cmd"
	"riskprojection/internal"
	"riskprojection/internal/db/models/postgres/public/table"

	"github.com/gin-gonic/gin"
	"github.com/go-jet/jet/v2/postgres"
	"github.com/gocarina/gocsv"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

const testJwtSecret = "integration-secret"

type testServer struct {
	db     *sql.DB
	server *httptest.Server
	token  string
}

func newTestServer(t *testing.T) testServer {
	gin.SetMode(gin.TestMode)

	db, err := internal.NewTestDb()
	require.NoError(t, err)
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("test db unavailable: %v", err)
	}

	require.NoError(t, cleanupProjections(db))

	handler := cmd.NewApiHandler(db, testJwtSecret)
	server := httptest.NewServer(handler.InitializeRouterEngine())

	token, err := api.NewAdminToken(testJwtSecret, "integration", time.Hour)
	require.NoError(t, err)

	t.Cleanup(func() {
		server.Close()
		require.NoError(t, cleanupProjections(db))
		db.Close()
	})

	return testServer{
		db:     db,
		server: server,
		token:  token,
	}
}

func cleanupProjections(db *sql.DB) error {
	if _, err := table.ProjectionRate.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.ProjectionContent.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.RiskLevel.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.APIRequest.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	return nil
}

type sampleRate struct {
	ProjectionLevel string  `csv:"projection_level"`
	InterestRate    float64 `csv:"interest_rate"`
}

func loadSampleRates() ([]sampleRate, error) {
	f, err := os.Open("sample_rates.csv")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows := []sampleRate{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// hitEndpoint sends payload as json and decodes the response into
// target. the status code is returned so callers can check failures
func (s testServer) hitEndpoint(route string, method string, payload interface{}, target interface{}) (int, error) {
	var body io.Reader
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(payloadBytes)
	}

	req, err := http.NewRequest(method, s.server.URL+"/"+route, body)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	if target != nil {
		if err := json.Unmarshal(responseBody, target); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode %s: %w", string(responseBody), err)
		}
	}

	return resp.StatusCode, nil
}
