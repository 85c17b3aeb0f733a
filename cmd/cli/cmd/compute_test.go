package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"riskprojection/internal/domain"

	"github.com/gocarina/gocsv"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const flatRatesCsv = `projection_level,interest_rate
very poor,10
poor,10
expected,10
good,10
`

func Test_parseRates(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		rates, err := parseRates(strings.NewReader("projection_level,interest_rate\ngood,7.5\nvery poor,-2\n"))
		require.NoError(t, err)
		require.Len(t, rates, 2)
		require.Equal(t, domain.ProjectionLevel_Good, rates[0].ProjectionLevel)
		require.True(t, rates[0].InterestRate.Equal(decimal.NewFromFloat(7.5)))
		require.Equal(t, domain.ProjectionLevel_VeryPoor, rates[1].ProjectionLevel)
		require.True(t, rates[1].InterestRate.Equal(decimal.NewFromInt(-2)))
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := parseRates(strings.NewReader("projection_level,interest_rate\nexcellent,7\n"))
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("bad rate", func(t *testing.T) {
		_, err := parseRates(strings.NewReader("projection_level,interest_rate\ngood,abc\n"))
		require.Error(t, err)
		require.Contains(t, err.Error(), `invalid interest rate "abc"`)
	})
}

func Test_runCompute(t *testing.T) {
	opts := computeOptions{
		initial: "1000",
		monthly: "0",
		target:  "1500",
		horizon: 4,
		format:  "csv",
		start:   "2024-01-01",
	}

	t.Run("csv", func(t *testing.T) {
		out := &bytes.Buffer{}
		err := runCompute(out, strings.NewReader(flatRatesCsv), opts)
		require.NoError(t, err)

		rows := []projectionRow{}
		require.NoError(t, gocsv.Unmarshal(out, &rows))
		require.Len(t, rows, 6)

		good := []string{}
		for _, r := range rows {
			good = append(good, r.Good)
		}
		diff := cmp.Diff([]string{"1000", "1100", "1210", "1331", "1464", "1610"}, good)
		require.Empty(t, diff)
		require.Equal(t, "2024-01-01", rows[0].Date)
		require.Equal(t, "2029-01-01", rows[5].Date)
		require.Equal(t, "1000", rows[5].Contributions)
	})

	t.Run("json", func(t *testing.T) {
		jsonOpts := opts
		jsonOpts.format = "json"
		jsonOpts.horizon = 1

		out := &bytes.Buffer{}
		err := runCompute(out, strings.NewReader(flatRatesCsv), jsonOpts)
		require.NoError(t, err)

		result := projectionOutput{}
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		require.Equal(t, "QUARTERLY", result.Granularity)
		require.Equal(t, "2025-01-01", result.TargetDate)
		require.Equal(t, "2026-01-01", result.EndDate)
		require.Len(t, result.Rows, 9)
		require.Equal(t, "2024-04-01", result.Rows[1].Date)
		require.Equal(t, "1025", result.Rows[1].Expected)
	})

	t.Run("no rates", func(t *testing.T) {
		out := &bytes.Buffer{}
		err := runCompute(out, strings.NewReader("projection_level,interest_rate\n"), opts)
		require.NoError(t, err)
		require.Zero(t, strings.Count(strings.TrimSpace(out.String()), "\n"))
	})

	t.Run("invalid horizon", func(t *testing.T) {
		badOpts := opts
		badOpts.horizon = 0
		err := runCompute(&bytes.Buffer{}, strings.NewReader(flatRatesCsv), badOpts)
		require.Error(t, err)
	})

	t.Run("unknown format", func(t *testing.T) {
		badOpts := opts
		badOpts.format = "xml"
		err := runCompute(&bytes.Buffer{}, strings.NewReader(flatRatesCsv), badOpts)
		require.Error(t, err)
	})
}
