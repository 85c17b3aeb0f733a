package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"riskprojection/internal/calculator"
	"riskprojection/internal/domain"
	"riskprojection/internal/util"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type computeOptions struct {
	initial   string
	monthly   string
	target    string
	horizon   int
	ratesFile string
	format    string
	start     string
}

type rateRow struct {
	ProjectionLevel string `csv:"projection_level"`
	InterestRate    string `csv:"interest_rate"`
}

type projectionRow struct {
	Date          string `csv:"date" json:"date"`
	VeryPoor      string `csv:"very_poor" json:"veryPoor"`
	Poor          string `csv:"poor" json:"poor"`
	Expected      string `csv:"expected" json:"expected"`
	Good          string `csv:"good" json:"good"`
	Contributions string `csv:"contributions" json:"contributions"`
}

type projectionOutput struct {
	Granularity  string          `json:"granularity"`
	StartDate    string          `json:"startDate"`
	TargetDate   string          `json:"targetDate"`
	EndDate      string          `json:"endDate"`
	TargetAmount string          `json:"targetAmount"`
	YAxisMax     string          `json:"yAxisMax"`
	Rows         []projectionRow `json:"rows"`
}

func newComputeCmd() *cobra.Command {
	opts := computeOptions{}
	c := &cobra.Command{
		Use:   "compute",
		Short: "Compute the projection series for an account",
		Long: `Reads projection_level,interest_rate rows from a csv file and prints
one row per step with the value of every band and the contributions baseline.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(opts.ratesFile)
			if err != nil {
				return fmt.Errorf("failed to open rates file: %w", err)
			}
			defer f.Close()

			return runCompute(cmd.OutOrStdout(), f, opts)
		},
	}

	c.Flags().StringVar(&opts.initial, "initial", "0", "initial contribution")
	c.Flags().StringVar(&opts.monthly, "monthly", "0", "monthly contribution")
	c.Flags().StringVar(&opts.target, "target", "0", "target amount")
	c.Flags().IntVar(&opts.horizon, "horizon", 10, "investment horizon in years")
	c.Flags().StringVarP(&opts.ratesFile, "rates", "r", "", "csv file with projection_level,interest_rate rows")
	c.Flags().StringVarP(&opts.format, "format", "f", "csv", "output format (csv, json)")
	c.Flags().StringVar(&opts.start, "start", "", "start date as YYYY-MM-DD (default today)")
	c.MarkFlagRequired("rates")

	return c
}

func parseRates(r io.Reader) ([]domain.RiskBandRate, error) {
	rows := []rateRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse rates: %w", err)
	}

	out := []domain.RiskBandRate{}
	for i, row := range rows {
		level, err := domain.NewProjectionLevel(strings.TrimSpace(row.ProjectionLevel))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(row.InterestRate))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid interest rate %q", i+1, row.InterestRate)
		}
		out = append(out, domain.RiskBandRate{
			ProjectionLevel: level,
			InterestRate:    rate,
		})
	}

	return out, nil
}

func (o computeOptions) accountParameters() (*domain.AccountParameters, error) {
	initial, err := decimal.NewFromString(o.initial)
	if err != nil {
		return nil, fmt.Errorf("invalid initial contribution %q", o.initial)
	}
	monthly, err := decimal.NewFromString(o.monthly)
	if err != nil {
		return nil, fmt.Errorf("invalid monthly contribution %q", o.monthly)
	}
	return &domain.AccountParameters{
		InitialContribution: initial,
		MonthlyContribution: monthly,
		Horizon:             o.horizon,
	}, nil
}

func (o computeOptions) startDate() (time.Time, error) {
	if o.start == "" {
		return util.Today(), nil
	}
	start, err := time.Parse(time.DateOnly, o.start)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start date %q", o.start)
	}
	return start, nil
}

func runCompute(w io.Writer, ratesReader io.Reader, opts computeOptions) error {
	rates, err := parseRates(ratesReader)
	if err != nil {
		return err
	}
	params, err := opts.accountParameters()
	if err != nil {
		return err
	}
	target, err := decimal.NewFromString(opts.target)
	if err != nil {
		return fmt.Errorf("invalid target amount %q", opts.target)
	}
	start, err := opts.startDate()
	if err != nil {
		return err
	}

	// bad parameters are rejected even when there are no rates
	if err := calculator.ValidateAccountParameters(*params); err != nil {
		return err
	}

	chart, err := calculator.NewChartData(start, *params, target, rates)
	if err != nil {
		return err
	}

	rows := chartRows(chart.Series)
	switch opts.format {
	case "csv":
		return gocsv.Marshal(rows, w)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(projectionOutput{
			Granularity:  string(calculator.GranularityForHorizon(params.Horizon)),
			StartDate:    util.FormatDate(chart.StartDate),
			TargetDate:   util.FormatDate(chart.TargetDate),
			EndDate:      util.FormatDate(chart.EndDate),
			TargetAmount: chart.TargetAmount.String(),
			YAxisMax:     chart.YAxisMax.String(),
			Rows:         rows,
		})
	}

	return fmt.Errorf("unknown format %q, must be csv or json", opts.format)
}

func chartRows(series domain.ProjectionSeriesSet) []projectionRow {
	rows := make([]projectionRow, 0, len(series.ContributionsOnly))
	for i, p := range series.ContributionsOnly {
		rows = append(rows, projectionRow{
			Date:          util.FormatDate(p.Timestamp),
			VeryPoor:      series.VeryPoor[i].Value.String(),
			Poor:          series.Poor[i].Value.String(),
			Expected:      series.Expected[i].Value.String(),
			Good:          series.Good[i].Value.String(),
			Contributions: p.Value.String(),
		})
	}
	return rows
}
