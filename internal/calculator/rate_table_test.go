package calculator

import (
	"testing"

	"riskprojection/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestRateTable(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		table := NewRateTable(newRates(1, 2, 3, 4))
		require.Equal(t, 4, table.Len())
		require.Empty(t, table.Duplicates())

		rate, err := table.Rate(domain.ProjectionLevel_Expected)
		require.NoError(t, err)
		require.True(t, rate.Equal(decimal.NewFromInt(3)))
	})

	t.Run("duplicates are reported", func(t *testing.T) {
		rates := append(newRates(1, 2, 3, 4), domain.RiskBandRate{
			ProjectionLevel: domain.ProjectionLevel_Poor,
			InterestRate:    decimal.NewFromInt(7),
		})
		table := NewRateTable(rates)

		require.Equal(t, []domain.ProjectionLevel{domain.ProjectionLevel_Poor}, table.Duplicates())
		rate, err := table.Rate(domain.ProjectionLevel_Poor)
		require.NoError(t, err)
		require.True(t, rate.Equal(decimal.NewFromInt(7)))
	})

	t.Run("unknown level", func(t *testing.T) {
		table := NewRateTable(nil)
		_, err := table.Rate(domain.ProjectionLevel("excellent"))
		require.ErrorIs(t, err, ErrMissingRate)
	})
}
