package calculator

import (
	"testing"
	"time"

	"riskprojection/internal/domain"
	"riskprojection/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newRates(veryPoor, poor, expected, good float64) []domain.RiskBandRate {
	return []domain.RiskBandRate{
		{ProjectionLevel: domain.ProjectionLevel_VeryPoor, InterestRate: decimal.NewFromFloat(veryPoor)},
		{ProjectionLevel: domain.ProjectionLevel_Poor, InterestRate: decimal.NewFromFloat(poor)},
		{ProjectionLevel: domain.ProjectionLevel_Expected, InterestRate: decimal.NewFromFloat(expected)},
		{ProjectionLevel: domain.ProjectionLevel_Good, InterestRate: decimal.NewFromFloat(good)},
	}
}

func newParams(initial, monthly int64, horizon int) domain.AccountParameters {
	return domain.AccountParameters{
		InitialContribution: decimal.NewFromInt(initial),
		MonthlyContribution: decimal.NewFromInt(monthly),
		Horizon:             horizon,
	}
}

func values(points []domain.SeriesPoint) []string {
	out := []string{}
	for _, p := range points {
		out = append(out, p.Value.String())
	}
	return out
}

func Test_GranularityForHorizon(t *testing.T) {
	require.Equal(t, Granularity_Quarterly, GranularityForHorizon(1))
	require.Equal(t, Granularity_Quarterly, GranularityForHorizon(3))
	require.Equal(t, Granularity_Yearly, GranularityForHorizon(4))
	require.Equal(t, Granularity_Yearly, GranularityForHorizon(30))
}

func Test_ComputeBandSeries(t *testing.T) {
	start := util.NewDate(2026, 1, 15)

	t.Run("yearly rounding compounds forward", func(t *testing.T) {
		points, err := ComputeBandSeries(
			domain.ProjectionLevel_Expected,
			start,
			newParams(1000, 0, 4),
			newRates(0, 0, 10, 0),
		)
		require.NoError(t, err)

		// unrounded the last point would be 1610.51
		require.Equal(
			t,
			"",
			cmp.Diff([]string{"1000", "1100", "1210", "1331", "1464", "1610"}, values(points)),
		)
	})

	t.Run("yearly timestamps", func(t *testing.T) {
		points, err := ComputeBandSeries(
			domain.ProjectionLevel_Good,
			start,
			newParams(1000, 0, 5),
			newRates(0, 0, 0, 7),
		)
		require.NoError(t, err)
		require.Len(t, points, 7)

		for i, p := range points {
			require.Equal(t, util.NewDate(2026+i, 1, 15), p.Timestamp)
		}
	})

	t.Run("monthly contributions are deposited before interest", func(t *testing.T) {
		points, err := ComputeBandSeries(
			domain.ProjectionLevel_Poor,
			start,
			newParams(0, 100, 4),
			newRates(0, 5, 0, 0),
		)
		require.NoError(t, err)

		require.Equal(
			t,
			"",
			cmp.Diff([]string{"0", "1260", "2583", "3972", "5431", "6963"}, values(points)),
		)
	})

	t.Run("quarterly applies a quarter of the rate", func(t *testing.T) {
		points, err := ComputeBandSeries(
			domain.ProjectionLevel_Expected,
			start,
			newParams(1000, 0, 1),
			newRates(0, 0, 10, 0),
		)
		require.NoError(t, err)
		require.Len(t, points, 9)
		require.Equal(
			t,
			"",
			cmp.Diff([]string{"1000", "1025", "1051", "1077", "1104"}, values(points[:5])),
		)
		require.Equal(t, util.NewDate(2026, 4, 15), points[1].Timestamp)
		require.Equal(t, util.NewDate(2028, 1, 15), points[8].Timestamp)
	})

	t.Run("quarterly contributions", func(t *testing.T) {
		points, err := ComputeBandSeries(
			domain.ProjectionLevel_VeryPoor,
			start,
			newParams(0, 100, 2),
			newRates(4, 0, 0, 0),
		)
		require.NoError(t, err)

		// (0 + 300) * 1.01 = 303, (303 + 300) * 1.01 = 609.03
		require.Equal(t, "303", points[1].Value.String())
		require.Equal(t, "609", points[2].Value.String())
	})

	t.Run("last duplicate wins", func(t *testing.T) {
		rates := append(
			newRates(1, 2, 3, 4),
			domain.RiskBandRate{ProjectionLevel: domain.ProjectionLevel_Good, InterestRate: decimal.NewFromInt(10)},
		)
		points, err := ComputeBandSeries(domain.ProjectionLevel_Good, start, newParams(1000, 0, 4), rates)
		require.NoError(t, err)
		require.Equal(t, "1100", points[1].Value.String())
	})

	t.Run("missing rate", func(t *testing.T) {
		_, err := ComputeBandSeries(
			domain.ProjectionLevel_Good,
			start,
			newParams(1000, 0, 4),
			newRates(1, 2, 3, 4)[:3],
		)
		require.ErrorIs(t, err, ErrMissingRate)
	})

	t.Run("negative rate shrinks the account", func(t *testing.T) {
		points, err := ComputeBandSeries(
			domain.ProjectionLevel_VeryPoor,
			start,
			newParams(1000, 0, 4),
			newRates(-2, 0, 0, 0),
		)
		require.NoError(t, err)
		require.Equal(t, "980", points[1].Value.String())
	})

	t.Run("half rounds up", func(t *testing.T) {
		points, err := ComputeBandSeries(
			domain.ProjectionLevel_Good,
			start,
			newParams(5, 0, 4),
			newRates(0, 0, 0, 10),
		)
		require.NoError(t, err)
		// 5.5 -> 6
		require.Equal(t, "6", points[1].Value.String())
	})
}

func Test_ComputeBandSeries_pointCounts(t *testing.T) {
	start := util.NewDate(2026, 3, 31)
	rates := newRates(1, 3, 5, 8)

	for horizon := 1; horizon <= 40; horizon++ {
		points, err := ComputeBandSeries(domain.ProjectionLevel_Expected, start, newParams(250, 25, horizon), rates)
		require.NoError(t, err)

		expected := horizon + 2
		if horizon < 4 {
			expected = (horizon+1)*4 + 1
		}
		require.Len(t, points, expected, "horizon %d", horizon)
		require.Equal(t, expected, NumPoints(horizon))

		for i := 1; i < len(points); i++ {
			require.True(t, points[i].Timestamp.After(points[i-1].Timestamp), "horizon %d step %d", horizon, i)
		}
	}
}

func Test_ComputeBandSeries_granularityCutover(t *testing.T) {
	start := util.NewDate(2026, 6, 1)
	rates := newRates(1, 3, 5, 8)

	three, err := ComputeBandSeries(domain.ProjectionLevel_Good, start, newParams(100, 0, 3), rates)
	require.NoError(t, err)
	require.Equal(t, util.NewDate(2026, 9, 1), three[1].Timestamp)

	four, err := ComputeBandSeries(domain.ProjectionLevel_Good, start, newParams(100, 0, 4), rates)
	require.NoError(t, err)
	require.Equal(t, util.NewDate(2027, 6, 1), four[1].Timestamp)
}

func Test_ComputeBandSeries_monthEndStart(t *testing.T) {
	rates := newRates(1, 3, 5, 8)

	t.Run("yearly from leap day", func(t *testing.T) {
		points, err := ComputeBandSeries(domain.ProjectionLevel_Good, util.NewDate(2028, 2, 29), newParams(100, 0, 4), rates)
		require.NoError(t, err)
		require.Equal(t, util.NewDate(2029, 2, 28), points[1].Timestamp)
		require.Equal(t, util.NewDate(2032, 2, 29), points[4].Timestamp)
	})

	t.Run("quarterly from the 30th", func(t *testing.T) {
		points, err := ComputeBandSeries(domain.ProjectionLevel_Good, util.NewDate(2026, 11, 30), newParams(100, 0, 1), rates)
		require.NoError(t, err)
		require.Equal(t, util.NewDate(2027, 2, 28), points[1].Timestamp)
		require.Equal(t, util.NewDate(2027, 5, 30), points[2].Timestamp)
	})
}

func Test_ComputeContributionsSeries(t *testing.T) {
	start := util.NewDate(2026, 1, 1)

	t.Run("yearly", func(t *testing.T) {
		points, err := ComputeContributionsSeries(start, newParams(500, 100, 4))
		require.NoError(t, err)
		require.Equal(
			t,
			"",
			cmp.Diff([]string{"500", "1700", "2900", "4100", "5300", "6500"}, values(points)),
		)
	})

	t.Run("quarterly", func(t *testing.T) {
		points, err := ComputeContributionsSeries(start, newParams(500, 100, 1))
		require.NoError(t, err)
		require.Len(t, points, 9)
		require.Equal(t, "800", points[1].Value.String())
		require.Equal(t, "2900", points[8].Value.String())
	})

	t.Run("invalid parameters", func(t *testing.T) {
		_, err := ComputeContributionsSeries(start, newParams(500, -1, 4))
		require.ErrorIs(t, err, ErrInvalidParameters)
	})
}

func Test_ComputeAllSeries(t *testing.T) {
	start := util.NewDate(2026, 1, 1)

	t.Run("happy path", func(t *testing.T) {
		set, err := ComputeAllSeries(start, newParams(1000, 50, 10), newRates(-1, 2, 5, 8))
		require.NoError(t, err)

		for _, level := range domain.AllProjectionLevels {
			require.Len(t, set.Band(level), 12)
		}
		require.Len(t, set.ContributionsOnly, 12)

		last := len(set.Good) - 1
		require.True(t, set.Good[last].Value.GreaterThan(set.Expected[last].Value))
		require.True(t, set.Expected[last].Value.GreaterThan(set.Poor[last].Value))
		require.True(t, set.Poor[last].Value.GreaterThan(set.ContributionsOnly[last].Value))
		require.True(t, set.ContributionsOnly[last].Value.GreaterThan(set.VeryPoor[last].Value))
	})

	t.Run("empty rates returns empty set", func(t *testing.T) {
		set, err := ComputeAllSeries(start, newParams(1000, 50, 10), nil)
		require.NoError(t, err)
		require.True(t, set.IsEmpty())
		require.NotNil(t, set.Good)
	})

	t.Run("empty rates ignores invalid parameters", func(t *testing.T) {
		set, err := ComputeAllSeries(start, newParams(-1, -1, 0), []domain.RiskBandRate{})
		require.NoError(t, err)
		require.True(t, set.IsEmpty())
	})

	t.Run("zero rate equals contributions", func(t *testing.T) {
		set, err := ComputeAllSeries(start, domain.AccountParameters{
			InitialContribution: decimal.RequireFromString("1000.40"),
			MonthlyContribution: decimal.RequireFromString("33.33"),
			Horizon:             6,
		}, newRates(0, 0, 0, 0))
		require.NoError(t, err)

		for _, level := range domain.AllProjectionLevels {
			require.Equal(t, "", cmp.Diff(values(set.ContributionsOnly), values(set.Band(level))))
		}
	})

	t.Run("zero rate and no contributions is flat", func(t *testing.T) {
		for _, horizon := range []int{1, 3, 4, 12} {
			set, err := ComputeAllSeries(start, newParams(2500, 0, horizon), newRates(0, 0, 0, 0))
			require.NoError(t, err)

			all := [][]domain.SeriesPoint{set.VeryPoor, set.Poor, set.Expected, set.Good, set.ContributionsOnly}
			for _, series := range all {
				for _, p := range series {
					require.Equal(t, "2500", p.Value.String())
				}
			}
		}
	})

	t.Run("contributions independent of rates", func(t *testing.T) {
		a, err := ComputeAllSeries(start, newParams(1000, 75, 8), newRates(-3, 1, 4, 9))
		require.NoError(t, err)
		b, err := ComputeAllSeries(start, newParams(1000, 75, 8), newRates(0, 20, 40, 60))
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(values(a.ContributionsOnly), values(b.ContributionsOnly)))
	})

	t.Run("deterministic", func(t *testing.T) {
		a, err := ComputeAllSeries(start, newParams(1234, 56, 7), newRates(1, 2, 3, 4))
		require.NoError(t, err)
		b, err := ComputeAllSeries(start, newParams(1234, 56, 7), newRates(1, 2, 3, 4))
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(a, b, cmp.Comparer(func(x, y decimal.Decimal) bool {
			return x.Equal(y)
		})))
	})

	t.Run("missing band fails", func(t *testing.T) {
		_, err := ComputeAllSeries(start, newParams(1000, 0, 5), []domain.RiskBandRate{
			{ProjectionLevel: domain.ProjectionLevel_Good, InterestRate: decimal.NewFromInt(5)},
		})
		require.ErrorIs(t, err, ErrMissingRate)
	})

	t.Run("invalid parameters", func(t *testing.T) {
		cases := []domain.AccountParameters{
			newParams(-1, 0, 5),
			newParams(0, -1, 5),
			newParams(0, 0, 0),
			newParams(0, 0, -3),
		}
		for _, params := range cases {
			_, err := ComputeAllSeries(start, params, newRates(1, 2, 3, 4))
			require.ErrorIs(t, err, ErrInvalidParameters)
		}
	})

	t.Run("start is not mutated across series", func(t *testing.T) {
		s := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
		set, err := ComputeAllSeries(s, newParams(1, 0, 4), newRates(0, 0, 0, 0))
		require.NoError(t, err)
		require.Equal(t, s, set.Good[0].Timestamp)
		require.Equal(t, s, set.ContributionsOnly[0].Timestamp)
	})
}
