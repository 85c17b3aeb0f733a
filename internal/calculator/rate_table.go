package calculator

import (
	"fmt"

	"riskprojection/internal/domain"

	"github.com/shopspring/decimal"
)

// RateTable maps each projection level to its yearly interest rate.
// it's built once per calculation instead of scanning the rate rows
// for every band
type RateTable struct {
	rates      map[domain.ProjectionLevel]decimal.Decimal
	duplicates []domain.ProjectionLevel
}

// NewRateTable keeps the last rate seen for a level, which is how the
// rows have always been resolved. repeated levels are recorded so the
// caller can flag bad provider data
func NewRateTable(rates []domain.RiskBandRate) RateTable {
	t := RateTable{
		rates:      map[domain.ProjectionLevel]decimal.Decimal{},
		duplicates: []domain.ProjectionLevel{},
	}
	for _, r := range rates {
		if _, ok := t.rates[r.ProjectionLevel]; ok {
			t.duplicates = append(t.duplicates, r.ProjectionLevel)
		}
		t.rates[r.ProjectionLevel] = r.InterestRate
	}
	return t
}

func (t RateTable) Rate(level domain.ProjectionLevel) (decimal.Decimal, error) {
	rate, ok := t.rates[level]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w for projection level %q", ErrMissingRate, level)
	}
	return rate, nil
}

func (t RateTable) Duplicates() []domain.ProjectionLevel {
	return t.duplicates
}

func (t RateTable) Len() int {
	return len(t.rates)
}
