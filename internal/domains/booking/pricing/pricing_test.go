package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"maludy/internal/domains/booking/pricing"
)

var standardPrices = pricing.UnitPrices{
	Senior: 45,
	Adult:  50,
	Youth:  42,
	Child:  35,
	Baby:   0,
}

func TestComputeQuote(t *testing.T) {
	tests := []struct {
		name             string
		counts           pricing.Counts
		prices           pricing.UnitPrices
		wantTotalPrice   int
		wantTotalPeople  int
		wantPayingPeople int
	}{
		{
			name:             "two adults",
			counts:           pricing.Counts{Adults: 2},
			prices:           standardPrices,
			wantTotalPrice:   100,
			wantTotalPeople:  2,
			wantPayingPeople: 2,
		},
		{
			name:             "one adult two children",
			counts:           pricing.Counts{Adults: 1, Children: 2},
			prices:           standardPrices,
			wantTotalPrice:   120,
			wantTotalPeople:  3,
			wantPayingPeople: 3,
		},
		{
			name:             "babies travel free when priced at zero",
			counts:           pricing.Counts{Adults: 2, Babies: 2},
			prices:           standardPrices,
			wantTotalPrice:   100,
			wantTotalPeople:  4,
			wantPayingPeople: 2,
		},
		{
			name:             "priced babies count as paying",
			counts:           pricing.Counts{Adults: 1, Babies: 1},
			prices:           pricing.UnitPrices{Adult: 50, Baby: 10},
			wantTotalPrice:   60,
			wantTotalPeople:  2,
			wantPayingPeople: 2,
		},
		{
			name:             "empty set",
			counts:           pricing.Counts{},
			prices:           standardPrices,
			wantTotalPrice:   0,
			wantTotalPeople:  0,
			wantPayingPeople: 0,
		},
		{
			name:             "fractional prices round to nearest",
			counts:           pricing.Counts{Adults: 3},
			prices:           pricing.UnitPrices{Adult: 49.5},
			wantTotalPrice:   149, // 148.5 rounds up
			wantTotalPeople:  3,
			wantPayingPeople: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := pricing.ComputeQuote(tt.counts, tt.prices)

			assert.Equal(t, tt.wantTotalPrice, quote.TotalPrice)
			assert.Equal(t, tt.wantTotalPeople, quote.TotalPeople)
			assert.Equal(t, tt.wantPayingPeople, quote.PayingPeople)
		})
	}
}

func TestComputeQuote_NonNegative(t *testing.T) {
	// For all non-negative count sets the total price stays non-negative and
	// the headcount equals the sum of all tiers.
	for seniors := 0; seniors <= 3; seniors++ {
		for adults := 0; adults <= 3; adults++ {
			for children := 0; children <= 3; children++ {
				counts := pricing.Counts{Seniors: seniors, Adults: adults, Children: children}
				quote := pricing.ComputeQuote(counts, standardPrices)

				assert.GreaterOrEqual(t, quote.TotalPrice, 0)
				assert.Equal(t, seniors+adults+children, quote.TotalPeople)
			}
		}
	}
}

func TestCounts_Helpers(t *testing.T) {
	counts := pricing.Counts{Seniors: 1, Adults: 2, Youths: 3, Children: 4, Babies: 5}

	assert.Equal(t, 15, counts.TotalPeople())
	assert.Equal(t, 12, counts.Dependents())
	assert.Equal(t, 3, counts.Chaperones())
}
