// Package pricing computes booking quotes over the five guest tiers.
package pricing

import "math"

// Counts is the number of guests per tier. Negative values must be rejected
// by validation before a quote is computed; the calculator does not clamp.
type Counts struct {
	Seniors  int
	Adults   int
	Youths   int
	Children int
	Babies   int
}

// TotalPeople is the headcount across all five tiers.
func (c Counts) TotalPeople() int {
	return c.Seniors + c.Adults + c.Youths + c.Children + c.Babies
}

// Dependents counts the guests who need a chaperone present.
func (c Counts) Dependents() int {
	return c.Youths + c.Children + c.Babies
}

// Chaperones counts the guests who can accompany dependents.
func (c Counts) Chaperones() int {
	return c.Seniors + c.Adults
}

// UnitPrices is the per-tier unit price table. A zero price means the tier
// travels free; the calculator never hardcodes which tiers are free.
type UnitPrices struct {
	Senior float64
	Adult  float64
	Youth  float64
	Child  float64
	Baby   float64
}

type Quote struct {
	TotalPrice   int
	TotalPeople  int
	PayingPeople int
}

// ComputeQuote derives the total price and headcounts for a guest count set.
// The total is rounded to the nearest integer.
func ComputeQuote(counts Counts, prices UnitPrices) Quote {
	total := float64(counts.Seniors)*prices.Senior +
		float64(counts.Adults)*prices.Adult +
		float64(counts.Youths)*prices.Youth +
		float64(counts.Children)*prices.Child +
		float64(counts.Babies)*prices.Baby

	paying := 0

	for _, tier := range []struct {
		count int
		price float64
	}{
		{counts.Seniors, prices.Senior},
		{counts.Adults, prices.Adult},
		{counts.Youths, prices.Youth},
		{counts.Children, prices.Child},
		{counts.Babies, prices.Baby},
	} {
		if tier.price > 0 {
			paying += tier.count
		}
	}

	return Quote{
		TotalPrice:   int(math.Round(total)),
		TotalPeople:  counts.TotalPeople(),
		PayingPeople: paying,
	}
}
