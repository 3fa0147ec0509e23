package model

import (
	"github.com/lib/pq"

	"maludy/shared/constant"
	"maludy/shared/model"
)

const (
	TableName  = "activities"
	EntityName = "activity"

	FieldID       = "id"
	FieldTitle    = "title"
	FieldLocation = "location"
	FieldRating   = "rating"
	FieldReviews  = "reviews"
	FieldBadge    = "badge"
)

const (
	BadgeNone    = "NONE"
	BadgeNew     = "NEW"
	BadgePopular = "POPULAR"
	BadgeSeason  = "SEASON"
)

// Badge promotion thresholds used by the search projection.
const (
	PopularMinReviews = 100
	PopularMinRating  = 4.6
)

type Activity struct {
	ID               string         `db:"id"`
	Title            string         `db:"title"`
	Description      string         `db:"description"`
	ShortDescription string         `db:"short_description"`
	Location         string         `db:"location"`
	Duration         string         `db:"duration"`
	Rating           float64        `db:"rating"`
	Reviews          int            `db:"reviews"`
	Badge            string         `db:"badge"`
	Languages        string         `db:"languages"`
	Schedules        pq.StringArray `db:"schedules"`
	WhatYouDo        pq.StringArray `db:"what_you_do"`
	Includes         pq.StringArray `db:"includes"`
	NotSuitable      pq.StringArray `db:"not_suitable"`
	model.Metadata
}

// Card is the list/search projection of an activity: cover image plus
// a single display price pulled from the price table.
type Card struct {
	ID       string  `db:"id"`
	Title    string  `db:"title"`
	Location string  `db:"location"`
	Duration string  `db:"duration"`
	Rating   float64 `db:"rating"`
	Reviews  int     `db:"reviews"`
	Badge    string  `db:"badge"`
	Image    string  `db:"image"`

	SeniorPrice   int `db:"senior_price"`
	AdultPrice    int `db:"adult_price"`
	YouthsPrice   int `db:"youths_price"`
	ChildrenPrice int `db:"children_price"`
}

// DisplayBadge promotes well-reviewed activities to POPULAR for search results.
func (c *Card) DisplayBadge() string {
	if c.Reviews > PopularMinReviews && c.Rating >= PopularMinRating {
		return BadgePopular
	}

	if c.Badge == BadgeNone {
		return constant.Empty
	}

	return c.Badge
}

// FromPrice is the lowest positive unit price across the paying tiers.
func (c *Card) FromPrice() int {
	lowest := 0

	for _, price := range []int{c.SeniorPrice, c.AdultPrice, c.YouthsPrice, c.ChildrenPrice} {
		if price <= 0 {
			continue
		}

		if lowest == 0 || price < lowest {
			lowest = price
		}
	}

	return lowest
}
