package model

import (
	"maludy/shared/model"
)

const (
	PriceTableName  = "activity_prices"
	PriceEntityName = "price"

	PriceFieldID         = "id"
	PriceFieldActivityID = "activity_id"
)

// Price is the per-activity unit price table: one row per activity, five
// tiers, each with a display age range.
type Price struct {
	ID         string `db:"id"`
	ActivityID string `db:"activity_id"`

	SeniorPrice   int `db:"senior_price"`
	AdultPrice    int `db:"adult_price"`
	YouthsPrice   int `db:"youths_price"`
	ChildrenPrice int `db:"children_price"`
	BabiesPrice   int `db:"babies_price"`

	SeniorAgeMin   int `db:"senior_age_min"`
	SeniorAgeMax   int `db:"senior_age_max"`
	AdultAgeMin    int `db:"adult_age_min"`
	AdultAgeMax    int `db:"adult_age_max"`
	YouthsAgeMin   int `db:"youths_age_min"`
	YouthsAgeMax   int `db:"youths_age_max"`
	ChildrenAgeMin int `db:"children_age_min"`
	ChildrenAgeMax int `db:"children_age_max"`
	BabiesAgeMin   int `db:"babies_age_min"`
	BabiesAgeMax   int `db:"babies_age_max"`

	model.Metadata
}
