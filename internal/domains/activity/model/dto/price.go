package dto

import (
	"github.com/google/uuid"

	"maludy/internal/domains/activity/model"
	gModel "maludy/shared/model"
	"maludy/shared/timezone"
)

// AgeRange is an inclusive [min, max] pair used for display only.
type AgeRange [2]int

type CreatePriceRequest struct {
	SeniorPrice   int `json:"seniorPrice"   validate:"gte=0"`
	AdultPrice    int `json:"adultPrice"    validate:"gte=0"`
	YouthsPrice   int `json:"youthsPrice"   validate:"gte=0"`
	ChildrenPrice int `json:"childrenPrice" validate:"gte=0"`
	BabiesPrice   int `json:"babiesPrice"   validate:"gte=0"`

	SeniorAge   AgeRange `json:"seniorAge"`
	AdultAge    AgeRange `json:"adultAge"`
	YouthsAge   AgeRange `json:"youthsAge"`
	ChildrenAge AgeRange `json:"childrenAge"`
	BabiesAge   AgeRange `json:"babiesAge"`
}

func (c *CreatePriceRequest) ToModel(activityID, user string) model.Price {
	return model.Price{
		ID:         uuid.NewString(),
		ActivityID: activityID,

		SeniorPrice:   c.SeniorPrice,
		AdultPrice:    c.AdultPrice,
		YouthsPrice:   c.YouthsPrice,
		ChildrenPrice: c.ChildrenPrice,
		BabiesPrice:   c.BabiesPrice,

		SeniorAgeMin:   c.SeniorAge[0],
		SeniorAgeMax:   c.SeniorAge[1],
		AdultAgeMin:    c.AdultAge[0],
		AdultAgeMax:    c.AdultAge[1],
		YouthsAgeMin:   c.YouthsAge[0],
		YouthsAgeMax:   c.YouthsAge[1],
		ChildrenAgeMin: c.ChildrenAge[0],
		ChildrenAgeMax: c.ChildrenAge[1],
		BabiesAgeMin:   c.BabiesAge[0],
		BabiesAgeMax:   c.BabiesAge[1],

		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type PriceResponse struct {
	ActivityID string `json:"activityId"`

	SeniorPrice   int `json:"seniorPrice"`
	AdultPrice    int `json:"adultPrice"`
	YouthsPrice   int `json:"youthsPrice"`
	ChildrenPrice int `json:"childrenPrice"`
	BabiesPrice   int `json:"babiesPrice"`

	SeniorAge   AgeRange `json:"seniorAge"`
	AdultAge    AgeRange `json:"adultAge"`
	YouthsAge   AgeRange `json:"youthsAge"`
	ChildrenAge AgeRange `json:"childrenAge"`
	BabiesAge   AgeRange `json:"babiesAge"`
}

func (r *PriceResponse) FromModel(mod model.Price) {
	r.ActivityID = mod.ActivityID

	r.SeniorPrice = mod.SeniorPrice
	r.AdultPrice = mod.AdultPrice
	r.YouthsPrice = mod.YouthsPrice
	r.ChildrenPrice = mod.ChildrenPrice
	r.BabiesPrice = mod.BabiesPrice

	r.SeniorAge = AgeRange{mod.SeniorAgeMin, mod.SeniorAgeMax}
	r.AdultAge = AgeRange{mod.AdultAgeMin, mod.AdultAgeMax}
	r.YouthsAge = AgeRange{mod.YouthsAgeMin, mod.YouthsAgeMax}
	r.ChildrenAge = AgeRange{mod.ChildrenAgeMin, mod.ChildrenAgeMax}
	r.BabiesAge = AgeRange{mod.BabiesAgeMin, mod.BabiesAgeMax}
}
