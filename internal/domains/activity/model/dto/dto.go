package dto

import (
	"github.com/google/uuid"

	"maludy/internal/domains/activity/model"
	"maludy/shared"
	"maludy/shared/constant"
	gModel "maludy/shared/model"
	"maludy/shared/timezone"
)

type CreateActivityRequest struct {
	Title            string   `json:"title"            validate:"required,max=75"`
	Description      string   `json:"description"      validate:"required,max=3000"`
	ShortDescription string   `json:"shortDescription" validate:"required,max=200"`
	Location         string   `json:"location"         validate:"required"`
	Duration         string   `json:"duration"         validate:"required"`
	Rating           float64  `json:"rating"           validate:"gte=0,lte=5"`
	Reviews          int      `json:"reviews"          validate:"gte=0"`
	Badge            string   `json:"badge"            validate:"omitempty,oneof=NONE NEW POPULAR SEASON"`
	Languages        string   `json:"languages"        validate:"required"`
	Schedules        []string `json:"schedules"        validate:"required,min=1,dive,required"`
	WhatYouDo        []string `json:"whatYouDo"        validate:"omitempty,dive,required"`
	Includes         []string `json:"includes"         validate:"omitempty,dive,required"`
	NotSuitable      []string `json:"notSuitable"      validate:"omitempty,dive,required"`
}

func (c *CreateActivityRequest) ToModel(user string) model.Activity {
	badge := c.Badge
	if badge == constant.Empty {
		badge = model.BadgeNone
	}

	return model.Activity{
		ID:               uuid.NewString(),
		Title:            c.Title,
		Description:      c.Description,
		ShortDescription: c.ShortDescription,
		Location:         c.Location,
		Duration:         c.Duration,
		Rating:           c.Rating,
		Reviews:          c.Reviews,
		Badge:            badge,
		Languages:        c.Languages,
		Schedules:        c.Schedules,
		WhatYouDo:        c.WhatYouDo,
		Includes:         c.Includes,
		NotSuitable:      c.NotSuitable,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CreateActivityResponse struct {
	ActivityID string `json:"activityId"`
	Created    bool   `json:"created"`
}

type ActivityResponse struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription"`
	Location         string   `json:"location"`
	Duration         string   `json:"duration"`
	Rating           float64  `json:"rating"`
	Reviews          int      `json:"reviews"`
	Badge            string   `json:"badge"`
	Languages        string   `json:"languages"`
	Schedules        []string `json:"schedules"`
	WhatYouDo        []string `json:"whatYouDo"`
	Includes         []string `json:"includes"`
	NotSuitable      []string `json:"notSuitable"`
}

func (r *ActivityResponse) FromModel(mod model.Activity) {
	r.ID = mod.ID
	r.Title = mod.Title
	r.Description = mod.Description
	r.ShortDescription = mod.ShortDescription
	r.Location = mod.Location
	r.Duration = mod.Duration
	r.Rating = mod.Rating
	r.Reviews = mod.Reviews
	r.Badge = mod.Badge
	r.Languages = mod.Languages
	r.Schedules = mod.Schedules
	r.WhatYouDo = mod.WhatYouDo
	r.Includes = mod.Includes
	r.NotSuitable = mod.NotSuitable
}

// CardResponse is the listing/search projection shown on activity cards.
type CardResponse struct {
	ID       string  `json:"id"`
	Image    string  `json:"image"`
	Title    string  `json:"title"`
	Location string  `json:"location"`
	Price    int     `json:"price"`
	Duration string  `json:"duration"`
	Rating   float64 `json:"rating"`
	Reviews  int     `json:"reviews"`
	Badge    string  `json:"badge"`
}

func (r *CardResponse) FromModel(card model.Card) {
	r.ID = card.ID
	r.Image = card.Image
	r.Title = card.Title
	r.Location = card.Location
	r.Price = card.AdultPrice
	r.Duration = card.Duration
	r.Rating = card.Rating
	r.Reviews = card.Reviews
	r.Badge = card.Badge
}

// FromSearchModel derives the display badge and from-price used by search results.
func (r *CardResponse) FromSearchModel(card model.Card) {
	r.FromModel(card)
	r.Price = card.FromPrice()
	r.Badge = card.DisplayBadge()
}

type GetActivitiesResponse struct {
	Activities []CardResponse `json:"activities"`
	TotalPage  int            `json:"total_page"`
	TotalData  int            `json:"total_data"`
}

func (r *GetActivitiesResponse) FromModels(cards []model.Card, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Activities = make([]CardResponse, len(cards))
	for i, card := range cards {
		r.Activities[i].FromModel(card)
	}
}

type SearchActivitiesResponse struct {
	Activities []CardResponse `json:"activities"`
	TotalPage  int            `json:"total_page"`
	TotalData  int            `json:"total_data"`
}

func (r *SearchActivitiesResponse) FromModels(cards []model.Card, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Activities = make([]CardResponse, len(cards))
	for i, card := range cards {
		r.Activities[i].FromSearchModel(card)
	}
}
