package model

import (
	"maludy/shared/model"
)

const (
	ImageTableName  = "activity_images"
	ImageEntityName = "image"

	ImageFieldID         = "id"
	ImageFieldActivityID = "activity_id"

	ImageTypeActivity = "ACTIVITY"
	ImageTypeGallery  = "GALLERY"
)

type Image struct {
	ID         string `db:"id"`
	ActivityID string `db:"activity_id"`
	URL        string `db:"url"`
	Type       string `db:"type"`
	Alt        string `db:"alt"`
	Storage    string `db:"storage"`
	Width      int    `db:"width"`
	Height     int    `db:"height"`
	model.Metadata
}
