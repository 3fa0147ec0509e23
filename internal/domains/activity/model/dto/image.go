package dto

import (
	"github.com/google/uuid"

	"maludy/internal/domains/activity/model"
	gModel "maludy/shared/model"
	"maludy/shared/timezone"
)

type UploadImageRequest struct {
	// Image is base64 data, with or without the data-URI prefix.
	Image    string `json:"image"    validate:"required,maxfilesize=10"`
	MimeType string `json:"mimeType" validate:"omitempty,startswith=image/"`
	Width    int    `json:"width"    validate:"gte=0"`
	Height   int    `json:"height"   validate:"gte=0"`
}

func (c *UploadImageRequest) ToModel(activityID, alt, url, storage, user string) model.Image {
	return model.Image{
		ID:         uuid.NewString(),
		ActivityID: activityID,
		URL:        url,
		Type:       model.ImageTypeActivity,
		Alt:        alt,
		Storage:    storage,
		Width:      c.Width,
		Height:     c.Height,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UploadImageResponse struct {
	Success    bool   `json:"success"`
	URL        string `json:"url"`
	ActivityID string `json:"activityId"`
	MimeType   string `json:"mimeType"`
}
