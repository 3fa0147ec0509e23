package repository

//go:generate go run go.uber.org/mock/mockgen -source=./image.go -destination=../mocks/image_mock.go -package=mocks

import (
	"context"

	"maludy/infras/otel"
	"maludy/infras/postgres"
	"maludy/internal/domains/activity/model"
	gDto "maludy/shared/dto"
	gRepo "maludy/shared/repository"
)

type Image interface {
	Insert(ctx context.Context, model model.Image) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Image, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type imageRepositoryImpl struct {
	gRepo.Repository[model.Image]
	db   *postgres.Connection
	otel otel.Otel
}

func NewImage(db *postgres.Connection, otel otel.Otel) Image {
	return &imageRepositoryImpl{
		Repository: gRepo.NewRepository[model.Image](model.ImageEntityName, model.ImageTableName, model.ImageFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
