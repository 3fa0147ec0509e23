package repository

//go:generate go run go.uber.org/mock/mockgen -source=./price.go -destination=../mocks/price_mock.go -package=mocks

import (
	"context"

	"maludy/infras/otel"
	"maludy/infras/postgres"
	"maludy/internal/domains/activity/model"
	gDto "maludy/shared/dto"
	gRepo "maludy/shared/repository"
)

type Price interface {
	Insert(ctx context.Context, model model.Price) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Price, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type priceRepositoryImpl struct {
	gRepo.Repository[model.Price]
	db   *postgres.Connection
	otel otel.Otel
}

func NewPrice(db *postgres.Connection, otel otel.Otel) Price {
	return &priceRepositoryImpl{
		Repository: gRepo.NewRepository[model.Price](model.PriceEntityName, model.PriceTableName, model.PriceFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
