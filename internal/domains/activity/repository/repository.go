package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"maludy/infras/otel"
	"maludy/infras/postgres"
	"maludy/internal/domains/activity/model"
	"maludy/shared/constant"
	gDto "maludy/shared/dto"
	"maludy/shared/logger"
	gRepo "maludy/shared/repository"
)

const cardSelect = `
SELECT a.id, a.title, a.location, a.duration, a.rating, a.reviews, a.badge,
       COALESCE(i.url, '') AS image,
       COALESCE(p.senior_price, 0)   AS senior_price,
       COALESCE(p.adult_price, 0)    AS adult_price,
       COALESCE(p.youths_price, 0)   AS youths_price,
       COALESCE(p.children_price, 0) AS children_price
FROM activities a
LEFT JOIN LATERAL (
    SELECT url FROM activity_images
    WHERE activity_id = a.id
    ORDER BY created_at ASC
    LIMIT 1
) i ON TRUE
LEFT JOIN activity_prices p ON p.activity_id = a.id`

type Activity interface {
	Insert(ctx context.Context, model model.Activity) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Activity, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetCards(ctx context.Context, params gDto.QueryParams) ([]model.Card, error)
	SearchCards(ctx context.Context, query string, params gDto.QueryParams) ([]model.Card, error)
	CountSearch(ctx context.Context, query string) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Activity]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Activity {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Activity](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetCards returns the listing projection, newest first.
func (repo *repositoryImpl) GetCards(ctx context.Context, params gDto.QueryParams) ([]model.Card, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".activity.GetCards")
	defer scope.End()

	query := cardSelect + " ORDER BY a.created_at DESC LIMIT :limit OFFSET :offset"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"limit":  params.Limit,
		"offset": (params.Page - 1) * params.Limit,
	}

	return repo.selectCards(ctx, query, args)
}

// SearchCards returns the projection filtered by a case-insensitive title match,
// ordered by title. An empty query degrades to the newest-first listing.
func (repo *repositoryImpl) SearchCards(ctx context.Context, query string, params gDto.QueryParams) ([]model.Card, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".activity.SearchCards")
	defer scope.End()

	args := map[string]any{
		"limit":  params.Limit,
		"offset": (params.Page - 1) * params.Limit,
	}

	sqlQuery := cardSelect + " ORDER BY a.created_at DESC LIMIT :limit OFFSET :offset"
	if query != constant.Empty {
		sqlQuery = cardSelect + " WHERE a.title ILIKE :query ORDER BY a.title ASC LIMIT :limit OFFSET :offset"
		args["query"] = "%" + query + "%"
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, sqlQuery)

	return repo.selectCards(ctx, sqlQuery, args)
}

func (repo *repositoryImpl) CountSearch(ctx context.Context, query string) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".activity.CountSearch")
	defer scope.End()

	sqlQuery := "SELECT COUNT(id) FROM activities"
	args := map[string]any{}

	if query != constant.Empty {
		sqlQuery += " WHERE title ILIKE :query"
		args["query"] = "%" + query + "%"
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, sqlQuery)

	var count int

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, sqlQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &count, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count activities: %w", err)
	}

	return count, nil
}

func (repo *repositoryImpl) selectCards(ctx context.Context, query string, args map[string]any) ([]model.Card, error) {
	var cards []model.Card

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return cards, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &cards, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return cards, fmt.Errorf("failed to get activity cards: %w", err)
	}

	return cards, nil
}
