package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"maludy/config"
	"maludy/infras/otel"
	"maludy/infras/s3"
	"maludy/internal/domains/activity/model"
	"maludy/internal/domains/activity/model/dto"
	"maludy/internal/domains/activity/repository"
	"maludy/shared"
	"maludy/shared/base64"
	"maludy/shared/cache"
	"maludy/shared/constant"
	gDto "maludy/shared/dto"
	"maludy/shared/failure"
)

const (
	cacheGetActivity    = "activity:get"
	cacheGetAllActivity = "activity:gets"
	cacheCountActivity  = "activity:count"
	cacheGetPrices      = "activity:prices"
)

type Activity interface {
	Create(ctx context.Context, req dto.CreateActivityRequest) (dto.CreateActivityResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetActivitiesResponse, error)
	Search(ctx context.Context, query string, params gDto.QueryParams) (dto.SearchActivitiesResponse, error)
	Get(ctx context.Context, id string) (dto.ActivityResponse, error)
	CreatePrices(ctx context.Context, activityID string, req dto.CreatePriceRequest) error
	GetPrices(ctx context.Context, activityID string) (dto.PriceResponse, error)
	UploadImage(ctx context.Context, activityID string, req dto.UploadImageRequest) (dto.UploadImageResponse, error)
}

type serviceImpl struct {
	repo      repository.Activity
	priceRepo repository.Price
	imageRepo repository.Image
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	s3        s3.S3
}

func New(
	repo repository.Activity,
	priceRepo repository.Price,
	imageRepo repository.Image,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
) Activity {
	return &serviceImpl{
		repo:      repo,
		priceRepo: priceRepo,
		imageRepo: imageRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		s3:        s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateActivityRequest) (res dto.CreateActivityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".activity.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	activity := req.ToModel(constant.SystemUser)

	if err = s.repo.Insert(ctx, activity); err != nil {
		log.Error().Err(err).Msg("failed to create activity")

		return res, fmt.Errorf("failed to create activity: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllActivity)
		shared.InvalidateCaches(c, s.cache, cacheCountActivity)
	}()

	return dto.CreateActivityResponse{ActivityID: activity.ID, Created: true}, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetActivitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".activity.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllActivity, params, gDto.FilterGroup{})

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for activities")

		return res, nil
	}

	total, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count activities")

		return res, fmt.Errorf("failed to count activities: %w", err)
	}

	cards, err := s.repo.GetCards(ctx, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to get activities")

		return res, fmt.Errorf("failed to get activities: %w", err)
	}

	res.FromModels(cards, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save activities to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Search(ctx context.Context, query string, params gDto.QueryParams) (res dto.SearchActivitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".activity.Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	query = strings.TrimSpace(query)

	total, err := s.repo.CountSearch(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("failed to count matching activities")

		return res, fmt.Errorf("failed to count matching activities: %w", err)
	}

	cards, err := s.repo.SearchCards(ctx, query, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to search activities")

		return res, fmt.Errorf("failed to search activities: %w", err)
	}

	res.FromModels(cards, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ActivityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".activity.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetActivity, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for activity")

		return res, nil
	}

	activity, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get activity")

		return res, fmt.Errorf("failed to get activity: %w", err)
	}

	if activity.ID == constant.Empty {
		return res, failure.NotFound("activity not found") //nolint:wrapcheck
	}

	res.FromModel(activity)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save activity to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) CreatePrices(ctx context.Context, activityID string, req dto.CreatePriceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".activity.CreatePrices")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(activityID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if activity exists")

		return fmt.Errorf("failed to check if activity exists: %w", err)
	}

	if !exist {
		return failure.NotFound("activity not found") //nolint:wrapcheck
	}

	priceExist, err := s.priceRepo.Exist(ctx, shared.FilterByID(activityID, model.PriceFieldActivityID, model.PriceTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if price table exists")

		return fmt.Errorf("failed to check if price table exists: %w", err)
	}

	if priceExist {
		return failure.Conflict("price table already exists for this activity") //nolint:wrapcheck
	}

	if err = s.priceRepo.Insert(ctx, req.ToModel(activityID, constant.SystemUser)); err != nil {
		log.Error().Err(err).Msg("failed to create price table")

		return fmt.Errorf("failed to create price table: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPrices, activityID)); err != nil {
			log.Error().Err(err).Msg("failed to delete price table from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllActivity)
	}()

	return nil
}

func (s *serviceImpl) GetPrices(ctx context.Context, activityID string) (res dto.PriceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".activity.GetPrices")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPrices, activityID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for price table")

		return res, nil
	}

	price, err := s.priceRepo.Get(ctx, shared.FilterByID(activityID, model.PriceFieldActivityID, model.PriceTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get price table")

		return res, fmt.Errorf("failed to get price table: %w", err)
	}

	if price.ID == constant.Empty {
		return res, failure.NotFound("price table not found") //nolint:wrapcheck
	}

	res.FromModel(price)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save price table to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, activityID string, req dto.UploadImageRequest) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".activity.UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	activity, err := s.repo.Get(ctx, shared.FilterByID(activityID, model.FieldID, model.TableName), model.FieldID, model.FieldTitle)
	if err != nil {
		log.Error().Err(err).Msg("failed to get activity")

		return res, fmt.Errorf("failed to get activity: %w", err)
	}

	if activity.ID == constant.Empty {
		return res, failure.NotFound("activity not found") //nolint:wrapcheck
	}

	mimeType := base64.GetContentType(req.Image)
	if mimeType == constant.Empty {
		mimeType = req.MimeType
	}

	if mimeType == constant.Empty || !strings.HasPrefix(mimeType, "image/") {
		return res, failure.BadRequestFromString("mimeType is required when the image has no data-URI prefix") //nolint:wrapcheck
	}

	data, err := base64.Decode(req.Image)
	if err != nil {
		log.Error().Err(err).Msg("failed to decode image payload")

		return res, failure.BadRequestFromString("image is not valid base64") //nolint:wrapcheck
	}

	extension := strings.TrimPrefix(mimeType, "image/")
	fileName := fmt.Sprintf("%s-%s.%s", activityID, uuid.NewString(), extension)
	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFileBytes(ctx, bucketName, model.EntityName, fileName, mimeType, data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload image to S3")

		return res, fmt.Errorf("failed to upload image: %w", err)
	}

	image := req.ToModel(activityID, activity.Title, url, "s3", constant.SystemUser)

	if err = s.imageRepo.Insert(ctx, image); err != nil {
		_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, fileName)

		log.Error().Err(err).Msg("failed to register image")

		return res, fmt.Errorf("failed to register image: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetActivity, activityID)); err != nil {
			log.Error().Err(err).Msg("failed to delete activity from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllActivity)
	}()

	return dto.UploadImageResponse{
		Success:    true,
		URL:        url,
		ActivityID: activityID,
		MimeType:   mimeType,
	}, nil
}
