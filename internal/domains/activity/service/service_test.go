package service_test

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"maludy/config"
	"maludy/infras/otel/mocks"
	s3Mocks "maludy/infras/s3/mocks"
	activityMocks "maludy/internal/domains/activity/mocks"
	"maludy/internal/domains/activity/model"
	"maludy/internal/domains/activity/model/dto"
	"maludy/internal/domains/activity/service"
	cacheMocks "maludy/shared/cache/mocks"
	gDto "maludy/shared/dto"
	"maludy/shared/failure"
)

type serviceFixture struct {
	repo      *activityMocks.MockActivity
	priceRepo *activityMocks.MockPrice
	imageRepo *activityMocks.MockImage
	cache     *cacheMocks.MockRedisCache
	s3        *s3Mocks.MockS3
	svc       service.Activity
}

func newFixture(t *testing.T) serviceFixture {
	ctrl := gomock.NewController(t)

	repo := activityMocks.NewMockActivity(ctrl)
	priceRepo := activityMocks.NewMockPrice(ctrl)
	imageRepo := activityMocks.NewMockImage(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "maludy-media"

	// Cache population and invalidation run on detached goroutines.
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return serviceFixture{
		repo:      repo,
		priceRepo: priceRepo,
		imageRepo: imageRepo,
		cache:     mockCache,
		s3:        mockS3,
		svc:       service.New(repo, priceRepo, imageRepo, cfg, mockCache, mockOtel, mockS3),
	}
}

func TestActivityService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f serviceFixture)
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func(f serviceFixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "repository error",
			setupMock: func(f serviceFixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			req := dto.CreateActivityRequest{
				Title:            "Saona Island Tour",
				Description:      "Full day catamaran tour",
				ShortDescription: "Catamaran day trip",
				Location:         "Punta Cana",
				Duration:         "8h",
				Rating:           4.8,
				Reviews:          212,
				Languages:        "ES",
				Schedules:        []string{"07:30", "08:30"},
			}

			res, err := f.svc.Create(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.True(t, res.Created)
			assert.NotEmpty(t, res.ActivityID)
		})
	}
}

func TestActivityService_GetAll(t *testing.T) {
	f := newFixture(t)

	cards := []model.Card{
		{ID: "a1", Title: "Saona Island Tour", AdultPrice: 89, Image: "https://cdn/a1.jpg"},
		{ID: "a2", Title: "Catalina Snorkel", AdultPrice: 75},
	}

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(12, nil)
	f.repo.EXPECT().GetCards(gomock.Any(), gomock.Any()).Return(cards, nil)

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10})

	assert.NoError(t, err)
	assert.Len(t, res.Activities, 2)
	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Equal(t, 89, res.Activities[0].Price)
}

func TestActivityService_Search(t *testing.T) {
	f := newFixture(t)

	cards := []model.Card{
		{
			ID:          "a1",
			Title:       "Saona Island Tour",
			Rating:      4.7,
			Reviews:     180,
			Badge:       model.BadgeNone,
			AdultPrice:  89,
			SeniorPrice: 80,
			YouthsPrice: 60,
		},
	}

	f.repo.EXPECT().CountSearch(gomock.Any(), "saona").Return(1, nil)
	f.repo.EXPECT().SearchCards(gomock.Any(), "saona", gomock.Any()).Return(cards, nil)

	res, err := f.svc.Search(context.Background(), "  saona ", gDto.QueryParams{Page: 1, Limit: 10})

	assert.NoError(t, err)
	assert.Len(t, res.Activities, 1)
	// Well-reviewed activities are promoted to POPULAR in search results.
	assert.Equal(t, model.BadgePopular, res.Activities[0].Badge)
	// The card shows the lowest positive tier price.
	assert.Equal(t, 60, res.Activities[0].Price)
}

func TestActivityService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f serviceFixture)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "found",
			setupMock: func(f serviceFixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Activity{ID: "a1", Title: "Saona"}, nil)
			},
		},
		{
			name: "not found",
			setupMock: func(f serviceFixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Activity{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Get(context.Background(), "a1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "a1", res.ID)
		})
	}
}

func TestActivityService_CreatePrices(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f serviceFixture)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			setupMock: func(f serviceFixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.priceRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.priceRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "activity does not exist",
			setupMock: func(f serviceFixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "price table already exists",
			setupMock: func(f serviceFixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.priceRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			req := dto.CreatePriceRequest{
				SeniorPrice:   45,
				AdultPrice:    50,
				YouthsPrice:   42,
				ChildrenPrice: 35,
				AdultAge:      dto.AgeRange{18, 64},
			}

			err := f.svc.CreatePrices(context.Background(), "a1", req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestActivityService_GetPrices(t *testing.T) {
	f := newFixture(t)

	price := model.Price{
		ID:          "p1",
		ActivityID:  "a1",
		AdultPrice:  50,
		SeniorPrice: 45,
		AdultAgeMin: 18,
		AdultAgeMax: 64,
	}

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.priceRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(price, nil)

	res, err := f.svc.GetPrices(context.Background(), "a1")

	assert.NoError(t, err)
	assert.Equal(t, "a1", res.ActivityID)
	assert.Equal(t, 50, res.AdultPrice)
	assert.Equal(t, dto.AgeRange{18, 64}, res.AdultAge)
}

func TestActivityService_UploadImage(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("fake-image-bytes"))

	tests := []struct {
		name      string
		req       dto.UploadImageRequest
		setupMock func(f serviceFixture)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful upload with data URI",
			req:  dto.UploadImageRequest{Image: "data:image/png;base64," + payload, Width: 800, Height: 600},
			setupMock: func(f serviceFixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Activity{ID: "a1", Title: "Saona"}, nil)
				f.s3.EXPECT().UploadFileBytes(gomock.Any(), "maludy-media", model.EntityName, gomock.Any(), "image/png", gomock.Any()).
					Return("https://cdn/a1.png", nil)
				f.imageRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "missing mime type without data URI",
			req:  dto.UploadImageRequest{Image: payload},
			setupMock: func(f serviceFixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Activity{ID: "a1", Title: "Saona"}, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "activity not found",
			req:  dto.UploadImageRequest{Image: "data:image/png;base64," + payload},
			setupMock: func(f serviceFixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Activity{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.UploadImage(context.Background(), "a1", tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				return
			}

			assert.NoError(t, err)
			assert.True(t, res.Success)
			assert.Equal(t, "https://cdn/a1.png", res.URL)
			assert.Equal(t, "image/png", res.MimeType)
		})
	}
}
