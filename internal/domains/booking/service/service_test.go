package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"maludy/config"
	kafkaMocks "maludy/infras/kafka/mocks"
	mailerMocks "maludy/infras/mailer/mocks"
	"maludy/infras/otel/mocks"
	activityMocks "maludy/internal/domains/activity/mocks"
	activityModel "maludy/internal/domains/activity/model"
	bookingMocks "maludy/internal/domains/booking/mocks"
	"maludy/internal/domains/booking/model"
	"maludy/internal/domains/booking/model/dto"
	"maludy/internal/domains/booking/service"
	cacheMocks "maludy/shared/cache/mocks"
	"maludy/shared/failure"
)

type serviceFixture struct {
	repo         *bookingMocks.MockBooking
	activityRepo *activityMocks.MockActivity
	priceRepo    *activityMocks.MockPrice
	renderer     *bookingMocks.MockRenderer
	mailer       *mailerMocks.MockMailer
	producer     *kafkaMocks.MockProducer
	cache        *cacheMocks.MockRedisCache
	svc          service.Booking
}

func newFixture(t *testing.T) serviceFixture {
	ctrl := gomock.NewController(t)

	repo := bookingMocks.NewMockBooking(ctrl)
	activityRepo := activityMocks.NewMockActivity(ctrl)
	priceRepo := activityMocks.NewMockPrice(ctrl)
	renderer := bookingMocks.NewMockRenderer(ctrl)
	mockMailer := mailerMocks.NewMockMailer(ctrl)
	producer := kafkaMocks.NewMockProducer(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Agency.Name = "Maludy Tour"
	cfg.Agency.Initials = "MT"
	cfg.Agency.Email = "maludytour@gmail.com"
	cfg.Cache.DraftTTL = 86400

	// Event publishing runs on a detached goroutine; Kafka stays disabled in
	// tests so assertions never race it.
	cfg.Kafka.Enable = false

	return serviceFixture{
		repo:         repo,
		activityRepo: activityRepo,
		priceRepo:    priceRepo,
		renderer:     renderer,
		mailer:       mockMailer,
		producer:     producer,
		cache:        mockCache,
		svc:          service.New(repo, activityRepo, priceRepo, renderer, mockMailer, producer, cfg, mockCache, mocks.NewOtel()),
	}
}

func validCreateRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		ActivityID:     "a1",
		CustomerName:   "Jane Roe",
		CustomerEmail:  "jane@example.com",
		CustomerPhone:  "+18095551234",
		Date:           time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		Schedule:       "9:00 AM",
		PickupLocation: "Bavaro",
		Adults:         2,
		Children:       1,
		TotalPrice:     120,
		PaymentMethod:  model.PaymentMethodCash,
	}
}

func TestBookingService_Create(t *testing.T) {
	t.Run("successful booking", func(t *testing.T) {
		f := newFixture(t)

		f.activityRepo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(activityModel.Activity{ID: "a1", Title: "Saona Island"}, nil)

		var inserted model.Booking
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				inserted = booking
				return nil
			})

		f.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/receipts/MT-ABCD2345.pdf", nil)

		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		// One email to the customer, one to the agency.
		f.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return("id", nil).Times(2)

		res, err := f.svc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)

		assert.Regexp(t, `^MT-[A-Z2-9]{8}$`, res.No)
		assert.Equal(t, inserted.No, res.No)
		assert.Equal(t, "https://cdn.example.com/receipts/MT-ABCD2345.pdf", res.PDFURL)
		assert.Equal(t, model.PaymentStatusPending, inserted.PaymentStatus)
	})

	t.Run("activity does not exist", func(t *testing.T) {
		f := newFixture(t)

		f.activityRepo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(activityModel.Activity{}, nil)

		_, err := f.svc.Create(context.Background(), validCreateRequest())
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("unparseable date", func(t *testing.T) {
		f := newFixture(t)

		req := validCreateRequest()
		req.Date = "next tuesday"

		_, err := f.svc.Create(context.Background(), req)

		var validation *failure.Validation
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "date", validation.Violations[0].Field)
	})

	t.Run("children without chaperone and past date reported together", func(t *testing.T) {
		f := newFixture(t)

		req := validCreateRequest()
		req.Date = "2020-01-01"
		req.Adults = 0
		req.Seniors = 0

		_, err := f.svc.Create(context.Background(), req)

		var validation *failure.Validation
		require.ErrorAs(t, err, &validation)
		require.Len(t, validation.Violations, 2)
		assert.Equal(t, "date", validation.Violations[0].Field)
		assert.Equal(t, "adults", validation.Violations[1].Field)
	})

	t.Run("empty party", func(t *testing.T) {
		f := newFixture(t)

		req := validCreateRequest()
		req.Adults = 0
		req.Children = 0

		_, err := f.svc.Create(context.Background(), req)

		var validation *failure.Validation
		require.ErrorAs(t, err, &validation)
		require.Len(t, validation.Violations, 1)
		assert.Equal(t, "adults", validation.Violations[0].Field)
	})

	t.Run("reservation code collision retries with a fresh code", func(t *testing.T) {
		f := newFixture(t)

		f.activityRepo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(activityModel.Activity{ID: "a1", Title: "Saona Island"}, nil)

		var codes []string
		uniqueErr := &pq.Error{Code: pq.ErrorCode("23505")}
		first := f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				codes = append(codes, booking.No)
				return uniqueErr
			})
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).After(first).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				codes = append(codes, booking.No)
				return nil
			})

		f.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return("https://cdn.example.com/r.pdf", nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return("id", nil).Times(2)

		res, err := f.svc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)

		require.Len(t, codes, 2)
		assert.NotEqual(t, codes[0], codes[1])
		assert.Equal(t, codes[1], res.No)
	})

	t.Run("collisions exhausted", func(t *testing.T) {
		f := newFixture(t)

		f.activityRepo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(activityModel.Activity{ID: "a1", Title: "Saona Island"}, nil)

		uniqueErr := &pq.Error{Code: pq.ErrorCode("23505")}
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(uniqueErr).Times(3)

		_, err := f.svc.Create(context.Background(), validCreateRequest())
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("render failure after persistence surfaces the error", func(t *testing.T) {
		f := newFixture(t)

		f.activityRepo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(activityModel.Activity{ID: "a1", Title: "Saona Island"}, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return("", errors.New("pdf engine down"))

		_, err := f.svc.Create(context.Background(), validCreateRequest())
		assert.Error(t, err)
	})

	t.Run("resubmission creates a second booking with its own code", func(t *testing.T) {
		f := newFixture(t)

		f.activityRepo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(activityModel.Activity{ID: "a1", Title: "Saona Island"}, nil).Times(2)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		f.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return("https://cdn.example.com/r.pdf", nil).Times(2)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		f.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return("id", nil).Times(4)

		req := validCreateRequest()

		first, err := f.svc.Create(context.Background(), req)
		require.NoError(t, err)

		second, err := f.svc.Create(context.Background(), req)
		require.NoError(t, err)

		assert.NotEqual(t, first.No, second.No)
	})

	t.Run("email failure does not fail the booking", func(t *testing.T) {
		f := newFixture(t)

		f.activityRepo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(activityModel.Activity{ID: "a1", Title: "Saona Island"}, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return("https://cdn.example.com/r.pdf", nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", errors.New("smtp refused")).Times(2)

		res, err := f.svc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)
		assert.NotEmpty(t, res.No)
	})
}

func TestBookingService_GetByNo(t *testing.T) {
	t.Run("normalizes the reservation code before lookup", func(t *testing.T) {
		f := newFixture(t)

		booking := model.Booking{
			ID:             "b1",
			No:             "MT-ABCD2345",
			ActivityName:   "Saona Island",
			CustomerName:   "Jane Roe",
			CustomerEmail:  "jane@example.com",
			CustomerPhone:  "+18095551234",
			Date:           time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
			Schedule:       "9:00 AM",
			PickupLocation: "Bavaro",
			Adults:         2,
			PaymentMethod:  model.PaymentMethodCash,
			PaymentStatus:  "paid",
			TotalPrice:     120,
		}

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter any, _ ...string) (model.Booking, error) {
				return booking, nil
			})

		res, err := f.svc.GetByNo(context.Background(), "  mt-abcd2345 ")
		require.NoError(t, err)

		assert.Equal(t, "MT-ABCD2345", res.No)
		assert.Equal(t, "Saona Island", res.ActivityName)
		assert.Equal(t, model.PaymentStatusPaid, res.PaymentStatus)
		assert.Equal(t, 2, res.Guests.Adults)
		assert.Equal(t, "Jane Roe", res.Customer.Name)
	})

	t.Run("unknown code", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := f.svc.GetByNo(context.Background(), "MT-ZZZZZZZZ")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("blank code", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.GetByNo(context.Background(), "   ")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestBookingService_Quote(t *testing.T) {
	t.Run("prices the party", func(t *testing.T) {
		f := newFixture(t)

		f.priceRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(activityModel.Price{
				ID:            "p1",
				ActivityID:    "a1",
				SeniorPrice:   50,
				AdultPrice:    50,
				YouthsPrice:   40,
				ChildrenPrice: 35,
				BabiesPrice:   0,
			}, nil)

		res, err := f.svc.Quote(context.Background(), dto.QuoteRequest{
			ActivityID: "a1",
			GuestCounts: dto.GuestCounts{
				Adults:   1,
				Children: 2,
				Babies:   1,
			},
		})
		require.NoError(t, err)

		assert.Equal(t, 120, res.TotalPrice)
		assert.Equal(t, 4, res.TotalPeople)
		assert.Equal(t, 3, res.PayingPeople)
	})

	t.Run("no price table for the activity", func(t *testing.T) {
		f := newFixture(t)

		f.priceRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activityModel.Price{}, nil)

		_, err := f.svc.Quote(context.Background(), dto.QuoteRequest{ActivityID: "missing"})
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_Drafts(t *testing.T) {
	t.Run("mints a token on first save", func(t *testing.T) {
		f := newFixture(t)

		var savedKey string
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 86400).
			DoAndReturn(func(_ context.Context, key string, _ any, _ int) error {
				savedKey = key
				return nil
			})

		res, err := f.svc.SaveDraft(context.Background(), dto.SaveDraftRequest{
			Draft: dto.Draft{ActivityID: "a1"},
		})
		require.NoError(t, err)

		assert.NotEmpty(t, res.Token)
		assert.Equal(t, "booking:draft:"+res.Token, savedKey)
	})

	t.Run("reuses the supplied token", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Save(gomock.Any(), "booking:draft:tok-1", gomock.Any(), 86400).Return(nil)

		res, err := f.svc.SaveDraft(context.Background(), dto.SaveDraftRequest{
			Token: "tok-1",
			Draft: dto.Draft{Adults: 2},
		})
		require.NoError(t, err)
		assert.Equal(t, "tok-1", res.Token)
	})

	t.Run("returns the stored draft", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "booking:draft:tok-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*(value.(*dto.Draft)) = dto.Draft{ActivityID: "a1", Adults: 2}
				return nil
			})

		res, err := f.svc.GetDraft(context.Background(), "tok-1")
		require.NoError(t, err)

		assert.Equal(t, "a1", res.ActivityID)
		assert.Equal(t, 2, res.Adults)
	})

	t.Run("missing draft", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "booking:draft:tok-x", gomock.Any()).
			Return(errors.New("redis: nil"))

		_, err := f.svc.GetDraft(context.Background(), "tok-x")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
