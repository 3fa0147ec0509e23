package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"maludy/config"
	"maludy/infras/kafka"
	"maludy/infras/mailer"
	"maludy/infras/otel"
	activityModel "maludy/internal/domains/activity/model"
	activityRepository "maludy/internal/domains/activity/repository"
	"maludy/internal/domains/booking/model"
	"maludy/internal/domains/booking/model/dto"
	"maludy/internal/domains/booking/pricing"
	"maludy/internal/domains/booking/receipt"
	"maludy/internal/domains/booking/repository"
	"maludy/internal/domains/booking/rescode"
	"maludy/shared"
	"maludy/shared/cache"
	"maludy/shared/constant"
	"maludy/shared/failure"
)

const (
	draftCachePrefix = "booking:draft"

	// codeAttempts bounds how often Create retries on a reservation-code
	// collision before giving up with a conflict.
	codeAttempts = 3
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetByNo(ctx context.Context, no string) (dto.BookingResponse, error)
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
	SaveDraft(ctx context.Context, req dto.SaveDraftRequest) (dto.SaveDraftResponse, error)
	GetDraft(ctx context.Context, token string) (dto.DraftResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	activityRepo activityRepository.Activity
	priceRepo    activityRepository.Price
	renderer     receipt.Renderer
	mailer       mailer.Mailer
	producer     kafka.Producer
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	activityRepo activityRepository.Activity,
	priceRepo activityRepository.Price,
	renderer receipt.Renderer,
	mail mailer.Mailer,
	producer kafka.Producer,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		activityRepo: activityRepo,
		priceRepo:    priceRepo,
		renderer:     renderer,
		mailer:       mail,
		producer:     producer,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Create runs the whole booking pipeline: validation, reservation-code
// assignment, persistence, receipt rendering and notifications. The booking is
// committed before the receipt is rendered, so a render failure leaves a valid
// booking without a receipt URL.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	date, err := req.ParseDate()
	if err != nil {
		err = failure.NewValidation(failure.FieldViolation{
			Field:   "date",
			Message: "date must be a calendar day or an RFC 3339 timestamp",
		})

		return res, err
	}

	if violations := req.CrossFieldViolations(date); len(violations) > 0 {
		err = failure.NewValidation(violations...)

		return res, err
	}

	activity, err := s.activityRepo.Get(ctx, shared.FilterByID(req.ActivityID, activityModel.FieldID, activityModel.TableName), activityModel.FieldID, activityModel.FieldTitle)
	if err != nil {
		log.Error().Err(err).Str("activityId", req.ActivityID).Msg("failed to get activity")

		return res, err
	}

	if activity.ID == constant.Empty {
		err = failure.NotFound("activity")

		return res, err
	}

	booking, err := s.insertWithFreshCode(ctx, req, date)
	if err != nil {
		return res, err
	}

	booking.ActivityName = activity.Title

	receiptURL, err := s.renderer.Render(ctx, receiptData(booking))
	if err != nil {
		log.Error().Err(err).Str("no", booking.No).Msg("failed to render receipt")

		return res, err
	}

	if err := s.repo.Update(ctx, map[string]any{model.FieldReceiptURL: receiptURL}, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("no", booking.No).Msg("failed to save receipt url")
	}

	s.notify(ctx, booking, receiptURL)

	res = dto.CreateBookingResponse{
		No:     booking.No,
		PDFURL: receiptURL,
	}

	return res, nil
}

// insertWithFreshCode persists the booking under a newly generated reservation
// code, regenerating on a unique-constraint collision.
func (s *serviceImpl) insertWithFreshCode(ctx context.Context, req dto.CreateBookingRequest, date time.Time) (booking model.Booking, err error) {
	for range codeAttempts {
		no := rescode.Generate(s.cfg.Agency.Initials)

		booking = req.ToModel(no, date, constant.GuestUser)

		err = s.repo.Insert(ctx, booking)
		if err == nil {
			return booking, nil
		}

		if !repository.IsUniqueViolation(err) {
			log.Error().Err(err).Msg("failed to insert booking")

			return booking, err
		}

		log.Warn().Str("no", no).Msg("reservation code collision, regenerating")
	}

	return booking, failure.Conflict("could not assign a unique reservation code")
}

// notify sends the confirmation emails and publishes the booking event. Both
// are best effort: a booking that is already persisted never fails because of
// an outbound notification.
func (s *serviceImpl) notify(ctx context.Context, booking model.Booking, receiptURL string) {
	customer, company, err := buildBookingEmails(s.cfg, booking, booking.ActivityName, receiptURL)
	if err != nil {
		log.Error().Err(err).Str("no", booking.No).Msg("failed to build booking emails")
	} else {
		if _, err := s.mailer.Send(ctx, customer); err != nil {
			log.Error().Err(err).Str("no", booking.No).Msg("failed to send customer email")
		}

		if _, err := s.mailer.Send(ctx, company); err != nil {
			log.Error().Err(err).Str("no", booking.No).Msg("failed to send company email")
		}
	}

	if !s.cfg.Kafka.Enable {
		return
	}

	go func(ctx context.Context) {
		message := kafka.Message{
			Key:   booking.No,
			Value: booking,
		}

		if err := s.producer.SendMessages(ctx, s.cfg.Kafka.Topic.BookingCreated, message); err != nil {
			log.Error().Err(err).Str("no", booking.No).Msg("failed to publish booking created event")
		}
	}(context.WithoutCancel(ctx))
}

func receiptData(booking model.Booking) receipt.Data {
	return receipt.Data{
		ReservationNo:  booking.No,
		ActivityName:   booking.ActivityName,
		Date:           booking.Date.Format(constant.CalendarDayFormat),
		Schedule:       booking.Schedule,
		PickupLocation: booking.PickupLocation,
		PaymentMethod:  booking.PaymentMethod,
		TotalPrice:     booking.TotalPrice,
		Guests: receipt.Guests{
			Seniors:  booking.Seniors,
			Adults:   booking.Adults,
			Youths:   booking.Youths,
			Children: booking.Children,
			Babies:   booking.Babies,
		},
		Customer: receipt.Customer{
			Name:  booking.CustomerName,
			Email: booking.CustomerEmail,
			Phone: booking.CustomerPhone,
		},
	}
}

// GetByNo looks a booking up by reservation code. The code is normalized
// first, so lowercase or whitespace-ridden input still resolves.
func (s *serviceImpl) GetByNo(ctx context.Context, no string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByNo")
	defer scope.End()
	defer scope.TraceIfError(err)

	no = rescode.Normalize(no)
	if no == constant.Empty {
		err = failure.BadRequestFromString("reservation code is required")

		return res, err
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(no, model.FieldNo, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("no", no).Msg("failed to get booking")

		return res, err
	}

	if booking.ID == constant.Empty {
		err = failure.NotFound("booking")

		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

// Quote prices a guest set against an activity's price table without creating
// anything.
func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	price, err := s.priceRepo.Get(ctx, shared.FilterByID(req.ActivityID, activityModel.PriceFieldActivityID, activityModel.PriceTableName))
	if err != nil {
		log.Error().Err(err).Str("activityId", req.ActivityID).Msg("failed to get activity prices")

		return res, err
	}

	if price.ID == constant.Empty {
		err = failure.NotFound("activity prices")

		return res, err
	}

	quote := pricing.ComputeQuote(req.ToCounts(), pricing.UnitPrices{
		Senior: float64(price.SeniorPrice),
		Adult:  float64(price.AdultPrice),
		Youth:  float64(price.YouthsPrice),
		Child:  float64(price.ChildrenPrice),
		Baby:   float64(price.BabiesPrice),
	})

	res.FromQuote(quote)

	return res, nil
}

// SaveDraft stores the wizard state in Redis under the given token, minting a
// fresh token when none is supplied.
func (s *serviceImpl) SaveDraft(ctx context.Context, req dto.SaveDraftRequest) (res dto.SaveDraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.SaveDraft")
	defer scope.End()
	defer scope.TraceIfError(err)

	token := req.Token
	if token == constant.Empty {
		token = uuid.NewString()
	}

	if err = s.cache.Save(ctx, shared.BuildCacheKey(draftCachePrefix, token), req.Draft, s.cfg.Cache.DraftTTL); err != nil {
		log.Error().Err(err).Msg("failed to save booking draft")

		return res, err
	}

	res = dto.SaveDraftResponse{Token: token}

	return res, nil
}

func (s *serviceImpl) GetDraft(ctx context.Context, token string) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetDraft")
	defer scope.End()
	defer scope.TraceIfError(err)

	var draft dto.Draft
	if err = s.cache.Get(ctx, shared.BuildCacheKey(draftCachePrefix, token), &draft); err != nil {
		err = failure.NotFound("booking draft")

		return res, err
	}

	res = dto.DraftResponse{
		Token: token,
		Draft: draft,
	}

	return res, nil
}
