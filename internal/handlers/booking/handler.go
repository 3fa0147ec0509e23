package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"maludy/infras/otel"
	"maludy/internal/domains/booking/model/dto"
	"maludy/internal/domains/booking/service"
	"maludy/shared/constant"
	"maludy/shared/validator"
	"maludy/transport/http/middleware"
	"maludy/transport/http/response"
)

type Handler struct {
	service    service.Booking
	middleware middleware.App
	otel       otel.Otel
}

func New(service service.Booking, middleware middleware.App, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Post("/quote", handler.Quote)
		routerGroup.Put("/draft", handler.SaveDraft)
		routerGroup.Get("/draft/{token}", handler.GetDraft)
		routerGroup.Get("/{no}", handler.GetBookingByNo)
	})
}

// CreateBooking submits a booking and returns its reservation code and receipt.
// @Summary Create a booking
// @Description Validate the booking, assign a reservation code, persist it and render the PDF receipt.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.CreateBookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created: " + res.No)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookingByNo looks a booking up by its reservation code.
// @Summary Get a booking
// @Description Retrieve a booking by reservation code. The code is case and whitespace insensitive.
// @Tags Booking
// @Produce json
// @Param no path string true "Reservation code"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{no} [get]
func (handler *Handler) GetBookingByNo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByNo")
	defer scope.End()

	no := chi.URLParam(request, constant.RequestParamNo)

	res, err := handler.service.GetByNo(ctx, no)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("no", no).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Quote prices a guest set against an activity without creating a booking.
// @Summary Quote a booking
// @Description Compute the total price for a guest set against an activity's price table.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Quote Request"
// @Success 200 {object} response.Data[dto.QuoteResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/quote [post]
func (handler *Handler) Quote(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Quote")
	defer scope.End()

	req := dto.QuoteRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Quote(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SaveDraft stores the booking wizard state under an opaque token.
// @Summary Save a booking draft
// @Description Persist partial booking state; a token is minted when none is supplied.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.SaveDraftRequest true "Save Draft Request"
// @Success 200 {object} response.Data[dto.SaveDraftResponse]
// @Failure 400 {object} response.Error
// @Router /v1/bookings/draft [put]
func (handler *Handler) SaveDraft(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveDraft")
	defer scope.End()

	req := dto.SaveDraftRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.SaveDraft(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save booking draft")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetDraft returns the booking wizard state stored under a token.
// @Summary Get a booking draft
// @Description Retrieve previously saved booking wizard state.
// @Tags Booking
// @Produce json
// @Param token path string true "Draft token"
// @Success 200 {object} response.Data[dto.DraftResponse]
// @Failure 404 {object} response.Error
// @Router /v1/bookings/draft/{token} [get]
func (handler *Handler) GetDraft(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDraft")
	defer scope.End()

	token := chi.URLParam(request, constant.RequestParamToken)

	res, err := handler.service.GetDraft(ctx, token)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking draft")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
