package payment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"maludy/infras/otel"
	"maludy/internal/domains/payment/model/dto"
	"maludy/internal/domains/payment/service"
	"maludy/shared/constant"
	"maludy/shared/validator"
	"maludy/transport/http/middleware"
	"maludy/transport/http/response"
)

type Handler struct {
	service    service.Payment
	middleware middleware.App
	otel       otel.Otel
}

func New(service service.Payment, middleware middleware.App, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Post("/orders", handler.CreateOrder)
		routerGroup.Post("/orders/{orderID}/capture", handler.CaptureOrder)
	})
}

// CreateOrder opens a checkout order with the payment provider.
// @Summary Create a payment order
// @Description Create a provider-side checkout order for the given amount.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Create Order Request"
// @Success 201 {object} response.Data[dto.OrderResponse]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/payments/orders [post]
func (handler *Handler) CreateOrder(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOrder")
	defer scope.End()

	req := dto.CreateOrderRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.CreateOrder(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create payment order")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// CaptureOrder settles a previously created checkout order.
// @Summary Capture a payment order
// @Description Capture the funds of an approved checkout order.
// @Tags Payment
// @Produce json
// @Param orderID path string true "Provider order ID"
// @Success 200 {object} response.Data[dto.OrderResponse]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/payments/orders/{orderID}/capture [post]
func (handler *Handler) CaptureOrder(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CaptureOrder")
	defer scope.End()

	orderID := chi.URLParam(request, constant.RequestParamOrderID)

	req := dto.CaptureOrderRequest{OrderID: orderID}
	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.CaptureOrder(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("orderId", orderID).Msg("failed to capture payment order")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
