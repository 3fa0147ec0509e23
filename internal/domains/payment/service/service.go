package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"maludy/infras/otel"
	"maludy/infras/paypal"
	"maludy/internal/domains/payment/model/dto"
	"maludy/shared/constant"
)

// Payment brokers checkout orders with the payment provider. Capturing an
// order settles the charge on the provider side only; the booking keeps its
// own payment status until reconciliation confirms the funds.
type Payment interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (dto.OrderResponse, error)
	CaptureOrder(ctx context.Context, req dto.CaptureOrderRequest) (dto.OrderResponse, error)
}

type serviceImpl struct {
	client paypal.Client
	otel   otel.Otel
}

func New(client paypal.Client, otel otel.Otel) Payment {
	return &serviceImpl{
		client: client,
		otel:   otel,
	}
}

func (s *serviceImpl) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.CreateOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, err := s.client.CreateOrder(ctx, req.Price, req.Description)
	if err != nil {
		log.Error().Err(err).Int("price", req.Price).Msg("failed to create payment order")

		return res, err
	}

	res.FromOrder(order)

	return res, nil
}

func (s *serviceImpl) CaptureOrder(ctx context.Context, req dto.CaptureOrderRequest) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.CaptureOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, err := s.client.CaptureOrder(ctx, req.OrderID)
	if err != nil {
		log.Error().Err(err).Str("orderId", req.OrderID).Msg("failed to capture payment order")

		return res, err
	}

	res.FromOrder(order)

	return res, nil
}
