package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"maludy/infras/otel/mocks"
	"maludy/infras/paypal"
	paypalMocks "maludy/infras/paypal/mocks"
	"maludy/internal/domains/payment/model/dto"
	"maludy/internal/domains/payment/service"
	"maludy/shared/failure"
)

func TestPaymentService_CreateOrder(t *testing.T) {
	t.Run("creates an order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := paypalMocks.NewMockClient(ctrl)
		svc := service.New(client, mocks.NewOtel())

		client.EXPECT().CreateOrder(gomock.Any(), 120, "Saona Island - 2 adults").
			Return(paypal.Order{ID: "ord-1", Status: "CREATED"}, nil)

		res, err := svc.CreateOrder(context.Background(), dto.CreateOrderRequest{
			Price:       120,
			Description: "Saona Island - 2 adults",
		})
		require.NoError(t, err)

		assert.Equal(t, "ord-1", res.ID)
		assert.Equal(t, "CREATED", res.Status)
	})

	t.Run("provider failure surfaces as bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := paypalMocks.NewMockClient(ctrl)
		svc := service.New(client, mocks.NewOtel())

		client.EXPECT().CreateOrder(gomock.Any(), 120, gomock.Any()).
			Return(paypal.Order{}, failure.BadGateway("paypal unreachable"))

		_, err := svc.CreateOrder(context.Background(), dto.CreateOrderRequest{Price: 120, Description: "Saona Island"})
		assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	})
}

func TestPaymentService_CaptureOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := paypalMocks.NewMockClient(ctrl)
	svc := service.New(client, mocks.NewOtel())

	client.EXPECT().CaptureOrder(gomock.Any(), "ord-1").
		Return(paypal.Order{ID: "ord-1", Status: "COMPLETED"}, nil)

	res, err := svc.CaptureOrder(context.Background(), dto.CaptureOrderRequest{OrderID: "ord-1"})
	require.NoError(t, err)

	assert.Equal(t, "COMPLETED", res.Status)
}
