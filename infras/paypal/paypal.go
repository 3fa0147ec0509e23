package paypal

//go:generate go run go.uber.org/mock/mockgen -source=./paypal.go -destination=./mocks/paypal_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"maludy/config"
	"maludy/infras/otel"
	"maludy/shared/constant"
	"maludy/shared/failure"
)

const (
	otelAttrOrderID = "order_id"

	tokenPath  = "/v1/oauth2/token"
	ordersPath = "/v2/checkout/orders"

	requestTimeout = 30 * time.Second
)

type Order struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type Client interface {
	CreateOrder(ctx context.Context, amount int, description string) (Order, error)
	CaptureOrder(ctx context.Context, orderID string) (Order, error)
}

type clientImpl struct {
	config *config.Config
	http   *http.Client
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) Client {
	return &clientImpl{
		config: config,
		http:   &http.Client{Timeout: requestTimeout},
		otel:   otel,
	}
}

func (c *clientImpl) CreateOrder(ctx context.Context, amount int, description string) (order Order, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelPaymentScopeName, constant.OtelPaymentScopeName+".CreateOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	token, err := c.accessToken(ctx)
	if err != nil {
		return Order{}, err
	}

	payload := map[string]any{
		"intent": "CAPTURE",
		"purchase_units": []map[string]any{
			{
				"description": description,
				"amount": map[string]any{
					"currency_code": c.config.External.PayPal.Currency,
					"value":         strconv.Itoa(amount),
				},
			},
		},
	}

	order, err = c.postOrder(ctx, token, ordersPath, payload)
	if err != nil {
		return Order{}, err
	}

	scope.SetAttribute(otelAttrOrderID, order.ID)

	return order, nil
}

func (c *clientImpl) CaptureOrder(ctx context.Context, orderID string) (order Order, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelPaymentScopeName, constant.OtelPaymentScopeName+".CaptureOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrOrderID, orderID)

	token, err := c.accessToken(ctx)
	if err != nil {
		return Order{}, err
	}

	capturePath := fmt.Sprintf("%s/%s/capture", ordersPath, orderID)

	return c.postOrder(ctx, token, capturePath, nil)
}

func (c *clientImpl) accessToken(ctx context.Context) (token string, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelPaymentScopeName, constant.OtelPaymentScopeName+".accessToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	endpoint := c.config.External.PayPal.APIBase + tokenPath
	body := strings.NewReader("grant_type=client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to build token request: %w", err)
	}

	req.SetBasicAuth(c.config.External.PayPal.ClientID, c.config.External.PayPal.Secret)
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeForm)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("Failed to request PayPal access token")

		return constant.Empty, failure.BadGateway("payment provider unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status", resp.StatusCode).Msg("PayPal token request rejected")

		return constant.Empty, failure.BadGateway("payment provider rejected credentials")
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
	}

	if err = json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return constant.Empty, fmt.Errorf("failed to decode token response: %w", err)
	}

	return tokenResponse.AccessToken, nil
}

func (c *clientImpl) postOrder(ctx context.Context, token, path string, payload any) (order Order, err error) {
	var body io.Reader

	if payload != nil {
		jsonPayload, err := json.Marshal(payload)
		if err != nil {
			return Order{}, fmt.Errorf("failed to marshal order payload: %w", err)
		}

		body = bytes.NewReader(jsonPayload)
	}

	endpoint := c.config.External.PayPal.APIBase + path

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return Order{}, fmt.Errorf("failed to build order request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to reach PayPal")

		return Order{}, failure.BadGateway("payment provider unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Error().Int("status", resp.StatusCode).Str("path", path).Msg("PayPal order request rejected")

		return Order{}, failure.BadGateway("payment provider rejected order")
	}

	if err = json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return Order{}, fmt.Errorf("failed to decode order response: %w", err)
	}

	return order, nil
}
