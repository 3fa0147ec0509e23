//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"maludy/config"
	"maludy/infras/kafka"
	"maludy/infras/mailer"
	"maludy/infras/otel"
	"maludy/infras/paypal"
	"maludy/infras/postgres"
	"maludy/infras/redis"
	"maludy/infras/s3"
	"maludy/shared/cache"
	"maludy/transport/http"
	"maludy/transport/http/middleware"
	"maludy/transport/http/router"

	activityRepository "maludy/internal/domains/activity/repository"
	activityService "maludy/internal/domains/activity/service"
	"maludy/internal/domains/booking/receipt"
	bookingRepository "maludy/internal/domains/booking/repository"
	bookingService "maludy/internal/domains/booking/service"
	paymentService "maludy/internal/domains/payment/service"

	activityHandler "maludy/internal/handlers/activity"
	bookingHandler "maludy/internal/handlers/booking"
	paymentHandler "maludy/internal/handlers/payment"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
	kafka.New,
	mailer.New,
	paypal.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var activityDomain = wire.NewSet(
	activityRepository.New,
	activityRepository.NewPrice,
	activityRepository.NewImage,
	activityService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	receipt.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentService.New,
)

var domains = wire.NewSet(
	activityDomain,
	bookingDomain,
	paymentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	activityHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
