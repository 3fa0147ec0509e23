// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

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
	"maludy/internal/domains/activity/repository"
	"maludy/internal/domains/activity/service"
	"maludy/internal/domains/booking/receipt"
	repository2 "maludy/internal/domains/booking/repository"
	service2 "maludy/internal/domains/booking/service"
	service3 "maludy/internal/domains/payment/service"
	"maludy/internal/handlers/activity"
	"maludy/internal/handlers/booking"
	"maludy/internal/handlers/payment"
	"maludy/shared/cache"
	"maludy/transport/http"
	"maludy/transport/http/middleware"
	"maludy/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryActivity := repository.New(connection, otelOtel)
	price := repository.NewPrice(connection, otelOtel)
	image := repository.NewImage(connection, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	serviceActivity := service.New(repositoryActivity, price, image, configConfig, redisCache, otelOtel, s3S3)
	app := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	handler := activity.New(serviceActivity, app, otelOtel)
	repositoryBooking := repository2.New(connection, otelOtel)
	renderer := receipt.New(configConfig, s3S3, otelOtel)
	mailerMailer := mailer.New(configConfig, otelOtel)
	producer := kafka.New(configConfig)
	serviceBooking := service2.New(repositoryBooking, repositoryActivity, price, renderer, mailerMailer, producer, configConfig, redisCache, otelOtel)
	bookingHandler := booking.New(serviceBooking, app, otelOtel)
	paypalClient := paypal.New(configConfig, otelOtel)
	servicePayment := service3.New(paypalClient, otelOtel)
	paymentHandler := payment.New(servicePayment, app, otelOtel)
	domainHandlers := router.DomainHandlers{
		Activity: handler,
		Booking:  bookingHandler,
		Payment:  paymentHandler,
	}
	routerRouter := router.New(domainHandlers)
	httpHTTP := http.New(configConfig, routerRouter, app, otelOtel)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, s3.New, kafka.New, mailer.New, paypal.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var activityDomain = wire.NewSet(repository.New, repository.NewPrice, repository.NewImage, service.New)

var bookingDomain = wire.NewSet(repository2.New, receipt.New, service2.New)

var paymentDomain = wire.NewSet(service3.New)

var domains = wire.NewSet(
	activityDomain,
	bookingDomain,
	paymentDomain,
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), activity.New, booking.New, payment.New, router.New)
