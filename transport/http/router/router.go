package router

import (
	"github.com/go-chi/chi/v5"

	"maludy/internal/handlers/activity"
	"maludy/internal/handlers/booking"
	"maludy/internal/handlers/payment"
)

type DomainHandlers struct {
	Activity activity.Handler
	Booking  booking.Handler
	Payment  payment.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Activity.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
