package middleware

import (
	"crypto/subtle"
	"net/http"

	"maludy/shared/constant"
	"maludy/shared/failure"
	"maludy/transport/http/response"
)

// APIKey gates the back-office routes behind a static key. Public storefront
// routes never pass through this middleware.
func (a *appMiddleware) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		configured := a.config.App.APIKey
		if configured == "" {
			response.WithError(writer, failure.Unauthorized("API key is not configured"))

			return
		}

		provided := request.Header.Get(constant.RequestHeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(configured)) != 1 {
			response.WithError(writer, failure.Unauthorized("Invalid API key"))

			return
		}

		next.ServeHTTP(writer, request)
	})
}
