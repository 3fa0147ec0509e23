package activity

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"maludy/infras/otel"
	"maludy/internal/domains/activity/model/dto"
	"maludy/internal/domains/activity/service"
	"maludy/shared/constant"
	gDto "maludy/shared/dto"
	"maludy/shared/validator"
	"maludy/transport/http/middleware"
	"maludy/transport/http/response"
)

type Handler struct {
	service    service.Activity
	middleware middleware.App
	otel       otel.Otel
}

func New(service service.Activity, middleware middleware.App, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/activities", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetActivities)
		routerGroup.Get("/search", handler.SearchActivities)
		routerGroup.Get("/{id}", handler.GetActivityByID)
		routerGroup.Get("/{id}/prices", handler.GetPrices)

		routerGroup.Group(func(admin chi.Router) {
			admin.Use(handler.middleware.APIKey)
			admin.Post("/", handler.CreateActivity)
			admin.Post("/{id}/prices", handler.CreatePrices)
			admin.Post("/{id}/images", handler.UploadImage)
		})
	})
}

// CreateActivity registers a new activity in the catalog.
// @Summary Create a new activity
// @Description Create a new activity with its description, schedules and badge.
// @Tags Activity
// @Accept json
// @Produce json
// @Param request body dto.CreateActivityRequest true "Create Activity Request"
// @Success 201 {object} response.Data[dto.CreateActivityResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/activities [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateActivity(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateActivity")
	defer scope.End()

	req := dto.CreateActivityRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create activity")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetActivities lists the catalog, newest first.
// @Summary List activities
// @Description Retrieve the activity cards with pagination.
// @Tags Activity
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Data[dto.GetActivitiesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/activities [get]
func (handler *Handler) GetActivities(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActivities")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	res, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get activities")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SearchActivities searches the catalog by title.
// @Summary Search activities
// @Description Search activity cards by title, ordered alphabetically when a query is present.
// @Tags Activity
// @Produce json
// @Param q query string false "Search query"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Data[dto.SearchActivitiesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/activities/search [get]
func (handler *Handler) SearchActivities(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchActivities")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	query := request.URL.Query().Get(constant.RequestParamQuery)

	res, err := handler.service.Search(ctx, query, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search activities")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetActivityByID returns the full activity detail.
// @Summary Get an activity
// @Description Retrieve one activity with its full description and schedules.
// @Tags Activity
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} response.Data[dto.ActivityResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/activities/{id} [get]
func (handler *Handler) GetActivityByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActivityByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get activity")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreatePrices sets the per-tier price table for an activity.
// @Summary Create activity prices
// @Description Set the five guest-tier prices and age ranges for an activity.
// @Tags Activity
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param request body dto.CreatePriceRequest true "Create Price Request"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/activities/{id}/prices [post]
// @Security ApiKeyAuth
func (handler *Handler) CreatePrices(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePrices")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.CreatePriceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.CreatePrices(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to create activity prices")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Prices created successfully")
}

// GetPrices returns the per-tier price table for an activity.
// @Summary Get activity prices
// @Description Retrieve the five guest-tier prices and age ranges for an activity.
// @Tags Activity
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} response.Data[dto.PriceResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/activities/{id}/prices [get]
func (handler *Handler) GetPrices(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPrices")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.GetPrices(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get activity prices")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UploadImage attaches a base64-encoded image to an activity.
// @Summary Upload an activity image
// @Description Upload a base64-encoded image, with or without a data-URI prefix.
// @Tags Activity
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param request body dto.UploadImageRequest true "Upload Image Request"
// @Success 201 {object} response.Data[dto.UploadImageResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/activities/{id}/images [post]
// @Security ApiKeyAuth
func (handler *Handler) UploadImage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UploadImageRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.UploadImage(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to upload activity image")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}
