// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strconv"

	"photoverify/config"
	"photoverify/internal/delivery/api/middleware"
	"photoverify/internal/delivery/api/router/handler"
	"photoverify/internal/domain/entity"
	"photoverify/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/bytes"
	"go.uber.org/fx"
)

// UploadPath is the photo upload route. It is exempt from the global body limit and
// carries its own, derived from the maximum upload size.
const UploadPath = "/api/v1/submissions"

// multipartOverhead leaves room for the form fields and boundaries around the photo
const multipartOverhead = 64 * bytes.KiB

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	LocationHandler   *handler.LocationHandler
	CatalogHandler    *handler.CatalogHandler
	SubmissionHandler *handler.SubmissionHandler
	ReviewHandler     *handler.ReviewHandler
	AdminHandler      *handler.AdminHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Metrics           *metrics.Recorder `optional:"true"`
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	locationHandler   *handler.LocationHandler
	catalogHandler    *handler.CatalogHandler
	submissionHandler *handler.SubmissionHandler
	reviewHandler     *handler.ReviewHandler
	adminHandler      *handler.AdminHandler
	authMiddleware    *middleware.AuthMiddleware
	metrics           *metrics.Recorder
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		locationHandler:   params.LocationHandler,
		catalogHandler:    params.CatalogHandler,
		submissionHandler: params.SubmissionHandler,
		reviewHandler:     params.ReviewHandler,
		adminHandler:      params.AdminHandler,
		authMiddleware:    params.AuthMiddleware,
		metrics:           params.Metrics,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil && r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Restaurant viewer, reached through the location QR code
	viewerGroup := e.Group("/viewer")
	{
		viewerGroup.GET("/locations/:locationId", r.locationHandler.ViewLocation)
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)
	{
		apiV1.GET("/me", r.authHandler.Me)
		apiV1.GET("/dashboard", r.locationHandler.Dashboard)
	}

	locationsGroup := apiV1.Group("/locations")
	{
		locationsGroup.GET("", r.locationHandler.ListLocations)
		locationsGroup.GET("/nearby", r.locationHandler.FindNearby,
			r.authMiddleware.RequireRole(entity.RoleReviewer, entity.RoleAdmin))
	}

	partnerLocationGroup := apiV1.Group("/partners/:partnerId/locations/:locationId")
	{
		partnerLocationGroup.GET("", r.locationHandler.GetLocationDetail)
		partnerLocationGroup.GET("/qr", r.locationHandler.GetLocationQR)
		partnerLocationGroup.GET("/items/:itemId/requirements", r.submissionHandler.ListRequirementStatuses)
	}

	brandsGroup := apiV1.Group("/brands")
	{
		brandsGroup.GET("", r.catalogHandler.ListBrands)
		brandsGroup.GET("/:brandId", r.catalogHandler.GetBrandCatalog)
	}

	submissionsGroup := apiV1.Group("/submissions")
	{
		submissionsGroup.POST("", r.submissionHandler.Upload,
			echomiddleware.BodyLimit(uploadBodyLimit(r.config.Storage.MaxUploadSize)))
		submissionsGroup.GET("/latest", r.submissionHandler.GetLatest)
		submissionsGroup.GET("/:id", r.submissionHandler.GetSubmission)
		submissionsGroup.GET("/:id/photo", r.submissionHandler.GetPhoto)
	}

	reviewGroup := apiV1.Group("/review")
	reviewGroup.Use(r.authMiddleware.RequireRole(entity.RoleReviewer, entity.RoleAdmin))
	{
		reviewGroup.GET("/pending", r.reviewHandler.ListPending)
		reviewGroup.POST("/:id/decision", r.reviewHandler.Decide)
	}

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/partners", r.adminHandler.ListPartners)
		adminGroup.POST("/partners", r.adminHandler.CreatePartner)
		adminGroup.POST("/partners/:partnerId/locations", r.adminHandler.CreateLocation)

		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.POST("/users", r.adminHandler.CreateUser)
		adminGroup.PUT("/users/:uid/profile", r.adminHandler.UpsertUserProfile)

		adminGroup.POST("/brands", r.adminHandler.CreateBrand)
		adminGroup.POST("/brands/:brandId/items", r.adminHandler.CreateMenuItem)
		adminGroup.POST("/brands/:brandId/items/:itemId/requirements", r.adminHandler.CreateRequirement)
	}
}

func uploadBodyLimit(maxUploadSize string) string {
	limit, err := bytes.Parse(maxUploadSize)
	if err != nil {
		return maxUploadSize
	}

	return strconv.FormatInt(limit+multipartOverhead, 10) + "B"
}
