package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/noah-isme/hours-api/internal/identity"
	"github.com/noah-isme/hours-api/internal/middleware"
	"github.com/noah-isme/hours-api/internal/service"
	"github.com/noah-isme/hours-api/pkg/config"
	"github.com/noah-isme/hours-api/pkg/database"
	appErrors "github.com/noah-isme/hours-api/pkg/errors"
	"github.com/noah-isme/hours-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/hours-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/hours-api/pkg/middleware/requestid"
	"github.com/noah-isme/hours-api/pkg/response"
)

// RouterDeps collects everything the HTTP surface is built from.
type RouterDeps struct {
	Config    *config.Config
	Logger    *zap.Logger
	Metrics   *service.MetricsService
	Directory identity.Directory
	Bucket    middleware.Bucket
	DB        database.Pinger

	Schools    schoolService
	Locations  locationService
	Courses    courseService
	Sessions   sessionService
	Attendance attendanceService
	Exports    exportService
}

// NewRouter builds the gin engine with middleware and every route mounted.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	r := gin.New()
	if cfg.OTEL.Enabled {
		r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	}
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(deps.Logger))
	r.Use(gin.Recovery())
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(deps.Metrics))

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "route not found"))
	})

	ops := NewMetricsHandler(deps.Metrics, deps.DB)
	r.GET("/health", ops.Health)
	r.GET("/ready", ops.Ready)
	r.GET("/metrics", ops.Prometheus)
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	exports := NewExportHandler(deps.Exports)
	exports.RegisterDownload(api)

	secured := api.Group("")
	secured.Use(middleware.Authenticate(deps.Directory, deps.Logger))
	secured.Use(middleware.RateLimit(cfg.RateLimit, deps.Bucket, deps.Metrics, deps.Logger))
	NewSchoolHandler(deps.Schools).Register(secured)
	NewLocationHandler(deps.Locations).Register(secured)
	NewCourseHandler(deps.Courses).Register(secured)
	NewSessionHandler(deps.Sessions).Register(secured)
	NewAttendanceHandler(deps.Attendance).Register(secured)
	exports.Register(secured)

	return r
}

// Server wraps the engine in an http.Server listening on addr.
func Server(addr string, engine *gin.Engine) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
}
