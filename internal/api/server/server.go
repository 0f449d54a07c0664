package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "cn7-transcriptor/docs"
	"cn7-transcriptor/internal/api/middleware"
	"cn7-transcriptor/internal/api/v1/handlers"
	v1routes "cn7-transcriptor/internal/api/v1/routes"
	"cn7-transcriptor/internal/app/metrics"
	"cn7-transcriptor/internal/app/preview"
	"cn7-transcriptor/internal/app/session"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Config represents API server configuration
type Config struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Environment  string
	MaxUploadMB  int64
}

// Server represents the API server
type Server struct {
	config     Config
	router     *gin.Engine
	httpServer *http.Server
	store      *session.Store
	logger     *zap.Logger
	errs       chan error
}

// NewServer creates a new API server
func NewServer(
	config Config,
	store *session.Store,
	previews *preview.Manager,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch config.Environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	// uploads above this spill to temp files instead of memory
	router.MaxMultipartMemory = 32 << 20

	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogging(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"sessions":  store.Len(),
			"previews":  previews.Live(),
			"timestamp": time.Now().Unix(),
		})
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	previewHandler := handlers.NewPreviewHandler(previews, logger)
	router.GET("/preview/:handle", previewHandler.Serve)
	router.HEAD("/preview/:handle", previewHandler.Serve)

	api := router.Group("/api")
	{
		v1 := api.Group("/v1")
		v1routes.RegisterRoutes(v1, &v1routes.Handlers{
			Sessions: handlers.NewSessionHandler(store, config.MaxUploadMB<<20, logger),
			Formats:  handlers.NewFormatsHandler(config.MaxUploadMB),
		})
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "CN7 Transcriptor API",
			"version": "1.0",
			"endpoints": gin.H{
				"health":   "/health",
				"metrics":  "/metrics",
				"docs":     "/swagger/index.html",
				"formats":  "/api/v1/formats",
				"sessions": "/api/v1/sessions",
			},
		})
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler:      router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	return &Server{
		config:     config,
		router:     router,
		httpServer: httpServer,
		store:      store,
		logger:     logger,
		errs:       make(chan error, 1),
	}
}

// Start starts listening in the background. A listen failure is delivered
// on Errors.
func (s *Server) Start() error {
	s.logger.Info("Starting API server",
		zap.String("host", s.config.Host),
		zap.Int("port", s.config.Port),
		zap.String("environment", s.config.Environment),
	)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Failed to start server", zap.Error(err))
			s.errs <- err
		}
	}()

	return nil
}

// Errors reports a failure of the listener started by Start.
func (s *Server) Errors() <-chan error {
	return s.errs
}

// Shutdown stops accepting requests, waits for in-flight ones and closes
// every session so no preview handle outlives the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")

	err := s.httpServer.Shutdown(ctx)
	s.store.CloseAll()
	if err != nil {
		s.logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	s.logger.Info("API server shutdown complete")
	return nil
}

// Router returns the Gin router (useful for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}
