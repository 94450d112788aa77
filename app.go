// @title           UTM Builder API
// @version         1.0
// @description     Builds UTM tagged campaign links and keeps a saved builder form with copy and open actions.

// @contact.name   API Support
// @contact.email  info@bentech.app

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/vit0-9/utm_builder/docs"
	"github.com/vit0-9/utm_builder/handlers"
	"github.com/vit0-9/utm_builder/internal/logging"
	"github.com/vit0-9/utm_builder/pkg/utils/builder"
)

const shutdownTimeout = 5 * time.Second

// App encapsulates all the components of the application
type App struct {
	Router          *gin.Engine
	URLUtilHandlers *handlers.URLUtilitiesHandlers
	BuilderHandlers *handlers.UTMBuilderHandlers
	HealthHandler   *handlers.HealthHandler
	logger          *slog.Logger
}

// NewApp creates and initializes a new application instance
func NewApp(controller *builder.Controller, logger *slog.Logger) (*App, error) {
	if controller == nil {
		return nil, errors.New("new app: controller is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()
	router.Use(logging.GinLogger(logger), gin.Recovery())
	// the API only listens locally; no proxy headers are trusted
	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	app := &App{
		Router:          router,
		URLUtilHandlers: handlers.NewURLUtilitiesHandlers(),
		BuilderHandlers: handlers.NewUTMBuilderHandlers(controller),
		HealthHandler:   handlers.NewHealthHandler(),
		logger:          logger,
	}

	app.setupRoutes()
	return app, nil
}

// setupRoutes defines all the application routes
func (app *App) setupRoutes() {
	app.Router.GET("/api/v1/health", app.HealthHandler.HealthCheckHandler)

	urlUtilV1 := app.Router.Group("/api/v1/url")
	{
		urlUtilV1.POST("/generate-utm", app.URLUtilHandlers.GenerateUTMHandler)
	}

	utmV1 := app.Router.Group("/api/v1/utm")
	{
		utmV1.GET("/presets", app.BuilderHandlers.ListPresetsHandler)
		utmV1.POST("/presets/:key/apply", app.BuilderHandlers.ApplyPresetHandler)
		utmV1.GET("/state", app.BuilderHandlers.GetStateHandler)
		utmV1.PATCH("/state", app.BuilderHandlers.UpdateStateHandler)
		utmV1.POST("/reset", app.BuilderHandlers.ResetHandler)
		utmV1.POST("/copy/url", app.BuilderHandlers.CopyURLHandler)
		utmV1.POST("/copy/tags", app.BuilderHandlers.CopyTagsHandler)
		utmV1.POST("/open", app.BuilderHandlers.OpenHandler)
	}

	// Swagger UI is served from the host root, not under @BasePath
	app.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
}

// Start runs the HTTP server until ctx is cancelled, then shuts it down.
func (app *App) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("API server starting", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	app.logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
