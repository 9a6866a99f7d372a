package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/alimikegami/catalog-service/config"
	"github.com/alimikegami/catalog-service/internal/controller"
	"github.com/alimikegami/catalog-service/internal/infrastructure/tracing"
	appmiddleware "github.com/alimikegami/catalog-service/internal/middleware"
	"github.com/alimikegami/catalog-service/internal/repository"
	"github.com/alimikegami/catalog-service/internal/service"
	"github.com/alimikegami/catalog-service/pkg/clock"
	"github.com/alimikegami/catalog-service/pkg/response"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

type App struct {
	DB        *sqlx.DB
	Config    *config.Config
	Server    *echo.Echo
	Publisher service.EventPublisher
	Clock     clock.Clock
	Tracer    trace.Tracer

	registry       *prometheus.Registry
	metrics        *echo.Echo
	tracerProvider *sdktrace.TracerProvider
}

// ConfigureLogger installs the global JSON logger at the given level,
// falling back to info.
func ConfigureLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// NewServer wires repositories, services and routes into an echo instance
// without starting it.
func (app *App) NewServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.Recover())
	e.Use(appmiddleware.Logger)
	if app.Tracer != nil {
		e.Use(appmiddleware.Tracing(app.Tracer))
	}

	app.registry = prometheus.NewRegistry()
	app.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Registerer: app.registry,
	}))

	g := e.Group("/api/v1")

	repo := repository.CreateNewRepository(app.DB)
	catalogSvc := service.CreateNewService(repo, app.Publisher, app.Clock)
	authSvc := service.CreateNewAuthService(*app.Config, app.Clock)

	controller.CreateAuthController(g, authSvc)
	controller.CreateController(g, catalogSvc, appmiddleware.IsAdmin(authSvc))

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteMessageResponse(c, "pong")
	})

	return e
}

// Init sets up tracing and builds the server. Start calls it when it has not
// run yet.
func (app *App) Init() {
	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost, config.ServiceName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize tracing")
	} else {
		app.tracerProvider = traceProvider
		app.Tracer = traceProvider.Tracer(config.ServiceName)
	}

	app.Server = app.NewServer()

	if app.Config.MetricsPort != "" {
		app.metrics = echo.New()
		app.metrics.HideBanner = true
		app.metrics.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: app.registry}))
	}
}

func (app *App) Start() error {
	if app.Server == nil {
		app.Init()
	}

	if app.metrics != nil {
		go func() {
			if err := app.metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("Failed to start metrics server")
			}
		}()
	}

	log.Info().Str("port", app.Config.ServicePort).Str("driver", app.DB.DriverName()).Msg("catalog service listening")

	err := app.Server.Start(fmt.Sprintf(":%s", app.Config.ServicePort))
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errs []error
	if app.Server != nil {
		errs = append(errs, app.Server.Shutdown(ctx))
	}
	if app.metrics != nil {
		errs = append(errs, app.metrics.Shutdown(ctx))
	}
	if app.tracerProvider != nil {
		errs = append(errs, app.tracerProvider.Shutdown(ctx))
	}

	return errors.Join(errs...)
}

// errorHandler keeps framework errors such as unknown routes or oversized
// bodies in the same {"error": ...} shape as handler errors.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg, ok := he.Message.(string)
		if !ok {
			msg = http.StatusText(he.Code)
		}
		if writeErr := c.JSON(he.Code, response.ErrorResponse{Error: msg}); writeErr != nil {
			log.Error().Err(writeErr).Str("component", "errorHandler").Msg("")
		}
		return
	}

	if writeErr := response.WriteErrorResponse(c, err); writeErr != nil {
		log.Error().Err(writeErr).Str("component", "errorHandler").Msg("")
	}
}
