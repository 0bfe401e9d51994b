// Package http wires the echo server into the application lifecycle.
package http

import (
	"context"
	"log/slog"
	"net"
	nethttp "net/http"
	"strconv"

	"folio/config"
	"folio/internal/delivery"
	deliverymiddleware "folio/internal/delivery/middleware"

	"folio/internal/delivery/http/middleware"
	"folio/internal/delivery/http/router"
	"folio/internal/delivery/http/validator"
	"folio/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config          *config.Config
	Logger          *slog.Logger
	ErrorMiddleware *middleware.ErrorMiddleware
	RequestID       *deliverymiddleware.RequestIDMiddleware
	RouterParams    router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError
	echoServer.Validator = validator.New()
	echoServer.Use(params.RequestID.Process)
	echoServer.Use(slogecho.New(params.Logger))
	echoServer.Use(echomiddleware.Recover())
	echoServer.Use(echomiddleware.CORS())

	applyTimeouts(echoServer.Server, params.Config)

	router := router.NewRouter(params.RouterParams)
	router.RegisterRoutes(echoServer)

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

// applyTimeouts copies the configured timeouts onto the underlying net/http
// server echo starts with. Zero values keep net/http's no-timeout default.
func applyTimeouts(server *nethttp.Server, cfg *config.Config) {
	server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
