package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/waresmart/warehouse-console/internal/api"
	"github.com/waresmart/warehouse-console/internal/api/handler"
	"github.com/waresmart/warehouse-console/internal/mockapi"
	"github.com/waresmart/warehouse-console/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the console web server",
		Flags: []cli.Flag{
			hostFlag(),
			&cli.StringFlag{Name: "port", Usage: "listen port (overrides PORT)"},
		},
		Action: func(c *cli.Context) error {
			cfg := configFrom(c)
			if c.IsSet("host") {
				cfg.Host = c.String("host")
			}
			if c.IsSet("port") {
				cfg.Port = c.String("port")
			}
			return withOpenConsole(c, func(con *console) error {
				e, err := api.NewRouter(api.Dependencies{
					Sessions:  con.sessions,
					Users:     con.users,
					Dashboard: con.dashboard,
					Health: []handler.Dependency{
						{Name: con.store.Name, Ping: con.store.KV.Ping},
						{Name: "backend", Ping: con.client.Ping},
					},
					Log: logger.Component("http"),
				})
				if err != nil {
					return err
				}
				// Pages answer with the checking interstitial until this finishes.
				go con.sessions.Initialize(c.Context)

				con.log.Info().
					Str("addr", cfg.Addr()).
					Str("store", con.store.Name).
					Str("api", con.client.BaseURL()).
					Msg("console starting")
				return run(c.Context, e, cfg.Addr(), con.log)
			})
		},
	}
}

func mockBackendCommand() *cli.Command {
	return &cli.Command{
		Name:  "mock-backend",
		Usage: "run the development mock REST backend",
		Flags: []cli.Flag{
			hostFlag(),
			&cli.StringFlag{Name: "port", Usage: "listen port (overrides MOCK_BACKEND_PORT)"},
		},
		Action: func(c *cli.Context) error {
			cfg := configFrom(c)
			if c.IsSet("host") {
				cfg.Host = c.String("host")
			}
			if c.IsSet("port") {
				cfg.Backend.Port = c.String("port")
			}
			log := logger.Component("mock_backend")
			e, err := mockapi.NewServer(mockapi.Config{JWTSecret: cfg.Backend.JWTSecret}, log)
			if err != nil {
				return err
			}
			log.Info().
				Str("addr", cfg.MockBackendAddr()).
				Str("username", mockapi.DemoUsername).
				Msg("mock backend starting")
			return run(c.Context, e, cfg.MockBackendAddr(), log)
		},
	}
}

func hostFlag() cli.Flag {
	return &cli.StringFlag{Name: "host", Usage: "listen host (overrides HOST, default 127.0.0.1)"}
}

// run serves e until SIGINT or SIGTERM, then shuts it down gracefully.
func run(ctx context.Context, e *echo.Echo, addr string, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
