package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/waresmart/warehouse-console/internal/core/service"
	"github.com/waresmart/warehouse-console/internal/infrastructure/backend"
	"github.com/waresmart/warehouse-console/internal/infrastructure/config"
	"github.com/waresmart/warehouse-console/internal/infrastructure/storage"
	"github.com/waresmart/warehouse-console/pkg/logger"
)

// Build information, set via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

const configKey = "config"

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "waresmart",
		Usage:   "WareSmart warehouse console",
		Version: fmt.Sprintf("%s (commit: %s)", Version, Commit),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			serveCommand(),
			mockBackendCommand(),
			loginCommand(),
			logoutCommand(),
			whoamiCommand(),
			usersCommand(),
			statsCommand(),
		},
		Before: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			logger.Init(logger.Options{
				Level:   cfg.LogLevel,
				Pretty:  c.Args().First() != "serve" && cfg.Env == "development",
				Service: "waresmart",
			})
			c.App.Metadata[configKey] = cfg
			return nil
		},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "api",
			Usage: "REST backend base URL (overrides API_BASE_URL)",
		},
		&cli.StringFlag{
			Name:  "store",
			Usage: "session storage backend: memory, file, redis, mongo (overrides STORE_BACKEND)",
		},
		&cli.StringFlag{
			Name:  "store-path",
			Usage: "session file for the file backend (overrides STORE_PATH)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "trace, debug, info, warn, error (overrides LOG_LEVEL)",
		},
	}
}

// loadConfig reads the environment and applies the global flags on top.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.Context)
	if err != nil {
		return nil, err
	}
	if c.IsSet("api") {
		cfg.API.BaseURL = c.String("api")
	}
	if c.IsSet("store") {
		cfg.Store.Backend = c.String("store")
	}
	if c.IsSet("store-path") {
		cfg.Store.Path = c.String("store-path")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configFrom(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata[configKey].(*config.Config); ok {
		return cfg
	}
	return nil
}

// console is the wired client side: storage, backend client and services.
type console struct {
	cfg       *config.Config
	store     *storage.Backend
	client    *backend.Client
	sessions  *service.SessionContext
	users     *service.UserService
	dashboard *service.DashboardService
	log       zerolog.Logger
}

func openConsole(ctx context.Context, cfg *config.Config) (*console, error) {
	log := logger.Component("console")

	kv, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", cfg.Store.Backend, err)
	}

	store := storage.NewSessionStore(kv.KV, logger.Component("session_store"))
	client := backend.NewClient(backend.Options{
		BaseURL:     cfg.API.BaseURL,
		Timeout:     cfg.API.Timeout,
		InsecureTLS: cfg.API.InsecureTLS,
		Tokens:      store,
	}, logger.Component("backend"))
	gateway := backend.NewAuthGateway(client, cfg.API.DefaultRole, logger.Component("auth_gateway"))

	con := &console{
		cfg:       cfg,
		store:     kv,
		client:    client,
		sessions:  service.NewSessionContext(store, gateway, logger.Component("session")),
		users:     service.NewUserService(backend.NewUserDirectory(client), cfg.API.MockFallback, logger.Component("users")),
		dashboard: service.NewDashboardService(backend.NewDashboardAPI(client), cfg.API.MockFallback, logger.Component("dashboard")),
		log:       log,
	}
	return con, nil
}

func (con *console) Close(ctx context.Context) {
	if err := con.store.Close(ctx); err != nil {
		con.log.Warn().Err(err).Msg("close storage")
	}
}

// withConsole opens the console for the duration of fn. The startup session
// check has completed by the time fn runs.
func withConsole(c *cli.Context, fn func(con *console) error) error {
	return withOpenConsole(c, func(con *console) error {
		con.sessions.Initialize(c.Context)
		return fn(con)
	})
}

func withOpenConsole(c *cli.Context, fn func(con *console) error) error {
	con, err := openConsole(c.Context, configFrom(c))
	if err != nil {
		return err
	}
	defer con.Close(context.WithoutCancel(c.Context))
	return fn(con)
}
