package config

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreMongo  = "mongo"
)

type Config struct {
	// Host is the listen address for the console and the mock backend. The
	// console acts with the stored login for whoever reaches it, so it binds
	// to loopback unless told otherwise.
	Host     string `env:"HOST,      default=127.0.0.1"`
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	API     APIConfig
	Store   StoreConfig
	Redis   RedisConfig
	Mongo   MongoConfig
	Backend MockBackendConfig
}

// APIConfig describes the remote warehouse REST backend.
type APIConfig struct {
	BaseURL     string        `env:"API_BASE_URL,     default=https://localhost:7161/api"`
	Timeout     time.Duration `env:"API_TIMEOUT,      default=15s"`
	InsecureTLS bool          `env:"API_INSECURE_TLS, default=false"`
	// DefaultRole is given to identities synthesised when the login response
	// carries no user object.
	DefaultRole  string `env:"DEFAULT_ROLE,  default=staff"`
	MockFallback bool   `env:"MOCK_FALLBACK, default=true"`
}

// StoreConfig selects the durable session storage backend.
type StoreConfig struct {
	Backend string `env:"STORE_BACKEND, default=file"`
	Path    string `env:"STORE_PATH"`
}

type RedisConfig struct {
	Addr   string `env:"REDIS_ADDR,   default=localhost:6379"`
	DB     int    `env:"REDIS_DB,     default=0"`
	Prefix string `env:"REDIS_PREFIX, default=waresmart:"`
}

type MongoConfig struct {
	URI        string `env:"MONGO_URI,        default=mongodb://localhost:27017"`
	Database   string `env:"MONGO_DB,         default=waresmart"`
	Collection string `env:"MONGO_COLLECTION, default=client_storage"`
}

// MockBackendConfig configures the development mock backend.
type MockBackendConfig struct {
	Port      string `env:"MOCK_BACKEND_PORT, default=7161"`
	JWTSecret string `env:"MOCK_JWT_SECRET,   default=waresmart-dev-secret"`
}

// Load reads configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration through lookuper; tests pass an
// envconfig.MapLookuper.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Store.Path == "" {
		cfg.Store.Path = DefaultStorePath()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the console cannot start with.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case StoreMemory, StoreFile, StoreRedis, StoreMongo:
	default:
		return fmt.Errorf("config: unknown STORE_BACKEND %q", c.Store.Backend)
	}
	if c.API.BaseURL == "" {
		return fmt.Errorf("config: API_BASE_URL must be set")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("config: API_TIMEOUT must be positive")
	}
	if c.API.DefaultRole == "" {
		return fmt.Errorf("config: DEFAULT_ROLE must be set")
	}
	return nil
}

// Addr is the console listen address, HOST:PORT.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// MockBackendAddr is the mock backend listen address.
func (c *Config) MockBackendAddr() string {
	return net.JoinHostPort(c.Host, c.Backend.Port)
}

// DefaultStorePath is ~/.waresmart/session.json, or a relative path when the
// home directory is unknown.
func DefaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".waresmart", "session.json")
	}
	return filepath.Join(home, ".waresmart", "session.json")
}
