package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/url"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

var ErrUnknownStorage = errors.New("unknown storage")

type Config struct {
	LogLevel     string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort     string        `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Storage      string        `yaml:"storage" env:"STORAGE" env-default:"memory"`
	StoreTimeout time.Duration `yaml:"store-timeout" env:"STORE_TIMEOUT" env-default:"2s"`
	Redis        Redis         `yaml:"redis" env-prefix:"REDIS_"`
	Postgres     Postgres      `yaml:"postgres" env-prefix:"POSTGRES_"`
	Client       Client        `yaml:"client" env-prefix:"CLIENT_"`
}

type Redis struct {
	Host     string        `yaml:"host" env:"HOST" env-default:"localhost"`
	Port     string        `yaml:"port" env:"PORT" env-default:"6379"`
	Password string        `yaml:"password" env:"PASSWORD" env-default:""`
	DB       int           `yaml:"db" env:"DB" env-default:"0"`
	RoomTTL  time.Duration `yaml:"room-ttl" env:"ROOM_TTL" env-default:"24h"`
}

type Postgres struct {
	Host     string `yaml:"host" env:"HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"PORT" env-default:"5432"`
	User     string `yaml:"user" env:"USER" env-default:"postgres"`
	Password string `yaml:"password" env:"PASSWORD" env-default:""`
	DBName   string `yaml:"dbname" env:"DBNAME" env-default:"tictactoe"`
	SSLMode  string `yaml:"sslmode" env:"SSLMODE" env-default:"disable"`
	MaxConns int    `yaml:"max-conns" env:"MAX_CONNS" env-default:"10"`
}

type Client struct {
	StoreURL        string        `yaml:"store-url" env:"STORE_URL" env-default:"http://localhost:9090"`
	PollInterval    time.Duration `yaml:"poll-interval" env:"POLL_INTERVAL" env-default:"500ms"`
	JoinRetries     int           `yaml:"join-retries" env:"JOIN_RETRIES" env-default:"3"`
	JoinVerifyDelay time.Duration `yaml:"join-verify-delay" env:"JOIN_VERIFY_DELAY" env-default:"300ms"`
	RequestTimeout  time.Duration `yaml:"request-timeout" env:"REQUEST_TIMEOUT" env-default:"5s"`
	ReadRetries     int           `yaml:"read-retries" env:"READ_RETRIES" env-default:"2"`
}

// MustLoad - load all configurations in config.yml file. Without the file the
// configuration comes from the environment and defaults alone.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	err := cleanenv.ReadConfig(path, config)
	if errors.Is(err, fs.ErrNotExist) {
		err = cleanenv.ReadEnv(config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Storage {
	case StorageMemory, StorageRedis, StoragePostgres:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorage, that.Storage)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return net.JoinHostPort(that.Host, that.Port)
}

// DSN builds a lib/pq connection URL.
func (that *Postgres) DSN() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(that.User, that.Password),
		Host:     net.JoinHostPort(that.Host, that.Port),
		Path:     that.DBName,
		RawQuery: url.Values{"sslmode": []string{that.SSLMode}}.Encode(),
	}

	return dsn.String()
}

// ParseLogLevel maps the log-level setting onto slog. Unknown values mean info.
func ParseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
