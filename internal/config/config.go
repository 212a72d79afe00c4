package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"
)

const (
	StorageDriverDisk = "disk"
	StorageDriverS3   = "s3"
)

type Config struct {
	Port       int      `env:"PORT" envDefault:"8080"`
	GinMode    string   `env:"GIN_MODE" envDefault:"debug"`
	CORSOrigin []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	SignInPath string   `env:"SIGN_IN_PATH" envDefault:"/authentication/sign-in"`

	Log      LogConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Storage  StorageConfig
	Upload   UploadConfig
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USERNAME"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_DATABASE"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
	MaxConns int32  `env:"DB_MAX_CONNS" envDefault:"25"`
	MinConns int32  `env:"DB_MIN_CONNS" envDefault:"5"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	DraftTTL time.Duration `env:"DRAFT_TTL" envDefault:"2h"`
}

type AuthConfig struct {
	AccessTokenSecret  string `env:"ACCESS_TOKEN_SECRET"`
	RefreshTokenSecret string `env:"REFRESH_TOKEN_SECRET"`
	SecureCookies      bool   `env:"SECURE_COOKIES" envDefault:"true"`

	// The first admin is created from these when the users table is empty.
	BootstrapEmail    string `env:"BOOTSTRAP_ADMIN_EMAIL"`
	BootstrapPassword string `env:"BOOTSTRAP_ADMIN_PASSWORD"`
}

type StorageConfig struct {
	Driver        string `env:"STORAGE_DRIVER" envDefault:"disk"`
	DiskRoot      string `env:"STORAGE_DISK_ROOT" envDefault:"./data/storage"`
	PublicBaseURL string `env:"STORAGE_PUBLIC_BASE_URL" envDefault:"http://localhost:8080/storage/v1/object/public"`
	S3Endpoint    string `env:"S3_ENDPOINT"`
	S3AccessKey   string `env:"S3_ACCESS_KEY"`
	S3SecretKey   string `env:"S3_SECRET_KEY"`
	S3Region      string `env:"S3_REGION"`
	S3UseSSL      bool   `env:"S3_USE_SSL" envDefault:"true"`
}

type UploadConfig struct {
	// Concurrency above 1 uploads a batch in parallel; 1 keeps uploads sequential.
	Concurrency int `env:"UPLOAD_CONCURRENCY" envDefault:"1"`
}

// Load reads the process environment (after .env autoload) into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Database.User == "" {
		errs = append(errs, errors.New("DB_USERNAME environment variable is required"))
	}
	if c.Database.Name == "" {
		errs = append(errs, errors.New("DB_DATABASE environment variable is required"))
	}
	if c.Auth.AccessTokenSecret == "" || c.Auth.RefreshTokenSecret == "" {
		errs = append(errs, errors.New("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET are required"))
	}
	switch c.Storage.Driver {
	case StorageDriverDisk:
	case StorageDriverS3:
		if c.Storage.S3Endpoint == "" {
			errs = append(errs, errors.New("S3_ENDPOINT is required for the s3 storage driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver))
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("unknown GIN_MODE %q", c.GinMode))
	}
	if c.Upload.Concurrency < 1 {
		errs = append(errs, errors.New("UPLOAD_CONCURRENCY must be at least 1"))
	}
	return errors.Join(errs...)
}
