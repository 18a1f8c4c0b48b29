package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

const (
	MediaBackendLocal = "local"
	MediaBackendS3    = "s3"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env      string `mapstructure:"env"`       // current application environment (local, dev, prod etc)
	HTTPAddr string `mapstructure:"http_addr"` // listen address for the API server
	Database DB     `mapstructure:"database"`
	Auth     Auth   `mapstructure:"auth"`
	Media    Media  `mapstructure:"media"`
}

// DB contains database-related configuration parameters.
type DB struct {
	URL string `mapstructure:"-"` // connection string loaded from environment
}

// Auth contains token and third-party sign-in settings.
type Auth struct {
	JWTSecret      string        `mapstructure:"-"`          // signing secret loaded from environment
	JWTTTL         time.Duration `mapstructure:"jwt_ttl"`    // access token lifetime
	GoogleClientID string        `mapstructure:"-"`          // audience for Google ID token verification
}

// Media selects and parameterizes the image storage backend.
type Media struct {
	Backend    string `mapstructure:"backend"`     // "local" or "s3"
	BaseDir    string `mapstructure:"base_dir"`    // local backend: uploads directory
	StaticBase string `mapstructure:"static_base"` // local backend: public URL prefix
	S3Bucket   string `mapstructure:"-"`
	S3Region   string `mapstructure:"-"`
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("auth.jwt_ttl", "24h")
	v.SetDefault("media.backend", MediaBackendLocal)
	v.SetDefault("media.base_dir", "./uploads")
	v.SetDefault("media.static_base", "/static/uploads")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("jwt_secret", "JWT_SECRET")
	_ = v.BindEnv("google_client_id", "GOOGLE_CLIENT_ID")
	_ = v.BindEnv("media.backend", "MEDIA_BACKEND")
	_ = v.BindEnv("aws_s3_bucket", "AWS_S3_BUCKET")
	_ = v.BindEnv("aws_region", "AWS_REGION")
	_ = v.BindEnv("env", "APP_ENV")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.Database.URL = v.GetString("database_url")
	if cfg.Database.URL == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	cfg.Auth.JWTSecret = v.GetString("jwt_secret")
	if cfg.Auth.JWTSecret == "" {
		return nil, ErrMissingEnvironmentVariables
	}
	cfg.Auth.GoogleClientID = v.GetString("google_client_id")

	cfg.Media.S3Bucket = v.GetString("aws_s3_bucket")
	cfg.Media.S3Region = v.GetString("aws_region")
	if cfg.Media.Backend == MediaBackendS3 && cfg.Media.S3Bucket == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	return &cfg, nil
}
