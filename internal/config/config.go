// Package config loads service settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// File store backends.
const (
	FileStoreLocal = "local"
	FileStoreMinIO = "minio"
)

type Config struct {
	DatabaseURL    string `mapstructure:"database_url" validate:"required"`
	Port           int    `mapstructure:"port" validate:"min=1,max=65535"`
	UploadsDir     string `mapstructure:"uploads_dir" validate:"required"`
	FileStore      string `mapstructure:"file_store" validate:"oneof=local minio"`
	PDFExtractor   string `mapstructure:"pdf_extractor" validate:"oneof=auto docconv native"`
	MaxUploadBytes int64  `mapstructure:"max_upload_bytes" validate:"min=1"`
	AutoMigrate    bool   `mapstructure:"auto_migrate"`
	CORSOrigin     string `mapstructure:"cors_origin"`
	LogJSON        bool   `mapstructure:"log_json"`
	LogDebug       bool   `mapstructure:"log_debug"`

	// Only checked when FileStore is "minio".
	MinIO MinIOConfig `mapstructure:"minio" validate:"-"`
}

type MinIOConfig struct {
	Endpoint         string `mapstructure:"endpoint" validate:"required"`
	AccessKeyID      string `mapstructure:"access_key" validate:"required"`
	SecretAccessKey  string `mapstructure:"secret_key" validate:"required"`
	Bucket           string `mapstructure:"bucket" validate:"required"`
	Region           string `mapstructure:"region"`
	UseSSL           bool   `mapstructure:"use_ssl"`
	AutoCreateBucket bool   `mapstructure:"auto_create_bucket"`
}

type setting struct {
	key    string
	env    string
	defVal any
}

var settings = []setting{
	{"database_url", "DATABASE_URL", ""},
	{"port", "PORT", 8080},
	{"uploads_dir", "UPLOADS_DIR", "./uploads"},
	{"file_store", "FILE_STORE", FileStoreLocal},
	{"pdf_extractor", "PDF_EXTRACTOR", "auto"},
	{"max_upload_bytes", "MAX_UPLOAD_BYTES", int64(10 << 20)},
	{"auto_migrate", "AUTO_MIGRATE", true},
	{"cors_origin", "CORS_ORIGIN", "*"},
	{"log_json", "LOG_JSON", false},
	{"log_debug", "LOG_DEBUG", false},
	{"minio.endpoint", "MINIO_ENDPOINT", ""},
	{"minio.access_key", "MINIO_ACCESS_KEY", ""},
	{"minio.secret_key", "MINIO_SECRET_KEY", ""},
	{"minio.bucket", "MINIO_BUCKET", "resumes"},
	{"minio.region", "MINIO_REGION", ""},
	{"minio.use_ssl", "MINIO_USE_SSL", false},
	{"minio.auto_create_bucket", "MINIO_AUTO_CREATE_BUCKET", true},
}

// Load reads the given .env files (default ".env"; missing files are skipped),
// then resolves every setting through v, so flags bound to v take precedence
// over the environment.
func Load(v *viper.Viper, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	for _, s := range settings {
		v.SetDefault(s.key, s.defVal)
		if err := v.BindEnv(s.key, s.env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", s.env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required settings and enumerations.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.FileStore == FileStoreMinIO {
		if err := validate.Struct(c.MinIO); err != nil {
			return fmt.Errorf("invalid minio config: %w", err)
		}
	}
	return nil
}
