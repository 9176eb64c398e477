package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Drivers de catálogo soportados.
const (
	DriverFile     = "file"
	DriverHTTP     = "http"
	DriverS3       = "s3"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

const (
	DefaultPort        = "8080"
	DefaultCatalogPath = "public/fish.json"
	DefaultLoadTimeout = 10 * time.Second
)

type S3 struct {
	Bucket    string `yaml:"bucket"`
	Key       string `yaml:"key"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	PathStyle bool   `yaml:"path_style"`
}

type Catalog struct {
	Driver  string        `yaml:"driver"`
	Path    string        `yaml:"path"` // archivo JSON o archivo sqlite
	URL     string        `yaml:"url"`
	DSN     string        `yaml:"dsn"`
	Timeout time.Duration `yaml:"timeout"`
	S3      S3            `yaml:"s3"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Config struct {
	Port    string  `yaml:"port"`
	AppName string  `yaml:"app_name"`
	Log     Log     `yaml:"log"`
	Catalog Catalog `yaml:"catalog"`
}

func Default() Config {
	return Config{
		Port:    DefaultPort,
		AppName: "fishing-finder",
		Log:     Log{Level: "info", Format: "text"},
		Catalog: Catalog{
			Driver:  DriverFile,
			Timeout: DefaultLoadTimeout,
		},
	}
}

// Load arma la config en capas:
//  1. defaults
//  2. .env (opcional, godotenv no pisa variables ya definidas)
//  3. archivo YAML en CONFIG_FILE (opcional)
//  4. variables de entorno
//
// El path por defecto (public/fish.json) solo se completa para el driver
// file; sqlite exige CATALOG_PATH explícito.
func Load() (Config, error) {
	return LoadWith(nil)
}

// LoadWith es Load con un override aplicado después del entorno y antes de
// completar defaults y validar (lo usa el CLI para sus flags).
func LoadWith(override func(*Config) error) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.mergeEnv(); err != nil {
		return Config{}, err
	}
	if override != nil {
		if err := override(&cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.Catalog.Driver = strings.ToLower(strings.TrimSpace(cfg.Catalog.Driver))
	if cfg.Catalog.Driver == DriverFile && strings.TrimSpace(cfg.Catalog.Path) == "" {
		cfg.Catalog.Path = DefaultCatalogPath
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	setString(&c.Port, "PORT")
	setString(&c.AppName, "APP_NAME")
	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Log.Format, "LOG_FORMAT")

	setString(&c.Catalog.Driver, "CATALOG_DRIVER")
	setString(&c.Catalog.Path, "CATALOG_PATH")
	setString(&c.Catalog.URL, "CATALOG_URL")
	setString(&c.Catalog.DSN, "DB_DSN")

	setString(&c.Catalog.S3.Bucket, "CATALOG_S3_BUCKET")
	setString(&c.Catalog.S3.Key, "CATALOG_S3_KEY")
	setString(&c.Catalog.S3.Region, "CATALOG_S3_REGION")
	setString(&c.Catalog.S3.Endpoint, "CATALOG_S3_ENDPOINT")

	if v := strings.TrimSpace(os.Getenv("CATALOG_S3_PATH_STYLE")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CATALOG_S3_PATH_STYLE: %w", err)
		}
		c.Catalog.S3.PathStyle = b
	}

	if v := strings.TrimSpace(os.Getenv("CATALOG_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("CATALOG_TIMEOUT: %w", err)
		}
		c.Catalog.Timeout = d
	}
	return nil
}

// Validate exige lo mínimo que necesita cada driver.
func (c Config) Validate() error {
	c.Catalog.Driver = strings.ToLower(strings.TrimSpace(c.Catalog.Driver))
	switch c.Catalog.Driver {
	case DriverFile, DriverSQLite:
		if strings.TrimSpace(c.Catalog.Path) == "" {
			return fmt.Errorf("catalog path required for %s driver", c.Catalog.Driver)
		}
	case DriverHTTP:
		if strings.TrimSpace(c.Catalog.URL) == "" {
			return errors.New("CATALOG_URL required for http driver")
		}
	case DriverS3:
		if strings.TrimSpace(c.Catalog.S3.Bucket) == "" || strings.TrimSpace(c.Catalog.S3.Key) == "" {
			return errors.New("CATALOG_S3_BUCKET and CATALOG_S3_KEY required for s3 driver")
		}
	case DriverPostgres:
		if strings.TrimSpace(c.Catalog.DSN) == "" {
			return errors.New("DB_DSN required for postgres driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown catalog driver %q", c.Catalog.Driver)
	}
	return nil
}

// Addr devuelve la dirección de escucha (":8080").
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}
