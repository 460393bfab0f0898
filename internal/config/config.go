// Package config handles loading and parsing application configuration.
// It supports two sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// The parsed values are returned as a *Config pointer so the struct is
// shared by reference rather than copied everywhere.
package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
//
// env-required:"true" means the app refuses to start if that value is
// missing — better to crash at boot than to silently use a wrong default.
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-required:"true"`

	Storage `yaml:"storage"`

	// HTTPServer is embedded (not a pointer) so its fields are accessible
	// directly on Config: cfg.HTTPServer.Addr
	HTTPServer `yaml:"http_server"`

	Auth `yaml:"auth"`
}

// Storage selects and configures the persistence backend.
type Storage struct {
	// Driver is either "mongo" (the document store used in deployments)
	// or "sqlite" (single-file database for local development).
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"mongo"`

	// Path is the filesystem path to the SQLite .db file.
	// Only consulted when Driver is "sqlite".
	Path string `yaml:"path" env:"STORAGE_PATH"`

	// MongoURI is the connection string of the MongoDB deployment,
	// e.g. "mongodb://127.0.0.1:27017". Only consulted when Driver is "mongo".
	MongoURI string `yaml:"mongo_uri" env:"MONGO_URI"`

	// MongoDatabase is the database holding the students and signup
	// collections.
	MongoDatabase string `yaml:"mongo_database" env:"MONGO_DATABASE" env-default:"workdb"`
}

// HTTPServer holds settings specific to the HTTP server.
type HTTPServer struct {
	// Addr is the TCP address the server listens on, e.g. "localhost:8082".
	Addr string `yaml:"address" env:"HTTP_SERVER_ADDR" env-required:"true"`
}

// Auth holds the token-signing configuration.
// The secret is required and has no default on purpose: signing keys
// belong in configuration, never in source.
type Auth struct {
	JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
}

// MustLoad reads, validates, and returns the application config.
//
// The name "MustLoad" follows a Go convention: functions prefixed with
// "Must" are allowed to panic/fatal on failure. Callers do not need to
// check a returned error — if this function returns, the config is valid.
func MustLoad() *Config {
	var configPath string

	// Env var first: the standard way to pass config in Docker/Kubernetes.
	configPath = os.Getenv("CONFIG_PATH")

	// Fall back to the command-line flag for local runs:
	//   go run ./cmd/student-service --config=config/local.yaml
	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	if configPath == "" {
		log.Fatal("config path is not set: use --config flag or CONFIG_PATH env var")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	// cleanenv reads the YAML file, applies env:"..." overrides, and
	// enforces env-required:"true" constraints.
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}

	return &cfg
}
