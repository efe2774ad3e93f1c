package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Backend names a persistence implementation.
type Backend string

const (
	BackendJSON   Backend = "json"
	BackendDiskv  Backend = "diskv"
	BackendSQLite Backend = "sqlite"
	// BackendMemory keeps nothing between runs.
	BackendMemory Backend = "memory"
)

// DefaultPath is where a backend keeps its data when no path is configured.
func (b Backend) DefaultPath() string {
	switch b {
	case BackendDiskv:
		return "~/.dday/exams.d"
	case BackendSQLite:
		return "~/.dday/exams.db"
	case BackendMemory:
		return ""
	default:
		return "~/.dday/exams.json"
	}
}

// Config is the resolved configuration for a session.
type Config interface {
	Backend() Backend
	BasePath() string
	Owner() string
	LogLevel() string
	// ConfigFile is the file the values came from, empty when none was found.
	ConfigFile() string
}

// LoadConfig reads .dday.yaml and DDAY_* environment variables. The file is
// looked up in $DDAY_CONFIG_PATH, the working directory and $HOME. A missing
// file is fine.
func LoadConfig() (Config, error) {
	return loadConfig(viper.New())
}

func loadConfig(v *viper.Viper) (Config, error) {
	v.SetDefault("backend", string(BackendJSON))
	v.SetDefault("log_level", "warn")
	v.SetConfigName(".dday") // .yaml is implicit
	v.SetConfigType("yaml")
	v.SetEnvPrefix("DDAY")
	v.AutomaticEnv()

	if override := os.Getenv("DDAY_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	backend := Backend(strings.ToLower(strings.TrimSpace(v.GetString("backend"))))
	switch backend {
	case BackendJSON, BackendDiskv, BackendSQLite, BackendMemory:
	default:
		return nil, fmt.Errorf("store: unknown backend %q", backend)
	}

	path := strings.TrimSpace(v.GetString("path"))
	if path == "" {
		path = backend.DefaultPath()
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("store: expand path %q: %w", path, err)
	}

	return &fileConfig{
		backend:  backend,
		path:     expanded,
		owner:    strings.TrimSpace(v.GetString("owner")),
		logLevel: v.GetString("log_level"),
		file:     v.ConfigFileUsed(),
	}, nil
}

type fileConfig struct {
	backend  Backend
	path     string
	owner    string
	logLevel string
	file     string
}

func (f *fileConfig) Backend() Backend   { return f.backend }
func (f *fileConfig) BasePath() string   { return f.path }
func (f *fileConfig) Owner() string      { return f.owner }
func (f *fileConfig) LogLevel() string   { return f.logLevel }
func (f *fileConfig) ConfigFile() string { return f.file }

// Override returns cfg with non-empty owner and log level replacing the
// loaded ones, for command line flags.
func Override(cfg Config, owner, logLevel string) Config {
	f := &fileConfig{
		backend:  cfg.Backend(),
		path:     cfg.BasePath(),
		owner:    cfg.Owner(),
		logLevel: cfg.LogLevel(),
		file:     cfg.ConfigFile(),
	}
	if owner != "" {
		f.owner = owner
	}
	if logLevel != "" {
		f.logLevel = logLevel
	}
	return f
}

// NewConfig builds a Config without reading any file or environment.
func NewConfig(backend Backend, path, owner string) Config {
	if path == "" {
		path = backend.DefaultPath()
	}
	return &fileConfig{backend: backend, path: path, owner: owner, logLevel: "warn"}
}
