package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Supported backends.
const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
)

const sqliteFile = "excuse-killer.sqlite"

// Config describes where and how the app persists state.
type Config interface {
	BasePath() string
	Backend() string
	Quota() int64
	LogLevel() string
	Tick() time.Duration
}

// LoadConfig reads .excuse-killer.yaml (if any) from EXCUSE_KILLER_CONFIG_PATH
// or the working directory, with EXCUSE_KILLER_* env overrides.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.excuse-killer.db")
	v.SetDefault("backend", BackendDiskv)
	v.SetDefault("quota_bytes", DefaultQuota)
	v.SetDefault("log_level", "warn")
	v.SetDefault("tick", time.Second)
	v.SetConfigName(".excuse-killer") // .yaml is implicit
	v.SetEnvPrefix("EXCUSE_KILLER")
	v.AutomaticEnv()

	if override := os.Getenv("EXCUSE_KILLER_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("expand path: %w", err)
	}

	cfg := &fileConfig{
		Path:       path,
		BackendKey: strings.ToLower(strings.TrimSpace(v.GetString("backend"))),
		QuotaBytes: v.GetInt64("quota_bytes"),
		Level:      v.GetString("log_level"),
		TickEvery:  v.GetDuration("tick"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type fileConfig struct {
	Path       string        `json:"path"`
	BackendKey string        `json:"backend"`
	QuotaBytes int64         `json:"quota_bytes"`
	Level      string        `json:"log_level"`
	TickEvery  time.Duration `json:"tick"`
}

func (f *fileConfig) BasePath() string    { return f.Path }
func (f *fileConfig) Backend() string     { return f.BackendKey }
func (f *fileConfig) Quota() int64        { return f.QuotaBytes }
func (f *fileConfig) LogLevel() string    { return f.Level }
func (f *fileConfig) Tick() time.Duration { return f.TickEvery }

func (f *fileConfig) validate() error {
	switch f.BackendKey {
	case BackendDiskv, BackendSQLite:
	default:
		return fmt.Errorf("store: unknown backend %q", f.BackendKey)
	}
	if f.Path == "" {
		return errors.New("store: path must not be empty")
	}
	if f.TickEvery <= 0 {
		f.TickEvery = time.Second
	}
	return nil
}

// Open builds the KV selected by cfg. Closers (sqlite) are returned so the
// caller can release them; the func is never nil.
func Open(cfg Config) (KV, func() error, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, nil, err
		}
	}
	switch cfg.Backend() {
	case BackendSQLite:
		db, err := NewSQLite(filepath.Join(cfg.BasePath(), sqliteFile))
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	default:
		return NewDiskv(cfg.BasePath()), func() error { return nil }, nil
	}
}
