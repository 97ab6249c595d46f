// Package config loads client configuration from an optional YAML file with
// environment-variable overrides. Everything has a sane default; a bare
// install with only GYMCLIENT_STORE_URL set is fully functional.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Store StoreConfig `yaml:"store"`
	// DataDir holds the session slot, pinned replicas and the install id.
	// Defaults to ~/.gymclient.
	DataDir string `yaml:"data_dir"`
}

type StoreConfig struct {
	// Backend selects the member store implementation: "http" talks to the
	// remote synchronized store, "memory" runs an in-process store seeded
	// from SeedFile, for development without connectivity.
	Backend string `yaml:"backend"`
	// BaseURL is the remote synchronized store root.
	BaseURL string `yaml:"base_url"`
	// Collection is the root collection member records live under.
	Collection string `yaml:"collection"`
	// SeedFile maps member ids to raw record payloads for the memory
	// backend, in the same JSON shape the fakestore seed uses.
	SeedFile string `yaml:"seed_file"`
	// Timeout bounds one fetch round trip.
	Timeout Duration `yaml:"timeout"`
}

const (
	BackendHTTP   = "http"
	BackendMemory = "memory"
)

// Duration is a time.Duration that unmarshals from YAML strings like "10s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		expanded := os.ExpandEnv(string(data))

		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	switch cfg.Store.Backend {
	case BackendHTTP, BackendMemory:
	default:
		return nil, fmt.Errorf("unknown store backend %q (want %q or %q)",
			cfg.Store.Backend, BackendHTTP, BackendMemory)
	}

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving data dir: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".gymclient")
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Store: StoreConfig{
			Backend:    BackendHTTP,
			Collection: "Customers",
			Timeout:    Duration(10 * time.Second),
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GYMCLIENT_STORE_BACKEND"); v != "" {
		cfg.Store.Backend = v
	}
	if v := os.Getenv("GYMCLIENT_STORE_URL"); v != "" {
		cfg.Store.BaseURL = v
	}
	if v := os.Getenv("GYMCLIENT_STORE_SEED"); v != "" {
		cfg.Store.SeedFile = v
	}
	if v := os.Getenv("GYMCLIENT_STORE_COLLECTION"); v != "" {
		cfg.Store.Collection = v
	}
	if v := os.Getenv("GYMCLIENT_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("GYMCLIENT_STORE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Store.Timeout = Duration(d)
		}
	}
}

// SessionFile is the path of the session slot.
func (c *Config) SessionFile() string {
	return filepath.Join(c.DataDir, "session.json")
}

// ReplicaDir is where pinned record replicas live.
func (c *Config) ReplicaDir() string {
	return filepath.Join(c.DataDir, "replicas")
}

// DeviceIDFile is where the stable install identifier lives.
func (c *Config) DeviceIDFile() string {
	return filepath.Join(c.DataDir, "device_id")
}
