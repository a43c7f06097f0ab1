// Package app holds the client configuration, loadable from environment
// variables (CARTCTL_ prefix) or YAML config files.
package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the complete client configuration.
type Config struct {
	APIBaseURL     string        `default:"http://127.0.0.1:3004" usage:"Ordering backend base URL" env:"API_BASE_URL"`
	RequestTimeout time.Duration `default:"10s" usage:"HTTP request timeout"`
	ProfilePath    string        `default:"" usage:"Path to the local profile database"`
	ReloadDelay    time.Duration `default:"1200ms" usage:"Delay before reloading the cart after a placed order"`
	LogLevel       string        `default:"info" usage:"Log level (debug|info|warn|error)"`
}

// LoadConfig loads configuration from environment variables and YAML config
// files, then applies platform defaults. Command-line flags are handled by
// the CLI layer, not here.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "CARTCTL",
		SkipFlags: true,
		Files:     configFiles(),
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()
	return &cfg, nil
}

func configFiles() []string {
	files := []string{"cartctl.yaml"}
	if dir, err := os.UserConfigDir(); err == nil {
		files = append(files, filepath.Join(dir, "cartctl", "config.yaml"))
	}
	return files
}

// applyPlatformDefaults maps environment variables shared with the web
// frontend (ENSALADA_API_URL) and fills in the default profile location.
func (c *Config) applyPlatformDefaults() {
	if v := os.Getenv("ENSALADA_API_URL"); v != "" && c.APIBaseURL == "http://127.0.0.1:3004" {
		c.APIBaseURL = v
	}
	if c.ProfilePath == "" {
		c.ProfilePath = defaultProfilePath()
	}
}

func defaultProfilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "cartctl.db"
	}
	return filepath.Join(dir, "cartctl", "profile.db")
}
