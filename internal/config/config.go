package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AgentShepherd/codeintel/internal/fileutil"
	"github.com/AgentShepherd/codeintel/internal/icon"
	"github.com/AgentShepherd/codeintel/internal/indicators"
	"github.com/AgentShepherd/codeintel/internal/logger"
	"github.com/AgentShepherd/codeintel/internal/types"
)

var cfgLog = logger.New("config")

// Config represents the codeintel configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	Links  LinksConfig  `yaml:"links"`
	Icon   IconConfig   `yaml:"icon"`
	// Watch reloads the config file while serving.
	Watch bool `yaml:"watch"`
}

// ServerConfig holds HTTP API settings
type ServerConfig struct {
	Port          int            `yaml:"port"`
	ListenAddress string         `yaml:"listen_address"`
	LogLevel      types.LogLevel `yaml:"log_level"`
	NoColor       bool           `yaml:"no_color"`
}

// Addr returns the host:port the API listens on.
func (s ServerConfig) Addr() string {
	host := s.ListenAddress
	if host == "" {
		host = "127.0.0.1"
	}
	return fmt.Sprintf("%s:%d", host, s.Port)
}

// LinksConfig holds the documentation URLs indicators link to
type LinksConfig struct {
	PreciseURL string `yaml:"precise_url"`
	BasicURL   string `yaml:"basic_url"`
}

// IconConfig holds the legacy badge icon colors
type IconConfig struct {
	DarkColor  icon.Color `yaml:"dark_color"`
	LightColor icon.Color `yaml:"light_color"`
}

// DefaultConfigPath returns the default config file path (~/.codeintel/config.yaml).
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".codeintel", "config.yaml")
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:          7080,
			ListenAddress: "127.0.0.1",
			LogLevel:      types.LogLevelInfo,
		},
		Links: LinksConfig{
			PreciseURL: indicators.DefaultPreciseURL,
			BasicURL:   indicators.DefaultBasicURL,
		},
		Icon: IconConfig{
			DarkColor:  indicators.DefaultDarkColor,
			LightColor: indicators.DefaultLightColor,
		},
		Watch: true,
	}
}

// IndicatorLinks projects the link settings into catalog input.
func (c *Config) IndicatorLinks() indicators.Links {
	return indicators.Links{Precise: c.Links.PreciseURL, Basic: c.Links.BasicURL}
}

// IconPalette projects the icon settings into catalog input.
func (c *Config) IconPalette() indicators.Palette {
	return indicators.Palette{Dark: c.Icon.DarkColor, Light: c.Icon.LightColor}
}

// Catalog builds the indicator catalog described by c.
func (c *Config) Catalog() *indicators.Catalog {
	return indicators.NewCatalog(c.IndicatorLinks(), c.IconPalette())
}

func validHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Validate checks all Config fields and returns a multi-error report.
// Call this AFTER env and CLI overrides have been applied, not during Load().
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port: must be 1-65535 (got %d)", c.Server.Port))
	}
	if !c.Server.LogLevel.Valid() {
		errs = append(errs, fmt.Sprintf("server.log_level: unknown log level %q (valid: trace, debug, info, warn, error)", c.Server.LogLevel))
	}

	if !validHTTPURL(c.Links.PreciseURL) {
		errs = append(errs, fmt.Sprintf("links.precise_url: must be an absolute http/https URL (got %q)", c.Links.PreciseURL))
	}
	if !validHTTPURL(c.Links.BasicURL) {
		errs = append(errs, fmt.Sprintf("links.basic_url: must be an absolute http/https URL (got %q)", c.Links.BasicURL))
	}

	// Colors are embedded verbatim into SVG markup.
	if !c.Icon.DarkColor.IsHex() {
		errs = append(errs, fmt.Sprintf("icon.dark_color: must be a hex color like #ffffff (got %q)", c.Icon.DarkColor))
	}
	if !c.Icon.LightColor.IsHex() {
		errs = append(errs, fmt.Sprintf("icon.light_color: must be a hex color like #000000 (got %q)", c.Icon.LightColor))
	}

	if len(errs) == 0 {
		return nil
	}
	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for i, e := range errs {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, e)
	}
	return errors.New(sb.String())
}

// isUnknownFieldError returns true if the error is from yaml.Decoder.KnownFields(true)
// detecting an unrecognized key (e.g. typo like "servr:").
func isUnknownFieldError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "not found in type")
}

// Load loads configuration from a YAML file. A missing file yields defaults.
// Load does NOT call Validate().
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		switch {
		case errors.Is(err, io.EOF):
			// empty file
			return cfg, nil
		case isUnknownFieldError(err):
			cfgLog.Warn("config has unknown fields (ignored): %v", err)
			cfg = DefaultConfig()
			if err2 := yaml.Unmarshal(data, cfg); err2 != nil {
				return nil, fmt.Errorf("config parse error: %w", err2)
			}
		default:
			return nil, fmt.Errorf("config parse error: %w", err)
		}
	}

	return cfg, nil
}

const fileHeader = "# codeintel configuration\n# Environment variables (CODEINTEL_*) override these values.\n\n"

// Save writes cfg to path as YAML with owner-only permissions. The file is
// replaced atomically so a running watcher never reads a partial config.
func Save(path string, cfg *Config) error {
	var buf bytes.Buffer
	buf.WriteString(fileHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := fileutil.WriteFileAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	cfgLog.Debug("Wrote %s", path)
	return nil
}
