package rroute

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
	"github.com/rohanthewiz/rroute/core/uri"
	"github.com/rohanthewiz/serr"
)

// Config formats accepted by ParseConfig.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Config is the startup configuration of a Router: the application schemes
// and, optionally, class routes to register.
type Config struct {
	Schemes []string      `yaml:"schemes" toml:"schemes"`
	Routes  []RouteConfig `yaml:"routes" toml:"routes"`
}

// RouteConfig is one configured class route.
type RouteConfig struct {
	Pattern string `yaml:"pattern" toml:"pattern"`
	Class   string `yaml:"class" toml:"class"`
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, serr.Wrap(err, "unable to read route config", "path", path)
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "yml" {
		format = FormatYAML
	}

	cfg, err := ParseConfig(data, format)
	if err != nil {
		return Config{}, serr.Wrap(err, "path", path)
	}
	return cfg, nil
}

// ParseConfig decodes data in the given format and validates the result.
func ParseConfig(data []byte, format string) (Config, error) {
	var cfg Config

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, serr.Wrap(err, "unable to decode YAML route config")
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, serr.Wrap(err, "unable to decode TOML route config")
		}
	default:
		return Config{}, serr.New("unsupported route config format", "format", format)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks scheme syntax and that every route has a pattern and a class.
func (c Config) Validate() error {
	for _, scheme := range c.Schemes {
		if !uri.ValidScheme(scheme) {
			return fmt.Errorf("%w: scheme %q", ErrInvalidConfig, scheme)
		}
	}

	for i, route := range c.Routes {
		if route.Pattern == "" {
			return fmt.Errorf("%w: route %d has no pattern", ErrInvalidConfig, i)
		}
		if route.Class == "" {
			return fmt.Errorf("%w: route %q has no class", ErrInvalidConfig, route.Pattern)
		}
	}
	return nil
}

// NewFromConfig builds a router recognizing opts.Schemes plus cfg.Schemes
// and registers the configured routes. The first failing route is returned
// together with the partially filled router.
func NewFromConfig(cfg Config, opts Options) (*Router, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	schemes := make([]string, 0, len(opts.Schemes)+len(cfg.Schemes))
	schemes = append(schemes, opts.Schemes...)
	schemes = append(schemes, cfg.Schemes...)
	opts.Schemes = schemes

	r := New(opts)
	for _, route := range cfg.Routes {
		if err := r.RegisterClass(route.Pattern, route.Class); err != nil {
			return r, err
		}
	}
	return r, nil
}
