package app

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"conway/internal/config"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Options represents the command-line parameters shared by the binaries.
type Options struct {
	ConfigPath string
	Overrides  kvList
	LogLevel   string
	LogFormat  string
}

// NewOptions returns Options populated with sensible defaults.
func NewOptions() *Options {
	return &Options{LogLevel: "info", LogFormat: "text"}
}

// Bind attaches the options to the provided FlagSet.
func (o *Options) Bind(fs *flag.FlagSet) {
	fs.StringVar(&o.ConfigPath, "config", o.ConfigPath, "path to an HCL configuration file")
	fs.Var(&o.Overrides, "set", "configuration override in key=value form (repeatable); keys: w, h, cell, tps, color, seed, soup")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&o.LogFormat, "log-format", o.LogFormat, "log format: text or json")
}

// Validate checks the logging options.
func (o *Options) Validate() error {
	if _, err := ParseLevel(o.LogLevel); err != nil {
		return err
	}
	_, err := ParseFormat(o.LogFormat)
	return err
}

// Logger builds the logger described by the options.
func (o *Options) Logger(w io.Writer) *slog.Logger {
	return NewLogger(o.LogLevel, o.LogFormat, w)
}

// Resolve layers the config file (if any) over the defaults, then applies
// the -set overrides.
func (o *Options) Resolve() (config.Config, error) {
	cfg := config.DefaultConfig()
	if o.ConfigPath != "" {
		loaded, err := config.Load(o.ConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	overrides := make(map[string]string, len(o.Overrides))
	for _, kv := range o.Overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return config.Config{}, fmt.Errorf("invalid override %q: expected key=value", kv)
		}
		overrides[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	cfg = cfg.Merge(overrides)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
