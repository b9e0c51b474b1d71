package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/tilegrid/internal/app"
	"github.com/atomicstack/tilegrid/internal/grid"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// File mirrors the optional YAML configuration file. Pointer fields let
// absent keys fall through to flag/env defaults.
type File struct {
	Width        *int     `yaml:"width"`
	Height       *int     `yaml:"height"`
	Footer       *bool    `yaml:"footer"`
	Trace        *bool    `yaml:"trace"`
	LogFile      *string  `yaml:"log_file"`
	Rows         *int     `yaml:"rows"`
	HistoryLimit *int     `yaml:"history_limit"`
	Palette      []string `yaml:"palette"`
}

const (
	envConfig       = "TILEGRID_CONFIG"
	envWidth        = "TILEGRID_WIDTH"
	envHeight       = "TILEGRID_HEIGHT"
	envShowFooter   = "TILEGRID_FOOTER"
	envTrace        = "TILEGRID_TRACE"
	envLogFile      = "TILEGRID_LOG_FILE"
	envRows         = "TILEGRID_ROWS"
	envHistoryLimit = "TILEGRID_HISTORY_LIMIT"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("tilegrid", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	configPath := fs.String("config", envOrDefault(env, envConfig, ""), "path to a YAML configuration file")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key help footer")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	rows := fs.Int("rows", envOrInt(env, envRows, 0), "rows to place on the grid before history starts")
	limit := fs.Int("history-limit", envOrInt(env, envHistoryLimit, 0), "maximum undo depth (0 is unlimited)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	explicit := explicitKeys(fs, env)
	var palette grid.Palette
	if *configPath != "" {
		file, err := ReadFile(*configPath)
		if err != nil {
			return Config{}, err
		}
		applyInt(explicit, "width", width, file.Width)
		applyInt(explicit, "height", height, file.Height)
		applyBool(explicit, "footer", footer, file.Footer)
		applyBool(explicit, "trace", trace, file.Trace)
		applyString(explicit, "log-file", logFile, file.LogFile)
		applyInt(explicit, "rows", rows, file.Rows)
		applyInt(explicit, "history-limit", limit, file.HistoryLimit)
		palette, err = parsePalette(file.Palette)
		if err != nil {
			return Config{}, fmt.Errorf("config %s: %w", *configPath, err)
		}
	}

	cfg := Config{
		App: app.Config{
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
			Rows:         *rows,
			HistoryLimit: *limit,
			Palette:      palette,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"config":       *configPath,
			"width":        strconv.Itoa(*width),
			"height":       strconv.Itoa(*height),
			"footer":       strconv.FormatBool(*footer),
			"trace":        strconv.FormatBool(*trace),
			"logFile":      *logFile,
			"rows":         strconv.Itoa(*rows),
			"historyLimit": strconv.Itoa(*limit),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// ReadFile decodes a YAML configuration file.
func ReadFile(path string) (File, error) {
	var file File
	data, err := os.ReadFile(path)
	if err != nil {
		return file, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("parse config %s: %w", path, err)
	}
	return file, nil
}

func parsePalette(entries []string) (grid.Palette, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	palette := make(grid.Palette, 0, len(entries))
	for _, entry := range entries {
		c, err := grid.ParseColor(strings.TrimSpace(entry))
		if err != nil {
			return nil, err
		}
		palette = append(palette, c)
	}
	return palette, nil
}

// explicitKeys collects flag names set on the command line or through their
// environment variable; the config file never overrides those.
func explicitKeys(fs *flag.FlagSet, env map[string]string) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	envKeys := map[string]string{
		"width":         envWidth,
		"height":        envHeight,
		"footer":        envShowFooter,
		"trace":         envTrace,
		"log-file":      envLogFile,
		"rows":          envRows,
		"history-limit": envHistoryLimit,
	}
	for name, key := range envKeys {
		if v, ok := env[key]; ok && strings.TrimSpace(v) != "" {
			set[name] = true
		}
	}
	return set
}

func applyInt(explicit map[string]bool, name string, dst *int, v *int) {
	if v != nil && !explicit[name] {
		*dst = *v
	}
}

func applyBool(explicit map[string]bool, name string, dst *bool, v *bool) {
	if v != nil && !explicit[name] {
		*dst = *v
	}
}

func applyString(explicit map[string]bool, name string, dst *string, v *string) {
	if v != nil && !explicit[name] {
		*dst = *v
	}
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects values the application cannot run with.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.Rows < 0 {
		return fmt.Errorf("rows must be >= 0 (got %d)", cfg.App.Rows)
	}
	if cfg.App.HistoryLimit < 0 {
		return fmt.Errorf("history-limit must be >= 0 (got %d)", cfg.App.HistoryLimit)
	}
	for _, c := range cfg.App.Palette {
		if _, err := grid.ParseColor(string(c)); err != nil {
			return err
		}
	}
	return nil
}
