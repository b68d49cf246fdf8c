package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/popup-launcher/internal/app"
	"github.com/atomicstack/popup-launcher/internal/icon"
	"github.com/atomicstack/popup-launcher/internal/launch"
	"github.com/atomicstack/popup-launcher/internal/nav"
	"github.com/atomicstack/popup-launcher/internal/rank"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfig    = "POPUP_LAUNCHER_CONFIG"
	envWidth     = "POPUP_LAUNCHER_WIDTH"
	envHeight    = "POPUP_LAUNCHER_HEIGHT"
	envFooter    = "POPUP_LAUNCHER_FOOTER"
	envVerbose   = "POPUP_LAUNCHER_VERBOSE"
	envTrace     = "POPUP_LAUNCHER_TRACE"
	envLogFile   = "POPUP_LAUNCHER_LOG_FILE"
	envQuery     = "POPUP_LAUNCHER_QUERY"
	envScorer    = "POPUP_LAUNCHER_SCORER"
	envSpawn     = "POPUP_LAUNCHER_SPAWN"
	envSocket    = "POPUP_LAUNCHER_SOCKET"
	envKeepOpen  = "POPUP_LAUNCHER_KEEP_OPEN"
	envIconTheme = "POPUP_LAUNCHER_ICON_THEME"
	envIconSize  = "POPUP_LAUNCHER_ICON_SIZE"
)

var ErrInvalid = errors.New("invalid configuration")

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Values are
// layered default < config file < environment < flag.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	path, explicit := configPath(args, env)
	file, err := readFile(path, explicit)
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("popup-launcher", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", path, "path to a YAML or TOML config file")
	width := fs.Int("width", envOrInt(env, envWidth, file.Width), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, file.Height), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envFooter, file.Footer), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, file.Trace), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, file.Verbose), "show the command and icon of the focused entry")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, file.LogFile), "path to the log file")
	query := fs.String("query", envOrDefault(env, envQuery, ""), "initial query")
	scorer := fs.String("scorer", envOrDefault(env, envScorer, file.Scorer), "match scorer: "+strings.Join(rank.ScorerNames(), ", "))
	spawn := fs.String("spawn", envOrDefault(env, envSpawn, file.Spawn), "launch mode: exec, tmux or print")
	socket := fs.String("socket", envOrDefault(env, envSocket, file.Socket), "tmux socket for -spawn tmux (overrides environment detection)")
	keepOpen := fs.Bool("keep-open", envOrBool(env, envKeepOpen, file.KeepOpen), "keep the launcher open after launching")
	iconTheme := fs.String("icon-theme", envOrDefault(env, envIconTheme, file.IconTheme), "icon theme searched before hicolor")
	iconSize := fs.Int("icon-size", envOrInt(env, envIconSize, file.IconSize), "nominal icon size in pixels")
	list := fs.Bool("list", false, "print the ranked catalog and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *iconSize <= 0 {
		return Config{}, fmt.Errorf("icon-size must be > 0 (got %d)", *iconSize)
	}
	if rest := fs.Args(); *query == "" && len(rest) > 0 {
		*query = strings.Join(rest, " ")
	}

	cfg := Config{
		App: app.Config{
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
			Query:      *query,
			Scorer:     *scorer,
			Spawn:      *spawn,
			SocketPath: *socket,
			KeepOpen:   *keepOpen,
			IconTheme:  *iconTheme,
			IconSize:   *iconSize,
			List:       *list,
			Keys:       file.Keys,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: file.path,
		Flags: map[string]string{
			"config":    file.path,
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"footer":    strconv.FormatBool(*footer),
			"trace":     strconv.FormatBool(*trace),
			"verbose":   strconv.FormatBool(*verbose),
			"logFile":   *logFile,
			"query":     *query,
			"scorer":    *scorer,
			"spawn":     *spawn,
			"socket":    *socket,
			"keepOpen":  strconv.FormatBool(*keepOpen),
			"iconTheme": *iconTheme,
			"iconSize":  strconv.Itoa(*iconSize),
			"list":      strconv.FormatBool(*list),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
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

// Validate checks the values that name things: scorer, spawn mode and key
// bindings.
func Validate(cfg Config) error {
	if _, err := rank.ScorerByName(cfg.App.Scorer); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	switch strings.ToLower(strings.TrimSpace(cfg.App.Spawn)) {
	case "", launch.SpawnExec, launch.SpawnTmux, launch.SpawnPrint:
	default:
		return fmt.Errorf("%w: unknown spawn mode %q", ErrInvalid, cfg.App.Spawn)
	}
	if _, err := nav.DefaultKeymap().Merge(cfg.App.Keys); err != nil {
		return fmt.Errorf("%w: keys: %w", ErrInvalid, err)
	}
	return nil
}

func defaultFile() fileConfig {
	return fileConfig{
		Scorer:    rank.ScorerSkim,
		Spawn:     launch.SpawnExec,
		IconTheme: icon.DefaultTheme,
		IconSize:  icon.DefaultSize,
	}
}
