package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the flags that can be set from a config file. Fields
// start at their defaults; decoding only overwrites keys that are present.
type fileConfig struct {
	Width     int               `yaml:"width" toml:"width"`
	Height    int               `yaml:"height" toml:"height"`
	Footer    bool              `yaml:"footer" toml:"footer"`
	Verbose   bool              `yaml:"verbose" toml:"verbose"`
	Trace     bool              `yaml:"trace" toml:"trace"`
	LogFile   string            `yaml:"log_file" toml:"log_file"`
	Scorer    string            `yaml:"scorer" toml:"scorer"`
	Spawn     string            `yaml:"spawn" toml:"spawn"`
	Socket    string            `yaml:"socket" toml:"socket"`
	KeepOpen  bool              `yaml:"keep_open" toml:"keep_open"`
	IconTheme string            `yaml:"icon_theme" toml:"icon_theme"`
	IconSize  int               `yaml:"icon_size" toml:"icon_size"`
	Keys      map[string]string `yaml:"keys" toml:"keys"`

	path string
}

var defaultNames = []string{"config.yaml", "config.yml", "config.toml"}

// configPath finds the config file named by -config or the environment, or
// the first default file that exists. explicit reports whether the user
// asked for a specific file.
func configPath(args []string, env map[string]string) (string, bool) {
	if p, ok := flagValue(args, "config"); ok {
		return p, true
	}
	if p := env[envConfig]; p != "" {
		return p, true
	}
	dir := env["XDG_CONFIG_HOME"]
	if dir == "" {
		home := env["HOME"]
		if home == "" {
			return "", false
		}
		dir = filepath.Join(home, ".config")
	}
	for _, name := range defaultNames {
		p := filepath.Join(dir, "popup-launcher", name)
		if _, err := os.Stat(p); err == nil {
			return p, false
		}
	}
	return "", false
}

// flagValue scans for a single flag ahead of the real parse.
func flagValue(args []string, name string) (string, bool) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		trimmed := strings.TrimLeft(arg, "-")
		if trimmed == arg || len(arg)-len(trimmed) > 2 {
			continue
		}
		if v, ok := strings.CutPrefix(trimmed, name+"="); ok {
			return v, true
		}
		if trimmed == name && i+1 < len(args) {
			return args[i+1], true
		}
	}
	return "", false
}

func readFile(path string, explicit bool) (fileConfig, error) {
	cfg := defaultFile()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return fileConfig{}, fmt.Errorf("read config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml", "":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return fileConfig{}, fmt.Errorf("%w: unsupported config format %q", ErrInvalid, filepath.Ext(path))
	}
	if err != nil {
		return fileConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.path = path
	return cfg, nil
}
