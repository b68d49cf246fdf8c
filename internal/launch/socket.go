package launch

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// ResolveSocketPath picks the tmux server socket: the explicit value, then
// $POPUP_LAUNCHER_SOCKET, then the server named in $TMUX, then tmux's
// default location.
func ResolveSocketPath(flagValue string) (string, error) {
	return resolveSocketPath(flagValue, os.Getenv)
}

func resolveSocketPath(flagValue string, getenv func(string) string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if envSocket := getenv("POPUP_LAUNCHER_SOCKET"); envSocket != "" {
		return envSocket, nil
	}
	if tmuxEnv := getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir := getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}
