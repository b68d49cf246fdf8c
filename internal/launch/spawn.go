package launch

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/atomicstack/popup-launcher/internal/logging/events"
)

const (
	SpawnExec  = "exec"
	SpawnTmux  = "tmux"
	SpawnPrint = "print"
)

// Spawner starts a program without waiting for it. Implementations may not
// be able to observe every failure; a nil error only means the request was
// issued.
type Spawner interface {
	Spawn(program string, args []string) error
}

// ExecSpawner starts the program directly, detached from the launcher's
// session so it survives the popup closing.
type ExecSpawner struct {
	Dir string
	Env []string

	start func(*exec.Cmd) error
}

func (s ExecSpawner) Spawn(program string, args []string) error {
	cmd := exec.Command(program, args...)
	cmd.Dir = s.Dir
	if s.Env != nil {
		cmd.Env = s.Env
	}
	detach(cmd)
	start := s.start
	if start == nil {
		start = startAndReap
	}
	return start(cmd)
}

// startAndReap starts cmd and reaps it in the background. Dispatch never
// waits on the child.
func startAndReap(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			events.Launch.Error(fmt.Errorf("%w: %s: %w", ErrDispatch, cmd.Path, err))
		}
	}()
	return nil
}

// TmuxSpawner opens the program in a new background tmux window.
type TmuxSpawner struct {
	SocketPath string

	run func(name string, args ...string) error
}

func (s TmuxSpawner) Spawn(program string, args []string) error {
	tmuxArgs := append(baseArgs(s.SocketPath), "new-window", "-d", program)
	tmuxArgs = append(tmuxArgs, args...)
	run := s.run
	if run == nil {
		run = runCommand
	}
	return run("tmux", tmuxArgs...)
}

func runCommand(name string, args ...string) error {
	output, err := exec.Command(name, args...).CombinedOutput() //nolint:gosec
	if err != nil {
		return fmt.Errorf("%s %s: %w (output: %s)", name, strings.Join(args, " "), err, strings.TrimSpace(string(output)))
	}
	return nil
}

func baseArgs(socketPath string) []string {
	if strings.TrimSpace(socketPath) == "" {
		return []string{}
	}
	return []string{"-S", socketPath}
}

// PrintSpawner writes the command line instead of running it, one per line.
type PrintSpawner struct {
	W io.Writer
}

func (s PrintSpawner) Spawn(program string, args []string) error {
	parts := append([]string{program}, args...)
	_, err := fmt.Fprintln(s.W, strings.Join(parts, " "))
	return err
}

// NewSpawner builds the spawner for a mode name. out receives print output.
func NewSpawner(mode, socketPath string, out io.Writer) (Spawner, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", SpawnExec:
		return ExecSpawner{}, nil
	case SpawnTmux:
		socket, err := ResolveSocketPath(socketPath)
		if err != nil {
			return nil, fmt.Errorf("resolve socket path: %w", err)
		}
		return TmuxSpawner{SocketPath: socket}, nil
	case SpawnPrint:
		return PrintSpawner{W: out}, nil
	default:
		return nil, fmt.Errorf("unknown spawn mode %q (available: exec, print, tmux)", mode)
	}
}
