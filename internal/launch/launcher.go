package launch

import (
	"fmt"

	"github.com/atomicstack/popup-launcher/internal/logging/events"
)

// Launcher splits command lines and hands them to a Spawner.
type Launcher struct {
	spawner Spawner
}

func NewLauncher(spawner Spawner) *Launcher {
	return &Launcher{spawner: spawner}
}

// Dispatch launches line. It does not wait for the process.
func (l *Launcher) Dispatch(line string) (Command, error) {
	cmd, err := Split(line)
	if err != nil {
		events.Launch.Error(err)
		return Command{}, err
	}
	events.Launch.Dispatch(cmd.Program, cmd.Args)
	if l == nil || l.spawner == nil {
		return cmd, fmt.Errorf("%w: no spawner configured", ErrDispatch)
	}
	if err := l.spawner.Spawn(cmd.Program, cmd.Args); err != nil {
		err = fmt.Errorf("%w: %s: %w", ErrDispatch, cmd.Program, err)
		events.Launch.Error(err)
		return cmd, err
	}
	return cmd, nil
}
