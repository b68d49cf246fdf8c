package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-launcher/internal/catalog"
	"github.com/atomicstack/popup-launcher/internal/desktop"
	"github.com/atomicstack/popup-launcher/internal/format/table"
	"github.com/atomicstack/popup-launcher/internal/icon"
	"github.com/atomicstack/popup-launcher/internal/launch"
	"github.com/atomicstack/popup-launcher/internal/logging"
	"github.com/atomicstack/popup-launcher/internal/nav"
	"github.com/atomicstack/popup-launcher/internal/rank"
	"github.com/atomicstack/popup-launcher/internal/session"
	"github.com/atomicstack/popup-launcher/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Query      string
	Scorer     string
	Spawn      string
	SocketPath string
	KeepOpen   bool
	IconTheme  string
	IconSize   int
	List       bool
	Keys       map[string]string
}

// Run loads the catalog and either prints it or runs the Bubble Tea program.
func Run(ctx context.Context, cfg Config) error {
	return run(ctx, cfg, os.Stdout, os.Getenv)
}

func run(ctx context.Context, cfg Config, stdout io.Writer, getenv func(string) string) error {
	cat := LoadCatalog(ctx, cfg, getenv)

	scorer, err := rank.ScorerByName(cfg.Scorer)
	if err != nil {
		return err
	}
	if cfg.List {
		return List(stdout, cat, cfg.Query, scorer)
	}

	keymap, err := nav.DefaultKeymap().Merge(cfg.Keys)
	if err != nil {
		return fmt.Errorf("keys: %w", err)
	}
	// print-mode output is held until the alt screen is gone
	var printed bytes.Buffer
	spawner, err := launch.NewSpawner(cfg.Spawn, cfg.SocketPath, &printed)
	if err != nil {
		return err
	}

	sess := session.New(cat, scorer, launch.NewLauncher(spawner))
	if cfg.Query != "" {
		sess.SetQuery(cfg.Query)
	}
	model := ui.NewModel(sess, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		KeepOpen:   cfg.KeepOpen,
		Keymap:     keymap,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	if printed.Len() > 0 {
		if _, werr := stdout.Write(printed.Bytes()); werr != nil && err == nil {
			err = werr
		}
	}
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// LoadCatalog reads the desktop-entry catalog. A failed load degrades to
// the empty catalog so the launcher still opens.
func LoadCatalog(ctx context.Context, cfg Config, getenv func(string) string) *catalog.Catalog {
	loader := desktop.Loader{
		Dirs:  desktop.DataDirs(getenv),
		Icons: icon.NewResolver(cfg.IconTheme, cfg.IconSize, getenv),
	}
	cat, err := loader.Load(ctx)
	if err != nil {
		logging.Error(fmt.Errorf("load catalog: %w", err))
		return catalog.Empty()
	}
	return cat
}

// List writes the ranked view as aligned rows: position, name, command.
func List(w io.Writer, cat *catalog.Catalog, query string, scorer rank.Scorer) error {
	view := rank.Rank(cat, query, scorer)
	rows := make([][]string, 0, len(view))
	for i, c := range view {
		rows = append(rows, []string{strconv.Itoa(i + 1), c.Name, c.Command})
	}
	return table.Write(w, rows, []table.Alignment{table.AlignRight, table.AlignLeft, table.AlignLeft})
}
