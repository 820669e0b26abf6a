// Command fragnav-demo is a bottom-tab navigation sample in the terminal.
//
// Configuration comes from $FRAGNAV_CONFIG or ~/.config/fragnav/config.toml,
// with FRAGNAV_* environment overrides. Navigation state is saved to the
// configured bundle on quit and restored on the next start.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrandonKowalski/fragnav/pkg/fragnav"
	"github.com/BrandonKowalski/fragnav/pkg/fragnav/bundle"
	"github.com/BrandonKowalski/fragnav/pkg/fragnav/config"
	"github.com/BrandonKowalski/fragnav/pkg/fragnav/host"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logPath := cfg.Log.Path
	if logPath == "" {
		logPath = filepath.Join(os.TempDir(), "fragnav-demo.log")
	}
	fragnav.Init(fragnav.LogOptions{LogPath: logPath, LogLevel: cfg.Log.Level, QuietStderr: true})
	defer fragnav.Close()

	ctx := context.Background()
	b, err := config.OpenBundle(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open state bundle: %w", err)
	}
	defer b.Close()

	key := cfg.StateKey()
	saved, err := bundle.LoadOrNil(ctx, b, key)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	tr, err := newTranslator(userLanguages()...)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	m, err := newModel(host.NewMemory(), cfg.Tabs, cfg.StartIndex, tr, cfg.Codec(), saved)
	if err != nil {
		return err
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return err
	}

	data, err := m.nav.SaveState()
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	if err := b.Save(ctx, key, data); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}
