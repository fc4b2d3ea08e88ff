package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/holdmenu/internal/config"
	"github.com/jask/holdmenu/internal/layout"
	"github.com/jask/holdmenu/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	closeLog, err := setupLog(cfg.Log.Path)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := log.Default()

	app := tui.New(cfg,
		tui.WithLogger(logger),
		tui.WithCommitHandler(func(id layout.ItemID) {
			logger.Printf("dispatch %s", id)
		}),
	)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Printf("run: %v", err)
		return err
	}
	return nil
}

// setupLog points the standard logger at path, or discards it when path is
// empty. The terminal belongs to the TUI.
func setupLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "holdmenu")
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return func() { f.Close() }, nil
}
