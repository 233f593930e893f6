package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Binck360/blueprint/internal/gallery"
	"github.com/Binck360/blueprint/theme"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	var configPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/blueprint/config.yml)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Blueprint Widget Gallery\n")
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Built:   %s\n", buildTime)
		return
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg galleryConfig) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}
	configDir := filepath.Join(home, ".config", "blueprint")
	if err := theme.Initialize(cfg.Skin, configDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load skin '%s': %v (using default)\n", cfg.Skin, err)
	}

	minDate, err := parseBound(cfg.MinDate, cfg.Format)
	if err != nil {
		return fmt.Errorf("min-date: %w", err)
	}
	maxDate, err := parseBound(cfg.MaxDate, cfg.Format)
	if err != nil {
		return fmt.Errorf("max-date: %w", err)
	}

	gcfg := gallery.Config{
		Format:          cfg.Format,
		MinDate:         minDate,
		MaxDate:         maxDate,
		Vertical:        cfg.Vertical,
		Animate:         cfg.Animate,
		ActivePanelOnly: cfg.RenderActivePanelOnly,
	}
	app := gallery.NewApp(gallery.NewDashboard(gcfg), gallery.NewCalendarPage(gcfg))

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("the gallery requires a real terminal")
		}
		return fmt.Errorf("error running gallery: %w", err)
	}

	return nil
}
