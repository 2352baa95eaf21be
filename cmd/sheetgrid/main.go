package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/sheetgrid/app"
	"github.com/lixenwraith/sheetgrid/config"
	"github.com/lixenwraith/sheetgrid/feedback"
	"github.com/lixenwraith/sheetgrid/render"
	"github.com/lixenwraith/sheetgrid/sheet"
	"github.com/lixenwraith/sheetgrid/teaview"
	"golang.org/x/term"
)

var (
	configPath = flag.String("config", "", "TOML config file")
	filePath   = flag.String("file", "", "csv, xlsx or xls file to open (demo data when empty)")
	frontend   = flag.String("frontend", "", "front end: tcell or tea (overrides config)")
	frozenRows = flag.Int("frozen-rows", -1, "frozen row count (overrides config)")
	frozenCols = flag.Int("frozen-cols", -1, "frozen column count (overrides config)")
	logPath    = flag.String("log", "", "log file path (overrides config, logging is off when both are empty)")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid settings: %v\n", err)
		os.Exit(2)
	}

	path := *logPath
	if path == "" {
		path = cfg.UI.LogFile
	}
	if logFile := setupLogging(path); logFile != nil {
		defer logFile.Close()
	}

	table, err := loadTable(*filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load data: %v\n", err)
		os.Exit(1)
	}
	log.Printf("loaded %d rows x %d columns", table.NumRows(), table.NumCols())

	s := buildSheet(cfg, table)

	// Not attached to a terminal: print measurements instead of running the UI
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(report(s, cfg.Grid.CellPadding))
		return
	}

	var player feedback.Player = feedback.Nop{}
	if cfg.Audio.Enabled {
		player = feedback.NewSpeakerPlayer(feedback.Settings{
			Frequency: cfg.Audio.Frequency,
			Duration:  cfg.Audio.Duration(),
			Volume:    0.25,
		})
		if sp, ok := player.(*feedback.SpeakerPlayer); ok {
			defer sp.Close()
		}
	}

	switch cfg.UI.Frontend {
	case config.FrontendTea:
		m := teaview.New(s, player)
		m.Controller().Locator().SetCellHorizontalPadding(cfg.Grid.CellPadding)
		if err := teaview.Run(m, cfg.UI.Mouse); err != nil {
			fmt.Fprintf(os.Stderr, "Program failed: %v\n", err)
			os.Exit(1)
		}
	default:
		if err := runTcell(cfg, s, player); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
			os.Exit(1)
		}
	}
}

// applyFlags overlays command-line overrides on cfg
func applyFlags(cfg *config.Config) {
	if *frontend != "" {
		cfg.UI.Frontend = *frontend
	}
	if *frozenRows >= 0 {
		cfg.Grid.FrozenRows = *frozenRows
	}
	if *frozenCols >= 0 {
		cfg.Grid.FrozenColumns = *frozenCols
	}
}

// loadTable reads path, or generates demo data when path is empty
func loadTable(path string) (*sheet.Table, error) {
	if path == "" {
		return demoTable(), nil
	}
	return sheet.Load(path)
}

func runTcell(cfg *config.Config, s *render.Sheet, player feedback.Player) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nsheetgrid crashed: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	if cfg.UI.Mouse {
		screen.EnableMouse()
	}
	a := app.New(screen, s, player)
	a.Locator().SetCellHorizontalPadding(cfg.Grid.CellPadding)
	a.Run()
	return nil
}
