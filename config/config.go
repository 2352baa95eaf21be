// Package config loads sheetgrid settings from TOML
package config

import (
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/sheetgrid/grid"
	"github.com/lixenwraith/sheetgrid/locator"
	"github.com/lixenwraith/sheetgrid/render"
	"github.com/pkg/errors"
)

// Frontend names
const (
	FrontendTcell = "tcell"
	FrontendTea   = "tea"
)

var ErrInvalid = errors.New("invalid config")

// Config is the root of the TOML document
type Config struct {
	Grid    GridConfig     `toml:"grid"`
	UI      UIConfig       `toml:"ui"`
	Audio   AudioConfig    `toml:"audio"`
	Columns []ColumnConfig `toml:"columns"`
}

// GridConfig is the [grid] section
type GridConfig struct {
	DefaultRowHeight   float64 `toml:"default_row_height"`
	DefaultColumnWidth float64 `toml:"default_column_width"`
	FrozenRows         int     `toml:"frozen_rows"`
	FrozenColumns      int     `toml:"frozen_columns"`
	CellPadding        float64 `toml:"cell_padding"`
	ColumnHeaderHeight int     `toml:"column_header_height"`
	RowHeaderWidth     int     `toml:"row_header_width"`
	AutoSize           bool    `toml:"auto_size"` // size columns to content on load
}

// UIConfig is the [ui] section
type UIConfig struct {
	Frontend string `toml:"frontend"`
	Mouse    bool   `toml:"mouse"`
	LogFile  string `toml:"log_file"`
}

// AudioConfig is the [audio] section
type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	Frequency  float64 `toml:"frequency"`
	DurationMs int     `toml:"duration_ms"`
}

// Duration returns tone length
func (a AudioConfig) Duration() time.Duration {
	return time.Duration(a.DurationMs) * time.Millisecond
}

// ColumnConfig is one [[columns]] entry
type ColumnConfig struct {
	Name    string  `toml:"name"`
	Format  string  `toml:"format"`
	Width   float64 `toml:"width"` // 0 = default width
	Loading bool    `toml:"loading"`
}

// Default returns built-in settings
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			DefaultRowHeight:   grid.DefaultRowHeight,
			DefaultColumnWidth: grid.DefaultColumnWidth,
			CellPadding:        locator.DefaultCellHorizontalPadding,
			ColumnHeaderHeight: grid.MinColumnHeaderHeight,
			RowHeaderWidth:     grid.MinRowHeaderWidth,
		},
		UI: UIConfig{
			Frontend: FrontendTcell,
			Mouse:    true,
		},
		Audio: AudioConfig{
			Enabled:    false,
			Frequency:  880,
			DurationMs: 30,
		},
	}
}

// Load reads path over defaults and validates the result
// Keys absent from the file keep their default values
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.Wrapf(ErrInvalid, "config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// LoadOrDefault is Load, returning defaults when path is empty or does not exist
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks sizes are non-negative and names are known
func (c *Config) Validate() error {
	g := c.Grid
	switch {
	case g.DefaultRowHeight <= 0:
		return errors.Wrapf(ErrInvalid, "[grid] default_row_height must be positive, got %v", g.DefaultRowHeight)
	case g.DefaultColumnWidth <= 0:
		return errors.Wrapf(ErrInvalid, "[grid] default_column_width must be positive, got %v", g.DefaultColumnWidth)
	case g.FrozenRows < 0 || g.FrozenColumns < 0:
		return errors.Wrapf(ErrInvalid, "[grid] frozen counts must be non-negative, got %d/%d", g.FrozenRows, g.FrozenColumns)
	case g.CellPadding < 0:
		return errors.Wrapf(ErrInvalid, "[grid] cell_padding must be non-negative, got %v", g.CellPadding)
	case g.ColumnHeaderHeight < grid.MinColumnHeaderHeight:
		return errors.Wrapf(ErrInvalid, "[grid] column_header_height must be at least %d, got %d", grid.MinColumnHeaderHeight, g.ColumnHeaderHeight)
	case g.RowHeaderWidth < grid.MinRowHeaderWidth:
		return errors.Wrapf(ErrInvalid, "[grid] row_header_width must be at least %d, got %d", grid.MinRowHeaderWidth, g.RowHeaderWidth)
	}

	switch c.UI.Frontend {
	case FrontendTcell, FrontendTea:
	default:
		return errors.Wrapf(ErrInvalid, "[ui] unknown frontend %q", c.UI.Frontend)
	}

	if c.Audio.Frequency <= 0 || c.Audio.DurationMs < 0 {
		return errors.Wrapf(ErrInvalid, "[audio] frequency must be positive and duration_ms non-negative")
	}

	for i, col := range c.Columns {
		if _, ok := render.ParseFormat(col.Format); !ok {
			return errors.Wrapf(ErrInvalid, "[[columns]] #%d: unknown format %q", i, col.Format)
		}
		if col.Width < 0 {
			return errors.Wrapf(ErrInvalid, "[[columns]] #%d: width must be non-negative, got %v", i, col.Width)
		}
	}
	return nil
}

// RenderColumns converts [[columns]] into render column definitions
func (c *Config) RenderColumns() []render.Column {
	cols := make([]render.Column, len(c.Columns))
	for i, cc := range c.Columns {
		f, _ := render.ParseFormat(cc.Format)
		cols[i] = render.Column{ID: cc.Name, Name: cc.Name, Format: f, Loading: cc.Loading}
	}
	return cols
}

// ColumnWidths returns n column widths: configured where set, default otherwise
func (c *Config) ColumnWidths(n int) []float64 {
	widths := grid.Uniform(n, c.Grid.DefaultColumnWidth)
	for i, cc := range c.Columns {
		if i < n && cc.Width > 0 {
			widths[i] = cc.Width
		}
	}
	return widths
}
