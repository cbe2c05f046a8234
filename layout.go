package solitaire

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Point is a layout coordinate in screen pixels.
type Point struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

// DealConfig controls the opening deal animation.
type DealConfig struct {
	Enabled bool `yaml:"enabled" toml:"enabled"`
	// Duration of one card's flight, in seconds.
	Duration float64 `yaml:"duration" toml:"duration"`
	// Stagger between consecutive cards, in seconds.
	Stagger float64 `yaml:"stagger" toml:"stagger"`
}

// Layout is the table geometry and presentation of the game scene.
type Layout struct {
	Debug bool    `yaml:"debug" toml:"debug"`
	Scale float64 `yaml:"scale" toml:"scale"`

	ScreenWidth  int    `yaml:"screenWidth" toml:"screen_width"`
	ScreenHeight int    `yaml:"screenHeight" toml:"screen_height"`
	ClearColor   uint32 `yaml:"clearColor" toml:"clear_color"`

	// Card sheet frame size in pixels, before Scale.
	CardWidth  int `yaml:"cardWidth" toml:"card_width"`
	CardHeight int `yaml:"cardHeight" toml:"card_height"`
	// SheetPath is an optional PNG card sheet; empty uses the generated one.
	SheetPath string `yaml:"sheetPath" toml:"sheet_path"`

	DrawPile        Point     `yaml:"drawPile" toml:"draw_pile"`
	DrawFanOffset   float64   `yaml:"drawFanOffset" toml:"draw_fan_offset"`
	DrawPileCards   int       `yaml:"drawPileCards" toml:"draw_pile_cards"`
	DiscardPile     Point     `yaml:"discardPile" toml:"discard_pile"`
	FoundationXs    []float64 `yaml:"foundationXs" toml:"foundation_xs"`
	FoundationY     float64   `yaml:"foundationY" toml:"foundation_y"`
	Tableau         Point     `yaml:"tableau" toml:"tableau"`
	TableauPiles    int       `yaml:"tableauPiles" toml:"tableau_piles"`
	PileSpacing     float64   `yaml:"pileSpacing" toml:"pile_spacing"`
	CascadeSpacing  float64   `yaml:"cascadeSpacing" toml:"cascade_spacing"`
	LocationBoxW    float64   `yaml:"locationBoxWidth" toml:"location_box_width"`
	LocationBoxH    float64   `yaml:"locationBoxHeight" toml:"location_box_height"`
	DrawZonePadding Point     `yaml:"drawZonePadding" toml:"draw_zone_padding"`

	DragAlpha    float64 `yaml:"dragAlpha" toml:"drag_alpha"`
	DragDepth    int     `yaml:"dragDepth" toml:"drag_depth"`
	DragDeadZone float64 `yaml:"dragDeadZone" toml:"drag_dead_zone"`

	Deal DealConfig `yaml:"deal" toml:"deal"`
}

// DefaultLayout returns the classic table used by the game scene.
func DefaultLayout() Layout {
	return Layout{
		Debug:           false,
		Scale:           1.5,
		ScreenWidth:     640,
		ScreenHeight:    360,
		ClearColor:      0x2e6b3f,
		CardWidth:       37,
		CardHeight:      52,
		DrawPile:        Point{X: 5, Y: 5},
		DrawFanOffset:   5,
		DrawPileCards:   3,
		DiscardPile:     Point{X: 85, Y: 5},
		FoundationXs:    []float64{360, 425, 490, 555},
		FoundationY:     5,
		Tableau:         Point{X: 40, Y: 92},
		TableauPiles:    7,
		PileSpacing:     85,
		CascadeSpacing:  DefaultCascadeGap,
		LocationBoxW:    56,
		LocationBoxH:    78,
		DrawZonePadding: Point{X: 20, Y: 12},
		DragAlpha:       DefaultDragAlpha,
		DragDepth:       DefaultDragDepth,
		DragDeadZone:    defaultDragDeadZone,
		Deal: DealConfig{
			Enabled:  true,
			Duration: 0.25,
			Stagger:  0.04,
		},
	}
}

// ErrUnknownLayoutFormat is returned for layout files that are neither YAML
// nor TOML.
var ErrUnknownLayoutFormat = errors.New("solitaire: unknown layout format")

// LayoutFormat names a layout file encoding.
type LayoutFormat string

const (
	FormatYAML LayoutFormat = "yaml"
	FormatTOML LayoutFormat = "toml"
)

// FormatForPath picks the layout format from a file extension.
func FormatForPath(path string) (LayoutFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLayoutFormat, path)
	}
}

// LoadLayout reads a layout file over DefaultLayout. Keys missing from the
// file keep their default values. The result is validated.
func LoadLayout(path string) (Layout, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return Layout{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("solitaire: read layout: %w", err)
	}
	l, err := ParseLayout(data, format)
	if err != nil {
		return Layout{}, fmt.Errorf("solitaire: layout %s: %w", path, err)
	}
	return l, nil
}

// ParseLayout decodes data over DefaultLayout and validates the result.
func ParseLayout(data []byte, format LayoutFormat) (Layout, error) {
	l := DefaultLayout()
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &l); err != nil {
			return Layout{}, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &l); err != nil {
			return Layout{}, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return Layout{}, fmt.Errorf("%w: %q", ErrUnknownLayoutFormat, format)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Encode writes the layout in the given format.
func (l Layout) Encode(format LayoutFormat) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(l)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(l); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayoutFormat, format)
	}
}

// Validate reports every problem with the layout, joined into one error.
func (l Layout) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}
	check(l.Scale > 0, "scale must be positive, got %v", l.Scale)
	check(l.ScreenWidth > 0 && l.ScreenHeight > 0, "screen size must be positive, got %dx%d", l.ScreenWidth, l.ScreenHeight)
	check(l.CardWidth > 0 && l.CardHeight > 0, "card size must be positive, got %dx%d", l.CardWidth, l.CardHeight)
	check(l.DrawPileCards >= 2, "drawPileCards must be at least 2, got %d", l.DrawPileCards)
	check(len(l.FoundationXs) == 4, "need 4 foundation positions, got %d", len(l.FoundationXs))
	check(l.TableauPiles > 0, "tableauPiles must be positive, got %d", l.TableauPiles)
	check(l.PileSpacing > 0, "pileSpacing must be positive, got %v", l.PileSpacing)
	check(l.CascadeSpacing > 0, "cascadeSpacing must be positive, got %v", l.CascadeSpacing)
	check(l.DragAlpha > 0 && l.DragAlpha <= 1, "dragAlpha must be in (0, 1], got %v", l.DragAlpha)
	check(l.DragDepth > 0, "dragDepth must be above the base depth 0, got %d", l.DragDepth)
	check(l.DragDeadZone >= 0, "dragDeadZone must not be negative, got %v", l.DragDeadZone)
	check(l.Deal.Duration >= 0 && l.Deal.Stagger >= 0, "deal timings must not be negative")
	return errors.Join(errs...)
}

// ScaledCardSize returns the on-screen card size.
func (l Layout) ScaledCardSize() (w, h float64) {
	return float64(l.CardWidth) * l.Scale, float64(l.CardHeight) * l.Scale
}

// TableauPilePosition returns the screen position of tableau pile i.
func (l Layout) TableauPilePosition(i int) Point {
	return Point{X: l.Tableau.X + float64(i)*l.PileSpacing, Y: l.Tableau.Y}
}
