package solitaire

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures Run and NewGame.
type RunConfig struct {
	Title  string
	Layout Layout
	// Settings may be nil; the debug overlay toggle is then not persisted.
	Settings *SettingsStore
	// Seed shuffles the dealt face cards. Zero picks a random seed.
	Seed uint64
}

// Game implements ebiten.Game over a Registry holding the preload and game
// stages.
type Game struct {
	registry *Registry
	layout   Layout
	settings *SettingsStore
	seed     uint64

	sheet *SpriteSheet
	board *Board
}

// NewGame registers the stages and starts the preload stage.
func NewGame(cfg RunConfig) (*Game, error) {
	if err := cfg.Layout.Validate(); err != nil {
		return nil, fmt.Errorf("solitaire: invalid layout: %w", err)
	}
	g := &Game{
		registry: NewRegistry(),
		layout:   cfg.Layout,
		settings: cfg.Settings,
		seed:     cfg.Seed,
	}
	if g.settings != nil && g.settings.Settings().DebugOverlay {
		g.layout.Debug = true
	}
	if g.seed == 0 {
		g.seed = rand.Uint64()
	}
	g.registry.SetDebug(g.layout.Debug)

	if err := g.registry.Register(PreloadScene, func() (Stage, error) {
		return &preloadStage{game: g}, nil
	}); err != nil {
		return nil, err
	}
	if err := g.registry.Register(GameScene, g.newGameStage); err != nil {
		return nil, err
	}
	if err := g.registry.Start(PreloadScene); err != nil {
		return nil, err
	}
	return g, nil
}

// Registry returns the game's stage registry.
func (g *Game) Registry() *Registry {
	return g.registry
}

// Board returns the table once the game stage has started, else nil.
func (g *Game) Board() *Board {
	return g.board
}

// Update advances the current stage by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.ToggleDebug()
	}
	stage, _ := g.registry.Current()
	if stage == nil {
		return nil
	}
	return stage.Update(1 / float64(ebiten.TPS()))
}

// Draw renders the current stage.
func (g *Game) Draw(screen *ebiten.Image) {
	if stage, _ := g.registry.Current(); stage != nil {
		stage.Draw(screen)
	}
}

// Layout returns the logical screen size from the table layout.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.layout.ScreenWidth, g.layout.ScreenHeight
}

// ToggleDebug flips the debug overlay and saves the choice.
func (g *Game) ToggleDebug() {
	g.layout.Debug = !g.layout.Debug
	g.registry.SetDebug(g.layout.Debug)
	if g.board != nil {
		g.board.SetDebug(g.layout.Debug)
	}
	if g.settings == nil {
		return
	}
	s := g.settings.Settings()
	s.DebugOverlay = g.layout.Debug
	g.settings.Update(s)
	if err := g.settings.Save(); err != nil {
		log.Printf("[solitaire] %v", err)
	}
}

func (g *Game) loadSheet() (*SpriteSheet, error) {
	if g.layout.SheetPath == "" {
		return NewPlaceholderSheet(g.layout.CardWidth, g.layout.CardHeight), nil
	}
	return LoadSpriteSheetFile(g.layout.SheetPath, g.layout.CardWidth, g.layout.CardHeight)
}

func (g *Game) newGameStage() (Stage, error) {
	if g.sheet == nil {
		return nil, fmt.Errorf("card sheet not loaded")
	}
	scene := NewScene()
	deck := NewDeck(rand.New(rand.NewPCG(g.seed, g.seed>>1|1)))
	g.board = NewBoard(scene, g.sheet, g.layout, WithDeck(deck))
	g.board.Deal(nil)
	return &gameStage{scene: scene}, nil
}

// preloadStage obtains the card sheet on its first update and hands over
// to the game stage.
type preloadStage struct {
	game *Game
}

func (p *preloadStage) Update(float64) error {
	sheet, err := p.game.loadSheet()
	if err != nil {
		return err
	}
	p.game.sheet = sheet
	return p.game.registry.Start(GameScene)
}

func (p *preloadStage) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, "Loading...")
}

type gameStage struct {
	scene *Scene
}

func (s *gameStage) Update(dt float64) error {
	s.scene.Update(dt)
	return nil
}

func (s *gameStage) Draw(screen *ebiten.Image) {
	s.scene.Draw(screen)
}

// Run opens a window and runs the game until it is closed.
func Run(cfg RunConfig) error {
	g, err := NewGame(cfg)
	if err != nil {
		return err
	}
	if cfg.Title == "" {
		cfg.Title = "Solitaire"
	}
	scale := 1.0
	if cfg.Settings != nil {
		scale = cfg.Settings.Settings().WindowScale
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(int(float64(g.layout.ScreenWidth)*scale), int(float64(g.layout.ScreenHeight)*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
