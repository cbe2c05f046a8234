package solitaire

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneKey names a registered stage.
type SceneKey string

const (
	PreloadScene SceneKey = "PreloadScene"
	GameScene    SceneKey = "GameScene"
)

var (
	ErrUnknownScene = errors.New("solitaire: unknown scene")
	ErrSceneExists  = errors.New("solitaire: scene already registered")
)

// Stage is one screen of the game driven by the Game loop.
type Stage interface {
	Update(dt float64) error
	Draw(screen *ebiten.Image)
}

// StageFactory builds a stage when it is started.
type StageFactory func() (Stage, error)

// Registry maps scene keys to stage factories and tracks the running stage.
type Registry struct {
	factories  map[SceneKey]StageFactory
	current    Stage
	currentKey SceneKey
	debug      bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[SceneKey]StageFactory)}
}

// Register adds a factory under key.
func (r *Registry) Register(key SceneKey, factory StageFactory) error {
	if factory == nil {
		panic("solitaire: nil stage factory for " + string(key))
	}
	if _, ok := r.factories[key]; ok {
		return fmt.Errorf("%w: %s", ErrSceneExists, key)
	}
	r.factories[key] = factory
	return nil
}

// Start builds the stage registered under key and makes it current. On
// failure the previous stage stays current.
func (r *Registry) Start(key SceneKey) error {
	factory, ok := r.factories[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownScene, key)
	}
	stage, err := factory()
	if err != nil {
		return fmt.Errorf("solitaire: start %s: %w", key, err)
	}
	debugf(r.debug, "scene %s -> %s", r.currentKey, key)
	r.current = stage
	r.currentKey = key
	return nil
}

// Current returns the running stage and its key. Both are zero before the
// first Start.
func (r *Registry) Current() (Stage, SceneKey) {
	return r.current, r.currentKey
}

// SetDebug enables scene-switch logging.
func (r *Registry) SetDebug(enabled bool) {
	r.debug = enabled
}
