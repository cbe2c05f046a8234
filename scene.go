package solitaire

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const defaultCommandCap = 128

// Scene owns a node tree, its input state and its render buffers.
type Scene struct {
	root  *Node
	debug bool

	// ClearColor fills the target before drawing. Zero value leaves the
	// target untouched.
	ClearColor Color

	// Render state
	commands []RenderCommand

	// Input state
	handlers     handlerRegistry
	pointers     [maxPointers]pointerState
	hitBuf       []*Node
	dragDeadZone float64
	inputLocked  bool
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent

	// Per-frame hooks (tweens, overlays)
	updaters []func(dt float64) bool
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{
		root:         NewContainer("root"),
		commands:     make([]RenderCommand, 0, defaultCommandCap),
		dragDeadZone: defaultDragDeadZone,
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Update refreshes world transforms, processes input and advances per-frame
// hooks by dt seconds.
func (s *Scene) Update(dt float64) {
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.processInput()
	s.runUpdaters(dt)
}

// OnUpdate registers fn to run once per frame after input. fn returns false
// to unregister itself.
func (s *Scene) OnUpdate(fn func(dt float64) bool) {
	s.updaters = append(s.updaters, fn)
}

func (s *Scene) runUpdaters(dt float64) {
	if len(s.updaters) == 0 {
		return
	}
	// Hooks registered while running are appended after the survivors.
	current := s.updaters
	s.updaters = nil
	kept := make([]func(dt float64) bool, 0, len(current))
	for _, fn := range current {
		if fn(dt) {
			kept = append(kept, fn)
		}
	}
	s.updaters = append(kept, s.updaters...)
}

// SetInputLocked stops new pointer presses from reaching the scene. A press
// already in progress still completes so drag end is always delivered.
func (s *Scene) SetInputLocked(locked bool) {
	s.inputLocked = locked
}

// InputLocked reports whether new presses are being ignored.
func (s *Scene) InputLocked() bool {
	return s.inputLocked
}

// SetDebugMode enables or disables debug logging for this scene.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// DebugMode reports whether debug logging is enabled.
func (s *Scene) DebugMode() bool {
	return s.debug
}
