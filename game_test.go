package solitaire

import (
	"math/rand/v2"
	"testing"
)

func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func startTestGame(t *testing.T, cfg RunConfig) *Game {
	t.Helper()
	g, err := NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	stage, key := g.Registry().Current()
	if key != PreloadScene {
		t.Fatalf("first scene = %q, want PreloadScene", key)
	}
	if err := stage.Update(0); err != nil {
		t.Fatalf("preload: %v", err)
	}
	return g
}

func TestGamePreloadStartsGameScene(t *testing.T) {
	g := startTestGame(t, RunConfig{Layout: testLayout(), Seed: 7})
	if _, key := g.Registry().Current(); key != GameScene {
		t.Errorf("scene after preload = %q, want GameScene", key)
	}
	if g.Board() == nil || g.sheet == nil {
		t.Fatal("game scene has no board")
	}
	if w, h := g.Layout(1920, 1080); w != 640 || h != 360 {
		t.Errorf("Layout = %dx%d, want 640x360", w, h)
	}
}

func TestGameSeedIsDeterministic(t *testing.T) {
	a := startTestGame(t, RunConfig{Layout: testLayout(), Seed: 42})
	b := startTestGame(t, RunConfig{Layout: testLayout(), Seed: 42})
	for i := range a.Board().Tableau {
		fa, fb := a.Board().Tableau[i].Top().Frame, b.Board().Tableau[i].Top().Frame
		if fa != fb {
			t.Errorf("pile %d top: %d vs %d", i, fa, fb)
		}
		if fa == CardBackFrame {
			t.Errorf("pile %d top card is face down", i)
		}
	}
}

func TestGameInvalidLayout(t *testing.T) {
	l := testLayout()
	l.Scale = 0
	if _, err := NewGame(RunConfig{Layout: l}); err == nil {
		t.Error("expected invalid layout error")
	}
}

func TestGameMissingSheet(t *testing.T) {
	l := testLayout()
	l.SheetPath = t.TempDir() + "/missing.png"
	g, err := NewGame(RunConfig{Layout: l})
	if err != nil {
		t.Fatal(err)
	}
	stage, _ := g.Registry().Current()
	if err := stage.Update(0); err == nil {
		t.Error("expected sheet load error")
	}
	if _, key := g.Registry().Current(); key != PreloadScene {
		t.Errorf("scene = %q, want to stay on PreloadScene", key)
	}
}

func TestGameToggleDebugPersists(t *testing.T) {
	settings := NewSettingsStore(nil)
	g := startTestGame(t, RunConfig{Layout: testLayout(), Settings: settings, Seed: 1})

	g.ToggleDebug()
	if !g.Board().Layout.Debug || !g.Board().Scene.DebugMode() {
		t.Error("toggle did not enable board debug")
	}
	if !settings.Settings().DebugOverlay {
		t.Error("toggle not stored in settings")
	}

	g.ToggleDebug()
	if g.Board().Scene.DebugMode() || settings.Settings().DebugOverlay {
		t.Error("second toggle did not disable debug")
	}
}

func TestGameDebugFromSettings(t *testing.T) {
	settings := NewSettingsStore(nil)
	settings.Update(Settings{DebugOverlay: true, WindowScale: 1})
	g := startTestGame(t, RunConfig{Layout: testLayout(), Settings: settings, Seed: 1})
	if !g.Board().Scene.DebugMode() {
		t.Error("saved debug overlay not applied")
	}
}
