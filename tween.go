package solitaire

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 float64 fields on a Node simultaneously.
// Call Update(dt) each frame; the group writes values to the node and marks
// it dirty. After the last step the fields hold the exact target values.
type TweenGroup struct {
	tweens [2]*gween.Tween
	fields [2]*float64
	final  [2]float64
	count  int
	target *Node
	delay  float32
	Done   bool
}

// Update advances all tweens by dt seconds.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.delay > 0 {
		g.delay -= dt
		if g.delay > 0 {
			return
		}
		dt = -g.delay
		g.delay = 0
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		if finished {
			*g.fields[i] = g.final[i]
		} else {
			*g.fields[i] = float64(val)
			allDone = false
		}
	}
	g.Done = allDone
	g.target.MarkDirty()
}

// Delay postpones the start of the group by seconds and returns g.
func (g *TweenGroup) Delay(seconds float32) *TweenGroup {
	g.delay = seconds
	return g
}

// TweenPosition animates node.X and node.Y from their current values to
// (toX, toY) over duration seconds.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(node.Y), float32(toY), duration, fn)
	g.fields[0], g.fields[1] = &node.X, &node.Y
	g.final[0], g.final[1] = toX, toY
	return g
}

// TweenAlpha animates node.Alpha to the target value over duration seconds.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Alpha), float32(to), duration, fn)
	g.fields[0] = &node.Alpha
	g.final[0] = to
	return g
}

// Play runs tweens on s until all are done, then calls onDone (may be nil).
func (s *Scene) Play(tweens []*TweenGroup, onDone func()) {
	s.OnUpdate(func(dt float64) bool {
		running := false
		for _, g := range tweens {
			g.Update(float32(dt))
			if !g.Done {
				running = true
			}
		}
		if !running && onDone != nil {
			onDone()
		}
		return running
	})
}
