package solitaire

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandSprite CommandType = iota // DrawImage
	CommandRect                      // vector rectangle fill or stroke
)

// RenderCommand is a single draw instruction emitted during scene traversal.
// Commands are emitted in painter order: parents before children, siblings
// by ascending ZIndex, ties in insertion order.
type RenderCommand struct {
	Type      CommandType
	Node      *Node
	Transform [6]float64
	Image     *ebiten.Image
	Color     Color
	Alpha     float64

	// Rect-only fields, in local units.
	Width, Height float64
	Filled        bool
	StrokeColor   Color
	StrokeWidth   float64
}

// Draw renders the scene to screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.RGBA())
	}
	s.emitCommands()
	s.submit(screen)
}

// emitCommands refreshes transforms and rebuilds s.commands. Drag handlers
// move nodes after Update refreshed transforms, so Draw recomputes.
func (s *Scene) emitCommands() []RenderCommand {
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.commands = s.commands[:0]
	s.traverse(s.root)
	return s.commands
}

func (s *Scene) traverse(n *Node) {
	if !n.Visible {
		return
	}
	switch n.Type {
	case NodeTypeSprite:
		if n.Image != nil {
			s.commands = append(s.commands, RenderCommand{
				Type:      CommandSprite,
				Node:      n,
				Transform: n.worldTransform,
				Image:     n.Image,
				Color:     n.Color,
				Alpha:     n.worldAlpha,
			})
		}
	case NodeTypeRect:
		s.commands = append(s.commands, RenderCommand{
			Type:        CommandRect,
			Node:        n,
			Transform:   n.worldTransform,
			Color:       n.Color,
			Alpha:       n.worldAlpha,
			Width:       n.Width,
			Height:      n.Height,
			Filled:      n.Filled,
			StrokeColor: n.StrokeColor,
			StrokeWidth: n.StrokeWidth,
		})
	}
	for _, child := range n.paintOrder() {
		s.traverse(child)
	}
}

func (s *Scene) submit(target *ebiten.Image) {
	var op ebiten.DrawImageOptions
	for i := range s.commands {
		cmd := &s.commands[i]
		switch cmd.Type {
		case CommandSprite:
			op.GeoM.Reset()
			op.GeoM.SetElement(0, 0, cmd.Transform[0])
			op.GeoM.SetElement(1, 0, cmd.Transform[1])
			op.GeoM.SetElement(0, 1, cmd.Transform[2])
			op.GeoM.SetElement(1, 1, cmd.Transform[3])
			op.GeoM.SetElement(0, 2, cmd.Transform[4])
			op.GeoM.SetElement(1, 2, cmd.Transform[5])
			op.ColorScale.Reset()
			op.ColorScale.Scale(float32(cmd.Color.R), float32(cmd.Color.G), float32(cmd.Color.B), 1)
			op.ColorScale.ScaleAlpha(float32(cmd.Color.A * cmd.Alpha))
			op.Filter = ebiten.FilterLinear
			target.DrawImage(cmd.Image, &op)
		case CommandRect:
			submitRect(target, cmd)
		}
	}
}

func submitRect(target *ebiten.Image, cmd *RenderCommand) {
	x := float32(cmd.Transform[4])
	y := float32(cmd.Transform[5])
	w := float32(cmd.Width * cmd.Transform[0])
	h := float32(cmd.Height * cmd.Transform[3])
	if cmd.Filled {
		fill := cmd.Color
		fill.A *= cmd.Alpha
		vector.DrawFilledRect(target, x, y, w, h, fill.RGBA(), false)
	}
	if cmd.StrokeWidth > 0 {
		stroke := cmd.StrokeColor
		stroke.A *= cmd.Alpha
		vector.StrokeRect(target, x, y, w, h, float32(cmd.StrokeWidth), stroke.RGBA(), false)
	}
}
