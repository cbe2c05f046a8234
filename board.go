package solitaire

import (
	"fmt"
	"math/rand/v2"

	"github.com/tanema/gween/ease"
)

// locationBoxStroke outlines empty pile slots.
var locationBoxStroke = Color{R: 0, G: 0, B: 0, A: 0.5}

const locationBoxStrokeWidth = 2

// Board is the game table: draw, discard, foundation and tableau piles
// built on a scene from a Layout.
type Board struct {
	Layout Layout
	Scene  *Scene
	Sheet  *SpriteSheet

	DrawPile    []*Card
	DiscardPile []*Card // [0] bottom, [1] top
	Foundations []*Card
	Tableau     []*Pile

	DrawZone *Node
	Drag     *TableauDragController

	debugOverlays []*Node
	deck          []int
	dealing       bool
}

// BoardOption customizes NewBoard.
type BoardOption func(*Board)

// WithDeck sets the deal order of face frames. Tableau pile i shows
// deck[k] on its top card, where k counts top cards dealt so far.
func WithDeck(frames []int) BoardOption {
	return func(b *Board) {
		b.deck = frames
	}
}

// NewDeck returns the 52 face frames shuffled by r.
func NewDeck(r *rand.Rand) []int {
	frames := make([]int, CardBackFrame)
	for i := range frames {
		frames[i] = i
	}
	r.Shuffle(len(frames), func(i, j int) {
		frames[i], frames[j] = frames[j], frames[i]
	})
	return frames
}

// NewBoard builds every pile on s and wires tableau drag handling.
// The layout must be valid.
func NewBoard(s *Scene, sheet *SpriteSheet, layout Layout, opts ...BoardOption) *Board {
	b := &Board{Layout: layout, Scene: s, Sheet: sheet}
	for _, opt := range opts {
		opt(b)
	}

	s.ClearColor = ColorFromHex(layout.ClearColor)
	s.SetDragDeadZone(layout.DragDeadZone)

	b.createDrawPile()
	b.createDiscardPile()
	b.createFoundationPiles()
	b.createTableauPiles()

	b.Drag = NewTableauDragController(b.Tableau)
	b.Drag.Spacing = layout.CascadeSpacing
	b.Drag.DragAlpha = layout.DragAlpha
	b.Drag.DragDepth = layout.DragDepth
	b.Drag.Bind(s)

	b.SetDebug(layout.Debug)
	return b
}

func (b *Board) addLocationBox(name string, x, y float64) {
	box := NewRect(name, b.Layout.LocationBoxW, b.Layout.LocationBoxH, locationBoxStroke, locationBoxStrokeWidth)
	box.SetPosition(x, y)
	b.Scene.Root().AddChild(box)
}

func (b *Board) newCard(name string, x, y float64, draggable bool) *Card {
	return NewCard(name, b.Sheet, CardBackFrame, x, y, b.Layout.Scale, draggable)
}

func (b *Board) createDrawPile() {
	l := b.Layout
	root := b.Scene.Root()
	b.addLocationBox("draw_box", l.DrawPile.X, l.DrawPile.Y)

	b.DrawPile = make([]*Card, 0, l.DrawPileCards)
	for i := 0; i < l.DrawPileCards; i++ {
		c := b.newCard(fmt.Sprintf("draw_%d", i), l.DrawPile.X+float64(i)*l.DrawFanOffset, l.DrawPile.Y, false)
		b.DrawPile = append(b.DrawPile, c)
		root.AddChild(c.Node)
	}

	w, h := l.ScaledCardSize()
	b.DrawZone = NewZone("draw_zone", w+l.DrawZonePadding.X, h+l.DrawZonePadding.Y)
	b.DrawZone.OnPointerDown = func(PointerContext) {
		b.DrawCard()
	}
	root.AddChild(b.DrawZone)

	overlay := newDebugZoneOverlay(b.DrawZone)
	b.debugOverlays = append(b.debugOverlays, overlay)
	root.AddChild(overlay)
}

// DrawCard handles a click on the draw pile: the discard pile's bottom card
// takes the second draw card's frame and the top card's visibility, and the
// top card is shown face down.
func (b *Board) DrawCard() {
	debugf(b.Scene.DebugMode(), "draw pile clicked")
	bottom, top := b.DiscardPile[0], b.DiscardPile[1]
	bottom.SetFrame(b.DrawPile[1].Frame)
	bottom.Node.SetVisible(top.Node.Visible)
	top.SetFrame(CardBackFrame)
	top.Node.SetVisible(true)
}

func (b *Board) createDiscardPile() {
	l := b.Layout
	b.addLocationBox("discard_box", l.DiscardPile.X, l.DiscardPile.Y)
	bottom := b.newCard("discard_bottom", l.DiscardPile.X, l.DiscardPile.Y, true)
	top := b.newCard("discard_top", l.DiscardPile.X, l.DiscardPile.Y, true)
	bottom.Node.SetVisible(false)
	top.Node.SetVisible(false)
	b.DiscardPile = []*Card{bottom, top}
	b.Scene.Root().AddChild(bottom.Node)
	b.Scene.Root().AddChild(top.Node)
}

func (b *Board) createFoundationPiles() {
	l := b.Layout
	b.Foundations = make([]*Card, 0, len(l.FoundationXs))
	for i, x := range l.FoundationXs {
		b.addLocationBox(fmt.Sprintf("foundation_box_%d", i), x, l.FoundationY)
		c := b.newCard(fmt.Sprintf("foundation_%d", i), x, l.FoundationY, false)
		c.Node.SetVisible(false)
		b.Foundations = append(b.Foundations, c)
		b.Scene.Root().AddChild(c.Node)
	}
}

func (b *Board) createTableauPiles() {
	l := b.Layout
	b.Tableau = make([]*Pile, 0, l.TableauPiles)
	dealt := 0
	for i := 0; i < l.TableauPiles; i++ {
		pos := l.TableauPilePosition(i)
		container := NewContainer(fmt.Sprintf("tableau_%d", i))
		container.SetPosition(pos.X, pos.Y)
		b.Scene.Root().AddChild(container)

		pile := &Pile{Index: i, Container: container}
		for j := 0; j <= i; j++ {
			c := b.newCard(fmt.Sprintf("tableau_%d_%d", i, j), 0, float64(j)*l.CascadeSpacing, true)
			c.PileIndex = i
			c.IndexInPile = j
			if j == i && dealt < len(b.deck) {
				c.SetFrame(b.deck[dealt])
				dealt++
			}
			pile.Cards = append(pile.Cards, c)
			container.AddChild(c.Node)
		}
		b.Tableau = append(b.Tableau, pile)
	}
}

// SetDebug toggles the click-zone overlays and debug logging.
func (b *Board) SetDebug(enabled bool) {
	b.Layout.Debug = enabled
	b.Scene.SetDebugMode(enabled)
	b.Drag.SetDebug(enabled)
	for _, n := range b.debugOverlays {
		n.SetVisible(enabled)
	}
}

// Deal animates every tableau card from the draw pile to its slot in
// Klondike deal order, locking input until the last card lands. onDone may
// be nil. A disabled deal config places cards immediately.
func (b *Board) Deal(onDone func()) {
	cfg := b.Layout.Deal
	if !cfg.Enabled || b.dealing {
		if onDone != nil && !b.dealing {
			onDone()
		}
		return
	}

	var tweens []*TweenGroup
	order := 0
	for row := 0; row < len(b.Tableau); row++ {
		for _, pile := range b.Tableau[row:] {
			c := pile.Cards[row]
			toX, toY := c.Node.X, c.Node.Y
			c.Node.SetPosition(b.Layout.DrawPile.X-pile.Container.X, b.Layout.DrawPile.Y-pile.Container.Y)
			g := TweenPosition(c.Node, toX, toY, float32(cfg.Duration), ease.OutQuad)
			g.Delay(float32(cfg.Stagger * float64(order)))
			tweens = append(tweens, g)
			order++
		}
	}

	b.dealing = true
	b.Scene.SetInputLocked(true)
	debugf(b.Scene.DebugMode(), "dealing %d tableau cards", len(tweens))
	b.Scene.Play(tweens, func() {
		b.dealing = false
		b.Scene.SetInputLocked(false)
		if onDone != nil {
			onDone()
		}
	})
}

// Dealing reports whether the deal animation is running.
func (b *Board) Dealing() bool {
	return b.dealing
}

// Card returns the card with the given node name, or nil.
func (b *Board) Card(name string) *Card {
	for _, group := range [][]*Card{b.DrawPile, b.DiscardPile, b.Foundations} {
		for _, c := range group {
			if c.Node.Name == name {
				return c
			}
		}
	}
	for _, p := range b.Tableau {
		for _, c := range p.Cards {
			if c.Node.Name == name {
				return c
			}
		}
	}
	return nil
}
