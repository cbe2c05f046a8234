package solitaire

import "fmt"

// Default drag presentation values.
const (
	DefaultDragAlpha  = 0.8
	DefaultDragDepth  = 2
	DefaultBaseDepth  = 0
	DefaultCascadeGap = 20.0
)

// Pile is a tableau pile: an ordered run of cards inside one container.
// Index 0 is the bottom (first dealt) card; the last card is frontmost.
type Pile struct {
	Index     int
	Container *Node
	Cards     []*Card
}

// Len returns the number of cards in the pile.
func (p *Pile) Len() int {
	return len(p.Cards)
}

// Top returns the frontmost card, or nil for an empty pile.
func (p *Pile) Top() *Card {
	if len(p.Cards) == 0 {
		return nil
	}
	return p.Cards[len(p.Cards)-1]
}

// TableauDragController moves a dragged card together with the cards
// cascaded on top of it and snaps everything back when the drag ends.
// There is no drop validation: every drag returns to where it started.
//
// The controller is driven from the game loop goroutine only.
type TableauDragController struct {
	piles []*Pile

	// Spacing is the vertical cascade gap between cards in a pile.
	Spacing float64
	// DragAlpha is applied to the dragged card while it moves.
	DragAlpha float64
	// DragDepth is the ZIndex given to the pile (or lone card) being dragged.
	DragDepth int
	// BaseDepth is the ZIndex restored at drag end.
	BaseDepth int

	debug bool
}

// NewTableauDragController creates a controller over piles with the default
// presentation values.
func NewTableauDragController(piles []*Pile) *TableauDragController {
	return &TableauDragController{
		piles:     piles,
		Spacing:   DefaultCascadeGap,
		DragAlpha: DefaultDragAlpha,
		DragDepth: DefaultDragDepth,
		BaseDepth: DefaultBaseDepth,
	}
}

// Piles returns the tableau piles the controller operates on.
func (c *TableauDragController) Piles() []*Pile {
	return c.piles
}

// OnDragStart records the card's current position as its restore point,
// raises the owning pile (or the card itself outside the tableau) above its
// siblings and dims the card.
func (c *TableauDragController) OnDragStart(card *Card) {
	card.OriginX, card.OriginY = card.Node.X, card.Node.Y
	debugf(c.debug, "drag start %s at (%.1f, %.1f)", card.Node.Name, card.OriginX, card.OriginY)

	if pile := c.pileOf(card); pile != nil {
		for _, f := range c.followers(pile, card) {
			f.OriginX, f.OriginY = f.Node.X, f.Node.Y
		}
		pile.Container.SetZIndex(c.DragDepth)
	} else {
		card.Node.SetZIndex(c.DragDepth)
	}
	card.Node.SetAlpha(c.DragAlpha)
}

// OnDragMove moves the card to (x, y) in its parent's space. Tableau cards
// carry every card above them, each offset by one more cascade gap.
func (c *TableauDragController) OnDragMove(card *Card, x, y float64) {
	card.Node.SetPosition(x, y)
	pile := c.pileOf(card)
	if pile == nil {
		return
	}
	for k, f := range c.followers(pile, card) {
		f.Node.SetPosition(x, y+float64(k+1)*c.Spacing)
	}
}

// OnDragEnd restores depth and opacity and returns the card and each of its
// followers to their own restore points.
func (c *TableauDragController) OnDragEnd(card *Card) {
	pile := c.pileOf(card)
	if pile != nil {
		pile.Container.SetZIndex(c.BaseDepth)
	} else {
		card.Node.SetZIndex(c.BaseDepth)
	}
	card.Node.SetAlpha(1)
	card.Node.SetPosition(card.OriginX, card.OriginY)

	if pile == nil {
		return
	}
	for _, f := range c.followers(pile, card) {
		f.Node.SetPosition(f.OriginX, f.OriginY)
	}
}

// FollowerCount returns how many cards move with card: every card above it
// in its pile. Always zero outside the tableau.
func (c *TableauDragController) FollowerCount(card *Card) int {
	pile := c.pileOf(card)
	if pile == nil {
		return 0
	}
	return (pile.Len() - 1) - card.IndexInPile
}

// Followers returns the cards that move with card, nearest first.
// The result is computed from the pile's current contents on every call and
// aliases the pile; it MUST NOT be mutated.
func (c *TableauDragController) Followers(card *Card) []*Card {
	pile := c.pileOf(card)
	if pile == nil {
		return nil
	}
	return c.followers(pile, card)
}

func (c *TableauDragController) followers(pile *Pile, card *Card) []*Card {
	n := (pile.Len() - 1) - card.IndexInPile
	if n <= 0 {
		return nil
	}
	return pile.Cards[card.IndexInPile+1 : card.IndexInPile+1+n]
}

// pileOf resolves the card's pile. Returns nil for non-tableau cards and
// panics when the card's pile bookkeeping disagrees with the scene graph.
func (c *TableauDragController) pileOf(card *Card) *Pile {
	if !card.InTableau() {
		return nil
	}
	if card.PileIndex < 0 || card.PileIndex >= len(c.piles) {
		panic(fmt.Sprintf("solitaire: card %q claims tableau pile %d of %d",
			card.Node.Name, card.PileIndex, len(c.piles)))
	}
	pile := c.piles[card.PileIndex]
	if card.IndexInPile < 0 || card.IndexInPile >= pile.Len() || pile.Cards[card.IndexInPile] != card {
		panic(fmt.Sprintf("solitaire: card %q claims index %d in tableau pile %d of length %d",
			card.Node.Name, card.IndexInPile, card.PileIndex, pile.Len()))
	}
	return pile
}

// SetDebug enables drag logging to stderr.
func (c *TableauDragController) SetDebug(enabled bool) {
	c.debug = enabled
}

// Bind routes the scene's drag events to the controller. Drags on nodes
// that are not cards are ignored. The returned handles unbind it.
func (c *TableauDragController) Bind(s *Scene) []CallbackHandle {
	c.debug = s.DebugMode()
	return []CallbackHandle{
		s.OnDragStart(func(ctx DragContext) {
			if card := CardOf(ctx.Node); card != nil {
				c.OnDragStart(card)
			}
		}),
		s.OnDrag(func(ctx DragContext) {
			if card := CardOf(ctx.Node); card != nil {
				c.OnDragMove(card, ctx.DragX, ctx.DragY)
			}
		}),
		s.OnDragEnd(func(ctx DragContext) {
			if card := CardOf(ctx.Node); card != nil {
				c.OnDragEnd(card)
			}
		}),
	}
}
