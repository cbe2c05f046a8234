package solitaire

import "fmt"

// Suit is a card suit. The numeric value orders suits as they appear in the
// card sheet.
type Suit uint8

const (
	Club Suit = iota
	Diamond
	Heart
	Spade
)

const (
	ranksPerSuit = 13

	// CardBackFrame is the sheet frame of the face-down card.
	CardBackFrame = 52

	// CardFrameCount is the number of frames a card sheet must provide.
	CardFrameCount = 53

	// NoPile marks a card that does not belong to a tableau pile.
	NoPile = -1
)

// suitFrames maps each suit to the sheet frame of its ace.
var suitFrames = [...]int{
	Club:    0,
	Diamond: 13,
	Heart:   26,
	Spade:   39,
}

// String returns the suit name.
func (s Suit) String() string {
	switch s {
	case Club:
		return "club"
	case Diamond:
		return "diamond"
	case Heart:
		return "heart"
	case Spade:
		return "spade"
	default:
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
}

// Letter returns the single-letter suit abbreviation.
func (s Suit) Letter() string {
	return [...]string{"C", "D", "H", "S"}[s]
}

// Red reports whether the suit is a red suit.
func (s Suit) Red() bool {
	return s == Diamond || s == Heart
}

// Rank is a card rank from Ace (1) to King (13).
type Rank uint8

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// String returns the short rank label.
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", uint8(r))
	}
}

// CardFrame returns the sheet frame for a face-up card.
// Panics on an unknown suit or a rank outside Ace..King.
func CardFrame(suit Suit, rank Rank) int {
	if int(suit) >= len(suitFrames) {
		panic(fmt.Sprintf("solitaire: invalid suit %d", suit))
	}
	if rank < Ace || rank > King {
		panic(fmt.Sprintf("solitaire: invalid rank %d", rank))
	}
	return suitFrames[suit] + int(rank-Ace)
}

// FrameCard is the inverse of CardFrame. Panics for the back frame or any
// frame outside the face range.
func FrameCard(frame int) (Suit, Rank) {
	if frame < 0 || frame >= CardBackFrame {
		panic(fmt.Sprintf("solitaire: frame %d is not a card face", frame))
	}
	return Suit(frame / ranksPerSuit), Rank(frame%ranksPerSuit) + Ace
}

// Card is a card sprite plus the drag bookkeeping the tableau controller
// needs.
//
// OriginX and OriginY hold the restore point captured at drag start.
// PileIndex is the owning tableau pile, or NoPile for draw, discard and
// foundation cards. IndexInPile is the card's position in that pile and is
// meaningless when PileIndex is NoPile.
type Card struct {
	Node  *Node
	Frame int

	OriginX, OriginY float64
	PileIndex        int
	IndexInPile      int

	sheet *SpriteSheet
}

// NewCard creates a card sprite at (x, y) showing frame, scaled by scale.
// The card is interactive; draggable controls whether it emits drag events.
func NewCard(name string, sheet *SpriteSheet, frame int, x, y, scale float64, draggable bool) *Card {
	n := NewSprite(name, sheet.Frame(frame), float64(sheet.FrameWidth), float64(sheet.FrameHeight))
	n.SetPosition(x, y)
	n.SetScale(scale, scale)
	n.Interactable = true
	n.Draggable = draggable
	c := &Card{
		Node:      n,
		Frame:     frame,
		OriginX:   x,
		OriginY:   y,
		PileIndex: NoPile,
		sheet:     sheet,
	}
	n.UserData = c
	return c
}

// InTableau reports whether the card belongs to a tableau pile.
func (c *Card) InTableau() bool {
	return c.PileIndex != NoPile
}

// SetFrame switches the displayed sheet frame.
func (c *Card) SetFrame(frame int) {
	c.Node.Image = c.sheet.Frame(frame)
	c.Frame = frame
}

// FaceUp reports whether the card shows a face rather than the back.
func (c *Card) FaceUp() bool {
	return c.Frame != CardBackFrame
}

// Position returns the card's current local position.
func (c *Card) Position() (float64, float64) {
	return c.Node.X, c.Node.Y
}

// CardOf returns the card attached to n, or nil if n is not a card.
func CardOf(n *Node) *Card {
	if n == nil {
		return nil
	}
	c, _ := n.UserData.(*Card)
	return c
}
