package solitaire

import (
	"fmt"
	"image"
	_ "image/png" // register PNG decoder for LoadSpriteSheet
	"io"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpriteSheet splits one image into a fixed grid of equally sized frames,
// numbered left to right, top to bottom.
type SpriteSheet struct {
	Image       *ebiten.Image
	FrameWidth  int
	FrameHeight int
	Columns     int
	Count       int

	frames []*ebiten.Image
}

// NewSpriteSheet wraps img as a grid of count frames. img may be nil for
// headless use; Frame then returns nil images but still validates indices.
func NewSpriteSheet(img *ebiten.Image, frameW, frameH, columns, count int) *SpriteSheet {
	if frameW <= 0 || frameH <= 0 || columns <= 0 || count <= 0 {
		panic("solitaire: sprite sheet dimensions must be positive")
	}
	return &SpriteSheet{
		Image:       img,
		FrameWidth:  frameW,
		FrameHeight: frameH,
		Columns:     columns,
		Count:       count,
		frames:      make([]*ebiten.Image, count),
	}
}

// Frame returns the sub-image for frame i. Panics if i is out of range.
func (s *SpriteSheet) Frame(i int) *ebiten.Image {
	if i < 0 || i >= s.Count {
		panic(fmt.Sprintf("solitaire: sprite sheet frame %d out of range [0, %d)", i, s.Count))
	}
	if s.Image == nil {
		return nil
	}
	if s.frames[i] == nil {
		r := s.FrameRect(i)
		s.frames[i] = s.Image.SubImage(r).(*ebiten.Image)
	}
	return s.frames[i]
}

// FrameRect returns the pixel rectangle of frame i within the sheet image.
func (s *SpriteSheet) FrameRect(i int) image.Rectangle {
	col := i % s.Columns
	row := i / s.Columns
	x := col * s.FrameWidth
	y := row * s.FrameHeight
	return image.Rect(x, y, x+s.FrameWidth, y+s.FrameHeight)
}

// LoadSpriteSheet decodes a PNG card sheet from r. The sheet must hold at
// least CardFrameCount frames of frameW x frameH.
func LoadSpriteSheet(r io.Reader, frameW, frameH int) (*SpriteSheet, error) {
	decoded, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("solitaire: decode card sheet: %w", err)
	}
	return sheetFromImage(ebiten.NewImageFromImage(decoded), frameW, frameH)
}

// LoadSpriteSheetFile loads a card sheet image from path.
func LoadSpriteSheetFile(path string, frameW, frameH int) (*SpriteSheet, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("solitaire: load card sheet %s: %w", path, err)
	}
	return sheetFromImage(img, frameW, frameH)
}

func sheetFromImage(img *ebiten.Image, frameW, frameH int) (*SpriteSheet, error) {
	if frameW <= 0 || frameH <= 0 {
		return nil, fmt.Errorf("solitaire: card frame size %dx%d must be positive", frameW, frameH)
	}
	b := img.Bounds()
	columns := b.Dx() / frameW
	rows := b.Dy() / frameH
	if columns*rows < CardFrameCount {
		return nil, fmt.Errorf("solitaire: card sheet %dx%d holds %d frames of %dx%d, need %d",
			b.Dx(), b.Dy(), columns*rows, frameW, frameH, CardFrameCount)
	}
	return NewSpriteSheet(img, frameW, frameH, columns, columns*rows), nil
}

// placeholder palette
var (
	placeholderBlack = ColorFromHex(0x2b2b33)
	placeholderRed   = ColorFromHex(0x9e2a2b)
	placeholderBack  = ColorFromHex(0x1f4e8c)
	placeholderEdge  = ColorFromHex(0xf2efe6)
)

// NewPlaceholderSheet draws a full card sheet at runtime: one row per suit
// in frame order, then the card back. Faces are labelled with rank and suit
// so the game runs without image assets.
func NewPlaceholderSheet(frameW, frameH int) *SpriteSheet {
	const columns = ranksPerSuit
	rows := (CardFrameCount + columns - 1) / columns
	img := ebiten.NewImage(columns*frameW, rows*frameH)
	sheet := NewSpriteSheet(img, frameW, frameH, columns, CardFrameCount)

	face := ebiten.NewImage(frameW, frameH)
	defer face.Deallocate()
	var op ebiten.DrawImageOptions
	for i := 0; i < CardFrameCount; i++ {
		face.Clear()
		drawPlaceholderFrame(face, i, frameW, frameH)
		r := sheet.FrameRect(i)
		op.GeoM.Reset()
		op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
		img.DrawImage(face, &op)
	}
	return sheet
}

func drawPlaceholderFrame(dst *ebiten.Image, frame, w, h int) {
	fw, fh := float32(w), float32(h)
	if frame == CardBackFrame {
		vector.DrawFilledRect(dst, 0, 0, fw, fh, placeholderBack.RGBA(), false)
		vector.StrokeRect(dst, 2, 2, fw-4, fh-4, 1, placeholderEdge.RGBA(), false)
		return
	}
	suit, rank := FrameCard(frame)
	fill := placeholderBlack
	if suit.Red() {
		fill = placeholderRed
	}
	vector.DrawFilledRect(dst, 0, 0, fw, fh, fill.RGBA(), false)
	vector.StrokeRect(dst, 0.5, 0.5, fw-1, fh-1, 1, placeholderEdge.RGBA(), false)
	ebitenutil.DebugPrintAt(dst, rank.String()+"\n"+suit.Letter(), 3, 1)
}
