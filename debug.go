package solitaire

import (
	"fmt"
	"io"
	"os"
)

// debugOut receives debug lines. Tests redirect it.
var debugOut io.Writer = os.Stderr

// debugf writes a "[solitaire]"-prefixed line to stderr when enabled.
func debugf(enabled bool, format string, args ...any) {
	if !enabled {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[solitaire] "+format+"\n", args...)
}

// Debug overlay colors.
var (
	debugZoneColor = Color{R: 1, G: 0, B: 0, A: 1}
	debugZoneAlpha = 0.5
)

// newDebugZoneOverlay builds the half-transparent red rectangle drawn over
// a click zone in debug mode.
func newDebugZoneOverlay(zone *Node) *Node {
	w, h := zone.Size()
	overlay := NewFilledRect(zone.Name+"_debug", w, h, debugZoneColor)
	overlay.SetPosition(zone.X, zone.Y)
	overlay.SetAlpha(debugZoneAlpha)
	return overlay
}
