package bgslib

import (
	"fmt"
	"strings"
)

// Mode controls how an image is scaled and positioned inside its monitor
type Mode int

const (
	ModeFit Mode = iota
	ModeCenter
	ModeZoom
	ModeStretch
)

var modeNames = map[Mode]string{
	ModeFit:     "fit",
	ModeCenter:  "center",
	ModeZoom:    "zoom",
	ModeStretch: "stretch",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ModeFit, nil
	}

	for m, name := range modeNames {
		if s == name {
			return m, nil
		}
	}
	return ModeFit, fmt.Errorf("Unknown mode [%s]", s)
}

// needsRotation is true only when the monitor and the image strictly disagree
// on being landscape or portrait. Squares never rotate.
func needsRotation(m Rect, w, h int) bool {
	img := Rect{Width: w, Height: h}
	return (m.landscape() && img.portrait()) || (m.portrait() && img.landscape())
}

// Place computes where an image of natural size w x h ends up for monitor m.
// The result may extend past the monitor, it gets clipped when drawn.
func Place(m Rect, w, h int, mode Mode) Rect {
	switch mode {
	case ModeCenter:
		return Rect{
			X:      m.X + (m.Width-w)/2,
			Y:      m.Y + (m.Height-h)/2,
			Width:  w,
			Height: h,
		}
	case ModeZoom:
		// Cover the monitor and crop the overflow.
		// Ratios are compared by cross multiplication so near-square images
		// don't fall on the wrong side of a truncated division.
		if w*m.Height > m.Width*h {
			nw := ceilDiv(w*m.Height, h)
			return Rect{
				X:      m.X + (m.Width-nw)/2,
				Y:      m.Y,
				Width:  nw,
				Height: m.Height,
			}
		}
		nh := ceilDiv(h*m.Width, w)
		return Rect{
			X:      m.X,
			Y:      m.Y + (m.Height-nh)/2,
			Width:  m.Width,
			Height: nh,
		}
	case ModeStretch:
		return m
	default:
		// Fit: divide by max(w/m.Width, h/m.Height), which always makes the
		// dominant axis match the monitor exactly
		nw, nh := m.Width, m.Height
		if w*m.Height >= m.Width*h {
			nh = h * m.Width / w
		} else {
			nw = w * m.Height / h
		}
		return Rect{
			X:      m.X + (m.Width-nw)/2,
			Y:      m.Y + (m.Height-nh)/2,
			Width:  nw,
			Height: nh,
		}
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
