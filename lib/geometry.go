package bgslib

import (
	"image"
	"log"
)

// Xinerama can report more heads than anyone will ever plug in, only the first
// MaxMonitors are drawn
const MaxMonitors = 8

// Rect is a monitor or a placement on the root window, in root coordinates
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (r Rect) landscape() bool {
	return r.Width > r.Height
}

func (r Rect) portrait() bool {
	return r.Width < r.Height
}

func (r Rect) empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func (r Rect) image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Resolve turns the heads reported by the X server into the ordered list of
// monitors to draw. Without any usable heads the whole display is a single
// monitor.
func Resolve(width, height int, heads []Rect) []Rect {
	monitors := []Rect{}

	for i, h := range heads {
		if h.empty() {
			log.Printf("Warning: Ignoring monitor %d with size %dx%d\n",
				i, h.Width, h.Height)
			continue
		}

		monitors = append(monitors, h)
	}

	if len(monitors) > MaxMonitors {
		log.Printf(
			"Warning: %d monitors detected, ignoring all but the first %d\n",
			len(monitors), MaxMonitors)
		monitors = monitors[:MaxMonitors]
	}

	if len(monitors) == 0 {
		monitors = append(monitors, Rect{Width: width, Height: height})
	}

	return monitors
}
