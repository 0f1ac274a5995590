package bgslib

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

var ErrBuffer = errors.New("Cannot allocate buffer")

type CompositeOptions struct {
	Mode       Mode
	Rotate     bool
	Background color.Color
	// Defaults to draw.BiLinear
	Scaler draw.Scaler
}

var filters = map[string]draw.Scaler{
	"nearest":         draw.NearestNeighbor,
	"approx-bilinear": draw.ApproxBiLinear,
	"bilinear":        draw.BiLinear,
	"catmull-rom":     draw.CatmullRom,
}

func ParseFilter(s string) (draw.Scaler, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return draw.BiLinear, nil
	}

	if f, ok := filters[s]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("Unknown filter [%s]", s)
}

// Composite draws every monitor's image onto a single width x height buffer.
// Monitor i always gets images[i % len(images)].
func Composite(
	width, height int,
	monitors []Rect,
	images []image.Image,
	opts CompositeOptions) (*image.RGBA, error) {

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w of size %dx%d", ErrBuffer, width, height)
	}
	if len(images) == 0 {
		return nil, ErrNoImages
	}

	bg := opts.Background
	if bg == nil {
		bg = color.Black
	}
	scaler := opts.Scaler
	if scaler == nil {
		scaler = draw.BiLinear
	}

	buffer := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(buffer, buffer.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	for i, m := range monitors {
		var img image.Image = images[i%len(images)]
		w, h := img.Bounds().Dx(), img.Bounds().Dy()

		// The rotated copy only lives for this monitor
		if opts.Rotate && needsRotation(m, w, h) {
			img = imaging.Rotate270(img)
			w, h = h, w
		}

		p := Place(m, w, h, opts.Mode)
		if p.empty() {
			continue
		}

		if p.Width == w && p.Height == h {
			draw.Draw(buffer, p.image(), img, img.Bounds().Min, draw.Over)
			continue
		}
		scaler.Scale(buffer, p.image(), img, img.Bounds(), draw.Over, nil)
	}

	return buffer, nil
}
