package bgslib

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var ErrColor = errors.New("Cannot allocate color")

const DefaultColor = "#000000"

// ParseColor understands #rgb, #rrggbb and #rrrrggggbbbb like X does, plus the
// SVG colour names. Anything else has to be looked up by the X server.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = DefaultColor
	}

	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}

	return color.RGBA{}, fmt.Errorf("%w [%s]", ErrColor, s)
}

func parseHex(hex string) (color.RGBA, error) {
	if len(hex) == 0 || len(hex)%3 != 0 || len(hex) > 12 {
		return color.RGBA{}, fmt.Errorf("%w [#%s]", ErrColor, hex)
	}

	n := len(hex) / 3
	channels := [3]uint8{}
	for i := range channels {
		v, err := strconv.ParseUint(hex[i*n:(i+1)*n], 16, 16)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w [#%s]: %s", ErrColor, hex, err)
		}
		channels[i] = scaleChannel(v, n)
	}

	return color.RGBA{R: channels[0], G: channels[1], B: channels[2], A: 0xff}, nil
}

// X treats #rgb as the high bits of each channel, so #f00 is 0xf000 red
func scaleChannel(v uint64, digits int) uint8 {
	bits := uint(digits * 4)
	if bits >= 8 {
		return uint8(v >> (bits - 8))
	}
	return uint8(v << (8 - bits))
}
