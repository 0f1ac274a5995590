package bgslib

import (
	"testing"
)

var monitorsUnderTest = []Rect{
	{X: 0, Y: 0, Width: 1920, Height: 1080},
	{X: 1920, Y: 0, Width: 1080, Height: 1920},
	{X: 0, Y: 1080, Width: 1280, Height: 1024},
	{X: 100, Y: 200, Width: 800, Height: 800},
	{X: 0, Y: 0, Width: 3840, Height: 1080},
}

var imageSizesUnderTest = [][2]int{
	{800, 600},
	{600, 800},
	{1920, 1080},
	{4000, 3000},
	{1, 1},
	{1000, 1000},
	{1001, 1000},
	{7, 3000},
	{3000, 7},
}

func TestPlace_FitExample(t *testing.T) {
	m := Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	got := Place(m, 800, 600, ModeFit)
	want := Rect{X: 240, Y: 0, Width: 1440, Height: 1080}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestPlace_StretchMatchesMonitor(t *testing.T) {
	for _, m := range monitorsUnderTest {
		for _, s := range imageSizesUnderTest {
			got := Place(m, s[0], s[1], ModeStretch)
			if got != m {
				t.Fatalf("%dx%d on %+v: expected monitor rect, got %+v", s[0], s[1], m, got)
			}
		}
	}
}

func TestPlace_FitIsContained(t *testing.T) {
	for _, m := range monitorsUnderTest {
		for _, s := range imageSizesUnderTest {
			w, h := s[0], s[1]
			got := Place(m, w, h, ModeFit)

			if got.Width > m.Width || got.Height > m.Height {
				t.Fatalf("%dx%d on %+v: %+v overflows the monitor", w, h, m, got)
			}
			if got.Width != m.Width && got.Height != m.Height {
				t.Fatalf("%dx%d on %+v: %+v touches neither edge", w, h, m, got)
			}
			if got.X < m.X || got.Y < m.Y ||
				got.X+got.Width > m.X+m.Width || got.Y+got.Height > m.Y+m.Height {
				t.Fatalf("%dx%d on %+v: %+v is not inside the monitor", w, h, m, got)
			}
			// Truncation loses less than one pixel on the scaled axis
			checkAspect(t, w, h, got, 1)
		}
	}
}

func TestPlace_ZoomCovers(t *testing.T) {
	for _, m := range monitorsUnderTest {
		for _, s := range imageSizesUnderTest {
			w, h := s[0], s[1]
			got := Place(m, w, h, ModeZoom)

			if got.Width < m.Width || got.Height < m.Height {
				t.Fatalf("%dx%d on %+v: %+v doesn't cover the monitor", w, h, m, got)
			}
			if got.Width != m.Width && got.Height != m.Height {
				t.Fatalf("%dx%d on %+v: %+v matches neither edge", w, h, m, got)
			}
			if got.X > m.X || got.Y > m.Y {
				t.Fatalf("%dx%d on %+v: %+v leaves a gap", w, h, m, got)
			}
			checkAspect(t, w, h, got, 1)
		}
	}
}

func TestPlace_ZoomExample(t *testing.T) {
	m := Rect{X: 0, Y: 0, Width: 1920, Height: 1080}

	// Taller than the monitor: match width, crop top and bottom
	got := Place(m, 800, 600, ModeZoom)
	want := Rect{X: 0, Y: -180, Width: 1920, Height: 1440}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	// Wider: match height, 3000*1080/1000 = 3240
	got = Place(m, 3000, 1000, ModeZoom)
	want = Rect{X: -660, Y: 0, Width: 3240, Height: 1080}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestPlace_ZoomRoundsUp(t *testing.T) {
	m := Rect{Width: 1000, Height: 1000}
	// 1001x1000 is wider, width = ceil(1001*1000/1000) = 1001
	got := Place(m, 1001, 1000, ModeZoom)
	if got.Width != 1001 || got.Height != 1000 {
		t.Fatalf("expected 1001x1000, got %+v", got)
	}

	// 3x2 on 1000x1000 => ceil(3*1000/2) = 1500
	got = Place(m, 3, 2, ModeZoom)
	if got.Width != 1500 || got.Height != 1000 {
		t.Fatalf("expected 1500x1000, got %+v", got)
	}

	// 2x3 => height ceil(3*1000/2) = 1500
	got = Place(m, 2, 3, ModeZoom)
	if got.Width != 1000 || got.Height != 1500 {
		t.Fatalf("expected 1000x1500, got %+v", got)
	}
}

func TestPlace_CenterKeepsNaturalSize(t *testing.T) {
	for _, m := range monitorsUnderTest {
		for _, s := range imageSizesUnderTest {
			got := Place(m, s[0], s[1], ModeCenter)
			if got.Width != s[0] || got.Height != s[1] {
				t.Fatalf("%dx%d on %+v: size changed to %dx%d", s[0], s[1], m, got.Width, got.Height)
			}
		}
	}

	m := Rect{X: 1920, Y: 0, Width: 1920, Height: 1080}
	got := Place(m, 4000, 3000, ModeCenter)
	// (1920-4000)/2 = -1040, (1080-3000)/2 = -960
	want := Rect{X: 880, Y: -960, Width: 4000, Height: 3000}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	got = Place(m, 801, 601, ModeCenter)
	// Truncated toward zero: (1920-801)/2 = 559, (1080-601)/2 = 239
	want = Rect{X: 1920 + 559, Y: 239, Width: 801, Height: 601}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestNeedsRotation(t *testing.T) {
	landscape := Rect{Width: 1920, Height: 1080}
	portrait := Rect{Width: 1080, Height: 1920}
	square := Rect{Width: 1000, Height: 1000}

	tests := []struct {
		name string
		m    Rect
		w, h int
		want bool
	}{
		{"landscape monitor, portrait image", landscape, 600, 800, true},
		{"portrait monitor, landscape image", portrait, 800, 600, true},
		{"landscape monitor, landscape image", landscape, 800, 600, false},
		{"portrait monitor, portrait image", portrait, 600, 800, false},
		{"landscape monitor, square image", landscape, 500, 500, false},
		{"square monitor, portrait image", square, 600, 800, false},
		{"square monitor, square image", square, 500, 500, false},
	}

	for _, tt := range tests {
		if got := needsRotation(tt.m, tt.w, tt.h); got != tt.want {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestParseMode(t *testing.T) {
	for input, want := range map[string]Mode{
		"":        ModeFit,
		"fit":     ModeFit,
		"Center":  ModeCenter,
		" zoom ":  ModeZoom,
		"STRETCH": ModeStretch,
	} {
		got, err := ParseMode(input)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", input, err)
		}
		if got != want {
			t.Fatalf("%q: expected %s, got %s", input, want, got)
		}
	}

	if _, err := ParseMode("tile"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

// checkAspect compares w/h against the placement's ratio by cross
// multiplication, allowing slack pixels of rounding on either axis
func checkAspect(t *testing.T, w, h int, got Rect, slack int) {
	t.Helper()

	lhs := got.Width * h
	rhs := got.Height * w
	diff := lhs - rhs
	if diff < 0 {
		diff = -diff
	}
	tolerance := slack * w
	if slack*h > tolerance {
		tolerance = slack * h
	}
	if diff > tolerance {
		t.Fatalf("%dx%d placed as %dx%d changes the aspect ratio", w, h, got.Width, got.Height)
	}
}
