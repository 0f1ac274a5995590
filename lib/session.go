package bgslib

import (
	"context"
	"errors"
	"image"
	"image/color"
)

var ErrNoDisplay = errors.New("Cannot open display")

var ErrDisplayClosed = errors.New("Display connection closed")

// Display is the window system side of drawing a background
type Display interface {
	Size() (width, height int)
	// Heads may be empty when the server has no idea about monitors
	Heads() []Rect
	Render(img *image.RGBA) error
	WaitResize(ctx context.Context) (width, height int, err error)
	LookupColor(name string) (color.RGBA, error)
	Close() error
}

// Session owns everything needed to draw backgrounds until Close is called
type Session struct {
	conf    *Config
	images  []image.Image
	display Display
	opts    CompositeOptions
	width   int
	height  int
}

// NewSession loads the images and connects to the display.
// Config.Validate must have been called.
func NewSession(c *Config) (*Session, error) {
	return newSession(c, OpenDisplay)
}

func newSession(c *Config, open func(string) (Display, error)) (*Session, error) {
	// Images come first so nothing touches the display when none load
	images, err := LoadImages(c.Paths)
	if err != nil {
		return nil, err
	}

	d, err := open(c.Display)
	if err != nil {
		return nil, err
	}

	bg, err := ParseColor(c.Color)
	if errors.Is(err, ErrColor) {
		bg, err = d.LookupColor(c.Color)
	}
	if err != nil {
		d.Close()
		return nil, err
	}

	s := &Session{
		conf:    c,
		images:  images,
		display: d,
		opts:    c.compositeOptions(),
	}
	s.opts.Background = bg
	s.width, s.height = d.Size()

	return s, nil
}

// Run draws the background once, or in persistent mode redraws it every time
// the display is resized until ctx is cancelled
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := s.Draw(); err != nil {
			return err
		}

		if !s.conf.Persistent {
			return nil
		}

		w, h, err := s.display.WaitResize(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		s.width, s.height = w, h
	}
}

// Draw does a single compositing pass and hands it to the display
func (s *Session) Draw() error {
	monitors := Resolve(s.width, s.height, s.display.Heads())

	buffer, err := Composite(s.width, s.height, monitors, s.images, s.opts)
	if err != nil {
		return err
	}

	return s.display.Render(buffer)
}

func (s *Session) Close() error {
	s.images = nil
	return s.display.Close()
}
