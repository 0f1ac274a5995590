// +build !windows

package bgslib

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xgraphics"
)

type xDisplay struct {
	X      *xgbutil.XUtil
	root   xproto.Window
	width  int
	height int

	pumpOnce  sync.Once
	resizes   chan Rect
	done      chan struct{}
	closeOnce sync.Once
}

// OpenDisplay connects to the named X display, or $DISPLAY when name is empty
func OpenDisplay(name string) (Display, error) {
	// Stop polluting stdout
	xgb.Logger.SetOutput(io.Discard)
	xgbutil.Logger.SetOutput(io.Discard)

	X, err := xgbutil.NewConnDisplay(name)
	if err != nil {
		return nil, fmt.Errorf("%w [%s]: %s", ErrNoDisplay, name, err)
	}

	screen := X.Screen()
	d := &xDisplay{
		X:       X,
		root:    X.RootWin(),
		width:   int(screen.WidthInPixels),
		height:  int(screen.HeightInPixels),
		resizes: make(chan Rect),
		done:    make(chan struct{}),
	}

	// ConfigureNotify on the root window is how we hear about resizes
	err = xproto.ChangeWindowAttributesChecked(
		X.Conn(), d.root,
		xproto.CwEventMask, []uint32{xproto.EventMaskStructureNotify}).Check()
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("Error selecting root window events: %w", err)
	}

	return d, nil
}

func (d *xDisplay) Size() (int, int) {
	return d.width, d.height
}

// Render uploads the composited image to a pixmap and makes it the root
// background. The pixmap is freed immediately, the server keeps the background
// alive after we disconnect.
func (d *xDisplay) Render(img *image.RGBA) error {
	Xgb := d.X.Conn()

	ximg := xgraphics.NewConvert(d.X, img)
	defer ximg.Destroy()

	err := ximg.CreatePixmap()
	if err != nil {
		return fmt.Errorf("Error creating root pixmap: %w", err)
	}

	err = ximg.XDrawChecked()
	if err != nil {
		return fmt.Errorf("Error drawing root pixmap: %w", err)
	}

	err = xproto.ChangeWindowAttributesChecked(
		Xgb, d.root, xproto.CwBackPixmap, []uint32{uint32(ximg.Pixmap)}).Check()
	if err != nil {
		return fmt.Errorf("Error setting root background: %w", err)
	}

	err = xproto.ClearAreaChecked(Xgb, false, d.root, 0, 0, 0, 0).Check()
	if err != nil {
		return fmt.Errorf("Error clearing root window: %w", err)
	}

	return nil
}

// WaitResize blocks until the root window changes size or ctx is done
func (d *xDisplay) WaitResize(ctx context.Context) (int, int, error) {
	d.pumpOnce.Do(func() {
		go d.pumpEvents()
	})

	select {
	case <-ctx.Done():
		return 0, 0, ctx.Err()
	case r, ok := <-d.resizes:
		if !ok {
			return 0, 0, ErrDisplayClosed
		}
		d.width, d.height = r.Width, r.Height
		return d.width, d.height, nil
	}
}

// Only ever one reader of the connection's event queue
func (d *xDisplay) pumpEvents() {
	defer close(d.resizes)

	for {
		ev, err := d.X.Conn().WaitForEvent()
		if ev == nil && err == nil {
			// Connection closed
			return
		}
		if err != nil {
			continue
		}

		cn, ok := ev.(xproto.ConfigureNotifyEvent)
		if !ok || cn.Window != d.root {
			continue
		}

		select {
		case d.resizes <- Rect{Width: int(cn.Width), Height: int(cn.Height)}:
		case <-d.done:
			return
		}
	}
}

// LookupColor asks the server's colour database, for names like "DarkSlateGray4"
func (d *xDisplay) LookupColor(name string) (color.RGBA, error) {
	reply, err := xproto.LookupColor(
		d.X.Conn(), d.X.Screen().DefaultColormap, uint16(len(name)), name).Reply()
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w [%s]: %s", ErrColor, name, err)
	}

	return color.RGBA{
		R: uint8(reply.ExactRed >> 8),
		G: uint8(reply.ExactGreen >> 8),
		B: uint8(reply.ExactBlue >> 8),
		A: 0xff,
	}, nil
}

func (d *xDisplay) Close() error {
	d.closeOnce.Do(func() {
		close(d.done)
		// Make sure everything we sent has been processed before hanging up
		d.X.Conn().Sync()
		d.X.Conn().Close()
	})
	return nil
}
