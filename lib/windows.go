// +build windows

package bgslib

import "fmt"

// OpenDisplay always fails, root window backgrounds only exist under X
func OpenDisplay(name string) (Display, error) {
	return nil, fmt.Errorf("%w [%s]: X11 is not available on Windows", ErrNoDisplay, name)
}
