// +build !windows

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// Persistent mode stops cleanly on any of these
var stopSignals = []os.Signal{unix.SIGINT, unix.SIGTERM, unix.SIGHUP}
