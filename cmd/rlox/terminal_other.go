// +build !linux,!darwin,!dragonfly,!freebsd,!netbsd,!openbsd,!windows

package main

import "os"

// isTerminal reports whether f is attached to a terminal. Platforms without
// a detection method never show a prompt.
func isTerminal(f *os.File) bool {
	return false
}
