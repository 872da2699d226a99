//go:build !linux

package main

// Without termios support, assume stdin is a pipe or file.
func isTerminal(fd uintptr) bool {
	return false
}
