package ui

import (
	"image"
	"slices"
)

// Key identifies a keyboard key the shell reacts to.
type Key int

const (
	// KeyEscape pauses the grid and backs out of menus.
	KeyEscape Key = iota
	// KeySpace starts and stops the simulation.
	KeySpace
	// KeyC clears the grid.
	KeyC
	// KeyR fills the grid with a random soup.
	KeyR
	// KeyH shows or hides the status line.
	KeyH
)

// Input is a snapshot of one frame of user input.
type Input struct {
	Cursor image.Point
	// Click is set on the frame the left mouse button went down.
	Click bool
	// Pressed lists keys that went down this frame.
	Pressed []Key
	// Close is set when the window manager asked the window to close.
	Close bool
}

// JustPressed reports whether k went down this frame.
func (in Input) JustPressed(k Key) bool {
	return slices.Contains(in.Pressed, k)
}

// Keys lists every key the shell reacts to, in Key order.
var Keys = []Key{KeyEscape, KeySpace, KeyC, KeyR, KeyH}

// PressedKeys returns the keys for which down reports true, in Key order.
func PressedKeys(down func(Key) bool) []Key {
	var pressed []Key
	for _, k := range Keys {
		if down(k) {
			pressed = append(pressed, k)
		}
	}
	return pressed
}
