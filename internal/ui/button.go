package ui

import "image"

// Button is a clickable rectangle with a label.
type Button struct {
	Label   string
	Rect    image.Rectangle
	Hovered bool
}

// NewButton places a button with its top-left corner at (x, y).
func NewButton(label string, x, y, w, h int) *Button {
	return &Button{Label: label, Rect: image.Rect(x, y, x+w, y+h)}
}

// Contains reports whether p lies inside the button.
func (b *Button) Contains(p image.Point) bool {
	return p.In(b.Rect)
}

// Hover updates the hover state from the cursor position.
func (b *Button) Hover(p image.Point) {
	b.Hovered = b.Contains(p)
}

// Clicked reports whether in carries a click inside the button.
func (b *Button) Clicked(in Input) bool {
	return in.Click && b.Contains(in.Cursor)
}
