package ui

// frame places a menu drawn at full size on a 1000x600 view onto a view of
// any size. Offsets are relative to the horizontal centre and the top of
// the button column. A view too small for the content shrinks every offset
// and size by the same factor, so all buttons stay inside the view.
type frame struct {
	cx, top int
	scale   float64
}

// fitFrame anchors a contentW x contentH column at top. The column may grow
// down to a margin of height/12 above the bottom edge. contentW spans
// symmetrically around the centre.
func fitFrame(width, height, top, contentW, contentH int) frame {
	avail := height - height/12 - top
	s := 1.0
	if contentH > avail {
		s = min(s, float64(max(avail, 0))/float64(contentH))
	}
	if contentW > width {
		s = min(s, float64(max(width, 0))/float64(contentW))
	}
	return frame{cx: width / 2, top: top, scale: s}
}

// px scales a full-size length.
func (f frame) px(v int) int {
	return int(float64(v) * f.scale)
}

// x maps a horizontal offset from the centre to a view coordinate.
func (f frame) x(dx int) int { return f.cx + f.px(dx) }

// y maps a vertical offset from the column top to a view coordinate.
func (f frame) y(dy int) int { return f.top + f.px(dy) }

// button places a w x h button with its top-left corner at offset (dx, dy).
func (f frame) button(label string, dx, dy, w, h int) *Button {
	return NewButton(label, f.x(dx), f.y(dy), max(f.px(w), 1), max(f.px(h), 1))
}

// titleY is the vertical centre of a menu title on a view of the given height.
func titleY(height int) int { return height / 6 }
