//go:build ebiten

package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenKeys = [...]ebiten.Key{
	KeyEscape: ebiten.KeyEscape,
	KeySpace:  ebiten.KeySpace,
	KeyC:      ebiten.KeyC,
	KeyR:      ebiten.KeyR,
	KeyH:      ebiten.KeyH,
}

// Poll captures the current frame of ebiten input.
func Poll() Input {
	mx, my := ebiten.CursorPosition()
	return Input{
		Cursor: image.Pt(mx, my),
		Click:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Pressed: PressedKeys(func(k Key) bool {
			return inpututil.IsKeyJustPressed(ebitenKeys[k])
		}),
		Close: ebiten.IsWindowBeingClosed(),
	}
}
