//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter updates a single RGBA image based on binary cell data.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	cells []uint8
	xs    []int
	ys    []int
	scale int
}

// NewGridPainter allocates a painter for a grid of size w*h drawn with
// square cells of scale pixels.
func NewGridPainter(w, h, scale int) *GridPainter {
	if scale <= 0 {
		scale = 1
	}
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), scale: scale}
	gp.img = ebiten.NewImage(w, h)
	gp.xs = gridLines(w, scale)
	gp.ys = gridLines(h, scale)
	return gp
}

// Snapshotter is anything that can copy out its current cells.
type Snapshotter interface {
	Snapshot(dst []uint8) []uint8
}

// Draw copies the cells out of src and paints them with grid lines on top.
func (gp *GridPainter) Draw(dst *ebiten.Image, src Snapshotter, on, off, lines color.Color) {
	gp.cells = src.Snapshot(gp.cells)
	gp.Blit(dst, gp.cells, on, off)
	gp.DrawLines(dst, lines)
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(gp.scale), float64(gp.scale))
	dst.DrawImage(gp.img, op)
}

// DrawLines strokes one-pixel lines along every cell boundary.
func (gp *GridPainter) DrawLines(dst *ebiten.Image, clr color.Color) {
	width := float32(gp.w * gp.scale)
	height := float32(gp.h * gp.scale)
	for _, x := range gp.xs {
		vector.DrawFilledRect(dst, float32(x), 0, 1, height, clr, false)
	}
	for _, y := range gp.ys {
		vector.DrawFilledRect(dst, 0, float32(y), width, 1, clr, false)
	}
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
