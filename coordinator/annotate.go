package coordinator

import (
	gimage "image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const rootMarkSize = 4

var markColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// drawX draws both diagonals of a square of half size size centered on (x, y). Marks whose
// center is off the image, or not a number at all, are skipped.
func drawX(img *gimage.RGBA, x float64, y float64, size int, c color.RGBA) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return
	}
	cx, cy := int(math.Round(x)), int(math.Round(y))
	if !(gimage.Point{X: cx, Y: cy}).In(img.Bounds()) {
		return
	}
	for i := -size; i <= size; i++ {
		// SetRGBA ignores points outside the image
		img.SetRGBA(cx-i, cy-i, c)
		img.SetRGBA(cx-i, cy+i, c)
	}
}

// drawCaption writes text in the bottom left corner with a drop shadow so it stays readable
// on any background.
func drawCaption(img *gimage.RGBA, text string) {
	if text == "" {
		return
	}
	b := img.Bounds()
	x := b.Min.X + 8
	y := b.Max.Y - 6

	shadow := &font.Drawer{
		Dst:  img,
		Src:  gimage.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 180}),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x + 1), Y: fixed.I(y + 1)},
	}
	shadow.DrawString(text)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  gimage.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255}),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	drawer.DrawString(text)
}
