package imaging

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mj1618/mobile-cli/internal/model"
)

// LabelMode controls what text is drawn on each annotated element.
type LabelMode int

const (
	// LabelCoords draws "(x,y)", the element centre in device points.
	LabelCoords LabelMode = iota
	// LabelIndex draws "[i]", the element's position in the list.
	LabelIndex
)

var (
	boxColor     = color.RGBA{R: 255, G: 0, B: 0, A: 100}
	textColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outlineColor = color.RGBA{R: 0, G: 0, B: 0, A: 200}
)

// Annotate draws each element's bounding box and label on a copy of img.
// Element rects are in device points; screen gives the point size of the
// captured screen so boxes can be mapped onto image pixels.
func Annotate(img image.Image, elements []model.ScreenElement, screen model.ScreenSize, mode LabelMode) *image.RGBA {
	rgba := ToRGBA(img)

	b := img.Bounds()
	scaleX, scaleY := 1.0, 1.0
	if screen.Width > 0 {
		scaleX = float64(b.Dx()) / float64(screen.Width)
	}
	if screen.Height > 0 {
		scaleY = float64(b.Dy()) / float64(screen.Height)
	}

	for i, el := range elements {
		x := int(float64(el.Rect.X) * scaleX)
		y := int(float64(el.Rect.Y) * scaleY)
		w := int(float64(el.Rect.Width) * scaleX)
		h := int(float64(el.Rect.Height) * scaleY)

		drawRectangle(rgba, x, y, x+w, y+h, boxColor)

		var label string
		switch mode {
		case LabelIndex:
			label = fmt.Sprintf("[%d]", i)
		default:
			cx, cy := el.Rect.Center()
			label = fmt.Sprintf("(%d,%d)", cx, cy)
		}
		drawTextWithOutline(rgba, label, x+w/2, y+h/2)
	}
	return rgba
}

// ToRGBA converts any image to RGBA.
func ToRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}

func isWithinBounds(bounds image.Rectangle, x, y int) bool {
	return x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y
}

// drawRectangle draws a rectangle outline clamped to the image.
func drawRectangle(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()
	x1 = max(x1, bounds.Min.X)
	y1 = max(y1, bounds.Min.Y)
	x2 = min(x2, bounds.Max.X)
	y2 = min(y2, bounds.Max.Y)
	if x2 <= x1 || y2 <= y1 {
		return
	}

	for x := x1; x < x2; x++ {
		if isWithinBounds(bounds, x, y1) {
			img.Set(x, y1, c)
		}
		if isWithinBounds(bounds, x, y2-1) {
			img.Set(x, y2-1, c)
		}
	}
	for y := y1; y < y2; y++ {
		if isWithinBounds(bounds, x1, y) {
			img.Set(x1, y, c)
		}
		if isWithinBounds(bounds, x2-1, y) {
			img.Set(x2-1, y, c)
		}
	}
}

// drawTextWithOutline centres text on (x, y) with a one pixel outline.
// basicfont.Face7x13 glyphs are 7x13 pixels.
func drawTextWithOutline(img *image.RGBA, text string, x, y int) {
	offsetX := x - len(text)*7/2
	offsetY := y - 13/2

	drawString := func(dx, dy int, c color.Color) {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(c),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(offsetX+dx, offsetY+dy),
		}
		d.DrawString(text)
	}

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx != 0 || dy != 0 {
				drawString(dx, dy, outlineColor)
			}
		}
	}
	drawString(0, 0, textColor)
}
