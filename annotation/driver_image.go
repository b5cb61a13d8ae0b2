package annotation

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Default colors for the image driver.
var (
	DefaultLineColor = color.RGBA{G: 255, A: 255}
	DefaultTextColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// markerArm is the half-length of the marker cross in pixels.
const markerArm = 4

// ImageDriver renders annotations directly onto an in-memory image.
// Normalized coordinates are scaled to the image bounds at draw time.
type ImageDriver struct {
	LineColor color.Color
	TextColor color.Color
	Face      font.Face
}

// NewImageDriver creates an ImageDriver with the default colors and the
// built-in bitmap font face.
func NewImageDriver() *ImageDriver {
	return &ImageDriver{
		LineColor: DefaultLineColor,
		TextColor: DefaultTextColor,
		Face:      basicfont.Face7x13,
	}
}

// Render draws all annotations on img, in order.
func (d *ImageDriver) Render(annotations []Annotation, img draw.Image) error {
	for _, ann := range annotations {
		switch a := ann.(type) {
		case RectAnnotation:
			d.drawRect(img, a)
		case LabelAnnotation:
			d.drawLabel(img, a)
		case LineAnnotation:
			d.drawLine(img, a)
		case MarkerAnnotation:
			d.drawMarker(img, a)
		default:
			return fmt.Errorf("unsupported annotation type %T", ann)
		}
	}
	return nil
}

// pixel converts a normalized point to pixel coordinates within bounds.
func pixel(p Point, bounds image.Rectangle) (int, int) {
	x := bounds.Min.X + int(math.Round(p.X*float64(bounds.Dx()-1)))
	y := bounds.Min.Y + int(math.Round(p.Y*float64(bounds.Dy()-1)))
	return x, y
}

// set paints one pixel if it falls inside the image bounds.
func set(img draw.Image, x, y int, c color.Color) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.Set(x, y, c)
	}
}

// setThick paints a square of side thickness centered on the pixel.
func setThick(img draw.Image, x, y, thickness int, c color.Color) {
	if thickness <= 1 {
		set(img, x, y, c)
		return
	}
	r := thickness / 2
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			set(img, x+dx, y+dy, c)
		}
	}
}

func (d *ImageDriver) drawRect(img draw.Image, a RectAnnotation) {
	x1, y1 := pixel(a.Point1, img.Bounds())
	x2, y2 := pixel(a.Point2, img.Bounds())
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for x := x1; x <= x2; x++ {
		set(img, x, y1, d.LineColor)
		set(img, x, y2, d.LineColor)
	}
	for y := y1; y <= y2; y++ {
		set(img, x1, y, d.LineColor)
		set(img, x2, y, d.LineColor)
	}
}

func (d *ImageDriver) drawLine(img draw.Image, a LineAnnotation) {
	x1, y1 := pixel(a.Point1, img.Bounds())
	x2, y2 := pixel(a.Point2, img.Bounds())

	// Bresenham line walk.
	dx := x2 - x1
	if dx < 0 {
		dx = -dx
	}
	dy := y2 - y1
	if dy < 0 {
		dy = -dy
	}
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		setThick(img, x1, y1, a.Thickness, d.LineColor)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func (d *ImageDriver) drawMarker(img draw.Image, a MarkerAnnotation) {
	x, y := pixel(a.Point, img.Bounds())
	for i := -markerArm; i <= markerArm; i++ {
		set(img, x+i, y, d.LineColor)
		set(img, x, y+i, d.LineColor)
	}
}

func (d *ImageDriver) drawLabel(img draw.Image, a LabelAnnotation) {
	x, y := pixel(a.Point, img.Bounds())
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(d.TextColor),
		Face: d.Face,
		Dot:  fixed.P(x, y),
	}
	drawer.DrawString(a.Text)
}
