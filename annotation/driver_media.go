package annotation

import "fmt"

// MediaContext is a rendering backend that draws primitives itself, such as
// a device media surface. Coordinates are normalized frame coordinates.
type MediaContext interface {
	AddRect(x1, y1, x2, y2 float64)
	AddLabel(text string, x, y float64)
	AddLine(x1, y1, x2, y2 float64)
	AddMarker(x, y float64)
}

// MediaDriver renders annotations by delegating each shape to a
// MediaContext.
type MediaDriver struct{}

// NewMediaDriver creates a MediaDriver.
func NewMediaDriver() *MediaDriver {
	return &MediaDriver{}
}

// Render draws all annotations on the given context, in order.
func (d *MediaDriver) Render(annotations []Annotation, ctx MediaContext) error {
	for _, ann := range annotations {
		switch a := ann.(type) {
		case RectAnnotation:
			ctx.AddRect(a.Point1.X, a.Point1.Y, a.Point2.X, a.Point2.Y)
		case LabelAnnotation:
			ctx.AddLabel(a.Text, a.Point.X, a.Point.Y)
		case LineAnnotation:
			ctx.AddLine(a.Point1.X, a.Point1.Y, a.Point2.X, a.Point2.Y)
		case MarkerAnnotation:
			ctx.AddMarker(a.Point.X, a.Point.Y)
		default:
			return fmt.Errorf("unsupported annotation type %T", ann)
		}
	}
	return nil
}
