package core

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/dcoder4/backpack/annotation"
)

// AnnotateInput carries the parsed command-line inputs for one
// annotation run.
type AnnotateInput struct {
	InputPath  string
	OutputPath string
	Rects      []string
	Labels     []string
	Lines      []string
	Markers    []string
	Timestamp  bool
}

// ExecuteAnnotate loads a PNG image, renders the requested annotations
// onto it and writes the result.
func ExecuteAnnotate(in *AnnotateInput) error {
	annotations, err := collectAnnotations(in)
	if err != nil {
		return err
	}

	src, err := loadPNG(in.InputPath)
	if err != nil {
		return err
	}

	// Work on an RGBA copy so any source pixel format is drawable.
	canvas := image.NewRGBA(src.Bounds())
	draw.Draw(canvas, canvas.Bounds(), src, src.Bounds().Min, draw.Src)

	driver := annotation.NewImageDriver()
	if err := driver.Render(annotations, canvas); err != nil {
		return err
	}

	return savePNG(in.OutputPath, canvas)
}

// collectAnnotations parses all spec strings into annotation values.
func collectAnnotations(in *AnnotateInput) ([]annotation.Annotation, error) {
	var annotations []annotation.Annotation
	for _, spec := range in.Rects {
		a, err := ParseRectSpec(spec)
		if err != nil {
			return nil, err
		}
		annotations = append(annotations, a)
	}
	for _, spec := range in.Labels {
		a, err := ParseLabelSpec(spec)
		if err != nil {
			return nil, err
		}
		annotations = append(annotations, a)
	}
	for _, spec := range in.Lines {
		a, err := ParseLineSpec(spec)
		if err != nil {
			return nil, err
		}
		annotations = append(annotations, a)
	}
	for _, spec := range in.Markers {
		a, err := ParseMarkerSpec(spec)
		if err != nil {
			return nil, err
		}
		annotations = append(annotations, a)
	}
	if in.Timestamp {
		annotations = append(annotations, annotation.NewTimestampAnnotation(time.Now(), annotation.Point{X: 0.02, Y: 0.04}))
	}
	return annotations, nil
}

// ParseRectSpec parses "x1,y1,x2,y2" into a rectangle annotation.
func ParseRectSpec(spec string) (annotation.RectAnnotation, error) {
	coords, err := splitFloats(spec, 4)
	if err != nil {
		return annotation.RectAnnotation{}, fmt.Errorf("invalid rect %q: %w", spec, err)
	}
	return annotation.RectAnnotation{
		Point1: annotation.Point{X: coords[0], Y: coords[1]},
		Point2: annotation.Point{X: coords[2], Y: coords[3]},
	}, nil
}

// ParseLabelSpec parses "x,y,text" into a label annotation. The text
// may itself contain commas.
func ParseLabelSpec(spec string) (annotation.LabelAnnotation, error) {
	parts := strings.SplitN(spec, ",", 3)
	if len(parts) != 3 {
		return annotation.LabelAnnotation{}, fmt.Errorf("invalid label %q: want x,y,text", spec)
	}
	x, err := cast.ToFloat64E(strings.TrimSpace(parts[0]))
	if err != nil {
		return annotation.LabelAnnotation{}, fmt.Errorf("invalid label %q: %w", spec, err)
	}
	y, err := cast.ToFloat64E(strings.TrimSpace(parts[1]))
	if err != nil {
		return annotation.LabelAnnotation{}, fmt.Errorf("invalid label %q: %w", spec, err)
	}
	return annotation.LabelAnnotation{
		Point: annotation.Point{X: x, Y: y},
		Text:  parts[2],
	}, nil
}

// ParseLineSpec parses "x1,y1,x2,y2[,thickness]" into a line annotation.
func ParseLineSpec(spec string) (annotation.LineAnnotation, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 4 && len(parts) != 5 {
		return annotation.LineAnnotation{}, fmt.Errorf("invalid line %q: want x1,y1,x2,y2[,thickness]", spec)
	}
	coords, err := splitFloats(strings.Join(parts[:4], ","), 4)
	if err != nil {
		return annotation.LineAnnotation{}, fmt.Errorf("invalid line %q: %w", spec, err)
	}
	thickness := 1
	if len(parts) == 5 {
		thickness, err = cast.ToIntE(strings.TrimSpace(parts[4]))
		if err != nil || thickness < 1 {
			return annotation.LineAnnotation{}, fmt.Errorf("invalid line thickness in %q", spec)
		}
	}
	return annotation.LineAnnotation{
		Point1:    annotation.Point{X: coords[0], Y: coords[1]},
		Point2:    annotation.Point{X: coords[2], Y: coords[3]},
		Thickness: thickness,
	}, nil
}

// ParseMarkerSpec parses "x,y" into a marker annotation.
func ParseMarkerSpec(spec string) (annotation.MarkerAnnotation, error) {
	coords, err := splitFloats(spec, 2)
	if err != nil {
		return annotation.MarkerAnnotation{}, fmt.Errorf("invalid marker %q: %w", spec, err)
	}
	return annotation.MarkerAnnotation{
		Point: annotation.Point{X: coords[0], Y: coords[1]},
	}, nil
}

// splitFloats parses a comma-separated list of exactly n floats.
func splitFloats(spec string, n int) ([]float64, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated values, got %d", n, len(parts))
	}
	values := make([]float64, n)
	for i, part := range parts {
		v, err := cast.ToFloat64E(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode %s: %w", path, err)
	}
	return img, nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create output image: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("cannot encode %s: %w", path, err)
	}
	return nil
}
