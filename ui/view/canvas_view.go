package view

import (
	"image"

	"github.com/soocke/image-label-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// AnnotationCanvas shows the rendered annotation frame and forwards pointer
// gestures to the drawing pipeline.
type AnnotationCanvas interface {
	UpdateCanvas(img image.Image)
}

// PointerHandlers receives widget-relative pointer positions in display pixels.
type PointerHandlers struct {
	Down func(x, y float64)
	Move func(x, y float64)
	Up   func(x, y float64)
}

type annotationCanvas struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo instance, disposed before replacement
}

// NewAnnotationCanvas creates the canvas label at the given grid row and
// binds the pointer events. Frames arrive pre-rendered; the label only
// displays them.
func NewAnnotationCanvas(row int, h PointerHandlers) AnnotationCanvas {
	placeholder := image.NewRGBA(image.Rect(0, 0, 640, 400))
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	label := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(label, Row(row), Column(0), Columnspan(4), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	v := &annotationCanvas{label: label, prevPhoto: photo}
	if h.Down != nil {
		Bind(label, "<Button-1>", Command(func(e *Event) { h.Down(float64(e.X), float64(e.Y)) }))
	}
	if h.Move != nil {
		Bind(label, "<Motion>", Command(func(e *Event) { h.Move(float64(e.X), float64(e.Y)) }))
	}
	if h.Up != nil {
		Bind(label, "<ButtonRelease-1>", Command(func(e *Event) { h.Up(float64(e.X), float64(e.Y)) }))
	}
	return v
}

func (v *annotationCanvas) UpdateCanvas(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	pngBytes := images.EncodePNG(img)
	// Replace the previous photo to avoid retaining obsolete pixel buffers.
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	photo := NewPhoto(Data(pngBytes))
	v.prevPhoto = photo
	v.label.Configure(Image(photo))
}
