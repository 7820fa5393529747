package view

import (
	"image"

	"github.com/soocke/image-label-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ShapePreview shows a cropped close-up of the selected shape.
type ShapePreview interface {
	UpdateShapePreview(img image.Image)
	ResetShapePreview()
}

type shapePreview struct {
	label     *LabelWidget
	prevPhoto *Img
}

const (
	previewW = 160
	previewH = 120
)

// NewShapePreview creates the preview label at (row, column).
func NewShapePreview(row, column int) ShapePreview {
	photo := NewPhoto(Data(images.EncodePNG(placeholderImage())))
	label := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(label, Row(row), Column(column), Sticky("ne"), Padx("0.4m"), Pady("0.4m"))
	return &shapePreview{label: label, prevPhoto: photo}
}

func (v *shapePreview) UpdateShapePreview(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(images.EncodePNG(img)))
	v.label.Configure(Image(v.prevPhoto))
}

func (v *shapePreview) ResetShapePreview() {
	if v == nil || v.label == nil {
		return
	}
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(images.EncodePNG(placeholderImage())))
	v.label.Configure(Image(v.prevPhoto))
}

func placeholderImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, previewW, previewH))
}
