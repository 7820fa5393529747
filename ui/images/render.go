package images

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/soocke/image-label-go/domain/annotation"
	"github.com/soocke/image-label-go/domain/geometry"
)

// Frame describes one canvas render: the scaled base image plus overlays.
// Points in Preview are display-space; annotation points are relative and
// projected against the frame size.
type Frame struct {
	Base         image.Image // already scaled to W x H; nil renders a flat background
	W, H         int
	Items        []annotation.Annotation
	SelectedID   string
	Preview      []geometry.Point
	PreviewKind  annotation.Kind
	HasPreview   bool
	HandleRadius int
	ErrorText    string // non-empty renders the load-error placeholder instead
}

var (
	backgroundGray = color.RGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 0xff}
	errorRed       = color.RGBA{R: 0xd9, G: 0x53, B: 0x4f, A: 0xff}
	previewWhite   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Render rasterizes the frame in z-order: base image, committed annotations,
// selection handles, then the in-progress preview on top.
func Render(f Frame) *image.RGBA {
	w, h := f.W, f.H
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: backgroundGray}, image.Point{}, draw.Src)
	if f.ErrorText != "" {
		drawText(dst, w/2-len(f.ErrorText)*7/2, h/2, f.ErrorText, errorRed)
		return dst
	}
	if f.Base != nil {
		draw.Draw(dst, dst.Bounds(), f.Base, f.Base.Bounds().Min, draw.Src)
	}
	for i := range f.Items {
		a := &f.Items[i]
		drawAnnotation(dst, a, w, h, a.ID == f.SelectedID, f.HandleRadius)
	}
	if f.HasPreview {
		drawPreview(dst, f.PreviewKind, f.Preview)
	}
	return dst
}

func drawAnnotation(dst *image.RGBA, a *annotation.Annotation, w, h int, selected bool, handleR int) {
	col := toRGBA(a.Color)
	pts := make([]image.Point, len(a.Points))
	for i, p := range a.Points {
		abs := geometry.ToAbsolute(p, float64(w), float64(h))
		pts[i] = image.Pt(int(abs.X+0.5), int(abs.Y+0.5))
	}
	switch a.Kind {
	case annotation.KindBox:
		if len(pts) != 2 {
			return
		}
		drawRectOutline(dst, pts[0], pts[1], col)
		if a.Label != "" {
			drawText(dst, pts[0].X+3, pts[0].Y+12, a.Label, col)
		}
		if selected {
			for _, c := range []image.Point{
				pts[0], {X: pts[1].X, Y: pts[0].Y}, pts[1], {X: pts[0].X, Y: pts[1].Y},
			} {
				fillSquare(dst, c, handleR/2+2, col)
			}
		}
	case annotation.KindPolygon:
		for i := range pts {
			drawLine(dst, pts[i], pts[(i+1)%len(pts)], col)
		}
		if a.Label != "" && len(pts) > 0 {
			drawText(dst, pts[0].X+3, pts[0].Y-4, a.Label, col)
		}
		if selected {
			for _, v := range pts {
				fillSquare(dst, v, handleR/2+2, col)
			}
		}
	case annotation.KindPoint:
		if len(pts) != 1 {
			return
		}
		drawCross(dst, pts[0], 6, col)
		if selected {
			fillSquare(dst, pts[0], 2, col)
		}
		if a.Label != "" {
			drawText(dst, pts[0].X+8, pts[0].Y+4, a.Label, col)
		}
	}
}

func drawPreview(dst *image.RGBA, kind annotation.Kind, pts []geometry.Point) {
	ipts := make([]image.Point, len(pts))
	for i, p := range pts {
		ipts[i] = image.Pt(int(p.X+0.5), int(p.Y+0.5))
	}
	switch kind {
	case annotation.KindBox:
		if len(ipts) == 2 {
			drawRectOutline(dst, ipts[0], ipts[1], previewWhite)
		}
	case annotation.KindPolygon:
		// Open polyline: the shape is not closed until committed.
		for i := 0; i+1 < len(ipts); i++ {
			drawLine(dst, ipts[i], ipts[i+1], previewWhite)
		}
		for _, v := range ipts[:max(0, len(ipts)-1)] {
			fillSquare(dst, v, 2, previewWhite)
		}
	}
}

func toRGBA(hex string) color.RGBA {
	c := annotation.ParseHex(hex)
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// drawLine draws a 1px line with integer error stepping.
func drawLine(dst *image.RGBA, a, b image.Point, col color.RGBA) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy
	x, y := a.X, a.Y
	for {
		setIfInside(dst, x, y, col)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func drawRectOutline(dst *image.RGBA, a, b image.Point, col color.RGBA) {
	tl := image.Pt(min(a.X, b.X), min(a.Y, b.Y))
	br := image.Pt(max(a.X, b.X), max(a.Y, b.Y))
	drawLine(dst, tl, image.Pt(br.X, tl.Y), col)
	drawLine(dst, image.Pt(br.X, tl.Y), br, col)
	drawLine(dst, br, image.Pt(tl.X, br.Y), col)
	drawLine(dst, image.Pt(tl.X, br.Y), tl, col)
}

func drawCross(dst *image.RGBA, c image.Point, r int, col color.RGBA) {
	drawLine(dst, image.Pt(c.X-r, c.Y), image.Pt(c.X+r, c.Y), col)
	drawLine(dst, image.Pt(c.X, c.Y-r), image.Pt(c.X, c.Y+r), col)
}

func fillSquare(dst *image.RGBA, c image.Point, r int, col color.RGBA) {
	for y := c.Y - r; y <= c.Y+r; y++ {
		for x := c.X - r; x <= c.X+r; x++ {
			setIfInside(dst, x, y, col)
		}
	}
}

func setIfInside(dst *image.RGBA, x, y int, col color.RGBA) {
	if image.Pt(x, y).In(dst.Bounds()) {
		dst.SetRGBA(x, y, col)
	}
}

func drawText(dst *image.RGBA, x, y int, s string, col color.RGBA) {
	d := font.Drawer{
		Dst:  dst,
		Src:  &image.Uniform{C: col},
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
