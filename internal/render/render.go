// Package render provides the raster primitives the icon pipeline is built
// from: canvas allocation, rounded rectangles, polygon fills, gradients,
// masked pastes and Catmull-Rom resampling. Everything draws into
// premultiplied *image.RGBA so layers can be composited with the standard
// library's draw.Over.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/vaulty-app/brandgen/internal/geom"
)

// NewCanvas returns a fully transparent size×size canvas.
func NewCanvas(size int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, size, size))
}

// AlphaOver composites overlay onto base in place using source-over
// blending. Fully transparent overlay pixels leave base untouched.
func AlphaOver(base *image.RGBA, overlay image.Image) {
	draw.Draw(base, base.Bounds(), overlay, image.Point{}, draw.Over)
}

// PasteMasked composites src onto dst through the alpha channel of mask,
// with all three aligned at the origin.
func PasteMasked(dst *image.RGBA, src, mask image.Image) {
	draw.DrawMask(dst, dst.Bounds(), src, image.Point{}, mask, image.Point{}, draw.Over)
}

// FillRoundedRect fills dst with a rounded rectangle spanning the whole
// canvas. radius is the corner radius in pixels.
func FillRoundedRect(dst *image.RGBA, radius float64, c color.Color) {
	b := dst.Bounds()
	dc := gg.NewContextForRGBA(dst)
	dc.DrawRoundedRectangle(0, 0, float64(b.Dx()), float64(b.Dy()), radius)
	dc.SetColor(c)
	dc.Fill()
}

// StrokeRoundedRectInset strokes a one-pixel rounded-rectangle outline
// inset from every canvas edge by inset pixels. The corner radius is the
// same at every inset, so successive rings nest without touching.
func StrokeRoundedRectInset(dst *image.RGBA, inset int, radius float64, c color.Color) {
	b := dst.Bounds()
	// +0.5 centers the hairline stroke on the pixel row.
	off := float64(inset) + 0.5
	w := float64(b.Dx()-2*inset) - 1
	h := float64(b.Dy()-2*inset) - 1
	if w <= 0 || h <= 0 {
		return
	}
	dc := gg.NewContextForRGBA(dst)
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(off, off, w, h, radius)
	dc.SetColor(c)
	dc.Stroke()
}

// FillPolygon fills poly onto dst with antialiased edges, closing the path
// from the last vertex back to the first. Polygons with fewer than three
// vertices are ignored.
func FillPolygon(dst *image.RGBA, poly geom.Polygon, c color.Color) {
	if len(poly) < 3 {
		return
	}
	dc := gg.NewContextForRGBA(dst)
	dc.MoveTo(poly[0].X, poly[0].Y)
	for _, pt := range poly[1:] {
		dc.LineTo(pt.X, pt.Y)
	}
	dc.ClosePath()
	dc.SetColor(c)
	dc.Fill()
}

// VerticalGradient returns an opaque size×size canvas filled with a linear
// top-to-bottom gradient. Every pixel of row y gets the channel-wise blend
// of top and bottom at t = y/(size-1); the fraction truncates, it does not
// round.
func VerticalGradient(size int, top, bottom color.NRGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	denom := size - 1
	if denom < 1 {
		denom = 1
	}
	for y := 0; y < size; y++ {
		t := float64(y) / float64(denom)
		row := color.RGBA{
			R: lerp255(top.R, bottom.R, t),
			G: lerp255(top.G, bottom.G, t),
			B: lerp255(top.B, bottom.B, t),
			A: 255,
		}
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, row)
		}
	}
	return img
}

func lerp255(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// RoundedRectMask returns a size×size mask that is opaque inside a rounded
// rectangle covering the canvas and transparent outside it, with an
// antialiased edge. radiusFrac is the corner radius as a fraction of size;
// the radius never drops below one pixel.
func RoundedRectMask(size int, radiusFrac float64) image.Image {
	r := int(float64(size) * radiusFrac)
	if r < 1 {
		r = 1
	}
	dc := gg.NewContext(size, size)
	dc.DrawRoundedRectangle(0, 0, float64(size), float64(size), float64(r))
	dc.SetColor(color.White)
	dc.Fill()
	return dc.Image()
}

// Downsample scales src to a size×size canvas with Catmull-Rom resampling.
// This is the final step of supersampled rendering and keeps glyph edges
// smooth at small sizes.
func Downsample(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
