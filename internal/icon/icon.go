// Package icon renders the Vaulty "V" mark as a finished square icon. A
// Style picks the background treatment, the glyph construction and the
// supersampling factor; Render runs the same pipeline for every variant:
// background, glyph, optional highlight overlay, optional downsample.
package icon

import (
	"image"

	"github.com/vaulty-app/brandgen/internal/brand"
	"github.com/vaulty-app/brandgen/internal/render"
)

// Background selects how the rounded-square backdrop is produced.
type Background int

const (
	// BackgroundFlat fills a rounded rectangle with the slate base color
	// and layers fading highlight rings along the border.
	BackgroundFlat Background = iota
	// BackgroundGradient clips a vertical indigo gradient to a rounded
	// mask.
	BackgroundGradient
)

// Glyph selects how the "V" is constructed.
type Glyph int

const (
	// GlyphMonogram draws the single six-vertex polygon in the accent
	// color.
	GlyphMonogram Glyph = iota
	// GlyphArms draws two mirrored white arm quads on their own layer.
	GlyphArms
)

// Style bundles the rendering choices that distinguish the shipped
// variants.
type Style struct {
	Background Background
	Glyph      Glyph
	// Supersample is the oversampling factor; 1 renders at target size.
	Supersample int
	// TwoTone paints the translucent violet overlay on the monogram's
	// right half.
	TwoTone bool
}

// Favicon is the web favicon look: flat slate backdrop, border rings and a
// two-tone indigo monogram, drawn directly at target size.
var Favicon = Style{
	Background:  BackgroundFlat,
	Glyph:       GlyphMonogram,
	Supersample: 1,
	TwoTone:     true,
}

// Extension is the browser-extension toolbar look: indigo gradient
// backdrop and a white "V", supersampled 4x so edges stay smooth at 16px.
var Extension = Style{
	Background:  BackgroundGradient,
	Glyph:       GlyphArms,
	Supersample: 4,
}

const (
	flatRadiusDiv  = 5    // flat background corner radius = size / 5
	maskRadiusFrac = 0.22 // gradient mask corner radius fraction
	ringCount      = 4
	ringBaseAlpha  = 60
	ringAlphaStep  = 15
	highlightAlpha = 200
)

// Render produces the fully composited size×size icon for a style. Output
// depends only on the style and size, so repeated calls are byte-identical.
func Render(st Style, size int) *image.RGBA {
	scale := st.Supersample
	if scale < 1 {
		scale = 1
	}
	s := size * scale

	canvas := render.NewCanvas(s)
	drawBackground(canvas, st.Background)
	drawGlyph(canvas, st.Glyph)
	if st.TwoTone {
		overlay := render.NewCanvas(s)
		c := brand.Violet500
		c.A = highlightAlpha
		render.FillPolygon(overlay, brand.MonogramHighlight(float64(s)), c)
		render.AlphaOver(canvas, overlay)
	}
	if scale > 1 {
		return render.Downsample(canvas, size)
	}
	return canvas
}

func drawBackground(canvas *image.RGBA, bg Background) {
	s := canvas.Bounds().Dx()
	switch bg {
	case BackgroundFlat:
		radius := float64(s / flatRadiusDiv)
		render.FillRoundedRect(canvas, radius, brand.Slate900)
		for i := 0; i < ringCount; i++ {
			alpha := ringBaseAlpha - i*ringAlphaStep
			if alpha < 0 {
				alpha = 0
			}
			ring := render.NewCanvas(s)
			c := brand.Violet500
			c.A = uint8(alpha)
			render.StrokeRoundedRectInset(ring, i, radius, c)
			render.AlphaOver(canvas, ring)
		}
	case BackgroundGradient:
		grad := render.VerticalGradient(s, brand.Indigo500, brand.Indigo700)
		render.PasteMasked(canvas, grad, render.RoundedRectMask(s, maskRadiusFrac))
	}
}

func drawGlyph(canvas *image.RGBA, g Glyph) {
	s := canvas.Bounds().Dx()
	switch g {
	case GlyphMonogram:
		render.FillPolygon(canvas, brand.Monogram(float64(s)), brand.Indigo500)
	case GlyphArms:
		layer := render.NewCanvas(s)
		left, right := brand.Arms(float64(s))
		render.FillPolygon(layer, left, brand.White)
		render.FillPolygon(layer, right, brand.White)
		render.AlphaOver(canvas, layer)
	}
}
