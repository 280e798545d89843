// Package brand holds the Vaulty color palette and the "V" monogram
// geometry shared by every generated asset. All shapes are derived from the
// canvas size, so the same functions serve 16px toolbar icons and 512px
// install icons alike.
package brand

import (
	"fmt"
	"image/color"

	"github.com/vaulty-app/brandgen/internal/geom"
)

// Palette, matching the Tailwind shades used across the web app and the
// extension popup.
var (
	Slate900  = color.NRGBA{R: 15, G: 23, B: 42, A: 255}   // page background
	Indigo500 = color.NRGBA{R: 99, G: 102, B: 241, A: 255} // primary accent
	Indigo700 = color.NRGBA{R: 67, G: 56, B: 202, A: 255}  // gradient lower stop
	Violet500 = color.NRGBA{R: 139, G: 92, B: 246, A: 255} // highlight accent
	White     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Hex formats a color as a #rrggbb string for CSS and manifest fields.
// Alpha is ignored.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Monogram proportions, as fractions of the canvas size. The glyph is one
// closed six-vertex polygon: both arm tops plus the notch between them.
const (
	monoMargin   = 0.18 // outer edge inset from the left/right borders
	monoTopY     = 0.22 // top edge of both arms
	monoBottomY  = 0.78 // outer bottom tip
	monoThick    = 0.13 // arm thickness
	monoInnerMul = 1.6  // inner top corner inset, in thicknesses
	monoNotchMul = 0.9  // notch vertex lift above the tip, in thicknesses
)

// Monogram returns the six-vertex "V" polygon for a size×size canvas,
// ordered left outer top, left inner top, notch, right inner top, right
// outer top, bottom tip.
func Monogram(size float64) geom.Polygon {
	var (
		top        = size * monoTopY
		bottom     = size * monoBottomY
		mid        = size / 2
		thick      = size * monoThick
		leftOuter  = size * monoMargin
		leftInner  = leftOuter + thick*monoInnerMul
		rightOuter = size - leftOuter
		rightInner = size - leftInner
	)
	return geom.Polygon{
		{X: leftOuter, Y: top},
		{X: leftInner, Y: top},
		{X: mid, Y: bottom - thick*monoNotchMul},
		{X: rightInner, Y: top},
		{X: rightOuter, Y: top},
		{X: mid, Y: bottom},
	}
}

// MonogramHighlight returns the overlay polygon covering the monogram's
// right half, from the center line out to the right arm. Painted with a
// translucent violet it gives the favicon its two-tone look.
func MonogramHighlight(size float64) geom.Polygon {
	var (
		top        = size * monoTopY
		bottom     = size * monoBottomY
		mid        = size / 2
		thick      = size * monoThick
		rightOuter = size - size*monoMargin
		rightInner = rightOuter - thick*monoInnerMul
	)
	return geom.Polygon{
		{X: mid, Y: top},
		{X: rightInner, Y: top},
		{X: rightOuter, Y: top},
		{X: mid, Y: bottom},
	}
}

// Arm proportions for the two-stroke variant drawn on gradient
// backgrounds. Each arm is its own quad; the right one is the mirror image
// of the left.
const (
	armPad     = 0.16  // top and side inset
	armTipX    = 0.5   // apex x, the mirror axis
	armTipY    = 0.74  // apex y
	armThick   = 0.175 // stroke width
	armApexIn  = 0.55  // inner apex lift, in strokes
	armApexOut = 0.38  // outer apex pullback, in strokes
)

// Arms returns the left and right arm quads of the stroked "V" for a
// size×size canvas. The right arm is Mirror(left) about the apex, so the
// two are exact reflections of each other.
func Arms(size float64) (left, right geom.Polygon) {
	var (
		pad   = size * armPad
		tipX  = size * armTipX
		tipY  = size * armTipY
		thick = size * armThick
	)
	left = geom.Polygon{
		{X: pad, Y: pad},
		{X: pad + thick, Y: pad},
		{X: tipX, Y: tipY - thick*armApexIn},
		{X: tipX - thick*armApexOut, Y: tipY},
	}
	return left, geom.Mirror(left, tipX)
}
