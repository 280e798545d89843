package render

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/vaulty-app/brandgen/internal/geom"
)

func wantPixel(t *testing.T, img *image.RGBA, x, y int, want color.RGBA, tol int) {
	t.Helper()
	got := img.RGBAAt(x, y)
	diffs := []int{
		int(got.R) - int(want.R),
		int(got.G) - int(want.G),
		int(got.B) - int(want.B),
		int(got.A) - int(want.A),
	}
	for _, d := range diffs {
		if d < -tol || d > tol {
			t.Errorf("pixel (%d,%d): got %v, want %v (tolerance %d)", x, y, got, want, tol)
			return
		}
	}
}

func TestNewCanvasTransparent(t *testing.T) {
	img := NewCanvas(8)
	if got := img.Bounds(); got.Dx() != 8 || got.Dy() != 8 {
		t.Fatalf("bounds = %v, want 8x8", got)
	}
	for _, b := range img.Pix {
		if b != 0 {
			t.Fatal("new canvas is not fully transparent")
		}
	}
}

func TestAlphaOverTransparentOverlayIsNoop(t *testing.T) {
	base := VerticalGradient(16, color.NRGBA{R: 10, G: 200, B: 30, A: 255},
		color.NRGBA{R: 250, G: 20, B: 130, A: 255})
	before := append([]byte(nil), base.Pix...)
	AlphaOver(base, NewCanvas(16))
	if !bytes.Equal(base.Pix, before) {
		t.Error("transparent overlay changed base pixels")
	}
}

func TestAlphaOverOpaqueOverlayReplaces(t *testing.T) {
	base := NewCanvas(4)
	FillPolygon(base, geom.Polygon{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}},
		color.NRGBA{R: 0, G: 255, B: 0, A: 255})
	overlay := NewCanvas(4)
	FillPolygon(overlay, geom.Polygon{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}},
		color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	AlphaOver(base, overlay)
	wantPixel(t, base, 2, 2, color.RGBA{R: 255, G: 0, B: 0, A: 255}, 0)
}

func TestPasteMaskedRespectsMask(t *testing.T) {
	dst := NewCanvas(8)
	src := image.NewUniform(color.RGBA{R: 0, G: 0, B: 255, A: 255})
	mask := image.NewAlpha(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 4; x++ {
			mask.SetAlpha(x, y, color.Alpha{A: 255})
		}
	}
	PasteMasked(dst, src, mask)
	wantPixel(t, dst, 1, 4, color.RGBA{R: 0, G: 0, B: 255, A: 255}, 0)
	wantPixel(t, dst, 6, 4, color.RGBA{}, 0)
}

func TestFillRoundedRect(t *testing.T) {
	img := NewCanvas(32)
	FillRoundedRect(img, 8, color.NRGBA{R: 15, G: 23, B: 42, A: 255})
	wantPixel(t, img, 16, 16, color.RGBA{R: 15, G: 23, B: 42, A: 255}, 0)
	wantPixel(t, img, 16, 0, color.RGBA{R: 15, G: 23, B: 42, A: 255}, 0)
	// Corner pixels sit outside the radius-8 arc.
	wantPixel(t, img, 0, 0, color.RGBA{}, 0)
	wantPixel(t, img, 31, 31, color.RGBA{}, 0)
}

func TestStrokeRoundedRectInset(t *testing.T) {
	img := NewCanvas(32)
	StrokeRoundedRectInset(img, 2, 6, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	if got := img.RGBAAt(16, 2).A; got == 0 {
		t.Error("top edge at inset row not painted")
	}
	if got := img.RGBAAt(16, 29).A; got == 0 {
		t.Error("bottom edge at inset row not painted")
	}
	if got := img.RGBAAt(16, 0).A; got != 0 {
		t.Errorf("row 0 painted (alpha %d), stroke should sit at the inset", got)
	}
	if got := img.RGBAAt(16, 16).A; got != 0 {
		t.Errorf("canvas center painted (alpha %d), want outline only", got)
	}
}

func TestStrokeRoundedRectInsetDegenerate(t *testing.T) {
	img := NewCanvas(4)
	StrokeRoundedRectInset(img, 2, 1, color.NRGBA{R: 255, A: 255})
	for _, b := range img.Pix {
		if b != 0 {
			t.Fatal("degenerate inset painted pixels")
		}
	}
}

func TestFillPolygonSquare(t *testing.T) {
	img := NewCanvas(16)
	FillPolygon(img, geom.Polygon{{X: 4, Y: 4}, {X: 12, Y: 4}, {X: 12, Y: 12}, {X: 4, Y: 12}},
		color.NRGBA{R: 200, G: 10, B: 10, A: 255})
	wantPixel(t, img, 8, 8, color.RGBA{R: 200, G: 10, B: 10, A: 255}, 0)
	wantPixel(t, img, 2, 2, color.RGBA{}, 0)
	wantPixel(t, img, 13, 8, color.RGBA{}, 0)
}

func TestFillPolygonTooFewVertices(t *testing.T) {
	img := NewCanvas(8)
	FillPolygon(img, geom.Polygon{{X: 1, Y: 1}, {X: 6, Y: 6}}, color.NRGBA{R: 255, A: 255})
	for _, b := range img.Pix {
		if b != 0 {
			t.Fatal("two-vertex polygon painted pixels")
		}
	}
}

func TestVerticalGradientEndpoints(t *testing.T) {
	top := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	bottom := color.NRGBA{R: 210, G: 220, B: 230, A: 255}
	img := VerticalGradient(16, top, bottom)
	for x := 0; x < 16; x++ {
		wantPixel(t, img, x, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255}, 0)
		wantPixel(t, img, x, 15, color.RGBA{R: 210, G: 220, B: 230, A: 255}, 0)
	}
}

func TestVerticalGradientMonotonic(t *testing.T) {
	img := VerticalGradient(64, color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		color.NRGBA{A: 255})
	prev := img.RGBAAt(0, 0)
	for y := 1; y < 64; y++ {
		cur := img.RGBAAt(0, y)
		if cur.R > prev.R || cur.G > prev.G || cur.B > prev.B {
			t.Fatalf("row %d brighter than row %d: %v > %v", y, y-1, cur, prev)
		}
		prev = cur
	}
}

func TestVerticalGradientTruncates(t *testing.T) {
	img := VerticalGradient(3, color.NRGBA{A: 255}, color.NRGBA{R: 255, A: 255})
	// The middle row sits at t=0.5; 127.5 truncates to 127.
	wantPixel(t, img, 1, 1, color.RGBA{R: 127, A: 255}, 0)
}

func TestVerticalGradientSinglePixel(t *testing.T) {
	img := VerticalGradient(1, color.NRGBA{R: 99, G: 102, B: 241, A: 255},
		color.NRGBA{R: 67, G: 56, B: 202, A: 255})
	wantPixel(t, img, 0, 0, color.RGBA{R: 99, G: 102, B: 241, A: 255}, 0)
}

func TestRoundedRectMask(t *testing.T) {
	mask := RoundedRectMask(64, 0.22)
	if _, _, _, a := mask.At(0, 0).RGBA(); a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
	if _, _, _, a := mask.At(32, 32).RGBA(); a != 0xffff {
		t.Errorf("center alpha = %#x, want 0xffff", a)
	}
	if _, _, _, a := mask.At(32, 0).RGBA(); a != 0xffff {
		t.Errorf("top edge midpoint alpha = %#x, want 0xffff", a)
	}
}

func TestRoundedRectMaskMinimumRadius(t *testing.T) {
	// 0.22 of 4 truncates to 0; the mask must still round with radius 1.
	mask := RoundedRectMask(4, 0.22)
	if _, _, _, a := mask.At(1, 1).RGBA(); a != 0xffff {
		t.Errorf("interior alpha = %#x, want 0xffff", a)
	}
}

func TestDownsampleDims(t *testing.T) {
	src := VerticalGradient(128, color.NRGBA{R: 255, A: 255}, color.NRGBA{B: 255, A: 255})
	dst := Downsample(src, 32)
	if got := dst.Bounds(); got.Dx() != 32 || got.Dy() != 32 {
		t.Fatalf("bounds = %v, want 32x32", got)
	}
}

func TestDownsampleUniformStaysUniform(t *testing.T) {
	src := NewCanvas(64)
	FillPolygon(src, geom.Polygon{{X: 0, Y: 0}, {X: 64, Y: 0}, {X: 64, Y: 64}, {X: 0, Y: 64}},
		color.NRGBA{R: 120, G: 30, B: 210, A: 255})
	dst := Downsample(src, 16)
	wantPixel(t, dst, 8, 8, color.RGBA{R: 120, G: 30, B: 210, A: 255}, 1)
}
