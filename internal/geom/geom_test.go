package geom

import (
	"math"
	"testing"
)

func TestMirror(t *testing.T) {
	p := Polygon{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}
	got := Mirror(p, 10)
	want := Polygon{{X: 19, Y: 2}, {X: 17, Y: 4}, {X: 15, Y: 6}}
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMirrorTwiceIsIdentity(t *testing.T) {
	p := Polygon{{X: 0.18, Y: 0.22}, {X: 0.5, Y: 0.78}, {X: 0.82, Y: 0.22}}
	got := Mirror(Mirror(p, 0.5), 0.5)
	for i := range p {
		if got[i] != p[i] {
			t.Errorf("point %d: got %v, want %v", i, got[i], p[i])
		}
	}
}

func TestMirrorPreservesY(t *testing.T) {
	p := Polygon{{X: 2, Y: 7}, {X: 9, Y: 11}}
	for i, pt := range Mirror(p, 4) {
		if pt.Y != p[i].Y {
			t.Errorf("point %d: y changed from %v to %v", i, p[i].Y, pt.Y)
		}
	}
}

func TestMirrorDoesNotModifyInput(t *testing.T) {
	p := Polygon{{X: 1, Y: 1}}
	Mirror(p, 100)
	if p[0].X != 1 {
		t.Errorf("input mutated: got x=%v, want 1", p[0].X)
	}
}

func TestScale(t *testing.T) {
	p := Polygon{{X: 1, Y: 2}, {X: 3, Y: 4}}
	got := Scale(p, 2.5)
	want := Polygon{{X: 2.5, Y: 5}, {X: 7.5, Y: 10}}
	for i := range want {
		if math.Abs(got[i].X-want[i].X) > 1e-12 || math.Abs(got[i].Y-want[i].Y) > 1e-12 {
			t.Errorf("point %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestScaleByOneIsIdentity(t *testing.T) {
	p := Polygon{{X: 0.3, Y: 0.7}, {X: 12.8, Y: 96.4}}
	for i, pt := range Scale(p, 1) {
		if pt != p[i] {
			t.Errorf("point %d: got %v, want %v", i, pt, p[i])
		}
	}
}
