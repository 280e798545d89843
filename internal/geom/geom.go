package geom

// Point is a 2D coordinate in pixel space. Glyph geometry is computed in
// float64 so shapes stay exact fractions of the canvas size until they are
// rasterized.
type Point struct {
	X, Y float64
}

// Polygon is an ordered list of vertices. Fill operations close it
// implicitly, connecting the last vertex back to the first.
type Polygon []Point

// Mirror returns p reflected across the vertical line x = axisX
// (x' = 2*axisX - x). Vertex order is preserved; fills don't care about
// winding direction.
func Mirror(p Polygon, axisX float64) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = Point{X: 2*axisX - pt.X, Y: pt.Y}
	}
	return out
}

// Scale returns p with every coordinate multiplied by factor. Because all
// glyph coordinates are size*constant, scaling about the origin and scaling
// about the canvas center produce the same shape.
func Scale(p Polygon, factor float64) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = Point{X: pt.X * factor, Y: pt.Y * factor}
	}
	return out
}
