package core

import "math"

// Shape is the geometric footprint of an entity at one instant.
// The set of shapes is closed: Box, Circle and Polygon.
type Shape interface {
	// Bounds returns the axis-aligned bounding box of the shape.
	Bounds() Box
	// Contains reports whether the point lies inside the shape.
	// Used for rasterizing shapes onto the Screen.
	Contains(p Vec) bool

	shape()
}

// Circle is a disc centered on C with radius R.
type Circle struct {
	C Vec
	R float64
}

// NewCircle creates a circle centered on (x, y).
func NewCircle(x, y, r float64) Circle {
	return Circle{C: Vec{X: x, Y: y}, R: r}
}

// Polygon is a convex polygon. Vertices may be listed in either winding order.
type Polygon struct {
	Points []Vec
}

// NewPolygon creates a convex polygon from its vertices.
func NewPolygon(points ...Vec) Polygon {
	return Polygon{Points: points}
}

func (Box) shape()     {}
func (Circle) shape()  {}
func (Polygon) shape() {}

// Bounds returns the box itself.
func (b Box) Bounds() Box {
	return b
}

// Contains reports whether p lies inside the box (right and bottom edges exclusive).
func (b Box) Contains(p Vec) bool {
	return p.X >= b.X && p.X < b.Right() && p.Y >= b.Y && p.Y < b.Bottom()
}

// Bounds returns the box enclosing the circle.
func (c Circle) Bounds() Box {
	return Box{X: c.C.X - c.R, Y: c.C.Y - c.R, W: 2 * c.R, H: 2 * c.R}
}

// Contains reports whether p lies inside or on the circle.
func (c Circle) Contains(p Vec) bool {
	d := p.Sub(c.C)
	return d.Dot(d) <= c.R*c.R
}

// Bounds returns the box enclosing all vertices.
func (p Polygon) Bounds() Box {
	if len(p.Points) == 0 {
		return Box{}
	}
	minX, minY := p.Points[0].X, p.Points[0].Y
	maxX, maxY := minX, minY
	for _, v := range p.Points[1:] {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return Box{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Contains reports whether pt lies inside or on the convex polygon.
func (p Polygon) Contains(pt Vec) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}
	var pos, neg bool
	for i := range n {
		a, b := p.Points[i], p.Points[(i+1)%n]
		cross := (b.X-a.X)*(pt.Y-a.Y) - (b.Y-a.Y)*(pt.X-a.X)
		if cross > 0 {
			pos = true
		} else if cross < 0 {
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

// Area returns the polygon's area (always non-negative).
func (p Polygon) Area() float64 {
	n := len(p.Points)
	var sum float64
	for i := range n {
		a, b := p.Points[i], p.Points[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2
}

// Intersects reports whether two shapes share a region of positive area.
// Shapes that merely touch along a boundary do not intersect, and a nil
// or zero-area shape never intersects anything.
func Intersects(a, b Shape) bool {
	if a == nil || b == nil {
		return false
	}
	switch sa := a.(type) {
	case Box:
		switch sb := b.(type) {
		case Box:
			return sa.Overlaps(sb)
		case Circle:
			return circleBox(sb, sa)
		case Polygon:
			return polygons(boxPolygon(sa), sb)
		}
	case Circle:
		switch sb := b.(type) {
		case Box:
			return circleBox(sa, sb)
		case Circle:
			return circles(sa, sb)
		case Polygon:
			return circlePolygon(sa, sb)
		}
	case Polygon:
		switch sb := b.(type) {
		case Box:
			return polygons(sa, boxPolygon(sb))
		case Circle:
			return circlePolygon(sb, sa)
		case Polygon:
			return polygons(sa, sb)
		}
	}
	return false
}

func circles(a, b Circle) bool {
	if a.R <= 0 || b.R <= 0 {
		return false
	}
	d := a.C.Sub(b.C)
	r := a.R + b.R
	return d.Dot(d) < r*r
}

func circleBox(c Circle, b Box) bool {
	if c.R <= 0 || b.Empty() {
		return false
	}
	q := Vec{X: Clamp(c.C.X, b.X, b.Right()), Y: Clamp(c.C.Y, b.Y, b.Bottom())}
	d := c.C.Sub(q)
	return d.Dot(d) < c.R*c.R
}

func boxPolygon(b Box) Polygon {
	return Polygon{Points: []Vec{
		{X: b.X, Y: b.Y},
		{X: b.Right(), Y: b.Y},
		{X: b.Right(), Y: b.Bottom()},
		{X: b.X, Y: b.Bottom()},
	}}
}

// project returns the extent of the polygon along axis.
func project(p Polygon, axis Vec) (lo, hi float64) {
	lo = math.Inf(1)
	hi = math.Inf(-1)
	for _, v := range p.Points {
		d := v.Dot(axis)
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}

// separated reports whether axis separates a and b, counting touching
// projections as separated.
func separated(a, b Polygon, axis Vec) bool {
	if axis.X == 0 && axis.Y == 0 {
		return false
	}
	aLo, aHi := project(a, axis)
	bLo, bHi := project(b, axis)
	return aHi <= bLo || bHi <= aLo
}

func edgeNormal(p Polygon, i int) Vec {
	a, b := p.Points[i], p.Points[(i+1)%len(p.Points)]
	return Vec{X: -(b.Y - a.Y), Y: b.X - a.X}
}

// polygons runs the separating axis test on two convex polygons.
func polygons(a, b Polygon) bool {
	if a.Area() <= 0 || b.Area() <= 0 {
		return false
	}
	for i := range a.Points {
		if separated(a, b, edgeNormal(a, i)) {
			return false
		}
	}
	for i := range b.Points {
		if separated(a, b, edgeNormal(b, i)) {
			return false
		}
	}
	return true
}

// circlePolygon runs the separating axis test using the polygon's edge
// normals plus the axis from the circle center to the nearest vertex.
func circlePolygon(c Circle, p Polygon) bool {
	if c.R <= 0 || p.Area() <= 0 {
		return false
	}
	overlaps := func(axis Vec) bool {
		l := axis.Len()
		if l == 0 {
			return true
		}
		axis = axis.Scale(1 / l)
		lo, hi := project(p, axis)
		center := c.C.Dot(axis)
		return center+c.R > lo && hi > center-c.R
	}
	for i := range p.Points {
		if !overlaps(edgeNormal(p, i)) {
			return false
		}
	}
	nearest := p.Points[0]
	best := math.Inf(1)
	for _, v := range p.Points {
		d := v.Sub(c.C)
		if dd := d.Dot(d); dd < best {
			best = dd
			nearest = v
		}
	}
	return overlaps(nearest.Sub(c.C))
}
