package main

import "math"

type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// DivisionPoint returns the position of division point index on a circle
// split into n evenly spaced points. Index 0 sits at angle 0 (to the right
// of center) and indices advance by 360/n degrees.
func DivisionPoint(index, n int, center Point, radius float64) Point {
	angle := float64(index) * 360.0 / float64(n)
	rad := angle * math.Pi / 180.0
	return Point{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
	}
}

// DivisionPoints returns all n division points in index order.
func DivisionPoints(n int, center Point, radius float64) []Point {
	points := make([]Point, n)
	for i := 0; i < n; i++ {
		points[i] = DivisionPoint(i, n, center, radius)
	}
	return points
}

// NearestDivisionPoint returns the index of the division point closest to p
// and its distance. Ties resolve to the lowest index.
func NearestDivisionPoint(p Point, n int, center Point, radius float64) (int, float64) {
	best := 0
	bestDist := math.Inf(1)
	for i := 0; i < n; i++ {
		d := p.Distance(DivisionPoint(i, n, center, radius))
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, bestDist
}

// SnapToPoint replaces p with the nearest division point when that point is
// within maxDist, otherwise returns p unchanged.
func SnapToPoint(p Point, n int, center Point, radius, maxDist float64) Point {
	idx, dist := NearestDivisionPoint(p, n, center, radius)
	if dist <= maxDist {
		return DivisionPoint(idx, n, center, radius)
	}
	return p
}
