package geom

import "math"

// Point is a position in the Cartesian plane.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Add returns the componentwise sum p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the componentwise difference p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p with both components multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Segment is a directed line segment from one point to another.
type Segment struct {
	From Point `json:"from" bson:"from"`
	To   Point `json:"to" bson:"to"`
}

// Delta returns the displacement vector To-From.
func (s Segment) Delta() (dx, dy float64) {
	return s.To.X - s.From.X, s.To.Y - s.From.Y
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	dx, dy := s.Delta()
	return math.Hypot(dx, dy)
}

// Lerp returns the point at parameter t along the segment, with t=0 at From
// and t=1 at To. Values outside [0,1] extrapolate.
func (s Segment) Lerp(t float64) Point {
	dx, dy := s.Delta()
	return Point{X: s.From.X + t*dx, Y: s.From.Y + t*dy}
}

// Extent returns the tight axis-aligned bounding box over the endpoints of
// segs. ok is false when segs is empty, in which case min and max are zero.
func Extent(segs []Segment) (min, max Point, ok bool) {
	if len(segs) == 0 {
		return Point{}, Point{}, false
	}
	min = segs[0].From
	max = segs[0].From
	for _, s := range segs {
		for _, p := range [2]Point{s.From, s.To} {
			min.X = math.Min(min.X, p.X)
			min.Y = math.Min(min.Y, p.Y)
			max.X = math.Max(max.X, p.X)
			max.Y = math.Max(max.Y, p.Y)
		}
	}
	return min, max, true
}
