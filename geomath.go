package utern

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const (
	geomEpsilon = 1e-9
)

// Check if two lines intersects and returns intersections Point
// p1, p2 - first line
// p3, p4 - second line
// Note: Euclidean space
func intersect(p1, p2, p3, p4 orb.Point) (orb.Point, error) {
	// Calculate the coefficients of the linear equations
	a1 := p2[1] - p1[1]
	b1 := p1[0] - p2[0]
	c1 := a1*p1[0] + b1*p1[1]
	a2 := p4[1] - p3[1]
	b2 := p3[0] - p4[0]
	c2 := a2*p3[0] + b2*p3[1]

	// Calculate the determinant
	det := a1*b2 - a2*b1
	if math.Abs(det) < geomEpsilon {
		return orb.Point{}, fmt.Errorf("The lines are parallel")
	}

	// Calculate the intersection point
	x := (b2*c1 - b1*c2) / det
	y := (a1*c2 - a2*c1) / det
	return orb.Point{x, y}, nil
}

// segmentsIntersection returns crossing point of two bounded segments [p1, p2] and [p3, p4]
func segmentsIntersection(p1, p2, p3, p4 orb.Point) (orb.Point, bool) {
	d1 := orb.Point{p2[0] - p1[0], p2[1] - p1[1]}
	d2 := orb.Point{p4[0] - p3[0], p4[1] - p3[1]}
	denom := d1[0]*d2[1] - d1[1]*d2[0]
	if math.Abs(denom) < geomEpsilon {
		return orb.Point{}, false
	}
	w := orb.Point{p3[0] - p1[0], p3[1] - p1[1]}
	t := (w[0]*d2[1] - w[1]*d2[0]) / denom
	u := (w[0]*d1[1] - w[1]*d1[0]) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return orb.Point{}, false
	}
	return orb.Point{p1[0] + t*d1[0], p1[1] + t*d1[1]}, true
}

// offsetCurve shifts every segment of the line by distance along its rotated normal and joins
// neighbouring shifted segments at their intersection.
//
// With y growing downward a positive distance moves to the right-hand side of travel direction
// on screen, which is the inner side of a clockwise sweep.
func offsetCurve(line orb.LineString, distance float64) orb.LineString {
	// Initialize result list and segment list
	var result orb.LineString
	var segments [][2]orb.Point

	// Iterate over line segments and calculate offset segments
	for i := 1; i < len(line); i++ {
		// Get current and previous points
		p1 := line[i-1]
		p2 := line[i]

		// Calculate the vector between the points
		vec := [2]float64{p2[0] - p1[0], p2[1] - p1[1]}

		// Normalize the vector
		vecLen := math.Sqrt(vec[0]*vec[0] + vec[1]*vec[1])
		if vecLen < geomEpsilon {
			continue
		}
		vec = [2]float64{vec[0] / vecLen, vec[1] / vecLen}

		// Rotate the vector by 90 degrees
		rotated := [2]float64{-vec[1], vec[0]}

		// Scale the rotated vector by the distance
		offset := [2]float64{rotated[0] * distance, rotated[1] * distance}

		// Calculate the offset points
		op1 := orb.Point{p1[0] + offset[0], p1[1] + offset[1]}
		op2 := orb.Point{p2[0] + offset[0], p2[1] + offset[1]}

		// Add the offset segment to the list of segments
		segments = append(segments, [2]orb.Point{op1, op2})
	}
	if len(segments) == 0 {
		return result
	}

	result = append(result, segments[0][0])
	// Iterate over the segments and calculate the intersections
	for i := 1; i < len(segments); i++ {
		// Get the current and previous segments
		seg1 := segments[i-1]
		seg2 := segments[i]
		// Calculate the intersection point
		intersection, err := intersect(seg1[0], seg1[1], seg2[0], seg2[1])
		if err != nil {
			continue
		}
		result = append(result, intersection)
	}
	result = append(result, segments[len(segments)-1][1])
	return result
}

// trimFolds removes loops produced where an offset is larger than local radius of curvature.
// Each loop is cut at the crossing of its outermost pair of non-adjacent segments. Returns new slice
func trimFolds(line orb.LineString) orb.LineString {
	output := line.Clone()
	for i := 0; i < len(output)-1; i++ {
		for j := len(output) - 2; j >= i+2; j-- {
			crossing, ok := segmentsIntersection(output[i], output[i+1], output[j], output[j+1])
			if !ok {
				continue
			}
			trimmed := make(orb.LineString, 0, len(output)-(j-i)+1)
			trimmed = append(trimmed, output[:i+1]...)
			trimmed = append(trimmed, crossing)
			trimmed = append(trimmed, output[j+1:]...)
			output = trimmed
			break
		}
	}
	return output
}

// distanceToLine returns distance from point to the infinite line through p and q
func distanceToLine(pt, p, q orb.Point) float64 {
	length := planar.Distance(p, q)
	if length < geomEpsilon {
		return planar.Distance(pt, p)
	}
	cross := (q[0]-p[0])*(pt[1]-p[1]) - (q[1]-p[1])*(pt[0]-p[0])
	return math.Abs(cross) / length
}

// distanceToSegment returns distance from point to the bounded segment [p, q]
func distanceToSegment(pt, p, q orb.Point) float64 {
	dx, dy := q[0]-p[0], q[1]-p[1]
	lengthSq := dx*dx + dy*dy
	if lengthSq < geomEpsilon {
		return planar.Distance(pt, p)
	}
	t := ((pt[0]-p[0])*dx + (pt[1]-p[1])*dy) / lengthSq
	t = math.Max(0, math.Min(1, t))
	return planar.Distance(pt, orb.Point{p[0] + t*dx, p[1] + t*dy})
}

// distanceToLineString returns distance from point to the nearest segment of given line
func distanceToLineString(pt orb.Point, line orb.LineString) float64 {
	best := math.Inf(1)
	for i := 1; i < len(line); i++ {
		best = math.Min(best, distanceToSegment(pt, line[i-1], line[i]))
	}
	return best
}

// isSimpleLine reports whether no two non-adjacent segments of the line cross
func isSimpleLine(line orb.LineString) bool {
	for i := 0; i < len(line)-1; i++ {
		for j := i + 2; j < len(line)-1; j++ {
			if _, ok := segmentsIntersection(line[i], line[i+1], line[j], line[j+1]); ok {
				return false
			}
		}
	}
	return true
}
