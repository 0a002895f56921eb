package utern

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// LineSegment is a straight piece of a path
type LineSegment struct {
	From orb.Point
	To   orb.Point
}

// Length returns Euclidean length of the segment
func (seg LineSegment) Length() float64 {
	return planar.Distance(seg.From, seg.To)
}

// EllipticalArc is an axis-aligned elliptical arc. Angles are parametric, measured
// with y growing downward, so increasing angle runs clockwise on screen.
// From and To are stored exactly as the neighbouring straight segments see them.
type EllipticalArc struct {
	From       orb.Point
	To         orb.Point
	Center     orb.Point
	RX         float64
	RY         float64
	StartAngle float64
	EndAngle   float64
	Sweep      bool
}

// PointAt returns point of the ellipse for given parametric angle
func (arc EllipticalArc) PointAt(theta float64) orb.Point {
	return orb.Point{
		arc.Center[0] + arc.RX*math.Cos(theta),
		arc.Center[1] + arc.RY*math.Sin(theta),
	}
}

// Points samples the arc with given number of segments. Endpoints are exact
func (arc EllipticalArc) Points(segments int) orb.LineString {
	if segments < 1 {
		segments = 1
	}
	line := make(orb.LineString, 0, segments+1)
	step := (arc.EndAngle - arc.StartAngle) / float64(segments)
	for i := 0; i <= segments; i++ {
		theta := arc.StartAngle + step*float64(i)
		if i == segments {
			theta = arc.EndAngle
		}
		line = append(line, arc.PointAt(theta))
	}
	// Pin endpoints so they are bit-identical with the straight segments
	line[0] = arc.From
	line[len(line)-1] = arc.To
	return line
}

// Contains reports whether point lies inside the full ellipse (boundary included within tolerance)
func (arc EllipticalArc) Contains(pt orb.Point) bool {
	dx := (pt[0] - arc.Center[0]) / arc.RX
	dy := (pt[1] - arc.Center[1]) / arc.RY
	return dx*dx+dy*dy <= 1+1e-9
}

// TurnPath is the centerline travelled by U-turning vehicles: approach, arc, exit
type TurnPath struct {
	Approach LineSegment
	Arc      EllipticalArc
	Exit     LineSegment
	// TaperX is the abscissa where the entry taper ends and the arc begins
	TaperX float64
}

// Polyline returns the whole path as one line with arc sampled by given number of segments
func (path TurnPath) Polyline(segments int) orb.LineString {
	arc := path.Arc.Points(segments)
	line := make(orb.LineString, 0, len(arc)+2)
	line = append(line, path.Approach.From)
	line = append(line, arc...)
	line = append(line, path.Exit.To)
	return line
}

// IslandBoundary is the closed non-traversable region enclosed by the turn
type IslandBoundary struct {
	// Inner is the inner edge of the turning lane along the arc
	Inner orb.LineString
	// Closure runs from the end of Inner to the median midline and back to the start of Inner
	Closure [2]LineSegment
	Ring    orb.Ring
}

// Area returns area of the island in square drawing units
func (island IslandBoundary) Area() float64 {
	return math.Abs(planar.Area(island.Ring))
}

// MedianCrossing returns horizontal span where the arc lies inside the given median band.
// The arc reaches the band only around its tip, so the span ends at the tip.
func (path TurnPath) MedianCrossing(band orb.Bound) (float64, float64) {
	arc := path.Arc
	tipX := arc.Center[0] + arc.RX
	dy := math.Max(arc.Center[1]-band.Min[1], band.Max[1]-arc.Center[1])
	if dy >= arc.RY {
		return arc.Center[0], tipX
	}
	return arc.Center[0] + arc.RX*math.Sqrt(1-(dy/arc.RY)*(dy/arc.RY)), tipX
}

// generateTurnPath derives the turning corridor from the lane layout.
//
// Horizontal radius is fixed by the major axis. Vertical radius is always re-derived from
// the distance between mirrored turning-lane centerlines so the arc lands on both of them.
func generateTurnPath(in ScaledInput, lanes LaneLayout, segments int) (TurnPath, IslandBoundary, error) {
	topY, bottomY := lanes.TurningCenterlines()
	midY := lanes.MedianMidY()
	rx := in.MajorAxis / 2.0
	ry := (bottomY - topY) / 2.0
	if ry <= 0 || rx <= 0 {
		return TurnPath{}, IslandBoundary{}, invalidConfiguration("degenerate ellipse rx=%f ry=%f", rx, ry)
	}
	halfTurning := in.L1Width / 2.0
	if halfTurning >= rx || halfTurning >= ry {
		return TurnPath{}, IslandBoundary{}, invalidConfiguration("turning lane half width %f does not fit ellipse rx=%f ry=%f", halfTurning, rx, ry)
	}

	taperX := in.StartX + in.EntryTaper
	arc := EllipticalArc{
		From:       orb.Point{taperX, topY},
		To:         orb.Point{taperX, bottomY},
		Center:     orb.Point{taperX, midY},
		RX:         rx,
		RY:         ry,
		StartAngle: -math.Pi / 2.0,
		EndAngle:   math.Pi / 2.0,
		Sweep:      true,
	}
	path := TurnPath{
		Approach: LineSegment{From: orb.Point{in.ApproachX, topY}, To: arc.From},
		Arc:      arc,
		Exit:     LineSegment{From: arc.To, To: orb.Point{in.ApproachX, bottomY}},
		TaperX:   taperX,
	}

	inner := trimFolds(offsetCurve(arc.Points(segments), halfTurning))
	if len(inner) < 2 || !isSimpleLine(inner) {
		return TurnPath{}, IslandBoundary{}, invalidConfiguration("inner edge of turning lane is self-intersecting")
	}
	midPoint := orb.Point{taperX, midY}
	island := IslandBoundary{
		Inner: inner,
		Closure: [2]LineSegment{
			{From: inner[len(inner)-1], To: midPoint},
			{From: midPoint, To: inner[0]},
		},
	}
	ring := make(orb.Ring, 0, len(inner)+2)
	ring = append(ring, inner...)
	ring = append(ring, midPoint, inner[0])
	island.Ring = ring
	if len(ring) < 4 || island.Area() <= geomEpsilon {
		return TurnPath{}, IslandBoundary{}, invalidConfiguration("turning corridor leaves no island")
	}
	return path, island, nil
}
