package utern

import (
	"github.com/paulmach/orb"
)

// MedianLayout is the median strip split by the opening under the turn corridor
type MedianLayout struct {
	Band     orb.Bound
	Corridor orb.Bound
	Opening  orb.Bound
	// Segments are the solid spans before and after the opening
	Segments [2]orb.Bound
}

// BufferBand is the hatched segregation strip between turning lane and its neighbouring through lane
type BufferBand struct {
	Carriageway Carriageway
	Bound       orb.Bound
}

// computeMedian centers the fixed-length opening on the turn corridor. The corridor is the
// major axis long strip starting at the taper end, so its midpoint is the arc tip where the
// turning centerline crosses the median.
func computeMedian(in ScaledInput, lanes LaneLayout, path TurnPath) (MedianLayout, error) {
	band := lanes.MedianBand()
	corridorMinX := path.TaperX
	corridorMaxX := path.TaperX + in.MajorAxis
	corridorWidth := corridorMaxX - corridorMinX
	if in.MedianOpening >= corridorWidth {
		return MedianLayout{}, invalidConfiguration("median opening %f is not narrower than turn corridor %f", in.MedianOpening, corridorWidth)
	}
	openingMinX := corridorMinX + (corridorWidth-in.MedianOpening)/2.0
	openingMaxX := openingMinX + in.MedianOpening
	if openingMinX <= band.Min[0] || openingMaxX >= band.Max[0] {
		return MedianLayout{}, invalidConfiguration("median opening [%f, %f] falls outside the road", openingMinX, openingMaxX)
	}
	crossMinX, crossMaxX := path.MedianCrossing(band)
	if crossMinX < openingMinX || crossMaxX > openingMaxX {
		return MedianLayout{}, invalidConfiguration("turn path crosses median at [%f, %f], outside of opening [%f, %f]", crossMinX, crossMaxX, openingMinX, openingMaxX)
	}
	return MedianLayout{
		Band: band,
		Corridor: orb.Bound{
			Min: orb.Point{corridorMinX, band.Min[1]},
			Max: orb.Point{corridorMaxX, band.Max[1]},
		},
		Opening: orb.Bound{
			Min: orb.Point{openingMinX, band.Min[1]},
			Max: orb.Point{openingMaxX, band.Max[1]},
		},
		Segments: [2]orb.Bound{
			{
				Min: band.Min,
				Max: orb.Point{openingMinX, band.Max[1]},
			},
			{
				Min: orb.Point{openingMaxX, band.Min[1]},
				Max: band.Max,
			},
		},
	}, nil
}

// computeBufferBands places constant-thickness strips on the through-lane side of each L1/L2 boundary
func computeBufferBands(in ScaledInput, lanes LaneLayout) [2]BufferBand {
	topBoundary := lanes.Top[0].Band.Min[1]
	bottomBoundary := lanes.Bottom[0].Band.Max[1]
	return [2]BufferBand{
		{
			Carriageway: CARRIAGEWAY_TOP,
			Bound: orb.Bound{
				Min: orb.Point{0, topBoundary - in.BufferThickness},
				Max: orb.Point{in.RoadLength, topBoundary},
			},
		},
		{
			Carriageway: CARRIAGEWAY_BOTTOM,
			Bound: orb.Bound{
				Min: orb.Point{0, bottomBoundary},
				Max: orb.Point{in.RoadLength, bottomBoundary + in.BufferThickness},
			},
		},
	}
}

// OpeningSpan returns [min, max] abscissas of median opening
func (median MedianLayout) OpeningSpan() (float64, float64) {
	return median.Opening.Min[0], median.Opening.Max[0]
}
