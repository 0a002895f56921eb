package utern

import (
	"github.com/paulmach/orb"
)

// Lane is a single lane band of a carriageway in drawing units
type Lane struct {
	ID          LaneID
	Carriageway Carriageway
	Width       float64
	// MedianOffset is the perpendicular distance from the median edge to the lane centerline
	MedianOffset float64
	// CenterY is the absolute ordinate of the centerline (y grows downward)
	CenterY float64
	Band    orb.Bound
}

// LaneLayout stacks lanes of both carriageways around the median
type LaneLayout struct {
	CarriagewayWidth float64
	TopRoadY         float64
	MedianY          float64
	MedianWidth      float64
	BottomRoadY      float64
	TotalHeight      float64
	RoadLength       float64

	// Index 0 is always the turning lane, i.e. the one nearest to the median
	Top    [3]Lane
	Bottom [3]Lane
}

// computeLaneLayout places turning lane next to the median on both carriageways, through lanes fill outward
func computeLaneLayout(in ScaledInput) LaneLayout {
	cw := in.CarriagewayWidth()
	layout := LaneLayout{
		CarriagewayWidth: cw,
		TopRoadY:         in.PaddingY,
		MedianWidth:      in.MedianWidth,
		RoadLength:       in.RoadLength,
	}
	layout.MedianY = layout.TopRoadY + cw
	layout.BottomRoadY = layout.MedianY + in.MedianWidth
	layout.TotalHeight = layout.BottomRoadY + cw + in.PaddingY

	widths := [3]float64{in.L1Width, in.L2Width, in.L3Width}
	ids := [3]LaneID{LANE_TURNING, LANE_THROUGH_INNER, LANE_THROUGH_OUTER}
	cumulative := 0.0
	for i := range widths {
		offset := cumulative + widths[i]/2.0
		// Top carriageway grows upward from the median edge
		topY := layout.MedianY - offset
		layout.Top[i] = Lane{
			ID:           ids[i],
			Carriageway:  CARRIAGEWAY_TOP,
			Width:        widths[i],
			MedianOffset: offset,
			CenterY:      topY,
			Band: orb.Bound{
				Min: orb.Point{0, layout.MedianY - cumulative - widths[i]},
				Max: orb.Point{in.RoadLength, layout.MedianY - cumulative},
			},
		}
		// Bottom carriageway grows downward from the median edge
		bottomY := layout.BottomRoadY + offset
		layout.Bottom[i] = Lane{
			ID:           ids[i],
			Carriageway:  CARRIAGEWAY_BOTTOM,
			Width:        widths[i],
			MedianOffset: offset,
			CenterY:      bottomY,
			Band: orb.Bound{
				Min: orb.Point{0, layout.BottomRoadY + cumulative},
				Max: orb.Point{in.RoadLength, layout.BottomRoadY + cumulative + widths[i]},
			},
		}
		cumulative += widths[i]
	}
	return layout
}

// MedianMidY returns ordinate of the median's vertical midpoint
func (layout LaneLayout) MedianMidY() float64 {
	return layout.MedianY + layout.MedianWidth/2.0
}

// TurningCenterlines returns ordinates of turning lane centerlines on top and bottom carriageways
func (layout LaneLayout) TurningCenterlines() (float64, float64) {
	return layout.Top[0].CenterY, layout.Bottom[0].CenterY
}

// Lanes returns lanes of given carriageway ordered from the median outward
func (layout LaneLayout) Lanes(c Carriageway) [3]Lane {
	if c == CARRIAGEWAY_TOP {
		return layout.Top
	}
	return layout.Bottom
}

// Lane returns single lane. Unknown identifiers give zero Lane
func (layout LaneLayout) Lane(c Carriageway, id LaneID) Lane {
	if id < LANE_TURNING || id > LANE_THROUGH_OUTER || (c != CARRIAGEWAY_TOP && c != CARRIAGEWAY_BOTTOM) {
		return Lane{}
	}
	return layout.Lanes(c)[id-1]
}

// MedianBand returns full-length median rectangle (opening not subtracted)
func (layout LaneLayout) MedianBand() orb.Bound {
	return orb.Bound{
		Min: orb.Point{0, layout.MedianY},
		Max: orb.Point{layout.RoadLength, layout.BottomRoadY},
	}
}

// CarriagewayBand returns full-length rectangle of given carriageway
func (layout LaneLayout) CarriagewayBand(c Carriageway) orb.Bound {
	if c == CARRIAGEWAY_TOP {
		return orb.Bound{
			Min: orb.Point{0, layout.TopRoadY},
			Max: orb.Point{layout.RoadLength, layout.MedianY},
		}
	}
	return orb.Bound{
		Min: orb.Point{0, layout.BottomRoadY},
		Max: orb.Point{layout.RoadLength, layout.BottomRoadY + layout.CarriagewayWidth},
	}
}
