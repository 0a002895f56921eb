package utern

import (
	"fmt"
	"strconv"
	"time"

	"github.com/paulmach/orb"
)

// Dimension is a dimension line with its label
type Dimension struct {
	From  orb.Point
	To    orb.Point
	Label string
}

// LaneLabel is a text anchored at the start of a lane centerline
type LaneLabel struct {
	At      orb.Point
	Text    string
	Turning bool
}

// AnimationTiming holds durations for vehicle animations scaled by SpeedFactor
type AnimationTiming struct {
	SpeedFactor       float64
	ThroughOuter      time.Duration
	ThroughInner      time.Duration
	ThroughInnerDelay time.Duration
	UTurn             time.Duration
}

// Annotations is the labeling layer of the layout
type Annotations struct {
	// Dimensions are ordered: L1, L2, L3, median, major axis
	Dimensions []Dimension
	Labels     []LaneLabel
	Title      string
	Timing     AnimationTiming
}

// formatMeters prints meters without trailing zeros, e.g. "7m" or "3.5m"
func formatMeters(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "m"
}

// computeAnimationTiming returns base durations multiplied by referenceSpeed / trafficSpeed
func computeAnimationTiming(trafficSpeed, referenceSpeed float64) AnimationTiming {
	factor := referenceSpeed / trafficSpeed
	scale := func(seconds float64) time.Duration {
		return time.Duration(seconds * factor * float64(time.Second))
	}
	return AnimationTiming{
		SpeedFactor:       factor,
		ThroughOuter:      scale(baseThroughOuterSeconds),
		ThroughInner:      scale(baseThroughInnerSeconds),
		ThroughInnerDelay: scale(baseThroughInnerDelaySeconds),
		UTurn:             scale(baseUTurnSeconds),
	}
}

// computeAnnotations places every dimension line outside the carriageways: lane and median
// dimensions in the right gutter, major axis above the top carriageway
func computeAnnotations(cfg Configuration, consts EngineeringConstants, lanes LaneLayout, path TurnPath) Annotations {
	gutterX := lanes.RoadLength + dimensionGutterOffset
	meters := map[LaneID]float64{
		LANE_TURNING:       cfg.L1Width,
		LANE_THROUGH_INNER: cfg.L2Width,
		LANE_THROUGH_OUTER: cfg.L3Width,
	}

	dims := make([]Dimension, 0, 5)
	for _, lane := range lanes.Top {
		dims = append(dims, Dimension{
			From:  orb.Point{gutterX, lane.Band.Min[1]},
			To:    orb.Point{gutterX, lane.Band.Max[1]},
			Label: fmt.Sprintf("%s %s", lane.ID, formatMeters(meters[lane.ID])),
		})
	}
	medianBand := lanes.MedianBand()
	dims = append(dims, Dimension{
		From:  orb.Point{gutterX, medianBand.Min[1]},
		To:    orb.Point{gutterX, medianBand.Max[1]},
		Label: fmt.Sprintf("MEDIAN %s", formatMeters(cfg.MedianWidth)),
	})
	axisY := lanes.TopRoadY - majorAxisDimensionRise
	dims = append(dims, Dimension{
		From:  orb.Point{path.TaperX, axisY},
		To:    orb.Point{path.TaperX + 2.0*path.Arc.RX, axisY},
		Label: fmt.Sprintf("%s MAJOR AXIS CORRIDOR", formatMeters(consts.MajorAxis)),
	})

	labels := make([]LaneLabel, 0, 6)
	for _, c := range []Carriageway{CARRIAGEWAY_TOP, CARRIAGEWAY_BOTTOM} {
		lanesList := lanes.Lanes(c)
		// Outermost first, so labels read top to bottom on the top carriageway
		order := []int{2, 1, 0}
		if c == CARRIAGEWAY_BOTTOM {
			order = []int{0, 1, 2}
		}
		for _, idx := range order {
			lane := lanesList[idx]
			role := lane.ID.Role()
			if lane.ID == LANE_TURNING && c == CARRIAGEWAY_BOTTOM {
				role = "EXIT"
			}
			labels = append(labels, LaneLabel{
				At:      orb.Point{labelIndentX, lane.CenterY + labelBaselineShift},
				Text:    fmt.Sprintf("%s %s (%s)", lane.ID, role, formatMeters(meters[lane.ID])),
				Turning: lane.ID == LANE_TURNING,
			})
		}
	}

	return Annotations{
		Dimensions: dims,
		Labels:     labels,
		Title:      fmt.Sprintf("%s | %s x %s ellipse", cfg.TurnType, formatMeters(consts.MajorAxis), formatMeters(consts.MinorAxis)),
		Timing:     computeAnimationTiming(cfg.TrafficSpeed, consts.ReferenceSpeed),
	}
}

// MajorAxisLabelAt returns anchor for the major axis label
func (ann Annotations) MajorAxisLabelAt() orb.Point {
	axis := ann.Dimensions[len(ann.Dimensions)-1]
	return orb.Point{(axis.From[0] + axis.To[0]) / 2.0, axis.From[1] - (majorAxisLabelRise - majorAxisDimensionRise)}
}
