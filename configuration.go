package utern

import (
	"fmt"
	"math"
)

// Configuration is the set of engineering parameters chosen by the user.
// It is comparable, so equal values are equal configurations.
type Configuration struct {
	L1Width      float64  `json:"l1Width"`      // turning lane, meters
	L2Width      float64  `json:"l2Width"`      // inner through lane, meters
	L3Width      float64  `json:"l3Width"`      // outer through lane, meters
	MedianWidth  float64  `json:"medianWidth"`  // meters
	TrafficSpeed float64  `json:"trafficSpeed"` // km/h
	TurnType     TurnType `json:"uTurnType"`
}

// DefaultConfiguration returns 7m clubbed U-turn lane, two 3.5m express lanes and 2m median at 60 km/h
func DefaultConfiguration() Configuration {
	return Configuration{
		L1Width:      7.0,
		L2Width:      3.5,
		L3Width:      3.5,
		MedianWidth:  2.0,
		TrafficSpeed: 60.0,
		TurnType:     TURN_AT_GRADE_MEDIAN_POCKET,
	}
}

// String returns pretty printed value for Configuration
func (cfg Configuration) String() string {
	return fmt.Sprintf(`
U-turn configuration:
	l1_width: %g m
	l2_width: %g m
	l3_width: %g m
	median_width: %g m
	traffic_speed: %g km/h
	turn_type: '%s'
	`,
		cfg.L1Width,
		cfg.L2Width,
		cfg.L3Width,
		cfg.MedianWidth,
		cfg.TrafficSpeed,
		cfg.TurnType,
	)
}

// Validate checks configuration against given constants before any geometry is produced
func (cfg Configuration) Validate(consts EngineeringConstants) error {
	positives := []struct {
		name  string
		value float64
	}{
		{"l1Width", cfg.L1Width},
		{"l2Width", cfg.L2Width},
		{"l3Width", cfg.L3Width},
		{"medianWidth", cfg.MedianWidth},
		{"trafficSpeed", cfg.TrafficSpeed},
	}
	for _, p := range positives {
		if math.IsNaN(p.value) || math.IsInf(p.value, 0) || p.value <= 0 {
			return invalidConfiguration("%s must be a positive finite number, got %v", p.name, p.value)
		}
	}
	if cfg.TurnType < TURN_GRADE_SEPARATED || cfg.TurnType > TURN_FLARED_MEDIAN {
		return invalidConfiguration("unknown turn type %d", cfg.TurnType)
	}

	rx := consts.MajorAxis / 2.0
	if cfg.L1Width >= consts.MajorAxis {
		return invalidConfiguration("l1Width %gm exceeds major axis %gm", cfg.L1Width, consts.MajorAxis)
	}
	// Inner edge of the canal would reach the ellipse center: no island is left
	if cfg.L1Width >= rx {
		return invalidConfiguration("l1Width %gm must be narrower than horizontal radius %gm", cfg.L1Width, rx)
	}
	ry := (cfg.L1Width + cfg.MedianWidth) / 2.0
	if ry < consts.MinVerticalRadius {
		return invalidConfiguration("vertical radius %gm is below minimum %gm", ry, consts.MinVerticalRadius)
	}
	// Buffer band lies on the through-lane side of the L1/L2 boundary
	if cfg.L2Width*consts.PixelsPerMeter/2.0 <= consts.BufferThickness {
		return invalidConfiguration("l2Width %gm leaves its centerline inside the buffer band", cfg.L2Width)
	}
	if consts.MedianOpening >= consts.MajorAxis {
		return invalidConfiguration("median opening %gm is not narrower than turn corridor %gm", consts.MedianOpening, consts.MajorAxis)
	}
	return nil
}

// validateConstants rejects constants which can not be scaled or laid out
func validateConstants(consts EngineeringConstants) error {
	values := []struct {
		name     string
		value    float64
		positive bool
		minZero  bool
	}{
		{"majorAxis", consts.MajorAxis, true, false},
		{"minorAxis", consts.MinorAxis, true, false},
		{"entryTaper", consts.EntryTaper, false, true},
		{"medianOpening", consts.MedianOpening, true, false},
		{"pixelsPerMeter", consts.PixelsPerMeter, true, false},
		{"paddingY", consts.PaddingY, false, true},
		{"startX", consts.StartX, false, true},
		{"approachX", consts.ApproachX, false, false},
		{"roadLength", consts.RoadLength, true, false},
		{"annotationGutter", consts.AnnotationGutter, false, true},
		{"bufferThickness", consts.BufferThickness, true, false},
		{"minVerticalRadius", consts.MinVerticalRadius, false, true},
		{"referenceSpeed", consts.ReferenceSpeed, true, false},
	}
	for _, v := range values {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return invalidConfiguration("constant %s must be finite, got %v", v.name, v.value)
		}
		if v.positive && v.value <= 0 {
			return invalidConfiguration("constant %s must be positive, got %v", v.name, v.value)
		}
		if v.minZero && v.value < 0 {
			return invalidConfiguration("constant %s must not be negative, got %v", v.name, v.value)
		}
	}
	// Turn path has to approach the taper from the left
	if consts.ApproachX >= consts.StartX {
		return invalidConfiguration("approachX %v must be left of startX %v", consts.ApproachX, consts.StartX)
	}
	return nil
}
