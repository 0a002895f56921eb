package utern

// EngineeringConstants is the fixed site-engineering and drawing parameter set.
// Values in meters are converted by Scaler; the rest are already drawing units.
type EngineeringConstants struct {
	MajorAxis     float64 `json:"majorAxis"`     // meters
	MinorAxis     float64 `json:"minorAxis"`     // meters, label only
	EntryTaper    float64 `json:"entryTaper"`    // meters
	MedianOpening float64 `json:"medianOpening"` // meters

	PixelsPerMeter float64 `json:"pixelsPerMeter"`

	PaddingY         float64 `json:"paddingY"`         // drawing units above and below the carriageways
	StartX           float64 `json:"startX"`           // drawing units, where the entry taper begins
	ApproachX        float64 `json:"approachX"`        // drawing units, off-canvas start/end of the turn path
	RoadLength       float64 `json:"roadLength"`       // drawing units
	AnnotationGutter float64 `json:"annotationGutter"` // drawing units right of the road reserved for dimensions
	BufferThickness  float64 `json:"bufferThickness"`  // drawing units

	MinVerticalRadius float64 `json:"minVerticalRadius"` // meters
	ReferenceSpeed    float64 `json:"referenceSpeed"`    // km/h
}

const (
	defaultArcSegments = 96

	// Offsets of annotations from the road, drawing units
	majorAxisDimensionRise = 50.0
	majorAxisLabelRise     = 60.0
	dimensionGutterOffset  = 30.0
	labelIndentX           = 10.0
	labelBaselineShift     = 3.0

	// uTurnSpeedRatio is the share of through speed kept by vehicles inside the canal
	uTurnSpeedRatio = 1.0 / 3.0

	// Base animation durations (seconds) at ReferenceSpeed
	baseThroughOuterSeconds      = 4.0
	baseThroughInnerSeconds      = 5.0
	baseThroughInnerDelaySeconds = 1.0
	baseUTurnSeconds             = 14.0
)

// DefaultEngineeringConstants returns 64m major axis, 20m taper and opening, 8px per meter
func DefaultEngineeringConstants() EngineeringConstants {
	return EngineeringConstants{
		MajorAxis:         64.0,
		MinorAxis:         28.0,
		EntryTaper:        20.0,
		MedianOpening:     20.0,
		PixelsPerMeter:    8.0,
		PaddingY:          120.0,
		StartX:            100.0,
		ApproachX:         -100.0,
		RoadLength:        1100.0,
		AnnotationGutter:  80.0,
		BufferThickness:   4.0,
		MinVerticalRadius: 0.5,
		ReferenceSpeed:    60.0,
	}
}
