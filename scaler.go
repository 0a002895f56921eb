package utern

// Scaler converts real-world meters to drawing units
type Scaler struct {
	PixelsPerMeter float64
}

// ScaledInput holds every meter-denominated value of a configuration and the constant set in drawing units
type ScaledInput struct {
	L1Width     float64
	L2Width     float64
	L3Width     float64
	MedianWidth float64

	MajorAxis     float64
	EntryTaper    float64
	MedianOpening float64

	PaddingY         float64
	StartX           float64
	ApproachX        float64
	RoadLength       float64
	AnnotationGutter float64
	BufferThickness  float64
}

// ToDrawing returns drawing units for given meters
func (s Scaler) ToDrawing(meters float64) float64 {
	return meters * s.PixelsPerMeter
}

// ToMeters returns meters for given drawing units
func (s Scaler) ToMeters(units float64) float64 {
	return units / s.PixelsPerMeter
}

// Scale converts configuration and constants to drawing units
func (s Scaler) Scale(cfg Configuration, consts EngineeringConstants) ScaledInput {
	return ScaledInput{
		L1Width:          s.ToDrawing(cfg.L1Width),
		L2Width:          s.ToDrawing(cfg.L2Width),
		L3Width:          s.ToDrawing(cfg.L3Width),
		MedianWidth:      s.ToDrawing(cfg.MedianWidth),
		MajorAxis:        s.ToDrawing(consts.MajorAxis),
		EntryTaper:       s.ToDrawing(consts.EntryTaper),
		MedianOpening:    s.ToDrawing(consts.MedianOpening),
		PaddingY:         consts.PaddingY,
		StartX:           consts.StartX,
		ApproachX:        consts.ApproachX,
		RoadLength:       consts.RoadLength,
		AnnotationGutter: consts.AnnotationGutter,
		BufferThickness:  consts.BufferThickness,
	}
}

// CarriagewayWidth returns total width of three lanes
func (in ScaledInput) CarriagewayWidth() float64 {
	return in.L1Width + in.L2Width + in.L3Width
}
