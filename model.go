package utern

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

var (
	modelNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/sanjeevaacham/Utern/model"))
)

// Model is the complete layout derived from a single configuration.
// It is produced wholesale; the engine never touches it after returning.
type Model struct {
	// ID is derived from configuration, constants and arc resolution only: equal inputs give equal IDs
	ID          uuid.UUID
	Config      Configuration
	Constants   EngineeringConstants
	ArcSegments int

	Lanes       LaneLayout
	TurnPath    TurnPath
	Island      IslandBoundary
	Median      MedianLayout
	Buffers     [2]BufferBand
	Annotations Annotations

	// Canvas size in drawing units
	Width  float64
	Height float64
}

// modelKey is the value identity of a computation
type modelKey struct {
	Config      Configuration        `json:"config"`
	Constants   EngineeringConstants `json:"constants"`
	ArcSegments int                  `json:"arcSegments"`
}

func (key modelKey) uuid() (uuid.UUID, error) {
	b, err := json.Marshal(key)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "Can't marshal model key")
	}
	return uuid.NewSHA1(modelNamespace, b), nil
}

// CarriagewayWidth returns carriageway width in drawing units
func (m *Model) CarriagewayWidth() float64 {
	return m.Lanes.CarriagewayWidth
}

// CarriagewayWidthMeters returns carriageway width in meters
func (m *Model) CarriagewayWidthMeters() float64 {
	return Scaler{PixelsPerMeter: m.Constants.PixelsPerMeter}.ToMeters(m.Lanes.CarriagewayWidth)
}

// SpeedFactor returns animation pacing factor
func (m *Model) SpeedFactor() float64 {
	return m.Annotations.Timing.SpeedFactor
}

// TurnPolyline returns sampled turn path using model's arc resolution
func (m *Model) TurnPolyline() orb.LineString {
	return m.TurnPath.Polyline(m.ArcSegments)
}

// Clone returns deep copy of the model
func (m *Model) Clone() *Model {
	cp := *m
	cp.Island.Inner = m.Island.Inner.Clone()
	cp.Island.Ring = m.Island.Ring.Clone()
	cp.Annotations.Dimensions = append([]Dimension(nil), m.Annotations.Dimensions...)
	cp.Annotations.Labels = append([]LaneLabel(nil), m.Annotations.Labels...)
	return &cp
}
