package utern

import (
	"encoding/json"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// LayoutView is the JSON shape handed to a browser renderer
type LayoutView struct {
	ID               uuid.UUID     `json:"id"`
	Config           Configuration `json:"config"`
	Width            float64       `json:"width"`
	Height           float64       `json:"height"`
	CarriagewayWidth float64       `json:"carriagewayWidth"`
	SpeedFactor      float64       `json:"speedFactor"`
	TurnPath         string        `json:"turnPath"`
	Island           string        `json:"island"`
	Title            string        `json:"title"`
	Dimensions       []Dimension   `json:"dimensions"`
	Labels           []LaneLabel   `json:"labels"`
	// Durations in milliseconds
	Timing map[string]int64 `json:"timing"`
	SVG    string           `json:"svg"`
}

// View returns JSON friendly projection of the model
func (m *Model) View() LayoutView {
	timing := m.Annotations.Timing
	return LayoutView{
		ID:               m.ID,
		Config:           m.Config,
		Width:            m.Width,
		Height:           m.Height,
		CarriagewayWidth: m.CarriagewayWidth(),
		SpeedFactor:      m.SpeedFactor(),
		TurnPath:         m.TurnPath.SVGPath(),
		Island:           SVGPathFromRing(m.Island.Ring),
		Title:            m.Annotations.Title,
		Dimensions:       m.Annotations.Dimensions,
		Labels:           m.Annotations.Labels,
		Timing: map[string]int64{
			"throughOuter":      timing.ThroughOuter.Milliseconds(),
			"throughInner":      timing.ThroughInner.Milliseconds(),
			"throughInnerDelay": timing.ThroughInnerDelay.Milliseconds(),
			"uTurn":             timing.UTurn.Milliseconds(),
		},
		SVG: RenderSVG(m),
	}
}

// ParseConfiguration reads configuration JSON on top of DefaultConfiguration, so omitted fields keep defaults
func ParseConfiguration(data []byte) (Configuration, error) {
	cfg := DefaultConfiguration()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Configuration{}, errors.Wrap(err, "Can't parse configuration")
	}
	return cfg, nil
}

// LoadConfiguration reads configuration from JSON file
func LoadConfiguration(fname string) (Configuration, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return Configuration{}, errors.Wrap(err, "Can't read configuration file")
	}
	return ParseConfiguration(data)
}

// ComputeJSON takes configuration JSON and returns layout view JSON
func ComputeJSON(jsonInput string, options ...func(*Engine)) (string, error) {
	cfg, err := ParseConfiguration([]byte(jsonInput))
	if err != nil {
		return "", err
	}
	model, err := Compute(cfg, options...)
	if err != nil {
		return "", err
	}
	out, err := json.Marshal(model.View())
	if err != nil {
		return "", errors.Wrap(err, "Can't marshal layout")
	}
	return string(out), nil
}
