package utern

import (
	"testing"
	"time"
)

func TestAnimationTiming(t *testing.T) {
	timing := computeAnimationTiming(60, 60)
	if timing.SpeedFactor != 1 {
		t.Errorf("Speed factor must be 1, but got %f", timing.SpeedFactor)
	}
	if timing.UTurn != 14*time.Second || timing.ThroughOuter != 4*time.Second || timing.ThroughInner != 5*time.Second || timing.ThroughInnerDelay != time.Second {
		t.Errorf("Base durations are wrong: %+v", timing)
	}
	doubled := computeAnimationTiming(120, 60)
	if doubled.SpeedFactor != 0.5 {
		t.Errorf("Speed factor must be 0.5, but got %f", doubled.SpeedFactor)
	}
	if doubled.UTurn != 7*time.Second {
		t.Errorf("U-turn must take 7s, but got %v", doubled.UTurn)
	}
}

func TestFormatMeters(t *testing.T) {
	cases := map[float64]string{7: "7m", 3.5: "3.5m", 64: "64m", 0.25: "0.25m"}
	for v, correct := range cases {
		if s := formatMeters(v); s != correct {
			t.Errorf("%f must be printed as '%s', but got '%s'", v, correct, s)
		}
	}
}

func TestAnnotations(t *testing.T) {
	_, layout, path, _ := defaultTurnPath(t)
	cfg := DefaultConfiguration()
	consts := DefaultEngineeringConstants()
	ann := computeAnnotations(cfg, consts, layout, path)

	correctLabels := []string{"L1 7m", "L2 3.5m", "L3 3.5m", "MEDIAN 2m", "64m MAJOR AXIS CORRIDOR"}
	if len(ann.Dimensions) != len(correctLabels) {
		t.Errorf("Must be %d dimensions, but got %d", len(correctLabels), len(ann.Dimensions))
		return
	}
	for i, dim := range ann.Dimensions {
		if dim.Label != correctLabels[i] {
			t.Errorf("Dimension #%d must be '%s', but got '%s'", i, correctLabels[i], dim.Label)
		}
	}
	// Vertical dimensions sit in the gutter right of the road
	for _, dim := range ann.Dimensions[:4] {
		if dim.From[0] <= layout.RoadLength || dim.From[0] != dim.To[0] {
			t.Errorf("Dimension '%s' must be a vertical line outside the road", dim.Label)
		}
	}
	if ann.Dimensions[0].From[1] != 176 || ann.Dimensions[0].To[1] != 232 {
		t.Errorf("L1 dimension must span [176, 232], but got %v - %v", ann.Dimensions[0].From, ann.Dimensions[0].To)
	}
	axis := ann.Dimensions[4]
	if axis.From[1] >= layout.TopRoadY || axis.To[0]-axis.From[0] != 512 {
		t.Errorf("Major axis must be 512 units above the road, but got %v - %v", axis.From, axis.To)
	}
	if axis.From[0] < 0 {
		t.Errorf("Major axis must stay on canvas, starts at %f", axis.From[0])
	}
	if axis.From[0] != path.TaperX || axis.To[0] != path.TaperX+2*path.Arc.RX {
		t.Errorf("Major axis must span the turn corridor from the taper end, but got %v - %v", axis.From, axis.To)
	}
	at := ann.MajorAxisLabelAt()
	if at[0] != path.Arc.Center[0]+path.Arc.RX {
		t.Errorf("Major axis label must sit above the arc tip, but got %v", at)
	}
	if at[1] >= axis.From[1] {
		t.Errorf("Major axis label must be above its line")
	}

	if ann.Title != "At-Grade Median Pocket | 64m x 28m ellipse" {
		t.Errorf("Unexpected title '%s'", ann.Title)
	}
	correctTexts := []string{"L3 EXPRESS (3.5m)", "L2 EXPRESS (3.5m)", "L1 U-TURN (7m)", "L1 EXIT (7m)", "L2 EXPRESS (3.5m)", "L3 EXPRESS (3.5m)"}
	for i, label := range ann.Labels {
		if label.Text != correctTexts[i] {
			t.Errorf("Label #%d must be '%s', but got '%s'", i, correctTexts[i], label.Text)
		}
		if label.Turning != (i == 2 || i == 3) {
			t.Errorf("Label #%d has wrong turning flag", i)
		}
	}
}

func TestTurnTypeChangesLabelsOnly(t *testing.T) {
	_, layout, path, _ := defaultTurnPath(t)
	consts := DefaultEngineeringConstants()
	cfg := DefaultConfiguration()
	cfg.TurnType = TURN_GRADE_SEPARATED
	ann := computeAnnotations(cfg, consts, layout, path)
	if ann.Title != "Grade Separated (Flyover) | 64m x 28m ellipse" {
		t.Errorf("Unexpected title '%s'", ann.Title)
	}
	base := computeAnnotations(DefaultConfiguration(), consts, layout, path)
	for i := range ann.Dimensions {
		if ann.Dimensions[i] != base.Dimensions[i] {
			t.Errorf("Dimension #%d must not depend on turn type", i)
		}
	}
}
