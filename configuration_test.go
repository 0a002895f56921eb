package utern

import (
	"encoding/json"
	"math"
	"testing"
)

func TestDefaultConfigurationIsValid(t *testing.T) {
	cfg := DefaultConfiguration()
	if err := cfg.Validate(DefaultEngineeringConstants()); err != nil {
		t.Errorf("Default configuration must be valid, but got %s", err)
	}
}

func TestValidateRejects(t *testing.T) {
	consts := DefaultEngineeringConstants()
	cases := []struct {
		name   string
		modify func(*Configuration)
	}{
		{"zero l1", func(cfg *Configuration) { cfg.L1Width = 0 }},
		{"negative l2", func(cfg *Configuration) { cfg.L2Width = -3.5 }},
		{"zero l3", func(cfg *Configuration) { cfg.L3Width = 0 }},
		{"zero median", func(cfg *Configuration) { cfg.MedianWidth = 0 }},
		{"zero speed", func(cfg *Configuration) { cfg.TrafficSpeed = 0 }},
		{"NaN speed", func(cfg *Configuration) { cfg.TrafficSpeed = math.NaN() }},
		{"infinite l1", func(cfg *Configuration) { cfg.L1Width = math.Inf(1) }},
		{"undefined turn type", func(cfg *Configuration) { cfg.TurnType = TURN_UNDEFINED }},
		{"unknown turn type", func(cfg *Configuration) { cfg.TurnType = TurnType(42) }},
		{"l1 equals major axis", func(cfg *Configuration) { cfg.L1Width = 64 }},
		{"l1 exceeds major axis", func(cfg *Configuration) { cfg.L1Width = 70 }},
		{"l1 reaches horizontal radius", func(cfg *Configuration) { cfg.L1Width = 32 }},
		{"vertical radius collapses", func(cfg *Configuration) { cfg.L1Width, cfg.MedianWidth = 0.3, 0.3 }},
		{"l2 hidden by buffer", func(cfg *Configuration) { cfg.L2Width = 1 }},
	}
	for _, c := range cases {
		cfg := DefaultConfiguration()
		c.modify(&cfg)
		err := cfg.Validate(consts)
		if err == nil {
			t.Errorf("Case '%s': configuration must be rejected", c.name)
			continue
		}
		if !IsInvalidConfiguration(err) {
			t.Errorf("Case '%s': error must be caused by ErrInvalidConfiguration, but got %s", c.name, err)
		}
	}
}

func TestValidateRejectsWideOpening(t *testing.T) {
	consts := DefaultEngineeringConstants()
	consts.MedianOpening = consts.MajorAxis
	err := DefaultConfiguration().Validate(consts)
	if !IsInvalidConfiguration(err) {
		t.Errorf("Opening as wide as the corridor must be rejected, but got %v", err)
	}
}

func TestValidateConstants(t *testing.T) {
	consts := DefaultEngineeringConstants()
	if err := validateConstants(consts); err != nil {
		t.Errorf("Default constants must be valid, but got %s", err)
	}
	consts.PixelsPerMeter = 0
	if err := validateConstants(consts); !IsInvalidConfiguration(err) {
		t.Errorf("Zero scale must be rejected, but got %v", err)
	}
	consts = DefaultEngineeringConstants()
	consts.ReferenceSpeed = -1
	if err := validateConstants(consts); !IsInvalidConfiguration(err) {
		t.Errorf("Negative reference speed must be rejected, but got %v", err)
	}
}

func TestParseTurnType(t *testing.T) {
	cases := map[string]TurnType{
		"grade_separated":           TURN_GRADE_SEPARATED,
		"median_pocket":             TURN_AT_GRADE_MEDIAN_POCKET,
		" Flared_Median ":           TURN_FLARED_MEDIAN,
		"Grade Separated (Flyover)": TURN_GRADE_SEPARATED,
		"At-Grade Median Pocket":    TURN_AT_GRADE_MEDIAN_POCKET,
		"Flared Median U-Turn":      TURN_FLARED_MEDIAN,
	}
	for s, correct := range cases {
		tt, err := ParseTurnType(s)
		if err != nil {
			t.Error(err)
			continue
		}
		if tt != correct {
			t.Errorf("Turn type for '%s' must be %s, but got %s", s, correct, tt)
		}
	}
	if _, err := ParseTurnType("roundabout"); err == nil {
		t.Errorf("Unknown turn type must be rejected")
	}
}

func TestConfigurationJSON(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.TurnType = TURN_FLARED_MEDIAN
	b, err := json.Marshal(cfg)
	if err != nil {
		t.Error(err)
		return
	}
	correct := `{"l1Width":7,"l2Width":3.5,"l3Width":3.5,"medianWidth":2,"trafficSpeed":60,"uTurnType":"flared_median"}`
	if string(b) != correct {
		t.Errorf("Configuration JSON must be '%s', but got '%s'", correct, string(b))
	}
}
