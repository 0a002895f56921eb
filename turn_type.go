package utern

import (
	"fmt"
	"strings"
)

// TurnType is the U-turn design variant. It changes labels only, never geometry.
type TurnType uint16

const (
	TURN_GRADE_SEPARATED = TurnType(iota + 1)
	TURN_AT_GRADE_MEDIAN_POCKET
	TURN_FLARED_MEDIAN

	TURN_UNDEFINED = TurnType(0)
)

func (iotaIdx TurnType) String() string {
	if iotaIdx > TURN_FLARED_MEDIAN {
		return "undefined"
	}
	return [...]string{"undefined", "Grade Separated (Flyover)", "At-Grade Median Pocket", "Flared Median U-Turn"}[iotaIdx]
}

// Key returns short machine-readable name of turn type
func (iotaIdx TurnType) Key() string {
	if iotaIdx > TURN_FLARED_MEDIAN {
		return "undefined"
	}
	return [...]string{"undefined", "grade_separated", "median_pocket", "flared_median"}[iotaIdx]
}

var (
	turnTypeByKey = map[string]TurnType{
		"grade_separated": TURN_GRADE_SEPARATED,
		"median_pocket":   TURN_AT_GRADE_MEDIAN_POCKET,
		"flared_median":   TURN_FLARED_MEDIAN,
	}
)

// ParseTurnType accepts either the key ("median_pocket") or the full label ("At-Grade Median Pocket")
func ParseTurnType(s string) (TurnType, error) {
	if tt, ok := turnTypeByKey[strings.ToLower(strings.TrimSpace(s))]; ok {
		return tt, nil
	}
	for _, tt := range []TurnType{TURN_GRADE_SEPARATED, TURN_AT_GRADE_MEDIAN_POCKET, TURN_FLARED_MEDIAN} {
		if tt.String() == s {
			return tt, nil
		}
	}
	return TURN_UNDEFINED, fmt.Errorf("unknown turn type '%s'", s)
}

// MarshalText implements encoding.TextMarshaler
func (iotaIdx TurnType) MarshalText() ([]byte, error) {
	return []byte(iotaIdx.Key()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (iotaIdx *TurnType) UnmarshalText(text []byte) error {
	tt, err := ParseTurnType(string(text))
	if err != nil {
		return err
	}
	*iotaIdx = tt
	return nil
}
