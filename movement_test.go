package utern

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovementTypeBetweenLines(t *testing.T) {
	east := orb.LineString{{0, 0}, {10, 0}}
	cases := []struct {
		next    orb.LineString
		correct MovementType
	}{
		{orb.LineString{{10, 0}, {20, 1}}, MOVEMENT_THRU},
		{orb.LineString{{10, 0}, {0, 1}}, MOVEMENT_U_TURN},
		// y grows downward, so going down on screen is a right turn for eastbound traffic
		{orb.LineString{{10, 0}, {10, 10}}, MOVEMENT_RIGHT},
		{orb.LineString{{10, 0}, {10, -10}}, MOVEMENT_LEFT},
	}
	for i, c := range cases {
		assert.Equal(t, c.correct, movementTypeBetweenLines(east, c.next), "case #%d", i)
	}
}

func TestMovementNetwork(t *testing.T) {
	model := defaultModel(t)
	net, err := NewMovementNetwork(model)
	require.NoError(t, err)

	movements := net.Movements()
	require.Len(t, movements, 5)
	types := map[MovementType]int{}
	for _, mvmt := range movements {
		types[mvmt.Type]++
		assert.Equal(t, LANE_TURNING, mvmt.Lane)
		assert.Greater(t, mvmt.LengthMeters, 0.0)
	}
	assert.Equal(t, map[MovementType]int{MOVEMENT_THRU: 4, MOVEMENT_U_TURN: 1}, types)

	uTurn, ok := net.Movement(4)
	require.True(t, ok)
	assert.Equal(t, MOVEMENT_U_TURN, uTurn.Type)
	assert.Equal(t, CARRIAGEWAY_TOP, uTurn.From)
	assert.Equal(t, CARRIAGEWAY_BOTTOM, uTurn.To)
	assert.Equal(t, uTurn.From.Opposite(), uTurn.To)
	_, ok = net.Movement(5)
	assert.False(t, ok)

	// 137.5m at 60 km/h
	through, path, err := net.TravelTime(TERMINAL_TOP_ENTRY, TERMINAL_TOP_EXIT)
	require.NoError(t, err)
	assert.InDelta(t, 8.25, through.Seconds(), 1e-6)
	assert.Equal(t, []MovementID{0, 1}, path)

	turn, path, err := net.TravelTime(TERMINAL_TOP_ENTRY, TERMINAL_BOTTOM_EXIT)
	require.NoError(t, err)
	assert.Equal(t, []MovementID{0, 4, 3}, path)
	expected := movements[0].Cost + movements[4].Cost + movements[3].Cost
	assert.InDelta(t, expected.Seconds(), turn.Seconds(), 1e-6)

	// U-turning vehicles keep a third of through speed
	throughPace := movements[0].Cost.Seconds() / movements[0].LengthMeters
	turnPace := uTurn.Cost.Seconds() / uTurn.LengthMeters
	assert.InDelta(t, 3.0, turnPace/throughPace, 1e-6)
}

func TestMovementNetworkNoRoute(t *testing.T) {
	net, err := NewMovementNetwork(defaultModel(t))
	require.NoError(t, err)

	_, _, err = net.TravelTime(TERMINAL_BOTTOM_ENTRY, TERMINAL_TOP_EXIT)
	assert.Error(t, err)
	_, _, err = net.TravelTime(TERMINAL_UNDEFINED, TERMINAL_TOP_EXIT)
	assert.Error(t, err)

	d, path, err := net.TravelTime(TERMINAL_TOP_ENTRY, TERMINAL_TOP_ENTRY)
	assert.NoError(t, err)
	assert.Equal(t, time.Duration(0), d)
	assert.Empty(t, path)
}

func TestMovementNetworkFollowsSpeed(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.TrafficSpeed = 120
	model, err := Compute(cfg)
	require.NoError(t, err)
	net, err := NewMovementNetwork(model)
	require.NoError(t, err)
	through, _, err := net.TravelTime(TERMINAL_TOP_ENTRY, TERMINAL_TOP_EXIT)
	require.NoError(t, err)
	assert.InDelta(t, 4.125, through.Seconds(), 1e-6)
}

func TestMovementNetworkExportToCSV(t *testing.T) {
	net, err := NewMovementNetwork(defaultModel(t))
	require.NoError(t, err)
	fname := filepath.Join(t.TempDir(), "movements.csv")
	require.NoError(t, net.ExportToCSV(fname, "wkt"))
	records := readCSV(t, fname)
	require.Len(t, records, 6)
	assert.Equal(t, "uturn", records[5][4])
	assert.Equal(t, "top", records[5][5])
	assert.Equal(t, "bottom", records[5][6])
}
