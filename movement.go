package utern

import (
	"math"
	"time"

	"github.com/LdDl/ch"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
)

type MovementID int

// Movement is a single drivable piece of the layout between two vertices of the movement network
type Movement struct {
	ID   MovementID
	Type MovementType
	From Carriageway
	To   Carriageway
	Lane LaneID
	Geom orb.LineString
	// LengthMeters is length of Geom in meters
	LengthMeters float64
	// Cost is travel time at the movement's design speed
	Cost time.Duration

	source int64
	target int64
}

type MovementType uint16

const (
	MOVEMENT_THRU = MovementType(iota + 1)
	MOVEMENT_RIGHT
	MOVEMENT_LEFT
	MOVEMENT_U_TURN

	MOVEMENT_UNDEFINED = MovementType(0)
)

func (iotaIdx MovementType) String() string {
	return [...]string{"undefined", "thru", "right", "left", "uturn"}[iotaIdx]
}

// Terminal is an end of a carriageway where vehicles enter or leave the layout
type Terminal uint16

const (
	TERMINAL_TOP_ENTRY = Terminal(iota + 1)
	TERMINAL_TOP_EXIT
	TERMINAL_BOTTOM_ENTRY
	TERMINAL_BOTTOM_EXIT

	TERMINAL_UNDEFINED = Terminal(0)
)

func (iotaIdx Terminal) String() string {
	return [...]string{"undefined", "top_entry", "top_exit", "bottom_entry", "bottom_exit"}[iotaIdx]
}

// Vertices of the movement graph. Terminals share labels with Terminal values
const (
	vertexTopTaper = int64(TERMINAL_BOTTOM_EXIT) + 1 + iota
	vertexBottomTaper
)

// movementTypeBetweenLines classifies turn from incoming line to outgoing line by heading change.
// Drawing y grows downward, so ordinates are flipped before measuring angles.
//
// Note: panics if number of points in any line is less than 2
//
func movementTypeBetweenLines(l1 orb.LineString, l2 orb.LineString) MovementType {
	startL1, endL1 := l1[0], l1[len(l1)-1]
	startL2, endL2 := l2[0], l2[len(l2)-1]

	angle1 := math.Atan2(-(endL1.Y() - startL1.Y()), endL1.X()-startL1.X())
	angle2 := math.Atan2(-(endL2.Y() - startL2.Y()), endL2.X()-startL2.X())

	angleDiff := angle2 - angle1
	if angleDiff < -1*math.Pi {
		angleDiff += 2 * math.Pi
	}
	if angleDiff > math.Pi {
		angleDiff -= 2 * math.Pi
	}

	switch {
	case -0.25*math.Pi <= angleDiff && angleDiff <= 0.25*math.Pi:
		return MOVEMENT_THRU
	case angleDiff < -0.75*math.Pi || angleDiff > 0.75*math.Pi:
		return MOVEMENT_U_TURN
	case angleDiff < -0.25*math.Pi:
		return MOVEMENT_RIGHT
	default:
		return MOVEMENT_LEFT
	}
}

// MovementNetwork is a contraction hierarchies graph of the layout's turning lane movements.
// Edge weights are travel times in seconds
type MovementNetwork struct {
	movements []Movement
	byEdge    map[[2]int64]MovementID
	graph     ch.Graph
}

// travelSeconds returns seconds needed to cover given meters at given speed in km/h
func travelSeconds(meters, speedKmh float64) float64 {
	return meters / (speedKmh / 3.6)
}

// NewMovementNetwork builds movement graph for the turning lanes of a model.
// Through traffic keeps configured speed, U-turning vehicles slow down to a third of it
func NewMovementNetwork(m *Model) (*MovementNetwork, error) {
	if m == nil {
		return nil, errors.Errorf("nil model")
	}
	if m.Config.TrafficSpeed <= 0 {
		return nil, invalidConfiguration("traffic speed must be positive, got %f", m.Config.TrafficSpeed)
	}
	topY, bottomY := m.Lanes.TurningCenterlines()
	roadEnd := m.Lanes.RoadLength
	taperX := m.TurnPath.TaperX
	topTaper := m.TurnPath.Arc.From
	bottomTaper := m.TurnPath.Arc.To

	net := &MovementNetwork{
		byEdge: make(map[[2]int64]MovementID),
		graph:  ch.Graph{},
	}
	uTurnSpeed := m.Config.TrafficSpeed * uTurnSpeedRatio
	ppm := m.Constants.PixelsPerMeter
	add := func(source, target int64, movementType MovementType, from, to Carriageway, geom orb.LineString, speed float64) {
		meters := planar.Length(geom) / ppm
		seconds := travelSeconds(meters, speed)
		net.movements = append(net.movements, Movement{
			ID:           MovementID(len(net.movements)),
			Type:         movementType,
			From:         from,
			To:           to,
			Lane:         LANE_TURNING,
			Geom:         geom,
			LengthMeters: meters,
			Cost:         time.Duration(seconds * float64(time.Second)),
			source:       source,
			target:       target,
		})
	}

	if taperX <= 0 || taperX >= roadEnd {
		return nil, invalidConfiguration("taper end %f is outside of the road [0, %f]", taperX, roadEnd)
	}

	topIn := orb.LineString{{0, topY}, topTaper}
	topOut := orb.LineString{topTaper, {roadEnd, topY}}
	bottomIn := orb.LineString{{roadEnd, bottomY}, bottomTaper}
	bottomOut := orb.LineString{bottomTaper, {0, bottomY}}

	add(int64(TERMINAL_TOP_ENTRY), vertexTopTaper, movementTypeBetweenLines(topIn, topOut), CARRIAGEWAY_TOP, CARRIAGEWAY_TOP, topIn, m.Config.TrafficSpeed)
	add(vertexTopTaper, int64(TERMINAL_TOP_EXIT), MOVEMENT_THRU, CARRIAGEWAY_TOP, CARRIAGEWAY_TOP, topOut, m.Config.TrafficSpeed)
	add(int64(TERMINAL_BOTTOM_ENTRY), vertexBottomTaper, movementTypeBetweenLines(bottomIn, bottomOut), CARRIAGEWAY_BOTTOM, CARRIAGEWAY_BOTTOM, bottomIn, m.Config.TrafficSpeed)
	add(vertexBottomTaper, int64(TERMINAL_BOTTOM_EXIT), MOVEMENT_THRU, CARRIAGEWAY_BOTTOM, CARRIAGEWAY_BOTTOM, bottomOut, m.Config.TrafficSpeed)
	add(vertexTopTaper, vertexBottomTaper, movementTypeBetweenLines(topIn, bottomOut), CARRIAGEWAY_TOP, CARRIAGEWAY_TOP.Opposite(), m.TurnPath.Arc.Points(m.ArcSegments), uTurnSpeed)

	for _, mvmt := range net.movements {
		err := net.graph.CreateVertex(mvmt.source)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't add source vertex with label = %d", mvmt.source)
		}
		err = net.graph.CreateVertex(mvmt.target)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't add target vertex with label = %d", mvmt.target)
		}
		err = net.graph.AddEdge(mvmt.source, mvmt.target, mvmt.Cost.Seconds())
		if err != nil {
			return nil, errors.Wrapf(err, "Can't add edge: from_vertex_id = %d | to_vertex_id = %d", mvmt.source, mvmt.target)
		}
		net.byEdge[[2]int64{mvmt.source, mvmt.target}] = mvmt.ID
	}
	net.graph.PrepareContractionHierarchies()
	return net, nil
}

// Movements returns all movements of the network
func (net *MovementNetwork) Movements() []Movement {
	return net.movements
}

// Movement returns movement by its identifier
func (net *MovementNetwork) Movement(id MovementID) (Movement, bool) {
	if id < 0 || int(id) >= len(net.movements) {
		return Movement{}, false
	}
	return net.movements[id], true
}

// TravelTime returns fastest travel time between two terminals and the movements on the way
func (net *MovementNetwork) TravelTime(from, to Terminal) (time.Duration, []MovementID, error) {
	if from == TERMINAL_UNDEFINED || to == TERMINAL_UNDEFINED || from > TERMINAL_BOTTOM_EXIT || to > TERMINAL_BOTTOM_EXIT {
		return 0, nil, errors.Errorf("unknown terminal pair %d -> %d", from, to)
	}
	if from == to {
		return 0, nil, nil
	}
	cost, path := net.graph.ShortestPath(int64(from), int64(to))
	if cost < 0 || len(path) < 2 {
		return 0, nil, errors.Errorf("no route from %s to %s", from, to)
	}
	movements := make([]MovementID, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		id, ok := net.byEdge[[2]int64{path[i-1], path[i]}]
		if !ok {
			return 0, nil, errors.Errorf("no movement between vertices %d and %d", path[i-1], path[i])
		}
		movements = append(movements, id)
	}
	return time.Duration(cost * float64(time.Second)), movements, nil
}
