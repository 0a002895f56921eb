package utern

// LaneID identifies lane position counted from the median
type LaneID uint16

const (
	LANE_TURNING = LaneID(iota + 1)
	LANE_THROUGH_INNER
	LANE_THROUGH_OUTER

	LANE_UNDEFINED = LaneID(0)
)

func (iotaIdx LaneID) String() string {
	if iotaIdx > LANE_THROUGH_OUTER {
		return "undefined"
	}
	return [...]string{"undefined", "L1", "L2", "L3"}[iotaIdx]
}

// Role returns human readable purpose of the lane
func (iotaIdx LaneID) Role() string {
	if iotaIdx > LANE_THROUGH_OUTER {
		return "undefined"
	}
	return [...]string{"undefined", "U-TURN", "EXPRESS", "EXPRESS"}[iotaIdx]
}

// Carriageway is one travel direction of the divided road
type Carriageway uint16

const (
	CARRIAGEWAY_TOP = Carriageway(iota + 1)
	CARRIAGEWAY_BOTTOM

	CARRIAGEWAY_UNDEFINED = Carriageway(0)
)

func (iotaIdx Carriageway) String() string {
	if iotaIdx > CARRIAGEWAY_BOTTOM {
		return "undefined"
	}
	return [...]string{"undefined", "top", "bottom"}[iotaIdx]
}

// Opposite returns carriageway of reverse direction
func (iotaIdx Carriageway) Opposite() Carriageway {
	switch iotaIdx {
	case CARRIAGEWAY_TOP:
		return CARRIAGEWAY_BOTTOM
	case CARRIAGEWAY_BOTTOM:
		return CARRIAGEWAY_TOP
	default:
		return CARRIAGEWAY_UNDEFINED
	}
}
