package utern

import (
	"encoding/xml"
	"math"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

const (
	osmGenerator = "utern"
	osmVersion   = 0.6
)

// osmBuilder accumulates nodes and ways with negative IDs, as new objects in OSM editors are numbered
type osmBuilder struct {
	proj      localProjection
	data      *osm.OSM
	nodeIDs   map[orb.Point]osm.NodeID
	lastNode  osm.NodeID
	lastWayID osm.WayID
}

func (builder *osmBuilder) node(pt orb.Point) osm.NodeID {
	if id, ok := builder.nodeIDs[pt]; ok {
		return id
	}
	builder.lastNode--
	gp := builder.proj.toGeo(pt)
	builder.data.Nodes = append(builder.data.Nodes, &osm.Node{
		ID:      builder.lastNode,
		Lat:     gp.Lat,
		Lon:     gp.Lon,
		Visible: true,
		Version: 1,
	})
	builder.nodeIDs[pt] = builder.lastNode
	return builder.lastNode
}

func (builder *osmBuilder) way(line orb.LineString, tags osm.Tags) *osm.Way {
	builder.lastWayID--
	way := &osm.Way{
		ID:      builder.lastWayID,
		Visible: true,
		Version: 1,
		Nodes:   make(osm.WayNodes, 0, len(line)),
		Tags:    tags,
	}
	for _, pt := range line {
		way.Nodes = append(way.Nodes, osm.WayNode{ID: builder.node(pt)})
	}
	builder.data.Ways = append(builder.data.Ways, way)
	return way
}

func widthTag(meters float64) osm.Tag {
	return osm.Tag{Key: "width", Value: strconv.FormatFloat(math.Round(meters*100)/100, 'f', -1, 64)}
}

// ExportOSM returns layout as OSM data anchored at given origin (top-left corner of the road)
func (m *Model) ExportOSM(origin GeoPoint) (*osm.OSM, error) {
	if math.Abs(origin.Lat) >= 85 || math.Abs(origin.Lon) > 180 {
		return nil, errors.Errorf("origin %s is outside of Web Mercator bounds", origin)
	}
	builder := osmBuilder{
		proj:    newLocalProjection(origin, m.Constants.PixelsPerMeter),
		data:    &osm.OSM{Version: osmVersion, Generator: osmGenerator},
		nodeIDs: make(map[orb.Point]osm.NodeID),
	}
	scaler := Scaler{PixelsPerMeter: m.Constants.PixelsPerMeter}

	for _, c := range []Carriageway{CARRIAGEWAY_TOP, CARRIAGEWAY_BOTTOM} {
		for _, lane := range m.Lanes.Lanes(c) {
			// Top carriageway flows towards the turn, bottom one flows back
			centerline := orb.LineString{{lane.Band.Min[0], lane.CenterY}, {lane.Band.Max[0], lane.CenterY}}
			if c == CARRIAGEWAY_BOTTOM {
				centerline[0], centerline[1] = centerline[1], centerline[0]
			}
			turn := "through"
			if lane.ID == LANE_TURNING {
				turn = "through;reverse"
			}
			builder.way(centerline, osm.Tags{
				{Key: "highway", Value: "primary"},
				{Key: "oneway", Value: "yes"},
				{Key: "lanes", Value: "1"},
				{Key: "turn", Value: turn},
				widthTag(scaler.ToMeters(lane.Width)),
				{Key: "name", Value: lane.ID.String() + " " + lane.ID.Role()},
				{Key: "carriageway", Value: c.String()},
			})
		}
	}

	builder.way(m.TurnPolyline(), osm.Tags{
		{Key: "highway", Value: "primary_link"},
		{Key: "oneway", Value: "yes"},
		{Key: "turn", Value: "reverse"},
		widthTag(m.Config.L1Width),
		{Key: "name", Value: m.Config.TurnType.String()},
	})

	island := m.Island.Ring.Clone()
	builder.way(orb.LineString(island), osm.Tags{
		{Key: "area:highway", Value: "traffic_island"},
		{Key: "area", Value: "yes"},
	})
	for _, segment := range m.Median.Segments {
		builder.way(orb.LineString(segment.ToRing()), osm.Tags{
			{Key: "barrier", Value: "jersey_barrier"},
			{Key: "area", Value: "yes"},
			widthTag(m.Config.MedianWidth),
		})
	}
	for _, buffer := range m.Buffers {
		builder.way(orb.LineString(buffer.Bound.ToRing()), osm.Tags{
			{Key: "road_marking", Value: "solid_line"},
			{Key: "area", Value: "yes"},
			{Key: "carriageway", Value: buffer.Carriageway.String()},
		})
	}
	return builder.data, nil
}

// ExportOSMXML returns OSM XML document of the layout
func (m *Model) ExportOSMXML(origin GeoPoint) ([]byte, error) {
	data, err := m.ExportOSM(origin)
	if err != nil {
		return nil, err
	}
	b, err := xml.MarshalIndent(data, "", " ")
	if err != nil {
		return nil, errors.Wrap(err, "Can't marshal OSM data")
	}
	return append([]byte(xml.Header), b...), nil
}
