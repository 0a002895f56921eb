package utern

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// PrepareWKTLinestring returns WKT representation of LineString
func PrepareWKTLinestring(line orb.LineString) string {
	return wkt.MarshalString(line)
}

// PrepareWKTPolygon returns WKT representation of closed ring
func PrepareWKTPolygon(ring orb.Ring) string {
	return wkt.MarshalString(orb.Polygon{ring})
}

// PrepareWKTPoint returns WKT representation of Point
func PrepareWKTPoint(pt orb.Point) string {
	return wkt.MarshalString(pt)
}

// ExportWKT returns WKT of main layout parts keyed by name
func (m *Model) ExportWKT() map[string]string {
	out := map[string]string{
		"turn_path":      PrepareWKTLinestring(m.TurnPolyline()),
		"island":         PrepareWKTPolygon(m.Island.Ring),
		"median_opening": PrepareWKTPolygon(m.Median.Opening.ToRing()),
		"median_before":  PrepareWKTPolygon(m.Median.Segments[0].ToRing()),
		"median_after":   PrepareWKTPolygon(m.Median.Segments[1].ToRing()),
	}
	for _, buffer := range m.Buffers {
		out["buffer_"+buffer.Carriageway.String()] = PrepareWKTPolygon(buffer.Bound.ToRing())
	}
	for _, c := range []Carriageway{CARRIAGEWAY_TOP, CARRIAGEWAY_BOTTOM} {
		for _, lane := range m.Lanes.Lanes(c) {
			out["lane_"+c.String()+"_"+lane.ID.String()] = PrepareWKTLinestring(orb.LineString{
				{lane.Band.Min[0], lane.CenterY},
				{lane.Band.Max[0], lane.CenterY},
			})
		}
	}
	return out
}
