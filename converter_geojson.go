package utern

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

func lineToCoordinates(line orb.LineString) [][]float64 {
	pts2d := make([][]float64, len(line))
	for i := range line {
		pts2d[i] = []float64{line[i][0], line[i][1]}
	}
	return pts2d
}

func boundToPolygon(b orb.Bound) [][][]float64 {
	return [][][]float64{lineToCoordinates(orb.LineString(b.ToRing()))}
}

// PrepareGeoJSONLinestring returns GeoJSON representation of LineString
func PrepareGeoJSONLinestring(line orb.LineString) string {
	b, err := geojson.NewLineStringGeometry(lineToCoordinates(line)).MarshalJSON()
	if err != nil {
		fmt.Printf("Warning. Can not convert geometry to geojson format: %s", err.Error())
		return ""
	}
	return string(b)
}

// PrepareGeoJSONPoint returns GeoJSON representation of Point
func PrepareGeoJSONPoint(pt orb.Point) string {
	b, err := geojson.NewPointGeometry([]float64{pt[0], pt[1]}).MarshalJSON()
	if err != nil {
		fmt.Printf("Warning. Can not convert geometry to geojson format: %s", err.Error())
		return ""
	}
	return string(b)
}

// GeoJSONFeatures returns layout as a feature collection in drawing units.
// Every feature carries "kind" property: lane, buffer, median, opening, turn_path, island, dimension
func (m *Model) GeoJSONFeatures() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, c := range []Carriageway{CARRIAGEWAY_TOP, CARRIAGEWAY_BOTTOM} {
		for _, lane := range m.Lanes.Lanes(c) {
			f := geojson.NewPolygonFeature(boundToPolygon(lane.Band))
			f.SetProperty("kind", "lane")
			f.SetProperty("lane", lane.ID.String())
			f.SetProperty("carriageway", c.String())
			f.SetProperty("center_y", lane.CenterY)
			f.SetProperty("median_offset", lane.MedianOffset)
			f.SetProperty("width", lane.Width)
			fc.AddFeature(f)
		}
	}
	for _, buffer := range m.Buffers {
		f := geojson.NewPolygonFeature(boundToPolygon(buffer.Bound))
		f.SetProperty("kind", "buffer")
		f.SetProperty("carriageway", buffer.Carriageway.String())
		fc.AddFeature(f)
	}
	for i, segment := range m.Median.Segments {
		f := geojson.NewPolygonFeature(boundToPolygon(segment))
		f.SetProperty("kind", "median")
		f.SetProperty("segment", i)
		fc.AddFeature(f)
	}
	opening := geojson.NewPolygonFeature(boundToPolygon(m.Median.Opening))
	opening.SetProperty("kind", "opening")
	fc.AddFeature(opening)

	path := geojson.NewLineStringFeature(lineToCoordinates(m.TurnPolyline()))
	path.SetProperty("kind", "turn_path")
	path.SetProperty("rx", m.TurnPath.Arc.RX)
	path.SetProperty("ry", m.TurnPath.Arc.RY)
	path.SetProperty("taper_x", m.TurnPath.TaperX)
	fc.AddFeature(path)

	island := geojson.NewPolygonFeature([][][]float64{lineToCoordinates(orb.LineString(m.Island.Ring))})
	island.SetProperty("kind", "island")
	island.SetProperty("area", m.Island.Area())
	fc.AddFeature(island)

	for _, dim := range m.Annotations.Dimensions {
		f := geojson.NewLineStringFeature(lineToCoordinates(orb.LineString{dim.From, dim.To}))
		f.SetProperty("kind", "dimension")
		f.SetProperty("label", dim.Label)
		fc.AddFeature(f)
	}
	return fc
}

// ExportGeoJSON returns serialized feature collection of the layout
func (m *Model) ExportGeoJSON() ([]byte, error) {
	b, err := m.GeoJSONFeatures().MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "Can't marshal layout to geojson")
	}
	return b, nil
}
