package utern

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/pkg/errors"
)

// ExportToCSV writes '<name>_lanes.csv' and '<name>_dimensions.csv' next to given file name
func (m *Model) ExportToCSV(fname string) error {

	fnameParts := strings.Split(fname, ".csv")
	fnameLanes := fnameParts[0] + "_lanes.csv"
	fnameDimensions := fnameParts[0] + "_dimensions.csv"

	err := m.exportLanesToCSV(fnameLanes)
	if err != nil {
		return errors.Wrap(err, "Can't export lanes")
	}

	err = m.exportDimensionsToCSV(fnameDimensions)
	if err != nil {
		return errors.Wrap(err, "Can't export dimensions")
	}
	return nil
}

func (m *Model) exportLanesToCSV(fname string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"carriageway", "lane", "role", "width_meters", "width", "median_offset", "center_y", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	scaler := Scaler{PixelsPerMeter: m.Constants.PixelsPerMeter}
	for _, c := range []Carriageway{CARRIAGEWAY_TOP, CARRIAGEWAY_BOTTOM} {
		for _, lane := range m.Lanes.Lanes(c) {
			centerline := orb.LineString{{lane.Band.Min[0], lane.CenterY}, {lane.Band.Max[0], lane.CenterY}}
			err = writer.Write([]string{
				c.String(),
				lane.ID.String(),
				lane.ID.Role(),
				fmt.Sprintf("%f", scaler.ToMeters(lane.Width)),
				fmt.Sprintf("%f", lane.Width),
				fmt.Sprintf("%f", lane.MedianOffset),
				fmt.Sprintf("%f", lane.CenterY),
				wkt.MarshalString(centerline),
			})
			if err != nil {
				return errors.Wrap(err, "Can't write lane")
			}
		}
	}
	return nil
}

func (m *Model) exportDimensionsToCSV(fname string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"id", "label", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for i, dim := range m.Annotations.Dimensions {
		err = writer.Write([]string{
			fmt.Sprintf("%d", i),
			dim.Label,
			wkt.MarshalString(orb.LineString{dim.From, dim.To}),
		})
		if err != nil {
			return errors.Wrap(err, "Can't write dimension")
		}
	}
	return nil
}

// ExportToCSV writes movements of the network. Geometry is WKT unless geomFormat is "geojson"
func (net *MovementNetwork) ExportToCSV(fname string, geomFormat string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	// 		from_vertex_id - int64, ID of source vertex
	// 		to_vertex_id - int64, ID of target vertex
	// 		weight - float64, travel time in seconds
	// 		geom - geometry (WKT or GeoJSON representation) in drawing units
	err = writer.Write([]string{"movement_id", "from_vertex_id", "to_vertex_id", "weight", "type", "from_carriageway", "to_carriageway", "length_meters", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}
	for _, mvmt := range net.movements {
		geomStr := ""
		if strings.ToLower(geomFormat) == "geojson" {
			geomStr = PrepareGeoJSONLinestring(mvmt.Geom)
		} else {
			geomStr = PrepareWKTLinestring(mvmt.Geom)
		}
		err = writer.Write([]string{
			fmt.Sprintf("%d", mvmt.ID),
			fmt.Sprintf("%d", mvmt.source),
			fmt.Sprintf("%d", mvmt.target),
			fmt.Sprintf("%f", mvmt.Cost.Seconds()),
			mvmt.Type.String(),
			mvmt.From.String(),
			mvmt.To.String(),
			fmt.Sprintf("%f", mvmt.LengthMeters),
			geomStr,
		})
		if err != nil {
			return errors.Wrap(err, "Can't write movement")
		}
	}
	return nil
}
