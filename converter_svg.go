package utern

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

const (
	svgRoadFill     = "#4b5563"
	svgMedianFill   = "#9ca3af"
	svgOpeningFill  = "#374151"
	svgIslandFill   = "#16a34a"
	svgBufferFill   = "#facc15"
	svgTurnStroke   = "#f97316"
	svgLaneStroke   = "#e5e7eb"
	svgAnnotation   = "#111827"
	svgFontFamily   = "monospace"
	svgFontSize     = 12
	svgTitleFontPad = 20
)

// svgNumber prints coordinate with at most 3 decimals and no trailing zeros
func svgNumber(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		// avoid "-0"
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SVGPathFromLine returns SVG path data for polyline
func SVGPathFromLine(line orb.LineString) string {
	if len(line) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, pt := range line {
		if i == 0 {
			sb.WriteString("M ")
		} else {
			sb.WriteString(" L ")
		}
		sb.WriteString(svgNumber(pt[0]))
		sb.WriteString(" ")
		sb.WriteString(svgNumber(pt[1]))
	}
	return sb.String()
}

// SVGPathFromRing returns closed SVG path data for ring
func SVGPathFromRing(ring orb.Ring) string {
	if len(ring) == 0 {
		return ""
	}
	line := orb.LineString(ring)
	if ring.Closed() {
		line = line[:len(line)-1]
	}
	return SVGPathFromLine(line) + " Z"
}

// SVGPath returns path data of the arc using elliptical arc command.
// Arc spans half of the ellipse, so large-arc flag is irrelevant and kept zero
func (arc EllipticalArc) SVGPath() string {
	sweep := "0"
	if arc.Sweep {
		sweep = "1"
	}
	return fmt.Sprintf("M %s %s A %s %s 0 0 %s %s %s",
		svgNumber(arc.From[0]), svgNumber(arc.From[1]),
		svgNumber(arc.RX), svgNumber(arc.RY),
		sweep,
		svgNumber(arc.To[0]), svgNumber(arc.To[1]),
	)
}

// SVGPath returns path data of approach, arc and exit as one path
func (path TurnPath) SVGPath() string {
	sweep := "0"
	if path.Arc.Sweep {
		sweep = "1"
	}
	return fmt.Sprintf("M %s %s L %s %s A %s %s 0 0 %s %s %s L %s %s",
		svgNumber(path.Approach.From[0]), svgNumber(path.Approach.From[1]),
		svgNumber(path.Arc.From[0]), svgNumber(path.Arc.From[1]),
		svgNumber(path.Arc.RX), svgNumber(path.Arc.RY),
		sweep,
		svgNumber(path.Arc.To[0]), svgNumber(path.Arc.To[1]),
		svgNumber(path.Exit.To[0]), svgNumber(path.Exit.To[1]),
	)
}

func writeSVGRect(sb *strings.Builder, b orb.Bound, fill string, extra string) {
	fmt.Fprintf(sb, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"%s/>`+"\n",
		svgNumber(b.Min[0]), svgNumber(b.Min[1]),
		svgNumber(b.Max[0]-b.Min[0]), svgNumber(b.Max[1]-b.Min[1]),
		fill, extra,
	)
}

func writeSVGText(sb *strings.Builder, at orb.Point, text string, anchor string, bold bool) {
	weight := "normal"
	if bold {
		weight = "bold"
	}
	fmt.Fprintf(sb, `<text x="%s" y="%s" text-anchor="%s" font-family="%s" font-size="%d" font-weight="%s" fill="%s">%s</text>`+"\n",
		svgNumber(at[0]), svgNumber(at[1]), anchor, svgFontFamily, svgFontSize, weight, svgAnnotation, html.EscapeString(text),
	)
}

// RenderSVG serializes the model into a standalone SVG document in drawing units
func RenderSVG(m *Model) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		svgNumber(m.Width), svgNumber(m.Height), svgNumber(m.Width), svgNumber(m.Height),
	)
	fmt.Fprintf(&sb, `<rect x="0" y="0" width="%s" height="%s" fill="#ffffff"/>`+"\n", svgNumber(m.Width), svgNumber(m.Height))

	for _, c := range []Carriageway{CARRIAGEWAY_TOP, CARRIAGEWAY_BOTTOM} {
		writeSVGRect(&sb, m.Lanes.CarriagewayBand(c), svgRoadFill, fmt.Sprintf(` data-carriageway="%s"`, c))
		lanes := m.Lanes.Lanes(c)
		// Lane dividers between neighbouring lanes
		for _, lane := range lanes[1:] {
			y := lane.Band.Max[1]
			if c == CARRIAGEWAY_BOTTOM {
				y = lane.Band.Min[1]
			}
			fmt.Fprintf(&sb, `<line x1="0" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="1" stroke-dasharray="12 8"/>`+"\n",
				svgNumber(y), svgNumber(lane.Band.Max[0]), svgNumber(y), svgLaneStroke,
			)
		}
	}
	for _, buffer := range m.Buffers {
		writeSVGRect(&sb, buffer.Bound, svgBufferFill, fmt.Sprintf(` data-buffer="%s"`, buffer.Carriageway))
	}
	for _, segment := range m.Median.Segments {
		writeSVGRect(&sb, segment, svgMedianFill, "")
	}
	writeSVGRect(&sb, m.Median.Opening, svgOpeningFill, ` data-opening="true"`)

	fmt.Fprintf(&sb, `<path d="%s" fill="%s" stroke="none"/>`+"\n", SVGPathFromRing(m.Island.Ring), svgIslandFill)
	fmt.Fprintf(&sb, `<path d="%s" fill="none" stroke="%s" stroke-width="2" stroke-dasharray="6 4"/>`+"\n", m.TurnPath.SVGPath(), svgTurnStroke)

	for i, dim := range m.Annotations.Dimensions {
		fmt.Fprintf(&sb, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="1"/>`+"\n",
			svgNumber(dim.From[0]), svgNumber(dim.From[1]), svgNumber(dim.To[0]), svgNumber(dim.To[1]), svgAnnotation,
		)
		if i == len(m.Annotations.Dimensions)-1 {
			writeSVGText(&sb, m.Annotations.MajorAxisLabelAt(), dim.Label, "middle", true)
			continue
		}
		at := orb.Point{dim.From[0] + 6, (dim.From[1]+dim.To[1])/2.0 + 4}
		writeSVGText(&sb, at, dim.Label, "start", false)
	}
	for _, label := range m.Annotations.Labels {
		writeSVGText(&sb, label.At, label.Text, "start", label.Turning)
	}
	writeSVGText(&sb, orb.Point{m.Width / 2.0, svgTitleFontPad}, m.Annotations.Title, "middle", true)

	sb.WriteString("</svg>\n")
	return sb.String()
}
