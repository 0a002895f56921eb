package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	utern "github.com/sanjeevaacham/Utern"
)

var (
	configFile = flag.String("config", "", "Filename of JSON configuration. Omitted fields keep defaults: 7m/3.5m/3.5m lanes, 2m median, 60 km/h, median_pocket")
	turnType   = flag.String("turn", "", "Override U-turn type. Expected values: grade_separated / median_pocket / flared_median")
	out        = flag.String("out", "layout.csv", "Filename of 'Comma-Separated Values' (CSV) formatted file. E.g.: if file name is 'layout.csv' then 'layout_lanes.csv', 'layout_dimensions.csv', 'layout_movements.csv' and 'layout_geometry.csv' will be produced")
	geomFormat = flag.String("geomf", "wkt", "Format of output geometry. Expected values: wkt / geojson")
	osmOrigin  = flag.String("osm", "", "Anchor layout on Earth and export it as OSM XML. Expected value: 'lat,lon' of the top-left corner of the road")
	svgFile    = flag.String("svg", "", "Filename of SVG preview")
	pngFile    = flag.String("png", "", "Filename of PNG preview (requires Chrome / Chromium)")
	arcSegs    = flag.Int("segments", 96, "Number of segments used to sample the turning arc")
	verbose    = flag.Bool("verbose", true, "Print progress?")
)

func main() {

	flag.Parse()

	cfg := utern.DefaultConfiguration()
	if *configFile != "" {
		var err error
		cfg, err = utern.LoadConfiguration(*configFile)
		if err != nil {
			fmt.Println(err)
			return
		}
	}
	if *turnType != "" {
		tt, err := utern.ParseTurnType(*turnType)
		if err != nil {
			fmt.Println(err)
			return
		}
		cfg.TurnType = tt
	}
	if *verbose {
		fmt.Println(cfg)
	}

	engine := utern.NewEngine(
		utern.WithArcSegments(*arcSegs),
		utern.WithVerbose(*verbose),
	)
	model, err := engine.Compute(cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	if *verbose {
		fmt.Printf("Layout %s\n\tcarriageway: %g m\n\tspeed factor: %g\n\tisland area: %.2f sq. units\n", model.ID, model.CarriagewayWidthMeters(), model.SpeedFactor(), model.Island.Area())
	}

	fnamePart := strings.Split(*out, ".csv") // to guarantee proper filename and its extension
	err = model.ExportToCSV(fnamePart[0] + ".csv")
	if err != nil {
		fmt.Println(err)
		return
	}
	err = writeGeometry(model, fnamePart[0]+"_geometry.csv", *geomFormat)
	if err != nil {
		fmt.Println(err)
		return
	}

	network, err := utern.NewMovementNetwork(model)
	if err != nil {
		fmt.Println(err)
		return
	}
	err = network.ExportToCSV(fnamePart[0]+"_movements.csv", *geomFormat)
	if err != nil {
		fmt.Println(err)
		return
	}
	if *verbose {
		through, _, err := network.TravelTime(utern.TERMINAL_TOP_ENTRY, utern.TERMINAL_TOP_EXIT)
		if err != nil {
			fmt.Println(err)
			return
		}
		uTurn, _, err := network.TravelTime(utern.TERMINAL_TOP_ENTRY, utern.TERMINAL_BOTTOM_EXIT)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("Travel times:\n\tthrough: %v\n\tu-turn: %v\n", through, uTurn)
	}

	if *osmOrigin != "" {
		origin, err := parseOrigin(*osmOrigin)
		if err != nil {
			fmt.Println(err)
			return
		}
		b, err := model.ExportOSMXML(origin)
		if err != nil {
			fmt.Println(err)
			return
		}
		err = os.WriteFile(fnamePart[0]+".osm", b, 0644)
		if err != nil {
			fmt.Println(err)
			return
		}
	}

	svg := utern.RenderSVG(model)
	if *svgFile != "" {
		err = os.WriteFile(*svgFile, []byte(svg), 0644)
		if err != nil {
			fmt.Println(err)
			return
		}
	}
	if *pngFile != "" {
		err = snapshotPNG(svg, *pngFile, *verbose)
		if err != nil {
			fmt.Println(err)
			return
		}
	}
}

func parseOrigin(s string) (utern.GeoPoint, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return utern.GeoPoint{}, fmt.Errorf("origin must look like 'lat,lon', got '%s'", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return utern.GeoPoint{}, fmt.Errorf("bad latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return utern.GeoPoint{}, fmt.Errorf("bad longitude: %w", err)
	}
	return utern.GeoPoint{Lat: lat, Lon: lon}, nil
}
