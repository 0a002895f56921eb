package utern

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

const (
	earthR = 20037508.34
	pi180  = math.Pi / 180.0
)

// GeoPoint representation of point on Earth
type GeoPoint struct {
	Lat float64
	Lon float64
}

// String returns pretty printed value for for GeoPoint
func (gp GeoPoint) String() string {
	return fmt.Sprintf("Lon: %f | Lat: %f", gp.Lon, gp.Lat)
}

func epsg3857To4326(x, y float64) (float64, float64) {
	lon := x * 180 / earthR
	lat := math.Atan(math.Exp(y*math.Pi/earthR))*360/math.Pi - 90
	return lon, lat
}

func epsg4326To3857(lon, lat float64) (float64, float64) {
	x := lon * earthR / 180
	y := math.Log(math.Tan((90+lat)*math.Pi/360)) / (math.Pi / 180)
	y = y * earthR / 180
	return x, y
}

// localProjection places drawing coordinates on Earth around an origin.
// Drawing y grows downward, so it is flipped to point north.
type localProjection struct {
	originX        float64
	originY        float64
	pixelsPerMeter float64
	// Mercator stretch at origin latitude
	stretch float64
}

func newLocalProjection(origin GeoPoint, pixelsPerMeter float64) localProjection {
	x, y := epsg4326To3857(origin.Lon, origin.Lat)
	return localProjection{
		originX:        x,
		originY:        y,
		pixelsPerMeter: pixelsPerMeter,
		stretch:        1.0 / math.Cos(origin.Lat*pi180),
	}
}

// toGeo converts drawing point to geographic point
func (proj localProjection) toGeo(pt orb.Point) GeoPoint {
	eastMeters := pt[0] / proj.pixelsPerMeter
	northMeters := -pt[1] / proj.pixelsPerMeter
	lon, lat := epsg3857To4326(proj.originX+eastMeters*proj.stretch, proj.originY+northMeters*proj.stretch)
	return GeoPoint{Lat: lat, Lon: lon}
}
