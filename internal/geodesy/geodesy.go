// Package geodesy implements the spherical great-circle routines used to lay
// out radial sampling webs: the direct (destination) problem, haversine
// distance, and initial bearing.
//
// Formulas follow the standard spherical geodesy derivations
// (www.movable-type.co.uk/scripts/latlong.html).
package geodesy

import "math"

// EarthRadiusKm is the mean earth radius in kilometres (IUGG mean radius).
// All distances in this package are great-circle distances on a sphere of
// this radius.
const EarthRadiusKm = 6371.0088

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// Point is a geographic coordinate in signed decimal degrees.
// Latitude is positive north, longitude positive east.
type Point struct {
	Lat float64
	Lon float64
}

// Destination returns the point reached by travelling distanceKm along a
// great circle from p at the given initial bearing (degrees clockwise from
// true north). The returned longitude is normalised to [-180, 180).
func Destination(p Point, bearingDeg, distanceKm float64) Point {
	// sinφ2 = sinφ1⋅cosδ + cosφ1⋅sinδ⋅cosθ
	// tanΔλ = sinθ⋅sinδ⋅cosφ1 / (cosδ − sinφ1⋅sinφ2)
	delta := distanceKm / EarthRadiusKm
	theta := bearingDeg * degToRad
	phi1 := p.Lat * degToRad
	lam1 := p.Lon * degToRad

	sinPhi2 := math.Sin(phi1)*math.Cos(delta) +
		math.Cos(phi1)*math.Sin(delta)*math.Cos(theta)
	phi2 := math.Asin(sinPhi2)
	lam2 := lam1 + math.Atan2(
		math.Sin(theta)*math.Sin(delta)*math.Cos(phi1),
		math.Cos(delta)-math.Sin(phi1)*sinPhi2)

	// normalise to -180..+180°
	lam2 = math.Mod(lam2+3*math.Pi, 2*math.Pi) - math.Pi

	return Point{Lat: phi2 * radToDeg, Lon: lam2 * radToDeg}
}

// Distance returns the great-circle (haversine) distance between a and b in
// kilometres.
func Distance(a, b Point) float64 {
	phi1 := a.Lat * degToRad
	phi2 := b.Lat * degToRad
	dPhi := (b.Lat - a.Lat) * degToRad
	dLam := (b.Lon - a.Lon) * degToRad

	sinDPhi := math.Sin(dPhi / 2)
	sinDLam := math.Sin(dLam / 2)
	h := sinDPhi*sinDPhi + math.Cos(phi1)*math.Cos(phi2)*sinDLam*sinDLam
	return EarthRadiusKm * 2 * math.Asin(math.Sqrt(h))
}

// Bearing returns the initial great-circle bearing from a to b in degrees,
// normalised to [-180, 180].
func Bearing(a, b Point) float64 {
	phi1 := a.Lat * degToRad
	phi2 := b.Lat * degToRad
	dLam := (b.Lon - a.Lon) * degToRad

	y := math.Sin(dLam) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLam)
	return Wrap180(math.Atan2(y, x) * radToDeg)
}

// Wrap180 normalises an angle in degrees to [-180, 180].
func Wrap180(deg float64) float64 {
	if deg < -180 || deg > 180 {
		deg = math.Mod(deg, 360)
		if deg < -180 {
			deg += 360
		} else if deg > 180 {
			deg -= 360
		}
	}
	return deg
}

// Wrap360 normalises an angle in degrees to [0, 360).
func Wrap360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
