package discovery

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/local-services/internal/httperr"
	"github.com/BruksfildServices01/local-services/internal/models"
)

// EarthRadiusMiles is the sphere radius used for every distance.
const EarthRadiusMiles = 3956.0

const DefaultRadiusMiles = 25.0

// Haversine returns the great-circle distance in miles between two points
// given in degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	rLat1 := lat1 * math.Pi / 180
	rLat2 := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	a := sinLat*sinLat + math.Cos(rLat1)*math.Cos(rLat2)*sinLon*sinLon

	return 2 * EarthRadiusMiles * math.Asin(math.Sqrt(a))
}

func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

type Query struct {
	Lat      float64
	Lon      float64
	Radius   float64
	Category string
}

// ParseQuery validates the raw query string values.
func ParseQuery(lat, lon, radius, category string) (Query, error) {
	q := Query{Radius: DefaultRadiusMiles, Category: category}

	var ok bool
	if q.Lat, ok = parseCoord(lat, 90); !ok {
		return Query{}, httperr.ErrBusiness(httperr.CodeInvalidCoordinates)
	}
	if q.Lon, ok = parseCoord(lon, 180); !ok {
		return Query{}, httperr.ErrBusiness(httperr.CodeInvalidCoordinates)
	}

	if r := strings.TrimSpace(radius); r != "" {
		v, err := strconv.ParseFloat(r, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return Query{}, httperr.ErrBusiness(httperr.CodeInvalidRadius)
		}
		q.Radius = v
	}

	return q, nil
}

func parseCoord(raw string, limit float64) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > limit {
		return 0, false
	}
	return v, true
}

type Candidate struct {
	Service  models.Service
	Provider models.Provider
}

type Match struct {
	Candidate
	Distance float64
}

// Rank drops candidates without provider coordinates or beyond the radius
// and orders the rest by unrounded distance. Equal distances keep input order.
func Rank(candidates []Candidate, q Query) []Match {
	out := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		if !c.Provider.HasLocation() {
			continue
		}
		d := Haversine(q.Lat, q.Lon, *c.Provider.Latitude, *c.Provider.Longitude)
		if d > q.Radius {
			continue
		}
		out = append(out, Match{Candidate: c, Distance: d})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Distance < out[j].Distance
	})
	return out
}
