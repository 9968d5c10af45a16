package discovery

import (
	"math"
	"testing"

	"github.com/BruksfildServices01/local-services/internal/httperr"
	"github.com/BruksfildServices01/local-services/internal/models"
)

func ptr(v float64) *float64 { return &v }

func TestHaversine(t *testing.T) {
	if d := Haversine(40, -74, 40, -74); d != 0 {
		t.Fatalf("same point = %f", d)
	}

	// One degree of latitude on a 3956 mi sphere.
	want := 2 * math.Pi * EarthRadiusMiles / 360
	if d := Haversine(0, 0, 1, 0); math.Abs(d-want) > 1e-9 {
		t.Fatalf("1 deg lat = %f, want %f", d, want)
	}

	d := Haversine(40.0, -74.0, 40.01, -74.01)
	if math.Abs(d-0.8697) > 0.001 {
		t.Fatalf("distance = %f, want ~0.8697", d)
	}
	if Round1(d) != 0.9 {
		t.Fatalf("rounded = %f, want 0.9", Round1(d))
	}

	if a, b := Haversine(10, 20, 30, 40), Haversine(30, 40, 10, 20); math.Abs(a-b) > 1e-9 {
		t.Fatalf("not symmetric: %f vs %f", a, b)
	}
}

func TestParseQuery(t *testing.T) {
	q, err := ParseQuery("40.01", "-74.01", "", "")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if q.Radius != DefaultRadiusMiles {
		t.Fatalf("radius = %f, want default", q.Radius)
	}

	bad := []struct{ lat, lon, radius, code string }{
		{"", "-74", "", httperr.CodeInvalidCoordinates},
		{"40", "", "", httperr.CodeInvalidCoordinates},
		{"abc", "-74", "", httperr.CodeInvalidCoordinates},
		{"NaN", "-74", "", httperr.CodeInvalidCoordinates},
		{"91", "-74", "", httperr.CodeInvalidCoordinates},
		{"40", "-181", "", httperr.CodeInvalidCoordinates},
		{"40", "-74", "far", httperr.CodeInvalidRadius},
		{"40", "-74", "-1", httperr.CodeInvalidRadius},
	}
	for _, tc := range bad {
		if _, err := ParseQuery(tc.lat, tc.lon, tc.radius, ""); !httperr.IsBusiness(err, tc.code) {
			t.Errorf("ParseQuery(%q, %q, %q) err = %v, want %s", tc.lat, tc.lon, tc.radius, err, tc.code)
		}
	}
}

func TestRank(t *testing.T) {
	near := models.Provider{ID: 1, Latitude: ptr(40.0), Longitude: ptr(-74.0)}
	far := models.Provider{ID: 2, Latitude: ptr(40.07), Longitude: ptr(-74.0)}
	outside := models.Provider{ID: 3, Latitude: ptr(41.0), Longitude: ptr(-74.0)}
	nowhere := models.Provider{ID: 4}
	halfLocated := models.Provider{ID: 5, Latitude: ptr(40.01)}

	candidates := []Candidate{
		{Service: models.Service{ID: 10}, Provider: far},
		{Service: models.Service{ID: 11}, Provider: nowhere},
		{Service: models.Service{ID: 12}, Provider: near},
		{Service: models.Service{ID: 13}, Provider: outside},
		{Service: models.Service{ID: 14}, Provider: halfLocated},
		{Service: models.Service{ID: 15}, Provider: near},
	}

	got := Rank(candidates, Query{Lat: 40.01, Lon: -74.01, Radius: 5})

	wantIDs := []uint{12, 15, 10}
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d matches, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].Service.ID != id {
			t.Fatalf("match %d = service %d, want %d", i, got[i].Service.ID, id)
		}
		if got[i].Distance > 5 {
			t.Fatalf("match %d beyond radius: %f", i, got[i].Distance)
		}
		if i > 0 && got[i].Distance < got[i-1].Distance {
			t.Fatalf("not sorted at %d", i)
		}
	}
}

func TestRank_SortsBeforeRounding(t *testing.T) {
	// Both round to 1.0 mi; the closer one must still come first.
	a := models.Provider{ID: 1, Latitude: ptr(0.0144), Longitude: ptr(0)}
	b := models.Provider{ID: 2, Latitude: ptr(0.0140), Longitude: ptr(0)}

	got := Rank([]Candidate{
		{Service: models.Service{ID: 1}, Provider: a},
		{Service: models.Service{ID: 2}, Provider: b},
	}, Query{Radius: 25})

	if got[0].Service.ID != 2 {
		t.Fatalf("first = %d, want 2", got[0].Service.ID)
	}
	if Round1(got[0].Distance) != Round1(got[1].Distance) {
		t.Fatalf("fixture should round equal: %f vs %f", got[0].Distance, got[1].Distance)
	}
}
