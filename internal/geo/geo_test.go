package geo

import (
	"math"
	"testing"

	"github.com/haeyanglab/searep/internal/marine"
)

var (
	haeundae = marine.Coordinates{Lat: 35.1595, Lng: 129.1604}
	jungmun  = marine.Coordinates{Lat: 33.2382, Lng: 126.4164}
	sokcho   = marine.Coordinates{Lat: 38.2070, Lng: 128.5918}
)

func TestDistance(t *testing.T) {
	t.Run("zero for identical points", func(t *testing.T) {
		if d := Distance(haeundae, haeundae); d != 0 {
			t.Fatalf("Distance(a,a) = %v, want 0", d)
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		ab := Distance(haeundae, jungmun)
		ba := Distance(jungmun, haeundae)
		if math.Abs(ab-ba) > 1e-6 {
			t.Fatalf("Distance not symmetric: %v vs %v", ab, ba)
		}
	})

	t.Run("busan to jeju is roughly 330km", func(t *testing.T) {
		d := Distance(haeundae, jungmun)
		if d < 300_000 || d > 360_000 {
			t.Fatalf("Distance = %v m, want ~330km", d)
		}
	})
}

func TestBearing(t *testing.T) {
	tests := []struct {
		name     string
		from, to marine.Coordinates
		want     float64
	}{
		{"due north", marine.Coordinates{Lat: 35, Lng: 129}, marine.Coordinates{Lat: 36, Lng: 129}, 0},
		{"due east", marine.Coordinates{Lat: 0, Lng: 129}, marine.Coordinates{Lat: 0, Lng: 130}, 90},
		{"due south", marine.Coordinates{Lat: 36, Lng: 129}, marine.Coordinates{Lat: 35, Lng: 129}, 180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bearing(tt.from, tt.to)
			if math.Abs(got-tt.want) > 0.5 {
				t.Fatalf("Bearing = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("always in [0,360)", func(t *testing.T) {
		got := Bearing(sokcho, jungmun)
		if got < 0 || got >= 360 {
			t.Fatalf("Bearing = %v, want [0,360)", got)
		}
	})
}

func TestPointInPolygon(t *testing.T) {
	square := []marine.Coordinates{
		{Lat: 35.0, Lng: 129.0},
		{Lat: 35.0, Lng: 129.2},
		{Lat: 35.2, Lng: 129.2},
		{Lat: 35.2, Lng: 129.0},
	}

	t.Run("centroid is inside", func(t *testing.T) {
		if !PointInPolygon(marine.Coordinates{Lat: 35.1, Lng: 129.1}, square) {
			t.Fatal("centroid reported outside")
		}
	})

	t.Run("outside point", func(t *testing.T) {
		if PointInPolygon(marine.Coordinates{Lat: 36.0, Lng: 129.1}, square) {
			t.Fatal("outside point reported inside")
		}
	})

	t.Run("two-vertex polygon is never hit", func(t *testing.T) {
		if PointInPolygon(marine.Coordinates{Lat: 35.0, Lng: 129.0}, square[:2]) {
			t.Fatal("degenerate polygon reported containment")
		}
	})

	t.Run("empty polygon", func(t *testing.T) {
		if PointInPolygon(marine.Coordinates{Lat: 35.0, Lng: 129.0}, nil) {
			t.Fatal("nil polygon reported containment")
		}
	})
}

func TestValidCoordinates(t *testing.T) {
	tests := []struct {
		name string
		c    marine.Coordinates
		want bool
	}{
		{"valid", haeundae, true},
		{"lat too high", marine.Coordinates{Lat: 91, Lng: 129}, false},
		{"lat too low", marine.Coordinates{Lat: -91, Lng: 129}, false},
		{"lng too high", marine.Coordinates{Lat: 35, Lng: 181}, false},
		{"lng too low", marine.Coordinates{Lat: 35, Lng: -181}, false},
		{"nan lat", marine.Coordinates{Lat: math.NaN(), Lng: 129}, false},
		{"inf lng", marine.Coordinates{Lat: 35, Lng: math.Inf(1)}, false},
		{"boundary values", marine.Coordinates{Lat: 90, Lng: -180}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidCoordinates(tt.c); got != tt.want {
				t.Fatalf("ValidCoordinates(%+v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestNearestLocation(t *testing.T) {
	locations := []marine.Location{
		{Name: "부산 해운대해수욕장", Coordinates: haeundae},
		{Name: "제주도 중문해수욕장", Coordinates: jungmun},
		{Name: "강원도 속초항", Coordinates: sokcho},
	}

	t.Run("finds closest within threshold", func(t *testing.T) {
		point := marine.Coordinates{Lat: 35.16, Lng: 129.16}
		got := NearestLocation(point, locations, 10_000)
		if got == nil || got.Name != "부산 해운대해수욕장" {
			t.Fatalf("NearestLocation = %+v, want 해운대", got)
		}
	})

	t.Run("nil when nearest exceeds threshold", func(t *testing.T) {
		// Point near Haeundae but threshold smaller than the real distance.
		point := marine.Coordinates{Lat: 36.0, Lng: 129.16}
		if got := NearestLocation(point, locations, 10_000); got != nil {
			t.Fatalf("NearestLocation = %+v, want nil", got)
		}
	})

	t.Run("nil for empty list", func(t *testing.T) {
		if got := NearestLocation(haeundae, nil, 10_000); got != nil {
			t.Fatalf("NearestLocation = %+v, want nil", got)
		}
	})

	t.Run("nil for invalid point", func(t *testing.T) {
		bad := marine.Coordinates{Lat: 91, Lng: 0}
		if got := NearestLocation(bad, locations, 10_000); got != nil {
			t.Fatalf("NearestLocation = %+v, want nil", got)
		}
	})

	t.Run("tie keeps first in iteration order", func(t *testing.T) {
		a := marine.Location{Name: "a", Coordinates: marine.Coordinates{Lat: 35.0, Lng: 129.0}}
		b := marine.Location{Name: "b", Coordinates: marine.Coordinates{Lat: 35.0, Lng: 129.0}}
		got := NearestLocation(marine.Coordinates{Lat: 35.0, Lng: 129.0}, []marine.Location{a, b}, 1000)
		if got == nil || got.Name != "a" {
			t.Fatalf("NearestLocation = %+v, want first candidate", got)
		}
	})
}
