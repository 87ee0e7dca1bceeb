package geo

import (
	"math"
	"testing"
)

func TestDistanceKm_SamePointIsZero(t *testing.T) {
	if d := DistanceKm(-34.6037, -58.3816, -34.6037, -58.3816); d != 0 {
		t.Fatalf("expected 0, got %f", d)
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a := DistanceKm(-34.6037, -58.3816, -31.4201, -64.1888)
	b := DistanceKm(-31.4201, -64.1888, -34.6037, -58.3816)
	if a != b {
		t.Fatalf("expected symmetry, got %f vs %f", a, b)
	}
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Buenos Aires -> Córdoba, ~646 km em linha reta
	d := DistanceKm(-34.6037, -58.3816, -31.4201, -64.1888)
	if math.Abs(d-646) > 10 {
		t.Fatalf("expected ~646km, got %f", d)
	}
}

func TestFormatDistance_MetersUnderOneKm(t *testing.T) {
	if got := FormatDistance(0.35); got != "350m" {
		t.Fatalf("expected 350m, got %q", got)
	}
	if got := FormatDistance(0.9996); got != "1000m" {
		t.Fatalf("expected 1000m (still under the km cutoff), got %q", got)
	}
}

func TestFormatDistance_KilometersWithOneDecimal(t *testing.T) {
	if got := FormatDistance(1.0); got != "1.0km" {
		t.Fatalf("expected 1.0km, got %q", got)
	}
	if got := FormatDistance(12.34); got != "12.3km" {
		t.Fatalf("expected 12.3km, got %q", got)
	}
}
