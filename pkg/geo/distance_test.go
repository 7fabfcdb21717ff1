package geo_test

import (
	"testing"

	"gympass/pkg/geo"

	"github.com/stretchr/testify/require"
)

func TestDistance_SamePoint(t *testing.T) {
	t.Parallel()

	p := geo.Coordinate{Latitude: -4.9676288, Longitude: -39.0070272}
	require.Zero(t, geo.Distance(p, p))
}

func TestDistance_KnownPoints(t *testing.T) {
	t.Parallel()

	// São Paulo -> Rio de Janeiro, roughly 360km apart.
	sp := geo.Coordinate{Latitude: -23.55052, Longitude: -46.633308}
	rj := geo.Coordinate{Latitude: -22.906847, Longitude: -43.172896}

	d := geo.Distance(sp, rj)
	require.InDelta(t, 360, d, 5)
}

func TestDistance_Symmetric(t *testing.T) {
	t.Parallel()

	a := geo.Coordinate{Latitude: 51.5007, Longitude: -0.1246}
	b := geo.Coordinate{Latitude: 48.8584, Longitude: 2.2945}

	require.InEpsilon(t, geo.Distance(a, b), geo.Distance(b, a), 1e-12)
}

func TestDistance_ShortRange(t *testing.T) {
	t.Parallel()

	// ~111m apart along a meridian (0.001 degrees of latitude).
	a := geo.Coordinate{Latitude: 0, Longitude: 0}
	b := geo.Coordinate{Latitude: 0.001, Longitude: 0}

	require.InDelta(t, 0.111, geo.Distance(a, b), 0.001)
}
