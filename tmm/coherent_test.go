package tmm_test

import (
	"math"
	"testing"

	"github.com/porogan/braggsim/tmm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var inf = math.Inf(1)

// bareInterface is the simplest legal stack: two semi-infinite media.
func bareInterface(n0, ns float64) ([]complex128, []float64) {
	return []complex128{complex(n0, 0), complex(ns, 0)}, []float64{inf, inf}
}

// quarterWaveStack builds air | (H L)^pairs | substrate with every layer a
// quarter wave thick at the design wavelength.
func quarterWaveStack(nH, nL, ns, design float64, pairs int) ([]complex128, []float64) {
	n := []complex128{1}
	d := []float64{inf}
	for p := 0; p < pairs; p++ {
		n = append(n, complex(nH, 0), complex(nL, 0))
		d = append(d, design/(4*nH), design/(4*nL))
	}
	n = append(n, complex(ns, 0))
	d = append(d, inf)
	return n, d
}

// TestCoherent_Validation exercises every sentinel on its own trigger.
func TestCoherent_Validation(t *testing.T) {
	n, d := bareInterface(1, 1.5)

	cases := []struct {
		name       string
		pol        tmm.Polarization
		n          []complex128
		d          []float64
		wavelength float64
		want       error
	}{
		{name: "unknown polarization", pol: tmm.Polarization(9), n: n, d: d, wavelength: 500, want: tmm.ErrBadPolarization},
		{name: "length mismatch", pol: tmm.S, n: n, d: []float64{inf}, wavelength: 500, want: tmm.ErrLayerMismatch},
		{name: "single layer", pol: tmm.S, n: []complex128{1}, d: []float64{inf}, wavelength: 500, want: tmm.ErrTooFewLayers},
		{name: "finite entry medium", pol: tmm.S, n: n, d: []float64{10, inf}, wavelength: 500, want: tmm.ErrFiniteBoundary},
		{name: "finite exit medium", pol: tmm.S, n: n, d: []float64{inf, 10}, wavelength: 500, want: tmm.ErrFiniteBoundary},
		{name: "infinite interior layer", pol: tmm.S, n: []complex128{1, 1.5, 1.76}, d: []float64{inf, inf, inf}, wavelength: 500, want: tmm.ErrInteriorThickness},
		{name: "negative interior layer", pol: tmm.S, n: []complex128{1, 1.5, 1.76}, d: []float64{inf, -3, inf}, wavelength: 500, want: tmm.ErrInteriorThickness},
		{name: "zero wavelength", pol: tmm.S, n: n, d: d, wavelength: 0, want: tmm.ErrNonPositiveWavelength},
		{name: "negative wavelength", pol: tmm.S, n: n, d: d, wavelength: -450, want: tmm.ErrNonPositiveWavelength},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tmm.Coherent(tc.pol, tc.n, tc.d, 0, tc.wavelength)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestCoherent_BareInterface pins the air-glass textbook value
// R = ((1-1.5)/(1+1.5))² = 0.04 at normal incidence, for both polarizations.
func TestCoherent_BareInterface(t *testing.T) {
	n, d := bareInterface(1, 1.5)
	for _, pol := range []tmm.Polarization{tmm.S, tmm.P} {
		res, err := tmm.Coherent(pol, n, d, 0, 550)
		require.NoError(t, err)
		assert.InDelta(t, 0.04, res.R, 1e-12, "%v reflectance", pol)
		assert.InDelta(t, 0.96, res.T, 1e-12, "%v transmittance", pol)
	}
}

// TestCoherent_QuarterWaveAntireflection checks the classic coating
// identity: a λ/4 layer with n₁ = √(n₀·n₂) cancels reflection entirely.
func TestCoherent_QuarterWaveAntireflection(t *testing.T) {
	const design = 600.0
	n := []complex128{1, 1.5, 2.25}
	d := []float64{inf, design / (4 * 1.5), inf}

	res, err := tmm.Coherent(tmm.S, n, d, 0, design)
	require.NoError(t, err)
	assert.InDelta(t, 0, res.R, 1e-12, "matched quarter-wave layer must not reflect")
	assert.InDelta(t, 1, res.T, 1e-12)
}

// TestCoherent_HalfWaveAbsentee checks a λ/2 layer is optically absent:
// reflectance equals the bare interface underneath it.
func TestCoherent_HalfWaveAbsentee(t *testing.T) {
	const design = 600.0
	n := []complex128{1, 2.0, 1.5}
	d := []float64{inf, design / (4 * 2.0) * 2, inf}

	res, err := tmm.Coherent(tmm.S, n, d, 0, design)
	require.NoError(t, err)
	assert.InDelta(t, 0.04, res.R, 1e-12, "half-wave layer must vanish optically")
}

// TestCoherent_QuarterWaveMirror compares a 12-pair quarter-wave mirror
// against the closed-form peak reflectance: walking the admittance
// recursion Y → n²/Y through (H L)^N gives Y = (nH/nL)^{2N}·ns and
// R = ((n0-Y)/(n0+Y))².
func TestCoherent_QuarterWaveMirror(t *testing.T) {
	const (
		nH     = 2.38   // GaN
		nL     = 1.8883 // GaN at 45 % porosity
		ns     = 1.76   // sapphire
		design = 450.0
		pairs  = 12
	)
	n, d := quarterWaveStack(nH, nL, ns, design, pairs)

	res, err := tmm.Coherent(tmm.S, n, d, 0, design)
	require.NoError(t, err)

	y := math.Pow(nH/nL, 2*pairs) * ns
	want := math.Pow((1-y)/(1+y), 2)
	assert.InDelta(t, want, res.R, 1e-9, "peak reflectance must match the admittance formula")
	assert.Greater(t, res.R, 0.98)
}

// TestCoherent_EnergyConservation verifies R+T = 1 on a lossless stack at
// normal and oblique incidence for both polarizations.
func TestCoherent_EnergyConservation(t *testing.T) {
	n := []complex128{1, 2.38, 1.9846, 2.38, 1.9846, 1.76}
	d := []float64{inf, 63.7, 33.6, 63.7, 33.6, inf}

	for _, pol := range []tmm.Polarization{tmm.S, tmm.P} {
		for _, angle := range []float64{0, math.Pi / 6, math.Pi / 4} {
			res, err := tmm.Coherent(pol, n, d, angle, 450)
			require.NoError(t, err)
			assert.InDelta(t, 1, res.R+res.T, 1e-10,
				"%v at %.2f rad must conserve energy", pol, angle)
		}
	}
}

// TestCoherent_NormalIncidenceDegeneracy checks s and p coincide at θ = 0
// on an asymmetric stack.
func TestCoherent_NormalIncidenceDegeneracy(t *testing.T) {
	n := []complex128{1, 2.1, 1.4, 1.76}
	d := []float64{inf, 80, 120, inf}

	s, err := tmm.Coherent(tmm.S, n, d, 0, 500)
	require.NoError(t, err)
	p, err := tmm.Coherent(tmm.P, n, d, 0, 500)
	require.NoError(t, err)

	assert.InDelta(t, s.R, p.R, 1e-12)
	assert.InDelta(t, s.T, p.T, 1e-12)
}

// TestCoherent_Brewster checks p-polarized reflection vanishes at the
// Brewster angle of a bare interface while s does not.
func TestCoherent_Brewster(t *testing.T) {
	n, d := bareInterface(1, 1.5)
	brewster := math.Atan(1.5)

	p, err := tmm.Coherent(tmm.P, n, d, brewster, 550)
	require.NoError(t, err)
	s, err := tmm.Coherent(tmm.S, n, d, brewster, 550)
	require.NoError(t, err)

	assert.InDelta(t, 0, p.R, 1e-10, "p must vanish at Brewster")
	assert.Greater(t, s.R, 0.05, "s must keep reflecting at Brewster")
}

// TestCoherent_MatchedMedia covers the degenerate no-contrast stack.
func TestCoherent_MatchedMedia(t *testing.T) {
	n, d := bareInterface(1.5, 1.5)
	res, err := tmm.Coherent(tmm.S, n, d, 0, 550)
	require.NoError(t, err)
	assert.Zero(t, res.R)
	assert.InDelta(t, 1, res.T, 1e-15)
}

// TestCoherent_AbsorbingLayer checks an absorbing film dissipates power:
// R+T < 1 with a complex index.
func TestCoherent_AbsorbingLayer(t *testing.T) {
	n := []complex128{1, complex(2.0, 0.5), 1.5}
	d := []float64{inf, 100, inf}

	res, err := tmm.Coherent(tmm.S, n, d, 0, 500)
	require.NoError(t, err)
	assert.Less(t, res.R+res.T, 1.0, "absorption must eat part of the power")
	assert.Greater(t, res.R, 0.0)
	assert.Greater(t, res.T, 0.0)
}

// TestCoherent_InputsUntouched guards the read-only contract.
func TestCoherent_InputsUntouched(t *testing.T) {
	n := []complex128{1, 2.38, 1.76}
	d := []float64{inf, 47.3, inf}
	nSaved := append([]complex128(nil), n...)
	dSaved := append([]float64(nil), d...)

	_, err := tmm.Coherent(tmm.P, n, d, 0.3, 450)
	require.NoError(t, err)
	assert.Equal(t, nSaved, n)
	assert.Equal(t, dSaved, d)
}
