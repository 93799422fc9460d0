package tmm

import (
	"math"
	"math/cmplx"
)

// twoPi is the phase accumulated per wavelength of optical path.
const twoPi = 2 * math.Pi

// mat2 is a dense 2×2 complex matrix, row major.
type mat2 [2][2]complex128

// mul returns a·b.
func (a mat2) mul(b mat2) mat2 {
	return mat2{
		{a[0][0]*b[0][0] + a[0][1]*b[1][0], a[0][0]*b[0][1] + a[0][1]*b[1][1]},
		{a[1][0]*b[0][0] + a[1][1]*b[1][0], a[1][0]*b[0][1] + a[1][1]*b[1][1]},
	}
}

// Coherent evaluates reflectance and transmittance of a multilayer stack,
// treating every layer as optically coherent.
//
// n lists the complex refractive index of each layer and d the thickness
// of each layer in the same length unit as wavelength. The first and last
// entries are the semi-infinite incidence and exit media and must carry
// d = +Inf. angle is the incidence angle in radians measured in the first
// medium; wavelength is the vacuum wavelength.
//
// The evaluation walks the stack once:
//
//	δ_j = 2π·n_j·cosθ_j·d_j / λ                  (phase in layer j)
//	M   = Î(0,1) · Π_j [ P(δ_j) · Î(j,j+1) ]     (system matrix)
//	r   = M₁₀ / M₀₀,  t = 1 / M₀₀
//
// with P the propagation matrix and Î the interface matrix built from the
// Fresnel coefficients of the chosen polarization.
//
// Complexity: O(len(n)) time, O(len(n)) memory for the angle cache.
func Coherent(pol Polarization, n []complex128, d []float64, angle, wavelength float64) (Result, error) {
	if pol != S && pol != P {
		return Result{}, ErrBadPolarization
	}
	if len(n) != len(d) {
		return Result{}, ErrLayerMismatch
	}
	if len(n) < 2 {
		return Result{}, ErrTooFewLayers
	}
	last := len(n) - 1
	if !math.IsInf(d[0], 1) || !math.IsInf(d[last], 1) {
		return Result{}, ErrFiniteBoundary
	}
	for i := 1; i < last; i++ {
		if d[i] < 0 || math.IsInf(d[i], 0) || math.IsNaN(d[i]) {
			return Result{}, ErrInteriorThickness
		}
	}
	if wavelength <= 0 || math.IsNaN(wavelength) {
		return Result{}, ErrNonPositiveWavelength
	}

	// Snell angles throughout the stack, from the invariant n₀·sinθ₀.
	// cmplx.Asin keeps evanescent orders decaying past total internal
	// reflection: Im(cosθ) comes out positive for transparent media.
	sin0 := n[0] * cmplx.Sin(complex(angle, 0))
	cosines := make([]complex128, len(n))
	for i, ni := range n {
		cosines[i] = cmplx.Cos(cmplx.Asin(sin0 / ni))
	}

	// Seed with the entry interface, then fold in propagation across each
	// finite layer followed by its exit interface.
	m := interfaceMatrix(pol, n[0], n[1], cosines[0], cosines[1])
	for j := 1; j < last; j++ {
		delta := twoPi * n[j] * cosines[j] * complex(d[j]/wavelength, 0)
		prop := mat2{
			{cmplx.Exp(-1i * delta), 0},
			{0, cmplx.Exp(1i * delta)},
		}
		m = m.mul(prop.mul(interfaceMatrix(pol, n[j], n[j+1], cosines[j], cosines[j+1])))
	}

	r := m[1][0] / m[0][0]
	t := 1 / m[0][0]

	res := Result{R: real(r)*real(r) + imag(r)*imag(r)}
	// Power transmittance projects the Poynting flux on both boundaries.
	tt := real(t)*real(t) + imag(t)*imag(t)
	switch pol {
	case S:
		res.T = tt * real(n[last]*cosines[last]) / real(n[0]*cosines[0])
	case P:
		res.T = tt * real(n[last]*cmplx.Conj(cosines[last])) / real(n[0]*cmplx.Conj(cosines[0]))
	}
	return res, nil
}

// interfaceMatrix returns (1/t)·[[1,r],[r,1]] for the boundary between
// layers i and j, seen from i.
func interfaceMatrix(pol Polarization, ni, nj, ci, cj complex128) mat2 {
	r, t := fresnel(pol, ni, nj, ci, cj)
	inv := 1 / t
	return mat2{
		{inv, inv * r},
		{inv * r, inv},
	}
}

// fresnel returns the amplitude reflection and transmission coefficients
// at a single interface for the given polarization.
func fresnel(pol Polarization, ni, nj, ci, cj complex128) (r, t complex128) {
	if pol == S {
		den := ni*ci + nj*cj
		return (ni*ci - nj*cj) / den, 2 * ni * ci / den
	}
	den := nj*ci + ni*cj
	return (nj*ci - ni*cj) / den, 2 * ni * ci / den
}
