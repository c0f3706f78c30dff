package fresnel

import (
	"github.com/df07/go-fresnel/pkg/core"
	"github.com/df07/go-fresnel/pkg/spectrum"
)

// SpectralConductor models conductor reflectance from per-wavelength (eta, k)
// samples, reconstructing each evaluation into RGB. It has no closed-form
// hemispherical average.
type SpectralConductor struct {
	noAverage
	Eta spectrum.Spectrum // refractive index ratio per spectral sample
	K   spectrum.Spectrum // absorption coefficient per spectral sample
}

// NewSpectralConductor creates a spectral conductor Fresnel in the given arena.
// Eta must be positive in any sample that will be evaluated at cosI == 0.
func NewSpectralConductor(a *Arena, eta, k spectrum.Spectrum) *SpectralConductor {
	c := allocSpectralConductor(a)
	*c = SpectralConductor{Eta: eta, K: k}
	return c
}

// Evaluate returns the RGB-reconstructed conductor reflectance at cosI
func (c *SpectralConductor) Evaluate(cosI float64) core.Vec3 {
	return ConductorSpectral(cosI, c.Eta, c.K)
}
