package fresnel

import (
	"github.com/df07/go-fresnel/pkg/core"
)

// Conductor models the reflectance of an absorbing medium (metals) from a
// complex refractive index per RGB channel. It has no closed-form
// hemispherical average.
type Conductor struct {
	noAverage
	Eta core.Vec3 // real refractive index ratio (outside/inside) per channel
	K   core.Vec3 // absorption coefficient per channel
}

// NewConductor creates a conductor Fresnel in the given arena.
// Eta must be positive in any channel that will be evaluated at cosI == 0.
func NewConductor(a *Arena, eta, k core.Vec3) *Conductor {
	c := allocConductor(a)
	*c = Conductor{Eta: eta, K: k}
	return c
}

// Evaluate returns the conductor reflectance at incidence cosine cosI
func (c *Conductor) Evaluate(cosI float64) core.Vec3 {
	return ConductorRGB(cosI, c.Eta, c.K)
}
