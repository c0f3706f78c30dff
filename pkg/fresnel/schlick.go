package fresnel

import (
	"github.com/df07/go-fresnel/pkg/core"
)

// Schlick approximates Fresnel reflectance with the classic power-5
// interpolation between normal-incidence and grazing reflectance.
type Schlick struct {
	R core.Vec3 // reflectance at normal incidence
	G core.Vec3 // reflectance at grazing incidence
}

// NewSchlick creates a Schlick Fresnel in the given arena
func NewSchlick(a *Arena, r, g core.Vec3) *Schlick {
	s := allocSchlick(a)
	*s = Schlick{R: r, G: g}
	return s
}

// Evaluate returns lerp((1-cosI)^5, R, G)
func (s *Schlick) Evaluate(cosI float64) core.Vec3 {
	t := 1 - cosI
	t2 := t * t
	return s.R.Lerp(s.G, t2*t2*t)
}

// EvaluateAverage returns the exact cosine-weighted hemispherical average of
// the Schlick curve: integrating the (1-cos)^(1/p) interpolant against
// 2*cos dcos with shape constant p = 1/5 gives the weight 2p²/((1+p)(1+2p)).
func (s *Schlick) EvaluateAverage() core.Vec3 {
	const p = 1.0 / 5.0
	const w = 2 * p * p / ((1 + p) * (1 + 2*p))
	return s.R.Lerp(s.G, w)
}
