package fresnel

import (
	"github.com/df07/go-fresnel/pkg/core"
)

// ArtisticConductor derives a conductor's complex refractive index from
// artist-facing parameters: the reflectivity at normal incidence and the edge
// tint (the color bias toward grazing angles). The derivation happens once at
// construction; evaluation reuses the conductor closed form.
type ArtisticConductor struct {
	Eta core.Vec3 // derived refractive index ratio
	K   core.Vec3 // derived absorption coefficient
	R   core.Vec3 // reflectivity after capping, kept for the average fit
	G   core.Vec3 // edge tint
}

// maxReflectivity caps reflectivity inputs so the derived index stays finite
const maxReflectivity = 0.99

// NewArtisticConductor creates an artist-parameterized conductor Fresnel in
// the given arena. Reflectivity components are capped at 0.99.
func NewArtisticConductor(a *Arena, reflectivity, edgeTint core.Vec3) *ArtisticConductor {
	r := reflectivity.Clamp(0, maxReflectivity)
	g := edgeTint
	one := core.NewVec3Uniform(1)

	// Index range spanned by the edge tint: nMin at g=1, nMax at g=0
	sqrtR := r.Sqrt()
	nMin := one.Subtract(r).DivideVec(one.Add(r))
	nMax := one.Add(sqrtR).DivideVec(one.Subtract(sqrtR))
	n := g.MultiplyVec(nMin).Add(one.Subtract(g).MultiplyVec(nMax))

	// k² = ((n+1)²·r − (n−1)²) / (1−r), with the square root clamped at zero
	// so a negative-zero radicand cannot produce NaN
	k2 := n.AddScalar(1).Square().MultiplyVec(r).
		Subtract(n.AddScalar(-1).Square()).
		DivideVec(one.Subtract(r))
	k := k2.Sqrt()

	f := allocArtisticConductor(a)
	*f = ArtisticConductor{Eta: n, K: k, R: r, G: g}
	return f
}

// Evaluate returns the conductor reflectance of the derived (eta, k) at cosI
func (f *ArtisticConductor) Evaluate(cosI float64) core.Vec3 {
	return ConductorRGB(cosI, f.Eta, f.K)
}

// EvaluateAverage approximates the cosine-weighted hemispherical average with
// a polynomial fit in (reflectivity, edge tint). The fit stands in for
// re-integrating the derived (eta, k) curve, trading a small approximation
// error for a handful of multiplies.
func (f *ArtisticConductor) EvaluateAverage() core.Vec3 {
	r, g := f.R, f.G
	r2 := r.Square()
	r3 := r2.MultiplyVec(r)
	g2 := g.Square()
	g3 := g2.MultiplyVec(g)

	avg := core.NewVec3Uniform(0.087237).
		Add(g.Multiply(0.0230685)).
		Subtract(g2.Multiply(0.0864902)).
		Add(g3.Multiply(0.0774594)).
		Add(r.Multiply(0.782654)).
		Subtract(r2.Multiply(0.136432)).
		Add(r3.Multiply(0.278708)).
		Add(g.MultiplyVec(r).Multiply(0.19744)).
		Add(g2.MultiplyVec(r).Multiply(0.0360605)).
		Subtract(g.MultiplyVec(r2).Multiply(0.2586))
	return avg.Clamp(0, 1)
}
