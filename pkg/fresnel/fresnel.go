// Package fresnel implements the Fresnel reflectance models used by
// physically-based shading: dielectric and conductor closed forms, the Schlick
// approximation, and an artist-parameterized conductor. Instances are built
// once per shading sample in a caller-owned Arena and evaluated through the
// Fresnel interface inside the shading loop.
package fresnel

import (
	"github.com/df07/go-fresnel/pkg/core"
)

// Fresnel is the reflectance capability shared by all models. Implementations
// are immutable after construction, so a single instance may be evaluated
// concurrently from multiple goroutines.
type Fresnel interface {
	// Evaluate returns the reflectance at incidence cosine cosI.
	// Callers clamp cosI to [0,1] before calling.
	Evaluate(cosI float64) core.Vec3

	// EvaluateAverage returns the cosine-weighted hemispherical average of
	// Evaluate, or zero when the model has no closed-form average fit.
	EvaluateAverage() core.Vec3
}

// noAverage is embedded by models without a closed-form hemispherical average.
// Its zero return signals "no average available" rather than a black surface.
type noAverage struct{}

// EvaluateAverage returns zero, signaling that no average fit exists
func (noAverage) EvaluateAverage() core.Vec3 {
	return core.Vec3{}
}
