package fresnel

import (
	"math"

	"github.com/df07/go-fresnel/pkg/core"
	"github.com/df07/go-fresnel/pkg/spectrum"
)

// DielectricReflectance computes the two-polarization average reflectance of a
// dielectric interface from the incident and transmitted cosines. Both cosines
// must be non-negative; eta is the outside/inside refractive index ratio.
func DielectricReflectance(cosI, cosT, eta float64) float64 {
	rPar := (eta*cosI - cosT) * core.SafeRcp(eta*cosI+cosT)
	rPerp := (cosI - eta*cosT) * core.SafeRcp(cosI+eta*cosT)
	return 0.5 * (rPar*rPar + rPerp*rPerp)
}

// Dielectric computes dielectric reflectance at incidence cosine cosI, deriving
// the transmitted cosine from Snell's law. Returns 1 on total internal
// reflection. eta is the outside/inside refractive index ratio.
func Dielectric(cosI, eta float64) float64 {
	r, _ := DielectricEx(cosI, eta)
	return r
}

// DielectricEx is Dielectric but also returns the transmitted cosine for
// callers that need the refraction direction. The transmitted cosine is 0 on
// total internal reflection.
func DielectricEx(cosI, eta float64) (float64, float64) {
	sqrCosT := 1 - eta*eta*(1-cosI*cosI)
	if sqrCosT < 0 {
		return 1, 0 // total internal reflection
	}
	cosT := math.Sqrt(sqrCosT)
	return DielectricReflectance(cosI, cosT, eta), cosT
}

// DielectricAverage approximates the cosine-weighted hemispherical average of
// Dielectric with a closed-form fit, avoiding numeric integration at shading
// time. eta is the outside/inside refractive index ratio.
func DielectricAverage(eta float64) float64 {
	// The fit is parameterized by the inside/outside ratio
	e := core.SafeRcp(eta)
	if e >= 1 {
		return (e - 1) / (4.08567 + 1.00071*e)
	}
	return 0.997118 + 0.1014*e - 0.965241*e*e - 0.130607*e*e*e
}

// ConductorReflectance computes the reflectance of an absorbing medium from
// its complex refractive index (eta, k) at incidence cosine cosI.
// Precondition: eta > 0 when cosI may be 0; the degenerate combination
// eta == 0 && cosI == 0 is outside the contract.
func ConductorReflectance(cosI, eta, k float64) float64 {
	tmp := eta*eta + k*k
	cos2 := cosI * cosI
	rPar := (tmp*cos2 - 2*eta*cosI + 1) * core.SafeRcp(tmp*cos2+2*eta*cosI+1)
	rPerp := (tmp - 2*eta*cosI + cos2) * core.SafeRcp(tmp+2*eta*cosI+cos2)
	return 0.5 * (rPar + rPerp)
}

// ConductorRGB computes conductor reflectance per RGB channel
func ConductorRGB(cosI float64, eta, k core.Vec3) core.Vec3 {
	return core.NewVec3(
		ConductorReflectance(cosI, eta.X, k.X),
		ConductorReflectance(cosI, eta.Y, k.Y),
		ConductorReflectance(cosI, eta.Z, k.Z),
	)
}

// ConductorSpectral computes conductor reflectance per spectral sample and
// reconstructs the result into RGB by weighting each sample's reflectance with
// its RGB primary contribution. The result is clamped to [0,1].
func ConductorSpectral(cosI float64, eta, k spectrum.Spectrum) core.Vec3 {
	rgb := core.Vec3{}
	for i := 0; i < spectrum.SampleCount; i++ {
		r := ConductorReflectance(cosI, eta[i], k[i])
		rgb = rgb.Add(spectrum.RGBPrimary(i).Multiply(r))
	}
	return rgb.Clamp(0, 1)
}
