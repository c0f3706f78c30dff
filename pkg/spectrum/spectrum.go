package spectrum

import (
	"math"

	"github.com/df07/go-fresnel/pkg/core"
)

// Spectral values are sampled on a fixed uniform grid over the visible range.
const (
	SampleCount = 32    // number of spectral samples
	LambdaMin   = 400.0 // nm
	LambdaMax   = 700.0 // nm
)

// Spectrum holds one value per spectral sample
type Spectrum [SampleCount]float64

// Wavelength returns the center wavelength in nm of sample i
func Wavelength(i int) float64 {
	step := (LambdaMax - LambdaMin) / SampleCount
	return LambdaMin + (float64(i)+0.5)*step
}

// NewConstantSpectrum creates a spectrum with the same value in every sample
func NewConstantSpectrum(v float64) Spectrum {
	var s Spectrum
	for i := range s {
		s[i] = v
	}
	return s
}

// FromSamples resamples tabulated (wavelength, value) pairs onto the fixed grid
// using piecewise-linear interpolation. Wavelengths must be sorted ascending;
// samples outside the tabulated range clamp to the nearest end value.
func FromSamples(wavelengths, values []float64) Spectrum {
	var s Spectrum
	if len(wavelengths) == 0 || len(wavelengths) != len(values) {
		return s
	}
	for i := range s {
		s[i] = interpolate(Wavelength(i), wavelengths, values)
	}
	return s
}

func interpolate(lambda float64, wavelengths, values []float64) float64 {
	if lambda <= wavelengths[0] {
		return values[0]
	}
	last := len(wavelengths) - 1
	if lambda >= wavelengths[last] {
		return values[last]
	}
	// Find the bracketing segment
	hi := 1
	for wavelengths[hi] < lambda {
		hi++
	}
	lo := hi - 1
	t := (lambda - wavelengths[lo]) / (wavelengths[hi] - wavelengths[lo])
	return values[lo] + (values[hi]-values[lo])*t
}

// Add returns the componentwise sum of two spectra
func (s Spectrum) Add(other Spectrum) Spectrum {
	var out Spectrum
	for i := range s {
		out[i] = s[i] + other[i]
	}
	return out
}

// Scale returns the spectrum scaled by a scalar
func (s Spectrum) Scale(v float64) Spectrum {
	var out Spectrum
	for i := range s {
		out[i] = s[i] * v
	}
	return out
}

// Lerp interpolates componentwise between s (t=0) and other (t=1)
func (s Spectrum) Lerp(other Spectrum, t float64) Spectrum {
	var out Spectrum
	for i := range s {
		out[i] = s[i] + (other[i]-s[i])*t
	}
	return out
}

// ToRGB reconstructs the spectrum into an RGB color by weighting each sample
// with its RGB primary contribution and summing
func (s Spectrum) ToRGB() core.Vec3 {
	rgb := core.Vec3{}
	for i := range s {
		rgb = rgb.Add(RGBPrimary(i).Multiply(s[i]))
	}
	return rgb
}

// rgbPrimaries holds the per-sample RGB contribution weights. Each channel is
// a Gaussian fit to the corresponding display primary's sensitivity, normalized
// so a flat unit spectrum reconstructs to (1,1,1).
var rgbPrimaries [SampleCount]core.Vec3

// RGBPrimary returns the RGB contribution weights of spectral sample i
func RGBPrimary(i int) core.Vec3 {
	return rgbPrimaries[i]
}

func init() {
	// Gaussian centers and widths for the R, G, B primaries in nm
	const (
		muR, sigmaR = 610.0, 40.0
		muG, sigmaG = 550.0, 35.0
		muB, sigmaB = 465.0, 30.0
	)
	var sum core.Vec3
	for i := range rgbPrimaries {
		lambda := Wavelength(i)
		w := core.NewVec3(
			gaussian(lambda, muR, sigmaR),
			gaussian(lambda, muG, sigmaG),
			gaussian(lambda, muB, sigmaB),
		)
		rgbPrimaries[i] = w
		sum = sum.Add(w)
	}
	inv := sum.Reciprocal()
	for i := range rgbPrimaries {
		rgbPrimaries[i] = rgbPrimaries[i].MultiplyVec(inv)
	}
}

func gaussian(x, mu, sigma float64) float64 {
	d := (x - mu) / sigma
	return math.Exp(-0.5 * d * d)
}
