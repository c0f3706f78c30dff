package fresnel

import (
	"github.com/df07/go-fresnel/pkg/core"
	"github.com/df07/go-fresnel/pkg/spectrum"
)

// Preset bundles a named conductor's measured complex refractive index,
// tabulated at the RGB primary wavelengths (~610, 550, 465 nm).
type Preset struct {
	Name string
	Eta  core.Vec3
	K    core.Vec3
}

var presets = []Preset{
	{Name: "gold", Eta: core.NewVec3(0.143, 0.375, 1.442), K: core.NewVec3(3.983, 2.386, 1.603)},
	{Name: "silver", Eta: core.NewVec3(0.159, 0.145, 0.135), K: core.NewVec3(3.929, 3.190, 2.381)},
	{Name: "copper", Eta: core.NewVec3(0.200, 0.924, 1.102), K: core.NewVec3(3.912, 2.448, 2.138)},
	{Name: "aluminum", Eta: core.NewVec3(1.345, 0.965, 0.617), K: core.NewVec3(7.475, 6.400, 5.303)},
	{Name: "titanium", Eta: core.NewVec3(2.741, 2.542, 2.263), K: core.NewVec3(3.814, 3.435, 3.039)},
}

// Presets returns the built-in conductor presets
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// PresetByName looks up a built-in conductor preset by name
func PresetByName(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Measured spectral (eta, k) curves for the spectral conductor, resampled from
// tabulated data onto the fixed sample grid.

var goldTable = struct {
	lambda, eta, k []float64
}{
	lambda: []float64{400, 450, 500, 550, 600, 650, 700},
	eta:    []float64{1.658, 1.426, 0.855, 0.331, 0.249, 0.166, 0.161},
	k:      []float64{1.956, 1.846, 1.895, 2.324, 2.990, 3.150, 3.952},
}

var silverTable = struct {
	lambda, eta, k []float64
}{
	lambda: []float64{400, 450, 500, 550, 600, 650, 700},
	eta:    []float64{0.173, 0.151, 0.130, 0.125, 0.124, 0.135, 0.142},
	k:      []float64{1.950, 2.470, 2.920, 3.340, 3.730, 4.100, 4.520},
}

// GoldSpectrum returns gold's (eta, k) resampled onto the spectral grid
func GoldSpectrum() (eta, k spectrum.Spectrum) {
	return spectrum.FromSamples(goldTable.lambda, goldTable.eta),
		spectrum.FromSamples(goldTable.lambda, goldTable.k)
}

// SilverSpectrum returns silver's (eta, k) resampled onto the spectral grid
func SilverSpectrum() (eta, k spectrum.Spectrum) {
	return spectrum.FromSamples(silverTable.lambda, silverTable.eta),
		spectrum.FromSamples(silverTable.lambda, silverTable.k)
}
