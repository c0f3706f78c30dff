package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-fresnel/pkg/chart"
	"github.com/df07/go-fresnel/pkg/core"
	"github.com/df07/go-fresnel/pkg/fresnel"
)

func main() {
	// Parse command line flags
	material := flag.String("material", "gold", "Material to chart (see -help for the list)")
	out := flag.String("out", "", "Output file (.webp or .png); defaults to output/fresnel_<material>.webp")
	width := flag.Int("width", 512, "Chart width in pixels")
	height := flag.Int("height", 320, "Chart height in pixels")
	average := flag.Bool("average", true, "Draw hemispherical average markers where a closed-form fit exists")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Fresnel Reflectance Charts")
		fmt.Println("Usage: fresnel [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available materials:")
		for _, p := range fresnel.Presets() {
			fmt.Printf("  %-16s- measured RGB conductor\n", p.Name)
		}
		fmt.Println("  gold-spectral   - gold from sampled spectral (eta, k)")
		fmt.Println("  silver-spectral - silver from sampled spectral (eta, k)")
		fmt.Println("  schlick         - power-5 approximation of a typical dielectric")
		fmt.Println("  artistic-gold   - gold from reflectivity and edge tint")
		fmt.Println()
		fmt.Println("Charts plot reflectance per RGB channel from normal incidence (left)")
		fmt.Println("to grazing incidence (right).")
		return
	}

	arena := fresnel.NewArena()
	model, err := createModel(arena, *material)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	outPath := *out
	if outPath == "" {
		outPath = filepath.Join("output", fmt.Sprintf("fresnel_%s.webp", *material))
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	startTime := time.Now()
	img := chart.Render([]chart.Series{{Label: *material, Model: model}}, chart.Options{
		Width:       *width,
		Height:      *height,
		ShowAverage: *average,
	})
	if err := chart.Save(img, outPath); err != nil {
		fmt.Printf("Error saving chart: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s in %v\n", outPath, time.Since(startTime))
}

// createModel builds the Fresnel model for a material name in the given arena
func createModel(arena *fresnel.Arena, name string) (fresnel.Fresnel, error) {
	switch name {
	case "gold-spectral":
		eta, k := fresnel.GoldSpectrum()
		return fresnel.NewSpectralConductor(arena, eta, k), nil
	case "silver-spectral":
		eta, k := fresnel.SilverSpectrum()
		return fresnel.NewSpectralConductor(arena, eta, k), nil
	case "schlick":
		// Typical dielectric: 4% normal reflectance rising to white at grazing
		return fresnel.NewSchlick(arena, core.NewVec3Uniform(0.04), core.NewVec3Uniform(1)), nil
	case "artistic-gold":
		return fresnel.NewArtisticConductor(arena,
			core.NewVec3(0.94, 0.78, 0.37), core.NewVec3(1.0, 0.79, 0.35)), nil
	}

	if p, ok := fresnel.PresetByName(name); ok {
		return fresnel.NewConductor(arena, p.Eta, p.K), nil
	}
	return nil, fmt.Errorf("unknown material %q (run with -help for the list)", name)
}
