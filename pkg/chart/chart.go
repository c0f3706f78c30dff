// Package chart renders reflectance-vs-angle curves for Fresnel models into
// images for quick visual inspection of material parameters.
package chart

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"

	"github.com/df07/go-fresnel/pkg/core"
	"github.com/df07/go-fresnel/pkg/fresnel"
)

// Options configures a chart render
type Options struct {
	Width       int  // output width in pixels (default 512)
	Height      int  // output height in pixels (default 320)
	Supersample int  // render scale before downscaling (default 3)
	ShowAverage bool // draw horizontal markers at each model's hemispherical average
}

// Series is one labeled Fresnel model to plot
type Series struct {
	Label string
	Model fresnel.Fresnel
}

var (
	background = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	gridColor  = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	axisColor  = color.RGBA{R: 120, G: 120, B: 120, A: 255}
)

// channelColors are the plot colors for the R, G, B reflectance curves
var channelColors = [3]color.RGBA{
	{R: 200, G: 40, B: 40, A: 255},
	{R: 40, G: 160, B: 40, A: 255},
	{R: 40, G: 70, B: 200, A: 255},
}

func (o Options) normalized() Options {
	if o.Width <= 0 {
		o.Width = 512
	}
	if o.Height <= 0 {
		o.Height = 320
	}
	if o.Supersample <= 0 {
		o.Supersample = 3
	}
	return o
}

// Render plots reflectance (y, in [0,1]) against incidence angle (x, from
// normal incidence on the left to grazing on the right) for each series. The
// plot is rendered supersampled and downscaled for smooth curves.
func Render(series []Series, opts Options) *image.RGBA {
	opts = opts.normalized()
	ss := opts.Supersample
	w := opts.Width * ss
	h := opts.Height * ss

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(img, background)

	pad := 10 * ss
	plot := image.Rect(pad, pad, w-pad, h-pad)

	// Horizontal gridlines at reflectance 0.25, 0.5, 0.75
	for _, level := range []float64{0.25, 0.5, 0.75} {
		y := reflectanceToY(level, plot)
		for x := plot.Min.X; x < plot.Max.X; x++ {
			img.SetRGBA(x, y, gridColor)
		}
	}
	// Axes: reflectance 0 and 1
	for _, level := range []float64{0, 1} {
		y := reflectanceToY(level, plot)
		for x := plot.Min.X; x < plot.Max.X; x++ {
			img.SetRGBA(x, y, axisColor)
		}
	}

	for _, s := range series {
		drawCurves(img, plot, s.Model)
		if opts.ShowAverage {
			drawAverage(img, plot, s.Model)
		}
	}

	// Downscale for smooth curves
	out := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	return out
}

// drawCurves plots the three reflectance channels of one model
func drawCurves(img *image.RGBA, plot image.Rectangle, model fresnel.Fresnel) {
	width := plot.Dx()
	prev := [3]int{}
	for x := 0; x < width; x++ {
		// Left edge is normal incidence, right edge is grazing
		theta := float64(x) / float64(width-1) * math.Pi / 2
		cosI := math.Cos(theta)
		v := model.Evaluate(cosI).Clamp(0, 1)

		ys := [3]int{
			reflectanceToY(v.X, plot),
			reflectanceToY(v.Y, plot),
			reflectanceToY(v.Z, plot),
		}
		for c := 0; c < 3; c++ {
			px := plot.Min.X + x
			if x == 0 {
				img.SetRGBA(px, ys[c], channelColors[c])
			} else {
				drawSegment(img, px, prev[c], ys[c], channelColors[c])
			}
		}
		prev = ys
	}
}

// drawAverage draws a dashed horizontal marker per channel at the model's
// hemispherical average; a zero average means no fit is available
func drawAverage(img *image.RGBA, plot image.Rectangle, model fresnel.Fresnel) {
	avg := model.EvaluateAverage()
	if avg.Equals(core.Vec3{}) {
		return
	}
	levels := [3]float64{avg.X, avg.Y, avg.Z}
	for c, level := range levels {
		y := reflectanceToY(level, plot)
		for x := plot.Min.X; x < plot.Max.X; x++ {
			if (x/6)%2 == 0 {
				img.SetRGBA(x, y, channelColors[c])
			}
		}
	}
}

// drawSegment fills the vertical span between the previous and current sample
// at column x so steep curves stay connected
func drawSegment(img *image.RGBA, x, yPrev, y int, col color.RGBA) {
	lo, hi := yPrev, y
	if lo > hi {
		lo, hi = hi, lo
	}
	for yy := lo; yy <= hi; yy++ {
		img.SetRGBA(x, yy, col)
	}
}

func reflectanceToY(v float64, plot image.Rectangle) int {
	y := plot.Max.Y - 1 - int(v*float64(plot.Dy()-1)+0.5)
	if y < plot.Min.Y {
		y = plot.Min.Y
	}
	if y > plot.Max.Y-1 {
		y = plot.Max.Y - 1
	}
	return y
}

func fill(img *image.RGBA, col color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, col)
		}
	}
}

// Encode writes the image in the given format ("webp" or "png")
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "webp":
		return nativewebp.Encode(w, img, nil)
	case "png":
		return png.Encode(w, img)
	default:
		return fmt.Errorf("unsupported chart format %q", format)
	}
}

// Save writes the image to path, picking the format from the file extension
// (.webp or .png)
func Save(img image.Image, path string) error {
	format := ""
	switch filepath.Ext(path) {
	case ".webp":
		format = "webp"
	case ".png":
		format = "png"
	default:
		return fmt.Errorf("unsupported chart extension %q", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()

	if err := Encode(f, img, format); err != nil {
		return fmt.Errorf("encoding chart: %w", err)
	}
	return nil
}
