// Command sketch renders a seeded generative sketch to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/generative"
)

type dot struct {
	center generative.Point
	radius float64
	fill   color.NRGBA
}

func main() {
	var (
		width  = flag.Int("width", 800, "image width")
		height = flag.Int("height", 600, "image height")
		count  = flag.Int("count", 120, "number of dots")
		seed   = flag.Uint64("seed", 1, "random seed")
		output = flag.String("output", "sketch.png", "output file")
		debug  = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	generative.SetLogger(logger)

	rng := generative.NewRand(*seed)
	dots := scatter(rng, *count, float64(*width), float64(*height))

	img := image.NewRGBA(image.Rect(0, 0, *width, *height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 16, G: 18, B: 28, A: 255}), image.Point{}, draw.Src)

	links := drawLinks(img, dots, float64(*width)/8)
	for _, d := range dots {
		fillCircle(img, d.center, d.radius, d.fill)
	}
	caption(img, fmt.Sprintf("seed %d  dots %d  links %d", *seed, len(dots), links))

	if err := savePNG(*output, img); err != nil {
		logger.Error("failed to save sketch", "err", err)
		os.Exit(1)
	}
	logger.Info("sketch saved", "output", *output, "width", *width, "height", *height)
}

// scatter places dots at random positions. Dots grow toward the center of
// the canvas and fade from blue at the left edge to orange at the right.
func scatter(rng *generative.Rand, n int, w, h float64) []dot {
	center := generative.Pt(w/2, h/2)
	maxDist := generative.Dist(0, 0, center.X, center.Y)

	dots := make([]dot, 0, n)
	for range n {
		p := generative.Pt(rng.RandomFloat(0, w), rng.RandomFloat(0, h))
		d := generative.DistPt(p, center)
		radius := generative.MapRange(d, 0, maxDist, 28, 3) + rng.Random(-2, 3)
		radius = generative.Constrain(radius, 2, 32)

		t := generative.MapRange(p.X, 0, w, 0, 1)
		alpha := generative.Constrain(generative.MapRange(d, 0, maxDist, 230, 90), 0, 255)
		dots = append(dots, dot{
			center: p,
			radius: radius,
			fill: color.NRGBA{
				R: uint8(generative.Interp(60, 250, t)),
				G: uint8(generative.InterpMid(120, 160)),
				B: uint8(generative.Interp(240, 60, t)),
				A: uint8(alpha),
			},
		})
	}
	return dots
}

// drawLinks joins every pair of dots closer than maxLen and returns the
// number of links drawn.
func drawLinks(dst draw.Image, dots []dot, maxLen float64) int {
	links := 0
	for i := range dots {
		for j := i + 1; j < len(dots); j++ {
			a, b := dots[i].center, dots[j].center
			d := generative.DistPt(a, b)
			if d > maxLen {
				continue
			}
			alpha := uint8(generative.MapRange(d, 0, maxLen, 120, 0))
			strokeLine(dst, a, b, 1, color.NRGBA{R: 200, G: 210, B: 255, A: alpha})
			links++
		}
	}
	generative.Logger().Debug("links drawn", "count", links, "maxLen", maxLen)
	return links
}

func fillCircle(dst draw.Image, c generative.Point, r float64, col color.Color) {
	const segments = 48
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	for i := range segments + 1 {
		angle := generative.MapRange(float64(i), 0, segments, 0, 2*math.Pi)
		p := c.Add(generative.Pt(math.Cos(angle), math.Sin(angle)).Mul(r))
		if i == 0 {
			z.MoveTo(float32(p.X), float32(p.Y))
			continue
		}
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(col), image.Point{})
}

func strokeLine(dst draw.Image, a, b generative.Point, width float64, col color.Color) {
	length := generative.DistPt(a, b)
	if length == 0 {
		return
	}
	dir := b.Sub(a).Mul(1 / length)
	n := generative.Pt(-dir.Y, dir.X).Mul(width / 2)

	bounds := dst.Bounds()
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	for i, p := range []generative.Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)} {
		if i == 0 {
			z.MoveTo(float32(p.X), float32(p.Y))
			continue
		}
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	z.Draw(dst, bounds, image.NewUniform(col), image.Point{})
}

func caption(dst draw.Image, text string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{R: 230, G: 230, B: 230, A: 255}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(10, dst.Bounds().Dy()-10),
	}
	d.DrawString(text)
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
