// Render the fluid animation without a browser and save the last frame as png
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/llgcode/draw2d/draw2dimg"

	"github.com/stdiopt/gowasm-portfolio/fluid"
	"github.com/stdiopt/gowasm-portfolio/raster"
)

func main() {
	configPath := flag.String("config", "", "yaml options file")
	frames := flag.Int("frames", -1, "frames to render, overrides config")
	out := flag.String("o", "", "output png, overrides config")
	flag.Parse()

	opts, err := LoadOptions(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *frames >= 0 {
		opts.Frames = *frames
	}
	if *out != "" {
		opts.Out = *out
	}

	surf, err := Render(opts)
	if err != nil {
		log.Fatal(err)
	}
	if err := draw2dimg.SaveToPngFile(opts.Out, surf.Image()); err != nil {
		log.Fatal("save: ", err)
	}
	log.Printf("wrote %s (%dx%d, %d frames)", opts.Out, opts.Width, opts.Height, opts.Frames)
}

// Render runs opts.Frames ticks on a fresh surface.
func Render(opts Options) (*raster.Surface, error) {
	surf := raster.New(opts.Width, opts.Height)
	anim, err := fluid.New(surf, opts.Fluid, rand.New(rand.NewSource(opts.Seed)))
	if err != nil {
		return nil, err
	}
	for i := 0; i < opts.Frames; i++ {
		anim.Frame()
	}
	if opts.Caption {
		label := fmt.Sprintf("frame %d  seed %d  particles %d", anim.Frames(), opts.Seed, anim.Pool().Len())
		if err := surf.Caption(label, 12, 8, float64(opts.Height)-8, color.White); err != nil {
			return nil, fmt.Errorf("caption: %w", err)
		}
	}
	return surf, nil
}
