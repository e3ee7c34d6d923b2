package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"teddy/raycast"
	"teddy/scene"

	"golang.org/x/image/draw"
)

type shotConfig struct {
	width  int
	height int
	scale  int
	yaw    float64
	pitch  float64
}

func main() {
	var (
		outPath = flag.String("out", "", "Output PNG file.")
		cfg     shotConfig
	)
	flag.IntVar(&cfg.width, "width", 800, "Render width.")
	flag.IntVar(&cfg.height, "height", 600, "Render height.")
	flag.IntVar(&cfg.scale, "scale", 1, "Nearest-neighbor upscale factor applied after rendering.")
	flag.Float64Var(&cfg.yaw, "yaw", 0, "Orbit yaw before rendering (radians).")
	flag.Float64Var(&cfg.pitch, "pitch", 0, "Orbit pitch before rendering (radians).")
	flag.Parse()

	if *outPath == "" {
		fatalf("usage: teddyshot -out bear.png [-width 800] [-height 600] [-scale 1] [-yaw 0] [-pitch 0]")
	}

	f, err := os.Create(*outPath)
	if err != nil {
		fatalf("create: %v", err)
	}
	if err := shoot(f, cfg); err != nil {
		_ = f.Close()
		fatalf("render: %v", err)
	}
	if err := f.Close(); err != nil {
		fatalf("close: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// shoot renders the bear once and writes it to w as PNG.
func shoot(w io.Writer, cfg shotConfig) error {
	if cfg.scale <= 0 || cfg.scale > 16 {
		return fmt.Errorf("scale out of range: %d", cfg.scale)
	}
	fb, err := raycast.NewFramebuffer(cfg.width, cfg.height)
	if err != nil {
		return err
	}

	cam := scene.DefaultCamera()
	if cfg.yaw != 0 || cfg.pitch != 0 {
		cam.Orbit(float32(cfg.yaw), float32(cfg.pitch))
	}
	raycast.Render(fb, scene.Bear(), cam)

	var img image.Image = fb.Image()
	if cfg.scale > 1 {
		dst := image.NewRGBA(image.Rect(0, 0, cfg.width*cfg.scale, cfg.height*cfg.scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = dst
	}
	return png.Encode(w, img)
}
