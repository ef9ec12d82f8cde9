// Command cubeshot renders one frame of the spinning cube offline and writes it
// as a PNG or BMP screenshot.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"vgacube/cubeos/tasks/spincube"
	"vgacube/cubeos/textmode"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

func main() {
	var (
		frames  = flag.Int("frames", 0, "Animation iterations to run before the captured frame.")
		outPath = flag.String("o", "cube.png", "Output file (.png or .bmp).")
		scale   = flag.Int("scale", 1, "Integer pixel zoom.")
	)
	flag.Parse()

	if *frames < 0 || *scale < 1 {
		fatalf("usage: cubeshot [-frames N] [-scale K] [-o out.png|out.bmp]")
	}

	scr, err := capture(*frames)
	if err != nil {
		fatalf("render: %v", err)
	}
	if err := writeImage(*outPath, scaleImage(textmode.NewImage(scr), *scale)); err != nil {
		fatalf("write %s: %v", *outPath, err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// screenText is a text mode backed by an in-memory screen.
type screenText struct {
	*textmode.Screen
}

func (screenText) Present() error { return nil }

// capture runs the animation for n iterations and returns the screen holding
// frame n.
func capture(n int) (*textmode.Screen, error) {
	out := screenText{Screen: textmode.NewScreen(textmode.Cols, textmode.Rows)}
	task := spincube.New(out, nil, spincube.Config{})
	for i := 0; i <= n; i++ {
		if err := task.Step(); err != nil {
			return nil, err
		}
	}
	return out.Screen, nil
}

func scaleImage(src *image.RGBA, k int) image.Image {
	if k <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*k, b.Dy()*k))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func writeImage(path string, img image.Image) error {
	enc, err := encoderFor(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := enc(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encoderFor(path string) (func(io.Writer, image.Image) error, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return png.Encode, nil
	case ".bmp":
		return bmp.Encode, nil
	default:
		return nil, fmt.Errorf("unsupported image format %q", ext)
	}
}
