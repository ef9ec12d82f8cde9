package textmode

import (
	"image"
	"image/color"
)

// ImageDisplay adapts an RGBA image to drivers.Displayer.
type ImageDisplay struct {
	Img *image.RGBA
}

// NewImage allocates an image sized for s and draws s into it.
func NewImage(s *Screen) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.Cols()*CellWidth, s.Rows()*CellHeight))
	s.Draw(ImageDisplay{Img: img})
	return img
}

func (d ImageDisplay) Size() (x, y int16) {
	if d.Img == nil {
		return 0, 0
	}
	b := d.Img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d ImageDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.Img == nil {
		return
	}
	d.Img.SetRGBA(int(x), int(y), c)
}

func (d ImageDisplay) Display() error { return nil }
