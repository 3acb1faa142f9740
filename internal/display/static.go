package display

import (
	"image"
	"image/color"
)

// Static is an Enumerator and Capturer for tests: it reports a fixed set of
// displays and captures each one as a solid fill.
type Static struct {
	Screens []Display
	Fill    color.Color
	// Err, when set, is returned by every Capture call.
	Err error

	Captures int
}

// NewStatic returns n displays of w x h laid out left to right.
func NewStatic(n, w, h int) *Static {
	s := &Static{Fill: color.RGBA{R: 0x20, G: 0x40, B: 0x80, A: 0xff}}
	for i := 0; i < n; i++ {
		s.Screens = append(s.Screens, Display{
			Index:  i,
			Bounds: image.Rect(i*w, 0, (i+1)*w, h),
		})
	}
	return s
}

func (s *Static) Displays() ([]Display, error) {
	return s.Screens, nil
}

func (s *Static) Capture(d Display) (image.Image, error) {
	s.Captures++
	if s.Err != nil {
		return nil, s.Err
	}

	img := image.NewRGBA(image.Rect(0, 0, d.Bounds.Dx(), d.Bounds.Dy()))
	for y := 0; y < img.Rect.Dy(); y++ {
		for x := 0; x < img.Rect.Dx(); x++ {
			img.Set(x, y, s.Fill)
		}
	}
	return img, nil
}
