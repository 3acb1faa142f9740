package display

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"

	"github.com/nhdewitt/screenshare/internal/errkind"
)

// Screens enumerates and captures the active displays of the local machine.
type Screens struct{}

func (Screens) Displays() ([]Display, error) {
	n := screenshot.NumActiveDisplays()

	displays := make([]Display, 0, n)
	for i := 0; i < n; i++ {
		displays = append(displays, Display{
			Index:  i,
			Bounds: screenshot.GetDisplayBounds(i),
		})
	}

	return displays, nil
}

func (Screens) Capture(d Display) (image.Image, error) {
	img, err := screenshot.CaptureRect(d.Bounds)
	if err != nil {
		return nil, errkind.New(errkind.CaptureFailure, fmt.Sprintf("capture display %d", d.Index), err)
	}
	return img, nil
}
