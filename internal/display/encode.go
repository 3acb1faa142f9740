package display

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/nhdewitt/screenshare/internal/errkind"
)

func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errkind.New(errkind.CaptureFailure, "encode png", err)
	}
	return buf.Bytes(), nil
}

// CapturePNG captures d with c and returns the PNG encoding.
func CapturePNG(c Capturer, d Display) ([]byte, error) {
	img, err := c.Capture(d)
	if err != nil {
		if errkind.KindOf(err) == errkind.Unknown {
			err = errkind.New(errkind.CaptureFailure, fmt.Sprintf("capture display %d", d.Index), err)
		}
		return nil, err
	}
	return EncodePNG(img)
}
