package route

import (
	"log"

	"github.com/nhdewitt/screenshare/internal/display"
	"github.com/nhdewitt/screenshare/internal/request"
	"github.com/nhdewitt/screenshare/internal/response"
)

// Responder answers screen requests from a fixed display list.
type Responder struct {
	displays display.List
	capturer display.Capturer
}

func NewResponder(displays display.List, capturer display.Capturer) *Responder {
	return &Responder{
		displays: displays,
		capturer: capturer,
	}
}

// Respond queues a 200 with the PNG capture of the requested screen, or a
// 404 when the path names no existing screen. If the capture fails a 404 is
// still queued and the capture error is returned.
func (rs *Responder) Respond(w *response.Writer, req *request.Request) error {
	path := req.RequestLine.RequestTarget

	screen, found, err := Resolve(path)
	if err != nil {
		log.Printf("Not handling request for '%s': %v", path, err)
		return NotFound(w)
	}
	if !found {
		log.Printf("Not handling request for '%s'", path)
		return NotFound(w)
	}

	d, ok := rs.displays.At(int(screen))
	if !ok {
		log.Printf("Not handling request for '%s': %d displays available", path, rs.displays.Len())
		return NotFound(w)
	}

	log.Printf("Handling request to share screen id %d (%s)", screen, d)

	body, err := display.CapturePNG(rs.capturer, d)
	if err != nil {
		if werr := NotFound(w); werr != nil {
			return werr
		}
		return err
	}

	if err := w.WriteStatusLine(response.StatusOK); err != nil {
		return err
	}
	if err := w.WriteHeaders(response.ImageHeaders(len(body))); err != nil {
		return err
	}
	_, err = w.WriteBody(body)
	return err
}

// NotFound queues an empty 404.
func NotFound(w *response.Writer) error {
	return w.WriteEmpty(response.StatusNotFound)
}
