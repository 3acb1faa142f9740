// Package display enumerates the screens available for capture and grabs
// still images of them.
//
// The display list is enumerated once at startup into a List and then only
// read. Capturing goes through the Capturer interface so the server can be
// exercised without a real screen.
package display

import (
	"fmt"
	"image"

	"github.com/nhdewitt/screenshare/internal/errkind"
)

// Display is a screen handle: its position in the enumeration order and the
// area of the virtual desktop it covers.
type Display struct {
	Index  int
	Bounds image.Rectangle
}

func (d Display) String() string {
	return fmt.Sprintf("display %d %dx%d at (%d,%d)", d.Index, d.Bounds.Dx(), d.Bounds.Dy(), d.Bounds.Min.X, d.Bounds.Min.Y)
}

type Enumerator interface {
	Displays() ([]Display, error)
}

type Capturer interface {
	Capture(d Display) (image.Image, error)
}

// List is an ordered, immutable set of displays.
type List struct {
	displays []Display
}

func NewList(displays ...Display) List {
	return List{displays: append([]Display(nil), displays...)}
}

// Enumerate asks e for the current displays once and freezes the result.
func Enumerate(e Enumerator) (List, error) {
	displays, err := e.Displays()
	if err != nil {
		return List{}, errkind.New(errkind.CaptureFailure, "enumerate displays", err)
	}
	return NewList(displays...), nil
}

func (l List) Len() int {
	return len(l.displays)
}

func (l List) At(i int) (Display, bool) {
	if i < 0 || i >= len(l.displays) {
		return Display{}, false
	}
	return l.displays[i], true
}

// All returns a copy of the displays in enumeration order.
func (l List) All() []Display {
	return append([]Display(nil), l.displays...)
}
