package route

import (
	"regexp"
	"strconv"

	"github.com/nhdewitt/screenshare/internal/errkind"
)

// Screen is a zero-based display index taken from a request path. It has not
// been checked against the displays that actually exist.
type Screen int

var screenPath = regexp.MustCompile(`^/screen/(\d+)$`)

// Resolve maps a request path to a screen. "/" is screen 0 and
// "/screen/<n>" is screen n-1; everything else, including "/screen/0", is
// not found. The only error is a number too large for an int.
func Resolve(path string) (Screen, bool, error) {
	if path == "/" {
		return 0, true, nil
	}

	m := screenPath.FindStringSubmatch(path)
	if m == nil {
		return 0, false, nil
	}

	n, err := strconv.ParseUint(m[1], 10, strconv.IntSize-1)
	if err != nil {
		return 0, false, errkind.New(errkind.InvalidScreenNumber, "resolve "+path, err)
	}
	if n == 0 {
		return 0, false, nil
	}

	return Screen(n - 1), true, nil
}
