package headers

import (
	"bytes"

	"github.com/nhdewitt/screenshare/internal/errkind"
)

const (
	crlf      = "\r\n"
	separator = ": "
)

// Headers maps field names, exactly as received, to their values.
type Headers map[string]string

func NewHeaders() Headers {
	return map[string]string{}
}

// Parse consumes at most one CRLF-terminated line from data. It returns
// (0, false, nil) when no full line is available yet and (2, true, nil) on
// the blank line that ends the header block.
func (h Headers) Parse(data []byte) (n int, done bool, err error) {
	idx := bytes.Index(data, []byte(crlf))
	if idx == -1 {
		return 0, false, nil
	}
	if idx == 0 {
		return len(crlf), true, nil
	}

	line := data[:idx]
	name, value, ok := bytes.Cut(line, []byte(separator))
	if !ok {
		return 0, false, errkind.Newf(errkind.MalformedRequest, "parse header", "no %q in %q", separator, line)
	}

	h.Set(string(name), string(value))

	return idx + len(crlf), false, nil
}

// Set replaces any previous value for key.
func (h Headers) Set(key, value string) {
	h[key] = value
}

func (h Headers) Get(key string) (value string, ok bool) {
	value, ok = h[key]
	return value, ok
}

func (h Headers) Del(key string) {
	delete(h, key)
}
