package response

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nhdewitt/screenshare/internal/headers"
)

const crlf = "\r\n"

func WriteStatusLine(w io.Writer, statusCode StatusCode) error {
	reason, ok := statusCode.reason()
	if !ok {
		return fmt.Errorf("unsupported status code: %d", int(statusCode))
	}
	_, err := io.WriteString(w, "HTTP/1.1 "+strconv.Itoa(int(statusCode))+" "+reason+crlf)
	return err
}

// ImageHeaders returns the headers of a PNG body of contentLen bytes.
func ImageHeaders(contentLen int) headers.Headers {
	h := headers.NewHeaders()
	h.Set("Content-Type", "image/png")
	h.Set("Content-Length", strconv.Itoa(contentLen))

	return h
}

// WriteHeaders writes h in name order followed by the blank line. A nil h
// writes only the blank line.
func WriteHeaders(w io.Writer, h headers.Headers) error {
	caser := cases.Title(language.English)
	for _, k := range slices.Sorted(maps.Keys(h)) {
		line := caser.String(k) + ": " + h[k]
		if _, err := io.WriteString(w, line+crlf); err != nil {
			return fmt.Errorf("error writing header: %w", err)
		}
	}
	_, err := io.WriteString(w, crlf)
	return err
}
