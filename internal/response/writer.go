package response

import (
	"bytes"
	"fmt"
	"io"

	"github.com/nhdewitt/screenshare/internal/errkind"
	"github.com/nhdewitt/screenshare/internal/headers"
)

type writerState int

const (
	StateWritingStatusLine writerState = iota
	StateWritingHeaders
	StateWritingBody
	StateDone
	StateFlushed
)

// Writer assembles a whole response in memory and sends it to the
// connection with a single Flush.
type Writer struct {
	writer io.Writer
	buf    bytes.Buffer
	state  writerState
	status StatusCode
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		writer: w,
		state:  StateWritingStatusLine,
	}
}

func (w *Writer) WriteStatusLine(statusCode StatusCode) error {
	if w.state != StateWritingStatusLine {
		return fmt.Errorf("writer state out-of-order")
	}
	if err := WriteStatusLine(&w.buf, statusCode); err != nil {
		return err
	}

	w.status = statusCode
	w.state = StateWritingHeaders
	return nil
}

func (w *Writer) WriteHeaders(h headers.Headers) error {
	if w.state != StateWritingHeaders {
		return fmt.Errorf("writer state out-of-order")
	}
	if err := WriteHeaders(&w.buf, h); err != nil {
		return err
	}

	w.state = StateWritingBody
	return nil
}

func (w *Writer) WriteBody(p []byte) (int, error) {
	if w.state != StateWritingBody {
		return 0, fmt.Errorf("writer state out-of-order")
	}

	w.state = StateDone
	return w.buf.Write(p)
}

// WriteEmpty queues a status line with no headers and no body.
func (w *Writer) WriteEmpty(statusCode StatusCode) error {
	if err := w.WriteStatusLine(statusCode); err != nil {
		return err
	}
	if err := w.WriteHeaders(nil); err != nil {
		return err
	}
	w.state = StateDone
	return nil
}

// Status returns the queued status code, or 0 if none was written.
func (w *Writer) Status() StatusCode {
	return w.status
}

// Complete reports whether a full response is queued and ready to flush.
func (w *Writer) Complete() bool {
	return w.state == StateDone
}

func (w *Writer) Flushed() bool {
	return w.state == StateFlushed
}

// Reset drops anything queued so a different response can be written.
// It has no effect once the response was flushed.
func (w *Writer) Reset() {
	if w.state == StateFlushed {
		return
	}
	w.buf.Reset()
	w.status = 0
	w.state = StateWritingStatusLine
}

// Flush sends the queued response in one write. A short write is reported
// as an error, not retried.
func (w *Writer) Flush() error {
	if w.state == StateFlushed {
		return nil
	}
	if w.state == StateWritingStatusLine {
		return fmt.Errorf("nothing to flush")
	}

	w.state = StateFlushed
	n, err := w.writer.Write(w.buf.Bytes())
	if err == nil && n < w.buf.Len() {
		err = io.ErrShortWrite
	}
	w.buf.Reset()
	if err != nil {
		return errkind.New(errkind.IoError, "write response", err)
	}
	return nil
}
