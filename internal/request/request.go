package request

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/nhdewitt/screenshare/internal/config"
	"github.com/nhdewitt/screenshare/internal/errkind"
	"github.com/nhdewitt/screenshare/internal/headers"
)

type requestState int

const (
	crlf = "\r\n"

	stateRequestLine requestState = iota
	stateHeaders
	stateDone
)

type Request struct {
	RequestLine RequestLine
	Headers     headers.Headers
	state       requestState
}

type RequestLine struct {
	HttpVersion   string
	RequestTarget string
	Method        string
}

func RequestFromReader(reader io.Reader) (*Request, error) {
	return RequestFromReaderSize(reader, config.DefaultReadChunkSize, config.DefaultMaxRequestSize)
}

// RequestFromReaderSize reads chunkSize bytes at a time until a read comes
// back short, then parses what was collected. Content-Length and chunked
// bodies are not honored; anything after the header block is ignored.
func RequestFromReaderSize(reader io.Reader, chunkSize, maxSize int) (*Request, error) {
	data, err := readAvailable(reader, chunkSize, maxSize)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, errkind.Newf(errkind.MalformedRequest, "decode request", "not valid UTF-8")
	}
	// a final line cut off by the end of data still counts as a line
	if !bytes.HasSuffix(data, []byte(crlf)) {
		data = append(data, crlf...)
	}

	r := Request{
		Headers: headers.NewHeaders(),
		state:   stateRequestLine,
	}

	for r.state != stateDone && len(data) > 0 {
		n, err := r.parse(data)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			break
		}
		data = data[n:]
	}

	return &r, nil
}

func readAvailable(reader io.Reader, chunkSize, maxSize int) ([]byte, error) {
	var received bytes.Buffer
	buf := make([]byte, chunkSize)

	for {
		n, err := reader.Read(buf)
		received.Write(buf[:n])
		if received.Len() > maxSize {
			return nil, errkind.Newf(errkind.MalformedRequest, "read request", "request exceeds %d bytes", maxSize)
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, errkind.New(errkind.IoError, "read request", err)
		}
		if n < chunkSize {
			break
		}
	}

	return received.Bytes(), nil
}

func (r *Request) parse(data []byte) (int, error) {
	switch r.state {
	case stateRequestLine:
		idx := bytes.Index(data, []byte(crlf))
		if idx == -1 {
			return 0, nil
		}
		if idx == 0 {
			return 0, errkind.Newf(errkind.MalformedRequest, "parse request line", "empty request")
		}

		rl, err := requestLineFromString(string(data[:idx]))
		if err != nil {
			return 0, err
		}

		r.RequestLine = *rl
		r.state = stateHeaders

		return idx + len(crlf), nil
	case stateHeaders:
		n, done, err := r.Headers.Parse(data)
		if err != nil {
			return 0, err
		}
		if done {
			r.state = stateDone
		}

		return n, nil
	default:
		return 0, errkind.Newf(errkind.MalformedRequest, "parse request", "trying to read data in a done state")
	}
}

func requestLineFromString(s string) (*RequestLine, error) {
	parts := strings.Split(s, " ")
	if len(parts) != 3 {
		return nil, errkind.Newf(errkind.MalformedRequest, "parse request line", "want 3 tokens, got %d: %q", len(parts), s)
	}

	return &RequestLine{
		Method:        parts[0],
		RequestTarget: parts[1],
		HttpVersion:   parts[2],
	}, nil
}
