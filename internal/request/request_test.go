package request

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/nhdewitt/screenshare/internal/errkind"
	"github.com/nhdewitt/screenshare/internal/headers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chunkReader struct {
	data            string
	numBytesPerRead int
	pos             int
}

// Read reads up to len(p) or numBytesPerRead bytes from the string per call
// its useful for simulating reading a variable number of bytes per chunk from a network connection
func (cr *chunkReader) Read(p []byte) (n int, err error) {
	if cr.pos >= len(cr.data) {
		return 0, io.EOF
	}
	endIndex := cr.pos + cr.numBytesPerRead
	if endIndex > len(cr.data) {
		endIndex = len(cr.data)
	}
	n = copy(p, cr.data[cr.pos:endIndex])
	cr.pos += n

	return n, nil
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("connection reset by peer")
}

func TestRequestLineParse(t *testing.T) {
	cases := []struct {
		data                            string
		wantMethod, wantTarget, wantVer string
	}{
		{"GET / HTTP/1.1\r\nHost: x\r\n\r\n", "GET", "/", "HTTP/1.1"},
		{"GET /screen/2 HTTP/1.1\r\n\r\n", "GET", "/screen/2", "HTTP/1.1"},
		{"HEAD /screen/10 HTTP/1.0\r\nHost: x\r\n\r\n", "HEAD", "/screen/10", "HTTP/1.0"},
		{"get /whatever?x=1 HTTP/3.0\r\n\r\n", "get", "/whatever?x=1", "HTTP/3.0"},
		// no CRLF at all: the only line is still the request line
		{"GET / HTTP/1.1", "GET", "/", "HTTP/1.1"},
	}
	for _, c := range cases {
		reader := &chunkReader{data: c.data, numBytesPerRead: len(c.data)}
		r, err := RequestFromReader(reader)
		require.NoError(t, err, c.data)
		require.NotNil(t, r)
		assert.Equal(t, c.wantMethod, r.RequestLine.Method)
		assert.Equal(t, c.wantTarget, r.RequestLine.RequestTarget)
		assert.Equal(t, c.wantVer, r.RequestLine.HttpVersion)
	}
}

func TestHeadersRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		data string
		want headers.Headers
	}{
		{
			name: "no headers",
			data: "GET / HTTP/1.1\r\n\r\n",
			want: headers.Headers{},
		},
		{
			name: "several headers",
			data: "GET / HTTP/1.1\r\nHost: localhost:8000\r\nUser-Agent: curl/8.5.0\r\nAccept: */*\r\n\r\n",
			want: headers.Headers{"Host": "localhost:8000", "User-Agent": "curl/8.5.0", "Accept": "*/*"},
		},
		{
			name: "duplicate key keeps last value",
			data: "GET / HTTP/1.1\r\nX-Tag: one\r\nx-tag: lower\r\nX-Tag: two\r\n\r\n",
			want: headers.Headers{"X-Tag": "two", "x-tag": "lower"},
		},
		{
			name: "body is ignored",
			data: "POST / HTTP/1.1\r\nHost: x\r\nContent-Length: 9\r\n\r\nnot: hdr\n",
			want: headers.Headers{"Host": "x", "Content-Length": "9"},
		},
		{
			name: "missing blank line",
			data: "GET / HTTP/1.1\r\nHost: x",
			want: headers.Headers{"Host": "x"},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := RequestFromReader(strings.NewReader(c.data))
			require.NoError(t, err)
			assert.Equal(t, c.want, r.Headers)
		})
	}
}

func TestRequestAccumulatesFullChunks(t *testing.T) {
	data := "GET /screen/1 HTTP/1.1\r\nHost: localhost\r\nAccept: image/png\r\n\r\n"
	reader := &chunkReader{data: data, numBytesPerRead: 4}

	r, err := RequestFromReaderSize(reader, 4, 1024)
	require.NoError(t, err)
	assert.Equal(t, "/screen/1", r.RequestLine.RequestTarget)
	assert.Equal(t, "image/png", r.Headers["Accept"])
}

func TestRequestStopsOnShortRead(t *testing.T) {
	// the first read returns fewer bytes than a chunk, so only "GET" is seen
	reader := &chunkReader{data: "GET / HTTP/1.1\r\n\r\n", numBytesPerRead: 3}

	_, err := RequestFromReaderSize(reader, 8, 1024)
	require.Error(t, err)
	assert.ErrorIs(t, err, errkind.MalformedRequest)
}

func TestRequestMalformed(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"two tokens", "GET /\r\nHost: x\r\n\r\n"},
		{"four tokens", "GET / HTTP/1.1 extra\r\n\r\n"},
		{"double space", "GET  / HTTP/1.1\r\n\r\n"},
		{"header without separator", "GET / HTTP/1.1\r\nHost x\r\n\r\n"},
		{"header without space after colon", "GET / HTTP/1.1\r\nHost:x\r\n\r\n"},
		{"invalid utf-8", "GET /\xff\xfe HTTP/1.1\r\n\r\n"},
		{"empty", ""},
		{"blank first line", "\r\nGET / HTTP/1.1\r\n\r\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := RequestFromReader(strings.NewReader(c.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, errkind.MalformedRequest)
		})
	}
}

func TestRequestTooLarge(t *testing.T) {
	data := "GET / HTTP/1.1\r\n" + strings.Repeat("X-Pad: aaaaaaaa\r\n", 10) + "\r\n"
	reader := &chunkReader{data: data, numBytesPerRead: 8}

	_, err := RequestFromReaderSize(reader, 8, 32)
	require.Error(t, err)
	assert.ErrorIs(t, err, errkind.MalformedRequest)
}

func TestRequestReadError(t *testing.T) {
	_, err := RequestFromReader(failingReader{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errkind.IoError)
	assert.Contains(t, err.Error(), "connection reset by peer")
}
