package server

import (
	"errors"
	"log"
	"net"
	"runtime/debug"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/nhdewitt/screenshare/internal/config"
	"github.com/nhdewitt/screenshare/internal/errkind"
	"github.com/nhdewitt/screenshare/internal/request"
	"github.com/nhdewitt/screenshare/internal/response"
)

// Server accepts connections and serves them one at a time: each connection
// is read, handled, answered and closed before the next Accept. There are no
// read or write deadlines, so a client that never sends stalls the loop.
type Server struct {
	listener    net.Listener
	isListening atomic.Bool
	handler     Handler

	chunkSize int
	maxSize   int
	requests  uint64
}

func Listen(cfg *config.Config, handler Handler) (*Server, error) {
	listener, err := net.Listen("tcp", cfg.Address())
	if err != nil {
		return nil, errkind.New(errkind.BindFailure, "listen on "+cfg.Address(), err)
	}
	s := &Server{
		listener:  listener,
		handler:   handler,
		chunkSize: cfg.ReadChunkSize,
		maxSize:   cfg.MaxRequestSize,
	}
	s.isListening.Store(true)

	return s, nil
}

func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *Server) Close() error {
	if !s.isListening.CompareAndSwap(true, false) {
		return nil
	}

	if s.listener != nil {
		return s.listener.Close()
	}

	return nil
}

// Serve runs the accept loop until Close is called, in which case it returns
// nil, or until the listener fails for good.
func (s *Server) Serve() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if !s.isListening.Load() {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return errkind.New(errkind.IoError, "accept", err)
			}
			log.Printf("Error accepting connection: %v", err)
			continue
		}

		s.handle(conn)
	}
}

func (s *Server) handle(conn net.Conn) {
	defer conn.Close()

	id := uuid.New()
	w := response.NewWriter(conn)

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[%s] panic handling connection: %v\n%s", id, r, debug.Stack())
			s.replace(id, w, response.StatusInternalServerError)
		}
	}()

	req, err := request.RequestFromReaderSize(conn, s.chunkSize, s.maxSize)
	if err != nil {
		log.Printf("[%s] Error reading request from %s: %v", id, conn.RemoteAddr(), err)
		if errkind.KindOf(err) == errkind.MalformedRequest {
			s.replace(id, w, response.StatusNotFound)
		}
		return
	}

	s.requests++
	log.Printf("[%s] Received request #%d from %s: %s %s %s (%d headers)",
		id, s.requests, conn.RemoteAddr(),
		req.RequestLine.Method, req.RequestLine.RequestTarget, req.RequestLine.HttpVersion,
		len(req.Headers))

	if err := s.handler(w, req); err != nil {
		log.Printf("[%s] Error handling %s: %v", id, req.RequestLine.RequestTarget, err)
	}
	if !w.Complete() {
		s.replace(id, w, response.StatusInternalServerError)
		return
	}

	if err := w.Flush(); err != nil {
		log.Printf("[%s] Error writing response: %v", id, err)
		return
	}
	log.Printf("[%s] Sent %s", id, w.Status())
}

// replace discards whatever is queued on w and sends an empty response with
// the given status instead, unless something was already flushed.
func (s *Server) replace(id uuid.UUID, w *response.Writer, code response.StatusCode) {
	if w.Flushed() {
		return
	}
	w.Reset()
	if err := w.WriteEmpty(code); err != nil {
		log.Printf("[%s] Error queuing %s: %v", id, code, err)
		return
	}
	if err := w.Flush(); err != nil {
		log.Printf("[%s] Error writing %s: %v", id, code, err)
		return
	}
	log.Printf("[%s] Sent %s", id, code)
}
