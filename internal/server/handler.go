package server

import (
	"github.com/nhdewitt/screenshare/internal/request"
	"github.com/nhdewitt/screenshare/internal/response"
)

// Handler queues a complete response for req on w. The server flushes w
// after the handler returns.
type Handler func(w *response.Writer, req *request.Request) error
