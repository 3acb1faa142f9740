package response

import "fmt"

type StatusCode int

const (
	StatusOK                  StatusCode = 200
	StatusNotFound            StatusCode = 404
	StatusInternalServerError StatusCode = 500
)

func (c StatusCode) reason() (string, bool) {
	switch c {
	case StatusOK:
		return "OK", true
	case StatusNotFound:
		return "Not Found", true
	case StatusInternalServerError:
		return "Internal Server Error", true
	default:
		return "", false
	}
}

func (c StatusCode) String() string {
	reason, ok := c.reason()
	if !ok {
		return fmt.Sprintf("%d", int(c))
	}
	return fmt.Sprintf("%d %s", int(c), reason)
}
