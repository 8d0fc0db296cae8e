package errors

import "fmt"

// RequestError represents errors detected while reading or parsing one
// HTTP request
type RequestError int

const (
	RequestMalformed RequestError = iota
	HeaderTooLarge
	MissingHostHeader
	UnsupportedMethod
)

func (e RequestError) Error() string {
	switch e {
	case RequestMalformed:
		return "Malformed request line"
	case HeaderTooLarge:
		return "Request header block too large"
	case MissingHostHeader:
		return "Missing Host header"
	case UnsupportedMethod:
		return "Unsupported HTTP method"
	default:
		return fmt.Sprintf("Unknown request error: %d", e)
	}
}

// ServeError represents errors that occur while resolving or
// transferring the requested file
type ServeError int

const (
	ResolutionMissing ServeError = iota
	ResolutionError
	OpenFailure
	TransferFailure
)

func (e ServeError) Error() string {
	switch e {
	case ResolutionMissing:
		return "Requested path does not exist"
	case ResolutionError:
		return "Filesystem probe failed"
	case OpenFailure:
		return "File open failed"
	case TransferFailure:
		return "Body transfer failed"
	default:
		return fmt.Sprintf("Unknown serve error: %d", e)
	}
}

// SocketError represents errors at the socket layer
type SocketError int

const (
	SocketCreateFailure SocketError = iota
	BindFailure
	ListenFailure
	AcceptFailure
	SocketReadFailure
	SocketWriteFailure
	ConnectionClosed
	SocketCloseFailure
)

func (e SocketError) Error() string {
	switch e {
	case SocketCreateFailure:
		return "Socket creation failed"
	case BindFailure:
		return "Socket bind failed"
	case ListenFailure:
		return "Socket listen failed"
	case AcceptFailure:
		return "Socket accept failed"
	case SocketReadFailure:
		return "Socket read failed"
	case SocketWriteFailure:
		return "Socket write failed"
	case ConnectionClosed:
		return "Connection closed"
	case SocketCloseFailure:
		return "Socket close failed"
	default:
		return fmt.Sprintf("Unknown socket error: %d", e)
	}
}

// Error is the top-level error type that wraps request, serve and
// socket errors
type Error struct {
	RequestErr *RequestError
	ServeErr   *ServeError
	SocketErr  *SocketError
	underlying error
}

func (e *Error) Error() string {
	if e.RequestErr != nil {
		if e.underlying != nil {
			return fmt.Sprintf("Request Error: %s (underlying: %v)", e.RequestErr.Error(), e.underlying)
		}
		return fmt.Sprintf("Request Error: %s", e.RequestErr.Error())
	}
	if e.ServeErr != nil {
		if e.underlying != nil {
			return fmt.Sprintf("Serve Error: %s (underlying: %v)", e.ServeErr.Error(), e.underlying)
		}
		return fmt.Sprintf("Serve Error: %s", e.ServeErr.Error())
	}
	if e.SocketErr != nil {
		if e.underlying != nil {
			return fmt.Sprintf("Socket Error: %s (underlying: %v)", e.SocketErr.Error(), e.underlying)
		}
		return fmt.Sprintf("Socket Error: %s", e.SocketErr.Error())
	}
	if e.underlying != nil {
		return e.underlying.Error()
	}
	return "Unknown error"
}

func (e *Error) Unwrap() error {
	return e.underlying
}

// NewRequestError creates a new Error with a RequestError
func NewRequestError(re RequestError, underlying error) *Error {
	return &Error{
		RequestErr: &re,
		underlying: underlying,
	}
}

// NewServeError creates a new Error with a ServeError
func NewServeError(se ServeError, underlying error) *Error {
	return &Error{
		ServeErr:   &se,
		underlying: underlying,
	}
}

// NewSocketError creates a new Error with a SocketError
func NewSocketError(se SocketError, underlying error) *Error {
	return &Error{
		SocketErr:  &se,
		underlying: underlying,
	}
}

// IsRequestError reports whether err carries the given request error code
func IsRequestError(err error, re RequestError) bool {
	e, ok := err.(*Error)
	return ok && e.RequestErr != nil && *e.RequestErr == re
}

// IsServeError reports whether err carries the given serve error code
func IsServeError(err error, se ServeError) bool {
	e, ok := err.(*Error)
	return ok && e.ServeErr != nil && *e.ServeErr == se
}

// IsSocketError reports whether err carries the given socket error code
func IsSocketError(err error, se SocketError) bool {
	e, ok := err.(*Error)
	return ok && e.SocketErr != nil && *e.SocketErr == se
}
