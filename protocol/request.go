package protocol

import (
	"bytes"

	httperrors "github.com/nareshv/http-server/errors"
)

// Limits for the tokens of the request line. A request exceeding any of
// them is rejected, never truncated into a valid-looking one.
const (
	MaxHeaderLen = 4096
	MaxMethodLen = 31
	MaxTargetLen = 255
	MaxProtoLen  = 31
)

var (
	hostKey  = []byte("host:")
	lineFeed = byte('\n')
)

// RequestLine holds the three tokens of an HTTP request line. It lives
// only for the duration of one request dispatch.
type RequestLine struct {
	Method string
	Target string
	Proto  string
}

// ParseRequest extracts the request line from the raw bytes of a single
// receive. The whole header block must fit in one receive buffer; a
// full buffer with no line terminator is reported as HeaderTooLarge,
// anything else that does not tokenize into three bounded words as
// RequestMalformed.
func ParseRequest(buf []byte) (RequestLine, error) {
	end := bytes.IndexByte(buf, lineFeed)
	if end < 0 {
		if len(buf) >= MaxHeaderLen {
			return RequestLine{}, httperrors.NewRequestError(httperrors.HeaderTooLarge, nil)
		}
		return RequestLine{}, httperrors.NewRequestError(httperrors.RequestMalformed, nil)
	}

	line := bytes.TrimSuffix(buf[:end], []byte("\r"))
	fields := bytes.Fields(line)
	if len(fields) != 3 {
		return RequestLine{}, httperrors.NewRequestError(httperrors.RequestMalformed, nil)
	}

	method, target, proto := fields[0], fields[1], fields[2]
	if len(method) > MaxMethodLen || len(target) > MaxTargetLen || len(proto) > MaxProtoLen {
		return RequestLine{}, httperrors.NewRequestError(httperrors.RequestMalformed, nil)
	}

	return RequestLine{
		Method: string(method),
		Target: string(target),
		Proto:  string(proto),
	}, nil
}

// HasHostHeader scans the raw header block for a Host header,
// case-insensitively. Only presence matters; the value is not used
// because a single document root is served.
func HasHostHeader(buf []byte) bool {
	for len(buf) > 0 {
		end := bytes.IndexByte(buf, lineFeed)
		var line []byte
		if end < 0 {
			line = buf
			buf = nil
		} else {
			line = buf[:end]
			buf = buf[end+1:]
		}
		line = bytes.TrimSuffix(line, []byte("\r"))
		if len(line) == 0 {
			// End of the header block, body follows.
			return false
		}
		if len(line) >= len(hostKey) && bytes.EqualFold(line[:len(hostKey)], hostKey) {
			return true
		}
	}
	return false
}
