package errors

import (
	stderrors "errors"
	"io"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	err := NewRequestError(HeaderTooLarge, nil)
	if got := err.Error(); !strings.Contains(got, "too large") {
		t.Errorf("Error() = %q", got)
	}

	err = NewServeError(OpenFailure, io.ErrClosedPipe)
	if got := err.Error(); !strings.Contains(got, "open failed") || !strings.Contains(got, io.ErrClosedPipe.Error()) {
		t.Errorf("Error() = %q", got)
	}

	err = NewSocketError(ConnectionClosed, io.EOF)
	if got := err.Error(); !strings.Contains(got, "Connection closed") {
		t.Errorf("Error() = %q", got)
	}
}

func TestUnwrap(t *testing.T) {
	err := NewSocketError(SocketReadFailure, io.EOF)
	if !stderrors.Is(err, io.EOF) {
		t.Error("underlying error not reachable via errors.Is")
	}
	if NewRequestError(RequestMalformed, nil).Unwrap() != nil {
		t.Error("Unwrap of bare error should be nil")
	}
}

func TestClassifiers(t *testing.T) {
	err := NewRequestError(RequestMalformed, nil)
	if !IsRequestError(err, RequestMalformed) {
		t.Error("IsRequestError(RequestMalformed) = false")
	}
	if IsRequestError(err, HeaderTooLarge) {
		t.Error("IsRequestError matched the wrong code")
	}
	if IsServeError(err, OpenFailure) || IsSocketError(err, AcceptFailure) {
		t.Error("classifier matched across layers")
	}
	if IsRequestError(io.EOF, RequestMalformed) {
		t.Error("classifier matched a foreign error")
	}
}
