package protocol

import (
	"strings"
	"testing"

	httperrors "github.com/nareshv/http-server/errors"
)

func TestParseRequest_Valid(t *testing.T) {
	raw := []byte("GET /index.html HTTP/1.1\r\nHost: example.com\r\n\r\n")

	req, err := ParseRequest(raw)
	if err != nil {
		t.Fatalf("ParseRequest failed: %v", err)
	}
	if req.Method != "GET" {
		t.Errorf("Method = %q, want GET", req.Method)
	}
	if req.Target != "/index.html" {
		t.Errorf("Target = %q, want /index.html", req.Target)
	}
	if req.Proto != "HTTP/1.1" {
		t.Errorf("Proto = %q, want HTTP/1.1", req.Proto)
	}
}

func TestParseRequest_BareLF(t *testing.T) {
	req, err := ParseRequest([]byte("HEAD / HTTP/1.0\n"))
	if err != nil {
		t.Fatalf("ParseRequest failed: %v", err)
	}
	if req.Method != "HEAD" || req.Target != "/" || req.Proto != "HTTP/1.0" {
		t.Errorf("unexpected request line: %+v", req)
	}
}

func TestParseRequest_Malformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"two tokens", "GET /\r\n"},
		{"four tokens", "GET / HTTP/1.1 extra\r\n"},
		{"empty line", "\r\n"},
		{"no line terminator", "GET / HTTP/1.1"},
	}
	for _, c := range cases {
		_, err := ParseRequest([]byte(c.raw))
		if !httperrors.IsRequestError(err, httperrors.RequestMalformed) {
			t.Errorf("%s: err = %v, want RequestMalformed", c.name, err)
		}
	}
}

func TestParseRequest_TokenBounds(t *testing.T) {
	longMethod := strings.Repeat("M", MaxMethodLen+1)
	longTarget := "/" + strings.Repeat("a", MaxTargetLen)
	longProto := strings.Repeat("P", MaxProtoLen+1)

	cases := []string{
		longMethod + " / HTTP/1.1\r\n",
		"GET " + longTarget + " HTTP/1.1\r\n",
		"GET / " + longProto + "\r\n",
	}
	for i, raw := range cases {
		if _, err := ParseRequest([]byte(raw)); !httperrors.IsRequestError(err, httperrors.RequestMalformed) {
			t.Errorf("case %d: err = %v, want RequestMalformed", i, err)
		}
	}

	// Exactly at the limits is still fine.
	atLimit := strings.Repeat("M", MaxMethodLen) + " /" + strings.Repeat("a", MaxTargetLen-1) +
		" " + strings.Repeat("P", MaxProtoLen) + "\r\n"
	if _, err := ParseRequest([]byte(atLimit)); err != nil {
		t.Errorf("tokens at limit rejected: %v", err)
	}
}

func TestParseRequest_HeaderTooLarge(t *testing.T) {
	raw := []byte(strings.Repeat("x", MaxHeaderLen))
	_, err := ParseRequest(raw)
	if !httperrors.IsRequestError(err, httperrors.HeaderTooLarge) {
		t.Errorf("err = %v, want HeaderTooLarge", err)
	}
}

func TestHasHostHeader(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want bool
	}{
		{"plain", "GET / HTTP/1.1\r\nHost: example.com\r\n\r\n", true},
		{"case insensitive", "GET / HTTP/1.1\r\nhOsT: example.com\r\n\r\n", true},
		{"absent", "GET / HTTP/1.1\r\nAccept: */*\r\n\r\n", false},
		{"no headers", "GET / HTTP/1.1\r\n\r\n", false},
		{"prefix lookalike", "GET / HTTP/1.1\r\nHostile: yes\r\n\r\n", false},
		{"after other headers", "GET / HTTP/1.1\r\nAccept: */*\r\nHost: x\r\n\r\n", true},
	}
	for _, c := range cases {
		if got := HasHostHeader([]byte(c.raw)); got != c.want {
			t.Errorf("%s: HasHostHeader = %v, want %v", c.name, got, c.want)
		}
	}
}
