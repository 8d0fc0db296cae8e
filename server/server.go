// Package server runs the accept loop and the per-connection request
// pipeline: one read, one dispatch, one response, one close.
package server

import (
	"log"
	"net"
	"os"
	"time"

	"github.com/nareshv/http-server/config"
	"github.com/nareshv/http-server/fileserver"
	"github.com/nareshv/http-server/protocol"
	"github.com/nareshv/http-server/transport"
)

// Server accepts connections and serves one request per connection.
// There is no keep-alive, no pipelining and no read deadline: a silent
// client holds its handler until it goes away.
type Server struct {
	cfg    config.Config
	engine *fileserver.Engine
	logger *log.Logger
	ln     net.Listener
}

// New creates a Server from a validated configuration. A nil logger
// logs to stderr.
func New(cfg config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(os.Stderr, "", 0)
	}
	return &Server{
		cfg:    cfg,
		engine: fileserver.New(cfg),
		logger: logger,
	}
}

// Listen binds and listens on the configured port. A failure here is
// fatal to the process; nothing has been served yet.
func (s *Server) Listen() error {
	ln, err := transport.Listen(s.cfg.Port, s.cfg.Backlog)
	if err != nil {
		return err
	}
	s.ln = ln
	s.logger.Printf("[info] Started listening on %d", s.Port())
	s.logger.Printf("[info] Created backlog queue of size %d", s.cfg.Backlog)
	return nil
}

// Port returns the port actually bound, which differs from the
// configured one when port 0 was requested.
func (s *Server) Port() int {
	if s.ln == nil {
		return s.cfg.Port
	}
	return s.ln.Addr().(*net.TCPAddr).Port
}

// Serve runs the accept loop until the listener fails or is closed.
// Each accepted connection gets its own handler goroutine; in Serialize
// mode the loop instead handles connections one at a time, so requests
// never overlap.
func (s *Server) Serve() error {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			s.logger.Printf("[fatal] accept: %v", err)
			return err
		}
		if s.cfg.Serialize {
			s.handle(conn)
		} else {
			go s.handle(conn)
		}
	}
}

// Close shuts the listener down, which terminates Serve.
func (s *Server) Close() error {
	if s.ln == nil {
		return nil
	}
	return s.ln.Close()
}

// handle owns one accepted connection: a single receive of the request,
// validation, dispatch, one log line, and an unconditional close.
func (s *Server) handle(nc net.Conn) {
	c := transport.NewConn(nc)
	defer c.Close()

	buf := make([]byte, protocol.MaxHeaderLen)
	n, err := c.Read(buf)
	if err != nil {
		// Nothing was received; this is the one path with no response.
		s.logger.Printf("[error] recv %v: %v", c.RemoteAddr(), err)
		return
	}
	raw := buf[:n]

	rw := protocol.NewResponseWriter(c, s.cfg.ServerName)

	req, err := protocol.ParseRequest(raw)
	if err != nil {
		s.logger.Printf("[error] parse %v: %v", c.RemoteAddr(), err)
		if werr := rw.WriteError(protocol.StatusBadRequest); werr != nil {
			s.logger.Printf("[error] respond %v: %v", c.RemoteAddr(), werr)
		}
		return
	}

	if s.cfg.RequireHost && !protocol.HasHostHeader(raw) {
		if werr := rw.WriteError(protocol.StatusBadRequest); werr != nil {
			s.logger.Printf("[error] respond %v: %v", c.RemoteAddr(), werr)
		}
		s.logRequest(req, 0)
		return
	}

	var sent int64
	switch req.Method {
	case "GET":
		sent, err = s.engine.Serve(c.NetConn(), req.Target, true)
	case "HEAD":
		sent, err = s.engine.Serve(c.NetConn(), req.Target, false)
	default:
		if werr := rw.WriteError(protocol.StatusMethodNotAllowed); werr != nil {
			s.logger.Printf("[error] respond %v: %v", c.RemoteAddr(), werr)
		}
		// The fixed 405 body counts as the bytes sent in the log line.
		sent = int64(len(protocol.ErrorBody(protocol.StatusMethodNotAllowed)))
	}
	if err != nil {
		s.logger.Printf("[error] serve %v %s: %v", c.RemoteAddr(), req.Target, err)
	}
	s.logRequest(req, sent)
}

// logRequest writes the one-line-per-request log entry:
// [timestamp] proto method target bytes-sent.
func (s *Server) logRequest(req protocol.RequestLine, sent int64) {
	s.logger.Printf("[%s] %s %s %s %d",
		time.Now().Format(time.ANSIC), req.Proto, req.Method, req.Target, sent)
}
