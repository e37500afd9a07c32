package httpserver

import (
	"bufio"
	"net"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/lordpeara/wind"
	"go.uber.org/zap"
)

// streamConn adapts net.Conn to the core's transport contract. net.Conn
// writes block until the bytes are handed to the kernel, so completion is
// signaled synchronously after the write returns.
type streamConn struct {
	nc   net.Conn
	logs *zap.Logger
}

func (c *streamConn) Write(p []byte, onComplete func()) {
	if _, err := c.nc.Write(p); err != nil {
		c.logs.Warn("write response", zap.Error(err))
	}
	if onComplete != nil {
		onComplete()
	}
}

func (c *streamConn) Close() error { return c.nc.Close() }

var _ wind.Connection = &streamConn{}

// Server accepts TCP connections and feeds parsed requests to the app. It
// serves one request per connection; keep-alive is out of scope.
type Server struct {
	app  *wind.App
	cfg  Config
	logs *zap.Logger

	mu     sync.Mutex
	ln     net.Listener
	closed bool
}

// New creates a server for the app.
func New(app *wind.App, cfg Config, logs *zap.Logger) *Server {
	return &Server{app: app, cfg: cfg, logs: logs}
}

// ListenAndServe listens on the configured address and serves until the
// server is closed.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return errors.Wrapf(err, "listen on %s", s.cfg.Addr)
	}

	return s.Serve(ln)
}

// Serve accepts connections from ln until the server is closed.
func (s *Server) Serve(ln net.Listener) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		_ = ln.Close()
		return errors.New("server is closed")
	}
	s.ln = ln
	s.mu.Unlock()

	s.logs.Info("serving", zap.String("addr", ln.Addr().String()))

	for {
		nc, err := ln.Accept()
		if err != nil {
			if s.isClosed() {
				return nil
			}
			return errors.Wrap(err, "accept")
		}

		go s.handle(nc)
	}
}

// Addr returns the bound listener address, nil before Serve.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Close stops accepting connections. In-flight responders finish on their
// own and close their connections via the completion callback.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.ln == nil {
		return nil
	}
	return s.ln.Close()
}

func (s *Server) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Server) handle(nc net.Conn) {
	if s.cfg.ReadTimeout > 0 {
		_ = nc.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
	}

	req, err := ReadRequest(bufio.NewReader(nc))
	if err != nil {
		s.logs.Warn("malformed request", zap.Error(err))
		_, _ = nc.Write([]byte("HTTP/1.1 400 Bad Request\r\n\r\n400"))
		_ = nc.Close()
		return
	}

	// Ownership of the connection transfers to the responder here.
	if err := s.app.React(&streamConn{nc: nc, logs: s.logs}, req); err != nil {
		s.logs.Error("react", zap.Error(err))
		_ = nc.Close()
	}
}
