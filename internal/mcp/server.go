// Package mcp exposes the calculator as Model Context Protocol tools.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"arith/internal/calculator"
	"arith/internal/metrics"

	"github.com/mark3labs/mcp-go/server"
)

// Server holds the shared state for the tool handlers.
type Server struct {
	calc    calculator.Calculator
	metrics *metrics.Metrics
	logger  *slog.Logger
	mcp     *server.MCPServer
}

// NewServer creates the MCP server and registers every calculator tool.
func NewServer(calc calculator.Calculator, m *metrics.Metrics, logger *slog.Logger, version string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		calc:    calc,
		metrics: m,
		logger:  logger,
		mcp: server.NewMCPServer(
			"arith",
			version,
			server.WithToolCapabilities(true),
			server.WithRecovery(),
		),
	}
	s.registerTools()
	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// ServeStdio speaks the protocol over in/out until ctx is cancelled or in is closed.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))

	s.logger.Info("serving MCP over stdio")
	err := stdio.Listen(ctx, in, out)
	if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// ServeHTTP serves the streamable HTTP transport on addr until ctx is cancelled.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.serveHTTP(ctx, ln)
}

func (s *Server) serveHTTP(ctx context.Context, ln net.Listener) error {
	mux := http.NewServeMux()
	mux.Handle("/mcp", server.NewStreamableHTTPServer(s.mcp))
	httpServer := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving MCP over HTTP", "addr", ln.Addr().String())
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}
