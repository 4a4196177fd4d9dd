// Package api provides the HTTP API server for scalaris-pic. The server
// exposes the attribute tree via REST endpoints so configuration engines and
// the fetch command can read it without re-deriving the host address.
//
// ENDPOINTS:
//   - GET  /api/v1/health                 liveness, always unauthenticated
//   - GET  /api/v1/attributes             full REC tree (?format=json|yaml)
//   - GET  /api/v1/attributes/scalaris    bare attribute record
//   - POST /api/v1/attributes/validate    validate a posted tree or record
//
// ACCESS CONTROL:
// The record's own scalaris_users list decides access. An empty list serves
// the attribute routes openly; a non-empty list puts them behind HTTP basic
// auth with exactly those credentials.
//
// The served record is copied at construction and never changes while the
// server runs. Documents are encoded with the same encoder as `render`, so a
// fetched tree is byte-identical to a locally rendered one.
package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/concave-dev/scalaris-pic/internal/api/handlers"
	"github.com/concave-dev/scalaris-pic/internal/attributes"
	"github.com/concave-dev/scalaris-pic/internal/logging"
	"github.com/concave-dev/scalaris-pic/internal/netutil"
	"github.com/concave-dev/scalaris-pic/internal/version"
	"github.com/gin-gonic/gin"
)

// Server publishes one attribute record over HTTP
type Server struct {
	attrs      attributes.NodeDefaultConfig
	httpServer *http.Server
	listener   net.Listener
	bindAddr   string
	bindPort   int
	startTime  time.Time
}

// NewServer creates a new API server instance. The record is copied, so later
// changes by the caller are not served.
func NewServer(config *Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	return &Server{
		attrs:     config.Attributes.Clone(),
		bindAddr:  config.BindAddr,
		bindPort:  config.BindPort,
		startTime: time.Now(),
	}
}

// Router builds the gin engine with middleware and routes.
func (s *Server) Router() *gin.Engine {
	router := gin.New()

	if !logging.IsConfiguredByCLI() {
		gin.DefaultWriter = logging.NewLevelWriter("INFO", "gin")
		gin.DefaultErrorWriter = logging.NewLevelWriter("ERROR", "gin")
	}

	router.Use(s.loggingMiddleware())
	router.Use(s.corsMiddleware())
	router.Use(gin.Recovery())

	s.setupRoutes(router)
	return router
}

// Start binds the listener and serves in the background. Bind errors are
// returned immediately, with a held port reported as
// *netutil.AddressInUseError.
//
// Serving runs on its own goroutine; errors after a successful bind are
// logged since there is no caller left to return them to. Call Shutdown to
// stop it.
func (s *Server) Start() error {
	addr := net.JoinHostPort(s.bindAddr, strconv.Itoa(s.bindPort))
	logging.Info("Starting HTTP API server on %s", addr)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	listener, err := netutil.Listen(s.bindAddr, s.bindPort)
	if err != nil {
		return err
	}
	s.listener = listener

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("HTTP server failed: %v", err)
		}
	}()

	logging.Success("HTTP API server serving attributes for %s", s.attrs.Node)
	return nil
}

// Addr returns the bound listener address, or "" before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down HTTP API server...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

func (s *Server) handleHealth(c *gin.Context) {
	handlers.HandleHealth(version.Version, s.startTime, s.attrs.Node, !s.attrs.Unrestricted())(c)
}

func (s *Server) handleTree(c *gin.Context) {
	handlers.HandleTree(attributes.NewTree(s.attrs))(c)
}

func (s *Server) handleAttributes(c *gin.Context) {
	handlers.HandleAttributes(s.attrs)(c)
}

func (s *Server) handleValidate(c *gin.Context) {
	handlers.HandleValidate(int64(s.attrs.MaxJSONReqSize))(c)
}
