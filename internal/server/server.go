// Package server exposes the images directory over a single download route.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"sync"

	"qr-kiosk/internal/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type DownloadServer struct {
	echo    *echo.Echo
	dir     string
	address string
	logger  logger.Logger
}

// NewDownloadServer binds to every interface on port. Port 0 picks a free one.
func NewDownloadServer(dir string, port int, log logger.Logger) *DownloadServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &DownloadServer{
		echo:    e,
		dir:     dir,
		address: fmt.Sprintf("0.0.0.0:%d", port),
		logger:  log,
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogError:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := map[string]interface{}{
				"method":    v.Method,
				"uri":       v.URI,
				"status":    v.Status,
				"remote_ip": v.RemoteIP,
			}
			if v.Error != nil {
				fields["error"] = v.Error.Error()
			}
			s.logger.Info("DownloadServer", "request served", fields)
			return nil
		},
	}))

	s.setRoutes(e)
	return s
}

func (s *DownloadServer) setRoutes(e *echo.Echo) {
	e.GET("/download/:filename", s.handleDownload)
}

// handleDownload streams a file from the images directory as an attachment.
func (s *DownloadServer) handleDownload(c echo.Context) error {
	name := c.Param("filename")
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return echo.ErrNotFound
	}
	return c.Attachment(filepath.Join(s.dir, name), name)
}

func (s *DownloadServer) Handler() http.Handler {
	return s.echo
}

// Start blocks until the server stops.
func (s *DownloadServer) Start() error {
	s.logger.Info("DownloadServer", "starting server", map[string]interface{}{
		"address": s.address,
		"dir":     s.dir,
	})
	return s.echo.Start(s.address)
}

// Addr reports the bound address once listening, nil before.
func (s *DownloadServer) Addr() net.Addr {
	return s.echo.ListenerAddr()
}

func (s *DownloadServer) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Launcher owns the process-wide server goroutine. It is started on first use and
// deliberately left running across screen changes; only process exit stops it.
type Launcher struct {
	server  *DownloadServer
	logger  logger.Logger
	once    sync.Once
	mu      sync.Mutex
	started bool
}

func NewLauncher(server *DownloadServer, log logger.Logger) *Launcher {
	return &Launcher{server: server, logger: log}
}

// Start launches the server in the background; repeated calls are no-ops.
func (l *Launcher) Start() {
	l.once.Do(func() {
		l.mu.Lock()
		l.started = true
		l.mu.Unlock()

		go func() {
			if err := l.server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				l.logger.Error("DownloadServer", "server stopped unexpectedly", err, map[string]interface{}{
					"address": l.server.address,
				})
			}
		}()
	})
}

func (l *Launcher) Started() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.started
}

func (l *Launcher) Server() *DownloadServer {
	return l.server
}

// Shutdown stops a started server within ctx. Used on process exit only.
func (l *Launcher) Shutdown(ctx context.Context) {
	if !l.Started() {
		return
	}

	if err := l.server.Shutdown(ctx); err != nil {
		l.logger.Error("DownloadServer", "graceful stop failed", err, nil)
		return
	}
	l.logger.Info("DownloadServer", "server stopped", nil)
}
