// Package distserver serves the installer download page and the installer
// itself.
package distserver

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"office97/internal/logger"
)

const (
	DefaultBind = "0.0.0.0:8096"

	// DownloadName is the file name browsers save the installer under.
	DownloadName = "Microsoft Office 97 Setup.exe"
)

type Config struct {
	Bind    string
	DistDir string
	Version string
}

type Server struct {
	cfg    Config
	router *gin.Engine
	logger logger.Logger
}

func New(cfg Config, log logger.Logger) *Server {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if cfg.Bind == "" {
		cfg.Bind = DefaultBind
	}
	if cfg.Version == "" {
		cfg.Version = "1.0.0"
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))
	router.SetHTMLTemplate(template.Must(template.New("index").Parse(pageTemplate)))

	s := &Server{cfg: cfg, router: router, logger: log}
	router.GET("/", s.handleIndex)
	router.NoRoute(s.handleDownload)
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then drains in-flight downloads.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Bind,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("DistServer", "listening", map[string]interface{}{
			"bind":     s.cfg.Bind,
			"dist_dir": s.cfg.DistDir,
		})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", s.cfg.Bind, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("DistServer", "stopped", nil)
	return nil
}

// FindInstaller returns the first *.exe in dir whose name contains "Setup".
func FindInstaller(dir string) (string, os.FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", nil, err
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".exe") || !strings.Contains(name, "Setup") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return "", nil, err
		}
		return filepath.Join(dir, name), info, nil
	}
	return "", nil, os.ErrNotExist
}

func (s *Server) handleIndex(c *gin.Context) {
	size := "0 B"
	if _, info, err := FindInstaller(s.cfg.DistDir); err == nil {
		size = humanize.Bytes(uint64(info.Size()))
	}
	c.HTML(http.StatusOK, "index", gin.H{
		"Version": s.cfg.Version,
		"Size":    size,
	})
}

func (s *Server) handleDownload(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.Status(http.StatusMethodNotAllowed)
		return
	}

	path, info, err := FindInstaller(s.cfg.DistDir)
	if err != nil {
		s.logger.Warning("DistServer", "installer not available", map[string]interface{}{
			"dist_dir": s.cfg.DistDir,
			"error":    err.Error(),
		})
		c.String(http.StatusNotFound, "404 Not Found")
		return
	}

	c.Header("Content-Type", "application/octet-stream")
	c.FileAttachment(path, DownloadName)
	s.logger.Info("DistServer", "installer served", map[string]interface{}{
		"client": c.ClientIP(),
		"size":   humanize.Bytes(uint64(info.Size())),
	})
}

func requestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("DistServer", "request", map[string]interface{}{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"client":   c.ClientIP(),
			"duration": time.Since(start).String(),
		})
	}
}
