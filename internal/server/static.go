package server

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

var errNoEndpoint = errors.New("endpoint not found")

// mountStatic serves the built frontend. Paths outside /api that match no
// file fall back to index.html so client-side routes survive a reload.
func (s *Server) mountStatic() {
	index := filepath.Join(s.staticDir, "index.html")
	switch {
	case s.staticDir == "":
		s.logger.Warn().Msg("static directory not configured; API only mode")
		s.engine.NoRoute(s.handleNoRoute(""))
		return
	case !isFile(index):
		s.logger.Warn().Str("path", index).Msg("index.html not found; API only mode")
		s.engine.NoRoute(s.handleNoRoute(""))
		return
	}

	if assets := filepath.Join(s.staticDir, "assets"); isDir(assets) {
		s.engine.StaticFS("/assets", gin.Dir(assets, false))
	}
	s.engine.GET("/", func(c *gin.Context) { c.File(index) })
	s.engine.NoRoute(s.handleNoRoute(index))
}

func (s *Server) handleNoRoute(index string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if index == "" || strings.HasPrefix(path, "/api/") || c.Request.Method != http.MethodGet {
			s.respondError(c, http.StatusNotFound, errNoEndpoint)
			return
		}
		// top-level files such as favicon.svg
		if name := filepath.Join(s.staticDir, filepath.Clean("/"+path)); path != "/" && isFile(name) {
			c.File(name)
			return
		}
		c.File(index)
	}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
