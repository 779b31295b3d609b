package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// static serves the built frontend for paths no route claimed.
func (h *Handler) static(c *gin.Context) {
	if h.cfg.StaticDir == "" || (c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	clean := path.Clean("/" + c.Request.URL.Path)
	if clean == "/" {
		clean = "/index.html"
	}
	file := filepath.Join(h.cfg.StaticDir, filepath.FromSlash(clean))

	f, err := os.Open(file)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
}
