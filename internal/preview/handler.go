package preview

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/gin-gonic/gin"

	"seripreview/internal/headdoc"
)

// Handler serves the SPA shell with the preview tags already applied.
// Each request is one full pipeline run against a fresh parse of the
// shell bytes, so responses never share document state.
type Handler struct {
	Pipeline *Pipeline
	Shell    []byte
}

func NewHandler(p *Pipeline, shell []byte) *Handler {
	return &Handler{Pipeline: p, Shell: shell}
}

// LoadShell reads the shell document and verifies up front that it can
// host the tags; a shell without a head would fail every request.
func LoadShell(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read shell: %w", err)
	}
	if _, err := headdoc.Parse(bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("shell %s: %w", path, err)
	}
	return b, nil
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	// SPA fallback: every page navigation lands here
	router.NoRoute(h.page)
}

func (h *Handler) page(c *gin.Context) {
	doc, err := headdoc.Parse(bytes.NewReader(h.Shell))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "shell parse failed"})
		return
	}

	h.Pipeline.Refresh(c.Request.Context(), requestURL(c.Request), doc)

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := doc.Render(c.Writer); err != nil {
		_ = c.Error(err)
	}
}

// requestURL reconstructs the full page URL (scheme, host, path, query)
// the crawler asked for; og:url carries it verbatim.
func requestURL(r *http.Request) *url.URL {
	u := *r.URL
	u.Host = r.Host

	u.Scheme = "http"
	if r.TLS != nil {
		u.Scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		u.Scheme = proto
	}
	return &u
}
