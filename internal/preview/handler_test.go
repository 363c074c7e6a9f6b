package preview

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testShell = `<!DOCTYPE html>
<html lang="tr">
<head>
  <meta charset="utf-8">
  <title>SeriOku</title>
</head>
<body><div id="app"></div><script src="/assets/app.js" defer></script></body>
</html>`

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pipeline := NewPipeline(testCatalog(), testDefaults(), testOrigin)
	handler := NewHandler(pipeline, []byte(testShell))

	router := gin.New()
	handler.RegisterRoutes(router)
	return router
}

func metaContent(t *testing.T, doc *goquery.Document, key string) string {
	t.Helper()
	sel := doc.Find(`meta[property="` + key + `"]`)
	if sel.Length() == 0 {
		sel = doc.Find(`meta[name="` + key + `"]`)
	}
	require.Equal(t, 1, sel.Length(), "expected exactly one %s tag", key)
	return sel.AttrOr("content", "")
}

func TestPage_KnownSeries(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/oku?seri=%C3%96l%C3%BCm%20Pakt%C4%B1&bolum=8", nil)
	req.Host = "serioku.net"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)

	assert.Equal(t, "Ölüm Paktı - Bölüm 8", metaContent(t, doc, "og:title"))
	assert.Equal(t, "Bir pakt, iki kader.", metaContent(t, doc, "og:description"))
	assert.Equal(t, "https://serioku.net/covers/olum-pakti.jpg", metaContent(t, doc, "og:image"))
	assert.Equal(t, metaContent(t, doc, "og:title"), metaContent(t, doc, "twitter:title"))

	// the shell body survives the rewrite
	assert.Equal(t, 1, doc.Find("div#app").Length())
}

func TestPage_OgURLCarriesFullRequestURL(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/oku?seri=Berserk&bolum=364", nil)
	req.Host = "serioku.net"
	req.Header.Set("X-Forwarded-Proto", "https")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)

	assert.Equal(t, "https://serioku.net/oku?seri=Berserk&bolum=364", metaContent(t, doc, "og:url"))
}

func TestPage_UnknownSeriesFallsBack(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/oku?seri=Unknown+Series", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)

	d := testDefaults()
	assert.Equal(t, "Unknown Series", metaContent(t, doc, "og:title"))
	assert.Equal(t, d.Description, metaContent(t, doc, "og:description"))
	assert.Equal(t, d.Image, metaContent(t, doc, "og:image"))
}

func TestPage_NoParamsServesDefaults(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)

	d := testDefaults()
	assert.Equal(t, d.Title, metaContent(t, doc, "og:title"))
	assert.Equal(t, d.SiteName, metaContent(t, doc, "og:site_name"))
	assert.Equal(t, d.TwitterCardKind, metaContent(t, doc, "twitter:card"))
}

func TestPage_RepeatedRequestsStayIdentical(t *testing.T) {
	router := newTestRouter(t)

	get := func() string {
		req := httptest.NewRequest(http.MethodGet, "/oku?seri=Berserk", nil)
		req.Host = "serioku.net"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Body.String()
	}

	first := get()
	second := get()

	assert.Equal(t, first, second)
	assert.Equal(t, 1, strings.Count(first, `property="og:title"`))
}

func TestLoadShell_RejectsUnreadablePath(t *testing.T) {
	_, err := LoadShell("does/not/exist.html")
	assert.Error(t, err)
}
