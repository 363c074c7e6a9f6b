package headdoc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shell = `<!DOCTYPE html>
<html lang="tr">
<head>
  <meta charset="utf-8">
  <title>SeriOku</title>
</head>
<body><div id="app"></div></body>
</html>`

func parseShell(t *testing.T, raw string) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(raw))
	require.NoError(t, err)
	return doc
}

func TestUpsert_CreatesWithAttributeConvention(t *testing.T) {
	doc := parseShell(t, shell)

	doc.Upsert("og:title", "Berserk")
	doc.Upsert("twitter:card", "summary_large_image")

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	out := buf.String()

	assert.Contains(t, out, `<meta property="og:title" content="Berserk"/>`)
	assert.Contains(t, out, `<meta name="twitter:card" content="summary_large_image"/>`)
}

func TestUpsert_OverwritesExistingInPlace(t *testing.T) {
	withTag := strings.Replace(shell,
		"<title>SeriOku</title>",
		`<title>SeriOku</title><meta property="og:title" content="old">`, 1)
	doc := parseShell(t, withTag)

	doc.Upsert("og:title", "new")

	got, ok := doc.MetaContent("og:title")
	require.True(t, ok)
	assert.Equal(t, "new", got)
	assert.Equal(t, 1, doc.MetaCount("og:title"), "must mutate, not duplicate")
}

func TestUpsert_FindsNameAttributeForOgKey(t *testing.T) {
	// a pre-existing tag stored under name= must still be matched before
	// any property= element gets created
	withTag := strings.Replace(shell,
		"<title>SeriOku</title>",
		`<title>SeriOku</title><meta name="og:image" content="old.png">`, 1)
	doc := parseShell(t, withTag)

	doc.Upsert("og:image", "new.png")

	got, ok := doc.MetaContent("og:image")
	require.True(t, ok)
	assert.Equal(t, "new.png", got)
	assert.Equal(t, 1, doc.MetaCount("og:image"))
}

func TestUpsert_Idempotent(t *testing.T) {
	doc := parseShell(t, shell)

	tags := map[string]string{
		"og:title":     "Berserk - Bölüm 364",
		"og:image":     "https://serioku.net/covers/berserk.jpg",
		"twitter:card": "summary_large_image",
	}

	for key, value := range tags {
		doc.Upsert(key, value)
	}
	var first bytes.Buffer
	require.NoError(t, doc.Render(&first))

	for key, value := range tags {
		doc.Upsert(key, value)
	}
	var second bytes.Buffer
	require.NoError(t, doc.Render(&second))

	assert.Equal(t, first.String(), second.String())
	for key := range tags {
		assert.Equal(t, 1, doc.MetaCount(key))
	}
}

func TestParse_HeadSynthesizedForFragment(t *testing.T) {
	// html5 parsing synthesizes a head even for bare fragments, so the
	// applier still has somewhere to write
	doc, err := Parse(strings.NewReader("<p>hi</p>"))
	require.NoError(t, err)

	doc.Upsert("og:title", "x")
	got, ok := doc.MetaContent("og:title")
	require.True(t, ok)
	assert.Equal(t, "x", got)
}

func TestMetaContent_Missing(t *testing.T) {
	doc := parseShell(t, shell)

	_, ok := doc.MetaContent("og:nope")
	assert.False(t, ok)
}

func TestRender_PreservesShellBody(t *testing.T) {
	doc := parseShell(t, shell)
	doc.Upsert("og:title", "x")

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))

	assert.Contains(t, buf.String(), `<div id="app"></div>`)
	assert.Contains(t, buf.String(), "<!DOCTYPE html>")
}
