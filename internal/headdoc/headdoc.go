// Package headdoc wraps a parsed HTML document behind the one operation
// the preview pipeline needs: upsert a meta element by key. Keys in the
// og: namespace live under a `property` attribute, everything else under
// `name`, matching how unfurling crawlers read the two conventions.
package headdoc

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type Document struct {
	doc  *goquery.Document
	head *goquery.Selection
}

// Parse builds a Document from raw HTML. It fails only when the parsed
// tree carries no <head> to write into.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	head := doc.Find("head").First()
	if head.Length() == 0 {
		return nil, errors.New("document has no head")
	}
	return &Document{doc: doc, head: head}, nil
}

// Upsert writes one meta element. An existing element matching the key
// under `property` (then `name`) is overwritten in place, so node
// identity is stable across runs; otherwise a fresh element is appended
// to the head. Applying the same key/value twice leaves the document
// unchanged after the first application.
func (d *Document) Upsert(key, value string) {
	sel := d.doc.Find(fmt.Sprintf("meta[property=%q]", key))
	if sel.Length() == 0 {
		sel = d.doc.Find(fmt.Sprintf("meta[name=%q]", key))
	}
	if sel.Length() > 0 {
		sel.First().SetAttr("content", value)
		return
	}

	attr := "name"
	if strings.HasPrefix(key, "og:") {
		attr = "property"
	}
	d.head.AppendNodes(&html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Meta,
		Data:     "meta",
		Attr: []html.Attribute{
			{Key: attr, Val: key},
			{Key: "content", Val: value},
		},
	})
}

// MetaContent returns the content of the meta element matching key under
// either attribute convention.
func (d *Document) MetaContent(key string) (string, bool) {
	sel := d.doc.Find(fmt.Sprintf("meta[property=%q]", key))
	if sel.Length() == 0 {
		sel = d.doc.Find(fmt.Sprintf("meta[name=%q]", key))
	}
	if sel.Length() == 0 {
		return "", false
	}
	return sel.First().AttrOr("content", ""), true
}

// MetaCount reports how many meta elements match key across both
// attribute conventions.
func (d *Document) MetaCount(key string) int {
	return d.doc.Find(fmt.Sprintf("meta[property=%q]", key)).Length() +
		d.doc.Find(fmt.Sprintf("meta[name=%q]", key)).Length()
}

// Render serializes the whole document.
func (d *Document) Render(w io.Writer) error {
	for _, n := range d.doc.Nodes {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("render html: %w", err)
		}
	}
	return nil
}
