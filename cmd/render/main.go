package main

import (
	"bytes"
	"context"
	"flag"
	"log"
	"net/url"
	"os"

	"seripreview/internal/catalog"
	"seripreview/internal/headdoc"
	"seripreview/internal/preview"
	"seripreview/pkg/utils"
)

// One-shot renderer: run the preview pipeline for a single URL against a
// JSON catalog and print the rewritten document. Useful for checking
// what a crawler would see without standing up the server.
func main() {
	var (
		pageRef     = flag.String("url", "", "page URL to render previews for (required)")
		shellPath   = flag.String("shell", "web/index.html", "SPA shell document")
		catalogPath = flag.String("catalog", "", "JSON catalog file (title -> record); optional")
	)
	flag.Parse()

	if *pageRef == "" {
		flag.Usage()
		os.Exit(2)
	}

	pageURL, err := url.Parse(*pageRef)
	if err != nil {
		log.Fatalf("parse url: %v", err)
	}

	var cat catalog.Catalog = catalog.NewMemory(nil)
	if *catalogPath != "" {
		mem, err := catalog.LoadMemory(*catalogPath)
		if err != nil {
			log.Fatalf("load catalog: %v", err)
		}
		cat = mem
	}

	shell, err := preview.LoadShell(*shellPath)
	if err != nil {
		log.Fatalf("load shell: %v", err)
	}

	doc, err := headdoc.Parse(bytes.NewReader(shell))
	if err != nil {
		log.Fatalf("parse shell: %v", err)
	}

	site := utils.LoadSiteConfig()
	pipeline := preview.NewPipeline(cat, preview.DefaultSite(site.BaseOrigin), site.BaseOrigin)
	pipeline.Refresh(context.Background(), pageURL, doc)

	if err := doc.Render(os.Stdout); err != nil {
		log.Fatalf("render: %v", err)
	}
}
