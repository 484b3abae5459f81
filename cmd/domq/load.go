package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"

	minidomext "github.com/hove-io/minidom-ext"
	"github.com/hove-io/minidom-ext/htmldom"
	"github.com/hove-io/minidom-ext/xmldom"
)

// document is one parsed input. Exactly one of xml and html is set; size is
// the raw input length for the dump summary.
type document struct {
	xml  *xmldom.Element
	html htmldom.Node
	size int
}

func (d document) isHTML() bool { return d.xml == nil }

func loadDocument(path string) (document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return document{}, errors.Wrap(err, "could not read document")
	}

	if flagHTML || isHTMLFile(path) {
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
		if err != nil {
			return document{}, errors.Wrap(err, "could not parse document")
		}
		root, ok := htmldom.FromSelection(doc.Find("html"))
		if !ok {
			return document{}, errors.New("no root element")
		}
		return document{html: root, size: len(data)}, nil
	}

	root, err := xmldom.Parse(bytes.NewReader(data))
	if err != nil {
		return document{}, err
	}
	return document{xml: root, size: len(data)}, nil
}

func isHTMLFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// walk resolves a slash-separated path of child names from root, requiring
// every step to match exactly one child.
func walk[E minidomext.Element[E]](root E, path string) (E, error) {
	cur := root
	for _, name := range splitPath(path) {
		next, err := minidomext.TryOnlyChild(cur, name)
		if err != nil {
			var zero E
			return zero, err
		}
		cur = next
	}
	return cur, nil
}

func splitPath(path string) []string {
	var names []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			names = append(names, s)
		}
	}
	return names
}
