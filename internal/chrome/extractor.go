// Package chrome extracts the reusable shell of a tenant's generated HTML
// document: the <head> contents, the header or nav block, and the footer.
// Composed pages splice these fragments in so they inherit the tenant's
// fonts, styles, and navigation without a shared design system.
package chrome

import (
	"strings"

	"golang.org/x/net/html"
)

// ExtractedChrome holds the shell fragments pulled from a generated document.
// Each field is an HTML fragment, or "" when the document has no such block.
type ExtractedChrome struct {
	// HeadContent is the inner content of the first <head> element
	HeadContent string
	// Header is the outer HTML of the first <header> element, falling back
	// to the first <nav> element when the document has no <header>
	Header string
	// Footer is the outer HTML of the first <footer> element
	Footer string
}

// IsEmpty reports whether extraction found nothing usable
func (e ExtractedChrome) IsEmpty() bool {
	return e.HeadContent == "" && e.Header == "" && e.Footer == ""
}

// capture tracks an in-progress extraction of one target element.
// Depth counting pairs each start tag with its real closing tag, so nested
// same-named elements (a <nav> inside a <nav>) cannot truncate the fragment.
type capture struct {
	name  string
	outer bool // include the element's own tags, not just its content
	depth int
	open  bool
	done  bool
	buf   strings.Builder
}

func (c *capture) consume(tt html.TokenType, name, raw string) {
	if c.done {
		return
	}
	if !c.open {
		if tt == html.StartTagToken && name == c.name {
			c.open = true
			c.depth = 1
			if c.outer {
				c.buf.WriteString(raw)
			}
		}
		return
	}
	switch {
	case tt == html.StartTagToken && name == c.name:
		c.depth++
		c.buf.WriteString(raw)
	case tt == html.EndTagToken && name == c.name:
		c.depth--
		if c.depth == 0 {
			if c.outer {
				c.buf.WriteString(raw)
			}
			c.open = false
			c.done = true
			return
		}
		c.buf.WriteString(raw)
	default:
		c.buf.WriteString(raw)
	}
}

// Extract pulls the head contents, header/nav block, and footer block out of
// a generated HTML document. Matching is case-insensitive, tolerates
// attributes on the opening tag, and takes the first occurrence of each
// target in document order. Source bytes are preserved verbatim.
//
// A tokenizer pass is used rather than a full tree build: the HTML5 tree
// construction algorithm relocates stray content out of <head>, which would
// silently drop fragments from the loosely structured documents the
// generation pipeline emits.
func Extract(doc string) ExtractedChrome {
	head := &capture{name: "head"}
	header := &capture{name: "header", outer: true}
	nav := &capture{name: "nav", outer: true}
	footer := &capture{name: "footer", outer: true}
	captures := []*capture{head, header, nav, footer}

	z := html.NewTokenizer(strings.NewReader(doc))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		// Raw's backing array is reused by the tokenizer; copy now
		raw := string(z.Raw())
		var name string
		switch tt {
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			tag, _ := z.TagName()
			name = string(tag)
		}
		for _, c := range captures {
			c.consume(tt, name, raw)
		}
	}

	extracted := ExtractedChrome{
		HeadContent: head.buf.String(),
		Header:      header.buf.String(),
		Footer:      footer.buf.String(),
	}
	if header.buf.Len() == 0 {
		extracted.Header = nav.buf.String()
	}
	return extracted
}
