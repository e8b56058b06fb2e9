// Package extract resolves scraped fields through ordered selector strategies.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"golang.org/x/net/html"
)

// Strategy finds single field value in document.
// Empty value means the strategy did not match.
type Strategy struct {
	Name string
	Find func(doc *goquery.Document) (string, error)
}

// Result is resolved field value with the name of the strategy which found it.
type Result struct {
	Value    string
	Strategy string
	Found    bool
}

// Ptr returns pointer to the value or nil if nothing was found.
func (r Result) Ptr() *string {
	if !r.Found {
		return nil
	}
	v := r.Value
	return &v
}

// Resolve runs strategies in order and returns the first non-empty value.
// Strategy errors and panics are logged and treated as misses.
func Resolve(doc *goquery.Document, logger *zerolog.Logger, field string, strategies ...Strategy) Result {
	for _, s := range strategies {
		value, err := run(doc, s)
		if err != nil {
			logger.Warn().
				Err(err).
				Str("field", field).
				Str("strategy", s.Name).
				Msg("extraction strategy failed")
			continue
		}
		if value = CollapseSpaces(value); value != "" {
			return Result{Value: value, Strategy: s.Name, Found: true}
		}
	}
	return Result{}
}

func run(doc *goquery.Document, s Strategy) (value string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("strategy panicked: %v", r)
		}
	}()
	return s.Find(doc)
}

var innerWhitespace = regexp.MustCompile(`\s+`)

// CollapseSpaces trims s and replaces whitespace runs with single space.
func CollapseSpaces(s string) string {
	return strings.TrimSpace(innerWhitespace.ReplaceAllString(s, " "))
}

// AfterLabel returns trimmed text following the first case-insensitive
// occurrence of label in text, cut at the first line break.
// It returns false when text does not contain label.
func AfterLabel(text, label string) (string, bool) {
	ix := strings.Index(strings.ToLower(text), strings.ToLower(label))
	if ix < 0 {
		return "", false
	}
	rest := text[ix+len(label):]
	if end := strings.IndexAny(rest, "\r\n"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(strings.TrimLeft(rest, " \t:")), true
}

// ClassTokens returns suffixes of the selection's class names starting with prefix.
func ClassTokens(sel *goquery.Selection, prefix string) []string {
	var tokens []string
	for _, class := range strings.Fields(sel.AttrOr("class", "")) {
		if strings.HasPrefix(class, prefix) && len(class) > len(prefix) {
			tokens = append(tokens, strings.TrimPrefix(class, prefix))
		}
	}
	return tokens
}

var blockElements = map[string]bool{
	"p": true, "div": true, "li": true, "ul": true, "ol": true, "br": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"tr": true, "td": true, "section": true, "article": true,
}

// BlockText returns text of the selection with line breaks between block elements.
func BlockText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		blockText(n, &b)
	}
	return b.String()
}

func blockText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return
		}
	}
	block := n.Type == html.ElementNode && blockElements[n.Data]
	if block {
		b.WriteByte('\n')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		blockText(c, b)
	}
	if block {
		b.WriteByte('\n')
	}
}
