package cli

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// plainText reduces rich-text list content (as saved by the web editor, e.g.
// "<p>Grandioso &Eacute;s Tu</p>") to plain text. Content with no elements is
// returned unchanged, so a literal "&" or "<" survives, and spacing inside the
// text is kept as written.
func plainText(content string) string {
	if !strings.Contains(content, "<") {
		return content
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return content
	}
	body := doc.Find("body")
	if body.Find("*").Length() == 0 {
		return content
	}

	// Keep block boundaries as word breaks
	body.Find("br, p, div, li").Each(func(i int, sel *goquery.Selection) {
		sel.AfterHtml(" ")
	})

	return strings.TrimSpace(body.Text())
}
