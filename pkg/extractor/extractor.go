// Package extractor reduces an HTML document to the plain text of its main
// content, so downloaded HTML books can be counted like .txt files.
package extractor

import (
	"bufio"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// ExtractText lets go-readability find the main article content of html,
// then walks the distilled content with goquery and joins the text of the
// content-bearing tags into plain text, one block per line.
func ExtractText(rawURL, html string) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	readabilityParser := readability.NewParser()
	article, err := readabilityParser.Parse(strings.NewReader(html), parsedURL)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if title := normalizeText(article.Title); title != "" {
		b.WriteString(title)
		b.WriteString("\n")
	}
	doc.Find("h1,h2,h3,h4,p,li,pre,blockquote").Each(func(i int, s *goquery.Selection) {
		if text := normalizeText(s.Text()); text != "" {
			b.WriteString(text)
			b.WriteString("\n")
		}
	})

	return b.String(), nil
}

// normalizeText cleans up a string by trimming space and collapsing excess
// newlines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
