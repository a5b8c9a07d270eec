package document

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/PuerkitoBio/goquery"
)

// FromHTML extracts the main content of an HTML page and converts it to
// markdown. The page title is recorded in the document metadata.
func FromHTML(r io.Reader, meta map[string]string) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Document{}, err
	}
	if meta == nil {
		meta = make(map[string]string, 1)
	}
	if title := strings.TrimSpace(doc.Find("head title").Text()); title != "" {
		meta["title"] = title
	}
	markdown, err := htmltomarkdown.ConvertString(mainContent(doc))
	if err != nil {
		return Document{}, err
	}
	return New(cleanMarkdown(markdown), meta), nil
}

// FromURL fetches a webpage and converts it to a markdown Document.
func FromURL(ctx context.Context, clt *http.Client, link string) (Document, error) {
	parsedURL, err := url.ParseRequestURI(link)
	if err != nil {
		return Document{}, err
	}
	if clt == nil {
		clt = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return Document{}, err
	}
	httpResp, err := clt.Do(httpReq)
	if err != nil {
		return Document{}, err
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode != http.StatusOK {
		return Document{}, fmt.Errorf("non-200 response fetching %s: %d", link, httpResp.StatusCode)
	}
	doc, err := goquery.NewDocumentFromReader(httpResp.Body)
	if err != nil {
		return Document{}, err
	}
	meta := map[string]string{
		"url":    link,
		"domain": parsedURL.Host,
	}
	if title := strings.TrimSpace(doc.Find("head title").Text()); title != "" {
		meta["title"] = title
	}
	markdown, err := htmltomarkdown.ConvertString(
		mainContent(doc),
		converter.WithDomain(fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)),
	)
	if err != nil {
		return Document{}, err
	}
	return New(cleanMarkdown(markdown), meta), nil
}

// mainContent extracts the main content from the webpage using custom heuristics
func mainContent(doc *goquery.Document) string {
	for _, tag := range []string{"script", "style", "nav", "header", "footer"} {
		doc.Find(tag).Remove()
	}
	for _, selector := range []string{"main", "#content, #main", ".content, .main", "article", "body"} {
		sel := doc.Find(selector)
		if sel.Length() > 0 {
			if txt, err := sel.Html(); err == nil && strings.TrimSpace(txt) != "" {
				return txt
			}
		}
	}
	txt, _ := doc.Html()
	return txt
}

var blankLines = regexp.MustCompile(`\r?\n{2,}`)

// cleanMarkdown removes excessive whitespace and normalizes formatting
func cleanMarkdown(content string) string {
	content = blankLines.ReplaceAllString(content, "\n\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
