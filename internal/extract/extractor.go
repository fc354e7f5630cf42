package extract

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

var (
	scriptRe   = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleRe    = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	markdownRe = regexp.MustCompile(`[#*_>\x60~\[\]()!-]+`)
)

// Article is the readable text extracted from a web page.
type Article struct {
	URL   string
	Title string
	Text  string
}

// Extractor turns a URL into summarizable article text.
type Extractor struct {
	fetcher   *Fetcher
	converter *md.Converter
}

// NewExtractor builds an extractor around the given fetcher.
func NewExtractor(fetcher *Fetcher) *Extractor {
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())
	return &Extractor{
		fetcher:   fetcher,
		converter: converter,
	}
}

// Extract fetches the page and returns its readable article text. Readability
// extraction is tried first; when it yields nothing usable the page is
// converted to markdown and flattened to plain text.
func (e *Extractor) Extract(ctx context.Context, pageURL string) (*Article, error) {
	result, err := e.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	article := &Article{URL: pageURL}

	parsed, err := readability.FromReader(bytes.NewReader(result.Body), parsedURL)
	if err == nil {
		article.Title = strings.TrimSpace(parsed.Title)
		article.Text = normalizeText(parsed.TextContent)
	}

	if article.Text == "" {
		text, title, convErr := e.markdownFallback(result.Body)
		if convErr != nil {
			return nil, fmt.Errorf("extract article from %s: %w", pageURL, convErr)
		}
		article.Text = text
		if article.Title == "" {
			article.Title = title
		}
	}

	if article.Text == "" {
		return nil, fmt.Errorf("no readable text found at %s", pageURL)
	}
	return article, nil
}

// markdownFallback converts raw HTML to markdown and strips the markup,
// keeping the prose.
func (e *Extractor) markdownFallback(body []byte) (text, title string, err error) {
	title = htmlTitle(body)

	cleaned := scriptRe.ReplaceAllString(string(body), "")
	cleaned = styleRe.ReplaceAllString(cleaned, "")

	markdown, err := e.converter.ConvertString(cleaned)
	if err != nil {
		return "", "", fmt.Errorf("convert to markdown: %w", err)
	}

	return normalizeText(markdownRe.ReplaceAllString(markdown, " ")), title, nil
}

// htmlTitle extracts the <title> element from an HTML document.
func htmlTitle(content []byte) string {
	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return ""
	}

	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "title" && n.FirstChild != nil {
			title = strings.TrimSpace(n.FirstChild.Data)
			return
		}
		for c := n.FirstChild; c != nil && title == ""; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return title
}

// normalizeText collapses whitespace runs so sentence splitting behaves on
// extracted content.
func normalizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
