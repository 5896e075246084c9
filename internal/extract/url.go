package extract

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Some sites serve bot-hostile empty shells without a browser user agent.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36"

// FromURL downloads a page and extracts its main article text.
// There is no retry: a fetch or parse failure is returned to the caller.
func FromURL(ctx context.Context, client *http.Client, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %q: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %q: unexpected status: %d", rawURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", rawURL, err)
	}
	return articleText(doc), nil
}

// articleText prefers the page's <article>, then <main>, then falls back to
// every <p> in the body. Paragraphs are joined with blank lines.
func articleText(doc *goquery.Document) string {
	for _, selector := range []string{"article", "main", "body"} {
		container := doc.Find(selector).First()
		if container.Length() == 0 {
			continue
		}
		if text := htmlParagraphText(container); text != "" {
			return text
		}
	}
	return strings.TrimSpace(doc.Text())
}

func htmlParagraphText(container *goquery.Selection) string {
	var paragraphs []string
	container.Find("p").Each(func(_ int, p *goquery.Selection) {
		if text := strings.TrimSpace(p.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	return strings.Join(paragraphs, "\n\n")
}
