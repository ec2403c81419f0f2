package viewer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

const (
	fetchTimeout     = 15 * time.Second
	maxBodySize      = 10 * 1024 * 1024 // 10 MB
	defaultUserAgent = "fern/0.1 (terminal viewer; +https://github.com/ferndev/fern)"
)

// sharedTransport is a tuned HTTP transport reused by all fetches.
var sharedTransport = &http.Transport{
	Proxy: http.ProxyFromEnvironment,
	DialContext: (&net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
	MaxIdleConns:          100,
	MaxIdleConnsPerHost:   10,
	IdleConnTimeout:       90 * time.Second,
	TLSHandshakeTimeout:   10 * time.Second,
	ResponseHeaderTimeout: 15 * time.Second,
	ForceAttemptHTTP2:     true,
}

// FetchResult holds the raw response for a remote location.
type FetchResult struct {
	FinalURL    string // after redirects
	StatusCode  int
	ContentType string
	Body        []byte
}

// Fetcher retrieves remote locations over HTTP.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher creates a Fetcher with sensible defaults.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Transport: sharedTransport,
			Timeout:   fetchTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("too many redirects (>10)")
				}
				return nil
			},
		},
		userAgent: defaultUserAgent,
	}
}

// Fetch retrieves the content at a remote location.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/markdown,text/plain,text/html;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetching %s: %s", rawURL, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &FetchResult{
		FinalURL:    resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// RenderRemote fetches a remote location and renders it. Markdown and plain
// text bodies render directly; HTML bodies go through readability
// extraction first so only the article content is shown.
func (f *Fetcher) RenderRemote(ctx context.Context, loc Location, width int) (*Document, error) {
	result, err := f.Fetch(ctx, loc.String())
	if err != nil {
		return nil, err
	}

	title := loc.String()
	markdown := string(result.Body)

	if isHTML(result.ContentType) {
		parsed, err := url.Parse(result.FinalURL)
		if err != nil {
			return nil, fmt.Errorf("parsing URL: %w", err)
		}
		article, err := readability.FromReader(bytes.NewReader(result.Body), parsed)
		if err != nil {
			return nil, fmt.Errorf("extracting article: %w", err)
		}
		if article.Title != "" {
			title = article.Title
		}
		markdown = htmlToMarkdown(article.Title, article.Content)
		if strings.TrimSpace(markdown) == "" {
			markdown = article.TextContent
		}
	}

	content, err := RenderMarkdown(markdown, width)
	if err != nil {
		content = markdown
	}

	return &Document{
		Location: loc,
		Title:    title,
		Content:  content,
	}, nil
}

func isHTML(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "text/html") || strings.Contains(ct, "application/xhtml+xml")
}

// htmlToMarkdown converts cleaned article HTML into markdown suitable for
// glamour. It handles the block elements readability emits; anything else
// falls back to its text content.
func htmlToMarkdown(title, content string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return ""
	}

	var md strings.Builder
	if title != "" {
		md.WriteString("# " + title + "\n\n")
	}
	doc.Find("body").Children().Each(func(_ int, s *goquery.Selection) {
		md.WriteString(convertNode(s))
	})
	return md.String()
}

func convertNode(s *goquery.Selection) string {
	var sb strings.Builder

	switch tag := goquery.NodeName(s); tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		if text := strings.TrimSpace(s.Text()); text != "" {
			sb.WriteString(strings.Repeat("#", int(tag[1]-'0')) + " " + text + "\n\n")
		}
	case "p":
		if text := strings.TrimSpace(s.Text()); text != "" {
			sb.WriteString(text + "\n\n")
		}
	case "ul", "ol":
		ordered := tag == "ol"
		s.ChildrenFiltered("li").Each(func(i int, li *goquery.Selection) {
			text := strings.TrimSpace(li.Text())
			if text == "" {
				return
			}
			if ordered {
				sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, text))
			} else {
				sb.WriteString("- " + text + "\n")
			}
		})
		sb.WriteString("\n")
	case "pre":
		code := s.Find("code").First()
		lang := ""
		if cls, ok := code.Attr("class"); ok {
			lang = strings.TrimPrefix(cls, "language-")
		}
		text := s.Text()
		if code.Length() > 0 {
			text = code.Text()
		}
		sb.WriteString("```" + lang + "\n" + strings.TrimRight(text, "\n") + "\n```\n\n")
	case "blockquote":
		for _, line := range strings.Split(strings.TrimSpace(s.Text()), "\n") {
			sb.WriteString("> " + strings.TrimSpace(line) + "\n")
		}
		sb.WriteString("\n")
	case "hr":
		sb.WriteString("---\n\n")
	case "table":
		// Tables degrade to plain rows; glamour handles the rest.
		s.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			var cells []string
			tr.Find("th, td").Each(func(_ int, td *goquery.Selection) {
				cells = append(cells, strings.TrimSpace(td.Text()))
			})
			if len(cells) > 0 {
				sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
			}
		})
		sb.WriteString("\n")
	case "div", "article", "section", "main", "header", "footer", "figure", "span":
		s.Children().Each(func(_ int, child *goquery.Selection) {
			sb.WriteString(convertNode(child))
		})
	default:
		if text := strings.TrimSpace(s.Text()); text != "" {
			sb.WriteString(text + "\n\n")
		}
	}

	return sb.String()
}
