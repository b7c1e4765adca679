package incidecoder

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

// Client scrapes ingredient lists from an online ingredient directory.
// Lookups are best effort: any transport, parse, or missing-element failure
// is logged and degraded to an empty result, never surfaced to the caller.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	userAgent   string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new ingredient directory client
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	// Polite scraping rate: 1 request/sec, small burst for the
	// search-then-detail pair a single lookup issues.
	limiter := rate.NewLimiter(rate.Limit(1), 3)

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     strings.TrimRight(baseURL, "/"),
		userAgent:   userAgent,
		rateLimiter: limiter,
	}
}

// SetDebug enables verbose logging of lookups
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Ingredients looks up the ingredient list for a product name. The first
// search result's detail page is used; no result means an empty list.
func (c *Client) Ingredients(ctx context.Context, productName string) []string {
	ingredients, err := c.lookup(ctx, productName)
	if err != nil {
		log.Printf("[incidecoder] lookup failed for %q: %v", productName, err)
		return []string{}
	}
	return ingredients
}

func (c *Client) lookup(ctx context.Context, productName string) ([]string, error) {
	searchURL := fmt.Sprintf("%s/search?query=%s", c.baseURL, url.QueryEscape(productName))

	doc, err := c.fetchDocument(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	href, ok := doc.Find("a.card-link").First().Attr("href")
	if !ok {
		if c.debug {
			log.Printf("[incidecoder] no search results for %q", productName)
		}
		return []string{}, nil
	}

	detailURL := href
	if !strings.HasPrefix(href, "http") {
		detailURL = c.baseURL + href
	}

	detail, err := c.fetchDocument(ctx, detailURL)
	if err != nil {
		return nil, err
	}

	ingredients := []string{}
	detail.Find(".component-list li .component-name").Each(func(_ int, s *goquery.Selection) {
		ingredients = append(ingredients, strings.TrimSpace(s.Text()))
	})

	if c.debug {
		log.Printf("[incidecoder] found %d ingredients for %q", len(ingredients), productName)
	}
	return ingredients, nil
}

// fetchDocument executes a rate-limited GET and parses the body as HTML
func (c *Client) fetchDocument(ctx context.Context, reqURL string) (*goquery.Document, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, reqURL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return doc, nil
}
