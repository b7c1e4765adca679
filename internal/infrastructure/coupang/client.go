package coupang

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"github.com/hero4147/cosmetic-compare-backend/internal/domain"
)

// Client scrapes price listings from the retail search. Same failure
// contract as the ingredient client: any upstream error is logged and
// degraded to an empty result.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	userAgent   string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new retail search client
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
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

// Listings searches the retail site for a keyword and returns the usable
// result cards. A card is kept only when it has a name, a link, and a price
// that parses to a non-zero integer; everything else is dropped silently.
func (c *Client) Listings(ctx context.Context, keyword string) []domain.PriceListing {
	listings, err := c.search(ctx, keyword)
	if err != nil {
		log.Printf("[coupang] search failed for %q: %v", keyword, err)
		return []domain.PriceListing{}
	}
	return listings
}

func (c *Client) search(ctx context.Context, keyword string) ([]domain.PriceListing, error) {
	searchURL := fmt.Sprintf("%s/np/search?q=%s", c.baseURL, url.QueryEscape(keyword))

	doc, err := c.fetchDocument(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	listings := []domain.PriceListing{}
	doc.Find("ul.search-product-list li.search-product").Each(func(_ int, card *goquery.Selection) {
		name := strings.TrimSpace(card.Find("div.name").Text())
		priceText := card.Find("strong.price-value").First().Text()
		href, hasLink := card.Find("a.search-product-link").Attr("href")

		price := parsePrice(priceText)
		if name == "" || price == 0 || !hasLink {
			return
		}

		listings = append(listings, domain.PriceListing{
			Name:  name,
			Price: price,
			Link:  c.baseURL + href,
		})
	})

	if c.debug {
		log.Printf("[coupang] found %d listings for %q", len(listings), keyword)
	}
	return listings, nil
}

// parsePrice strips thousands separators and parses the leading digit run as
// an integer, ignoring trailing text such as currency symbols. Anything
// without a leading digit yields 0, which excludes the card.
func parsePrice(text string) int {
	cleaned := strings.TrimSpace(strings.ReplaceAll(text, ",", ""))

	end := 0
	for end < len(cleaned) && cleaned[end] >= '0' && cleaned[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	price, err := strconv.Atoi(cleaned[:end])
	if err != nil {
		return 0
	}
	return price
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
