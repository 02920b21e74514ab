// Package wiki scrapes the game wiki's rendered pages: a MediaWiki
// parse-API client plus the table parsers that turn page HTML into
// catalog items and recipe rows.
package wiki

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/tidwall/gjson"
)

// DefaultAPI is the wiki's MediaWiki API endpoint.
const DefaultAPI = "https://arcraiders.wiki/w/api.php"

// maxBodyBytes bounds API responses; wiki pages are well under this.
const maxBodyBytes = 8 << 20

// Page names the scraper knows about.
const (
	PageLoot       = "Loot"
	PageBlueprints = "Blueprints"
	PageWeapons    = "Weapons"
	PageShields    = "Shields"
	PageAugments   = "Augments"
	PageHealing    = "Healing"
	PageQuickUse   = "Quick_Use"
	PageGrenades   = "Grenades"
	PageTraps      = "Traps"
)

// Client fetches rendered page HTML through the wiki's parse API,
// caching responses for a TTL so repeated commands do not hammer an
// uncontrolled upstream.
type Client struct {
	api   string
	http  *http.Client
	cache *cache.Cache
}

// NewClient builds a client for the given API endpoint. A zero ttl
// disables caching.
func NewClient(api string, timeout, ttl time.Duration) *Client {
	if strings.TrimSpace(api) == "" {
		api = DefaultAPI
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	c := &Client{
		api:  api,
		http: &http.Client{Timeout: timeout},
	}
	if ttl > 0 {
		c.cache = cache.New(ttl, 2*ttl)
	}
	return c
}

// PageHTML returns the rendered HTML of one wiki page.
func (c *Client) PageHTML(ctx context.Context, page string) (string, error) {
	if c.cache != nil {
		if v, ok := c.cache.Get(page); ok {
			return v.(string), nil
		}
	}

	q := url.Values{}
	q.Set("action", "parse")
	q.Set("format", "json")
	q.Set("page", page)
	q.Set("prop", "text")
	q.Set("origin", "*")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.api+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build request for %q: %w", page, err)
	}
	res, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %q: %w", page, err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %q: HTTP %d", page, res.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read %q: %w", page, err)
	}

	// The parse API wraps the HTML as {"parse":{"text":{"*":"..."}}}.
	pageHTML := gjson.GetBytes(body, `parse.text.\*`).String()
	if pageHTML == "" {
		if apiErr := gjson.GetBytes(body, "error.info"); apiErr.Exists() {
			return "", fmt.Errorf("fetch %q: api error: %s", page, apiErr.String())
		}
		return "", fmt.Errorf("fetch %q: empty page text", page)
	}

	if c.cache != nil {
		c.cache.Set(page, pageHTML, cache.DefaultExpiration)
	}
	return pageHTML, nil
}
