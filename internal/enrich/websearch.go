package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"chefwire/aggregator-service/internal/classify"
	"chefwire/aggregator-service/internal/rules"
)

const websearchTimeout = 10 * time.Second

// RuleSource yields the exclusion rule snapshot a lookup should filter
// against. Satisfied by *rules.Source, so TTL refreshes reach the
// domain filter, and by a bare *rules.RuleSet for fixed rules.
type RuleSource interface {
	Current() *rules.RuleSet
}

// WebSearchLookup resolves company websites through a Serper-style search
// API: query `"<company>" official website`, take the first organic result
// whose host is not a job board or social profile. With no API key the
// lookup degrades to a permanent miss and logs once.
type WebSearchLookup struct {
	APIKey   string
	Endpoint string // default https://google.serper.dev/search
	rules    RuleSource
	client   *http.Client

	warnNoKey sync.Once
}

// NewWebSearchLookup constructs a lookup sharing one HTTP client. src
// supplies the excluded-domain list used to reject job-board results.
func NewWebSearchLookup(apiKey, endpoint string, src RuleSource) *WebSearchLookup {
	if endpoint == "" {
		endpoint = "https://google.serper.dev/search"
	}
	return &WebSearchLookup{
		APIKey:   apiKey,
		Endpoint: endpoint,
		rules:    src,
		client:   &http.Client{Timeout: websearchTimeout},
	}
}

type serpResponse struct {
	Organic []serpResult `json:"organic"`
}

type serpResult struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// nonEmployerHosts are never a company's own website, whatever the rule set
// says.
var nonEmployerHosts = []string{
	"facebook.com",
	"instagram.com",
	"yelp.com",
	"tripadvisor.com",
	"wikipedia.org",
	"yellowpages.com",
	"mapquest.com",
	"opentable.com",
	"doordash.com",
	"grubhub.com",
	"ubereats.com",
}

// LookupCompanyWebsite implements Lookup.
func (w *WebSearchLookup) LookupCompanyWebsite(ctx context.Context, company string) (string, error) {
	company = strings.TrimSpace(company)
	if company == "" {
		return "", nil
	}
	if w.APIKey == "" {
		w.warnNoKey.Do(func() {
			log.Println("[enrich] SEARCH_API_KEY not set — website lookups disabled")
		})
		return "", nil
	}

	body, err := json.Marshal(map[string]string{
		"q": fmt.Sprintf("%q official website", company),
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.Endpoint, strings.NewReader(string(body)))
	if err != nil {
		return "", err
	}
	req.Header.Set("X-API-KEY", w.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("http POST: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("search API returned %d: %s", resp.StatusCode, string(raw))
	}

	var sr serpResponse
	if err := json.Unmarshal(raw, &sr); err != nil {
		return "", fmt.Errorf("json unmarshal: %w", err)
	}

	var rs *rules.RuleSet
	if w.rules != nil {
		rs = w.rules.Current()
	}
	for _, res := range sr.Organic {
		if res.Link == "" || !acceptable(res.Link, rs) {
			continue
		}
		return res.Link, nil
	}
	return "", nil
}

// acceptable rejects job boards, aggregators and social/directory hosts.
func acceptable(link string, rs *rules.RuleSet) bool {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return false
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	for _, h := range nonEmployerHosts {
		if strings.Contains(host, h) {
			return false
		}
	}
	return !classify.IsExcludedDomain(link, rs)
}
