package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"chefwire/aggregator-service/internal/model"
	"chefwire/aggregator-service/internal/normalize"
)

const (
	websearchEndpoint = "https://google.serper.dev/search"
	websearchPageSize = 20
	websearchTimeout  = 10 * time.Second
)

// WebSearch turns search-engine organic results into raw job records. This
// is the long tail: direct-employer career pages that never reach the job
// APIs. Results carry no company field — the normalizer's web_search
// mapping digs it out of the title or snippet — and the pipeline's
// excluded-domain filter weeds out the job boards.
type WebSearch struct {
	APIKey string
	client *http.Client
}

// NewWebSearch constructs a search-engine provider.
func NewWebSearch(apiKey string) *WebSearch {
	return &WebSearch{
		APIKey: apiKey,
		client: &http.Client{Timeout: websearchTimeout},
	}
}

func (w *WebSearch) Name() string { return "websearch" }

func (w *WebSearch) Kind() normalize.ProviderKind { return normalize.KindWebSearch }

type websearchResponse struct {
	Organic []websearchResult `json:"organic"`
}

type websearchResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
	Date    string `json:"date"`
}

// Search implements Provider. The cursor is the 1-based result page.
func (w *WebSearch) Search(ctx context.Context, query, location, cursor string) ([]model.RawJobRecord, string, error) {
	if w.APIKey == "" {
		log.Println("[websearch] SEARCH_API_KEY not set — skipping")
		return nil, "", nil
	}

	page := 1
	if cursor != "" {
		p, err := strconv.Atoi(cursor)
		if err != nil {
			return nil, "", fmt.Errorf("bad cursor %q: %w", cursor, err)
		}
		page = p
	}

	payload, err := json.Marshal(map[string]any{
		"q":    fmt.Sprintf("%s jobs %s", query, location),
		"page": page,
		"num":  websearchPageSize,
	})
	if err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, websearchEndpoint, strings.NewReader(string(payload)))
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("X-API-KEY", w.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("http POST: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("search API returned %d: %s", resp.StatusCode, string(body))
	}

	var apiResp websearchResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, "", fmt.Errorf("json unmarshal: %w", err)
	}

	records := make([]model.RawJobRecord, 0, len(apiResp.Organic))
	for _, r := range apiResp.Organic {
		if r.Link == "" {
			continue
		}
		records = append(records, model.RawJobRecord{
			Title:       r.Title,
			Location:    location,
			Description: r.Snippet,
			URL:         r.Link,
			PostedAt:    r.Date,
			Source:      w.Name(),
		})
	}

	next := ""
	if len(apiResp.Organic) == websearchPageSize {
		next = strconv.Itoa(page + 1)
	}
	return records, next, nil
}
