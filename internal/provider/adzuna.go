package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"chefwire/aggregator-service/internal/model"
	"chefwire/aggregator-service/internal/normalize"
)

const (
	adzunaBaseURL  = "https://api.adzuna.com/v1/api/jobs"
	adzunaPageSize = 50
	adzunaTimeout  = 15 * time.Second
)

// Adzuna fetches listings from the Adzuna public API. If AppID or AppKey is
// empty, Search returns (nil, "", nil) gracefully — the run simply skips
// this provider and logs a warning.
type Adzuna struct {
	AppID   string
	AppKey  string
	Country string // "us", "gb", …
	client  *http.Client
}

// NewAdzuna constructs an Adzuna client with a shared HTTP client.
func NewAdzuna(appID, appKey, country string) *Adzuna {
	if country == "" {
		country = "us"
	}
	return &Adzuna{
		AppID:   appID,
		AppKey:  appKey,
		Country: country,
		client:  &http.Client{Timeout: adzunaTimeout},
	}
}

func (a *Adzuna) Name() string { return "adzuna" }

func (a *Adzuna) Kind() normalize.ProviderKind { return normalize.KindJobAPI }

// adzunaResponse mirrors the top-level Adzuna JSON response.
type adzunaResponse struct {
	Results []adzunaResult `json:"results"`
	Count   int            `json:"count"`
}

// adzunaResult mirrors a single Adzuna listing.
type adzunaResult struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Company     adzunaCompany  `json:"company"`
	Location    adzunaLocation `json:"location"`
	SalaryMin   float64        `json:"salary_min"`
	SalaryMax   float64        `json:"salary_max"`
	RedirectURL string         `json:"redirect_url"`
	Created     string         `json:"created"`
}

type adzunaCompany struct {
	DisplayName string `json:"display_name"`
}

type adzunaLocation struct {
	DisplayName string `json:"display_name"`
}

// Search implements Provider. The cursor is the 1-based page number.
func (a *Adzuna) Search(ctx context.Context, query, location, cursor string) ([]model.RawJobRecord, string, error) {
	if a.AppID == "" || a.AppKey == "" {
		log.Println("[adzuna] ADZUNA_APP_ID / ADZUNA_APP_KEY not set — skipping")
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

	endpoint := fmt.Sprintf("%s/%s/search/%d", adzunaBaseURL, a.Country, page)

	params := url.Values{}
	params.Set("app_id", a.AppID)
	params.Set("app_key", a.AppKey)
	params.Set("results_per_page", strconv.Itoa(adzunaPageSize))
	params.Set("what", query)
	params.Set("where", location)
	params.Set("content-type", "application/json")
	params.Set("sort_by", "date")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("http GET: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("adzuna returned %d: %s", resp.StatusCode, string(body))
	}

	var apiResp adzunaResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, "", fmt.Errorf("json unmarshal: %w", err)
	}

	records := make([]model.RawJobRecord, 0, len(apiResp.Results))
	for _, r := range apiResp.Results {
		records = append(records, model.RawJobRecord{
			Title:       r.Title,
			Company:     r.Company.DisplayName,
			Location:    r.Location.DisplayName,
			SalaryMin:   r.SalaryMin,
			SalaryMax:   r.SalaryMax,
			Description: r.Description,
			URL:         r.RedirectURL,
			PostedAt:    r.Created,
			Source:      a.Name(),
		})
	}

	next := ""
	if len(apiResp.Results) == adzunaPageSize {
		next = strconv.Itoa(page + 1)
	}
	return records, next, nil
}
