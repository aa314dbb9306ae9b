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
	jsearchBaseURL = "https://jsearch.p.rapidapi.com/search"
	jsearchHost    = "jsearch.p.rapidapi.com"
	jsearchTimeout = 15 * time.Second
)

// JSearch fetches listings from the JSearch RapidAPI endpoint. Like the
// Adzuna client, a missing API key degrades to an empty result with a
// warning rather than an error.
type JSearch struct {
	APIKey string
	client *http.Client
}

// NewJSearch constructs a JSearch client.
func NewJSearch(apiKey string) *JSearch {
	return &JSearch{
		APIKey: apiKey,
		client: &http.Client{Timeout: jsearchTimeout},
	}
}

func (j *JSearch) Name() string { return "jsearch" }

func (j *JSearch) Kind() normalize.ProviderKind { return normalize.KindJobAPI }

type jsearchResponse struct {
	Data []jsearchJob `json:"data"`
}

// jsearchJob mirrors the subset of JSearch's job object the pipeline needs.
type jsearchJob struct {
	Title       string  `json:"job_title"`
	Employer    string  `json:"employer_name"`
	City        string  `json:"job_city"`
	State       string  `json:"job_state"`
	Description string  `json:"job_description"`
	ApplyLink   string  `json:"job_apply_link"`
	PostedAt    string  `json:"job_posted_at_datetime_utc"`
	SalaryMin   float64 `json:"job_min_salary"`
	SalaryMax   float64 `json:"job_max_salary"`
	SalaryText  string  `json:"job_salary"`
}

// Search implements Provider. The cursor is the 1-based page number.
func (j *JSearch) Search(ctx context.Context, query, location, cursor string) ([]model.RawJobRecord, string, error) {
	if j.APIKey == "" {
		log.Println("[jsearch] JSEARCH_API_KEY not set — skipping")
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

	params := url.Values{}
	params.Set("query", query+" in "+location)
	params.Set("page", strconv.Itoa(page))
	params.Set("num_pages", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, jsearchBaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("X-RapidAPI-Key", j.APIKey)
	req.Header.Set("X-RapidAPI-Host", jsearchHost)

	resp, err := j.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("http GET: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("jsearch returned %d: %s", resp.StatusCode, string(body))
	}

	var apiResp jsearchResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, "", fmt.Errorf("json unmarshal: %w", err)
	}

	records := make([]model.RawJobRecord, 0, len(apiResp.Data))
	for _, job := range apiResp.Data {
		loc := job.City
		if job.State != "" {
			if loc != "" {
				loc += ", "
			}
			loc += job.State
		}
		records = append(records, model.RawJobRecord{
			Title:       job.Title,
			Company:     job.Employer,
			Location:    loc,
			SalaryText:  job.SalaryText,
			SalaryMin:   job.SalaryMin,
			SalaryMax:   job.SalaryMax,
			Description: job.Description,
			URL:         job.ApplyLink,
			PostedAt:    job.PostedAt,
			Source:      j.Name(),
		})
	}

	next := ""
	if len(apiResp.Data) > 0 {
		next = strconv.Itoa(page + 1)
	}
	return records, next, nil
}
