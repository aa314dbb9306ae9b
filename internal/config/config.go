// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"chefwire/aggregator-service/internal/model"
)

// Config holds all runtime configuration for the aggregator service.
type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string

	AdzunaAppID   string
	AdzunaAppKey  string
	AdzunaCountry string // e.g. "us", "gb"
	JSearchAPIKey string
	SearchAPIKey  string // Serper-style web search + website lookup

	TelegramToken  string
	TelegramChatID int64

	RulesFile           string // optional YAML exclusion overlay
	SearchesFile        string // optional YAML search-pair list
	ScrapeIntervalHours int    // how often the cron job fires
	RulesRefreshMinutes int    // excluded_companies table TTL
	AllowMissingIndex   bool   // run even if the identity index fails to load

	SearchPairs []model.SearchPair
}

// defaultPairs cover the core culinary roles in the markets the viewer
// serves, used when no searches file is configured.
var defaultPairs = []model.SearchPair{
	{Query: "executive chef", Location: "New York, NY"},
	{Query: "sous chef", Location: "New York, NY"},
	{Query: "pastry chef", Location: "New York, NY"},
	{Query: "chef de cuisine", Location: "Chicago, IL"},
	{Query: "restaurant manager", Location: "Chicago, IL"},
}

// Load reads .env (if present) and environment variables, then the optional
// searches file, and returns a validated Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	cfg := &Config{
		Port:                envDefault("AGGREGATOR_PORT", "8081"),
		DatabaseURL:         dbURL,
		RedisURL:            redisURL,
		AdzunaAppID:         os.Getenv("ADZUNA_APP_ID"),
		AdzunaAppKey:        os.Getenv("ADZUNA_APP_KEY"),
		AdzunaCountry:       envDefault("ADZUNA_COUNTRY", "us"),
		JSearchAPIKey:       os.Getenv("JSEARCH_API_KEY"),
		SearchAPIKey:        os.Getenv("SEARCH_API_KEY"),
		TelegramToken:       os.Getenv("TELEGRAM_BOT_TOKEN"),
		RulesFile:           os.Getenv("RULES_FILE"),
		SearchesFile:        os.Getenv("SEARCHES_FILE"),
		ScrapeIntervalHours: 6,
		RulesRefreshMinutes: 60,
	}

	if s := os.Getenv("SCRAPE_INTERVAL_HOURS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("SCRAPE_INTERVAL_HOURS must be a positive integer, got %q", s)
		}
		cfg.ScrapeIntervalHours = v
	}

	if s := os.Getenv("RULES_REFRESH_MINUTES"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("RULES_REFRESH_MINUTES must be a positive integer, got %q", s)
		}
		cfg.RulesRefreshMinutes = v
	}

	if s := os.Getenv("TELEGRAM_CHAT_ID"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TELEGRAM_CHAT_ID must be an integer, got %q", s)
		}
		cfg.TelegramChatID = id
	}

	if s := os.Getenv("ALLOW_MISSING_IDENTITY_INDEX"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("ALLOW_MISSING_IDENTITY_INDEX must be a boolean, got %q", s)
		}
		cfg.AllowMissingIndex = v
	}

	pairs, err := loadSearchPairs(cfg.SearchesFile)
	if err != nil {
		return nil, err
	}
	cfg.SearchPairs = pairs

	return cfg, nil
}

// loadSearchPairs reads the YAML searches file, falling back to the
// defaults when the path is unset or the file is missing.
func loadSearchPairs(path string) ([]model.SearchPair, error) {
	if path == "" {
		return defaultPairs, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultPairs, nil
		}
		return nil, fmt.Errorf("read searches file %q: %w", path, err)
	}

	var doc struct {
		Searches []model.SearchPair `yaml:"searches"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse searches file %q: %w", path, err)
	}
	if len(doc.Searches) == 0 {
		return defaultPairs, nil
	}
	return doc.Searches, nil
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
