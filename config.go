package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Configuration constants
var (
	// BasePortalURL is the root of the Rada portal, used to resolve relative links
	BasePortalURL = "https://itd.rada.gov.ua"

	// PeriodListURL is the listing page enumerating bills for the legislative period
	PeriodListURL = "https://itd.rada.gov.ua/billInfo/Bills/period"

	// OutputCSV is the default path of the report file
	OutputCSV = "bills_output.csv"

	// UserAgent identifies the monitor to the portal
	UserAgent = "Mozilla/5.0 (compatible; MVP-LegMonitor/1.0; +https://example.com)"

	// FetchTimeout is the HTTP timeout for each request
	FetchTimeout = 15 * time.Second

	// RequestDelay is the pause between bill page requests to be respectful
	// toward the portal. Overridable so tests can run without real delays.
	RequestDelay = 800 * time.Millisecond

	// DefaultLinkLimit caps how many bill links are collected from the listing page
	DefaultLinkLimit = 50

	// MaxReportRows caps how many rows end up in the CSV report
	MaxReportRows = 500

	// MaxBodyChars caps the bill body text kept for classification
	MaxBodyChars = 20000

	// SummaryMaxChars is the character budget for the two-sentence summary
	SummaryMaxChars = 300

	// CORS allowed origins for serve mode (configurable via environment)
	// In development (empty/default), allows any localhost port
	// In production, set CORS_ALLOWED_ORIGINS environment variable
	CORSAllowedOrigins = []string{}
)

// Sector is a single policy domain with the keyword stems that select it.
// Stems are matched as case-insensitive substrings of the bill body text.
type Sector struct {
	ID       string   `yaml:"id" json:"id"`
	Label    string   `yaml:"label" json:"label"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// SectorConfig is the ordered sector table the classifier is built from.
// Order matters: matched sectors are reported in table order and the first
// match becomes the bill's main sector.
type SectorConfig struct {
	Sectors         []Sector `yaml:"sectors"`
	PenaltyKeywords []string `yaml:"penalty_keywords"`
	OtherLabel      string   `yaml:"other_label"`
}

// DefaultSectorConfig returns the built-in sector keyword table.
// Stems are Ukrainian word roots so substring matching covers the inflected
// forms that appear in bill texts.
func DefaultSectorConfig() SectorConfig {
	return SectorConfig{
		Sectors: []Sector{
			{
				ID:    "agrarian",
				Label: "Аграрний",
				Keywords: []string{
					"земл", "сільськогосподар", "фермер", "підтримк", "субсид",
					"експорт", "хліб", "зерно", "фітосаніт", "фітосанитар", "квот", "аграр", "паї",
				},
			},
			{
				ID:    "social",
				Label: "Соціальний",
				Keywords: []string{
					"труд", "зарплат", "страхов", "пенс", "пенсій", "праці",
					"охорон", "соціал", "внеск", "штраф", "відпустк",
				},
			},
			{
				ID:    "corporate",
				Label: "Корпоративний",
				Keywords: []string{
					"подат", "валют", "корпоратив", "управл", "m&a", "злит",
					"придб", "борг", "вій", "ліміт", "концерн",
				},
			},
		},
		PenaltyKeywords: []string{"штраф", "штрафи", "санкц"},
		OtherLabel:      "Інший",
	}
}

// LoadSectorConfig loads a sector table from a YAML file, replacing the
// built-in one. Missing penalty keywords or "other" label fall back to the
// defaults so a file only has to override the sector list.
func LoadSectorConfig(path string) (SectorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SectorConfig{}, fmt.Errorf("failed to read sector config: %w", err)
	}

	var cfg SectorConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SectorConfig{}, fmt.Errorf("failed to parse sector config: %w", err)
	}

	if len(cfg.Sectors) == 0 {
		return SectorConfig{}, fmt.Errorf("sector config %s defines no sectors", path)
	}
	for _, s := range cfg.Sectors {
		if s.ID == "" || len(s.Keywords) == 0 {
			return SectorConfig{}, fmt.Errorf("sector config %s has a sector without id or keywords", path)
		}
	}

	defaults := DefaultSectorConfig()
	if len(cfg.PenaltyKeywords) == 0 {
		cfg.PenaltyKeywords = defaults.PenaltyKeywords
	}
	if cfg.OtherLabel == "" {
		cfg.OtherLabel = defaults.OtherLabel
	}

	return cfg, nil
}

// LoadConfig loads configuration from environment variables
func LoadConfig() {
	// Load .env file - try multiple locations
	envLocations := []string{
		".env",    // Current directory
		"../.env", // Parent directory
	}

	// Try to find and load .env file
	for _, envPath := range envLocations {
		absPath, err := filepath.Abs(envPath)
		if err != nil {
			continue
		}

		if _, err := os.Stat(absPath); err == nil {
			if err := godotenv.Load(absPath); err == nil {
				log.Printf("Loaded .env from: %s", absPath)
				break
			}
		}
	}

	// Output path override
	if output := os.Getenv("LEGMON_OUTPUT"); output != "" {
		OutputCSV = output
	}

	// Inter-request delay override, in milliseconds
	if delay := os.Getenv("LEGMON_REQUEST_DELAY"); delay != "" {
		if ms, err := strconv.Atoi(delay); err == nil && ms >= 0 {
			RequestDelay = time.Duration(ms) * time.Millisecond
		} else {
			log.Printf("Warning: ignoring invalid LEGMON_REQUEST_DELAY=%q", delay)
		}
	}

	// Link limit override
	if limit := os.Getenv("LEGMON_LINK_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			DefaultLinkLimit = n
		} else {
			log.Printf("Warning: ignoring invalid LEGMON_LINK_LIMIT=%q", limit)
		}
	}

	// Load CORS origins from environment if provided
	if corsOrigins := os.Getenv("CORS_ALLOWED_ORIGINS"); corsOrigins != "" {
		CORSAllowedOrigins = []string{}
		for _, origin := range filepath.SplitList(corsOrigins) {
			if origin != "" {
				CORSAllowedOrigins = append(CORSAllowedOrigins, origin)
			}
		}
	}
}
