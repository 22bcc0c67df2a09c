package main

import "time"

// BillLink is one candidate bill link found on the listing page
type BillLink struct {
	Title string `json:"title"` // anchor text, or "No title" when the anchor is empty
	URL   string `json:"url"`   // absolute URL, deduplication key
}

// ParsedBill holds the fields extracted from a single bill detail page
type ParsedBill struct {
	URL           string `json:"url"`
	Title         string `json:"title"`          // falls back to "No title found"
	PublishedDate string `json:"published_date"` // first DD.MM.YYYY or YYYY-MM-DD match, or ""
	Status        string `json:"status"`         // "registered/accepted" or ""
	FullText      string `json:"full_text"`      // body text, capped at MaxBodyChars
}

// Classification is the result of matching a bill's text against the sector table
type Classification struct {
	// Sectors lists the IDs of sectors with at least one keyword hit,
	// in sector-table order
	Sectors []string `json:"sectors"`
	// Keywords maps every sector ID to its deduplicated matched stems;
	// sectors without hits map to an empty list
	Keywords map[string][]string `json:"keywords"`
}

// OutputRow is one record of the CSV report
type OutputRow struct {
	BillURL        string `json:"bill_url"`
	Title          string `json:"title"`
	PublishedDate  string `json:"published_date"`
	Status         string `json:"status"`
	MatchedSectors string `json:"matched_sectors"` // semicolon-joined sector labels, match order
	SectorMain     string `json:"sector_main"`     // first matched sector's label, or the "other" label
	KeywordsFound  string `json:"keywords_found"`  // semicolon-joined sorted union across sectors
	RiskScore      int    `json:"risk_score"`      // always within [0, 10]
	Summary        string `json:"summary"`
}

// ScanResult is the outcome of one full pipeline run
type ScanResult struct {
	ID         string      `json:"id"`
	StartedAt  time.Time   `json:"started_at"`
	FinishedAt time.Time   `json:"finished_at"`
	LinkCount  int         `json:"link_count"` // links found on the listing page
	Rows       []OutputRow `json:"rows"`       // one row per successfully processed bill
}
