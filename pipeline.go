package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// ScanOptions configures one pipeline run. Zero values fall back to the
// global configuration, so tests can point the scan at an httptest server
// and drop the politeness delay.
type ScanOptions struct {
	ListingURL string
	Limit      int
	Delay      time.Duration
	Classifier *Classifier
}

// RunScan executes one full pass of the pipeline: fetch the listing page,
// extract bill links, then fetch, parse and classify each bill in sequence.
// A listing fetch failure aborts the run; a per-bill failure logs the error
// and skips that bill. Fetching is strictly sequential, with a fixed pause
// before each detail request.
func RunScan(ctx context.Context, opts ScanOptions) (*ScanResult, error) {
	listingURL := opts.ListingURL
	if listingURL == "" {
		listingURL = PeriodListURL
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLinkLimit
	}
	classifier := opts.Classifier
	if classifier == nil {
		classifier = NewClassifier(DefaultSectorConfig())
	}

	result := &ScanResult{
		ID:        uuid.New().String(),
		StartedAt: time.Now().UTC(),
	}

	// Listing page failure is fatal for the whole run
	listingHTML, err := FetchPage(ctx, listingURL)
	if err != nil {
		log.Printf("Failed to fetch bill listing: %v", err)
		return nil, fmt.Errorf("failed to fetch bill listing: %w", err)
	}

	links, err := ExtractBillLinks(listingHTML, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to extract bill links: %w", err)
	}
	log.Printf("Found %d candidate bill links (heuristic)", len(links))
	result.LinkCount = len(links)

	rows := make([]OutputRow, 0, len(links))
	for i, link := range links {
		// Check if context is cancelled
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		log.Printf("[%d/%d] Processing: %s - %s", i+1, len(links), link.Title, link.URL)

		// Rate limiting: pause before each detail request
		if opts.Delay > 0 {
			time.Sleep(opts.Delay)
		}

		pageHTML, err := FetchPage(ctx, link.URL)
		if err != nil {
			log.Printf("Failed to load %s: %v", link.URL, err)
			continue
		}

		parsed, err := ParseBill(pageHTML, link.URL)
		if err != nil {
			log.Printf("Failed to parse %s: %v", link.URL, err)
			continue
		}

		row := BuildRow(parsed, classifier)
		log.Printf("-> sector: %s | link: %s", row.SectorMain, row.BillURL)

		rows = append(rows, row)
	}

	result.Rows = rows
	result.FinishedAt = time.Now().UTC()
	return result, nil
}
