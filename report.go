package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// reportHeader is the fixed column order of the CSV report
var reportHeader = []string{
	"bill_url", "title", "published_date", "status",
	"matched_sectors", "sector_main", "keywords_found",
	"risk_score", "summary",
}

// BuildRow combines a parsed bill with its classification into one report
// row. keywords_found deliberately drops sector attribution: the union of
// matched stems across all sectors is deduplicated and sorted, so a stem
// shared by two sectors appears once.
func BuildRow(parsed ParsedBill, classifier *Classifier) OutputRow {
	result := classifier.Classify(parsed.FullText)
	risk := classifier.RiskScore(result, parsed.FullText)
	summary := Summarize(parsed.FullText, SummaryMaxChars)

	// Human-readable sector labels, in match order
	labels := make([]string, 0, len(result.Sectors))
	for _, sectorID := range result.Sectors {
		labels = append(labels, classifier.LabelFor(sectorID))
	}

	// Flattened keyword union across all sectors
	keywordSet := make(map[string]bool)
	for _, hits := range result.Keywords {
		for _, kw := range hits {
			keywordSet[kw] = true
		}
	}
	keywords := make([]string, 0, len(keywordSet))
	for kw := range keywordSet {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)

	return OutputRow{
		BillURL:        parsed.URL,
		Title:          parsed.Title,
		PublishedDate:  parsed.PublishedDate,
		Status:         parsed.Status,
		MatchedSectors: strings.Join(labels, ";"),
		SectorMain:     classifier.MainLabel(result),
		KeywordsFound:  strings.Join(keywords, ";"),
		RiskScore:      risk,
		Summary:        summary,
	}
}

// WriteReportTo writes the header and rows as CSV to w, truncating the row
// list to MaxReportRows. Used both for the output file and for the serve
// mode CSV download.
func WriteReportTo(w io.Writer, rows []OutputRow) error {
	if len(rows) > MaxReportRows {
		rows = rows[:MaxReportRows]
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.BillURL,
			row.Title,
			row.PublishedDate,
			row.Status,
			row.MatchedSectors,
			row.SectorMain,
			row.KeywordsFound,
			strconv.Itoa(row.RiskScore),
			row.Summary,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteReport writes the rows to a CSV file at path.
// The caller is expected not to call this with zero rows: an empty scan
// leaves the previous report untouched.
func WriteReport(rows []OutputRow, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := WriteReportTo(f, rows); err != nil {
		return err
	}

	return f.Close()
}
