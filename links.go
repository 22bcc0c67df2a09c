package main

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// billHrefPattern matches hrefs that point at bill detail pages.
// The portal has used several URL layouts over time, so all known
// variants are kept.
var billHrefPattern = regexp.MustCompile(`(?i)Bills/Details|BillInfo/Details|billInfo/Bill`)

// ExtractBillLinks scans listing-page HTML for anchors that look like bill
// detail links. Relative hrefs are resolved against BasePortalURL. Links are
// deduplicated by absolute URL preserving first-seen order, and collection
// stops once limit unique links are found.
func ExtractBillLinks(html string, limit int) ([]BillLink, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing HTML: %w", err)
	}

	base, err := url.Parse(BasePortalURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base portal URL: %w", err)
	}

	seen := make(map[string]bool)
	var links []BillLink

	doc.Find("a[href]").EachWithBreak(func(i int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		if href == "" {
			return true
		}

		// Heuristic match: known detail-page patterns, or anything
		// with "bill" in the path
		if !billHrefPattern.MatchString(href) && !strings.Contains(strings.ToLower(href), "bill") {
			return true
		}

		// Resolve relative hrefs against the portal root
		ref, err := url.Parse(href)
		if err != nil {
			return true // Skip malformed hrefs
		}
		abs := base.ResolveReference(ref).String()

		if seen[abs] {
			return true
		}
		seen[abs] = true

		title := strings.TrimSpace(s.Text())
		if title == "" {
			title = "No title"
		}

		links = append(links, BillLink{Title: title, URL: abs})

		// Stop once enough unique links are collected
		return len(links) < limit
	})

	return links, nil
}
