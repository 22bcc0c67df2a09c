package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	// datePattern matches the two date formats seen on bill pages
	datePattern = regexp.MustCompile(`\d{2}\.\d{2}\.\d{4}|\d{4}-\d{2}-\d{2}`)

	// statusPattern matches the word stems that indicate a bill has been
	// registered or accepted
	statusPattern = regexp.MustCompile(`(?i)прийнят|прийнято|зареєстр`)
)

// ParseBill extracts title, date, status, and body text from a bill detail
// page. Every field is best-effort: missing pieces come back as empty strings
// (or fallback labels for the title), never as errors. Only unparseable HTML
// fails.
func ParseBill(pageHTML string, pageURL string) (ParsedBill, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return ParsedBill{}, fmt.Errorf("failed to parse bill HTML: %w", err)
	}

	// Title: <title> element, falling back to the first h1/h2 heading
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = flattenText(doc.Find("h1, h2").First())
	}
	if title == "" {
		title = "No title found"
	}

	// Date and status are detected in the flattened text of the whole page
	textBlob := flattenText(doc.Selection)

	date := datePattern.FindString(textBlob)

	status := ""
	if statusPattern.MatchString(textBlob) {
		status = "registered/accepted"
	}

	// Body text heuristic: the div with the longest flattened text is
	// assumed to hold the bill's main content
	longest := ""
	doc.Find("div").Each(func(i int, s *goquery.Selection) {
		t := flattenText(s)
		if len(t) > len(longest) {
			longest = t
		}
	})
	mainText := longest
	if mainText == "" {
		mainText = textBlob
	}

	return ParsedBill{
		URL:           pageURL,
		Title:         title,
		PublishedDate: date,
		Status:        status,
		FullText:      truncateRunes(mainText, MaxBodyChars),
	}, nil
}

// flattenText returns the selection's text with each text node trimmed and
// all fragments joined by single spaces, so sibling elements never run
// together.
func flattenText(s *goquery.Selection) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if fields := strings.Fields(n.Data); len(fields) > 0 {
				parts = append(parts, strings.Join(fields, " "))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range s.Nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}

// truncateRunes cuts s to at most max characters, counting code points
// rather than bytes so Cyrillic text is not split mid-character.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
