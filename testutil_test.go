package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestHelper provides utilities for tests
type TestHelper struct {
	t       *testing.T
	tempDir string
}

// NewTestHelper creates a new test helper
func NewTestHelper(t *testing.T) *TestHelper {
	return &TestHelper{t: t}
}

// CreateTempDir creates a temporary directory for testing
func (h *TestHelper) CreateTempDir() string {
	tempDir, err := os.MkdirTemp("", "legmonitor-test-*")
	if err != nil {
		h.t.Fatalf("Failed to create temp dir: %v", err)
	}
	h.tempDir = tempDir
	return tempDir
}

// Cleanup removes the temporary directory
func (h *TestHelper) Cleanup() {
	if h.tempDir != "" {
		os.RemoveAll(h.tempDir)
	}
}

// WriteFile writes data to a file in the temp directory and returns its path
func (h *TestHelper) WriteFile(filename string, data string) string {
	if h.tempDir == "" {
		h.CreateTempDir()
	}

	path := filepath.Join(h.tempDir, filename)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		h.t.Fatalf("Failed to write file: %v", err)
	}

	return path
}

// ListingPage builds listing-page HTML with the given bill hrefs
func ListingPage(hrefs ...string) string {
	var b strings.Builder
	b.WriteString("<html><body><ul>")
	for i, href := range hrefs {
		b.WriteString(fmt.Sprintf(`<li><a href="%s">Законопроект %d</a></li>`, href, i+1))
	}
	b.WriteString("</ul></body></html>")
	return b.String()
}

// BillPage builds a minimal bill detail page with the given title and body
func BillPage(title, body string) string {
	return fmt.Sprintf(`<html><head><title>%s</title></head>
<body><div class="nav">меню</div><div class="content">%s</div></body></html>`, title, body)
}

// MockPortal creates a fake portal server. Paths map to canned HTML bodies;
// unknown paths return 404.
func MockPortal(t *testing.T, pages map[string]string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	}))
}

// withBasePortal overrides BasePortalURL for the duration of a test so
// extracted links resolve against the mock portal.
func withBasePortal(t *testing.T, base string) {
	old := BasePortalURL
	BasePortalURL = base
	t.Cleanup(func() { BasePortalURL = old })
}

// SampleRow returns a fully populated report row for writer tests
func SampleRow(url string) OutputRow {
	return OutputRow{
		BillURL:        url,
		Title:          "Про внесення змін, \"лапки\" та коми",
		PublishedDate:  "01.02.2024",
		Status:         "registered/accepted",
		MatchedSectors: "Аграрний;Соціальний",
		SectorMain:     "Аграрний",
		KeywordsFound:  "земл;субсид",
		RiskScore:      7,
		Summary:        "Перше речення. Друге, з комою.",
	}
}

// testTime returns a fixed time for testing
func testTime() time.Time {
	return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}
