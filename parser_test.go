package main

import (
	"strings"
	"testing"
)

// TestParseBillTitle tests the title fallback chain
func TestParseBillTitle(t *testing.T) {
	t.Run("prefers the title element", func(t *testing.T) {
		html := `<html><head><title>Проект Закону про землю</title></head>
			<body><h1>Інший заголовок</h1></body></html>`

		parsed, err := ParseBill(html, "https://example.com/bill/1")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if parsed.Title != "Проект Закону про землю" {
			t.Errorf("Title = %q, want title element text", parsed.Title)
		}
	})

	t.Run("falls back to the first heading", func(t *testing.T) {
		html := `<html><body><h2>Заголовок з h2</h2></body></html>`

		parsed, err := ParseBill(html, "https://example.com/bill/2")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if parsed.Title != "Заголовок з h2" {
			t.Errorf("Title = %q, want heading text", parsed.Title)
		}
	})

	t.Run("uses the literal fallback when nothing is found", func(t *testing.T) {
		html := `<html><body><p>Текст без заголовків</p></body></html>`

		parsed, err := ParseBill(html, "https://example.com/bill/3")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if parsed.Title != "No title found" {
			t.Errorf("Title = %q, want 'No title found'", parsed.Title)
		}
	})
}

// TestParseBillDate tests date detection in the flattened page text
func TestParseBillDate(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"dotted format", "Зареєстровано 15.03.2024 у Верховній Раді", "15.03.2024"},
		{"ISO format", "Дата реєстрації: 2024-03-15", "2024-03-15"},
		{"first match wins", "Подано 01.01.2024, розглянуто 02.02.2024", "01.01.2024"},
		{"no date", "Текст без дат", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseBill(BillPage("Проект", tt.body), "https://example.com/bill")
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if parsed.PublishedDate != tt.want {
				t.Errorf("PublishedDate = %q, want %q", parsed.PublishedDate, tt.want)
			}
		})
	}
}

// TestParseBillStatus tests status stem detection
func TestParseBillStatus(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"registered stem", "Законопроект зареєстровано вчора", "registered/accepted"},
		{"accepted stem", "Прийнято в першому читанні", "registered/accepted"},
		{"case-insensitive", "ЗАРЕЄСТРОВАНИЙ документ", "registered/accepted"},
		{"no status stems", "Проект на розгляді комітету", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseBill(BillPage("Проект", tt.body), "https://example.com/bill")
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if parsed.Status != tt.want {
				t.Errorf("Status = %q, want %q", parsed.Status, tt.want)
			}
		})
	}
}

// TestParseBillBody tests the longest-div body heuristic and the size cap
func TestParseBillBody(t *testing.T) {
	t.Run("selects the longest div", func(t *testing.T) {
		html := `<html><body>
			<div>коротке меню</div>
			<div>Цей закон стосується землі та субсидій для фермерів у поточному році.</div>
			<div>футер</div>
		</body></html>`

		parsed, err := ParseBill(html, "https://example.com/bill")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !strings.Contains(parsed.FullText, "стосується землі") {
			t.Errorf("FullText = %q, want the longest div's text", parsed.FullText)
		}
		if strings.Contains(parsed.FullText, "футер") {
			t.Errorf("FullText should not contain other divs, got %q", parsed.FullText)
		}
	})

	t.Run("falls back to the whole page without divs", func(t *testing.T) {
		html := `<html><body><p>Текст лише у параграфі.</p></body></html>`

		parsed, err := ParseBill(html, "https://example.com/bill")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !strings.Contains(parsed.FullText, "Текст лише у параграфі.") {
			t.Errorf("FullText = %q, want whole-page text fallback", parsed.FullText)
		}
	})

	t.Run("caps the body at MaxBodyChars characters", func(t *testing.T) {
		long := strings.Repeat("б", MaxBodyChars+500)
		html := "<html><body><div>" + long + "</div></body></html>"

		parsed, err := ParseBill(html, "https://example.com/bill")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got := len([]rune(parsed.FullText)); got != MaxBodyChars {
			t.Errorf("FullText length = %d runes, want %d", got, MaxBodyChars)
		}
	})

	t.Run("keeps the source URL", func(t *testing.T) {
		parsed, err := ParseBill(BillPage("Проект", "тіло"), "https://example.com/bill/9")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if parsed.URL != "https://example.com/bill/9" {
			t.Errorf("URL = %q, want the source URL", parsed.URL)
		}
	})
}

// TestFlattenText tests that sibling elements don't run together
func TestFlattenText(t *testing.T) {
	html := `<html><body><div><b>перше</b><i>друге</i>  третє
		</div></body></html>`

	parsed, err := ParseBill(html, "https://example.com/bill")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(parsed.FullText, "перше друге третє") {
		t.Errorf("FullText = %q, want space-joined fragments", parsed.FullText)
	}
}
