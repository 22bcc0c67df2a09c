package main

import "strings"

// maxRiskScore is the ceiling of the heuristic risk score
const maxRiskScore = 10

// Classifier matches bill text against an immutable sector keyword table.
// Classification is pure substring search over the lower-cased text; a stem
// matching inside an unrelated longer word is accepted imprecision.
type Classifier struct {
	cfg SectorConfig
}

// NewClassifier creates a classifier from the given sector table.
// The table is not modified after construction.
func NewClassifier(cfg SectorConfig) *Classifier {
	return &Classifier{cfg: cfg}
}

// Classify lower-cases the text once and tests every keyword stem of every
// sector for substring containment. Matched sectors are returned in table
// order, and every sector (matched or not) gets an entry in the keyword map.
func (c *Classifier) Classify(text string) Classification {
	low := strings.ToLower(text)

	keywords := make(map[string][]string, len(c.cfg.Sectors))
	var matched []string

	for _, sector := range c.cfg.Sectors {
		hits := []string{}
		seen := make(map[string]bool)
		for _, kw := range sector.Keywords {
			if seen[kw] {
				continue
			}
			if strings.Contains(low, strings.ToLower(kw)) {
				seen[kw] = true
				hits = append(hits, kw)
			}
		}

		keywords[sector.ID] = hits
		if len(hits) > 0 {
			matched = append(matched, sector.ID)
		}
	}

	return Classification{Sectors: matched, Keywords: keywords}
}

// RiskScore computes the heuristic severity proxy for a classified bill:
// 2 points per matched sector, 1 per matched keyword, plus a flat 3-point
// bonus when the text mentions any penalty/fine stem. The result is clamped
// to maxRiskScore; no floor is needed since every term is non-negative.
func (c *Classifier) RiskScore(result Classification, text string) int {
	score := 2 * len(result.Sectors)
	for _, sectorID := range result.Sectors {
		score += len(result.Keywords[sectorID])
	}

	low := strings.ToLower(text)
	for _, kw := range c.cfg.PenaltyKeywords {
		if strings.Contains(low, strings.ToLower(kw)) {
			score += 3
			break
		}
	}

	if score > maxRiskScore {
		score = maxRiskScore
	}
	return score
}

// LabelFor returns the human-readable label for a sector ID, or the ID
// itself when the table has no label for it.
func (c *Classifier) LabelFor(sectorID string) string {
	for _, sector := range c.cfg.Sectors {
		if sector.ID == sectorID {
			return sector.Label
		}
	}
	return sectorID
}

// MainLabel returns the label of the first matched sector, or the "other"
// label when nothing matched.
func (c *Classifier) MainLabel(result Classification) string {
	if len(result.Sectors) == 0 {
		return c.cfg.OtherLabel
	}
	return c.LabelFor(result.Sectors[0])
}
