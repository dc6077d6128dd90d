// Package match ranks catalog products against detected terms using
// per-term keyword strategies.
package match

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/pace-estimating/pace-cli/internal/model"
)

// Scoring weights. Each component scores 0-100 before weighting.
const (
	weightName      = 0.40
	weightKeywords  = 0.30
	weightCategory  = 0.20
	weightRelevance = 0.10
)

// Quality bands and the floor below which a candidate is not worth
// reporting.
const (
	qualityHighScore   = 85.0
	qualityMediumScore = 70.0
	minCandidateScore  = 20.0
	maxCandidates      = 3
)

// constructionKeywords prioritize products that belong on a heavy-civil
// job site over incidental catalog hits.
var constructionKeywords = []string{
	"formwork", "lumber", "plywood", "concrete", "rebar", "steel",
	"fasteners", "nails", "screws", "bolts", "hardware", "tools",
	"safety", "equipment", "materials", "supplies", "construction",
}

// constructionCategories are the catalog categories scored as directly
// construction-relevant.
var constructionCategories = map[string]bool{
	"formwork": true,
	"lumber":   true,
	"hardware": true,
	"concrete": true,
	"tools":    true,
	"safety":   true,
}

// Matcher scores a read-only product list against terms. Safe for
// concurrent use; each call builds fresh candidates.
type Matcher struct {
	products []model.CatalogProduct
}

// New creates a Matcher over the catalog product list. The list is held by
// reference and must not be mutated afterwards.
func New(products []model.CatalogProduct) *Matcher {
	return &Matcher{products: products}
}

// Candidates returns up to three products matching the term, ordered by
// descending score with ties broken by lower price then catalog order.
// An empty result is a valid outcome, not an error.
func (m *Matcher) Candidates(term, category string) []model.ProductCandidate {
	searchTerms := SearchTermsFor(term, category)

	type scored struct {
		candidate model.ProductCandidate
		order     int
	}
	var results []scored

	for i, p := range m.products {
		score := scoreProduct(p, searchTerms)
		if score < minCandidateScore {
			continue
		}

		c := model.ProductCandidate{
			ProductID:    p.ID,
			Name:         p.Name,
			Category:     p.Category,
			MatchScore:   score,
			Quality:      qualityFor(score),
			Price:        p.Price,
			Supplier:     p.Supplier,
			Availability: p.Availability,
			MatchReason:  matchReason(p, searchTerms, score),
		}
		if p.Price == nil {
			if est, ok := EstimatePrice(p); ok {
				c.EstimatedPrice = &est
			}
		}
		results = append(results, scored{candidate: c, order: i})
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i].candidate, results[j].candidate
		if a.MatchScore != b.MatchScore {
			return a.MatchScore > b.MatchScore
		}
		ap, aok := a.UnitPrice()
		bp, bok := b.UnitPrice()
		if aok != bok {
			return aok
		}
		if aok && ap != bp {
			return ap < bp
		}
		return results[i].order < results[j].order
	})

	if len(results) > maxCandidates {
		results = results[:maxCandidates]
	}

	candidates := make([]model.ProductCandidate, len(results))
	for i, r := range results {
		candidates[i] = r.candidate
	}

	zap.L().Debug("match: candidates scored",
		zap.String("term", term),
		zap.Int("candidates", len(candidates)),
	)
	return candidates
}

// scoreProduct combines four weighted components into a 0-100 score.
func scoreProduct(p model.CatalogProduct, searchTerms []string) float64 {
	if len(searchTerms) == 0 {
		return 0
	}

	score := scoreName(p, searchTerms)*weightName +
		scoreKeywords(p.Keywords, searchTerms)*weightKeywords +
		scoreCategory(p.Category)*weightCategory +
		scoreRelevance(p)*weightRelevance

	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// scoreName checks search terms against the product name and description.
// Any direct hit scores full marks; a partial-word overlap scores half.
func scoreName(p model.CatalogProduct, searchTerms []string) float64 {
	haystack := strings.ToLower(p.Name + " " + p.Description)

	best := 0.0
	for _, term := range searchTerms {
		if strings.Contains(haystack, term) {
			return 100
		}
		for _, word := range strings.Fields(term) {
			if len(word) >= 3 && strings.Contains(haystack, word) {
				if best < 50 {
					best = 50
				}
			}
		}
	}
	return best
}

// scoreKeywords is the fraction of search terms that hit a product keyword.
func scoreKeywords(keywords, searchTerms []string) float64 {
	if len(keywords) == 0 || len(searchTerms) == 0 {
		return 0
	}

	hits := 0
	for _, term := range searchTerms {
		for _, kw := range keywords {
			lkw := strings.ToLower(kw)
			if strings.Contains(lkw, term) || strings.Contains(term, lkw) {
				hits++
				break
			}
		}
	}
	return float64(hits) / float64(len(searchTerms)) * 100
}

func scoreCategory(category string) float64 {
	if constructionCategories[strings.ToLower(category)] {
		return 100
	}
	return 60
}

// scoreRelevance counts construction indicators in the product's own name
// and keywords, independent of the search terms.
func scoreRelevance(p model.CatalogProduct) float64 {
	text := strings.ToLower(p.Name)
	for _, kw := range p.Keywords {
		text += " " + strings.ToLower(kw)
	}

	indicators := 0
	for _, kw := range constructionKeywords {
		if strings.Contains(text, kw) {
			indicators++
		}
	}
	switch {
	case indicators >= 2:
		return 100
	case indicators == 1:
		return 70
	default:
		return 30
	}
}

func qualityFor(score float64) model.MatchQuality {
	switch {
	case score >= qualityHighScore:
		return model.MatchHigh
	case score >= qualityMediumScore:
		return model.MatchMedium
	default:
		return model.MatchLow
	}
}

// matchReason builds the audit string shown next to a candidate.
func matchReason(p model.CatalogProduct, searchTerms []string, score float64) string {
	name := strings.ToLower(p.Name)

	var reasons []string
	for _, term := range searchTerms {
		if strings.Contains(name, term) {
			reasons = append(reasons, fmt.Sprintf("name contains %q", term))
			if len(reasons) == 2 {
				break
			}
		}
	}
	if len(reasons) == 0 {
		return fmt.Sprintf("keyword match (score %.1f)", score)
	}
	return fmt.Sprintf("%s (score %.1f)", strings.Join(reasons, ", "), score)
}
