package match

import "strings"

// searchStrategies maps a catalog term to the product keywords that find its
// supporting materials. Terms without a strategy fall back to their own
// surface form.
var searchStrategies = map[string][]string{
	"BALUSTER":             {"concrete", "form", "heavy", "plywood", "cdx"},
	"BLOCKOUT":             {"lumber", "2x4", "2x6", "construction", "grade"},
	"STAMPED_CONCRETE":     {"texture", "form", "liner", "pattern"},
	"RETAINING_WALL":       {"form", "tie", "plywood", "wall"},
	"EROSION_CONTROL":      {"post", "stake", "treated", "fence"},
	"FORMWORK":             {"plywood", "form", "cdx", "sheathing"},
	"FALSEWORK":            {"lumber", "support", "temporary", "structure"},
	"BRIDGE_RAILING":       {"steel", "rail", "post", "hardware"},
	"CONCRETE_FINISHING":   {"tool", "finish", "texture", "pattern"},
	"TEMPORARY_STRUCTURES": {"lumber", "plywood", "hardware", "support"},
}

// SearchTermsFor returns the lowered keyword list used to query the catalog
// for a term. The term's category is always appended as an extra signal.
func SearchTermsFor(term, category string) []string {
	keywords, ok := searchStrategies[strings.ToUpper(term)]
	if !ok {
		keywords = []string{strings.ToLower(strings.ReplaceAll(term, "_", " "))}
	}

	out := make([]string, 0, len(keywords)+1)
	out = append(out, keywords...)
	if category != "" {
		out = append(out, strings.ToLower(category))
	}
	return out
}
