package detect

import "strings"

// TextQuality scores extracted page text in [0,1] using four cheap
// heuristics for common PDF extraction artifacts: excessive whitespace,
// hyphen-broken words, missing punctuation, and garbled characters.
func TextQuality(text string) float64 {
	if text == "" {
		return 0
	}

	issues := 0
	const totalChecks = 4
	n := float64(len(text))

	if float64(strings.Count(text, "  ")) > n*0.1 {
		issues++
	}
	if float64(strings.Count(text, "- ")) > n*0.05 {
		issues++
	}
	words := len(strings.Fields(text))
	if float64(strings.Count(text, ".")) < float64(words)*0.1 {
		issues++
	}
	garbled := 0
	for _, r := range text {
		if r > 127 && !isLetter(r) {
			garbled++
		}
	}
	if float64(garbled) > n*0.1 {
		issues++
	}

	quality := 1.0 - float64(issues)/totalChecks
	if quality < 0 {
		return 0
	}
	return quality
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= 0x00C0 && r <= 0x024F) // Latin-1 supplement and extended
}
