package ledger

import (
	"strings"

	"fjacquet/vx-finance/internal/models"

	"github.com/agnivade/levenshtein"
)

// maxSuggestionRatio bounds the edit distance, relative to the longer name,
// for a category to be suggested.
const maxSuggestionRatio = 0.4

// closestCategory returns the existing category name nearest to name.
func closestCategory(name string, categories []models.Category) (string, bool) {
	target := strings.ToLower(name)
	best := ""
	bestRatio := 1.0
	for _, c := range categories {
		candidate := strings.ToLower(c.Name)
		longest := len([]rune(candidate))
		if n := len([]rune(target)); n > longest {
			longest = n
		}
		if longest == 0 {
			continue
		}
		ratio := float64(levenshtein.ComputeDistance(target, candidate)) / float64(longest)
		if ratio < bestRatio {
			best, bestRatio = c.Name, ratio
		}
	}
	if best == "" || bestRatio >= maxSuggestionRatio {
		return "", false
	}
	return best, true
}
