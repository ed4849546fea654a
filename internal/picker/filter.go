package picker

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"docdraft/internal/model"
)

type scoredItem struct {
	item  model.CatalogItem
	score int
}

// Filter narrows catalog options by query. Prefix matches rank first, then
// substring matches, then names within a small edit distance of the query.
func Filter(items []model.CatalogItem, query string) []model.CatalogItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]model.CatalogItem{}, items...)
	}
	maxDist := len([]rune(q)) / 3
	if maxDist < 1 {
		maxDist = 1
	}

	scored := make([]scoredItem, 0, len(items))
	for _, it := range items {
		name := strings.ToLower(it.Name)
		switch {
		case strings.HasPrefix(name, q):
			scored = append(scored, scoredItem{it, -2})
		case strings.Contains(name, q):
			scored = append(scored, scoredItem{it, -1})
		default:
			if d := closestWord(name, q); d <= maxDist {
				scored = append(scored, scoredItem{it, d})
			}
		}
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score < scored[j].score })

	out := make([]model.CatalogItem, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.item)
	}
	return out
}

func closestWord(name, q string) int {
	best := levenshtein.ComputeDistance(name, q)
	for _, w := range strings.Fields(name) {
		if d := levenshtein.ComputeDistance(w, q); d < best {
			best = d
		}
	}
	return best
}
