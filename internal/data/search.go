package data

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/udisondev/glamourgo/internal/model"
)

// searchLimit returns the max edit distance accepted for a query of n runes.
func searchLimit(n int) int {
	switch {
	case n <= 3:
		return 0
	case n <= 6:
		return 1
	case n <= 10:
		return 2
	default:
		return 3
	}
}

type searchHit struct {
	item model.Item
	dist int
}

// FindItems returns up to limit items whose name matches query.
//
// Substring matches rank first (distance 0), then names (or single words of names)
// within a small edit distance of the query. Ties are ordered by item id.
// limit <= 0 means no limit.
func (c *Catalog) FindItems(query string, limit int) []model.Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	maxDist := searchLimit(len([]rune(q)))

	var hits []searchHit
	for _, item := range c.items {
		name := strings.ToLower(item.Name)
		if strings.Contains(name, q) {
			hits = append(hits, searchHit{item: item, dist: 0})
			continue
		}

		best := levenshtein.ComputeDistance(q, name)
		for _, word := range strings.Fields(name) {
			if d := levenshtein.ComputeDistance(q, word); d < best {
				best = d
			}
		}
		if best <= maxDist {
			hits = append(hits, searchHit{item: item, dist: best})
		}
	}

	slices.SortStableFunc(hits, func(a, b searchHit) int {
		if c := cmp.Compare(a.dist, b.dist); c != 0 {
			return c
		}
		return cmp.Compare(a.item.ID, b.item.ID)
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]model.Item, len(hits))
	for i, h := range hits {
		out[i] = h.item
	}
	return out
}
