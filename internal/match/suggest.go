package match

import "sort"

// DefaultMaxDistance bounds how different a suggestion may be.
const DefaultMaxDistance = 2

// Suggest returns the candidates within maxDistance edits of name, closest
// first, ties broken alphabetically. name itself is never suggested.
func Suggest(name string, candidates []string, maxDistance int) []string {
	type scored struct {
		name string
		dist int
	}

	var hits []scored

	seen := map[string]struct{}{}

	for _, c := range candidates {
		if c == name {
			continue
		}

		if _, dup := seen[c]; dup {
			continue
		}

		seen[c] = struct{}{}

		if d := Levenshtein(name, c); d <= maxDistance {
			hits = append(hits, scored{c, d})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}

		return hits[i].name < hits[j].name
	})

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}

	return out
}
