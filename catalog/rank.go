package catalog

import "strings"

// Result types for cross-collection search.
const (
	TypeCategory    = "category"
	TypeSubCategory = "subcategory"
	TypeProduct     = "product"
)

// Match is a search hit normalized to a common shape across collections.
type Match struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// hit pairs a normalized match with the stored slug so best-match selection
// can test exact name-or-slug equality.
type hit struct {
	Match
	Slug string
}

// pickBest chooses the single "jump to best result" destination. Priority:
// exact name-or-slug equality at category, then subcategory, then product
// level; failing that, the first (most recently created) category, then
// subcategory, then product; nil when every list is empty. The query must
// already be trimmed and lowercased.
func pickBest(q string, cats, subs, prods []hit) *Match {
	if q == "" {
		return nil
	}
	for _, tier := range [][]hit{cats, subs, prods} {
		if m := exactIn(tier, q); m != nil {
			return m
		}
	}
	for _, tier := range [][]hit{cats, subs, prods} {
		if len(tier) > 0 {
			m := tier[0].Match
			return &m
		}
	}
	return nil
}

func exactIn(hits []hit, q string) *Match {
	for i := range hits {
		if strings.ToLower(hits[i].Name) == q || hits[i].Slug == q {
			m := hits[i].Match
			return &m
		}
	}
	return nil
}

func matchesOf(hits []hit) []Match {
	out := make([]Match, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.Match)
	}
	return out
}
