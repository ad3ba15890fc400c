package entity

import (
	"slices"
	"strings"

	"shopseva/internal/util"
)

// ShopFilter is what an anonymous visitor can narrow the directory by.
// Empty fields do not constrain the result.
type ShopFilter struct {
	Category string
	State    string
	District string
	Search   string
}

// Normalize trims every field.
func (f ShopFilter) Normalize() ShopFilter {
	return ShopFilter{
		Category: strings.TrimSpace(f.Category),
		State:    strings.TrimSpace(f.State),
		District: strings.TrimSpace(f.District),
		Search:   strings.TrimSpace(f.Search),
	}
}

// Matches reports whether the listing is public and satisfies every set field.
// Approval is checked first and is never optional.
func (f ShopFilter) Matches(s *Shop) bool {
	if s == nil || !s.IsPubliclyVisible() {
		return false
	}
	if f.Category != "" && s.Category != f.Category {
		return false
	}
	if f.State != "" && s.State != f.State {
		return false
	}
	if f.District != "" && s.District != f.District {
		return false
	}
	if f.Search != "" && !util.ContainsFold(s.Name, f.Search) && !util.ContainsFold(s.Address, f.Search) {
		return false
	}

	return true
}

// ShopPage is one truncated result of the public directory.
type ShopPage struct {
	Shops []*Shop `json:"shops"`
	// Total counts every match before truncation.
	Total int `json:"total"`
	Limit int `json:"limit"`
}

// FilterVisible returns the matching public listings, newest first, capped at limit.
// A limit of zero or less returns every match.
func FilterVisible(shops []*Shop, filter ShopFilter, limit int) ShopPage {
	filter = filter.Normalize()

	matched := make([]*Shop, 0, len(shops))
	for _, s := range shops {
		if filter.Matches(s) {
			matched = append(matched, s)
		}
	}

	slices.SortStableFunc(matched, func(a, b *Shop) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	total := len(matched)
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	return ShopPage{Shops: matched, Total: total, Limit: limit}
}
