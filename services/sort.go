package services

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"references-archive/models"
)

// newCollator builds the locale-aware comparator used by the sort engine and
// the facet extractor. Collators carry internal buffers and are not safe for
// concurrent use, so every call site gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.Und)
}

// sortArticles orders a filtered subset by the given key without mutating the
// input. Year keys are compared as strings, the same way titles are; years of
// differing digit counts therefore do not order numerically ("999" sorts
// before "1000" under oldest). An unknown key leaves the filtered order
// unchanged.
func sortArticles(articles []models.Article, sortBy string) []models.Article {
	out := make([]models.Article, len(articles))
	copy(out, articles)
	c := newCollator()
	switch sortBy {
	case "newest":
		sort.SliceStable(out, func(i, j int) bool {
			if cmp := c.CompareString(out[i].Year, out[j].Year); cmp != 0 {
				return cmp > 0
			}
			return c.CompareString(out[i].Title, out[j].Title) < 0
		})
	case "oldest":
		sort.SliceStable(out, func(i, j int) bool {
			if cmp := c.CompareString(out[i].Year, out[j].Year); cmp != 0 {
				return cmp < 0
			}
			return c.CompareString(out[i].Title, out[j].Title) < 0
		})
	case "title":
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Title, out[j].Title) < 0
		})
	}
	return out
}
