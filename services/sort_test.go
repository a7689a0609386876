package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"references-archive/models"
)

func sortFixture() []models.Article {
	return []models.Article{
		{ID: "1", Title: "Charlie", Year: "2018"},
		{ID: "2", Title: "Alpha", Year: "2020"},
		{ID: "3", Title: "Bravo", Year: "2018"},
		{ID: "4", Title: "Delta", Year: "2017"},
	}
}

func ids(articles []models.Article) []string {
	out := make([]string, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.ID)
	}
	return out
}

func TestSortArticlesNewest(t *testing.T) {
	sorted := sortArticles(sortFixture(), "newest")

	// Descending year; equal years break the tie on title ascending.
	assert.Equal(t, []string{"2", "3", "1", "4"}, ids(sorted))
}

func TestSortArticlesOldest(t *testing.T) {
	sorted := sortArticles(sortFixture(), "oldest")

	assert.Equal(t, []string{"4", "3", "1", "2"}, ids(sorted))
}

func TestSortArticlesTitle(t *testing.T) {
	sorted := sortArticles(sortFixture(), "title")

	assert.Equal(t, []string{"2", "3", "1", "4"}, ids(sorted))
}

func TestSortArticlesUnknownKeyKeepsOrder(t *testing.T) {
	input := sortFixture()

	sorted := sortArticles(input, "relevance")

	assert.Equal(t, ids(input), ids(sorted))
}

func TestSortArticlesDoesNotMutateInput(t *testing.T) {
	input := sortFixture()

	sortArticles(input, "title")

	assert.Equal(t, ids(sortFixture()), ids(input))
}

func TestSortArticlesComparesYearsAsStrings(t *testing.T) {
	input := []models.Article{
		{ID: "1", Title: "Old", Year: "999"},
		{ID: "2", Title: "New", Year: "1000"},
	}

	sorted := sortArticles(input, "oldest")

	// String comparison, not numeric: "1000" orders before "999".
	assert.Equal(t, []string{"2", "1"}, ids(sorted))
}
