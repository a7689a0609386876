package services

import (
	"sort"

	"references-archive/models"
	"references-archive/repositories"
)

// FacetService derives the deduplicated value sets that populate the filter
// controls. Every method recomputes from the current store contents; nothing
// is cached or incrementally patched, so facets can never go stale.
type FacetService interface {
	UniqueDatasets() []string
	UniqueYears() []string
	CollectionCounts() map[string]int
	MessageTypeOptions() []models.MessageTypeOption
}

type facetService struct {
	articleRepo    repositories.ArticleRepository
	collectionRepo repositories.CollectionRepository
	datasetsAll    bool
}

func NewFacetService(articleRepo repositories.ArticleRepository, collectionRepo repositories.CollectionRepository, datasetsAll bool) FacetService {
	return &facetService{
		articleRepo:    articleRepo,
		collectionRepo: collectionRepo,
		datasetsAll:    datasetsAll,
	}
}

// UniqueDatasets flattens every article's dataset list, deduplicates by exact
// equality and sorts ascending. The "All" sentinel is prepended only when
// configured.
func (s *facetService) UniqueDatasets() []string {
	seen := make(map[string]bool)
	datasets := []string{}
	for _, article := range s.articleRepo.GetAll() {
		for _, dataset := range article.Datasets {
			if !seen[dataset] {
				seen[dataset] = true
				datasets = append(datasets, dataset)
			}
		}
	}
	newCollator().SortStrings(datasets)
	if s.datasetsAll {
		datasets = append([]string{"All"}, datasets...)
	}
	return datasets
}

// UniqueYears deduplicates year values and sorts them descending, with the
// "All" sentinel prepended.
func (s *facetService) UniqueYears() []string {
	seen := make(map[string]bool)
	years := []string{}
	for _, article := range s.articleRepo.GetAll() {
		if !seen[article.Year] {
			seen[article.Year] = true
			years = append(years, article.Year)
		}
	}
	c := newCollator()
	sort.SliceStable(years, func(i, j int) bool {
		return c.CompareString(years[i], years[j]) > 0
	})
	return append([]string{"All"}, years...)
}

func (s *facetService) CollectionCounts() map[string]int {
	counts := make(map[string]int)
	for _, collection := range s.collectionRepo.GetAll() {
		counts[collection.ID] = s.articleRepo.CountByCollection(collection.ID)
	}
	return counts
}

// MessageTypeOptions returns the closed category set with display labels,
// "All" first, for the message-type filter control.
func (s *facetService) MessageTypeOptions() []models.MessageTypeOption {
	options := []models.MessageTypeOption{
		{Value: models.MessageTypeAll, Label: models.MessageTypeAll.Label()},
	}
	for _, mt := range models.MessageTypes() {
		options = append(options, models.MessageTypeOption{Value: mt, Label: mt.Label()})
	}
	return options
}
