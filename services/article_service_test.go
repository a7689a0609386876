package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"references-archive/models"
	"references-archive/repositories"
)

func testCollections() []models.Collection {
	return []models.Collection{
		{ID: "1", Name: "Research Papers"},
		{ID: "2", Name: "Review/Survey"},
	}
}

func testArticles() []models.Article {
	return []models.Article{
		{
			ID:             "1",
			Title:          "GoEmotions: A Dataset of Fine-Grained Emotions",
			Datasets:       []string{"GoEmotions"},
			MessageType:    models.MessageTypeReddit,
			DetectionModel: "BERT-base",
			Metrics:        []string{"Macro-F1"},
			Year:           "2020",
			Author:         "Demszky et al.",
			DownloadURL:    "https://example.org/goemotions",
			CollectionID:   "1",
		},
		{
			ID:           "2",
			Title:        "SemEval-2018 Task 1: Affect in Tweets",
			Datasets:     []string{"SemEval-2018 Task 1", "TEC"},
			MessageType:  models.MessageTypeTweets,
			Metrics:      []string{"Pearson r"},
			Year:         "2018",
			Author:       "Mohammad et al.",
			CollectionID: "1",
		},
		{
			ID:           "3",
			Title:        "Text-based Emotion Detection Survey",
			Datasets:     []string{"ISEAR"},
			MessageType:  models.MessageTypeBlogs,
			Metrics:      []string{},
			Year:         "2020",
			Author:       "Acheampong et al.",
			CollectionID: "2",
		},
	}
}

type serviceFixture struct {
	articleRepo    repositories.ArticleRepository
	collectionRepo repositories.CollectionRepository
	articles       ArticleService
	collections    CollectionService
	facets         FacetService
}

func newServiceFixture() *serviceFixture {
	articleRepo := repositories.NewArticleRepository(testArticles())
	collectionRepo := repositories.NewCollectionRepository(testCollections())
	logger := zap.NewNop()
	formatter := NewCitationFormatter()

	return &serviceFixture{
		articleRepo:    articleRepo,
		collectionRepo: collectionRepo,
		articles:       NewArticleService(articleRepo, collectionRepo, formatter, logger),
		collections:    NewCollectionService(collectionRepo, articleRepo, logger),
		facets:         NewFacetService(articleRepo, collectionRepo, false),
	}
}

func (f *serviceFixture) listIDs(params models.ArticleListParams) []string {
	return ids(f.articles.GetArticles(params))
}

func TestCreateArticleRequiresTitle(t *testing.T) {
	f := newServiceFixture()

	_, err := f.articles.CreateArticle(models.CreateArticleRequest{
		Title:       "   ",
		Datasets:    "GoEmotions",
		MessageType: "Tweets",
	})

	var validation models.ErrorValidation
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "title", validation.Field)
	assert.Len(t, f.articleRepo.GetAll(), 3)
}

func TestCreateArticleRequiresDataset(t *testing.T) {
	f := newServiceFixture()

	_, err := f.articles.CreateArticle(models.CreateArticleRequest{
		Title:       "Some Study",
		Datasets:    " , ,",
		MessageType: "Tweets",
	})

	var validation models.ErrorValidation
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "datasets", validation.Field)
}

func TestCreateArticleRejectsUnknownMessageType(t *testing.T) {
	f := newServiceFixture()

	_, err := f.articles.CreateArticle(models.CreateArticleRequest{
		Title:       "Some Study",
		Datasets:    "GoEmotions",
		MessageType: "Podcasts",
	})

	var validation models.ErrorValidation
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "messageType", validation.Field)
}

func TestCreateArticleRejectsAllMessageType(t *testing.T) {
	f := newServiceFixture()

	// "All" is a filter sentinel, never a storable category.
	_, err := f.articles.CreateArticle(models.CreateArticleRequest{
		Title:       "Some Study",
		Datasets:    "GoEmotions",
		MessageType: "All",
	})

	var validation models.ErrorValidation
	require.ErrorAs(t, err, &validation)
}

func TestCreateArticleRejectsUnknownCollection(t *testing.T) {
	f := newServiceFixture()

	_, err := f.articles.CreateArticle(models.CreateArticleRequest{
		Title:        "Some Study",
		Datasets:     "GoEmotions",
		MessageType:  "Tweets",
		CollectionID: "99",
	})

	var validation models.ErrorValidation
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "collectionId", validation.Field)
}

func TestCreateArticleFillsDefaultsAndCitations(t *testing.T) {
	f := newServiceFixture()

	article, err := f.articles.CreateArticle(models.CreateArticleRequest{
		Title:       "  Emotion Lexicons Revisited ",
		Datasets:    "NRC-EIL, DepecheMood ",
		MessageType: "Tweets",
		Metrics:     "Accuracy",
		Year:        "2021",
		Author:      "Example et al.",
	})

	require.NoError(t, err)
	assert.Equal(t, "4", article.ID)
	assert.Equal(t, "Emotion Lexicons Revisited", article.Title)
	assert.Equal(t, []string{"NRC-EIL", "DepecheMood"}, article.Datasets)
	assert.Equal(t, []string{"Accuracy"}, article.Metrics)
	// Empty collection falls back to the first one.
	assert.Equal(t, "1", article.CollectionID)
	assert.Equal(t, "Example et al. (2021). Emotion Lexicons Revisited.", article.Citations.APA)
	assert.False(t, article.Citations.Empty())

	stored, err := f.articles.GetArticle(article.ID)
	require.NoError(t, err)
	assert.Equal(t, article.Citations, stored.Citations)
}

func TestGetArticleNotFound(t *testing.T) {
	f := newServiceFixture()

	_, err := f.articles.GetArticle("99")

	var notFound models.ErrorNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "article", notFound.Resource)
}

func TestDeleteArticleIsIdempotent(t *testing.T) {
	f := newServiceFixture()

	assert.True(t, f.articles.DeleteArticle("1"))
	assert.False(t, f.articles.DeleteArticle("1"))
	assert.Len(t, f.articleRepo.GetAll(), 2)
}

func TestGetArticlesScopedToActiveCollection(t *testing.T) {
	f := newServiceFixture()

	// No explicit collection filter: the active scope (collection 1) applies.
	assert.Equal(t, []string{"1", "2"}, f.listIDs(models.ArticleListParams{SortBy: "newest"}))

	assert.Equal(t, []string{"3"}, f.listIDs(models.ArticleListParams{CollectionID: "2", SortBy: "newest"}))
}

func TestGetArticlesFilterMatrix(t *testing.T) {
	f := newServiceFixture()

	tests := []struct {
		name   string
		params models.ArticleListParams
		want   []string
	}{
		{"all sentinels pass everything in scope", models.ArticleListParams{MessageType: "All", Year: "All", Dataset: "All"}, []string{"1", "2"}},
		{"message type", models.ArticleListParams{MessageType: "Tweets"}, []string{"2"}},
		{"year", models.ArticleListParams{Year: "2020"}, []string{"1"}},
		{"dataset exact membership", models.ArticleListParams{Dataset: "TEC"}, []string{"2"}},
		{"dataset is not substring matched", models.ArticleListParams{Dataset: "SemEval"}, []string{}},
		{"dimensions combine with AND", models.ArticleListParams{MessageType: "Tweets", Year: "2020"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.SortBy = "newest"
			assert.Equal(t, tt.want, f.listIDs(tt.params))
		})
	}
}

func TestGetArticlesSearch(t *testing.T) {
	f := newServiceFixture()

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"title, case-insensitive", "goemotions", []string{"1"}},
		{"detection model", "bert", []string{"1"}},
		{"author", "mohammad", []string{"2"}},
		{"dataset entry", "tec", []string{"1", "2"}},
		{"metric entry", "pearson", []string{"2"}},
		{"no match", "acoustic", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.listIDs(models.ArticleListParams{Search: tt.search, SortBy: "newest"}))
		})
	}
}

func TestGetArticlesSortOrders(t *testing.T) {
	f := newServiceFixture()

	assert.Equal(t, []string{"1", "2"}, f.listIDs(models.ArticleListParams{SortBy: "newest"}))
	assert.Equal(t, []string{"2", "1"}, f.listIDs(models.ArticleListParams{SortBy: "oldest"}))
	assert.Equal(t, []string{"1", "2"}, f.listIDs(models.ArticleListParams{SortBy: "title"}))
}

func TestGetArticlesNeverReturnsNil(t *testing.T) {
	f := newServiceFixture()

	articles := f.articles.GetArticles(models.ArticleListParams{Search: "no such thing"})

	assert.NotNil(t, articles)
	assert.Empty(t, articles)
}

func TestDownloadURL(t *testing.T) {
	f := newServiceFixture()

	url, err := f.articles.DownloadURL("1")
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/goemotions", url)

	_, err = f.articles.DownloadURL("2")
	var missing models.ErrorMissingResource
	require.ErrorAs(t, err, &missing)

	_, err = f.articles.DownloadURL("99")
	var notFound models.ErrorNotFound
	require.ErrorAs(t, err, &notFound)
}

func TestCitationsOfSeededArticle(t *testing.T) {
	f := newServiceFixture()

	// The seed fixture carries no citation strings; Citations returns whatever
	// is stored without recomputing.
	citations, err := f.articles.Citations("1")
	require.NoError(t, err)
	assert.True(t, citations.Empty())
}
