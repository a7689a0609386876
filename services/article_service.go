package services

import (
	"strings"

	"go.uber.org/zap"

	"references-archive/models"
	"references-archive/repositories"
)

type ArticleService interface {
	CreateArticle(req models.CreateArticleRequest) (*models.Article, error)
	GetArticle(id string) (*models.Article, error)
	DeleteArticle(id string) bool
	GetArticles(params models.ArticleListParams) []models.Article
	Citations(id string) (*models.Citations, error)
	DownloadURL(id string) (string, error)
}

type articleService struct {
	articleRepo    repositories.ArticleRepository
	collectionRepo repositories.CollectionRepository
	formatter      CitationFormatter
	logger         *zap.Logger
}

func NewArticleService(articleRepo repositories.ArticleRepository, collectionRepo repositories.CollectionRepository, formatter CitationFormatter, logger *zap.Logger) ArticleService {
	return &articleService{
		articleRepo:    articleRepo,
		collectionRepo: collectionRepo,
		formatter:      formatter,
		logger:         logger,
	}
}

func (s *articleService) CreateArticle(req models.CreateArticleRequest) (*models.Article, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, models.ErrorValidation{Field: "title", Reason: "required"}
	}

	datasets := splitList(req.Datasets)
	if len(datasets) == 0 {
		return nil, models.ErrorValidation{Field: "datasets", Reason: "at least one dataset is required"}
	}

	messageType := models.MessageType(strings.TrimSpace(req.MessageType))
	if !messageType.Valid() {
		return nil, models.ErrorValidation{Field: "messageType", Reason: "unknown message type"}
	}

	collectionID := strings.TrimSpace(req.CollectionID)
	if collectionID == "" {
		collectionID = s.defaultCollectionID()
	}
	if _, err := s.collectionRepo.GetByID(collectionID); err != nil {
		return nil, models.ErrorValidation{Field: "collectionId", Reason: "unknown collection"}
	}

	article := &models.Article{
		ID:              s.articleRepo.NextID(),
		Title:           title,
		Datasets:        datasets,
		MessageType:     messageType,
		Size:            strings.TrimSpace(req.Size),
		AnnotationModel: strings.TrimSpace(req.AnnotationModel),
		DetectionModel:  strings.TrimSpace(req.DetectionModel),
		Metrics:         splitList(req.Metrics),
		Year:            strings.TrimSpace(req.Year),
		Author:          strings.TrimSpace(req.Author),
		DownloadURL:     strings.TrimSpace(req.DownloadURL),
		CollectionID:    collectionID,
	}
	article.Citations = s.formatter.Format(article.Author, article.Year, article.Title)

	s.articleRepo.Insert(article)
	s.logger.Info("Article created",
		zap.String("id", article.ID),
		zap.String("collection_id", article.CollectionID))

	return article, nil
}

func (s *articleService) GetArticle(id string) (*models.Article, error) {
	return s.articleRepo.GetByID(id)
}

// DeleteArticle removes an article. Absent ids are a no-op; deletion is
// idempotent from the caller's perspective.
func (s *articleService) DeleteArticle(id string) bool {
	removed := s.articleRepo.Delete(id)
	if removed {
		s.logger.Info("Article deleted", zap.String("id", id))
	}
	return removed
}

// GetArticles applies the query predicate to the full set and sorts the
// matching subset. The visible list is always scoped to exactly one
// collection; an empty collection filter falls back to the active scope.
func (s *articleService) GetArticles(params models.ArticleListParams) []models.Article {
	collectionID := params.CollectionID
	if collectionID == "" {
		collectionID = s.collectionRepo.Scope()
	}

	filtered := []models.Article{}
	for _, article := range s.articleRepo.GetAll() {
		if matchesQuery(article, params, collectionID) {
			filtered = append(filtered, article)
		}
	}
	return sortArticles(filtered, params.SortBy)
}

func (s *articleService) Citations(id string) (*models.Citations, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return &article.Citations, nil
}

// DownloadURL returns the external download target for an article, or a
// MissingResource notice when the record has none.
func (s *articleService) DownloadURL(id string) (string, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return "", err
	}
	if article.DownloadURL == "" {
		return "", models.ErrorMissingResource{Message: "no download URL available for this article"}
	}
	return article.DownloadURL, nil
}

func (s *articleService) defaultCollectionID() string {
	if all := s.collectionRepo.GetAll(); len(all) > 0 {
		return all[0].ID
	}
	return ""
}

// matchesQuery is the AND of all filter dimensions. Text matching is
// case-insensitive; absent optional fields behave as empty strings.
func matchesQuery(a models.Article, p models.ArticleListParams, collectionID string) bool {
	if a.CollectionID != collectionID {
		return false
	}
	if p.MessageType != "" && p.MessageType != "All" && string(a.MessageType) != p.MessageType {
		return false
	}
	if p.Year != "" && p.Year != "All" && a.Year != p.Year {
		return false
	}
	if p.Dataset != "" && p.Dataset != "All" && !containsString(a.Datasets, p.Dataset) {
		return false
	}
	return matchesSearch(a, p.Search)
}

func matchesSearch(a models.Article, term string) bool {
	term = strings.ToLower(term)
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(a.Title), term) ||
		strings.Contains(strings.ToLower(a.AnnotationModel), term) ||
		strings.Contains(strings.ToLower(a.DetectionModel), term) ||
		strings.Contains(strings.ToLower(a.Author), term) {
		return true
	}
	for _, d := range a.Datasets {
		if strings.Contains(strings.ToLower(d), term) {
			return true
		}
	}
	for _, m := range a.Metrics {
		if strings.Contains(strings.ToLower(m), term) {
			return true
		}
	}
	return false
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

// splitList turns comma-delimited raw form input into trimmed entries,
// dropping empties. Always returns a non-nil slice.
func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
