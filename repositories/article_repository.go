package repositories

import (
	"strconv"
	"sync"

	"references-archive/models"
)

type ArticleRepository interface {
	Insert(article *models.Article)
	GetByID(id string) (*models.Article, error)
	// Delete removes the article with the given id and reports whether it
	// was present. Absent ids are a no-op.
	Delete(id string) bool
	GetAll() []models.Article
	CountByCollection(collectionID string) int
	NextID() string
}

// articleRepository is the in-memory authoritative article set. Records are
// kept newest-first; explicit sort always happens on a copy downstream so the
// stored order stays stable.
type articleRepository struct {
	mu       sync.RWMutex
	articles []models.Article
	nextID   int64
}

func NewArticleRepository(seed []models.Article) ArticleRepository {
	r := &articleRepository{
		articles: make([]models.Article, len(seed)),
		nextID:   1,
	}
	copy(r.articles, seed)
	for _, a := range seed {
		if n, err := strconv.ParseInt(a.ID, 10, 64); err == nil && n >= r.nextID {
			r.nextID = n + 1
		}
	}
	return r
}

func (r *articleRepository) Insert(article *models.Article) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.articles = append([]models.Article{*article}, r.articles...)
}

func (r *articleRepository) GetByID(id string) (*models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.articles {
		if r.articles[i].ID == id {
			a := r.articles[i]
			return &a, nil
		}
	}
	return nil, models.ErrorNotFound{Resource: "article", ID: id}
}

func (r *articleRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.articles {
		if r.articles[i].ID == id {
			r.articles = append(r.articles[:i], r.articles[i+1:]...)
			return true
		}
	}
	return false
}

// GetAll returns a copy of the set so callers can filter and sort freely.
func (r *articleRepository) GetAll() []models.Article {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Article, len(r.articles))
	copy(out, r.articles)
	return out
}

func (r *articleRepository) CountByCollection(collectionID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for i := range r.articles {
		if r.articles[i].CollectionID == collectionID {
			count++
		}
	}
	return count
}

func (r *articleRepository) NextID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	return strconv.FormatInt(id, 10)
}
