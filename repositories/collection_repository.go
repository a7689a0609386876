package repositories

import (
	"strconv"
	"sync"

	"references-archive/models"
)

type CollectionRepository interface {
	Insert(collection *models.Collection)
	GetByID(id string) (*models.Collection, error)
	Delete(id string) bool
	GetAll() []models.Collection
	// Scope returns the id of the collection the view is currently scoped to.
	Scope() string
	SetScope(id string) error
	NextID() string
}

type collectionRepository struct {
	mu          sync.RWMutex
	collections []models.Collection
	scope       string
	nextID      int64
}

// NewCollectionRepository seeds the collection set and scopes the view to the
// first seeded collection.
func NewCollectionRepository(seed []models.Collection) CollectionRepository {
	r := &collectionRepository{
		collections: make([]models.Collection, len(seed)),
		nextID:      1,
	}
	copy(r.collections, seed)
	for _, c := range seed {
		if n, err := strconv.ParseInt(c.ID, 10, 64); err == nil && n >= r.nextID {
			r.nextID = n + 1
		}
	}
	if len(r.collections) > 0 {
		r.scope = r.collections[0].ID
	}
	return r
}

func (r *collectionRepository) Insert(collection *models.Collection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.collections = append(r.collections, *collection)
	if r.scope == "" {
		r.scope = collection.ID
	}
}

func (r *collectionRepository) GetByID(id string) (*models.Collection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.collections {
		if r.collections[i].ID == id {
			c := r.collections[i]
			return &c, nil
		}
	}
	return nil, models.ErrorNotFound{Resource: "collection", ID: id}
}

func (r *collectionRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.collections {
		if r.collections[i].ID == id {
			r.collections = append(r.collections[:i], r.collections[i+1:]...)
			if r.scope == id {
				r.scope = ""
				if len(r.collections) > 0 {
					r.scope = r.collections[0].ID
				}
			}
			return true
		}
	}
	return false
}

func (r *collectionRepository) GetAll() []models.Collection {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Collection, len(r.collections))
	copy(out, r.collections)
	return out
}

func (r *collectionRepository) Scope() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.scope
}

func (r *collectionRepository) SetScope(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.collections {
		if r.collections[i].ID == id {
			r.scope = id
			return nil
		}
	}
	return models.ErrorNotFound{Resource: "collection", ID: id}
}

func (r *collectionRepository) NextID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	return strconv.FormatInt(id, 10)
}
