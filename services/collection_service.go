package services

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"references-archive/models"
	"references-archive/repositories"
)

type CollectionService interface {
	CreateCollection(req models.CreateCollectionRequest) (*models.Collection, error)
	// DeleteCollection removes an empty collection and returns the id of the
	// collection the view is scoped to afterwards.
	DeleteCollection(id string) (string, error)
	GetCollections() []models.CollectionWithCount
	Scope() string
	SetScope(id string) error
}

type collectionService struct {
	collectionRepo repositories.CollectionRepository
	articleRepo    repositories.ArticleRepository
	logger         *zap.Logger
}

func NewCollectionService(collectionRepo repositories.CollectionRepository, articleRepo repositories.ArticleRepository, logger *zap.Logger) CollectionService {
	return &collectionService{
		collectionRepo: collectionRepo,
		articleRepo:    articleRepo,
		logger:         logger,
	}
}

func (s *collectionService) CreateCollection(req models.CreateCollectionRequest) (*models.Collection, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, models.ErrorValidation{Field: "name", Reason: "required"}
	}

	collection := &models.Collection{
		ID:   s.collectionRepo.NextID(),
		Name: name,
	}
	s.collectionRepo.Insert(collection)
	s.logger.Info("Collection created", zap.String("id", collection.ID), zap.String("name", name))

	return collection, nil
}

func (s *collectionService) DeleteCollection(id string) (string, error) {
	if _, err := s.collectionRepo.GetByID(id); err != nil {
		// Absent ids are a no-op, same policy as article deletion.
		return s.collectionRepo.Scope(), nil
	}

	// The count check and the delete below lock the two stores independently;
	// a single logical writer per session is assumed.
	if n := s.articleRepo.CountByCollection(id); n > 0 {
		return "", models.ErrorConflict{Message: fmt.Sprintf("collection still holds %d article(s)", n)}
	}
	if len(s.collectionRepo.GetAll()) == 1 {
		return "", models.ErrorConflict{Message: "cannot delete the last remaining collection"}
	}

	s.collectionRepo.Delete(id)
	scope := s.collectionRepo.Scope()
	if scope == "" {
		return "", models.ErrorState{Message: "no collections remain to scope the view"}
	}
	s.logger.Info("Collection deleted", zap.String("id", id), zap.String("scope", scope))

	return scope, nil
}

// GetCollections returns every collection with its derived article count,
// recomputed on each call.
func (s *collectionService) GetCollections() []models.CollectionWithCount {
	collections := s.collectionRepo.GetAll()
	out := make([]models.CollectionWithCount, 0, len(collections))
	for _, collection := range collections {
		out = append(out, models.CollectionWithCount{
			Collection: collection,
			Count:      s.articleRepo.CountByCollection(collection.ID),
		})
	}
	return out
}

func (s *collectionService) Scope() string {
	return s.collectionRepo.Scope()
}

func (s *collectionService) SetScope(id string) error {
	return s.collectionRepo.SetScope(id)
}
