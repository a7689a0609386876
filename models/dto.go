package models

// CreateArticleRequest is the draft submitted by the add-article form.
// Datasets and Metrics arrive as comma-delimited raw input and are split into
// trimmed entries by the article service.
type CreateArticleRequest struct {
	Title           string `json:"title" validate:"required"`
	Datasets        string `json:"datasets" validate:"required"`
	MessageType     string `json:"messageType" validate:"required"`
	Size            string `json:"size"`
	AnnotationModel string `json:"annotationModel"`
	DetectionModel  string `json:"detectionModel"`
	Metrics         string `json:"metrics"`
	Year            string `json:"year"`
	Author          string `json:"author"`
	DownloadURL     string `json:"downloadUrl"`
	CollectionID    string `json:"collectionId"`
}

type CreateCollectionRequest struct {
	Name string `json:"name" validate:"required"`
}

type SetScopeRequest struct {
	CollectionID string `json:"collectionId"`
}

// ArticleListParams carries the browse query. The collection scope is always
// applied; an empty CollectionID falls back to the active scope.
type ArticleListParams struct {
	MessageType  string `form:"message_type,default=All"`
	Year         string `form:"year,default=All"`
	Dataset      string `form:"dataset,default=All"`
	Search       string `form:"search"`
	CollectionID string `form:"collection_id"`
	SortBy       string `form:"sort_by,default=newest"`
}
