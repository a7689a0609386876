package models

type Collection struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// CollectionWithCount pairs a collection with its derived article count. The
// count is never stored; it is recomputed from the article set on every read.
type CollectionWithCount struct {
	Collection
	Count int `json:"count"`
}
