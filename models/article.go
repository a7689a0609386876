package models

// Citations holds the display-ready citation strings for an article. They are
// computed once when the article is created and never recomputed afterwards.
type Citations struct {
	APA    string `json:"apa" yaml:"apa"`
	ISO690 string `json:"iso690" yaml:"iso690"`
	MLA    string `json:"mla" yaml:"mla"`
	BibTeX string `json:"bibtex,omitempty" yaml:"bibtex,omitempty"`
}

// Empty reports whether no citation string has been set.
func (c Citations) Empty() bool {
	return c.APA == "" && c.ISO690 == "" && c.MLA == "" && c.BibTeX == ""
}

type Article struct {
	ID              string      `json:"id" yaml:"id"`
	Title           string      `json:"title" yaml:"title"`
	Datasets        []string    `json:"datasets" yaml:"datasets"`
	MessageType     MessageType `json:"messageType" yaml:"messageType"`
	Size            string      `json:"size,omitempty" yaml:"size,omitempty"`
	AnnotationModel string      `json:"annotationModel,omitempty" yaml:"annotationModel,omitempty"`
	DetectionModel  string      `json:"detectionModel,omitempty" yaml:"detectionModel,omitempty"`
	Metrics         []string    `json:"metrics" yaml:"metrics"`
	Year            string      `json:"year" yaml:"year"`
	Author          string      `json:"author,omitempty" yaml:"author,omitempty"`
	DownloadURL     string      `json:"downloadUrl,omitempty" yaml:"downloadUrl,omitempty"`
	CollectionID    string      `json:"collectionId" yaml:"collectionId"`
	Citations       Citations   `json:"citations" yaml:"citations"`
}
