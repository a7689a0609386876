package seed

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"references-archive/models"
)

//go:embed articles.json
var defaultDataset []byte

// Dataset is the bundled seed: the initial collections and the article
// records loaded once at process start.
type Dataset struct {
	Collections []models.Collection `json:"collections" yaml:"collections"`
	Articles    []models.Article    `json:"articles" yaml:"articles"`
}

// CitationFunc fills the citation strings of seed records that ship without
// them.
type CitationFunc func(author, year, title string) models.Citations

// Load reads the dataset, either the embedded default or an override file
// (JSON, or YAML by extension). A dataset that fails validation aborts
// startup; there is no partial load.
func Load(path string, format CitationFunc) (*Dataset, error) {
	raw := defaultDataset
	isYAML := false
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		raw = b
		ext := strings.ToLower(filepath.Ext(path))
		isYAML = ext == ".yaml" || ext == ".yml"
	}

	var ds Dataset
	if isYAML {
		if err := yaml.Unmarshal(raw, &ds); err != nil {
			return nil, fmt.Errorf("parse seed file: %w", err)
		}
	} else {
		if err := json.Unmarshal(raw, &ds); err != nil {
			return nil, fmt.Errorf("parse seed file: %w", err)
		}
	}

	if err := ds.validate(); err != nil {
		return nil, err
	}

	for i := range ds.Articles {
		article := &ds.Articles[i]
		if article.Datasets == nil {
			article.Datasets = []string{}
		}
		if article.Metrics == nil {
			article.Metrics = []string{}
		}
		if article.Citations.Empty() && format != nil {
			article.Citations = format(article.Author, article.Year, article.Title)
		}
	}

	return &ds, nil
}

func (d *Dataset) validate() error {
	if len(d.Collections) == 0 {
		return errors.New("seed dataset has no collections")
	}

	collectionIDs := make(map[string]bool)
	for _, c := range d.Collections {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("collection %q has an empty name", c.ID)
		}
		if collectionIDs[c.ID] {
			return fmt.Errorf("duplicate collection id %q", c.ID)
		}
		collectionIDs[c.ID] = true
	}

	articleIDs := make(map[string]bool)
	for _, a := range d.Articles {
		if strings.TrimSpace(a.Title) == "" {
			return fmt.Errorf("article %q has an empty title", a.ID)
		}
		if !a.MessageType.Valid() {
			return fmt.Errorf("article %q has unknown message type %q", a.ID, a.MessageType)
		}
		if !collectionIDs[a.CollectionID] {
			return fmt.Errorf("article %q references unknown collection %q", a.ID, a.CollectionID)
		}
		if articleIDs[a.ID] {
			return fmt.Errorf("duplicate article id %q", a.ID)
		}
		articleIDs[a.ID] = true
	}

	return nil
}
