package services

import (
	"fmt"
	"strings"

	"references-archive/models"
)

// CitationFormatter derives the display-ready citation strings for an article
// from its author, year and title. No escaping of special characters is
// performed; the templates are fixed.
type CitationFormatter interface {
	Format(author, year, title string) models.Citations
}

type citationFormatter struct{}

func NewCitationFormatter() CitationFormatter {
	return &citationFormatter{}
}

func (f *citationFormatter) Format(author, year, title string) models.Citations {
	return models.Citations{
		APA:    fmt.Sprintf("%s (%s). %s.", author, year, title),
		ISO690: fmt.Sprintf("%s. %s [online]. %s.", author, title, year),
		MLA:    fmt.Sprintf("%s. \"%s\". %s.", author, title, year),
		BibTeX: f.bibtex(author, year, title),
	}
}

func (f *citationFormatter) bibtex(author, year, title string) string {
	return fmt.Sprintf("@misc{%s,\n  author = {%s},\n  title = {%s},\n  year = {%s}\n}",
		bibtexKey(author, year), author, title, year)
}

// bibtexKey builds the entry key from the last word of the author string and
// the year, lowercased with non-alphanumerics stripped.
func bibtexKey(author, year string) string {
	key := "ref"
	if fields := strings.Fields(author); len(fields) > 0 {
		var b strings.Builder
		for _, r := range strings.ToLower(fields[len(fields)-1]) {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				b.WriteRune(r)
			}
		}
		if b.Len() > 0 {
			key = b.String()
		}
	}
	return key + year
}
