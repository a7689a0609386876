package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCitationTemplates(t *testing.T) {
	formatter := NewCitationFormatter()

	citations := formatter.Format("Demszky et al.", "2020", "GoEmotions: A Dataset of Fine-Grained Emotions")

	assert.Equal(t, "Demszky et al. (2020). GoEmotions: A Dataset of Fine-Grained Emotions.", citations.APA)
	assert.Equal(t, "Demszky et al.. GoEmotions: A Dataset of Fine-Grained Emotions [online]. 2020.", citations.ISO690)
	assert.Equal(t, "Demszky et al.. \"GoEmotions: A Dataset of Fine-Grained Emotions\". 2020.", citations.MLA)
	assert.Equal(t, "@misc{al2020,\n  author = {Demszky et al.},\n  title = {GoEmotions: A Dataset of Fine-Grained Emotions},\n  year = {2020}\n}", citations.BibTeX)
}

func TestFormatIsPure(t *testing.T) {
	formatter := NewCitationFormatter()

	first := formatter.Format("Li et al.", "2017", "DailyDialog")
	second := formatter.Format("Li et al.", "2017", "DailyDialog")

	assert.Equal(t, first, second)
	assert.False(t, first.Empty())
}

func TestBibtexKey(t *testing.T) {
	assert.Equal(t, "hahn2017", bibtexKey("Buechel and Hahn", "2017"))
	assert.Equal(t, "al2020", bibtexKey("Demszky et al.", "2020"))
	assert.Equal(t, "ref2019", bibtexKey("", "2019"))
	assert.Equal(t, "ref2019", bibtexKey("...", "2019"))
}
