package models_test

import (
	"testing"

	"cadastro/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestOptionListSizes(t *testing.T) {
	assert.Len(t, models.States(), 27)
	assert.Len(t, models.Genders(), 3)
	assert.Len(t, models.JobTitles(), 17)
	assert.Len(t, models.Categories(), 18)
	assert.Len(t, models.Sectors(), 20)
	assert.Len(t, models.CompanySizes(), 4)
}

func TestOptionListsAreCopies(t *testing.T) {
	states := models.States()
	states[0] = "XX - Inválido"

	assert.Equal(t, "AC - Acre", models.States()[0])
}

func TestPlaceholdersAreNotOptions(t *testing.T) {
	lists := [][]string{
		models.States(), models.JobTitles(), models.Categories(),
		models.Sectors(), models.CompanySizes(),
	}
	for _, list := range lists {
		assert.NotContains(t, list, models.PlaceholderDefault)
		assert.NotContains(t, list, models.PlaceholderShort)
	}
}
