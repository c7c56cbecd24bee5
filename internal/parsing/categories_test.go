package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredCategories(t *testing.T) {
	assert.Equal(t, []string{CategoryFrontend}, RequiredCategories([]string{"react", "typescript"}))
	assert.Equal(t, []string{CategoryBackend, CategoryData}, RequiredCategories([]string{"python"}))
	assert.Equal(t, []string{CategoryFrontend, CategoryAIML}, RequiredCategories([]string{"react hooks", "pytorch"}))
	assert.Empty(t, RequiredCategories([]string{"communication"}))
	assert.Empty(t, RequiredCategories(nil))
}

func TestCoveredCategories(t *testing.T) {
	cv := NewTermSet(Normalize("React developer, some SQL"))

	got := CoveredCategories(cv, []string{CategoryFrontend, CategoryBackend, CategoryData})
	assert.Equal(t, []string{CategoryFrontend, CategoryData}, got)
	assert.Empty(t, CoveredCategories(cv, nil))
}

func TestSkillCategories_AllOrdered(t *testing.T) {
	assert.Len(t, SkillCategories, len(CategoryOrder))
	for _, name := range CategoryOrder {
		assert.NotEmpty(t, SkillCategories[name], name)
	}
}
