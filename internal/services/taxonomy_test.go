package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxonomyShape(t *testing.T) {
	require.Len(t, Taxonomy, 15)

	seen := make(map[string]bool)
	for _, category := range Taxonomy {
		assert.False(t, seen[category.Name], "duplicate category %q", category.Name)
		seen[category.Name] = true

		assert.NotEmpty(t, category.Terms, "category %q has no terms", category.Name)
		assert.GreaterOrEqual(t, category.Weight, 1.0, "category %q", category.Name)
		assert.LessOrEqual(t, category.Weight, 1.5, "category %q", category.Name)

		for _, term := range category.Terms {
			assert.Equal(t, strings.ToLower(term), term,
				"term %q in %q must be lowercase for substring matching", term, category.Name)
		}
	}
}

func TestTaxonomyHeaviestCategories(t *testing.T) {
	weights := make(map[string]float64)
	for _, category := range Taxonomy {
		weights[category.Name] = category.Weight
	}

	assert.Equal(t, 1.5, weights["programming_languages"])
	assert.Equal(t, 1.0, weights["methodologies"])
}
