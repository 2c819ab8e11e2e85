package storefront_test

import (
	"testing"

	"jeansfactory/pkg/storefront"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	catalog := storefront.DemoCatalog()

	all := storefront.Filter(catalog, storefront.FilterAll, "")
	assert.Len(t, all, len(catalog))

	men := storefront.Filter(catalog, "Men", "")
	for _, p := range men {
		assert.Equal(t, "Men", p.Gender)
	}
	assert.Len(t, men, 3)

	sale := storefront.Filter(catalog, "Sale", "")
	for _, p := range sale {
		assert.True(t, p.IsSale)
	}
	assert.Len(t, sale, 2)

	slim := storefront.Filter(catalog, "Slim", "")
	assert.Len(t, slim, 1)
	assert.Equal(t, "Urban Black Slim Fit", slim[0].Name)
}

func TestFilter_Search(t *testing.T) {
	catalog := storefront.DemoCatalog()

	hits := storefront.Filter(catalog, storefront.FilterAll, "ripped")
	assert.Len(t, hits, 1)
	assert.Equal(t, "Vintage Ripped Boyfriend", hits[0].Name)

	// Search composes with the category selection.
	none := storefront.Filter(catalog, "Men", "ripped")
	assert.Empty(t, none)

	misses := storefront.Filter(catalog, storefront.FilterAll, "corduroy")
	assert.Empty(t, misses)
}
