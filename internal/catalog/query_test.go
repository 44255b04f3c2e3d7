// internal/catalog/query_test.go
package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopease/shopease-backend/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func TestSearchEmptyQueryReturnsAllInOrder(t *testing.T) {
	products := SeedProducts()

	result := Search(products, "", models.FilterConfig{Category: models.CategoryAll})

	require.Len(t, result, len(products))
	for i := range products {
		assert.Equal(t, products[i].ID, result[i].ID)
	}
}

func TestSearchEmptyCatalog(t *testing.T) {
	result := Search(nil, "speaker", models.FilterConfig{})
	assert.Empty(t, result)
}

func TestSearchTermsMustAllMatch(t *testing.T) {
	products := SeedProducts()

	// "blue" matches via "Bluetooth", "speaker" via the name; only the
	// portable speaker satisfies both terms.
	result := Search(products, "blue speaker", models.FilterConfig{Category: models.CategoryAll})

	require.Len(t, result, 1)
	assert.Equal(t, 11, result[0].ID)
}

func TestSearchMatchesTags(t *testing.T) {
	products := SeedProducts()

	result := Search(products, "eco-friendly", models.FilterConfig{})

	require.Len(t, result, 1)
	assert.Equal(t, "Bamboo Cutting Board Set", result[0].Name)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	products := SeedProducts()

	lower := Search(products, "smartwatch", models.FilterConfig{})
	upper := Search(products, "SMARTWATCH", models.FilterConfig{})

	require.NotEmpty(t, lower)
	assert.Equal(t, lower, upper)
}

func TestCategoryFilter(t *testing.T) {
	products := SeedProducts()

	result := Search(products, "", models.FilterConfig{Category: "Home"})

	require.NotEmpty(t, result)
	for _, p := range result {
		assert.Equal(t, "Home", p.Category)
	}
}

func TestCategoryAllDisablesFilter(t *testing.T) {
	products := SeedProducts()

	result := Search(products, "", models.FilterConfig{Category: models.CategoryAll})
	assert.Len(t, result, len(products))
}

func TestPriceBracketFilter(t *testing.T) {
	products := SeedProducts()

	result := Search(products, "", models.FilterConfig{
		PriceRange: &models.PriceBracket{Min: 50, Max: floatPtr(100)},
	})

	require.NotEmpty(t, result)
	for _, p := range result {
		assert.GreaterOrEqual(t, p.Price, 50.0)
		assert.LessOrEqual(t, p.Price, 100.0)
	}
}

func TestPriceBracketUnboundedMax(t *testing.T) {
	products := SeedProducts()

	result := Search(products, "", models.FilterConfig{
		PriceRange: &models.PriceBracket{Min: 500},
	})

	require.NotEmpty(t, result)
	for _, p := range result {
		assert.GreaterOrEqual(t, p.Price, 500.0)
	}
}

func TestInStockFilter(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "a", Stock: 0},
		{ID: 2, Name: "b", Stock: 3},
	}

	result := Search(products, "", models.FilterConfig{InStockOnly: true})

	require.Len(t, result, 1)
	assert.Equal(t, 2, result[0].ID)
}

func TestOnSaleFilter(t *testing.T) {
	products := SeedProducts()

	result := Search(products, "", models.FilterConfig{OnSaleOnly: true})

	require.NotEmpty(t, result)
	for _, p := range result {
		assert.Greater(t, p.Discount, 0)
	}
}

func TestBrandAllowList(t *testing.T) {
	products := SeedProducts()

	result := Search(products, "", models.FilterConfig{
		Brands: []string{"SoundCore", "TechFit"},
	})

	require.Len(t, result, 2)
	assert.Equal(t, "SoundCore", result[0].Brand)
	assert.Equal(t, "TechFit", result[1].Brand)
}

func TestSortPriceAscending(t *testing.T) {
	products := SeedProducts()

	result := Search(products, "", models.FilterConfig{SortBy: models.SortPriceAsc})

	require.Len(t, result, len(products))
	sorted := sort.SliceIsSorted(result, func(i, j int) bool {
		return result[i].Price < result[j].Price
	})
	assert.True(t, sorted)
}

func TestSortPriceDescending(t *testing.T) {
	products := SeedProducts()

	result := Search(products, "", models.FilterConfig{SortBy: models.SortPriceDesc})

	require.Len(t, result, len(products))
	for i := 1; i < len(result); i++ {
		assert.GreaterOrEqual(t, result[i-1].Price, result[i].Price)
	}
}

func TestSortStabilityOnPriceTies(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "first", Price: 10},
		{ID: 2, Name: "second", Price: 10},
		{ID: 3, Name: "cheapest", Price: 5},
		{ID: 4, Name: "third", Price: 10},
	}

	result := Search(products, "", models.FilterConfig{SortBy: models.SortPriceAsc})

	require.Len(t, result, 4)
	assert.Equal(t, 3, result[0].ID)
	// Equal prices keep their original relative order.
	assert.Equal(t, 1, result[1].ID)
	assert.Equal(t, 2, result[2].ID)
	assert.Equal(t, 4, result[3].ID)
}

func TestSortRatingDescending(t *testing.T) {
	products := SeedProducts()

	result := Search(products, "", models.FilterConfig{SortBy: models.SortRating})

	for i := 1; i < len(result); i++ {
		assert.GreaterOrEqual(t, result[i-1].Rating, result[i].Rating)
	}
}

func TestSortPopularUsesStock(t *testing.T) {
	products := SeedProducts()

	result := Search(products, "", models.FilterConfig{SortBy: models.SortPopular})

	for i := 1; i < len(result); i++ {
		assert.GreaterOrEqual(t, result[i-1].Stock, result[i].Stock)
	}
}

func TestSortNewestKeepsCatalogOrder(t *testing.T) {
	products := SeedProducts()

	result := Search(products, "", models.FilterConfig{SortBy: models.SortNewest})

	require.Len(t, result, len(products))
	for i := range products {
		assert.Equal(t, products[i].ID, result[i].ID)
	}
}

func TestSearchIsPure(t *testing.T) {
	products := SeedProducts()

	first := Search(products, "wireless", models.FilterConfig{SortBy: models.SortPriceDesc})
	second := Search(products, "wireless", models.FilterConfig{SortBy: models.SortPriceDesc})

	assert.Equal(t, first, second)
	// The input catalog keeps its original order.
	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, 12, products[len(products)-1].ID)
}

func TestCombinedFilters(t *testing.T) {
	products := SeedProducts()

	result := Search(products, "smart", models.FilterConfig{
		Category:    "Electronics",
		InStockOnly: true,
		SortBy:      models.SortPriceAsc,
	})

	require.NotEmpty(t, result)
	for _, p := range result {
		assert.Equal(t, "Electronics", p.Category)
		assert.Greater(t, p.Stock, 0)
	}
}
