// internal/handlers/product_test.go
package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	env *testEnv
}

func (suite *ProductHandlerTestSuite) SetupTest() {
	suite.env = newTestEnv()
}

func (suite *ProductHandlerTestSuite) TestListProducts() {
	w := suite.env.do("GET", "/v1/products", "", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	body := decodeBody(w)
	assert.True(suite.T(), body["success"].(bool))

	data := dataOf(w)
	assert.Equal(suite.T(), float64(12), data["total"])
	products := data["products"].([]interface{})
	assert.Len(suite.T(), products, 12)
}

func (suite *ProductHandlerTestSuite) TestSearchFilter() {
	w := suite.env.do("GET", "/v1/products?search=blue+speaker", "", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	data := dataOf(w)
	products := data["products"].([]interface{})
	assert.Len(suite.T(), products, 1)
	first := products[0].(map[string]interface{})
	assert.Equal(suite.T(), "Portable Bluetooth Speaker", first["name"])
}

func (suite *ProductHandlerTestSuite) TestCategoryAndSort() {
	w := suite.env.do("GET", "/v1/products?category=Electronics&sort=price_asc", "", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	products := dataOf(w)["products"].([]interface{})
	assert.NotEmpty(suite.T(), products)

	prev := 0.0
	for _, p := range products {
		product := p.(map[string]interface{})
		assert.Equal(suite.T(), "Electronics", product["category"])
		price := product["price"].(float64)
		assert.GreaterOrEqual(suite.T(), price, prev)
		prev = price
	}
}

func (suite *ProductHandlerTestSuite) TestPriceAndFlagFilters() {
	w := suite.env.do("GET", "/v1/products?price_min=50&price_max=100&on_sale=true", "", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	products := dataOf(w)["products"].([]interface{})
	for _, p := range products {
		product := p.(map[string]interface{})
		assert.GreaterOrEqual(suite.T(), product["price"].(float64), 50.0)
		assert.LessOrEqual(suite.T(), product["price"].(float64), 100.0)
		assert.Greater(suite.T(), product["discount"].(float64), 0.0)
	}
}

func (suite *ProductHandlerTestSuite) TestBrandFilter() {
	w := suite.env.do("GET", "/v1/products?brands=SoundCore,TechFit", "", nil)

	products := dataOf(w)["products"].([]interface{})
	assert.Len(suite.T(), products, 2)
}

func (suite *ProductHandlerTestSuite) TestGetProduct() {
	w := suite.env.do("GET", "/v1/products/1", "", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	product := dataOf(w)["product"].(map[string]interface{})
	assert.Equal(suite.T(), "Premium Wireless Earbuds", product["name"])
}

func (suite *ProductHandlerTestSuite) TestGetProductNotFound() {
	w := suite.env.do("GET", "/v1/products/999", "", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.False(suite.T(), decodeBody(w)["success"].(bool))
}

func (suite *ProductHandlerTestSuite) TestGetProductBadID() {
	w := suite.env.do("GET", "/v1/products/abc", "", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ProductHandlerTestSuite) TestFeaturedProducts() {
	w := suite.env.do("GET", "/v1/products/featured", "", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	products := dataOf(w)["products"].([]interface{})
	assert.Len(suite.T(), products, 6)
	for _, p := range products {
		assert.True(suite.T(), p.(map[string]interface{})["featured"].(bool))
	}
}

func (suite *ProductHandlerTestSuite) TestCategories() {
	w := suite.env.do("GET", "/v1/categories", "", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	categories := dataOf(w)["categories"].([]interface{})
	assert.Equal(suite.T(), "All", categories[0])
	assert.Len(suite.T(), categories, 7)
}

func (suite *ProductHandlerTestSuite) TestBrands() {
	w := suite.env.do("GET", "/v1/brands", "", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	brands := dataOf(w)["brands"].([]interface{})
	assert.Len(suite.T(), brands, 12)
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}
