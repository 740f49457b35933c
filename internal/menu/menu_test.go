package menu_test

import (
	"testing"

	"github.com/shashiranjanraj/laziz/app/models"
	"github.com/shashiranjanraj/laziz/internal/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	catA = primitive.NewObjectID()
	catB = primitive.NewObjectID()
	catC = primitive.NewObjectID()
)

func testCategories() []models.Category {
	return []models.Category{
		{ID: catA, TitlePrimary: "Grills", TitleSecondary: "مشاوي", Order: 2, IsActive: true},
		{ID: catB, TitlePrimary: "Drinks", TitleSecondary: "مشروبات", Order: 1, IsActive: true},
		{ID: catC, TitlePrimary: "Retired", TitleSecondary: "قديم", Order: 0, IsActive: false},
	}
}

func testProducts() []models.Product {
	return []models.Product{
		{ID: primitive.NewObjectID(), CategoryID: catA, TitlePrimary: "Shish Tawook", TitleSecondary: "شيش طاووق", Price: 45, Order: 2, IsActive: true},
		{ID: primitive.NewObjectID(), CategoryID: catA, TitlePrimary: "Kebab", TitleSecondary: "كباب", Price: 50, Order: 1, IsActive: true, IsFeatured: true},
		{ID: primitive.NewObjectID(), CategoryID: catA, TitlePrimary: "Off Menu", TitleSecondary: "موقوف", Price: 10, Order: 0, IsActive: false, IsFeatured: true},
		{ID: primitive.NewObjectID(), CategoryID: catB, TitlePrimary: "Fresh Lemonade", TitleSecondary: "ليموناضة", Price: 12, Order: 1, IsActive: true},
	}
}

func TestActiveCategoriesFiltersAndSorts(t *testing.T) {
	got := menu.ActiveCategories(testCategories())

	require.Len(t, got, 2)
	assert.Equal(t, "Drinks", got[0].TitlePrimary)
	assert.Equal(t, "Grills", got[1].TitlePrimary)
	for _, c := range got {
		assert.True(t, c.IsActive)
	}
}

func TestActiveCategoriesStableOnEqualOrder(t *testing.T) {
	cats := []models.Category{
		{ID: primitive.NewObjectID(), TitlePrimary: "first", Order: 5, IsActive: true},
		{ID: primitive.NewObjectID(), TitlePrimary: "second", Order: 5, IsActive: true},
		{ID: primitive.NewObjectID(), TitlePrimary: "third", Order: 5, IsActive: true},
	}

	got := menu.ActiveCategories(cats)

	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].TitlePrimary)
	assert.Equal(t, "second", got[1].TitlePrimary)
	assert.Equal(t, "third", got[2].TitlePrimary)
}

func TestProductsForCategory(t *testing.T) {
	got := menu.ProductsForCategory(testProducts(), catA)

	require.Len(t, got, 2)
	assert.Equal(t, "Kebab", got[0].TitlePrimary)
	assert.Equal(t, "Shish Tawook", got[1].TitlePrimary)
}

func TestProductsForCategoryEmptyIsNotAnError(t *testing.T) {
	got := menu.ProductsForCategory(testProducts(), primitive.NewObjectID())
	assert.Empty(t, got)
}

func TestFeaturedProductsExcludesInactive(t *testing.T) {
	got := menu.FeaturedProducts(testProducts())

	require.Len(t, got, 1)
	assert.Equal(t, "Kebab", got[0].TitlePrimary)
}

func TestSearchProducts(t *testing.T) {
	products := testProducts()

	got := menu.SearchProducts(products, "LEMON")
	require.Len(t, got, 1)
	assert.Equal(t, "Fresh Lemonade", got[0].TitlePrimary)

	// Secondary-language titles match too.
	got = menu.SearchProducts(products, "كباب")
	require.Len(t, got, 1)
	assert.Equal(t, "Kebab", got[0].TitlePrimary)

	// Inactive products never match.
	got = menu.SearchProducts(products, "Off Menu")
	assert.Empty(t, got)
}

func TestSearchPreservesInputOrder(t *testing.T) {
	products := testProducts()
	got := menu.SearchProducts(products, "a")

	var want []string
	for _, p := range products {
		if p.IsActive {
			want = append(want, p.TitlePrimary)
		}
	}
	var names []string
	for _, p := range got {
		names = append(names, p.TitlePrimary)
	}
	assert.Equal(t, want, names)
}

func TestGroupByCategory(t *testing.T) {
	cats, products := testCategories(), testProducts()

	sections := menu.GroupByCategory(cats, products)

	require.Len(t, sections, 2)
	assert.Equal(t, "Drinks", sections[0].Category.TitlePrimary)
	assert.Equal(t, "Grills", sections[1].Category.TitlePrimary)
	assert.Equal(t, menu.ProductsForCategory(products, catB), sections[0].Products)
	assert.Equal(t, menu.ProductsForCategory(products, catA), sections[1].Products)
}

func TestGroupByCategoryKeepsEmptySections(t *testing.T) {
	cats := testCategories()
	sections := menu.GroupByCategory(cats, nil)

	require.Len(t, sections, 2)
	for _, s := range sections {
		assert.Empty(t, s.Products)
	}
}

func TestCompositionIsIdempotent(t *testing.T) {
	cats, products := testCategories(), testProducts()

	first := menu.GroupByCategory(cats, products)
	second := menu.GroupByCategory(cats, products)

	assert.Equal(t, first, second)
	// Inputs are left untouched.
	assert.Equal(t, testCategories(), cats)
	assert.Equal(t, testProducts(), products)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "45 SP", menu.FormatPrice(45, "SP"))
	assert.Equal(t, "12.5 SP", menu.FormatPrice(12.5, "SP"))
	assert.Equal(t, "0 USD", menu.FormatPrice(0, "USD"))
}

func TestDiscountPercentage(t *testing.T) {
	assert.Equal(t, 25, menu.DiscountPercentage(20, 15))
	assert.Equal(t, 50, menu.DiscountPercentage(100, 50))
	assert.Equal(t, 33, menu.DiscountPercentage(30, 20))
	assert.Equal(t, 0, menu.DiscountPercentage(0, 10))
}

func TestCategoryByID(t *testing.T) {
	cats := testCategories()

	got, ok := menu.CategoryByID(cats, catB)
	require.True(t, ok)
	assert.Equal(t, "Drinks", got.TitlePrimary)

	_, ok = menu.CategoryByID(cats, primitive.NewObjectID())
	assert.False(t, ok)
}
