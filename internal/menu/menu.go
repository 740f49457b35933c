// Package menu composes the customer-facing view of the raw category and
// product collections. Every function is a pure, deterministic transformation:
// no state, no I/O, and an empty result is a normal outcome rather than an
// error.
package menu

import (
	"math"
	"strconv"
	"strings"

	"github.com/shashiranjanraj/laziz/app/models"
	"github.com/shashiranjanraj/laziz/pkg/collection"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Section pairs one active category with its ordered active products.
// A section with zero products stays in the result; hiding it is the
// renderer's call.
type Section struct {
	Category models.Category  `json:"category"`
	Products []models.Product `json:"products"`
}

// ActiveCategories returns the active categories sorted ascending by Order.
// The sort is stable, so categories sharing an Order keep their insertion
// order.
func ActiveCategories(categories []models.Category) []models.Category {
	active := collection.Filter(categories, func(c models.Category) bool { return c.IsActive })
	return collection.SortBy(active, func(a, b models.Category) bool { return a.Order < b.Order })
}

// ActiveProducts returns the active products sorted ascending by Order
// (stable). This is the flat product list the composed menu payload carries.
func ActiveProducts(products []models.Product) []models.Product {
	active := collection.Filter(products, func(p models.Product) bool { return p.IsActive })
	return collection.SortBy(active, func(a, b models.Product) bool { return a.Order < b.Order })
}

// ProductsForCategory returns the active products of one category, sorted
// ascending by Order (stable).
func ProductsForCategory(products []models.Product, categoryID primitive.ObjectID) []models.Product {
	matched := collection.Filter(products, func(p models.Product) bool {
		return p.IsActive && p.CategoryID == categoryID
	})
	return collection.SortBy(matched, func(a, b models.Product) bool { return a.Order < b.Order })
}

// FeaturedProducts returns the active products flagged for the specials
// section, sorted ascending by Order (stable).
func FeaturedProducts(products []models.Product) []models.Product {
	featured := collection.Filter(products, func(p models.Product) bool {
		return p.IsFeatured && p.IsActive
	})
	return collection.SortBy(featured, func(a, b models.Product) bool { return a.Order < b.Order })
}

// SearchProducts returns the active products whose primary or secondary title
// contains query, case-insensitively. No ranking is applied; matches keep the
// input order.
func SearchProducts(products []models.Product, query string) []models.Product {
	term := strings.ToLower(query)
	return collection.Filter(products, func(p models.Product) bool {
		return p.IsActive &&
			(strings.Contains(strings.ToLower(p.TitlePrimary), term) ||
				strings.Contains(strings.ToLower(p.TitleSecondary), term))
	})
}

// GroupByCategory builds one Section per active category, in active-category
// order. Each section's product list equals ProductsForCategory for that
// category's id.
func GroupByCategory(categories []models.Category, products []models.Product) []Section {
	return collection.Map(ActiveCategories(categories), func(c models.Category) Section {
		return Section{
			Category: c,
			Products: ProductsForCategory(products, c.ID),
		}
	})
}

// CategoryByID returns the category with the given id, if present.
func CategoryByID(categories []models.Category, id primitive.ObjectID) (models.Category, bool) {
	return collection.First(categories, func(c models.Category) bool { return c.ID == id })
}

// ProductByID returns the product with the given id, if present.
func ProductByID(products []models.Product, id primitive.ObjectID) (models.Product, bool) {
	return collection.First(products, func(p models.Product) bool { return p.ID == id })
}

// FormatPrice renders "<price> <label>" using the number's natural
// representation. Whole-unit prices print without trailing decimals, which is
// the display the menu has always shown; no locale formatting is applied.
func FormatPrice(price float64, currencyLabel string) string {
	return strconv.FormatFloat(price, 'f', -1, 64) + " " + currencyLabel
}

// DiscountPercentage returns round(((originalPrice - price) / originalPrice) * 100).
//
// Precondition: originalPrice must be non-zero. Call sites only invoke this
// for products whose OriginalPrice is set; a zero originalPrice yields 0.
func DiscountPercentage(originalPrice, price float64) int {
	if originalPrice == 0 {
		return 0
	}
	return int(math.Round(((originalPrice - price) / originalPrice) * 100))
}
