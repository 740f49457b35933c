package seeders

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/laziz/app/models"
)

func init() {
	Register("menu", SeedMenu)
}

// SeedMenu wipes the categories and products collections and refills them
// with a small bilingual sample menu. Destructive by design — it exists
// for fresh installs and demos, not production data.
func SeedMenu(ctx context.Context, db *mongo.Database) error {
	categoriesCol := db.Collection("categories")
	productsCol := db.Collection("products")

	if _, err := productsCol.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if _, err := categoriesCol.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}

	now := time.Now().UTC()
	grills := primitive.NewObjectID()
	appetizers := primitive.NewObjectID()
	beverages := primitive.NewObjectID()

	categories := []interface{}{
		models.Category{ID: grills, TitlePrimary: "Grills", TitleSecondary: "مشاوي", Order: 1, IsActive: true, CreatedAt: now, UpdatedAt: now},
		models.Category{ID: appetizers, TitlePrimary: "Appetizers", TitleSecondary: "مقبلات", Order: 2, IsActive: true, CreatedAt: now, UpdatedAt: now},
		models.Category{ID: beverages, TitlePrimary: "Beverages", TitleSecondary: "مشروبات", Order: 3, IsActive: true, CreatedAt: now, UpdatedAt: now},
	}
	if _, err := categoriesCol.InsertMany(ctx, categories); err != nil {
		return err
	}

	products := []interface{}{
		models.Product{
			ID: primitive.NewObjectID(), CategoryID: grills,
			TitlePrimary: "Shish Tawook", TitleSecondary: "شيش طاووق",
			Description:   "Marinated chicken skewers grilled over charcoal",
			DescriptionAr: "أسياخ دجاج متبلة مشوية على الفحم",
			Price:         45, IsActive: true, IsFeatured: true, Order: 1,
			CreatedAt: now, UpdatedAt: now,
		},
		models.Product{
			ID: primitive.NewObjectID(), CategoryID: grills,
			TitlePrimary: "Kebab", TitleSecondary: "كباب",
			Description:   "Minced lamb kebab with parsley and onion",
			DescriptionAr: "كباب لحم غنم مفروم مع بقدونس وبصل",
			Price:         55, OriginalPrice: 65, IsActive: true, Order: 2,
			CreatedAt: now, UpdatedAt: now,
		},
		models.Product{
			ID: primitive.NewObjectID(), CategoryID: appetizers,
			TitlePrimary: "Hummus", TitleSecondary: "حمص",
			Description:   "Chickpea dip with tahini and olive oil",
			DescriptionAr: "حمص مع طحينة وزيت زيتون",
			Price:         12.5, IsActive: true, Order: 1,
			CreatedAt: now, UpdatedAt: now,
		},
		models.Product{
			ID: primitive.NewObjectID(), CategoryID: beverages,
			TitlePrimary: "Fresh Lemonade", TitleSecondary: "ليموناضة",
			Description:   "Lemonade with mint",
			DescriptionAr: "ليموناضة مع نعناع",
			Price:         10, IsActive: true, IsFeatured: true, Order: 1,
			CreatedAt: now, UpdatedAt: now,
		},
	}
	_, err := productsCol.InsertMany(ctx, products)
	return err
}
