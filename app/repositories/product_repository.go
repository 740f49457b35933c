package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/laziz/app/models"
	"github.com/shashiranjanraj/laziz/pkg/metrics"
)

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	col        *mongo.Collection
	categories *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{
		col:        db.Collection("products"),
		categories: db.Collection("categories"),
	}
}

var productSort = bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: 1}}

// All returns every product ordered by order asc, createdAt asc.
func (r *ProductRepository) All(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, bson.M{})
}

// ByCategory returns the products of one category, same ordering as All.
func (r *ProductRepository) ByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	oid, err := parseID(categoryID)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, bson.M{"categoryId": oid})
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M) ([]models.Product, error) {
	defer metrics.ObserveMongo("products", "find", time.Now())

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(productSort))
	if err != nil {
		return nil, err
	}
	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID looks up a single product.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (models.Product, error) {
	defer metrics.ObserveMongo("products", "findOne", time.Now())

	oid, err := parseID(id)
	if err != nil {
		return models.Product{}, err
	}

	var product models.Product
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	return product, err
}

// Create persists a new product. The referenced category must exist, and
// an omitted order appends after the category's current maximum.
func (r *ProductRepository) Create(ctx context.Context, in models.ProductInput) (models.Product, error) {
	defer metrics.ObserveMongo("products", "insertOne", time.Now())

	categoryID, err := parseID(in.CategoryID)
	if err != nil {
		// An unparseable category id can't match any category.
		return models.Product{}, ErrCategoryMissing
	}
	if err := r.categoryExists(ctx, categoryID); err != nil {
		return models.Product{}, err
	}

	now := time.Now().UTC()
	product := models.Product{
		CategoryID:     categoryID,
		TitlePrimary:   in.TitlePrimary,
		TitleSecondary: in.TitleSecondary,
		Description:    in.Description,
		DescriptionAr:  in.DescriptionAr,
		Price:          *in.Price,
		Image:          in.Image,
		Images:         in.Images,
		NutritionInfo:  in.NutritionInfo,
		Allergens:      in.Allergens,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.OriginalPrice != nil {
		product.OriginalPrice = *in.OriginalPrice
	}
	if in.PreparationTime != nil {
		product.PreparationTime = *in.PreparationTime
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	if in.IsFeatured != nil {
		product.IsFeatured = *in.IsFeatured
	}
	if in.Order != nil {
		product.Order = *in.Order
	} else {
		next, err := r.nextOrder(ctx, categoryID)
		if err != nil {
			return models.Product{}, err
		}
		product.Order = next
	}

	res, err := r.col.InsertOne(ctx, product)
	if err != nil {
		return models.Product{}, err
	}
	product.ID = res.InsertedID.(primitive.ObjectID)
	return product, nil
}

// Update applies the non-nil fields of upd and returns the fresh document.
// A category move is validated against the categories collection first.
func (r *ProductRepository) Update(ctx context.Context, id string, upd models.ProductUpdate) (models.Product, error) {
	defer metrics.ObserveMongo("products", "updateOne", time.Now())

	oid, err := parseID(id)
	if err != nil {
		return models.Product{}, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.CategoryID != nil {
		categoryID, err := parseID(*upd.CategoryID)
		if err != nil {
			return models.Product{}, ErrCategoryMissing
		}
		if err := r.categoryExists(ctx, categoryID); err != nil {
			return models.Product{}, err
		}
		set["categoryId"] = categoryID
	}
	if upd.TitlePrimary != nil {
		set["titlePrimary"] = *upd.TitlePrimary
	}
	if upd.TitleSecondary != nil {
		set["titleSecondary"] = *upd.TitleSecondary
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.DescriptionAr != nil {
		set["descriptionAr"] = *upd.DescriptionAr
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.OriginalPrice != nil {
		set["originalPrice"] = *upd.OriginalPrice
	}
	if upd.Image != nil {
		set["image"] = *upd.Image
	}
	if upd.Images != nil {
		set["images"] = *upd.Images
	}
	if upd.IsActive != nil {
		set["isActive"] = *upd.IsActive
	}
	if upd.IsFeatured != nil {
		set["isFeatured"] = *upd.IsFeatured
	}
	if upd.Order != nil {
		set["order"] = *upd.Order
	}
	if upd.NutritionInfo != nil {
		set["nutritionInfo"] = *upd.NutritionInfo
	}
	if upd.Allergens != nil {
		set["allergens"] = *upd.Allergens
	}
	if upd.PreparationTime != nil {
		set["preparationTime"] = *upd.PreparationTime
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)
	var product models.Product
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	return product, err
}

// Delete removes a product.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	defer metrics.ObserveMongo("products", "deleteOne", time.Now())

	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProductRepository) categoryExists(ctx context.Context, id primitive.ObjectID) error {
	n, err := r.categories.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCategoryMissing
	}
	return nil
}

// nextOrder returns max(order)+1 within the category, or 1 when empty.
func (r *ProductRepository) nextOrder(ctx context.Context, categoryID primitive.ObjectID) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "order", Value: -1}})
	var top struct {
		Order int `bson:"order"`
	}
	err := r.col.FindOne(ctx, bson.M{"categoryId": categoryID}, opts).Decode(&top)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return orderAfter(0, false), nil
	}
	if err != nil {
		return 0, err
	}
	return orderAfter(top.Order, true), nil
}
