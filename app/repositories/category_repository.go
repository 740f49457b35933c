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

// CategoryRepository handles database operations for Category.
type CategoryRepository struct {
	col      *mongo.Collection
	products *mongo.Collection
}

// NewCategoryRepository uses the given database's "categories" collection.
// The "products" collection is consulted only by the delete guard.
func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{
		col:      db.Collection("categories"),
		products: db.Collection("products"),
	}
}

// All returns every category ordered by order asc, then createdAt asc so
// ties resolve to insertion order.
func (r *CategoryRepository) All(ctx context.Context) ([]models.Category, error) {
	defer metrics.ObserveMongo("categories", "find", time.Now())

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	categories := []models.Category{}
	if err := cur.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// FindByID looks up a single category.
func (r *CategoryRepository) FindByID(ctx context.Context, id string) (models.Category, error) {
	defer metrics.ObserveMongo("categories", "findOne", time.Now())

	oid, err := parseID(id)
	if err != nil {
		return models.Category{}, err
	}

	var category models.Category
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Category{}, ErrNotFound
	}
	return category, err
}

// Create persists a new category. When the payload carries no explicit
// order, the category is appended after the current maximum.
func (r *CategoryRepository) Create(ctx context.Context, in models.CategoryInput) (models.Category, error) {
	defer metrics.ObserveMongo("categories", "insertOne", time.Now())

	now := time.Now().UTC()
	category := models.Category{
		TitlePrimary:   in.TitlePrimary,
		TitleSecondary: in.TitleSecondary,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}
	if in.Order != nil {
		category.Order = *in.Order
	} else {
		next, err := r.nextOrder(ctx)
		if err != nil {
			return models.Category{}, err
		}
		category.Order = next
	}

	res, err := r.col.InsertOne(ctx, category)
	if err != nil {
		return models.Category{}, err
	}
	category.ID = res.InsertedID.(primitive.ObjectID)
	return category, nil
}

// Update applies the non-nil fields of upd and returns the fresh document.
func (r *CategoryRepository) Update(ctx context.Context, id string, upd models.CategoryUpdate) (models.Category, error) {
	defer metrics.ObserveMongo("categories", "updateOne", time.Now())

	oid, err := parseID(id)
	if err != nil {
		return models.Category{}, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.TitlePrimary != nil {
		set["titlePrimary"] = *upd.TitlePrimary
	}
	if upd.TitleSecondary != nil {
		set["titleSecondary"] = *upd.TitleSecondary
	}
	if upd.Order != nil {
		set["order"] = *upd.Order
	}
	if upd.IsActive != nil {
		set["isActive"] = *upd.IsActive
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)
	var category models.Category
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Category{}, ErrNotFound
	}
	return category, err
}

// Delete removes a category. It refuses with ErrCategoryInUse while any
// product still references the category, so products can never dangle.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	defer metrics.ObserveMongo("categories", "deleteOne", time.Now())

	oid, err := parseID(id)
	if err != nil {
		return err
	}

	n, err := r.products.CountDocuments(ctx, bson.M{"categoryId": oid})
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrCategoryInUse
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

// nextOrder returns max(order)+1, or 1 for an empty collection.
func (r *CategoryRepository) nextOrder(ctx context.Context) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "order", Value: -1}})
	var top struct {
		Order int `bson:"order"`
	}
	err := r.col.FindOne(ctx, bson.M{}, opts).Decode(&top)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return orderAfter(0, false), nil
	}
	if err != nil {
		return 0, err
	}
	return orderAfter(top.Order, true), nil
}
