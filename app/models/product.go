package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NutritionInfo is the optional per-product nutrition card. Every field is
// optional so an admin can fill in whatever the kitchen actually knows.
type NutritionInfo struct {
	Calories *float64 `bson:"calories,omitempty" json:"calories,omitempty"`
	Protein  *float64 `bson:"protein,omitempty"  json:"protein,omitempty"`
	Carbs    *float64 `bson:"carbs,omitempty"    json:"carbs,omitempty"`
	Fat      *float64 `bson:"fat,omitempty"      json:"fat,omitempty"`
}

// Product is a sellable menu item. It holds a non-owning reference to exactly
// one Category via CategoryID.
type Product struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"             json:"id"`
	CategoryID      primitive.ObjectID `bson:"categoryId"                json:"categoryId"`
	TitlePrimary    string             `bson:"titlePrimary"              json:"titlePrimary"`
	TitleSecondary  string             `bson:"titleSecondary"            json:"titleSecondary"`
	Description     string             `bson:"description,omitempty"     json:"description,omitempty"`
	DescriptionAr   string             `bson:"descriptionAr,omitempty"   json:"descriptionAr,omitempty"`
	Price           float64            `bson:"price"                     json:"price"`
	OriginalPrice   float64            `bson:"originalPrice,omitempty"   json:"originalPrice,omitempty"`
	Image           string             `bson:"image,omitempty"           json:"image,omitempty"`
	Images          []string           `bson:"images,omitempty"          json:"images,omitempty"`
	IsActive        bool               `bson:"isActive"                  json:"isActive"`
	IsFeatured      bool               `bson:"isFeatured"                json:"isFeatured"`
	Order           int                `bson:"order"                     json:"order"`
	NutritionInfo   *NutritionInfo     `bson:"nutritionInfo,omitempty"   json:"nutritionInfo,omitempty"`
	Allergens       []string           `bson:"allergens,omitempty"       json:"allergens,omitempty"`
	PreparationTime int                `bson:"preparationTime,omitempty" json:"preparationTime,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt"                 json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"                 json:"updatedAt"`
}

// HasDiscount reports whether OriginalPrice marks this product as discounted.
func (p Product) HasDiscount() bool {
	return p.OriginalPrice > p.Price && p.OriginalPrice > 0
}

// ProductInput is the create payload.
type ProductInput struct {
	CategoryID      string         `json:"categoryId"      validate:"required"`
	TitlePrimary    string         `json:"titlePrimary"    validate:"required,max=255"`
	TitleSecondary  string         `json:"titleSecondary"  validate:"required,max=255"`
	Description     string         `json:"description"`
	DescriptionAr   string         `json:"descriptionAr"`
	Price           *float64       `json:"price"           validate:"required,gte=0"`
	OriginalPrice   *float64       `json:"originalPrice"   validate:"nullable,gte=0"`
	Image           string         `json:"image"           validate:"nullable,max=1024"`
	Images          []string       `json:"images"`
	IsActive        *bool          `json:"isActive"`
	IsFeatured      *bool          `json:"isFeatured"`
	Order           *int           `json:"order"`
	NutritionInfo   *NutritionInfo `json:"nutritionInfo"`
	Allergens       []string       `json:"allergens"`
	PreparationTime *int           `json:"preparationTime" validate:"nullable,gte=0"`
}

// ProductUpdate is the partial-update payload; nil means "leave as is".
type ProductUpdate struct {
	CategoryID      *string        `json:"categoryId"`
	TitlePrimary    *string        `json:"titlePrimary"    validate:"nullable,max=255"`
	TitleSecondary  *string        `json:"titleSecondary"  validate:"nullable,max=255"`
	Description     *string        `json:"description"`
	DescriptionAr   *string        `json:"descriptionAr"`
	Price           *float64       `json:"price"           validate:"nullable,gte=0"`
	OriginalPrice   *float64       `json:"originalPrice"   validate:"nullable,gte=0"`
	Image           *string        `json:"image"`
	Images          *[]string      `json:"images"`
	IsActive        *bool          `json:"isActive"`
	IsFeatured      *bool          `json:"isFeatured"`
	Order           *int           `json:"order"`
	NutritionInfo   *NutritionInfo `json:"nutritionInfo"`
	Allergens       *[]string      `json:"allergens"`
	PreparationTime *int           `json:"preparationTime" validate:"nullable,gte=0"`
}

// MenuData is the composed payload served to customers: every active category
// and every active product, the currency label prices are displayed with,
// plus the time the snapshot was assembled.
type MenuData struct {
	Categories  []Category `json:"categories"`
	Products    []Product  `json:"products"`
	Currency    string     `json:"currency"`
	LastUpdated time.Time  `json:"lastUpdated"`
}
