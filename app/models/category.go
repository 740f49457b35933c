package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is a named grouping of menu products. Bilingual, orderable and
// activatable: inactive categories stay in storage but disappear from every
// customer-facing view.
type Category struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TitlePrimary   string             `bson:"titlePrimary"   json:"titlePrimary"`
	TitleSecondary string             `bson:"titleSecondary" json:"titleSecondary"`
	Order          int                `bson:"order"          json:"order"`
	IsActive       bool               `bson:"isActive"       json:"isActive"`
	CreatedAt      time.Time          `bson:"createdAt"      json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"      json:"updatedAt"`
}

// CategoryInput is the create payload.
type CategoryInput struct {
	TitlePrimary   string `json:"titlePrimary"   validate:"required,max=255"`
	TitleSecondary string `json:"titleSecondary" validate:"required,max=255"`
	Order          *int   `json:"order"`
	IsActive       *bool  `json:"isActive"`
}

// CategoryUpdate is the partial-update payload. Nil fields are left untouched,
// so every field's presence is checked at compile time rather than through an
// untyped map.
type CategoryUpdate struct {
	TitlePrimary   *string `json:"titlePrimary"   validate:"nullable,max=255"`
	TitleSecondary *string `json:"titleSecondary" validate:"nullable,max=255"`
	Order          *int    `json:"order"`
	IsActive       *bool   `json:"isActive"`
}
