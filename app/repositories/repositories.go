// Package repositories wraps all MongoDB access for menu data. Services
// and controllers never touch the driver directly.
package repositories

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound is returned when no document matches the given id.
	ErrNotFound = errors.New("repositories: document not found")

	// ErrCategoryInUse is returned when deleting a category that still
	// has products referencing it.
	ErrCategoryInUse = errors.New("repositories: category has products")

	// ErrInvalidID is returned when an id string is not a valid ObjectID.
	ErrInvalidID = errors.New("repositories: invalid object id")

	// ErrCategoryMissing is returned when a product payload references a
	// category id that does not resolve to an existing category.
	ErrCategoryMissing = errors.New("repositories: referenced category not found")
)

// parseID converts a hex id from the URL into an ObjectID.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// orderAfter returns the display order following the current maximum.
// The first document in an empty collection gets order 1.
func orderAfter(max int, found bool) int {
	if !found {
		return 1
	}
	return max + 1
}
