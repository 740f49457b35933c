package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/laziz/app/models"
	"github.com/shashiranjanraj/laziz/app/repositories"
	"github.com/shashiranjanraj/laziz/pkg/bind"
	"github.com/shashiranjanraj/laziz/pkg/event"
	"github.com/shashiranjanraj/laziz/pkg/logger"
	"github.com/shashiranjanraj/laziz/pkg/response"
)

// ProductStore is the repository surface the product handlers use.
type ProductStore interface {
	All(ctx context.Context) ([]models.Product, error)
	ByCategory(ctx context.Context, categoryID string) ([]models.Product, error)
	Create(ctx context.Context, in models.ProductInput) (models.Product, error)
	Update(ctx context.Context, id string, upd models.ProductUpdate) (models.Product, error)
	Delete(ctx context.Context, id string) error
}

// ProductController owns both the public product listing and the admin
// CRUD surface.
type ProductController struct {
	repo ProductStore
}

func NewProductController(repo ProductStore) *ProductController {
	return &ProductController{repo: repo}
}

// Index returns every product in display order, inactive ones included.
// An optional ?categoryId= narrows the list to one category; an id that
// doesn't parse yields an empty list, not an error.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	var (
		products []models.Product
		err      error
	)
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		products, err = c.repo.ByCategory(r.Context(), raw)
		if errors.Is(err, repositories.ErrInvalidID) {
			response.Success(w, []models.Product{})
			return
		}
	} else {
		products, err = c.repo.All(r.Context())
	}
	if err != nil {
		logger.WithCtx(r.Context()).Error("products: list failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to load products")
		return
	}
	response.Success(w, products)
}

// Store creates a product (admin). The referenced category must exist.
func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	var body models.ProductInput
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.repo.Create(r.Context(), body)
	switch {
	case errors.Is(err, repositories.ErrCategoryMissing):
		response.Error(w, http.StatusUnprocessableEntity, "category does not exist")
		return
	case err != nil:
		logger.WithCtx(r.Context()).Error("products: create failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to create product")
		return
	}

	event.Fire(event.MenuChanged, nil)
	response.Created(w, product)
}

// Update applies a partial update (admin). Omitted fields keep their value.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	var body models.ProductUpdate
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.repo.Update(r.Context(), chi.URLParam(r, "id"), body)
	switch {
	case errors.Is(err, repositories.ErrCategoryMissing):
		response.Error(w, http.StatusUnprocessableEntity, "category does not exist")
		return
	case errors.Is(err, repositories.ErrNotFound), errors.Is(err, repositories.ErrInvalidID):
		response.NotFound(w, "product not found")
		return
	case err != nil:
		logger.WithCtx(r.Context()).Error("products: update failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to update product")
		return
	}

	event.Fire(event.MenuChanged, nil)
	response.Success(w, product)
}

// Destroy deletes a product (admin).
func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	err := c.repo.Delete(r.Context(), chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, repositories.ErrNotFound), errors.Is(err, repositories.ErrInvalidID):
		response.NotFound(w, "product not found")
		return
	case err != nil:
		logger.WithCtx(r.Context()).Error("products: delete failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to delete product")
		return
	}

	event.Fire(event.MenuChanged, nil)
	response.Message(w, "product deleted")
}
