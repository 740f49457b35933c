package controllers

import (
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

// CategoryController owns both the public category listing and the
// admin CRUD surface.
type CategoryController struct {
	repo *repositories.CategoryRepository
}

func NewCategoryController(repo *repositories.CategoryRepository) *CategoryController {
	return &CategoryController{repo: repo}
}

// Index returns every category in display order, inactive ones included.
// The customer UI filters through /api/menu; the admin UI reads this raw.
func (c *CategoryController) Index(w http.ResponseWriter, r *http.Request) {
	categories, err := c.repo.All(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("categories: list failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to load categories")
		return
	}
	response.Success(w, categories)
}

// Store creates a category (admin).
func (c *CategoryController) Store(w http.ResponseWriter, r *http.Request) {
	var body models.CategoryInput
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	category, err := c.repo.Create(r.Context(), body)
	if err != nil {
		logger.WithCtx(r.Context()).Error("categories: create failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to create category")
		return
	}

	event.Fire(event.MenuChanged, nil)
	response.Created(w, category)
}

// Update applies a partial update (admin). Omitted fields keep their value.
func (c *CategoryController) Update(w http.ResponseWriter, r *http.Request) {
	var body models.CategoryUpdate
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	category, err := c.repo.Update(r.Context(), chi.URLParam(r, "id"), body)
	switch {
	case errors.Is(err, repositories.ErrNotFound), errors.Is(err, repositories.ErrInvalidID):
		response.NotFound(w, "category not found")
		return
	case err != nil:
		logger.WithCtx(r.Context()).Error("categories: update failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to update category")
		return
	}

	event.Fire(event.MenuChanged, nil)
	response.Success(w, category)
}

// Destroy deletes a category (admin). Categories still holding products
// are refused so products can never point at a missing category.
func (c *CategoryController) Destroy(w http.ResponseWriter, r *http.Request) {
	err := c.repo.Delete(r.Context(), chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, repositories.ErrCategoryInUse):
		response.Conflict(w, "category still has products")
		return
	case errors.Is(err, repositories.ErrNotFound), errors.Is(err, repositories.ErrInvalidID):
		response.NotFound(w, "category not found")
		return
	case err != nil:
		logger.WithCtx(r.Context()).Error("categories: delete failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to delete category")
		return
	}

	event.Fire(event.MenuChanged, nil)
	response.Message(w, "category deleted")
}
