package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/laziz/app/models"
	"github.com/shashiranjanraj/laziz/app/repositories"
	"github.com/shashiranjanraj/laziz/internal/cart"
	"github.com/shashiranjanraj/laziz/pkg/bind"
	"github.com/shashiranjanraj/laziz/pkg/logger"
	"github.com/shashiranjanraj/laziz/pkg/response"
	"github.com/shashiranjanraj/laziz/pkg/session"
)

// ProductFinder is the slice of ProductRepository the cart needs.
type ProductFinder interface {
	FindByID(ctx context.Context, id string) (models.Product, error)
}

// CartController mutates the session-scoped cart. Every handler responds
// with the full cart state so the client never has to track deltas.
type CartController struct {
	store    *cart.Store
	products ProductFinder
}

func NewCartController(store *cart.Store, products ProductFinder) *CartController {
	return &CartController{store: store, products: products}
}

func (c *CartController) cartFor(r *http.Request) *cart.Cart {
	return c.store.Get(session.FromCtx(r).ID())
}

// Show returns the session's cart, creating an empty one on first use.
func (c *CartController) Show(w http.ResponseWriter, r *http.Request) {
	response.Success(w, c.cartFor(r))
}

type addItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// AddItem puts a product in the cart. Adding an id already in the cart
// bumps the existing line instead of creating a second one. The display
// fields are captured from the product at add time.
func (c *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	var body addItemRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.products.FindByID(r.Context(), body.ProductID)
	switch {
	case errors.Is(err, repositories.ErrNotFound), errors.Is(err, repositories.ErrInvalidID):
		response.NotFound(w, "product not found")
		return
	case err != nil:
		logger.WithCtx(r.Context()).Error("cart: product lookup failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to add to cart")
		return
	}
	if !product.IsActive {
		response.NotFound(w, "product not found")
		return
	}

	ct := c.cartFor(r)
	ct.AddItem(product)
	response.Success(w, ct)
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// UpdateItem sets a line's quantity. Zero or negative removes the line;
// an id not in the cart leaves the cart untouched.
func (c *CartController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var body updateQuantityRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	ct := c.cartFor(r)
	ct.UpdateQuantity(chi.URLParam(r, "id"), *body.Quantity)
	response.Success(w, ct)
}

// RemoveItem drops a line. An id not in the cart is a silent no-op.
func (c *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ct := c.cartFor(r)
	ct.RemoveItem(chi.URLParam(r, "id"))
	response.Success(w, ct)
}

// Clear empties the cart.
func (c *CartController) Clear(w http.ResponseWriter, r *http.Request) {
	ct := c.cartFor(r)
	ct.Clear()
	response.Success(w, ct)
}
