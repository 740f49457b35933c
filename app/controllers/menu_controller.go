package controllers

import (
	"net/http"
	"strings"

	"github.com/shashiranjanraj/laziz/app/models"
	"github.com/shashiranjanraj/laziz/app/services"
	"github.com/shashiranjanraj/laziz/pkg/logger"
	"github.com/shashiranjanraj/laziz/pkg/response"
)

// MenuController serves the read-only customer surface.
type MenuController struct {
	menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{menu: menu}
}

// Index returns the full composed menu: active categories in display
// order, active products, and the snapshot timestamp.
func (c *MenuController) Index(w http.ResponseWriter, r *http.Request) {
	data, err := c.menu.Menu(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("menu: compose failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to load menu")
		return
	}
	response.Success(w, data)
}

// Featured returns the active products flagged for the specials strip.
func (c *MenuController) Featured(w http.ResponseWriter, r *http.Request) {
	products, err := c.menu.Featured(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("menu: featured failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to load menu")
		return
	}
	response.Success(w, products)
}

// Search matches ?q= against product titles in both languages.
// An empty query returns an empty list rather than the whole menu.
func (c *MenuController) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		response.Success(w, []models.Product{})
		return
	}

	products, err := c.menu.Search(r.Context(), query)
	if err != nil {
		logger.WithCtx(r.Context()).Error("menu: search failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to load menu")
		return
	}
	response.Success(w, products)
}
