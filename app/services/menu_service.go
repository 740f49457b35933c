package services

import (
	"context"
	"time"

	"github.com/shashiranjanraj/laziz/app/models"
	"github.com/shashiranjanraj/laziz/config"
	"github.com/shashiranjanraj/laziz/internal/menu"
	"github.com/shashiranjanraj/laziz/pkg/cache"
	"github.com/shashiranjanraj/laziz/pkg/logger"
	"github.com/shashiranjanraj/laziz/pkg/metrics"
)

// MenuCacheKey is the Redis key holding the composed menu payload.
const MenuCacheKey = "laziz:menu"

// CategoryStore is the slice of CategoryRepository the menu composer needs.
type CategoryStore interface {
	All(ctx context.Context) ([]models.Category, error)
}

// ProductStore is the slice of ProductRepository the menu composer needs.
type ProductStore interface {
	All(ctx context.Context) ([]models.Product, error)
}

// MenuService composes the customer-facing menu payload and caches it in
// Redis. Writes elsewhere invalidate the cache through Invalidate.
type MenuService struct {
	categories CategoryStore
	products   ProductStore
}

func NewMenuService(categories CategoryStore, products ProductStore) *MenuService {
	return &MenuService{categories: categories, products: products}
}

// Menu returns the composed menu: active categories in display order,
// active products, and the snapshot timestamp. Served from Redis when the
// cached copy is still fresh.
func (s *MenuService) Menu(ctx context.Context) (models.MenuData, error) {
	var cached models.MenuData
	if cache.Get(MenuCacheKey, &cached) {
		metrics.MenuCacheHits.Inc()
		return cached, nil
	}
	metrics.MenuCacheMisses.Inc()

	data, err := s.compose(ctx)
	if err != nil {
		return models.MenuData{}, err
	}

	if err := cache.Set(MenuCacheKey, data, config.MenuCacheTTL()); err != nil {
		logger.Warn("menu: cache set failed", "error", err)
	}
	return data, nil
}

func (s *MenuService) compose(ctx context.Context) (models.MenuData, error) {
	categories, err := s.categories.All(ctx)
	if err != nil {
		return models.MenuData{}, err
	}
	products, err := s.products.All(ctx)
	if err != nil {
		return models.MenuData{}, err
	}

	return models.MenuData{
		Categories:  menu.ActiveCategories(categories),
		Products:    menu.ActiveProducts(products),
		Currency:    config.CurrencyLabel(),
		LastUpdated: time.Now().UTC(),
	}, nil
}

// Featured returns active products flagged for the featured strip.
func (s *MenuService) Featured(ctx context.Context) ([]models.Product, error) {
	data, err := s.Menu(ctx)
	if err != nil {
		return nil, err
	}
	return menu.FeaturedProducts(data.Products), nil
}

// Search matches the query against primary and secondary titles of active
// products, case-insensitively.
func (s *MenuService) Search(ctx context.Context, query string) ([]models.Product, error) {
	data, err := s.Menu(ctx)
	if err != nil {
		return nil, err
	}
	return menu.SearchProducts(data.Products, query), nil
}

// Invalidate drops the cached menu. Called on every category or product
// write so customers never see stale data past the write.
func (s *MenuService) Invalidate() {
	if err := cache.Del(MenuCacheKey); err != nil {
		logger.Warn("menu: cache invalidate failed", "error", err)
	}
}

// Warm recomposes the menu and refreshes the cache. The scheduler calls
// this periodically so a TTL expiry never lands on a customer request.
func (s *MenuService) Warm(ctx context.Context) {
	data, err := s.compose(ctx)
	if err != nil {
		logger.Warn("menu: cache warm failed", "error", err)
		return
	}
	if err := cache.Set(MenuCacheKey, data, config.MenuCacheTTL()); err != nil {
		logger.Warn("menu: cache warm set failed", "error", err)
	}
}
