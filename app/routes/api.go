package routes

import (
	"github.com/shashiranjanraj/laziz/app/controllers"
	"github.com/shashiranjanraj/laziz/app/repositories"
	"github.com/shashiranjanraj/laziz/app/services"
	"github.com/shashiranjanraj/laziz/internal/cart"
	"github.com/shashiranjanraj/laziz/pkg/middleware"
	"github.com/shashiranjanraj/laziz/pkg/router"

	"go.mongodb.org/mongo-driver/mongo"
)

// RegisterAPI wires every /api route. The admin group sits behind the
// bearer-token middleware; everything else is public. The menu service is
// returned so the server can hook cache invalidation and warming onto it.
func RegisterAPI(r *router.Router, db *mongo.Database, carts *cart.Store) *services.MenuService {
	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	menuService := services.NewMenuService(categoryRepo, productRepo)

	menuController := controllers.NewMenuController(menuService)
	categoryController := controllers.NewCategoryController(categoryRepo)
	productController := controllers.NewProductController(productRepo)
	cartController := controllers.NewCartController(carts, productRepo)
	authController := controllers.NewAuthController()
	imageController := controllers.NewImageController()

	api := r.Group("/api")

	// Customer surface.
	api.Get("/menu", "menu.index", menuController.Index)
	api.Get("/menu/featured", "menu.featured", menuController.Featured)
	api.Get("/menu/search", "menu.search", menuController.Search)
	api.Get("/categories", "categories.index", categoryController.Index)
	api.Get("/products", "products.index", productController.Index)

	api.Get("/cart", "cart.show", cartController.Show)
	api.Post("/cart/items", "cart.add", cartController.AddItem)
	api.Put("/cart/items/{id}", "cart.update", cartController.UpdateItem)
	api.Delete("/cart/items/{id}", "cart.remove", cartController.RemoveItem)
	api.Delete("/cart", "cart.clear", cartController.Clear)

	api.Post("/admin/login", "admin.login", authController.Login)

	// Admin surface.
	admin := api.Group("", middleware.AdminOnly)
	admin.Post("/categories", "categories.store", categoryController.Store)
	admin.Put("/categories/{id}", "categories.update", categoryController.Update)
	admin.Delete("/categories/{id}", "categories.destroy", categoryController.Destroy)

	admin.Post("/products", "products.store", productController.Store)
	admin.Put("/products/{id}", "products.update", productController.Update)
	admin.Delete("/products/{id}", "products.destroy", productController.Destroy)

	admin.Post("/upload", "images.upload", imageController.Upload)
	admin.Get("/images", "images.index", imageController.Index)
	admin.Delete("/images/{filename}", "images.destroy", imageController.Destroy)

	return menuService
}
