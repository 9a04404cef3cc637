package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Multicanal-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	ChannelUC *usecase.ChannelUseCase
	PricingUC *usecase.PricingUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Canales de venta por producto (protegido)
	channelHandler := NewChannelHandler(deps.ChannelUC)
	products.Post("/:id/channels", channelHandler.Create)
	products.Get("/:id/channels", channelHandler.List)
	channels := protected.Group("/channels")
	channels.Put("/:id", channelHandler.Update)
	channels.Delete("/:id", channelHandler.Delete)

	// Pricing (protegido)
	pricingHandler := NewPricingHandler(deps.PricingUC)
	products.Get("/:id/pricing", pricingHandler.ProductPricing)
	pricingGroup := protected.Group("/pricing")
	pricingGroup.Post("/simulate", pricingHandler.Simulate)
	pricingGroup.Get("/health", pricingHandler.ClassifyMargin)
}
